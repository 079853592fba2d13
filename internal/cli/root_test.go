package cli

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/siddhanta-labs/siddhanta/internal/cli/config"
	"github.com/siddhanta-labs/siddhanta/pkg/astro"
)

func executeRoot(t *testing.T, args ...string) (string, error) {
	t.Helper()
	config.ResetConfig()

	cmd := NewRootCmd()
	buf := &bytes.Buffer{}
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func TestRootCmd_VersionFlag(t *testing.T) {
	out, err := executeRoot(t, "--version")
	require.NoError(t, err)
	assert.Contains(t, out, "siddhanta "+Version)
	assert.Contains(t, out, "Sidereal chart computation engine")
}

func TestRootCmd_VersionCommand(t *testing.T) {
	out, err := executeRoot(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "Siddhanta v"+Version)
}

func TestRootCmd_ChartJSON(t *testing.T) {
	out, err := executeRoot(t, "chart",
		"--date", "2000-01-01", "--time", "12:00:00",
		"--lat", "28.6139", "--lon", "77.2090",
		"-o", "json")
	require.NoError(t, err)

	var c astro.Chart
	require.NoError(t, json.Unmarshal([]byte(out), &c))

	assert.Len(t, c.Bodies, len(astro.Bodies))
	assert.InDelta(t, 28.6139, c.Latitude, 1e-9)
	assert.Equal(t, c.Ascendant, c.HouseCusps[0])
	assert.Greater(t, c.Ayanamsa, 23.0)

	moon, ok := c.Bodies[astro.Moon]
	require.True(t, ok)
	assert.NotEmpty(t, moon.NakshatraName)
}

func TestRootCmd_HouseSystemFlag(t *testing.T) {
	// A polar latitude with the placidus flag surfaces the polar error.
	_, err := executeRoot(t, "chart",
		"--date", "2000-01-01", "--lat", "80", "--lon", "0",
		"--house-system", "placidus")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "placidus houses undefined")
}

func TestRootCmd_InvalidOutputFlag(t *testing.T) {
	_, err := executeRoot(t, "chart",
		"--date", "2000-01-01", "--lat", "0", "--lon", "0",
		"-o", "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid config output")
}

func TestRootCmd_UnknownCommand(t *testing.T) {
	_, err := executeRoot(t, "horoscope")
	require.Error(t, err)
}
