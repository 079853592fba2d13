package ephem

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/siddhanta-labs/siddhanta/pkg/astro"
)

// termTableFile is the on-disk shape of a term-table override.
type termTableFile struct {
	Bodies map[string]BodyTable `yaml:"bodies"`
}

// TableLoadError reports a malformed term-table file.
type TableLoadError struct {
	Path    string
	Message string
}

func (e *TableLoadError) Error() string {
	return fmt.Sprintf("term table %s: %s", e.Path, e.Message)
}

// LoadTermTables reads a YAML term-table file so a higher-precision series
// (for example a deeper VSOP87 truncation) can be substituted for the
// built-in tables without code changes. Bodies absent from the file keep
// their built-in series. Unknown YAML fields and unknown body names are
// rejected.
func LoadTermTables(path string) (map[astro.Body]BodyTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read term table: %w", err)
	}
	return parseTermTables(path, data)
}

func parseTermTables(path string, data []byte) (map[astro.Body]BodyTable, error) {
	var file termTableFile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil {
		return nil, &TableLoadError{Path: path, Message: err.Error()}
	}

	tables := make(map[astro.Body]BodyTable, len(file.Bodies))
	for name, table := range file.Bodies {
		body, ok := astro.ParseBody(name)
		if !ok {
			return nil, &TableLoadError{Path: path, Message: "unknown body: " + name}
		}
		tables[body] = table
	}
	return tables, nil
}
