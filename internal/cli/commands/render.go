package commands

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/siddhanta-labs/siddhanta/pkg/angle"
	"github.com/siddhanta-labs/siddhanta/pkg/astro"
	"github.com/siddhanta-labs/siddhanta/pkg/dasha"
	"github.com/siddhanta-labs/siddhanta/pkg/transit"
)

var titleCaser = cases.Title(language.English)

// renderJSON writes v as indented JSON.
func renderJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// renderChartTable writes a chart as a table: one row per body, plus the
// ascendant summary.
func renderChartTable(w io.Writer, c *astro.Chart) {
	_, _ = fmt.Fprintf(w, "Chart for %s (lat %.4f, lon %.4f)\n", c.Datetime.Format("2006-01-02 15:04:05 MST"), c.Latitude, c.Longitude)
	_, _ = fmt.Fprintf(w, "Ascendant: %s %s  |  Ayanamsa: %s\n\n",
		astro.SignOf(c.Ascendant), angle.ToDMS(astro.DegreeInSign(c.Ascendant)), angle.ToDMS(c.Ayanamsa))

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Body", "Longitude", "Sign", "House", "Nakshatra", "Pada", "R", "Strength", "Dignity"})

	for _, body := range astro.Bodies {
		pos, ok := c.Bodies[body]
		if !ok {
			continue
		}
		retro := ""
		if pos.Retrograde {
			retro = "R"
		}
		t.AppendRow(table.Row{
			titleCaser.String(body.String()),
			angle.ToDMS(pos.DegreeInSign).String(),
			pos.SignName,
			pos.House,
			pos.NakshatraName,
			pos.Pada,
			retro,
			pos.Strength,
			pos.Dignity.String(),
		})
	}
	t.Render()
}

// renderDashaTable writes the period timeline: one row per period, with
// sub-periods indented beneath their parent.
func renderDashaTable(w io.Writer, periods []dasha.Period) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Period", "Lord", "Start", "End", "Years"})

	for _, p := range periods {
		t.AppendRow(table.Row{
			"Maha",
			titleCaser.String(p.Lord.String()),
			p.Start.Format("2006-01-02"),
			p.End.Format("2006-01-02"),
			fmt.Sprintf("%.3f", p.Years),
		})
		for _, sub := range p.Sub {
			t.AppendRow(table.Row{
				"  Antar",
				"  " + titleCaser.String(sub.Lord.String()),
				sub.Start.Format("2006-01-02"),
				sub.End.Format("2006-01-02"),
				fmt.Sprintf("%.3f", sub.Years),
			})
		}
	}
	t.Render()
}

// renderTransitTable writes projected positions and detected aspects.
func renderTransitTable(w io.Writer, r *transit.Report) {
	_, _ = fmt.Fprintf(w, "Transits for %s\n\n", r.Target.Format("2006-01-02"))

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Body", "Longitude", "Sign", "House", "Nakshatra"})
	for _, body := range astro.Bodies {
		pos, ok := r.Positions[body]
		if !ok {
			continue
		}
		t.AppendRow(table.Row{
			titleCaser.String(body.String()),
			angle.ToDMS(pos.DegreeInSign).String(),
			pos.SignName,
			pos.House,
			pos.NakshatraName,
		})
	}
	t.Render()

	_, _ = fmt.Fprintln(w)
	renderAspectTable(w, r.Aspects)
}

// renderAspectTable writes a list of aspects.
func renderAspectTable(w io.Writer, aspects []transit.Aspect) {
	if len(aspects) == 0 {
		_, _ = fmt.Fprintln(w, "No aspects within orb.")
		return
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Body A", "Body B", "Aspect", "Angle", "Orb"})
	for _, a := range aspects {
		t.AppendRow(table.Row{
			titleCaser.String(a.BodyA.String()),
			titleCaser.String(a.BodyB.String()),
			a.Kind.String(),
			fmt.Sprintf("%.0f°", a.Angle),
			fmt.Sprintf("%.2f°", a.Orb),
		})
	}
	t.Render()
}
