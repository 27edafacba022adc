package commands

import (
	"github.com/fusion17com/dxf-cleaner/internal/cleaner"
	"github.com/fusion17com/dxf-cleaner/pkg/dxf"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

// inspectReport is the JSON shape of one inspected file.
type inspectReport struct {
	Input    string            `json:"input"`
	Layers   []dxf.LayerRecord `json:"layers"`
	Entities map[string]int    `json:"entities"`
	Warnings []string          `json:"warnings,omitempty"`
}

// NewInspectCommand creates the inspect command.
func NewInspectCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <file>",
		Short: "Show what a clean would keep, without writing anything",
		Long: `Parse a DXF file and report its layer table and the count of supported
entities. Nothing is written.`,
		Example: `  dxfclean inspect floorplan.dxf
  dxfclean inspect -o json floorplan.dxf`,
		Args: cobra.ExactArgs(1),
		RunE: runInspect,
	}
}

func runInspect(cmd *cobra.Command, args []string) error {
	r := getRenderer(cmd.Context())

	res, err := cleaner.Parse(args[0])
	if err != nil {
		return err
	}
	doc := res.Doc

	counts := map[string]int{}
	for _, e := range doc.Entities {
		counts[e.Type()]++
	}

	if r.IsJSON() {
		report := inspectReport{Input: args[0], Layers: doc.Layers, Entities: counts}
		for _, w := range res.Warnings {
			report.Warnings = append(report.Warnings, w.String())
		}
		return r.JSON(report)
	}

	for _, w := range res.Warnings {
		r.Warningf("%s: %s", args[0], w)
	}

	t := table.NewWriter()
	t.SetOutputMirror(r.Out())
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Layer", "Color", "Linetype", "Flags", "Lineweight", "Plotting"})
	for _, l := range doc.Layers {
		t.AppendRow(table.Row{l.Name, l.Color, l.Linetype, l.Flags, l.Lineweight, l.Plotting})
	}
	t.Render()

	e := table.NewWriter()
	e.SetOutputMirror(r.Out())
	e.SetStyle(table.StyleLight)
	e.AppendHeader(table.Row{"Entity", "Count"})
	for _, typ := range []string{dxf.TypeLine, dxf.TypeCircle, dxf.TypeArc} {
		e.AppendRow(table.Row{typ, counts[typ]})
	}
	e.Render()

	return nil
}
