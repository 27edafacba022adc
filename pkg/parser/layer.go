package parser

import (
	"strconv"
	"strings"

	"github.com/fusion17com/dxf-cleaner/pkg/dxf"
	"github.com/fusion17com/dxf-cleaner/pkg/tag"
)

// layerBuilder accumulates the tag run of one LAYER table entry. It starts
// from the record defaults and is finalized on the next record boundary.
type layerBuilder struct {
	rec dxf.LayerRecord
}

func newLayerBuilder() *layerBuilder {
	return &layerBuilder{rec: dxf.NewLayerRecord()}
}

// set applies one tag to the record. Unknown codes are dropped; a value
// that does not parse for its code leaves the current field value in place
// and returns the parse error.
func (b *layerBuilder) set(t tag.Tag) error {
	switch t.Code {
	case 2:
		b.rec.Name = t.Value
	case 62:
		v, err := strconv.Atoi(strings.TrimSpace(t.Value))
		if err != nil {
			return err
		}
		b.rec.Color = v // sign preserved: negative means the layer is off
	case 6:
		b.rec.Linetype = t.Value
	case 70:
		v, err := strconv.Atoi(strings.TrimSpace(t.Value))
		if err != nil {
			return err
		}
		b.rec.Flags = v
	case 370:
		v, err := strconv.Atoi(strings.TrimSpace(t.Value))
		if err != nil {
			return err
		}
		b.rec.Lineweight = v
	case 290:
		b.rec.Plotting = strings.TrimSpace(t.Value) != "0"
	}
	return nil
}

func (b *layerBuilder) finish() dxf.LayerRecord {
	return b.rec
}
