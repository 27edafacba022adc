package dxf

// Default layer properties applied before the source tags are read.
const (
	DefaultColor      = 7
	DefaultLinetype   = "CONTINUOUS"
	DefaultLineweight = -1
)

// LayerRecord is one entry of the layer table. Color keeps its sign: a
// negative value means the layer is switched off.
type LayerRecord struct {
	Name       string
	Color      int
	Linetype   string
	Flags      int
	Lineweight int
	Plotting   bool
}

// NewLayerRecord returns a record with the defaults for an unnamed layer.
func NewLayerRecord() LayerRecord {
	return LayerRecord{
		Color:      DefaultColor,
		Linetype:   DefaultLinetype,
		Lineweight: DefaultLineweight,
		Plotting:   true,
	}
}
