// Package tag provides the primitives of the ASCII DXF tag stream: a Tag is
// one group-code/value record spanning two physical lines, and Reader turns
// raw input into a sequence of Tags.
package tag

// Tag is a single group-code/value record. The code determines how the value
// is interpreted in its current context (entity marker, layer name,
// coordinate, and so on). A Tag is immutable once read.
type Tag struct {
	Code  int
	Value string
	Line  int // 1-based line number of the code line in the source
}

// Is reports whether the tag has the given code and value.
func (t Tag) Is(code int, value string) bool {
	return t.Code == code && t.Value == value
}

// IsMarker reports whether the tag opens a new record or structural block.
// Markers are the code-0 tags: SECTION, ENDSEC, TABLE, ENDTAB, entity type
// names, and EOF.
func (t Tag) IsMarker() bool {
	return t.Code == 0
}
