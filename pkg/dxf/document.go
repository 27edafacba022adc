// Package dxf defines the data model shared by the parser and the writer:
// the layer table, the supported entity kinds, and the Document that carries
// them from one to the other.
package dxf

import "strings"

// Document is the content extracted from one source file: the full layer
// table and the supported entities, both in source order. A Document is
// built once by the parser, consumed once by the writer, then discarded.
type Document struct {
	Layers   []LayerRecord
	Entities []Entity
}

// Layer returns the named layer record. When the source defined the name
// more than once, the last definition wins; all records stay in Layers
// positionally regardless.
func (d *Document) Layer(name string) (LayerRecord, bool) {
	for i := len(d.Layers) - 1; i >= 0; i-- {
		if d.Layers[i].Name == name {
			return d.Layers[i], true
		}
	}
	return LayerRecord{}, false
}

// HasLayer reports whether a layer with the given name is defined.
func (d *Document) HasLayer(name string) bool {
	_, ok := d.Layer(name)
	return ok
}

// Linetypes returns the linetype names referenced by the layer table, in
// first-reference order with duplicates removed (case-insensitively).
func (d *Document) Linetypes() []string {
	var names []string
	seen := map[string]bool{}
	for _, l := range d.Layers {
		key := strings.ToUpper(l.Linetype)
		if l.Linetype == "" || seen[key] {
			continue
		}
		seen[key] = true
		names = append(names, l.Linetype)
	}
	return names
}
