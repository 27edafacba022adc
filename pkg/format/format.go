// Package format serializes a cleaned Document back to a minimal,
// self-consistent ASCII DXF file. Output is deterministic: the same
// Document always yields byte-identical bytes, which makes cleaning a fixed
// point for files that contain only supported content.
package format

import (
	"strings"

	"github.com/fusion17com/dxf-cleaner/pkg/dxf"
)

const acadVersion = "AC1021"

// Standard linetypes every table carries, ahead of whatever the layer table
// references.
var standardLinetypes = []string{"ByBlock", "ByLayer", dxf.DefaultLinetype}

// Rebuild serializes doc: a minimal header, a tables section with the
// linetype and layer tables, an empty blocks section, the entities in source
// order, and the end-of-file marker.
func Rebuild(doc *dxf.Document) []byte {
	p := newPrinter()
	layers := withDefaultLayer(doc.Layers)

	p.tag(999, "Cleaned DXF")
	p.header()
	p.tables(layers, linetypeNames(doc))
	p.blocks()
	p.entities(doc.Entities)
	p.tag(0, "EOF")
	return p.Bytes()
}

// withDefaultLayer prepends a default layer "0" when the source table never
// defined one, so entity layer references always have a table to land in.
func withDefaultLayer(layers []dxf.LayerRecord) []dxf.LayerRecord {
	for _, l := range layers {
		if l.Name == "0" {
			return layers
		}
	}
	def := dxf.NewLayerRecord()
	def.Name = "0"
	return append([]dxf.LayerRecord{def}, layers...)
}

// linetypeNames returns the standard linetypes plus every other name the
// layer table references, in first-reference order.
func linetypeNames(doc *dxf.Document) []string {
	names := append([]string{}, standardLinetypes...)
	for _, lt := range doc.Linetypes() {
		if isStandardLinetype(lt) {
			continue
		}
		names = append(names, lt)
	}
	return names
}

func isStandardLinetype(name string) bool {
	for _, std := range standardLinetypes {
		if strings.EqualFold(name, std) {
			return true
		}
	}
	return false
}

func (p *printer) header() {
	p.tag(0, "SECTION")
	p.tag(2, "HEADER")
	p.tag(9, "$ACADVER")
	p.tag(1, acadVersion)
	p.tag(9, "$INSBASE")
	p.tag(10, "0")
	p.tag(20, "0")
	p.tag(30, "0")
	p.tag(9, "$EXTMIN")
	p.tag(10, "-1000")
	p.tag(20, "-1000")
	p.tag(30, "0")
	p.tag(9, "$EXTMAX")
	p.tag(10, "1000")
	p.tag(20, "1000")
	p.tag(30, "0")
	p.tag(0, "ENDSEC")
}

func (p *printer) tables(layers []dxf.LayerRecord, linetypes []string) {
	p.tag(0, "SECTION")
	p.tag(2, "TABLES")
	p.linetypeTable(linetypes)
	p.layerTable(layers)
	p.tag(0, "ENDSEC")
}

func (p *printer) linetypeTable(names []string) {
	p.tag(0, "TABLE")
	p.tag(2, "LTYPE")
	p.tag(5, "5")
	p.tag(330, "0")
	p.tag(100, "AcDbSymbolTable")
	p.itag(70, len(names))
	for _, name := range names {
		p.tag(0, "LTYPE")
		p.tag(5, p.nextHandle())
		p.tag(330, "5")
		p.tag(100, "AcDbSymbolTableRecord")
		p.tag(100, "AcDbLinetypeTableRecord")
		p.tag(2, name)
		p.tag(70, "0")
		if strings.EqualFold(name, dxf.DefaultLinetype) {
			p.tag(3, "Solid line")
		} else {
			p.tag(3, "")
		}
		p.tag(72, "65")
		p.tag(73, "0")
		p.tag(40, "0")
	}
	p.tag(0, "ENDTAB")
}

func (p *printer) layerTable(layers []dxf.LayerRecord) {
	p.tag(0, "TABLE")
	p.tag(2, "LAYER")
	p.tag(5, "2")
	p.tag(330, "0")
	p.tag(100, "AcDbSymbolTable")
	p.itag(70, len(layers))
	for _, l := range layers {
		p.tag(0, "LAYER")
		p.tag(5, p.nextHandle())
		p.tag(330, "2")
		p.tag(100, "AcDbSymbolTableRecord")
		p.tag(100, "AcDbLayerTableRecord")
		p.tag(2, l.Name)
		p.itag(70, l.Flags)
		p.itag(62, l.Color)
		p.tag(6, l.Linetype)
		p.itag(370, l.Lineweight)
		if l.Plotting {
			p.tag(290, "1")
		} else {
			p.tag(290, "0")
		}
	}
	p.tag(0, "ENDTAB")
}

func (p *printer) blocks() {
	p.tag(0, "SECTION")
	p.tag(2, "BLOCKS")
	p.tag(0, "ENDSEC")
}

func (p *printer) entities(entities []dxf.Entity) {
	p.tag(0, "SECTION")
	p.tag(2, "ENTITIES")
	for _, e := range entities {
		switch ent := e.(type) {
		case *dxf.Line:
			p.entityHead(ent.Type(), ent.Common)
			p.tag(100, "AcDbLine")
			p.point(10, ent.Start)
			p.point(11, ent.End)
		case *dxf.Circle:
			p.entityHead(ent.Type(), ent.Common)
			p.tag(100, "AcDbCircle")
			p.point(10, ent.Center)
			p.tag(40, ent.Radius.Raw)
		case *dxf.Arc:
			p.entityHead(ent.Type(), ent.Common)
			p.tag(100, "AcDbCircle")
			p.point(10, ent.Center)
			p.tag(40, ent.Radius.Raw)
			p.tag(100, "AcDbArc")
			p.tag(50, ent.StartAngle.Raw)
			p.tag(51, ent.EndAngle.Raw)
		}
	}
	p.tag(0, "ENDSEC")
}

func (p *printer) entityHead(typ string, c dxf.Common) {
	p.tag(0, typ)
	p.tag(5, p.nextHandle())
	p.tag(100, "AcDbEntity")
	p.tag(8, c.LayerName)
	if c.Color != nil {
		p.itag(62, *c.Color)
	}
}

// point emits the three coordinate tags of a point. base is the group code
// of the X ordinate; Y and Z follow at base+10 and base+20.
func (p *printer) point(base int, pt dxf.Point3) {
	p.tag(base, pt.X.Raw)
	p.tag(base+10, pt.Y.Raw)
	p.tag(base+20, pt.Z.Raw)
}
