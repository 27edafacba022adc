package parser

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fusion17com/dxf-cleaner/pkg/dxf"
	"github.com/fusion17com/dxf-cleaner/pkg/tag"
)

// supportedEntity reports whether the marker names one of the entity kinds
// that survive cleaning. Everything else is consumed and discarded.
func supportedEntity(name string) bool {
	switch name {
	case dxf.TypeLine, dxf.TypeCircle, dxf.TypeArc:
		return true
	}
	return false
}

// pointFields collects the coordinate tags of one point. X and Y are
// required for the point to count as supplied; Z defaults to zero.
type pointFields struct {
	x, y, z *dxf.Real
}

func (p *pointFields) point() (dxf.Point3, bool) {
	if p.x == nil || p.y == nil {
		return dxf.Point3{}, false
	}
	pt := dxf.Point3{X: *p.x, Y: *p.y, Z: dxf.Zero}
	if p.z != nil {
		pt.Z = *p.z
	}
	return pt, true
}

// entityBuilder accumulates the tag run of one supported entity. Field
// errors are remembered and reported when the builder is finalized, so a
// bad value drops only its own entity.
type entityBuilder struct {
	typ     string
	line    int // source line of the marker tag
	common  dxf.Common
	first   pointFields // start for LINE, center for CIRCLE/ARC
	second  pointFields // end, LINE only
	radius  *dxf.Real
	start   *dxf.Real
	end     *dxf.Real
	badTags []string
}

func newEntityBuilder(t tag.Tag) *entityBuilder {
	return &entityBuilder{
		typ:    t.Value,
		line:   t.Line,
		common: dxf.Common{LayerName: "0"},
	}
}

// set applies one tag to the entity under construction.
func (b *entityBuilder) set(t tag.Tag) {
	switch t.Code {
	case 8:
		b.common.LayerName = t.Value
	case 62:
		v, err := strconv.Atoi(strings.TrimSpace(t.Value))
		if err != nil {
			b.fail(t, err)
			return
		}
		b.common.Color = &v
	case 10, 20, 30:
		b.setCoord(&b.first, t)
	case 11, 21, 31:
		b.setCoord(&b.second, t)
	case 40:
		b.setReal(&b.radius, t)
	case 50:
		b.setReal(&b.start, t)
	case 51:
		b.setReal(&b.end, t)
	}
}

func (b *entityBuilder) setCoord(p *pointFields, t tag.Tag) {
	r, err := dxf.ParseReal(t.Value)
	if err != nil {
		b.fail(t, err)
		return
	}
	switch t.Code / 10 {
	case 1:
		p.x = &r
	case 2:
		p.y = &r
	case 3:
		p.z = &r
	}
}

func (b *entityBuilder) setReal(dst **dxf.Real, t tag.Tag) {
	r, err := dxf.ParseReal(t.Value)
	if err != nil {
		b.fail(t, err)
		return
	}
	*dst = &r
}

func (b *entityBuilder) fail(t tag.Tag, err error) {
	b.badTags = append(b.badTags, fmt.Sprintf("code %d: %v", t.Code, err))
}

// finish validates the accumulated fields and returns the entity, or an
// *InvalidGeometryError naming the first missing or unparsable field.
func (b *entityBuilder) finish() (dxf.Entity, error) {
	if len(b.badTags) > 0 {
		return nil, b.invalid(b.badTags[0])
	}

	switch b.typ {
	case dxf.TypeLine:
		start, ok := b.first.point()
		if !ok {
			return nil, b.invalid("missing start point")
		}
		end, ok := b.second.point()
		if !ok {
			return nil, b.invalid("missing end point")
		}
		return &dxf.Line{Common: b.common, Start: start, End: end}, nil

	case dxf.TypeCircle:
		center, radius, err := b.circleFields()
		if err != nil {
			return nil, err
		}
		return &dxf.Circle{Common: b.common, Center: center, Radius: radius}, nil

	case dxf.TypeArc:
		center, radius, err := b.circleFields()
		if err != nil {
			return nil, err
		}
		if b.start == nil {
			return nil, b.invalid("missing start angle")
		}
		if b.end == nil {
			return nil, b.invalid("missing end angle")
		}
		return &dxf.Arc{
			Common:     b.common,
			Center:     center,
			Radius:     radius,
			StartAngle: *b.start,
			EndAngle:   *b.end,
		}, nil
	}

	return nil, b.invalid("unsupported entity type")
}

func (b *entityBuilder) circleFields() (dxf.Point3, dxf.Real, error) {
	center, ok := b.first.point()
	if !ok {
		return dxf.Point3{}, dxf.Real{}, b.invalid("missing center point")
	}
	if b.radius == nil {
		return dxf.Point3{}, dxf.Real{}, b.invalid("missing radius")
	}
	if b.radius.Val <= 0 {
		return dxf.Point3{}, dxf.Real{}, b.invalid(fmt.Sprintf("radius %s is not positive", b.radius.Raw))
	}
	return center, *b.radius, nil
}

func (b *entityBuilder) invalid(msg string) *InvalidGeometryError {
	return &InvalidGeometryError{Line: b.line, Entity: b.typ, Message: msg}
}
