// Package parser reads a DXF tag stream and extracts the layer table and the
// supported entities (LINE, CIRCLE, ARC) into a Document.
//
// The section state machine is deliberately permissive about structure: a
// stray ENDSEC or ENDTAB, or a SECTION tag without a name, is ignored and
// parsing continues. It is strict only about the shape of the records it
// extracts; an entity with a missing required field is dropped with a
// warning rather than failing the file.
package parser

import (
	"fmt"
	"io"

	"github.com/fusion17com/dxf-cleaner/pkg/dxf"
	"github.com/fusion17com/dxf-cleaner/pkg/tag"
)

// Result is everything recovered from one source file: the Document and the
// warnings for entities that had to be dropped.
type Result struct {
	Doc      *dxf.Document
	Warnings []Warning
}

// Parse consumes the whole tag stream from r and builds a Document. It
// returns a *tag.MalformedTagError when the stream itself cannot be read;
// per-record problems become warnings instead.
func Parse(r io.Reader) (*Result, error) {
	p := &parser{
		reader: tag.NewReader(r),
		doc:    &dxf.Document{},
	}
	if err := p.run(); err != nil {
		return nil, err
	}
	return &Result{Doc: p.doc, Warnings: p.warnings}, nil
}

type parser struct {
	reader   *tag.Reader
	state    state
	doc      *dxf.Document
	warnings []Warning

	// A SECTION or TABLE marker announces a name on the following tag.
	awaitSection bool
	awaitTable   bool

	layer  *layerBuilder
	entity *entityBuilder
}

func (p *parser) run() error {
	for p.state != stateDone {
		t, err := p.reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}
		p.consume(t)
	}
	// Input may end without ENDSEC/EOF; close whatever is still open.
	p.finishLayer()
	p.finishEntity()
	return nil
}

func (p *parser) consume(t tag.Tag) {
	if p.awaitSection {
		p.awaitSection = false
		if t.Code == 2 {
			p.state = sectionState(t.Value)
			return
		}
		// SECTION without a name: stay outside and fall through.
	}
	if p.awaitTable {
		p.awaitTable = false
		if t.Code == 2 {
			if t.Value == markerLayer {
				p.state = stateLayerTable
			} else {
				p.state = stateOtherTable
			}
			return
		}
	}

	if t.IsMarker() {
		p.marker(t)
		return
	}

	switch p.state {
	case stateLayerTable:
		if p.layer != nil {
			if err := p.layer.set(t); err != nil {
				p.warn(t.Line, fmt.Sprintf("layer field code %d: %v", t.Code, err))
			}
		}
	case stateEntities:
		if p.entity != nil {
			p.entity.set(t)
		}
	}
	// Tags in every other state carry content we do not keep.
}

// marker handles a code-0 tag in the current state.
func (p *parser) marker(t tag.Tag) {
	// Any marker is a record boundary for whatever is being accumulated.
	p.finishLayer()
	p.finishEntity()

	switch t.Value {
	case markerSection:
		if p.state == stateOutside {
			p.awaitSection = true
		}
	case markerEndSec:
		if p.state != stateOutside && p.state != stateDone {
			p.state = stateOutside
		}
	case markerTable:
		if p.state == stateTables {
			p.awaitTable = true
		}
	case markerEndTab:
		if p.state == stateLayerTable || p.state == stateOtherTable {
			p.state = stateTables
		}
	case markerEOF:
		if p.state == stateOutside {
			p.state = stateDone
		}
	case markerLayer:
		if p.state == stateLayerTable {
			p.layer = newLayerBuilder()
		}
	default:
		// Inside ENTITIES a supported type starts a new record; anything
		// else is filtered by design: its tag run is consumed and dropped.
		if p.state == stateEntities && supportedEntity(t.Value) {
			p.entity = newEntityBuilder(t)
		}
	}
}

func (p *parser) finishLayer() {
	if p.layer == nil {
		return
	}
	p.doc.Layers = append(p.doc.Layers, p.layer.finish())
	p.layer = nil
}

func (p *parser) finishEntity() {
	if p.entity == nil {
		return
	}
	ent, err := p.entity.finish()
	if err != nil {
		p.warn(p.entity.line, err.Error()+"; entity dropped")
	} else {
		p.doc.Entities = append(p.doc.Entities, ent)
	}
	p.entity = nil
}

func (p *parser) warn(line int, msg string) {
	p.warnings = append(p.warnings, Warning{Line: line, Message: msg})
}
