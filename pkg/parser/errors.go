package parser

import "fmt"

// InvalidGeometryError describes an entity whose required fields never
// arrived before the next record boundary. It is recovered locally: the
// entity is dropped and parsing continues.
type InvalidGeometryError struct {
	Line    int    // source line of the entity marker
	Entity  string // DXF type name
	Message string
}

func (e *InvalidGeometryError) Error() string {
	return fmt.Sprintf("invalid %s at line %d: %s", e.Entity, e.Line, e.Message)
}

// Warning records a recoverable problem found while parsing, such as a
// dropped entity. Warnings are collected as values and returned alongside
// the Document rather than aborting the file.
type Warning struct {
	Line    int
	Message string
}

func (w Warning) String() string {
	return fmt.Sprintf("line %d: %s", w.Line, w.Message)
}
