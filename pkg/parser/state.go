package parser

// state tracks which logical region of the file is currently open. The
// machine is permissive: a marker that makes no sense in the current state
// is ignored rather than treated as an error, so files with minor structural
// quirks still parse.
type state int

const (
	stateOutside state = iota
	stateHeader
	stateTables
	stateLayerTable
	stateOtherTable
	stateBlocks
	stateEntities
	stateObjects
	stateOtherSection
	stateDone
)

func (s state) String() string {
	switch s {
	case stateOutside:
		return "outside"
	case stateHeader:
		return "header"
	case stateTables:
		return "tables"
	case stateLayerTable:
		return "layer-table"
	case stateOtherTable:
		return "other-table"
	case stateBlocks:
		return "blocks"
	case stateEntities:
		return "entities"
	case stateObjects:
		return "objects"
	case stateOtherSection:
		return "other-section"
	case stateDone:
		return "done"
	}
	return "unknown"
}

// Structural marker values carried on code-0 tags, plus the code-2 names
// that select sections and tables.
const (
	markerSection = "SECTION"
	markerEndSec  = "ENDSEC"
	markerTable   = "TABLE"
	markerEndTab  = "ENDTAB"
	markerLayer   = "LAYER"
	markerEOF     = "EOF"

	sectionHeader   = "HEADER"
	sectionTables   = "TABLES"
	sectionBlocks   = "BLOCKS"
	sectionEntities = "ENTITIES"
	sectionObjects  = "OBJECTS"
)

// sectionState maps a section name to the state it opens.
func sectionState(name string) state {
	switch name {
	case sectionHeader:
		return stateHeader
	case sectionTables:
		return stateTables
	case sectionBlocks:
		return stateBlocks
	case sectionEntities:
		return stateEntities
	case sectionObjects:
		return stateObjects
	}
	return stateOtherSection
}
