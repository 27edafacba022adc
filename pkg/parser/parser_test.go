package parser

import (
	"strings"
	"testing"

	"github.com/fusion17com/dxf-cleaner/pkg/dxf"
	"github.com/fusion17com/dxf-cleaner/pkg/tag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// dxfText joins alternating code and value lines into a tag stream.
func dxfText(lines ...string) string {
	return strings.Join(lines, "\n") + "\n"
}

func parseString(t *testing.T, input string) *Result {
	t.Helper()
	res, err := Parse(strings.NewReader(input))
	require.NoError(t, err)
	return res
}

func TestParse_Scenario(t *testing.T) {
	// Two layers, a LINE, a TEXT (unsupported), and a CIRCLE.
	input := dxfText(
		"0", "SECTION", "2", "TABLES",
		"0", "TABLE", "2", "LAYER", "70", "2",
		"0", "LAYER", "2", "WALLS", "62", "1",
		"0", "LAYER", "2", "DOORS", "62", "3",
		"0", "ENDTAB",
		"0", "ENDSEC",
		"0", "SECTION", "2", "ENTITIES",
		"0", "LINE", "8", "WALLS", "10", "0", "20", "0", "30", "0", "11", "10", "21", "0", "31", "0",
		"0", "TEXT", "8", "WALLS", "1", "hello", "10", "1", "20", "1",
		"0", "CIRCLE", "8", "DOORS", "10", "5", "20", "5", "30", "0", "40", "2",
		"0", "ENDSEC",
		"0", "EOF",
	)

	res := parseString(t, input)
	doc := res.Doc
	assert.Empty(t, res.Warnings)

	require.Len(t, doc.Layers, 2)
	assert.Equal(t, "WALLS", doc.Layers[0].Name)
	assert.Equal(t, 1, doc.Layers[0].Color)
	assert.Equal(t, "DOORS", doc.Layers[1].Name)
	assert.Equal(t, 3, doc.Layers[1].Color)

	require.Len(t, doc.Entities, 2, "TEXT must be filtered out")

	line, ok := doc.Entities[0].(*dxf.Line)
	require.True(t, ok)
	assert.Equal(t, "WALLS", line.LayerName)
	assert.Equal(t, "10", line.End.X.Raw)
	assert.Equal(t, float64(10), line.End.X.Val)

	circle, ok := doc.Entities[1].(*dxf.Circle)
	require.True(t, ok)
	assert.Equal(t, "DOORS", circle.LayerName)
	assert.Equal(t, "2", circle.Radius.Raw)
}

func TestParse_LayerDefaults(t *testing.T) {
	input := dxfText(
		"0", "SECTION", "2", "TABLES",
		"0", "TABLE", "2", "LAYER",
		"0", "LAYER", "2", "BARE",
		"0", "ENDTAB",
		"0", "ENDSEC",
		"0", "EOF",
	)

	doc := parseString(t, input).Doc
	require.Len(t, doc.Layers, 1)
	l := doc.Layers[0]
	assert.Equal(t, "BARE", l.Name)
	assert.Equal(t, 7, l.Color)
	assert.Equal(t, "CONTINUOUS", l.Linetype)
	assert.Equal(t, 0, l.Flags)
	assert.Equal(t, -1, l.Lineweight)
	assert.True(t, l.Plotting)
}

func TestParse_LayerProperties(t *testing.T) {
	input := dxfText(
		"0", "SECTION", "2", "TABLES",
		"0", "TABLE", "2", "LAYER",
		"0", "LAYER",
		"2", "HIDDEN",
		"62", "-4", // negative: layer switched off, sign preserved
		"6", "DASHED",
		"70", "1",
		"370", "25",
		"290", "0",
		"0", "ENDTAB",
		"0", "ENDSEC",
		"0", "EOF",
	)

	doc := parseString(t, input).Doc
	require.Len(t, doc.Layers, 1)
	assert.Equal(t, dxf.LayerRecord{
		Name:       "HIDDEN",
		Color:      -4,
		Linetype:   "DASHED",
		Flags:      1,
		Lineweight: 25,
		Plotting:   false,
	}, doc.Layers[0])
}

func TestParse_DuplicateLayersKept(t *testing.T) {
	input := dxfText(
		"0", "SECTION", "2", "TABLES",
		"0", "TABLE", "2", "LAYER",
		"0", "LAYER", "2", "WALLS", "62", "1",
		"0", "LAYER", "2", "WALLS", "62", "5",
		"0", "ENDTAB",
		"0", "ENDSEC",
		"0", "EOF",
	)

	doc := parseString(t, input).Doc
	require.Len(t, doc.Layers, 2, "both records stay positionally")

	l, ok := doc.Layer("WALLS")
	require.True(t, ok)
	assert.Equal(t, 5, l.Color, "lookup sees the later definition")
}

func TestParse_OtherTablesDropped(t *testing.T) {
	input := dxfText(
		"0", "SECTION", "2", "TABLES",
		"0", "TABLE", "2", "LTYPE",
		"0", "LTYPE", "2", "DASHED", "70", "0",
		"0", "ENDTAB",
		"0", "TABLE", "2", "LAYER",
		"0", "LAYER", "2", "WALLS",
		"0", "ENDTAB",
		"0", "ENDSEC",
		"0", "EOF",
	)

	doc := parseString(t, input).Doc
	require.Len(t, doc.Layers, 1)
	assert.Equal(t, "WALLS", doc.Layers[0].Name)
}

func TestParse_EntityDefaults(t *testing.T) {
	input := dxfText(
		"0", "SECTION", "2", "ENTITIES",
		"0", "CIRCLE", "10", "1", "20", "2", "40", "3",
		"0", "ENDSEC",
		"0", "EOF",
	)

	doc := parseString(t, input).Doc
	require.Len(t, doc.Entities, 1)
	c := doc.Entities[0].(*dxf.Circle)
	assert.Equal(t, "0", c.LayerName, "layer defaults to 0")
	assert.Nil(t, c.Color, "no color override")
	assert.Equal(t, "0", c.Center.Z.Raw, "z defaults to zero")
}

func TestParse_ColorOverride(t *testing.T) {
	input := dxfText(
		"0", "SECTION", "2", "ENTITIES",
		"0", "LINE", "8", "WALLS", "62", "256",
		"10", "0", "20", "0", "11", "1", "21", "1",
		"0", "ENDSEC",
		"0", "EOF",
	)

	doc := parseString(t, input).Doc
	require.Len(t, doc.Entities, 1)
	l := doc.Entities[0].(*dxf.Line)
	require.NotNil(t, l.Color)
	assert.Equal(t, 256, *l.Color)
}

func TestParse_Arc(t *testing.T) {
	input := dxfText(
		"0", "SECTION", "2", "ENTITIES",
		"0", "ARC",
		"8", "DOORS",
		"10", "5.5", "20", "-3.25", "30", "0",
		"40", "2.75",
		"50", "45.0",
		"51", "135.0",
		"0", "ENDSEC",
		"0", "EOF",
	)

	doc := parseString(t, input).Doc
	require.Len(t, doc.Entities, 1)
	a := doc.Entities[0].(*dxf.Arc)
	assert.Equal(t, "5.5", a.Center.X.Raw)
	assert.Equal(t, "-3.25", a.Center.Y.Raw)
	assert.Equal(t, "2.75", a.Radius.Raw)
	assert.Equal(t, "45.0", a.StartAngle.Raw)
	assert.Equal(t, "135.0", a.EndAngle.Raw)
}

func TestParse_DroppedEntities(t *testing.T) {
	tests := []struct {
		name    string
		tags    []string
		warning string
	}{
		{
			name:    "circle without radius",
			tags:    []string{"0", "CIRCLE", "10", "5", "20", "5"},
			warning: "missing radius",
		},
		{
			name:    "circle with zero radius",
			tags:    []string{"0", "CIRCLE", "10", "5", "20", "5", "40", "0"},
			warning: "not positive",
		},
		{
			name:    "line without end point",
			tags:    []string{"0", "LINE", "10", "0", "20", "0"},
			warning: "missing end point",
		},
		{
			name:    "arc without angles",
			tags:    []string{"0", "ARC", "10", "0", "20", "0", "40", "1"},
			warning: "missing start angle",
		},
		{
			name:    "unparsable coordinate",
			tags:    []string{"0", "LINE", "10", "x", "20", "0", "11", "1", "21", "1"},
			warning: "code 10",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lines := append([]string{"0", "SECTION", "2", "ENTITIES"}, tt.tags...)
			// A valid trailing entity proves parsing continued.
			lines = append(lines,
				"0", "LINE", "10", "0", "20", "0", "11", "1", "21", "1",
				"0", "ENDSEC",
				"0", "EOF",
			)

			res := parseString(t, dxfText(lines...))
			require.Len(t, res.Doc.Entities, 1, "only the valid entity survives")
			assert.IsType(t, &dxf.Line{}, res.Doc.Entities[0])

			require.Len(t, res.Warnings, 1)
			assert.Contains(t, res.Warnings[0].Message, tt.warning)
		})
	}
}

func TestParse_UnsupportedEntitiesSilent(t *testing.T) {
	input := dxfText(
		"0", "SECTION", "2", "ENTITIES",
		"0", "POLYLINE", "8", "WALLS", "66", "1",
		"0", "VERTEX", "10", "0", "20", "0",
		"0", "SEQEND",
		"0", "TEXT", "1", "note",
		"0", "ENDSEC",
		"0", "EOF",
	)

	res := parseString(t, input)
	assert.Empty(t, res.Doc.Entities)
	assert.Empty(t, res.Warnings, "filtering is by design, not a failure")
}

func TestParse_PermissiveStructure(t *testing.T) {
	// Stray markers outside their regions are ignored.
	input := dxfText(
		"0", "ENDTAB",
		"0", "ENDSEC",
		"0", "SECTION", "2", "ENTITIES",
		"0", "LINE", "10", "0", "20", "0", "11", "1", "21", "1",
		"0", "ENDSEC",
		"0", "EOF",
	)

	res := parseString(t, input)
	assert.Len(t, res.Doc.Entities, 1)
	assert.Empty(t, res.Warnings)
}

func TestParse_SectionWithoutName(t *testing.T) {
	input := dxfText(
		"0", "SECTION",
		"0", "SECTION", "2", "ENTITIES",
		"0", "CIRCLE", "10", "1", "20", "1", "40", "1",
		"0", "ENDSEC",
		"0", "EOF",
	)

	res := parseString(t, input)
	assert.Len(t, res.Doc.Entities, 1)
}

func TestParse_StopsAtEOFMarker(t *testing.T) {
	input := dxfText(
		"0", "SECTION", "2", "ENTITIES",
		"0", "LINE", "10", "0", "20", "0", "11", "1", "21", "1",
		"0", "ENDSEC",
		"0", "EOF",
		// Anything after the EOF marker is never consumed, even garbage.
		"not-a-code", "value",
	)

	res, err := Parse(strings.NewReader(input))
	require.NoError(t, err)
	assert.Len(t, res.Doc.Entities, 1)
}

func TestParse_MalformedTagAborts(t *testing.T) {
	input := dxfText(
		"0", "SECTION", "2", "ENTITIES",
		"nope", "LINE",
	)

	_, err := Parse(strings.NewReader(input))
	var mErr *tag.MalformedTagError
	require.ErrorAs(t, err, &mErr)
}

func TestParse_TruncatedInputFinalizesRecords(t *testing.T) {
	// No ENDSEC, no EOF marker: open records are still closed out.
	input := dxfText(
		"0", "SECTION", "2", "ENTITIES",
		"0", "CIRCLE", "10", "1", "20", "1", "40", "2",
	)

	res := parseString(t, input)
	require.Len(t, res.Doc.Entities, 1)
}

func TestParse_EntitiesOutsideSectionIgnored(t *testing.T) {
	input := dxfText(
		"0", "LINE", "10", "0", "20", "0", "11", "1", "21", "1",
		"0", "SECTION", "2", "BLOCKS",
		"0", "LINE", "10", "0", "20", "0", "11", "1", "21", "1",
		"0", "ENDSEC",
		"0", "EOF",
	)

	res := parseString(t, input)
	assert.Empty(t, res.Doc.Entities, "entities count only inside ENTITIES")
}

func TestParse_BadLayerFieldWarns(t *testing.T) {
	input := dxfText(
		"0", "SECTION", "2", "TABLES",
		"0", "TABLE", "2", "LAYER",
		"0", "LAYER", "2", "WALLS", "62", "red",
		"0", "ENDTAB",
		"0", "ENDSEC",
		"0", "EOF",
	)

	res := parseString(t, input)
	require.Len(t, res.Doc.Layers, 1)
	assert.Equal(t, 7, res.Doc.Layers[0].Color, "default kept")
	require.Len(t, res.Warnings, 1)
	assert.Contains(t, res.Warnings[0].Message, "layer field code 62")
}
