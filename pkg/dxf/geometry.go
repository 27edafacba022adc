package dxf

import (
	"strconv"
	"strings"
)

// Real is a numeric field that remembers its source text. Emitting Raw
// instead of reformatting Val keeps cleaned output byte-identical to the
// coordinates, radii, and angles of the source file.
type Real struct {
	Raw string
	Val float64
}

// ParseReal parses s as a DXF floating-point value, keeping the source text.
func ParseReal(s string) (Real, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return Real{}, err
	}
	return Real{Raw: s, Val: v}, nil
}

// Zero is the literal zero value used when an optional coordinate is absent.
var Zero = Real{Raw: "0", Val: 0}

// Point3 is a 3D point. Z defaults to zero when the source omits it.
type Point3 struct {
	X, Y, Z Real
}
