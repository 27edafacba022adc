package tag

import (
	"bufio"
	"io"
	"strconv"
	"strings"
)

// Reader yields Tags from an ASCII DXF stream. Each call to Next consumes
// exactly two physical lines: an integer group code, then the value verbatim
// with its line terminator stripped. A Reader is single-pass; restart from
// the beginning by constructing a new one over the source.
type Reader struct {
	scan *bufio.Scanner
	line int // number of the last line read
}

// NewReader creates a Reader over r.
func NewReader(r io.Reader) *Reader {
	return &Reader{scan: bufio.NewScanner(r)}
}

// Next returns the next tag in the stream. It returns io.EOF at end of
// input, and a *MalformedTagError when the code line is not an integer or
// the input ends between a code line and its value line.
func (r *Reader) Next() (Tag, error) {
	if !r.scan.Scan() {
		if err := r.scan.Err(); err != nil {
			return Tag{}, err
		}
		return Tag{}, io.EOF
	}
	r.line++
	codeLine := r.scan.Text()

	code, err := strconv.Atoi(strings.TrimSpace(codeLine))
	if err != nil {
		return Tag{}, &MalformedTagError{Line: r.line, Text: codeLine}
	}

	if !r.scan.Scan() {
		if err := r.scan.Err(); err != nil {
			return Tag{}, err
		}
		return Tag{}, &MalformedTagError{Line: r.line, Text: codeLine, Truncated: true}
	}
	r.line++

	return Tag{Code: code, Value: r.scan.Text(), Line: r.line - 1}, nil
}
