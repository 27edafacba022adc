package tag

import "fmt"

// MalformedTagError reports a code/value pair that could not be read: either
// the code line is not an integer, or the input ended after a code line with
// no value line to pair it with.
type MalformedTagError struct {
	Line      int    // line number of the offending code line
	Text      string // the code line as read
	Truncated bool   // input ended before the value line
}

func (e *MalformedTagError) Error() string {
	if e.Truncated {
		return fmt.Sprintf("malformed tag at line %d: code line has no value line", e.Line)
	}
	return fmt.Sprintf("malformed tag at line %d: %q is not a group code", e.Line, e.Text)
}
