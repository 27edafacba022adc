package format

import (
	"bytes"
	"fmt"
	"strconv"
)

// printer emits group-code/value pairs, one per two output lines, and hands
// out record handles from a counter. Handles depend only on emission order,
// so identical Documents always serialize to identical bytes.
type printer struct {
	buf    bytes.Buffer
	handle int64
}

// Table records carry fixed handles; entity and table-entry handles are
// assigned sequentially above them.
const firstHandle = 0x30

func newPrinter() *printer {
	return &printer{handle: firstHandle - 1}
}

func (p *printer) tag(code int, value string) {
	p.buf.WriteString(strconv.Itoa(code))
	p.buf.WriteByte('\n')
	p.buf.WriteString(value)
	p.buf.WriteByte('\n')
}

func (p *printer) itag(code, value int) {
	p.tag(code, strconv.Itoa(value))
}

func (p *printer) nextHandle() string {
	p.handle++
	return fmt.Sprintf("%X", p.handle)
}

func (p *printer) Bytes() []byte {
	return p.buf.Bytes()
}
