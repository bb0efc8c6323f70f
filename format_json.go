package bencode

import (
	"io"
	"strconv"

	"go4.org/mem"

	"github.com/gobencode/bencode/internal/escape"
)

// DefaultIndent is the indent width JSONEncoder uses when Indent is zero.
const DefaultIndent = 4

// JSONEncoder is a Consumer that projects bencoded events as indented JSON.
// Integers become JSON numbers; byte-string payloads become JSON strings,
// escaped with internal/escape.Quote since a bencode string's payload is an
// arbitrary byte sequence, not necessarily valid UTF-8 text.
//
// Grounded directly on format_json_to.hpp's bookkeeping: a single first/
// after-key flag pair, not one per nesting level, because DictKey/DictValue/
// ListItem always land immediately after the value they describe and
// unconditionally clear first — by the time control returns to an
// enclosing container, first has already been read for every decision it
// needed to make, so nothing is lost by not saving and restoring it.
type JSONEncoder struct {
	w      io.Writer
	Indent int

	depth    int
	first    bool // true until the current container's first member is written
	afterKey bool // true immediately after DictKey, to suppress the separator before a value
	err      error
}

// NewJSONEncoder returns a JSONEncoder that writes to w using DefaultIndent.
func NewJSONEncoder(w io.Writer) *JSONEncoder {
	return &JSONEncoder{w: w, Indent: DefaultIndent, first: true, afterKey: true}
}

func (j *JSONEncoder) write(p []byte) {
	if j.err != nil {
		return
	}
	_, j.err = j.w.Write(p)
}

func (j *JSONEncoder) writeString(s string) { j.write([]byte(s)) }

// next inserts the separator and newline+indent needed before the next
// value is written, mirroring format_json_to.hpp's next() exactly: a comma
// if this isn't the container's first member, then either a newline+indent
// or, immediately after a dict key's ": ", nothing at all.
func (j *JSONEncoder) next() {
	if !j.first {
		j.writeString(",")
	}
	if j.afterKey {
		j.afterKey = false
	} else {
		j.newline()
	}
}

func (j *JSONEncoder) newline() {
	j.writeString("\n")
	for i := 0; i < j.depth*j.indentWidth(); i++ {
		j.writeString(" ")
	}
}

func (j *JSONEncoder) indentWidth() int {
	if j.Indent <= 0 {
		return DefaultIndent
	}
	return j.Indent
}

func (j *JSONEncoder) Integer(v int64) error {
	j.next()
	j.write(strconv.AppendInt(nil, v, 10))
	return j.err
}

func (j *JSONEncoder) String(b []byte) error {
	j.next()
	j.writeString(`"`)
	j.write(escape.Quote(mem.B(b)))
	j.writeString(`"`)
	return j.err
}

func (j *JSONEncoder) BeginList() error {
	j.next()
	j.writeString("[")
	j.depth++
	j.first = true
	return j.err
}

// ListItem fires immediately after a list element completes and marks the
// enclosing list as non-empty, exactly as format_json_to.hpp's list_item.
func (j *JSONEncoder) ListItem() error {
	j.first = false
	return j.err
}

func (j *JSONEncoder) EndList(size int) error {
	j.depth--
	if !j.first {
		j.newline()
	}
	j.writeString("]")
	return j.err
}

func (j *JSONEncoder) BeginDict() error {
	j.next()
	j.writeString("{")
	j.depth++
	j.first = true
	return j.err
}

// DictKey fires immediately after a key string completes: it writes the
// key/value separator and arms afterKey so the value's own next() call
// emits no premature newline, matching format_json_to.hpp's dict_key.
func (j *JSONEncoder) DictKey() error {
	j.writeString(": ")
	j.first = true
	j.afterKey = true
	return j.err
}

// DictValue fires immediately after a value completes and marks the
// enclosing dict as non-empty, exactly as format_json_to.hpp's dict_value.
func (j *JSONEncoder) DictValue() error {
	j.first = false
	return j.err
}

func (j *JSONEncoder) EndDict(size int) error {
	j.depth--
	if !j.first {
		j.newline()
	}
	j.writeString("}")
	return j.err
}

func (j *JSONEncoder) Error(err error) {
	if j.err == nil {
		j.err = err
	}
}

var _ Consumer = (*JSONEncoder)(nil)
