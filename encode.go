package bencode

import (
	"io"
	"strconv"
)

// Encoder is a Consumer that re-emits the events it receives as canonical
// bencoded bytes. It is grounded on encode_to.hpp: list_item, dict_key, and
// dict_value carry no bytes of their own and are no-ops here.
type Encoder struct {
	w     io.Writer
	count int64
	err   error
}

// NewEncoder returns an Encoder that writes to w.
func NewEncoder(w io.Writer) *Encoder { return &Encoder{w: w} }

// Count reports the number of bytes written so far.
func (e *Encoder) Count() int64 { return e.count }

func (e *Encoder) write(p []byte) {
	if e.err != nil {
		return
	}
	n, err := e.w.Write(p)
	e.count += int64(n)
	e.err = err
}

func (e *Encoder) Integer(v int64) error {
	e.write([]byte{symInteger})
	e.write(strconv.AppendInt(nil, v, 10))
	e.write([]byte{symEnd})
	return e.err
}

func (e *Encoder) String(b []byte) error {
	e.write(strconv.AppendInt(nil, int64(len(b)), 10))
	e.write([]byte{symColon})
	e.write(b)
	return e.err
}

func (e *Encoder) BeginList() error { e.write([]byte{symList}); return e.err }
func (e *Encoder) ListItem() error  { return e.err }
func (e *Encoder) EndList(int) error {
	e.write([]byte{symEnd})
	return e.err
}

func (e *Encoder) BeginDict() error { e.write([]byte{symDict}); return e.err }
func (e *Encoder) DictKey() error   { return e.err }
func (e *Encoder) DictValue() error { return e.err }
func (e *Encoder) EndDict(int) error {
	e.write([]byte{symEnd})
	return e.err
}

func (e *Encoder) Error(err error) {
	if e.err == nil {
		e.err = err
	}
}

var _ Consumer = (*Encoder)(nil)
