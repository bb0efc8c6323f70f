package view

import "go4.org/mem"

// StringView is a View known to hold a byte-string payload.
type StringView struct{ View }

// Bytes returns the payload bytes, borrowed from the table's source. The
// slice must not be modified or retained past the table's lifetime.
func (v StringView) Bytes() []byte {
	d := v.descriptor()
	start := d.Position() + int(d.Offset())
	return v.table.Bytes()[start : start+int(d.Size())]
}

// Len returns the payload length in bytes.
func (v StringView) Len() int { return int(v.descriptor().Size()) }

// Equal reports whether v's payload equals the bytes of other, without
// copying either side.
func (v StringView) Equal(other []byte) bool {
	return mem.B(v.Bytes()).Equal(mem.B(other))
}

// EqualString reports whether v's payload equals s, without copying either
// side.
func (v StringView) EqualString(s string) bool {
	return mem.B(v.Bytes()).Equal(mem.S(s))
}

func (v StringView) String() string { return string(v.Bytes()) }
