package bencode

// A Span identifies a contiguous byte range [Pos, End) within the source
// bytes of a Table.
type Span struct {
	Pos, End int
}

// Len reports the number of bytes covered by the span.
func (s Span) Len() int { return s.End - s.Pos }

// Slice returns the portion of data covered by the span.
func (s Span) Slice(data []byte) []byte { return data[s.Pos:s.End] }
