package bencode

// A Table is the result of parsing a byte range with Parser.Parse: a flat
// array of Descriptor records indexing every value found, in the order the
// forward pass visited them, plus a borrowed reference to the source bytes
// the records point into.
//
// Table does not copy the source; callers must not mutate src for as long
// as the Table (or any view derived from it) is in use.
type Table struct {
	records []Descriptor
	src     []byte
}

// Len returns the number of descriptor records in the table.
func (t *Table) Len() int { return len(t.records) }

// At returns the descriptor at index i. It panics if i is out of range.
func (t *Table) At(i int) Descriptor { return t.records[i] }

// Bytes returns the source bytes the table's descriptors index into. The
// returned slice must not be modified.
func (t *Table) Bytes() []byte { return t.src }

// RootIndex returns the descriptor index of the table's single top-level
// value.
func (t *Table) RootIndex() int { return 0 }
