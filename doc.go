// Package bencode implements the bencode encoding: a compact,
// length-prefixed, self-describing format for integers, byte strings,
// ordered lists, and key-ordered dictionaries.
//
// # Parsing
//
// [Parser] decodes a byte range in a single forward pass into a [Table]: a
// flat array of fixed-width descriptor records, each locating one value in
// the source bytes without copying it.
//
//	p := bencode.NewParser(bencode.ParserOptions{})
//	table, err := p.Parse([]byte("d3:foo3:bare"))
//
// [PushParser] runs the identical state machine but delivers events to a
// [Consumer] instead of building a table, for callers who want to project
// bencoded input directly into their own structure without materializing
// descriptors.
//
// # Views
//
// The github.com/gobencode/bencode/view package builds zero-copy,
// non-owning handles ([view.View] and its typed narrowings) atop a Table,
// for reading a parsed value without walking the descriptor array by hand.
//
// # Encoding
//
// [Encoder] and [JSONEncoder] are Consumer implementations: the former
// re-emits canonical bencoded bytes, the latter projects the same event
// stream as indented JSON for inspection.
package bencode
