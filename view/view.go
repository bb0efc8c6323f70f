// Package view provides zero-copy, non-owning handles over the values
// indexed by a bencode.Table: read access without walking back through the
// parser or allocating a parallel tree, per the descriptor-table model in
// the root package's documentation.
package view

import (
	"fmt"
	"strconv"

	"github.com/gobencode/bencode"
)

// A View is a generic, copyable handle to one value in a Table. Its
// concrete kind is discovered with Kind and narrowed with As*; narrowing to
// the wrong kind panics, matching the precondition-violation contract of
// the C++ bview hierarchy this package is modeled on.
type View struct {
	table *bencode.Table
	index int
}

// Root returns a View over t's single top-level value.
func Root(t *bencode.Table) View { return View{table: t, index: t.RootIndex()} }

// At returns a View over the descriptor at index, canonicalizing an End
// record to its header (see newView). It panics if index is out of range
// for t.
func At(t *bencode.Table, index int) View { return newView(t, index) }

// newView returns a View at index, canonicalizing an End record to its
// header so that views constructed from either end of a container compare
// and iterate identically (test_list_bview.cpp exercises exactly this for
// list_bview).
func newView(t *bencode.Table, index int) View {
	d := t.At(index)
	if d.Type().Has(bencode.End) {
		index = headerIndexOf(t, index)
	}
	return View{table: t, index: index}
}

// headerIndexOf finds the header index of the container whose End record
// sits at endIndex. The End record's own Offset mirrors its header's —
// header + offset == End — so headerIndex = endIndex - offset follows
// directly, with no scan.
func headerIndexOf(t *bencode.Table, endIndex int) int {
	d := t.At(endIndex)
	return endIndex - int(d.Offset())
}

// Table returns the underlying descriptor table.
func (v View) Table() *bencode.Table { return v.table }

// Index returns the header descriptor index of v.
func (v View) Index() int { return v.index }

func (v View) descriptor() bencode.Descriptor { return v.table.At(v.index) }

// Kind reports v's primary bencode type.
func (v View) Kind() bencode.Type { return v.descriptor().Type().Kind() }

func (v View) IsInteger() bool { return v.Kind() == bencode.Integer }
func (v View) IsString() bool  { return v.Kind() == bencode.String }
func (v View) IsList() bool    { return v.Kind() == bencode.List }
func (v View) IsDict() bool    { return v.Kind() == bencode.Dict }

func (v View) wrongKind(want bencode.Type) {
	panic(fmt.Errorf("view: cannot convert %v view to %v view", v.Kind(), want))
}

// AsInteger narrows v to an IntegerView. It panics if v is not an integer.
func (v View) AsInteger() IntegerView {
	if !v.IsInteger() {
		v.wrongKind(bencode.Integer)
	}
	return IntegerView{v}
}

// AsString narrows v to a StringView. It panics if v is not a string.
func (v View) AsString() StringView {
	if !v.IsString() {
		v.wrongKind(bencode.String)
	}
	return StringView{v}
}

// AsList narrows v to a ListView. It panics if v is not a list.
func (v View) AsList() ListView {
	if !v.IsList() {
		v.wrongKind(bencode.List)
	}
	return ListView{v}
}

// AsDict narrows v to a DictView. It panics if v is not a dict.
func (v View) AsDict() DictView {
	if !v.IsDict() {
		v.wrongKind(bencode.Dict)
	}
	return DictView{v}
}

// Span returns the byte range v's encoded representation occupies in the
// table's source bytes.
func (v View) Span() bencode.Span {
	d := v.descriptor()
	switch d.Type().Kind() {
	case bencode.Integer:
		// The grammar forbids leading zeros and negative zero, so the
		// canonical decimal rendering of Value() always has exactly the
		// same length as the digits actually present in the source.
		n := len(strconv.FormatInt(d.Value(), 10))
		return bencode.Span{Pos: d.Position(), End: d.Position() + 1 + n + 1}
	case bencode.String:
		payloadStart := d.Position() + int(d.Offset())
		return bencode.Span{Pos: d.Position(), End: payloadStart + int(d.Size())}
	default: // List, Dict
		end := v.table.At(v.index + int(d.Offset()))
		return bencode.Span{Pos: d.Position(), End: end.Position() + 1}
	}
}

// Bytes returns the raw encoded bytes of v, as they appear in the source.
func (v View) Bytes() []byte { return v.Span().Slice(v.table.Bytes()) }

func (v View) String() string {
	return fmt.Sprintf("View(%v @%d)", v.Kind(), v.index)
}
