package view

import (
	"errors"
	"fmt"
	"iter"

	"github.com/gobencode/bencode"
)

// ErrOutOfRange is returned (wrapped in a panic, mirroring the C++
// bview hierarchy's at() throwing std::out_of_range) by ListView.At and
// DictView.At when the requested position does not exist.
var ErrOutOfRange = errors.New("view: index out of range")

// ListView is a View known to hold a list.
type ListView struct{ View }

// Len returns the number of elements in the list.
func (v ListView) Len() int { return int(v.descriptor().Size()) }

// Empty reports whether the list has no elements.
func (v ListView) Empty() bool { return v.Len() == 0 }

// At returns the i'th element of the list (0-based). It panics with
// ErrOutOfRange if i is out of bounds.
func (v ListView) At(i int) View {
	if i < 0 || i >= v.Len() {
		panic(fmt.Errorf("ListView.At(%d): %w (len %d)", i, ErrOutOfRange, v.Len()))
	}
	idx := v.index + 1
	for ; i > 0; i-- {
		idx = nextSibling(v.table, idx)
	}
	return newView(v.table, idx)
}

// Front returns the first element. It panics if the list is empty.
func (v ListView) Front() View { return v.At(0) }

// Back returns the last element. It panics if the list is empty.
func (v ListView) Back() View { return v.At(v.Len() - 1) }

// All returns an iterator over the list's elements in order.
func (v ListView) All() iter.Seq[View] {
	return func(yield func(View) bool) {
		idx := v.index + 1
		for i := 0; i < v.Len(); i++ {
			if !yield(newView(v.table, idx)) {
				return
			}
			idx = nextSibling(v.table, idx)
		}
	}
}

// Backward returns an iterator over the list's elements in reverse order.
func (v ListView) Backward() iter.Seq[View] {
	return func(yield func(View) bool) {
		for i := v.Len() - 1; i >= 0; i-- {
			if !yield(v.At(i)) {
				return
			}
		}
	}
}

// nextSibling returns the index of the descriptor immediately following the
// value at idx: idx+1 for a scalar, or idx+offset+1 for a container, whose
// header's offset reaches only as far as its own End record.
func nextSibling(t *bencode.Table, idx int) int {
	d := t.At(idx)
	if d.Type().IsContainer() {
		return idx + int(d.Offset()) + 1
	}
	return idx + 1
}
