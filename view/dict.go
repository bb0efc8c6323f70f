package view

import (
	"bytes"
	"errors"
	"fmt"
	"iter"

	"go4.org/mem"
)

// ErrKeyNotFound is returned (wrapped in a panic) by DictView.Get when the
// requested key is absent.
var ErrKeyNotFound = errors.New("view: key not found")

// DictView is a View known to hold a dict.
type DictView struct{ View }

// Len returns the number of key/value pairs.
func (v DictView) Len() int { return int(v.descriptor().Size()) }

// Empty reports whether the dict has no entries.
func (v DictView) Empty() bool { return v.Len() == 0 }

// entry returns the key and value indices of the i'th pair (0-based), by
// walking forward from the header — the descriptor table gives no faster
// random access to the i'th entry, so each call costs O(i) regardless of key
// order, and Find and IsSorted, which call it once per entry, cost O(n²). A
// binary search over positions would still need this same O(i) walk to
// reach position i, so it buys nothing over a scan; see DESIGN.md.
func (v DictView) entry(i int) (keyIdx, valIdx int) {
	idx := v.index + 1
	for ; i > 0; i-- {
		idx = nextSibling(v.table, idx) // skip key
		idx = nextSibling(v.table, idx) // skip value
	}
	valIdx = nextSibling(v.table, idx)
	return idx, valIdx
}

// At returns the i'th key/value pair (0-based). It panics with
// ErrOutOfRange if i is out of bounds.
func (v DictView) At(i int) (StringView, View) {
	if i < 0 || i >= v.Len() {
		panic(fmt.Errorf("DictView.At(%d): %w (len %d)", i, ErrOutOfRange, v.Len()))
	}
	keyIdx, valIdx := v.entry(i)
	return StringView{newView(v.table, keyIdx)}, newView(v.table, valIdx)
}

// Find looks up key by exact byte match and reports whether it was
// present.
func (v DictView) Find(key []byte) (View, bool) {
	target := mem.B(key)
	for i := 0; i < v.Len(); i++ {
		k, val := v.At(i)
		if mem.B(k.Bytes()).Equal(target) {
			return val, true
		}
	}
	return View{}, false
}

// Get looks up key and panics with ErrKeyNotFound if it is absent.
func (v DictView) Get(key []byte) View {
	val, ok := v.Find(key)
	if !ok {
		panic(fmt.Errorf("DictView.Get(%q): %w", key, ErrKeyNotFound))
	}
	return val
}

// Contains reports whether key is present.
func (v DictView) Contains(key []byte) bool {
	_, ok := v.Find(key)
	return ok
}

// IsSorted reports whether the dict's keys appear in strictly ascending
// byte order, the structural invariant the parser itself does not enforce.
func (v DictView) IsSorted() bool {
	n := v.Len()
	if n < 2 {
		return true
	}
	prevKey, _ := v.At(0)
	prev := prevKey.Bytes()
	for i := 1; i < n; i++ {
		k, _ := v.At(i)
		cur := k.Bytes()
		if bytes.Compare(prev, cur) >= 0 {
			return false
		}
		prev = cur
	}
	return true
}

// All returns an iterator over the dict's key/value pairs in encoded order.
func (v DictView) All() iter.Seq2[StringView, View] {
	return func(yield func(StringView, View) bool) {
		idx := v.index + 1
		for i := 0; i < v.Len(); i++ {
			key := StringView{newView(v.table, idx)}
			valIdx := nextSibling(v.table, idx)
			val := newView(v.table, valIdx)
			if !yield(key, val) {
				return
			}
			idx = nextSibling(v.table, valIdx)
		}
	}
}
