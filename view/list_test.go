package view_test

import (
	"testing"

	"github.com/creachadair/mds/mtest"

	"github.com/gobencode/bencode/view"
)

func TestListViewBasic(t *testing.T) {
	tab := mustTable(t, "li1ei2ei3ee")
	l := view.Root(tab).AsList()
	if l.Empty() {
		t.Fatal("Empty() = true, want false")
	}
	if got, want := l.Len(), 3; got != want {
		t.Fatalf("Len() = %d, want %d", got, want)
	}
	for i, want := range []int64{1, 2, 3} {
		if got := l.At(i).AsInteger().Value(); got != want {
			t.Errorf("At(%d) = %d, want %d", i, got, want)
		}
	}
	if got := l.Front().AsInteger().Value(); got != 1 {
		t.Errorf("Front() = %d, want 1", got)
	}
	if got := l.Back().AsInteger().Value(); got != 3 {
		t.Errorf("Back() = %d, want 3", got)
	}
}

func TestListViewEmpty(t *testing.T) {
	tab := mustTable(t, "le")
	l := view.Root(tab).AsList()
	if !l.Empty() || l.Len() != 0 {
		t.Fatalf("Empty()=%v Len()=%d, want true 0", l.Empty(), l.Len())
	}
	mtest.MustPanic(t, func() { l.At(0) })
	mtest.MustPanic(t, func() { l.Front() })
}

func TestListViewAll(t *testing.T) {
	tab := mustTable(t, "li1ei2ei3ee")
	l := view.Root(tab).AsList()
	var got []int64
	for v := range l.All() {
		got = append(got, v.AsInteger().Value())
	}
	want := []int64{1, 2, 3}
	if len(got) != len(want) {
		t.Fatalf("All() yielded %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("All()[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestListViewBackward(t *testing.T) {
	tab := mustTable(t, "li1ei2ei3ee")
	l := view.Root(tab).AsList()
	var got []int64
	for v := range l.Backward() {
		got = append(got, v.AsInteger().Value())
	}
	want := []int64{3, 2, 1}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Backward()[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestListViewNested(t *testing.T) {
	tab := mustTable(t, "l3:fool1:x1:yeli1eee")
	l := view.Root(tab).AsList()
	if got, want := l.Len(), 3; got != want {
		t.Fatalf("Len() = %d, want %d", got, want)
	}
	if got := l.At(0).AsString().String(); got != "foo" {
		t.Errorf("At(0) = %q, want %q", got, "foo")
	}
	inner := l.At(1).AsList()
	if got, want := inner.Len(), 2; got != want {
		t.Fatalf("inner.Len() = %d, want %d", got, want)
	}
	if got := inner.At(0).AsString().String(); got != "x" {
		t.Errorf("inner.At(0) = %q, want %q", got, "x")
	}
	last := l.At(2).AsList()
	if got, want := last.Len(), 1; got != want {
		t.Fatalf("last.Len() = %d, want %d", got, want)
	}
	if got := last.At(0).AsInteger().Value(); got != 1 {
		t.Errorf("last.At(0) = %d, want 1", got)
	}
}

func TestListViewEndCanonicalizesToHeader(t *testing.T) {
	tab := mustTable(t, "li1ee")
	header := view.Root(tab)
	endIdx := tab.Len() - 1
	fromEnd := view.At(tab, endIdx)
	if fromEnd.Index() != header.Index() {
		t.Fatalf("view.At(end) index = %d, want header index %d", fromEnd.Index(), header.Index())
	}
	if fromEnd.AsList().Len() != header.AsList().Len() {
		t.Errorf("Len() mismatch between header and end-constructed views")
	}
}
