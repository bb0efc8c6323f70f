package view_test

import (
	"testing"

	"github.com/creachadair/mds/mtest"

	"github.com/gobencode/bencode"
	"github.com/gobencode/bencode/view"
)

func mustTable(t *testing.T, data string) *bencode.Table {
	t.Helper()
	tab, err := bencode.NewParser(bencode.ParserOptions{}).Parse([]byte(data))
	if err != nil {
		t.Fatalf("Parse(%q): %v", data, err)
	}
	return tab
}

func TestIntegerView(t *testing.T) {
	tab := mustTable(t, "i42e")
	v := view.Root(tab)
	if !v.IsInteger() {
		t.Fatalf("Kind() = %v, want Integer", v.Kind())
	}
	if got := v.AsInteger().Value(); got != 42 {
		t.Errorf("Value() = %d, want 42", got)
	}
	if got, want := string(v.Bytes()), "i42e"; got != want {
		t.Errorf("Bytes() = %q, want %q", got, want)
	}
}

func TestStringView(t *testing.T) {
	tab := mustTable(t, "4:spam")
	v := view.Root(tab).AsString()
	if got, want := v.String(), "spam"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
	if !v.EqualString("spam") {
		t.Errorf("EqualString(%q) = false, want true", "spam")
	}
	if v.EqualString("eggs") {
		t.Errorf("EqualString(%q) = true, want false", "eggs")
	}
}

func TestViewKindMismatchPanics(t *testing.T) {
	tab := mustTable(t, "i1e")
	v := view.Root(tab)
	mtest.MustPanic(t, func() { v.AsString() })
	mtest.MustPanic(t, func() { v.AsList() })
	mtest.MustPanic(t, func() { v.AsDict() })
}
