package escape

import (
	"testing"

	"go4.org/mem"
)

func TestQuoteUnquoteRoundTrip(t *testing.T) {
	tests := []string{
		"",
		"plain",
		"has \"quotes\" and \\backslash\\",
		"tab\tnewline\ncarriage\rreturn",
		"unicode: é中文",
	}
	for _, in := range tests {
		quoted := Quote(mem.S(in))
		got, err := Unquote(mem.B(quoted))
		if err != nil {
			t.Fatalf("Unquote(Quote(%q)) failed: %v", in, err)
		}
		if string(got) != in {
			t.Errorf("round trip %q -> %q -> %q", in, quoted, got)
		}
	}
}

func TestQuoteInvalidUTF8(t *testing.T) {
	// Bencode string payloads are arbitrary bytes; an invalid UTF-8
	// sequence must not panic and must be replaced, not dropped.
	in := []byte{'a', 0xff, 'b'}
	got := Quote(mem.B(in))
	if want := "a\\ufffdb"; string(got) != want {
		t.Fatalf("Quote(%v) = %q, want %q", in, got, want)
	}
}

func TestUnquoteIncompleteEscape(t *testing.T) {
	if _, err := Unquote(mem.S(`abc\`)); err == nil {
		t.Error("Unquote with a trailing backslash: want error, got nil")
	}
}
