package bencode_test

import (
	"bytes"
	"testing"

	"github.com/gobencode/bencode"
)

func TestJSONEncoderList(t *testing.T) {
	var buf bytes.Buffer
	enc := bencode.NewJSONEncoder(&buf)
	if err := bencode.NewPushParser(bencode.ParserOptions{}).Parse([]byte("li1ei2ee"), enc); err != nil {
		t.Fatalf("Parse: %v", err)
	}
	want := "[\n    1,\n    2\n]"
	if got := buf.String(); got != want {
		t.Errorf("JSON = %q, want %q", got, want)
	}
}

func TestJSONEncoderDict(t *testing.T) {
	var buf bytes.Buffer
	enc := bencode.NewJSONEncoder(&buf)
	if err := bencode.NewPushParser(bencode.ParserOptions{}).Parse([]byte("d3:foo3:bare"), enc); err != nil {
		t.Fatalf("Parse: %v", err)
	}
	want := "{\n    \"foo\": \"bar\"\n}"
	if got := buf.String(); got != want {
		t.Errorf("JSON = %q, want %q", got, want)
	}
}

func TestJSONEncoderEmptyContainers(t *testing.T) {
	for _, tc := range []struct {
		in, want string
	}{
		{"le", "[]"},
		{"de", "{}"},
	} {
		var buf bytes.Buffer
		enc := bencode.NewJSONEncoder(&buf)
		if err := bencode.NewPushParser(bencode.ParserOptions{}).Parse([]byte(tc.in), enc); err != nil {
			t.Fatalf("Parse(%q): %v", tc.in, err)
		}
		if got := buf.String(); got != tc.want {
			t.Errorf("JSON(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestJSONEncoderEscapesStrings(t *testing.T) {
	var buf bytes.Buffer
	enc := bencode.NewJSONEncoder(&buf)
	// A string payload containing a double quote and a control byte.
	input := []byte("3:a\"\n")
	if err := bencode.NewPushParser(bencode.ParserOptions{}).Parse(input, enc); err != nil {
		t.Fatalf("Parse: %v", err)
	}
	want := `"a\"\n"`
	if got := buf.String(); got != want {
		t.Errorf("JSON = %q, want %q", got, want)
	}
}
