// Package testdata holds named byte-string fixtures shared by the parser
// and view test suites, in the spirit of the fixture table the original
// C++ test suite's push_parser tests draw from (tests/data.hpp).
package testdata

var (
	// Scalars.
	Zero        = []byte("i0e")
	PositiveInt = []byte("i63e")
	NegativeInt = []byte("i-63e")
	MaxInt64    = []byte("i9223372036854775807e")
	MinInt64    = []byte("i-9223372036854775808e")
	EmptyString = []byte("0:")
	ShortString = []byte("4:spam")

	// Containers.
	EmptyList   = []byte("le")
	IntList     = []byte("li1ei2ee")
	EmptyDict   = []byte("de")
	SimpleDict  = []byte("d3:foo3:bare")
	NestedMixed = []byte("d4:listli1e2:hi3:fooe4:name3:bobe")

	// A small torrent-like info dict, exercising nested dicts and
	// multi-digit lengths.
	TorrentLike = []byte("d4:infod6:lengthi1024e4:name8:test.iso12:piece lengthi256eee")

	// Rejected inputs, one per rejection case exercised by push_parser.cpp.
	// ErrUnterminatedString and ErrExpectedValue (the empty input) both fail
	// with ErrcUnexpectedEOF.
	ErrLeadingZero        = []byte("i03e")
	ErrNegativeZero       = []byte("i-0e")
	ErrUnterminatedString = []byte("5:hi")
	ErrExpectedColon      = []byte("5hello")
	ErrExpectedListEnd    = []byte("li1e")
	ErrExpectedDictKeyOrEnd = []byte("di1ei2ee")
	ErrExpectedValue      = []byte("")
	ErrTrailingGarbage    = []byte("i1ei2e")
)

// RecursionLimitList returns a list nested depth levels deep, e.g. depth=3
// yields "llleee".
func RecursionLimitList(depth int) []byte {
	buf := make([]byte, 0, depth*2)
	for i := 0; i < depth; i++ {
		buf = append(buf, 'l')
	}
	for i := 0; i < depth; i++ {
		buf = append(buf, 'e')
	}
	return buf
}
