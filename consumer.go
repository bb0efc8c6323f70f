package bencode

// A Consumer receives a stream of parse events from PushParser.Parse, in
// the order values are encountered in a single forward pass over the
// source bytes. Implementations that need to abort parsing return a
// non-nil error from any method; PushParser stops at the next opportunity
// and returns that error (wrapped) from Parse.
//
// String delivers a borrowed view of the payload bytes: the slice is valid
// only for the duration of the call and must be copied if retained.
type Consumer interface {
	Integer(v int64) error
	String(b []byte) error

	BeginList() error
	ListItem() error
	EndList(size int) error

	BeginDict() error
	DictKey() error
	DictValue() error
	EndDict(size int) error

	// Error is called at most once, with the error that caused Parse to
	// stop, before Parse returns. It is not called after a successful
	// parse.
	Error(err error)
}
