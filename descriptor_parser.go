package bencode

// parserState names a position in the grammar the iterative state machine
// can be in. It is shared by Parser and PushParser so the two drivers
// cannot drift out of step with each other.
type parserState int

const (
	stateValue parserState = iota
	stateListItem
	stateDictKey
	stateDictValue
)

// frame records one entry on the parser's explicit container stack, taking
// the place of native call-stack recursion the way descriptor_parser.hpp's
// descriptor_parser_stack_frame does. A container's own kind (List or
// Dict) is recovered from its header descriptor rather than duplicated
// here, since a dict key can never itself be a container: whatever closes
// while a dict frame is on top of the stack is necessarily that dict's
// value, and whatever closes while a list frame is on top is necessarily
// one of its elements.
type frame struct {
	headerIndex int // index of the container's header descriptor
	count       int // elements (List) or key/value pairs (Dict) seen so far
}

// A Parser decodes a bounded byte range into a Table in a single forward
// pass, producing one fixed-width Descriptor per value.
type Parser struct {
	opts ParserOptions
}

// NewParser returns a Parser configured with opts.
func NewParser(opts ParserOptions) *Parser { return &Parser{opts: opts} }

// Parse decodes data and returns the resulting Table. By default exactly
// one top-level value is expected; set ParserOptions.AllowTrailingValues to
// decode a concatenation of top-level values instead.
func (p *Parser) Parse(data []byte) (t *Table, err error) {
	defer recoverParseError(&err)

	if len(data) == 0 {
		return nil, parseErr(ErrcUnexpectedEOF, 0, ContextNone)
	}

	dp := &descriptorPass{opts: p.opts, data: data, limit: p.opts.recursionLimit()}
	for {
		dp.parseOneValue()
		if dp.pos >= len(data) {
			break
		}
		if !p.opts.AllowTrailingValues {
			dp.fail(ErrcExpectedEOF, dp.pos, ContextNone)
		}
	}
	if n := len(dp.records); n > 0 {
		dp.records[n-1].addModifier(Stop)
	}
	return &Table{records: dp.records, src: data}, nil
}

// descriptorPass carries the mutable state of one forward pass over data.
type descriptorPass struct {
	opts    ParserOptions
	data    []byte
	pos     int
	records []Descriptor
	stack   []frame
	limit   int
}

func (dp *descriptorPass) fail(errc Errc, pos int, ctx Context) {
	panic(parseErr(errc, pos, ctx).(*ParseError))
}

func (dp *descriptorPass) append(d Descriptor) int {
	if dp.opts.ValueLimit > 0 && len(dp.records) >= dp.opts.ValueLimit {
		dp.fail(ErrcValueLimitExceeded, dp.pos, ContextNone)
	}
	dp.records = append(dp.records, d)
	return len(dp.records) - 1
}

// parentKind returns the primary kind of the container currently on top of
// the stack, or 0 if the stack is empty.
func (dp *descriptorPass) parentKind() Type {
	if len(dp.stack) == 0 {
		return 0
	}
	return dp.records[dp.stack[len(dp.stack)-1].headerIndex].Type().Kind()
}

// parseOneValue runs the iterative state machine until exactly one
// top-level value (and everything it contains) has been consumed.
func (dp *descriptorPass) parseOneValue() {
	state := stateValue
	for {
		// Every iteration appends one record or fails, so a full table is
		// reported here, ahead of any grammar error at the same position.
		if dp.opts.ValueLimit > 0 && len(dp.records) >= dp.opts.ValueLimit {
			dp.fail(ErrcValueLimitExceeded, dp.pos, ContextNone)
		}
		if dp.pos >= len(dp.data) {
			dp.fail(eofErrc(state), dp.pos, contextFor(state))
		}
		b := dp.data[dp.pos]

		if (state == stateListItem || state == stateDictKey) && b == symEnd {
			dp.closeContainer()
			if len(dp.stack) == 0 {
				return
			}
			state, dp.stack[len(dp.stack)-1].count = dp.resumeState()
			continue
		}
		if state == stateDictKey && !isDigit(b) {
			dp.fail(ErrcExpectedDictKeyOrEnd, dp.pos, ContextDict)
		}

		var modifier Type
		switch state {
		case stateListItem:
			modifier = ListValue
		case stateDictKey:
			modifier = DictKey
		case stateDictValue:
			modifier = DictValue
		}

		switch {
		case b == symInteger:
			dp.parseInteger(modifier)
		case isDigit(b):
			dp.parseString(modifier)
		case b == symList:
			dp.openContainer(List, modifier)
			state = stateListItem
			continue
		case b == symDict:
			dp.openContainer(Dict, modifier)
			state = stateDictKey
			continue
		default:
			dp.fail(expectedValueErrc(state), dp.pos, contextFor(state))
		}

		switch state {
		case stateValue:
			return
		case stateListItem:
			dp.stack[len(dp.stack)-1].count++
		case stateDictKey:
			state = stateDictValue
		case stateDictValue:
			dp.stack[len(dp.stack)-1].count++
			state = stateDictKey
		}
	}
}

func expectedValueErrc(state parserState) Errc {
	switch state {
	case stateListItem:
		return ErrcExpectedListValueOrEnd
	case stateDictValue:
		return ErrcExpectedDictValue
	default:
		return ErrcExpectedValue
	}
}

// eofErrc reports the error for input that ends while the machine is in
// state: an open list or dict still expects a member or its closing 'e'.
func eofErrc(state parserState) Errc {
	switch state {
	case stateListItem:
		return ErrcExpectedListValueOrEnd
	case stateDictKey:
		return ErrcExpectedDictKeyOrEnd
	default:
		return ErrcUnexpectedEOF
	}
}

func contextFor(state parserState) Context {
	switch state {
	case stateListItem:
		return ContextList
	case stateDictKey, stateDictValue:
		return ContextDict
	default:
		return ContextNone
	}
}

func (dp *descriptorPass) parseInteger(modifier Type) {
	v, next, err := decodeInteger(dp.data, dp.pos)
	if err != nil {
		panic(err)
	}
	dp.append(newIntegerDescriptor(Integer|modifier, dp.pos, v))
	dp.pos = next
}

func (dp *descriptorPass) parseString(modifier Type) {
	offset, size, next, err := decodeStringToken(dp.data, dp.pos)
	if err != nil {
		panic(err)
	}
	dp.append(newSpanDescriptor(String|modifier, dp.pos, offset, size))
	dp.pos = next
}

func (dp *descriptorPass) openContainer(kind Type, modifier Type) {
	if len(dp.stack) >= dp.limit {
		dp.fail(ErrcRecursionDepthExceeded, dp.pos, ContextNone)
	}
	idx := dp.append(newSpanDescriptor(kind|modifier, dp.pos, 0, 0))
	dp.stack = append(dp.stack, frame{headerIndex: idx})
	dp.pos++
}

// closeContainer pops the container on top of the stack, back-patches its
// header with the final offset/size, and appends its End record, tagged
// with the role modifier (ListValue/DictValue) of whatever now-exposed
// parent frame it is nested inside — mirroring
// descriptor_parser.hpp's handle_nested_structures, which folds the
// parent's role onto the child's End record at the moment the child closes.
func (dp *descriptorPass) closeContainer() {
	top := dp.stack[len(dp.stack)-1]
	dp.stack = dp.stack[:len(dp.stack)-1]

	header := dp.records[top.headerIndex]
	offset := uint32(len(dp.records) - top.headerIndex) // distance from header to the End record about to be appended
	size := uint32(top.count)
	dp.records[top.headerIndex].setSpan(offset, size)

	endTyp := header.Type().Kind() | End
	switch dp.parentKind() {
	case List:
		endTyp |= ListValue
	case Dict:
		endTyp |= DictValue
	}
	dp.append(newSpanDescriptor(endTyp, dp.pos, offset, size))
	dp.pos++
}

// resumeState reports the state (and the parent frame's updated count) the
// enclosing container should resume in once one of its members — a scalar
// or a nested container — has just finished.
func (dp *descriptorPass) resumeState() (parserState, int) {
	switch dp.parentKind() {
	case List:
		top := dp.stack[len(dp.stack)-1]
		return stateListItem, top.count + 1
	case Dict:
		top := dp.stack[len(dp.stack)-1]
		return stateDictKey, top.count + 1
	default:
		return stateValue, 0
	}
}
