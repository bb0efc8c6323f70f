package bencode

// pushFrame is the push-parser analogue of frame: since there is no
// descriptor table to look a container's kind up in, the kind is carried
// directly on the frame instead.
type pushFrame struct {
	kind  Type // List or Dict
	count int
}

// A PushParser decodes a bounded byte range in a single forward pass,
// invoking a Consumer for each event instead of building a Table. It uses
// no memory proportional to the number of values parsed, only to the
// nesting depth.
type PushParser struct {
	opts ParserOptions
}

// NewPushParser returns a PushParser configured with opts.
func NewPushParser(opts ParserOptions) *PushParser { return &PushParser{opts: opts} }

// Parse decodes data, delivering events to c. By default exactly one
// top-level value is expected; set ParserOptions.AllowTrailingValues to
// decode a concatenation of top-level values instead.
func (p *PushParser) Parse(data []byte, c Consumer) (err error) {
	defer func() {
		if err != nil {
			c.Error(err)
		}
	}()
	defer recoverParseError(&err)

	if len(data) == 0 {
		return parseErr(ErrcUnexpectedEOF, 0, ContextNone)
	}

	pp := &pushPass{opts: p.opts, data: data, limit: p.opts.recursionLimit(), c: c}
	for {
		pp.parseOneValue()
		if pp.pos >= len(data) {
			break
		}
		if !p.opts.AllowTrailingValues {
			pp.fail(ErrcExpectedEOF, pp.pos, ContextNone)
		}
	}
	return nil
}

type pushPass struct {
	opts  ParserOptions
	data  []byte
	pos   int
	stack []pushFrame
	limit int
	c     Consumer
}

func (pp *pushPass) fail(errc Errc, pos int, ctx Context) {
	panic(parseErr(errc, pos, ctx).(*ParseError))
}

func (pp *pushPass) parentKind() Type {
	if len(pp.stack) == 0 {
		return 0
	}
	return pp.stack[len(pp.stack)-1].kind
}

func (pp *pushPass) parseOneValue() {
	state := stateValue
	for {
		if pp.pos >= len(pp.data) {
			pp.fail(eofErrc(state), pp.pos, contextFor(state))
		}
		b := pp.data[pp.pos]

		if (state == stateListItem || state == stateDictKey) && b == symEnd {
			pp.closeContainer()
			if len(pp.stack) == 0 {
				return
			}
			state = pp.resumeState()
			continue
		}
		if state == stateDictKey && !isDigit(b) {
			pp.fail(ErrcExpectedDictKeyOrEnd, pp.pos, ContextDict)
		}

		switch {
		case b == symInteger:
			pp.parseInteger()
			pp.emitMarker(state)
		case isDigit(b):
			pp.parseString()
			pp.emitMarker(state)
		case b == symList:
			pp.openContainer(List)
			state = stateListItem
			continue
		case b == symDict:
			pp.openContainer(Dict)
			state = stateDictKey
			continue
		default:
			pp.fail(expectedValueErrc(state), pp.pos, contextFor(state))
		}

		switch state {
		case stateValue:
			return
		case stateListItem:
			pp.stack[len(pp.stack)-1].count++
		case stateDictKey:
			state = stateDictValue
		case stateDictValue:
			pp.stack[len(pp.stack)-1].count++
			state = stateDictKey
		}
	}
}

// emitMarker delivers the role marker for a value that just completed in
// state, mirroring format_json_to.hpp's dict_key/dict_value/list_item
// events: the marker always follows the value it describes, never precedes
// it.
func (pp *pushPass) emitMarker(state parserState) {
	switch state {
	case stateListItem:
		checkConsumerErr(pp.c.ListItem())
	case stateDictKey:
		checkConsumerErr(pp.c.DictKey())
	case stateDictValue:
		checkConsumerErr(pp.c.DictValue())
	}
}

func (pp *pushPass) parseInteger() {
	v, next, err := decodeInteger(pp.data, pp.pos)
	if err != nil {
		panic(err)
	}
	checkConsumerErr(pp.c.Integer(v))
	pp.pos = next
}

func (pp *pushPass) parseString() {
	offset, size, next, err := decodeStringToken(pp.data, pp.pos)
	if err != nil {
		panic(err)
	}
	start := pp.pos + int(offset)
	checkConsumerErr(pp.c.String(pp.data[start : start+int(size)]))
	pp.pos = next
}

func (pp *pushPass) openContainer(kind Type) {
	if len(pp.stack) >= pp.limit {
		pp.fail(ErrcRecursionDepthExceeded, pp.pos, ContextNone)
	}
	if kind == List {
		checkConsumerErr(pp.c.BeginList())
	} else {
		checkConsumerErr(pp.c.BeginDict())
	}
	pp.stack = append(pp.stack, pushFrame{kind: kind})
	pp.pos++
}

// closeContainer pops the container on top of the stack, emits its End
// event, and — if it is nested inside another container — the role marker
// for the value it just completed: a container can only ever have closed as
// a list element or a dict value (a dict key can never be a container), so
// the marker follows from the kind of the frame now exposed on top of the
// stack, the same way descriptorPass.closeContainer derives the End
// record's role modifier from parentKind.
func (pp *pushPass) closeContainer() {
	top := pp.stack[len(pp.stack)-1]
	pp.stack = pp.stack[:len(pp.stack)-1]
	pp.pos++
	if top.kind == List {
		checkConsumerErr(pp.c.EndList(top.count))
	} else {
		checkConsumerErr(pp.c.EndDict(top.count))
	}
	switch pp.parentKind() {
	case List:
		checkConsumerErr(pp.c.ListItem())
	case Dict:
		checkConsumerErr(pp.c.DictValue())
	}
}

func (pp *pushPass) resumeState() parserState {
	switch pp.parentKind() {
	case List:
		pp.stack[len(pp.stack)-1].count++
		return stateListItem
	case Dict:
		pp.stack[len(pp.stack)-1].count++
		return stateDictKey
	default:
		return stateValue
	}
}
