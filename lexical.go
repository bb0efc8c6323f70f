package bencode

import "math"

// decodeInteger decodes an "i<digits>e" token starting at data[pos], where
// data[pos] == symInteger. It returns the decoded value and the index of
// the byte immediately following the closing 'e'.
func decodeInteger(data []byte, pos int) (value int64, next int, err error) {
	i := pos + 1 // skip 'i'
	neg := false
	if i < len(data) && data[i] == symMinus {
		neg = true
		i++
	}
	start := i
	for i < len(data) && isDigit(data[i]) {
		i++
	}
	if i == start {
		return 0, 0, parseErr(ErrcExpectedValue, pos, ContextInteger)
	}
	digits := data[start:i]
	if len(digits) > 1 && digits[0] == '0' {
		return 0, 0, parseErr(ErrcLeadingZero, pos, ContextInteger)
	}
	if neg && digits[0] == '0' {
		return 0, 0, parseErr(ErrcNegativeZero, pos, ContextInteger)
	}
	if i >= len(data) || data[i] != symEnd {
		if i >= len(data) {
			return 0, 0, parseErr(ErrcUnexpectedEOF, pos, ContextInteger)
		}
		return 0, 0, parseErr(ErrcExpectedEnd, i, ContextInteger)
	}

	var v uint64
	for _, b := range digits {
		d := uint64(b - '0')
		if v > (math.MaxUint64-d)/10 {
			return 0, 0, parseErr(ErrcOutOfRange, pos, ContextInteger)
		}
		v = v*10 + d
	}
	if neg {
		if v > -math.MinInt64 {
			return 0, 0, parseErr(ErrcOutOfRange, pos, ContextInteger)
		}
		value = -int64(v)
	} else {
		if v > math.MaxInt64 {
			return 0, 0, parseErr(ErrcOutOfRange, pos, ContextInteger)
		}
		value = int64(v)
	}
	return value, i + 1, nil
}

// decodeStringToken decodes a "<len>:<bytes>" token starting at data[pos],
// where data[pos] is a decimal digit. It returns the payload's size and its
// offset — the distance in bytes from pos to the start of the payload, i.e.
// the width of the "<len>:" prefix, so that pos+offset is the payload's
// absolute start — and the index immediately following the payload.
func decodeStringToken(data []byte, pos int) (offset, size uint32, next int, err error) {
	i := pos
	start := i
	for i < len(data) && isDigit(data[i]) {
		i++
	}
	digits := data[start:i]
	if len(digits) > 1 && digits[0] == '0' {
		return 0, 0, 0, parseErr(ErrcLeadingZero, pos, ContextString)
	}
	if i >= len(data) {
		return 0, 0, 0, parseErr(ErrcUnexpectedEOF, pos, ContextString)
	}
	if data[i] != symColon {
		return 0, 0, 0, parseErr(ErrcExpectedColon, i, ContextString)
	}

	var length uint64
	for _, b := range digits {
		d := uint64(b - '0')
		if length > (math.MaxUint32-d)/10 {
			return 0, 0, 0, parseErr(ErrcSizeLimitExceeded, pos, ContextString)
		}
		length = length*10 + d
	}
	i++ // skip ':'
	payloadStart := i
	end := payloadStart + int(length)
	if end < payloadStart || end > len(data) {
		return 0, 0, 0, parseErr(ErrcUnexpectedEOF, pos, ContextString)
	}
	return uint32(payloadStart - pos), uint32(length), end, nil
}
