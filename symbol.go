package bencode

// The grammar's fixed terminal bytes.
const (
	symInteger byte = 'i'
	symList    byte = 'l'
	symDict    byte = 'd'
	symEnd     byte = 'e'
	symColon   byte = ':'
	symMinus   byte = '-'
)

func isDigit(b byte) bool { return b >= '0' && b <= '9' }
