package domain

import (
	"fmt"
	"strings"
)

// RRClass represents a DNS class (usually IN for Internet).
type RRClass uint16

// DNS Resource Record Class constants
const (
	RRClassIN RRClass = 1 // IN - Internet
	RRClassCH RRClass = 3 // CH - Chaos
	RRClassHS RRClass = 4 // HS - Hesiod
)

// String returns the textual representation of the RRClass. Unknown codes
// render with the numeric class preserved.
func (c RRClass) String() string {
	switch c {
	case RRClassIN:
		return "IN"
	case RRClassCH:
		return "CH"
	case RRClassHS:
		return "HS"
	default:
		return fmt.Sprintf("CLASS(%d)", uint16(c))
	}
}

// RRClassFromString converts a class name to an RRClass value. Lookup is
// case-insensitive. The second return value reports whether the name was
// recognised.
func RRClassFromString(s string) (RRClass, bool) {
	switch strings.ToUpper(s) {
	case "IN":
		return RRClassIN, true
	case "CH":
		return RRClassCH, true
	case "HS":
		return RRClassHS, true
	default:
		return 0, false
	}
}
