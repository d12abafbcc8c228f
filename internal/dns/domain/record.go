package domain

import (
	"github.com/haukened/dog/internal/dns/common/wire"
)

// RData is a parsed, typed record body. Implementations live in the rrdata
// package; the Unknown body covers every unregistered type code.
type RData interface {
	// RRType returns the type code the body belongs to.
	RRType() RRType

	// String renders the body in presentation form.
	String() string
}

// ResourceRecord represents a single DNS resource record as decoded from
// (or destined for) the wire. Data always holds the raw RDATA bytes; Body
// holds the typed parse of those bytes.
//
// TTL is unsigned seconds. The wire field is formally signed, but values
// at or above 2^31 are accepted and carried through as-is.
type ResourceRecord struct {
	Name  wire.Name
	Type  RRType
	Class RRClass
	TTL   uint32
	Data  []byte
	Body  RData
}
