package rrdata

import (
	"github.com/haukened/dog/internal/dns/common/wire"
	"github.com/haukened/dog/internal/dns/domain"
)

// NS is a name server record body.
type NS struct {
	Nameserver wire.Name
}

// RRType returns the type code for NS records.
func (NS) RRType() domain.RRType { return domain.RRTypeNS }

// String renders the nameserver name.
func (n NS) String() string { return n.Nameserver.String() }

func decodeNS(c *wire.Cursor) (NS, error) {
	name, err := wire.ReadName(c)
	if err != nil {
		return NS{}, err
	}
	return NS{Nameserver: name}, nil
}

func encodeNS(w *wire.Writer, n NS) error {
	return w.WriteName(n.Nameserver)
}
