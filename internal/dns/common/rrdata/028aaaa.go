package rrdata

import (
	"fmt"
	"net"

	"github.com/haukened/dog/internal/dns/common/wire"
	"github.com/haukened/dog/internal/dns/domain"
)

// AAAA is an IPv6 address record body.
type AAAA struct {
	Addr net.IP
}

// RRType returns the type code for AAAA records.
func (AAAA) RRType() domain.RRType { return domain.RRTypeAAAA }

// String renders the address in RFC 5952 form.
func (a AAAA) String() string { return a.Addr.String() }

// decodeAAAA reads the sixteen address octets of an AAAA record.
func decodeAAAA(c *wire.Cursor) (AAAA, error) {
	b, err := c.ReadBytes(net.IPv6len)
	if err != nil {
		return AAAA{}, err
	}
	return AAAA{Addr: net.IP(b)}, nil
}

// encodeAAAA writes the sixteen address octets of an AAAA record.
func encodeAAAA(w *wire.Writer, a AAAA) error {
	v6 := a.Addr.To16()
	if v6 == nil {
		return fmt.Errorf("invalid AAAA record address: %s", a.Addr)
	}
	return w.WriteBytes(v6)
}
