package rrdata

import (
	"fmt"
	"net"

	"github.com/haukened/dog/internal/dns/common/wire"
	"github.com/haukened/dog/internal/dns/domain"
)

// A is an IPv4 address record body.
type A struct {
	Addr net.IP
}

// RRType returns the type code for A records.
func (A) RRType() domain.RRType { return domain.RRTypeA }

// String renders the address in dotted-quad form.
func (a A) String() string { return a.Addr.String() }

// decodeA reads the four address octets of an A record.
func decodeA(c *wire.Cursor) (A, error) {
	b, err := c.ReadBytes(net.IPv4len)
	if err != nil {
		return A{}, err
	}
	return A{Addr: net.IP(b)}, nil
}

// encodeA writes the four address octets of an A record.
func encodeA(w *wire.Writer, a A) error {
	v4 := a.Addr.To4()
	if v4 == nil {
		return fmt.Errorf("invalid A record address: %s", a.Addr)
	}
	return w.WriteBytes(v4)
}
