package rrdata

import (
	"encoding/base64"

	"github.com/haukened/dog/internal/dns/common/wire"
	"github.com/haukened/dog/internal/dns/domain"
)

// DHCID is a DHCP identifier record body, per RFC 4701. The RDATA is
// opaque to everyone but the DHCP server that wrote it, so it is carried
// and rendered whole.
type DHCID struct {
	Data []byte
}

// RRType returns the type code for DHCID records.
func (DHCID) RRType() domain.RRType { return domain.RRTypeDHCID }

// String renders the identifier in base64, its presentation format.
func (d DHCID) String() string {
	return base64.StdEncoding.EncodeToString(d.Data)
}

func decodeDHCID(c *wire.Cursor) (DHCID, error) {
	data, err := c.ReadRemaining()
	if err != nil {
		return DHCID{}, err
	}
	return DHCID{Data: data}, nil
}

func encodeDHCID(w *wire.Writer, d DHCID) error {
	return w.WriteBytes(d.Data)
}
