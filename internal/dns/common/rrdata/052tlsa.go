package rrdata

import (
	"encoding/hex"
	"fmt"

	"github.com/haukened/dog/internal/dns/common/wire"
	"github.com/haukened/dog/internal/dns/domain"
)

// TLSA is a TLS certificate association record body, per RFC 6698.
type TLSA struct {
	Usage           uint8
	Selector        uint8
	MatchingType    uint8
	CertificateData []byte
}

// RRType returns the type code for TLSA records.
func (TLSA) RRType() domain.RRType { return domain.RRTypeTLSA }

// String renders usage, selector, matching type, and the hex payload.
func (t TLSA) String() string {
	return fmt.Sprintf("%d %d %d %s", t.Usage, t.Selector, t.MatchingType,
		hex.EncodeToString(t.CertificateData))
}

func decodeTLSA(c *wire.Cursor) (TLSA, error) {
	var t TLSA
	var err error
	if t.Usage, err = c.ReadU8(); err != nil {
		return TLSA{}, err
	}
	if t.Selector, err = c.ReadU8(); err != nil {
		return TLSA{}, err
	}
	if t.MatchingType, err = c.ReadU8(); err != nil {
		return TLSA{}, err
	}
	if t.CertificateData, err = c.ReadRemaining(); err != nil {
		return TLSA{}, err
	}
	return t, nil
}

func encodeTLSA(w *wire.Writer, t TLSA) error {
	for _, b := range []uint8{t.Usage, t.Selector, t.MatchingType} {
		if err := w.WriteU8(b); err != nil {
			return err
		}
	}
	return w.WriteBytes(t.CertificateData)
}
