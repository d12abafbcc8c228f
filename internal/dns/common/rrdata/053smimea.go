package rrdata

import (
	"encoding/hex"
	"fmt"

	"github.com/haukened/dog/internal/dns/common/wire"
	"github.com/haukened/dog/internal/dns/domain"
)

// SMIMEA is an S/MIME certificate association record body, per RFC 8162.
// The wire layout is identical to TLSA.
type SMIMEA struct {
	CertificateUsage uint8
	Selector         uint8
	MatchingType     uint8
	CertificateData  []byte
}

// RRType returns the type code for SMIMEA records.
func (SMIMEA) RRType() domain.RRType { return domain.RRTypeSMIMEA }

// String renders usage, selector, matching type, and the hex payload.
func (s SMIMEA) String() string {
	return fmt.Sprintf("%d %d %d %s", s.CertificateUsage, s.Selector, s.MatchingType,
		hex.EncodeToString(s.CertificateData))
}

func decodeSMIMEA(c *wire.Cursor) (SMIMEA, error) {
	var s SMIMEA
	var err error
	if s.CertificateUsage, err = c.ReadU8(); err != nil {
		return SMIMEA{}, err
	}
	if s.Selector, err = c.ReadU8(); err != nil {
		return SMIMEA{}, err
	}
	if s.MatchingType, err = c.ReadU8(); err != nil {
		return SMIMEA{}, err
	}
	if s.CertificateData, err = c.ReadRemaining(); err != nil {
		return SMIMEA{}, err
	}
	return s, nil
}

func encodeSMIMEA(w *wire.Writer, s SMIMEA) error {
	for _, b := range []uint8{s.CertificateUsage, s.Selector, s.MatchingType} {
		if err := w.WriteU8(b); err != nil {
			return err
		}
	}
	return w.WriteBytes(s.CertificateData)
}
