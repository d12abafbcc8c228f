package rrdata

import (
	"encoding/base64"
	"fmt"

	"github.com/haukened/dog/internal/dns/common/wire"
	"github.com/haukened/dog/internal/dns/domain"
)

// RRSIG is a DNSSEC signature record body, per RFC 4034.
type RRSIG struct {
	TypeCovered domain.RRType
	Algorithm   uint8
	Labels      uint8
	OriginalTTL uint32
	Expiration  uint32
	Inception   uint32
	KeyTag      uint16
	SignerName  wire.Name
	Signature   []byte
}

// RRType returns the type code for RRSIG records.
func (RRSIG) RRType() domain.RRType { return domain.RRTypeRRSIG }

// String renders the signature fields with the signature itself in base64.
func (r RRSIG) String() string {
	return fmt.Sprintf("%s %d %d %d %d %d %d %s %s",
		r.TypeCovered, r.Algorithm, r.Labels, r.OriginalTTL,
		r.Expiration, r.Inception, r.KeyTag, r.SignerName,
		base64.StdEncoding.EncodeToString(r.Signature))
}

func decodeRRSIG(c *wire.Cursor) (RRSIG, error) {
	var r RRSIG
	typeCovered, err := c.ReadU16()
	if err != nil {
		return RRSIG{}, err
	}
	r.TypeCovered = domain.RRType(typeCovered)
	if r.Algorithm, err = c.ReadU8(); err != nil {
		return RRSIG{}, err
	}
	if r.Labels, err = c.ReadU8(); err != nil {
		return RRSIG{}, err
	}
	for _, field := range []*uint32{&r.OriginalTTL, &r.Expiration, &r.Inception} {
		if *field, err = c.ReadU32(); err != nil {
			return RRSIG{}, err
		}
	}
	if r.KeyTag, err = c.ReadU16(); err != nil {
		return RRSIG{}, err
	}
	if r.SignerName, err = wire.ReadName(c); err != nil {
		return RRSIG{}, fmt.Errorf("RRSIG signer: %w", err)
	}
	if r.Signature, err = c.ReadRemaining(); err != nil {
		return RRSIG{}, err
	}
	return r, nil
}

func encodeRRSIG(w *wire.Writer, r RRSIG) error {
	if err := w.WriteU16(uint16(r.TypeCovered)); err != nil {
		return err
	}
	if err := w.WriteU8(r.Algorithm); err != nil {
		return err
	}
	if err := w.WriteU8(r.Labels); err != nil {
		return err
	}
	for _, field := range []uint32{r.OriginalTTL, r.Expiration, r.Inception} {
		if err := w.WriteU32(field); err != nil {
			return err
		}
	}
	if err := w.WriteU16(r.KeyTag); err != nil {
		return err
	}
	if err := w.WriteName(r.SignerName); err != nil {
		return err
	}
	return w.WriteBytes(r.Signature)
}
