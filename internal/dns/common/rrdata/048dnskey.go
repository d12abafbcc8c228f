package rrdata

import (
	"encoding/base64"
	"fmt"

	"github.com/haukened/dog/internal/dns/common/wire"
	"github.com/haukened/dog/internal/dns/domain"
)

// DNSKEY is a DNSSEC public key record body, per RFC 4034.
type DNSKEY struct {
	Flags     uint16
	Protocol  uint8
	Algorithm uint8
	PublicKey []byte
}

// RRType returns the type code for DNSKEY records.
func (DNSKEY) RRType() domain.RRType { return domain.RRTypeDNSKEY }

// String renders flags, protocol, algorithm, and the base64 key.
func (k DNSKEY) String() string {
	return fmt.Sprintf("%d %d %d %s", k.Flags, k.Protocol, k.Algorithm,
		base64.StdEncoding.EncodeToString(k.PublicKey))
}

func decodeDNSKEY(c *wire.Cursor) (DNSKEY, error) {
	var k DNSKEY
	var err error
	if k.Flags, err = c.ReadU16(); err != nil {
		return DNSKEY{}, err
	}
	if k.Protocol, err = c.ReadU8(); err != nil {
		return DNSKEY{}, err
	}
	if k.Algorithm, err = c.ReadU8(); err != nil {
		return DNSKEY{}, err
	}
	if k.PublicKey, err = c.ReadRemaining(); err != nil {
		return DNSKEY{}, err
	}
	return k, nil
}

func encodeDNSKEY(w *wire.Writer, k DNSKEY) error {
	if err := w.WriteU16(k.Flags); err != nil {
		return err
	}
	if err := w.WriteU8(k.Protocol); err != nil {
		return err
	}
	if err := w.WriteU8(k.Algorithm); err != nil {
		return err
	}
	return w.WriteBytes(k.PublicKey)
}
