package rrdata

import (
	"fmt"

	"github.com/haukened/dog/internal/dns/common/wire"
	"github.com/haukened/dog/internal/dns/domain"
)

// NAPTR is a naming authority pointer record body.
type NAPTR struct {
	Order       uint16
	Preference  uint16
	Flags       []byte
	Service     []byte
	Regexp      []byte
	Replacement wire.Name
}

// RRType returns the type code for NAPTR records.
func (NAPTR) RRType() domain.RRType { return domain.RRTypeNAPTR }

// String renders the fields with the three character-strings quoted.
func (n NAPTR) String() string {
	return fmt.Sprintf("%d %d %s %s %s %s",
		n.Order, n.Preference, quoteText(n.Flags), quoteText(n.Service), quoteText(n.Regexp), n.Replacement)
}

func decodeNAPTR(c *wire.Cursor) (NAPTR, error) {
	var n NAPTR
	var err error
	if n.Order, err = c.ReadU16(); err != nil {
		return NAPTR{}, err
	}
	if n.Preference, err = c.ReadU16(); err != nil {
		return NAPTR{}, err
	}
	for _, field := range []*[]byte{&n.Flags, &n.Service, &n.Regexp} {
		if *field, err = readCharacterString(c); err != nil {
			return NAPTR{}, err
		}
	}
	if n.Replacement, err = wire.ReadName(c); err != nil {
		return NAPTR{}, fmt.Errorf("NAPTR replacement: %w", err)
	}
	return n, nil
}

func encodeNAPTR(w *wire.Writer, n NAPTR) error {
	if err := w.WriteU16(n.Order); err != nil {
		return err
	}
	if err := w.WriteU16(n.Preference); err != nil {
		return err
	}
	for _, field := range [][]byte{n.Flags, n.Service, n.Regexp} {
		if err := writeCharacterString(w, field); err != nil {
			return err
		}
	}
	return w.WriteName(n.Replacement)
}
