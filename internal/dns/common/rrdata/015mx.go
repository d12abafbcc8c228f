package rrdata

import (
	"fmt"

	"github.com/haukened/dog/internal/dns/common/wire"
	"github.com/haukened/dog/internal/dns/domain"
)

// MX is a mail exchange record body.
type MX struct {
	Preference uint16
	Exchange   wire.Name
}

// RRType returns the type code for MX records.
func (MX) RRType() domain.RRType { return domain.RRTypeMX }

// String renders the preference and exchange name.
func (m MX) String() string {
	return fmt.Sprintf("%d %s", m.Preference, m.Exchange)
}

func decodeMX(c *wire.Cursor) (MX, error) {
	pref, err := c.ReadU16()
	if err != nil {
		return MX{}, err
	}
	exchange, err := wire.ReadName(c)
	if err != nil {
		return MX{}, fmt.Errorf("MX exchange: %w", err)
	}
	return MX{Preference: pref, Exchange: exchange}, nil
}

func encodeMX(w *wire.Writer, m MX) error {
	if err := w.WriteU16(m.Preference); err != nil {
		return err
	}
	return w.WriteName(m.Exchange)
}
