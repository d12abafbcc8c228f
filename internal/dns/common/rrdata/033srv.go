package rrdata

import (
	"fmt"

	"github.com/haukened/dog/internal/dns/common/wire"
	"github.com/haukened/dog/internal/dns/domain"
)

// SRV is a service locator record body.
type SRV struct {
	Priority uint16
	Weight   uint16
	Port     uint16
	Target   wire.Name
}

// RRType returns the type code for SRV records.
func (SRV) RRType() domain.RRType { return domain.RRTypeSRV }

// String renders priority, weight, port, and target.
func (s SRV) String() string {
	return fmt.Sprintf("%d %d %d %s", s.Priority, s.Weight, s.Port, s.Target)
}

func decodeSRV(c *wire.Cursor) (SRV, error) {
	var s SRV
	var err error
	for _, field := range []*uint16{&s.Priority, &s.Weight, &s.Port} {
		if *field, err = c.ReadU16(); err != nil {
			return SRV{}, err
		}
	}
	if s.Target, err = wire.ReadName(c); err != nil {
		return SRV{}, fmt.Errorf("SRV target: %w", err)
	}
	return s, nil
}

func encodeSRV(w *wire.Writer, s SRV) error {
	for _, field := range []uint16{s.Priority, s.Weight, s.Port} {
		if err := w.WriteU16(field); err != nil {
			return err
		}
	}
	return w.WriteName(s.Target)
}
