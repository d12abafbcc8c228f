package rrdata

import (
	"github.com/haukened/dog/internal/dns/common/wire"
	"github.com/haukened/dog/internal/dns/domain"
)

// PTR is a pointer record body.
type PTR struct {
	Target wire.Name
}

// RRType returns the type code for PTR records.
func (PTR) RRType() domain.RRType { return domain.RRTypePTR }

// String renders the pointer target name.
func (p PTR) String() string { return p.Target.String() }

func decodePTR(c *wire.Cursor) (PTR, error) {
	name, err := wire.ReadName(c)
	if err != nil {
		return PTR{}, err
	}
	return PTR{Target: name}, nil
}

func encodePTR(w *wire.Writer, p PTR) error {
	return w.WriteName(p.Target)
}
