package rrdata

import (
	"github.com/haukened/dog/internal/dns/common/wire"
	"github.com/haukened/dog/internal/dns/domain"
)

// CNAME is a canonical name record body.
type CNAME struct {
	Target wire.Name
}

// RRType returns the type code for CNAME records.
func (CNAME) RRType() domain.RRType { return domain.RRTypeCNAME }

// String renders the canonical name.
func (r CNAME) String() string { return r.Target.String() }

func decodeCNAME(c *wire.Cursor) (CNAME, error) {
	name, err := wire.ReadName(c)
	if err != nil {
		return CNAME{}, err
	}
	return CNAME{Target: name}, nil
}

func encodeCNAME(w *wire.Writer, r CNAME) error {
	return w.WriteName(r.Target)
}
