package rrdata

import (
	"github.com/haukened/dog/internal/dns/common/wire"
	"github.com/haukened/dog/internal/dns/domain"
)

// ANAME is an address alias record body, per the (expired) ANAME draft.
type ANAME struct {
	Target wire.Name
}

// RRType returns the type code for ANAME records.
func (ANAME) RRType() domain.RRType { return domain.RRTypeANAME }

// String renders the alias target name.
func (a ANAME) String() string { return a.Target.String() }

func decodeANAME(c *wire.Cursor) (ANAME, error) {
	name, err := wire.ReadName(c)
	if err != nil {
		return ANAME{}, err
	}
	return ANAME{Target: name}, nil
}

func encodeANAME(w *wire.Writer, a ANAME) error {
	return w.WriteName(a.Target)
}
