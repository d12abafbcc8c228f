package rrdata

import (
	"fmt"

	"github.com/haukened/dog/internal/dns/common/wire"
	"github.com/haukened/dog/internal/dns/domain"
)

// NSEC is an authenticated denial record body, per RFC 4034.
type NSEC struct {
	NextDomain wire.Name
	Types      []domain.RRType
}

// RRType returns the type code for NSEC records.
func (NSEC) RRType() domain.RRType { return domain.RRTypeNSEC }

// String renders the next domain followed by the covered type list.
func (n NSEC) String() string {
	if len(n.Types) == 0 {
		return n.NextDomain.String()
	}
	return fmt.Sprintf("%s %s", n.NextDomain, typeList(n.Types))
}

func decodeNSEC(c *wire.Cursor) (NSEC, error) {
	next, err := wire.ReadName(c)
	if err != nil {
		return NSEC{}, fmt.Errorf("NSEC next domain: %w", err)
	}
	types, err := readTypeBitmap(c)
	if err != nil {
		return NSEC{}, err
	}
	return NSEC{NextDomain: next, Types: types}, nil
}

func encodeNSEC(w *wire.Writer, n NSEC) error {
	if err := w.WriteName(n.NextDomain); err != nil {
		return err
	}
	return writeTypeBitmap(w, n.Types)
}
