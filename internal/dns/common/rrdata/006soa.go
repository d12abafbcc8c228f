package rrdata

import (
	"fmt"

	"github.com/haukened/dog/internal/dns/common/wire"
	"github.com/haukened/dog/internal/dns/domain"
)

// SOA is a start-of-authority record body.
type SOA struct {
	MName   wire.Name // primary name server
	RName   wire.Name // responsible mailbox, with the first label as the local part
	Serial  uint32
	Refresh uint32
	Retry   uint32
	Expire  uint32
	Minimum uint32
}

// RRType returns the type code for SOA records.
func (SOA) RRType() domain.RRType { return domain.RRTypeSOA }

// String renders all seven SOA fields space-separated.
func (s SOA) String() string {
	return fmt.Sprintf("%s %s %d %d %d %d %d",
		s.MName, s.RName, s.Serial, s.Refresh, s.Retry, s.Expire, s.Minimum)
}

func decodeSOA(c *wire.Cursor) (SOA, error) {
	var s SOA
	var err error
	if s.MName, err = wire.ReadName(c); err != nil {
		return SOA{}, fmt.Errorf("SOA mname: %w", err)
	}
	if s.RName, err = wire.ReadName(c); err != nil {
		return SOA{}, fmt.Errorf("SOA rname: %w", err)
	}
	for _, field := range []*uint32{&s.Serial, &s.Refresh, &s.Retry, &s.Expire, &s.Minimum} {
		if *field, err = c.ReadU32(); err != nil {
			return SOA{}, err
		}
	}
	return s, nil
}

func encodeSOA(w *wire.Writer, s SOA) error {
	if err := w.WriteName(s.MName); err != nil {
		return err
	}
	if err := w.WriteName(s.RName); err != nil {
		return err
	}
	for _, field := range []uint32{s.Serial, s.Refresh, s.Retry, s.Expire, s.Minimum} {
		if err := w.WriteU32(field); err != nil {
			return err
		}
	}
	return nil
}
