package rrdata

import (
	"fmt"

	"github.com/haukened/dog/internal/dns/common/wire"
	"github.com/haukened/dog/internal/dns/domain"
)

// HINFO is a host information record body: two character-strings.
type HINFO struct {
	CPU []byte
	OS  []byte
}

// RRType returns the type code for HINFO records.
func (HINFO) RRType() domain.RRType { return domain.RRTypeHINFO }

// String renders both fields quoted.
func (h HINFO) String() string {
	return fmt.Sprintf("%s %s", quoteText(h.CPU), quoteText(h.OS))
}

func decodeHINFO(c *wire.Cursor) (HINFO, error) {
	cpu, err := readCharacterString(c)
	if err != nil {
		return HINFO{}, err
	}
	os, err := readCharacterString(c)
	if err != nil {
		return HINFO{}, err
	}
	return HINFO{CPU: cpu, OS: os}, nil
}

func encodeHINFO(w *wire.Writer, h HINFO) error {
	if err := writeCharacterString(w, h.CPU); err != nil {
		return err
	}
	return writeCharacterString(w, h.OS)
}
