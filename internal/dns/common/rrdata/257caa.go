package rrdata

import (
	"fmt"

	"github.com/haukened/dog/internal/dns/common/wire"
	"github.com/haukened/dog/internal/dns/domain"
)

// CAA is a certification authority authorization record body, per RFC 8659.
//
// The value portion is opaque: for issue/issuewild it is a CA domain, for
// iodef it can be a mailto: or https: URI. It passes through unmodified
// and is only quoted for display.
type CAA struct {
	Flags uint8
	Tag   []byte
	Value []byte
}

// RRType returns the type code for CAA records.
func (CAA) RRType() domain.RRType { return domain.RRTypeCAA }

// String renders flags, the tag, and the quoted value.
func (r CAA) String() string {
	return fmt.Sprintf("%d %s %s", r.Flags, r.Tag, quoteText(r.Value))
}

func decodeCAA(c *wire.Cursor) (CAA, error) {
	var r CAA
	var err error
	if r.Flags, err = c.ReadU8(); err != nil {
		return CAA{}, err
	}
	if r.Tag, err = readCharacterString(c); err != nil {
		return CAA{}, err
	}
	if r.Value, err = c.ReadRemaining(); err != nil {
		return CAA{}, err
	}
	return r, nil
}

func encodeCAA(w *wire.Writer, r CAA) error {
	if err := w.WriteU8(r.Flags); err != nil {
		return err
	}
	if err := writeCharacterString(w, r.Tag); err != nil {
		return err
	}
	return w.WriteBytes(r.Value)
}
