package rrdata

import (
	"encoding/hex"
	"fmt"

	"github.com/haukened/dog/internal/dns/common/wire"
	"github.com/haukened/dog/internal/dns/domain"
)

// TSIG is a transaction signature record body, per RFC 8945.
type TSIG struct {
	Algorithm  wire.Name
	TimeSigned uint64 // 48-bit seconds since the epoch
	Fudge      uint16
	MAC        []byte
	OriginalID uint16
	Error      uint16
	OtherData  []byte
}

// RRType returns the type code for TSIG records.
func (TSIG) RRType() domain.RRType { return domain.RRTypeTSIG }

// String renders the signature fields with the MAC and other-data in hex.
func (t TSIG) String() string {
	return fmt.Sprintf("%s %d %d %s %d %d %s",
		t.Algorithm, t.TimeSigned, t.Fudge, hex.EncodeToString(t.MAC),
		t.OriginalID, t.Error, hex.EncodeToString(t.OtherData))
}

func decodeTSIG(c *wire.Cursor) (TSIG, error) {
	var t TSIG
	var err error
	if t.Algorithm, err = wire.ReadName(c); err != nil {
		return TSIG{}, fmt.Errorf("TSIG algorithm: %w", err)
	}
	if t.TimeSigned, err = c.ReadU48(); err != nil {
		return TSIG{}, err
	}
	if t.Fudge, err = c.ReadU16(); err != nil {
		return TSIG{}, err
	}
	macLen, err := c.ReadU16()
	if err != nil {
		return TSIG{}, err
	}
	if t.MAC, err = c.ReadBytes(int(macLen)); err != nil {
		return TSIG{}, err
	}
	if t.OriginalID, err = c.ReadU16(); err != nil {
		return TSIG{}, err
	}
	if t.Error, err = c.ReadU16(); err != nil {
		return TSIG{}, err
	}
	otherLen, err := c.ReadU16()
	if err != nil {
		return TSIG{}, err
	}
	if t.OtherData, err = c.ReadBytes(int(otherLen)); err != nil {
		return TSIG{}, err
	}
	return t, nil
}

func encodeTSIG(w *wire.Writer, t TSIG) error {
	if err := w.WriteName(t.Algorithm); err != nil {
		return err
	}
	if err := w.WriteU48(t.TimeSigned); err != nil {
		return err
	}
	if err := w.WriteU16(t.Fudge); err != nil {
		return err
	}
	if len(t.MAC) > 65535 || len(t.OtherData) > 65535 {
		return fmt.Errorf("TSIG fields too long")
	}
	if err := w.WriteU16(uint16(len(t.MAC))); err != nil {
		return err
	}
	if err := w.WriteBytes(t.MAC); err != nil {
		return err
	}
	if err := w.WriteU16(t.OriginalID); err != nil {
		return err
	}
	if err := w.WriteU16(t.Error); err != nil {
		return err
	}
	if err := w.WriteU16(uint16(len(t.OtherData))); err != nil {
		return err
	}
	return w.WriteBytes(t.OtherData)
}
