package rrdata

import (
	"encoding/hex"
	"fmt"

	"github.com/haukened/dog/internal/dns/common/wire"
	"github.com/haukened/dog/internal/dns/domain"
)

// DS is a delegation signer record body, per RFC 4034. Algorithm and
// digest type codes are kept numeric; unknown assignments pass through.
type DS struct {
	KeyTag     uint16
	Algorithm  uint8
	DigestType uint8
	Digest     []byte
}

// RRType returns the type code for DS records.
func (DS) RRType() domain.RRType { return domain.RRTypeDS }

// String renders key tag, algorithm, digest type, and the hex digest.
func (d DS) String() string {
	return fmt.Sprintf("%d %d %d %s", d.KeyTag, d.Algorithm, d.DigestType, hex.EncodeToString(d.Digest))
}

func decodeDS(c *wire.Cursor) (DS, error) {
	var d DS
	var err error
	if d.KeyTag, err = c.ReadU16(); err != nil {
		return DS{}, err
	}
	if d.Algorithm, err = c.ReadU8(); err != nil {
		return DS{}, err
	}
	if d.DigestType, err = c.ReadU8(); err != nil {
		return DS{}, err
	}
	if d.Digest, err = c.ReadRemaining(); err != nil {
		return DS{}, err
	}
	return d, nil
}

func encodeDS(w *wire.Writer, d DS) error {
	if err := w.WriteU16(d.KeyTag); err != nil {
		return err
	}
	if err := w.WriteU8(d.Algorithm); err != nil {
		return err
	}
	if err := w.WriteU8(d.DigestType); err != nil {
		return err
	}
	return w.WriteBytes(d.Digest)
}
