package rrdata

import (
	"encoding/hex"
	"fmt"

	"github.com/haukened/dog/internal/dns/common/wire"
	"github.com/haukened/dog/internal/dns/domain"
)

// SSHFP is an SSH fingerprint record body.
type SSHFP struct {
	Algorithm       uint8
	FingerprintType uint8
	Fingerprint     []byte
}

// RRType returns the type code for SSHFP records.
func (SSHFP) RRType() domain.RRType { return domain.RRTypeSSHFP }

// String renders algorithm, fingerprint type, and the hex fingerprint.
func (s SSHFP) String() string {
	return fmt.Sprintf("%d %d %s", s.Algorithm, s.FingerprintType, hex.EncodeToString(s.Fingerprint))
}

func decodeSSHFP(c *wire.Cursor) (SSHFP, error) {
	var s SSHFP
	var err error
	if s.Algorithm, err = c.ReadU8(); err != nil {
		return SSHFP{}, err
	}
	if s.FingerprintType, err = c.ReadU8(); err != nil {
		return SSHFP{}, err
	}
	if s.Fingerprint, err = c.ReadRemaining(); err != nil {
		return SSHFP{}, err
	}
	return s, nil
}

func encodeSSHFP(w *wire.Writer, s SSHFP) error {
	if err := w.WriteU8(s.Algorithm); err != nil {
		return err
	}
	if err := w.WriteU8(s.FingerprintType); err != nil {
		return err
	}
	return w.WriteBytes(s.Fingerprint)
}
