package rrdata

import (
	"fmt"

	"github.com/haukened/dog/internal/dns/common/wire"
	"github.com/haukened/dog/internal/dns/domain"
)

// NSEC3PARAM is an NSEC3 parameters record body, per RFC 5155.
type NSEC3PARAM struct {
	HashAlgorithm uint8
	Flags         uint8
	Iterations    uint16
	Salt          []byte
}

// RRType returns the type code for NSEC3PARAM records.
func (NSEC3PARAM) RRType() domain.RRType { return domain.RRTypeNSEC3PARAM }

// String renders the hash parameters with an empty salt as "-".
func (n NSEC3PARAM) String() string {
	return fmt.Sprintf("%d %d %d %s", n.HashAlgorithm, n.Flags, n.Iterations, saltString(n.Salt))
}

func decodeNSEC3PARAM(c *wire.Cursor) (NSEC3PARAM, error) {
	var n NSEC3PARAM
	var err error
	if n.HashAlgorithm, err = c.ReadU8(); err != nil {
		return NSEC3PARAM{}, err
	}
	if n.Flags, err = c.ReadU8(); err != nil {
		return NSEC3PARAM{}, err
	}
	if n.Iterations, err = c.ReadU16(); err != nil {
		return NSEC3PARAM{}, err
	}
	if n.Salt, err = readCharacterString(c); err != nil {
		return NSEC3PARAM{}, err
	}
	return n, nil
}

func encodeNSEC3PARAM(w *wire.Writer, n NSEC3PARAM) error {
	if err := w.WriteU8(n.HashAlgorithm); err != nil {
		return err
	}
	if err := w.WriteU8(n.Flags); err != nil {
		return err
	}
	if err := w.WriteU16(n.Iterations); err != nil {
		return err
	}
	return writeCharacterString(w, n.Salt)
}
