package rrdata

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/haukened/dog/internal/dns/common/wire"
	"github.com/haukened/dog/internal/dns/domain"
)

// NSEC3 is a hashed authenticated denial record body, per RFC 5155.
type NSEC3 struct {
	HashAlgorithm   uint8
	Flags           uint8
	Iterations      uint16
	Salt            []byte
	NextHashedOwner []byte
	Types           []domain.RRType
}

// RRType returns the type code for NSEC3 records.
func (NSEC3) RRType() domain.RRType { return domain.RRTypeNSEC3 }

// String renders the hash parameters, the next hashed owner in hex, and
// the covered type list. An empty salt renders as "-".
func (n NSEC3) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%d %d %d %s %s", n.HashAlgorithm, n.Flags, n.Iterations,
		saltString(n.Salt), hex.EncodeToString(n.NextHashedOwner))
	if len(n.Types) > 0 {
		sb.WriteByte(' ')
		sb.WriteString(typeList(n.Types))
	}
	return sb.String()
}

func saltString(salt []byte) string {
	if len(salt) == 0 {
		return "-"
	}
	return hex.EncodeToString(salt)
}

func decodeNSEC3(c *wire.Cursor) (NSEC3, error) {
	var n NSEC3
	var err error
	if n.HashAlgorithm, err = c.ReadU8(); err != nil {
		return NSEC3{}, err
	}
	if n.Flags, err = c.ReadU8(); err != nil {
		return NSEC3{}, err
	}
	if n.Iterations, err = c.ReadU16(); err != nil {
		return NSEC3{}, err
	}
	if n.Salt, err = readCharacterString(c); err != nil {
		return NSEC3{}, err
	}
	hashLen, err := c.ReadU8()
	if err != nil {
		return NSEC3{}, err
	}
	if n.NextHashedOwner, err = c.ReadBytes(int(hashLen)); err != nil {
		return NSEC3{}, err
	}
	if n.Types, err = readTypeBitmap(c); err != nil {
		return NSEC3{}, err
	}
	return n, nil
}

func encodeNSEC3(w *wire.Writer, n NSEC3) error {
	if err := w.WriteU8(n.HashAlgorithm); err != nil {
		return err
	}
	if err := w.WriteU8(n.Flags); err != nil {
		return err
	}
	if err := w.WriteU16(n.Iterations); err != nil {
		return err
	}
	if err := writeCharacterString(w, n.Salt); err != nil {
		return err
	}
	if len(n.NextHashedOwner) > 255 {
		return fmt.Errorf("NSEC3 hash too long: %d bytes", len(n.NextHashedOwner))
	}
	if err := w.WriteU8(uint8(len(n.NextHashedOwner))); err != nil {
		return err
	}
	if err := w.WriteBytes(n.NextHashedOwner); err != nil {
		return err
	}
	return writeTypeBitmap(w, n.Types)
}
