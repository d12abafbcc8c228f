package rrdata

import (
	"encoding/base64"

	"github.com/haukened/dog/internal/dns/common/wire"
	"github.com/haukened/dog/internal/dns/domain"
)

// OPENPGPKEY is an OpenPGP public key record body, per RFC 7929: the raw
// transferable public key.
type OPENPGPKEY struct {
	Key []byte
}

// RRType returns the type code for OPENPGPKEY records.
func (OPENPGPKEY) RRType() domain.RRType { return domain.RRTypeOPENPGPKEY }

// String renders the key in base64.
func (k OPENPGPKEY) String() string {
	return base64.StdEncoding.EncodeToString(k.Key)
}

func decodeOPENPGPKEY(c *wire.Cursor) (OPENPGPKEY, error) {
	key, err := c.ReadRemaining()
	if err != nil {
		return OPENPGPKEY{}, err
	}
	return OPENPGPKEY{Key: key}, nil
}

func encodeOPENPGPKEY(w *wire.Writer, k OPENPGPKEY) error {
	return w.WriteBytes(k.Key)
}
