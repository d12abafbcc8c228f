package rrdata

import (
	"encoding/hex"
	"fmt"

	"github.com/haukened/dog/internal/dns/common/wire"
	"github.com/haukened/dog/internal/dns/domain"
)

// Unknown preserves the body of a record whose type code is not in the
// registry: the code and the raw RDATA bytes survive for the renderer.
type Unknown struct {
	Code domain.RRType
	Raw  []byte
}

// RRType returns the preserved type code.
func (u Unknown) RRType() domain.RRType { return u.Code }

// String renders the raw bytes in RFC 3597 generic form.
func (u Unknown) String() string {
	if len(u.Raw) == 0 {
		return `\# 0`
	}
	return fmt.Sprintf(`\# %d %s`, len(u.Raw), hex.EncodeToString(u.Raw))
}

func decodeUnknown(code domain.RRType, c *wire.Cursor) (Unknown, error) {
	raw, err := c.ReadRemaining()
	if err != nil {
		return Unknown{}, err
	}
	return Unknown{Code: code, Raw: raw}, nil
}

func encodeUnknown(w *wire.Writer, u Unknown) error {
	return w.WriteBytes(u.Raw)
}
