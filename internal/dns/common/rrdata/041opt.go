package rrdata

import (
	"fmt"
	"strings"

	"github.com/haukened/dog/internal/dns/common/wire"
	"github.com/haukened/dog/internal/dns/domain"
)

// OPT is the EDNS(0) pseudo-record body: a sequence of (code, value)
// options. The payload size, extended RCODE, version, and flags live in
// the record's class and TTL fields and are interpreted by the message
// codec, not here.
type OPT struct {
	Options []domain.EDNSOption
}

// RRType returns the type code for OPT pseudo-records.
func (OPT) RRType() domain.RRType { return domain.RRTypeOPT }

// String renders each option as code=hexvalue.
func (o OPT) String() string {
	if len(o.Options) == 0 {
		return ""
	}
	parts := make([]string, len(o.Options))
	for i, opt := range o.Options {
		parts[i] = fmt.Sprintf("%d=%x", opt.Code, opt.Data)
	}
	return strings.Join(parts, " ")
}

func decodeOPT(c *wire.Cursor) (OPT, error) {
	var o OPT
	for c.Remaining() > 0 {
		code, err := c.ReadU16()
		if err != nil {
			return OPT{}, err
		}
		length, err := c.ReadU16()
		if err != nil {
			return OPT{}, err
		}
		data, err := c.ReadBytes(int(length))
		if err != nil {
			return OPT{}, err
		}
		o.Options = append(o.Options, domain.EDNSOption{Code: code, Data: data})
	}
	return o, nil
}

func encodeOPT(w *wire.Writer, o OPT) error {
	for _, opt := range o.Options {
		if len(opt.Data) > 65535 {
			return fmt.Errorf("EDNS option %d too long: %d bytes", opt.Code, len(opt.Data))
		}
		if err := w.WriteU16(opt.Code); err != nil {
			return err
		}
		if err := w.WriteU16(uint16(len(opt.Data))); err != nil {
			return err
		}
		if err := w.WriteBytes(opt.Data); err != nil {
			return err
		}
	}
	return nil
}
