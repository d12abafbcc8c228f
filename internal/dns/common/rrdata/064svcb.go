package rrdata

import (
	"encoding/hex"
	"fmt"
	"net"
	"strings"

	"github.com/haukened/dog/internal/dns/common/wire"
	"github.com/haukened/dog/internal/dns/domain"
)

// SvcParam is one typed key/value pair inside SVCB or HTTPS RDATA. Values
// are kept raw; rendering interprets the registered keys.
type SvcParam struct {
	Key   uint16
	Value []byte
}

// Registered SvcParamKeys, per RFC 9460.
const (
	svcParamMandatory     uint16 = 0
	svcParamALPN          uint16 = 1
	svcParamNoDefaultALPN uint16 = 2
	svcParamPort          uint16 = 3
	svcParamIPv4Hint      uint16 = 4
	svcParamECH           uint16 = 5
	svcParamIPv6Hint      uint16 = 6
)

// SVCB is a service binding record body, per RFC 9460.
type SVCB struct {
	Priority uint16
	Target   wire.Name
	Params   []SvcParam
}

// RRType returns the type code for SVCB records.
func (SVCB) RRType() domain.RRType { return domain.RRTypeSVCB }

// String renders priority, target, and each parameter in key=value form.
func (s SVCB) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%d %s", s.Priority, s.Target)
	for _, p := range s.Params {
		sb.WriteByte(' ')
		sb.WriteString(formatSvcParam(p))
	}
	return sb.String()
}

// HTTPS is an HTTPS service binding record body. It shares the SVCB wire
// layout and rendering.
type HTTPS struct {
	SVCB
}

// RRType returns the type code for HTTPS records.
func (HTTPS) RRType() domain.RRType { return domain.RRTypeHTTPS }

// formatSvcParam renders one parameter using the registered key names and
// their presentation value formats; unregistered keys fall back to
// keyNNN=hex.
func formatSvcParam(p SvcParam) string {
	switch p.Key {
	case svcParamMandatory:
		keys := make([]string, 0, len(p.Value)/2)
		for i := 0; i+1 < len(p.Value); i += 2 {
			keys = append(keys, svcParamKeyName(uint16(p.Value[i])<<8|uint16(p.Value[i+1])))
		}
		return "mandatory=" + strings.Join(keys, ",")
	case svcParamALPN:
		var ids []string
		c := wire.NewCursor(p.Value)
		for c.Remaining() > 0 {
			id, err := readCharacterString(c)
			if err != nil {
				return "alpn=" + hex.EncodeToString(p.Value)
			}
			ids = append(ids, string(id))
		}
		return "alpn=" + strings.Join(ids, ",")
	case svcParamNoDefaultALPN:
		return "no-default-alpn"
	case svcParamPort:
		if len(p.Value) == 2 {
			return fmt.Sprintf("port=%d", uint16(p.Value[0])<<8|uint16(p.Value[1]))
		}
	case svcParamIPv4Hint:
		if hints := formatIPHints(p.Value, net.IPv4len); hints != "" {
			return "ipv4hint=" + hints
		}
	case svcParamECH:
		return "ech=" + hex.EncodeToString(p.Value)
	case svcParamIPv6Hint:
		if hints := formatIPHints(p.Value, net.IPv6len); hints != "" {
			return "ipv6hint=" + hints
		}
	}
	return fmt.Sprintf("%s=%s", svcParamKeyName(p.Key), hex.EncodeToString(p.Value))
}

func svcParamKeyName(key uint16) string {
	switch key {
	case svcParamMandatory:
		return "mandatory"
	case svcParamALPN:
		return "alpn"
	case svcParamNoDefaultALPN:
		return "no-default-alpn"
	case svcParamPort:
		return "port"
	case svcParamIPv4Hint:
		return "ipv4hint"
	case svcParamECH:
		return "ech"
	case svcParamIPv6Hint:
		return "ipv6hint"
	default:
		return fmt.Sprintf("key%d", key)
	}
}

func formatIPHints(value []byte, size int) string {
	if len(value) == 0 || len(value)%size != 0 {
		return ""
	}
	addrs := make([]string, 0, len(value)/size)
	for i := 0; i < len(value); i += size {
		addrs = append(addrs, net.IP(value[i:i+size]).String())
	}
	return strings.Join(addrs, ",")
}

func decodeSVCB(c *wire.Cursor) (SVCB, error) {
	var s SVCB
	var err error
	if s.Priority, err = c.ReadU16(); err != nil {
		return SVCB{}, err
	}
	if s.Target, err = wire.ReadName(c); err != nil {
		return SVCB{}, fmt.Errorf("SVCB target: %w", err)
	}
	for c.Remaining() > 0 {
		key, err := c.ReadU16()
		if err != nil {
			return SVCB{}, err
		}
		length, err := c.ReadU16()
		if err != nil {
			return SVCB{}, err
		}
		value, err := c.ReadBytes(int(length))
		if err != nil {
			return SVCB{}, err
		}
		s.Params = append(s.Params, SvcParam{Key: key, Value: value})
	}
	return s, nil
}

func encodeSVCB(w *wire.Writer, s SVCB) error {
	if err := w.WriteU16(s.Priority); err != nil {
		return err
	}
	if err := w.WriteName(s.Target); err != nil {
		return err
	}
	for _, p := range s.Params {
		if len(p.Value) > 65535 {
			return fmt.Errorf("SvcParam %d too long: %d bytes", p.Key, len(p.Value))
		}
		if err := w.WriteU16(p.Key); err != nil {
			return err
		}
		if err := w.WriteU16(uint16(len(p.Value))); err != nil {
			return err
		}
		if err := w.WriteBytes(p.Value); err != nil {
			return err
		}
	}
	return nil
}
