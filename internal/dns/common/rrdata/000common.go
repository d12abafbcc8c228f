// Package rrdata holds the typed record bodies: one file per registered
// record type, each with a parser that consumes the record's RDATA from a
// bounded cursor and a presentation-form renderer. The decoding.go and
// encoding.go dispatch tables tie the type codes to the per-type functions.
package rrdata

import (
	"fmt"
	"strings"

	"github.com/haukened/dog/internal/dns/common/wire"
	"github.com/haukened/dog/internal/dns/domain"
)

// readCharacterString reads one length-prefixed byte string, as used by
// TXT, CAA tags, HINFO, and NAPTR fields.
func readCharacterString(c *wire.Cursor) ([]byte, error) {
	length, err := c.ReadU8()
	if err != nil {
		return nil, err
	}
	return c.ReadBytes(int(length))
}

// writeCharacterString writes one length-prefixed byte string.
func writeCharacterString(w *wire.Writer, s []byte) error {
	if len(s) > 255 {
		return fmt.Errorf("character-string too long: %d bytes", len(s))
	}
	if err := w.WriteU8(uint8(len(s))); err != nil {
		return err
	}
	return w.WriteBytes(s)
}

// quoteText renders a byte string as a double-quoted presentation string.
// Quotes and backslashes are escaped, and bytes outside printable ASCII
// become three-digit decimal escapes so non-UTF-8 content survives display.
func quoteText(s []byte) string {
	var sb strings.Builder
	sb.WriteByte('"')
	for _, b := range s {
		switch {
		case b == '"':
			sb.WriteString(`\"`)
		case b == '\\':
			sb.WriteString(`\\`)
		case b < ' ' || b > '~':
			fmt.Fprintf(&sb, `\%03d`, b)
		default:
			sb.WriteByte(b)
		}
	}
	sb.WriteByte('"')
	return sb.String()
}

// readTypeBitmap decodes the windowed type bitmap format shared by NSEC
// and NSEC3 (RFC 4034 section 4.1.2).
func readTypeBitmap(c *wire.Cursor) ([]domain.RRType, error) {
	var types []domain.RRType
	for c.Remaining() > 0 {
		window, err := c.ReadU8()
		if err != nil {
			return nil, err
		}
		length, err := c.ReadU8()
		if err != nil {
			return nil, err
		}
		if length == 0 || length > 32 {
			return nil, fmt.Errorf("bad type bitmap window length %d", length)
		}
		bits, err := c.ReadBytes(int(length))
		if err != nil {
			return nil, err
		}
		for i, octet := range bits {
			for bit := 0; bit < 8; bit++ {
				if octet&(0x80>>bit) != 0 {
					code := uint16(window)<<8 | uint16(i*8+bit)
					types = append(types, domain.RRType(code))
				}
			}
		}
	}
	return types, nil
}

// writeTypeBitmap encodes the windowed type bitmap format. Types must be
// sorted ascending for a canonical encoding; this sorts a copy to be safe.
func writeTypeBitmap(w *wire.Writer, types []domain.RRType) error {
	if len(types) == 0 {
		return nil
	}
	sorted := make([]domain.RRType, len(types))
	copy(sorted, types)
	for i := 1; i < len(sorted); i++ {
		for j := i; j > 0 && sorted[j-1] > sorted[j]; j-- {
			sorted[j-1], sorted[j] = sorted[j], sorted[j-1]
		}
	}

	start := 0
	for start < len(sorted) {
		window := uint8(sorted[start] >> 8)
		end := start
		for end < len(sorted) && uint8(sorted[end]>>8) == window {
			end++
		}
		var bits [32]byte
		maxOctet := 0
		for _, t := range sorted[start:end] {
			low := uint8(t)
			octet := int(low / 8)
			bits[octet] |= 0x80 >> (low % 8)
			if octet > maxOctet {
				maxOctet = octet
			}
		}
		if err := w.WriteU8(window); err != nil {
			return err
		}
		if err := w.WriteU8(uint8(maxOctet + 1)); err != nil {
			return err
		}
		if err := w.WriteBytes(bits[:maxOctet+1]); err != nil {
			return err
		}
		start = end
	}
	return nil
}

// typeList renders a slice of record types space-separated, for NSEC-style
// bodies.
func typeList(types []domain.RRType) string {
	names := make([]string, len(types))
	for i, t := range types {
		names[i] = t.String()
	}
	return strings.Join(names, " ")
}
