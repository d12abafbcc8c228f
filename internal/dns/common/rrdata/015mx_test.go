package rrdata

import (
	"testing"

	"github.com/haukened/dog/internal/dns/common/wire"
	"github.com/haukened/dog/internal/dns/domain"
)

func TestDecodeMX(t *testing.T) {
	rdata := append([]byte{0, 10}, []byte{4, 'm', 'a', 'i', 'l', 7, 'e', 'x', 'a', 'm', 'p', 'l', 'e', 3, 'n', 'e', 't', 0}...)

	b, err := decodeBody(t, domain.RRTypeMX, rdata)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	mx := b.(MX)
	if mx.Preference != 10 {
		t.Errorf("Preference = %d, want 10", mx.Preference)
	}
	if got := mx.Exchange.String(); got != "mail.example.net." {
		t.Errorf("Exchange = %q", got)
	}
	if got := mx.String(); got != "10 mail.example.net." {
		t.Errorf("String() = %q", got)
	}
}

func TestDecodeMXCompressedExchange(t *testing.T) {
	// The exchange name compresses against a name earlier in the message.
	// Offset 0: "example.net". The MX RDATA starts at offset 13 and points
	// back to it.
	var msg []byte
	msg = append(msg, 7)
	msg = append(msg, "example"...)
	msg = append(msg, 3)
	msg = append(msg, "net"...)
	msg = append(msg, 0)
	rdataStart := len(msg)
	msg = append(msg, 0, 20) // preference
	msg = append(msg, 4)
	msg = append(msg, "mail"...)
	msg = append(msg, 0xC0, 0x00) // pointer to offset 0

	c := wire.NewCursor(msg)
	if _, err := c.Sub(rdataStart); err != nil {
		t.Fatal(err)
	}
	sub, err := c.Sub(len(msg) - rdataStart)
	if err != nil {
		t.Fatal(err)
	}

	b, err := Decode(domain.RRTypeMX, sub)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if got := b.String(); got != "20 mail.example.net." {
		t.Errorf("String() = %q", got)
	}
	if sub.Remaining() != 0 {
		t.Errorf("parser left %d bytes unread", sub.Remaining())
	}
}
