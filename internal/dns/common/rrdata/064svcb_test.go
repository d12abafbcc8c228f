package rrdata

import (
	"testing"

	"github.com/haukened/dog/internal/dns/domain"
)

func TestDecodeHTTPSWithParams(t *testing.T) {
	// priority 1, target ".", alpn=h2,h3 port=443 ipv4hint=192.0.2.1
	rdata := []byte{
		0x00, 0x01, // priority
		0x00, // root target
		0x00, 0x01, // key: alpn
		0x00, 0x06, // length
		0x02, 'h', '2', 0x02, 'h', '3',
		0x00, 0x03, // key: port
		0x00, 0x02,
		0x01, 0xbb, // 443
		0x00, 0x04, // key: ipv4hint
		0x00, 0x04,
		192, 0, 2, 1,
	}

	b, err := decodeBody(t, domain.RRTypeHTTPS, rdata)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	https, ok := b.(HTTPS)
	if !ok {
		t.Fatalf("got %T, want HTTPS", b)
	}
	if https.RRType() != domain.RRTypeHTTPS {
		t.Errorf("RRType() = %v", https.RRType())
	}
	if len(https.Params) != 3 {
		t.Fatalf("got %d params, want 3", len(https.Params))
	}

	want := "1 . alpn=h2,h3 port=443 ipv4hint=192.0.2.1"
	if got := https.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestSvcParamUnknownKeyRendersHex(t *testing.T) {
	p := SvcParam{Key: 667, Value: []byte{0xca, 0xfe}}
	if got := formatSvcParam(p); got != "key667=cafe" {
		t.Errorf("formatSvcParam = %q", got)
	}
}

func TestDecodeNSECTypeBitmap(t *testing.T) {
	// next domain "aaa.example.net", then a bitmap window covering
	// A (1), MX (15), and AAAA (28).
	rdata := []byte{
		3, 'a', 'a', 'a', 7, 'e', 'x', 'a', 'm', 'p', 'l', 'e', 3, 'n', 'e', 't', 0,
		0x00, 0x04, // window 0, 4 octets
		0x40, 0x01, 0x00, 0x08, // bits 1, 15, 28
	}

	b, err := decodeBody(t, domain.RRTypeNSEC, rdata)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	nsec := b.(NSEC)
	want := []domain.RRType{domain.RRTypeA, domain.RRTypeMX, domain.RRTypeAAAA}
	if len(nsec.Types) != len(want) {
		t.Fatalf("Types = %v, want %v", nsec.Types, want)
	}
	for i := range want {
		if nsec.Types[i] != want[i] {
			t.Errorf("Types[%d] = %v, want %v", i, nsec.Types[i], want[i])
		}
	}
	if got := nsec.String(); got != "aaa.example.net. A MX AAAA" {
		t.Errorf("String() = %q", got)
	}
}
