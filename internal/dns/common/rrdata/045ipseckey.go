package rrdata

import (
	"encoding/base64"
	"fmt"
	"net"
	"strings"

	"github.com/haukened/dog/internal/dns/common/wire"
	"github.com/haukened/dog/internal/dns/domain"
)

// Gateway type codes for IPSECKEY records, per RFC 4025.
const (
	ipseckeyGatewayNone uint8 = 0
	ipseckeyGatewayV4   uint8 = 1
	ipseckeyGatewayV6   uint8 = 2
	ipseckeyGatewayName uint8 = 3
)

// IPSECKEY is an IPsec keying material record body, per RFC 4025. Exactly
// one of GatewayAddr and GatewayName is set, depending on GatewayType.
type IPSECKEY struct {
	Precedence  uint8
	GatewayType uint8
	Algorithm   uint8
	GatewayAddr net.IP
	GatewayName wire.Name
	PublicKey   []byte
}

// RRType returns the type code for IPSECKEY records.
func (IPSECKEY) RRType() domain.RRType { return domain.RRTypeIPSECKEY }

// String renders precedence, gateway type, algorithm, the gateway, and
// the base64 public key.
func (k IPSECKEY) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%d %d %d ", k.Precedence, k.GatewayType, k.Algorithm)
	switch k.GatewayType {
	case ipseckeyGatewayV4, ipseckeyGatewayV6:
		sb.WriteString(k.GatewayAddr.String())
	case ipseckeyGatewayName:
		sb.WriteString(k.GatewayName.String())
	default:
		sb.WriteByte('.')
	}
	sb.WriteByte(' ')
	sb.WriteString(base64.StdEncoding.EncodeToString(k.PublicKey))
	return sb.String()
}

func decodeIPSECKEY(c *wire.Cursor) (IPSECKEY, error) {
	var k IPSECKEY
	var err error
	if k.Precedence, err = c.ReadU8(); err != nil {
		return IPSECKEY{}, err
	}
	if k.GatewayType, err = c.ReadU8(); err != nil {
		return IPSECKEY{}, err
	}
	if k.Algorithm, err = c.ReadU8(); err != nil {
		return IPSECKEY{}, err
	}
	switch k.GatewayType {
	case ipseckeyGatewayNone:
	case ipseckeyGatewayV4:
		b, err := c.ReadBytes(net.IPv4len)
		if err != nil {
			return IPSECKEY{}, err
		}
		k.GatewayAddr = net.IP(b)
	case ipseckeyGatewayV6:
		b, err := c.ReadBytes(net.IPv6len)
		if err != nil {
			return IPSECKEY{}, err
		}
		k.GatewayAddr = net.IP(b)
	case ipseckeyGatewayName:
		if k.GatewayName, err = wire.ReadName(c); err != nil {
			return IPSECKEY{}, fmt.Errorf("IPSECKEY gateway: %w", err)
		}
	default:
		return IPSECKEY{}, fmt.Errorf("unknown IPSECKEY gateway type %d", k.GatewayType)
	}
	if k.PublicKey, err = c.ReadRemaining(); err != nil {
		return IPSECKEY{}, err
	}
	return k, nil
}

func encodeIPSECKEY(w *wire.Writer, k IPSECKEY) error {
	for _, b := range []uint8{k.Precedence, k.GatewayType, k.Algorithm} {
		if err := w.WriteU8(b); err != nil {
			return err
		}
	}
	switch k.GatewayType {
	case ipseckeyGatewayNone:
	case ipseckeyGatewayV4:
		v4 := k.GatewayAddr.To4()
		if v4 == nil {
			return fmt.Errorf("IPSECKEY gateway is not IPv4: %s", k.GatewayAddr)
		}
		if err := w.WriteBytes(v4); err != nil {
			return err
		}
	case ipseckeyGatewayV6:
		v6 := k.GatewayAddr.To16()
		if v6 == nil {
			return fmt.Errorf("IPSECKEY gateway is not IPv6: %s", k.GatewayAddr)
		}
		if err := w.WriteBytes(v6); err != nil {
			return err
		}
	case ipseckeyGatewayName:
		if err := w.WriteName(k.GatewayName); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown IPSECKEY gateway type %d", k.GatewayType)
	}
	return w.WriteBytes(k.PublicKey)
}
