// Package utils holds small name helpers shared across the client.
package utils

import (
	"fmt"
	"net"
	"strings"
)

// ReverseLookupDomain converts an IP address into the domain queried for
// reverse lookups: in-addr.arpa for IPv4, nibble-reversed ip6.arpa for
// IPv6.
func ReverseLookupDomain(ip net.IP) string {
	if v4 := ip.To4(); v4 != nil {
		return fmt.Sprintf("%d.%d.%d.%d.in-addr.arpa", v4[3], v4[2], v4[1], v4[0])
	}
	v6 := ip.To16()
	var sb strings.Builder
	for i := len(v6) - 1; i >= 0; i-- {
		fmt.Fprintf(&sb, "%x.%x.", v6[i]&0x0F, v6[i]>>4)
	}
	sb.WriteString("ip6.arpa")
	return sb.String()
}
