package domain

import (
	"fmt"
	"strings"
)

// RRType represents a DNS resource record type (e.g. A, AAAA, MX).
// See IANA DNS Parameters for assigned codes.
type RRType uint16

// DNS Resource Record Type constants
const (
	RRTypeA          RRType = 1     // A - IPv4 address
	RRTypeNS         RRType = 2     // NS - Name server
	RRTypeCNAME      RRType = 5     // CNAME - Canonical name
	RRTypeSOA        RRType = 6     // SOA - Start of authority
	RRTypePTR        RRType = 12    // PTR - Pointer
	RRTypeHINFO      RRType = 13    // HINFO - Host information
	RRTypeMX         RRType = 15    // MX - Mail exchange
	RRTypeTXT        RRType = 16    // TXT - Text
	RRTypeAAAA       RRType = 28    // AAAA - IPv6 address
	RRTypeSRV        RRType = 33    // SRV - Service
	RRTypeNAPTR      RRType = 35    // NAPTR - Naming authority pointer
	RRTypeOPT        RRType = 41    // OPT - EDNS(0) pseudo-record
	RRTypeDS         RRType = 43    // DS - Delegation signer
	RRTypeSSHFP      RRType = 44    // SSHFP - SSH key fingerprint
	RRTypeIPSECKEY   RRType = 45    // IPSECKEY - IPsec keying material
	RRTypeRRSIG      RRType = 46    // RRSIG - Resource record signature
	RRTypeNSEC       RRType = 47    // NSEC - Next secure
	RRTypeDNSKEY     RRType = 48    // DNSKEY - DNS key
	RRTypeDHCID      RRType = 49    // DHCID - DHCP identifier
	RRTypeNSEC3      RRType = 50    // NSEC3 - Hashed next secure
	RRTypeNSEC3PARAM RRType = 51    // NSEC3PARAM - NSEC3 parameters
	RRTypeTLSA       RRType = 52    // TLSA - TLS association
	RRTypeSMIMEA     RRType = 53    // SMIMEA - S/MIME association
	RRTypeOPENPGPKEY RRType = 61    // OPENPGPKEY - OpenPGP public key
	RRTypeSVCB       RRType = 64    // SVCB - Service binding
	RRTypeHTTPS      RRType = 65    // HTTPS - HTTPS binding
	RRTypeTSIG       RRType = 250   // TSIG - Transaction signature
	RRTypeIXFR       RRType = 251   // IXFR - Incremental zone transfer (query only)
	RRTypeAXFR       RRType = 252   // AXFR - Zone transfer (query only)
	RRTypeANY        RRType = 255   // ANY - Any type (query only)
	RRTypeCAA        RRType = 257   // CAA - Certificate authority authorization
	RRTypeANAME      RRType = 65305 // ANAME - Address alias (draft, private-use code)
)

// TypeInfo describes one entry of the record type registry, as printed by
// the --list command.
type TypeInfo struct {
	Type        RRType
	Name        string
	Description string
	Example     string
}

// typeRegistry is the canonical table of supported record types, in code
// order. Lookups by name are case-insensitive; the Name field is the
// canonical uppercase rendering.
var typeRegistry = []TypeInfo{
	{RRTypeA, "A", "IPv4 address", "127.0.0.1"},
	{RRTypeNS, "NS", "Name server", "ns1.example.net."},
	{RRTypeCNAME, "CNAME", "Canonical name", "www.example.net."},
	{RRTypeSOA, "SOA", "Start of authority", "ns1.example.net. admin.example.net. 1 7200 3600 1209600 300"},
	{RRTypePTR, "PTR", "Pointer", "example.net."},
	{RRTypeHINFO, "HINFO", "Host information", "\"amd64\" \"linux\""},
	{RRTypeMX, "MX", "Mail exchange", "10 mail.example.net."},
	{RRTypeTXT, "TXT", "Text", "\"v=spf1 -all\""},
	{RRTypeAAAA, "AAAA", "IPv6 address", "::1"},
	{RRTypeSRV, "SRV", "Service locator", "1 5 443 cloud.example.net."},
	{RRTypeNAPTR, "NAPTR", "Naming authority pointer", "100 10 \"s\" \"SIP+D2U\" \"\" _sip._udp.example.net."},
	{RRTypeOPT, "OPT", "EDNS(0) pseudo-record", ""},
	{RRTypeDS, "DS", "Delegation signer", "31589 8 2 cde0d742..."},
	{RRTypeSSHFP, "SSHFP", "SSH key fingerprint", "4 2 123abc..."},
	{RRTypeIPSECKEY, "IPSECKEY", "IPsec keying material", "10 1 2 192.0.2.38 aqnry..."},
	{RRTypeRRSIG, "RRSIG", "DNSSEC signature", "A 8 2 3600 1735689600 1733011200 12345 example.net. mdzdml..."},
	{RRTypeNSEC, "NSEC", "Next secure", "aaa.example.net. A SOA RRSIG NSEC DNSKEY"},
	{RRTypeDNSKEY, "DNSKEY", "DNSSEC public key", "257 3 8 awealc..."},
	{RRTypeDHCID, "DHCID", "DHCP identifier", "aaaaaaaaaaaa..."},
	{RRTypeNSEC3, "NSEC3", "Hashed next secure", "1 0 5 ab 65019c4ed041c959edcf3b9f741060d7e5d42f96"},
	{RRTypeNSEC3PARAM, "NSEC3PARAM", "NSEC3 parameters", "1 0 5 ab"},
	{RRTypeTLSA, "TLSA", "TLS certificate association", "3 1 1 efddf0..."},
	{RRTypeSMIMEA, "SMIMEA", "S/MIME certificate association", "3 1 1 efddf0..."},
	{RRTypeOPENPGPKEY, "OPENPGPKEY", "OpenPGP public key", "mqinbf..."},
	{RRTypeSVCB, "SVCB", "Service binding", "1 . alpn=h3"},
	{RRTypeHTTPS, "HTTPS", "HTTPS service binding", "1 . alpn=h2,h3"},
	{RRTypeTSIG, "TSIG", "Transaction signature", ""},
	{RRTypeIXFR, "IXFR", "Incremental zone transfer (query only)", ""},
	{RRTypeAXFR, "AXFR", "Zone transfer (query only)", ""},
	{RRTypeANY, "ANY", "Any record type (query only)", ""},
	{RRTypeCAA, "CAA", "Certificate authority authorization", "0 issue \"letsencrypt.org\""},
	{RRTypeANAME, "ANAME", "Address alias", "example.net."},
}

var typesByCode = func() map[RRType]TypeInfo {
	m := make(map[RRType]TypeInfo, len(typeRegistry))
	for _, info := range typeRegistry {
		m[info.Type] = info
	}
	return m
}()

var typesByName = func() map[string]RRType {
	m := make(map[string]RRType, len(typeRegistry))
	for _, info := range typeRegistry {
		m[info.Name] = info.Type
	}
	return m
}()

// AllTypes returns the registry entries in code order, for --list output.
func AllTypes() []TypeInfo {
	out := make([]TypeInfo, len(typeRegistry))
	copy(out, typeRegistry)
	return out
}

// IsRegistered returns true if the RRType is in the registry.
func (t RRType) IsRegistered() bool {
	_, ok := typesByCode[t]
	return ok
}

// IsQueryOnly returns true for sentinel types that may appear in questions
// but never as a record body.
func (t RRType) IsQueryOnly() bool {
	switch t {
	case RRTypeANY, RRTypeAXFR, RRTypeIXFR:
		return true
	default:
		return false
	}
}

// String returns the canonical uppercase name of the RRType. Codes outside
// the registry render with the numeric code preserved.
func (t RRType) String() string {
	if info, ok := typesByCode[t]; ok {
		return info.Name
	}
	return fmt.Sprintf("TYPE(%d)", uint16(t))
}

// RRTypeFromString converts a record type name to its RRType value.
// Lookup is case-insensitive. The second return value reports whether the
// name was found in the registry.
func RRTypeFromString(s string) (RRType, bool) {
	t, ok := typesByName[strings.ToUpper(s)]
	return t, ok
}
