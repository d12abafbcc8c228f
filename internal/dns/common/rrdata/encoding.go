package rrdata

import (
	"fmt"

	"github.com/haukened/dog/internal/dns/common/wire"
	"github.com/haukened/dog/internal/dns/domain"
)

// Encode writes a record body in wire form. Names inside bodies are
// written uncompressed, so the output is self-contained RDATA.
func Encode(w *wire.Writer, rdata domain.RData) error {
	switch b := rdata.(type) {
	case A:
		return encodeA(w, b)
	case NS:
		return encodeNS(w, b)
	case CNAME:
		return encodeCNAME(w, b)
	case SOA:
		return encodeSOA(w, b)
	case PTR:
		return encodePTR(w, b)
	case HINFO:
		return encodeHINFO(w, b)
	case MX:
		return encodeMX(w, b)
	case TXT:
		return encodeTXT(w, b)
	case AAAA:
		return encodeAAAA(w, b)
	case SRV:
		return encodeSRV(w, b)
	case NAPTR:
		return encodeNAPTR(w, b)
	case OPT:
		return encodeOPT(w, b)
	case DS:
		return encodeDS(w, b)
	case SSHFP:
		return encodeSSHFP(w, b)
	case IPSECKEY:
		return encodeIPSECKEY(w, b)
	case RRSIG:
		return encodeRRSIG(w, b)
	case NSEC:
		return encodeNSEC(w, b)
	case DNSKEY:
		return encodeDNSKEY(w, b)
	case DHCID:
		return encodeDHCID(w, b)
	case NSEC3:
		return encodeNSEC3(w, b)
	case NSEC3PARAM:
		return encodeNSEC3PARAM(w, b)
	case TLSA:
		return encodeTLSA(w, b)
	case SMIMEA:
		return encodeSMIMEA(w, b)
	case OPENPGPKEY:
		return encodeOPENPGPKEY(w, b)
	case HTTPS:
		return encodeSVCB(w, b.SVCB)
	case SVCB:
		return encodeSVCB(w, b)
	case TSIG:
		return encodeTSIG(w, b)
	case CAA:
		return encodeCAA(w, b)
	case ANAME:
		return encodeANAME(w, b)
	case Unknown:
		return encodeUnknown(w, b)
	default:
		return fmt.Errorf("no encoder for record body %T", rdata)
	}
}
