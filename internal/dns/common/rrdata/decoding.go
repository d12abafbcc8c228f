package rrdata

import (
	"fmt"

	"github.com/haukened/dog/internal/dns/common/wire"
	"github.com/haukened/dog/internal/dns/domain"
)

// body adapts a concrete decode result to the RData interface, dropping
// the value when the parse failed.
func body[T domain.RData](v T, err error) (domain.RData, error) {
	if err != nil {
		return nil, err
	}
	return v, nil
}

// Decode parses a record body of the given type from a cursor bounded to
// exactly the record's RDATA. The caller (the message codec) checks that
// the cursor was consumed exactly.
//
// Types that embed a domain name may follow compression pointers into the
// rest of the message through the shared cursor; everything else reads
// only its own bytes. Query-only sentinel types never carry RDATA, so
// meeting one here is an error.
func Decode(rrType domain.RRType, c *wire.Cursor) (domain.RData, error) {
	if rrType.IsQueryOnly() {
		return nil, fmt.Errorf("record type %s is query-only and has no body", rrType)
	}
	switch rrType {
	case domain.RRTypeA: // 1
		return body(decodeA(c))
	case domain.RRTypeNS: // 2
		return body(decodeNS(c))
	case domain.RRTypeCNAME: // 5
		return body(decodeCNAME(c))
	case domain.RRTypeSOA: // 6
		return body(decodeSOA(c))
	case domain.RRTypePTR: // 12
		return body(decodePTR(c))
	case domain.RRTypeHINFO: // 13
		return body(decodeHINFO(c))
	case domain.RRTypeMX: // 15
		return body(decodeMX(c))
	case domain.RRTypeTXT: // 16
		return body(decodeTXT(c))
	case domain.RRTypeAAAA: // 28
		return body(decodeAAAA(c))
	case domain.RRTypeSRV: // 33
		return body(decodeSRV(c))
	case domain.RRTypeNAPTR: // 35
		return body(decodeNAPTR(c))
	case domain.RRTypeOPT: // 41
		return body(decodeOPT(c))
	case domain.RRTypeDS: // 43
		return body(decodeDS(c))
	case domain.RRTypeSSHFP: // 44
		return body(decodeSSHFP(c))
	case domain.RRTypeIPSECKEY: // 45
		return body(decodeIPSECKEY(c))
	case domain.RRTypeRRSIG: // 46
		return body(decodeRRSIG(c))
	case domain.RRTypeNSEC: // 47
		return body(decodeNSEC(c))
	case domain.RRTypeDNSKEY: // 48
		return body(decodeDNSKEY(c))
	case domain.RRTypeDHCID: // 49
		return body(decodeDHCID(c))
	case domain.RRTypeNSEC3: // 50
		return body(decodeNSEC3(c))
	case domain.RRTypeNSEC3PARAM: // 51
		return body(decodeNSEC3PARAM(c))
	case domain.RRTypeTLSA: // 52
		return body(decodeTLSA(c))
	case domain.RRTypeSMIMEA: // 53
		return body(decodeSMIMEA(c))
	case domain.RRTypeOPENPGPKEY: // 61
		return body(decodeOPENPGPKEY(c))
	case domain.RRTypeSVCB: // 64
		return body(decodeSVCB(c))
	case domain.RRTypeHTTPS: // 65
		svcb, err := decodeSVCB(c)
		if err != nil {
			return nil, err
		}
		return HTTPS{SVCB: svcb}, nil
	case domain.RRTypeTSIG: // 250
		return body(decodeTSIG(c))
	case domain.RRTypeCAA: // 257
		return body(decodeCAA(c))
	case domain.RRTypeANAME: // 65305
		return body(decodeANAME(c))
	default:
		return body(decodeUnknown(rrType, c))
	}
}
