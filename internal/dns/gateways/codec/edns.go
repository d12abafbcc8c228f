package codec

import (
	"github.com/haukened/dog/internal/dns/common/rrdata"
	"github.com/haukened/dog/internal/dns/common/wire"
	"github.com/haukened/dog/internal/dns/domain"
)

// NewOptRecord builds the OPT pseudo-record appended to outgoing queries:
// root owner name, the advertised UDP payload size in the class field,
// zero extended-rcode/version/flags in the TTL field, and no options.
func NewOptRecord(payloadSize uint16) domain.ResourceRecord {
	return domain.ResourceRecord{
		Name:  wire.Root,
		Type:  domain.RRTypeOPT,
		Class: domain.RRClass(payloadSize),
		TTL:   0,
		Body:  rrdata.OPT{},
	}
}

// ExtractEDNS pulls the EDNS(0) fields out of an OPT pseudo-record in the
// additional section, if one is present. The class field carries the
// payload size and the TTL field packs extended-rcode, version, and flags.
func ExtractEDNS(m domain.Message) *domain.EDNSInfo {
	for _, rr := range m.Additional {
		if rr.Type != domain.RRTypeOPT {
			continue
		}
		info := &domain.EDNSInfo{
			PayloadSize:   uint16(rr.Class),
			ExtendedRCode: uint8(rr.TTL >> 24),
			Version:       uint8(rr.TTL >> 16),
			Flags:         uint16(rr.TTL),
			DNSSECOk:      rr.TTL&0x8000 != 0,
		}
		if opt, ok := rr.Body.(rrdata.OPT); ok {
			info.Options = opt.Options
		}
		return info
	}
	return nil
}

// EffectiveRCode folds an OPT record's extended RCODE bits onto the four
// header bits, yielding the full response code.
func EffectiveRCode(m domain.Message) domain.RCode {
	if info := ExtractEDNS(m); info != nil && info.ExtendedRCode != 0 {
		return m.Flags.RCode.WithExtension(info.ExtendedRCode)
	}
	return m.Flags.RCode
}
