package domain

// EDNSMode selects how the EDNS(0) OPT pseudo-record is handled.
type EDNSMode string

// EDNS handling modes, as chosen with --edns.
const (
	// EDNSDisable omits the OPT record from queries entirely.
	EDNSDisable EDNSMode = "disable"

	// EDNSHide sends an OPT record but keeps it out of the rendered output.
	// This is the default.
	EDNSHide EDNSMode = "hide"

	// EDNSShow sends an OPT record and surfaces the response's EDNS fields.
	EDNSShow EDNSMode = "show"
)

// DefaultUDPPayloadSize is the payload size advertised in queries, per the
// DNS flag day 2020 recommendation.
const DefaultUDPPayloadSize = 1232

// EDNSOption is one (code, value) pair inside an OPT record body.
type EDNSOption struct {
	Code uint16
	Data []byte
}

// EDNSInfo carries the EDNS(0) fields extracted from an OPT pseudo-record
// in the additional section of a response.
type EDNSInfo struct {
	PayloadSize   uint16 // the "class" field: advertised UDP payload size
	ExtendedRCode uint8  // high bits of the response code
	Version       uint8
	DNSSECOk      bool   // the DO bit
	Flags         uint16 // remaining flag bits, DO included
	Options       []EDNSOption
}
