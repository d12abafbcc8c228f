package domain

import "time"

// ResponseView is the structured per-query result handed to the renderers.
// Exactly one of Err or the response fields is meaningful: a transport or
// wire failure produces a view with Err set and no sections.
type ResponseView struct {
	Question  Question
	Transport Transport
	Server    string // the address actually used, host:port or URL

	Flags      Flags
	RCode      RCode
	Answers    []ResourceRecord
	Authority  []ResourceRecord
	Additional []ResourceRecord

	// EDNS carries the response's OPT fields when the plan asked to see
	// them; nil otherwise.
	EDNS *EDNSInfo

	Duration time.Duration

	// Warnings are protocol-level notes, e.g. that a truncated UDP response
	// was retried over TCP.
	Warnings []string

	Err error
}

// OK returns true if the exchange and decode both succeeded. The DNS-level
// response code is data, not an error; NXDOMAIN is still OK.
func (v ResponseView) OK() bool {
	return v.Err == nil
}
