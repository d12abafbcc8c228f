package domain

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Transport selects which message carrier a plan's queries use.
type Transport string

// Supported transports. TransportAuto is UDP with an automatic retry over
// TCP when the response comes back truncated; TransportUDP is UDP with no
// fallback, as requested with an explicit --udp.
const (
	TransportAuto  Transport = "auto"
	TransportUDP   Transport = "udp"
	TransportTCP   Transport = "tcp"
	TransportTLS   Transport = "tls"
	TransportHTTPS Transport = "https"
)

// ColourMode selects when the table renderer uses terminal colours.
type ColourMode string

// Colour modes, as chosen with --color / --colour.
const (
	ColourAutomatic ColourMode = "automatic"
	ColourAlways    ColourMode = "always"
	ColourNever     ColourMode = "never"
)

// OutputOptions carries the rendering choices through to the renderer.
type OutputOptions struct {
	JSON         bool
	Short        bool
	Seconds      bool
	ShowDuration bool
	Verbose      bool
	Colour       ColourMode `validate:"oneof=automatic always never"`
}

// QueryPlan is the structured input the CLI hands to the orchestrator: the
// full description of which queries to run and how.
type QueryPlan struct {
	// Domains are presentation-form names to query. At least one is required.
	Domains []string `validate:"required,min=1,dive,required"`

	// Types are the record types to ask for. Defaults to {A}.
	Types []RRType `validate:"required,min=1"`

	// Classes are the query classes. Defaults to {IN}.
	Classes []RRClass `validate:"required,min=1"`

	// Nameservers are server addresses ("1.1.1.1", "[::1]:5300", a hostname,
	// or a full URL for DNS-over-HTTPS). Empty means the system resolver list.
	Nameservers []string

	Transport Transport `validate:"oneof=auto udp tcp tls https"`
	EDNS      EDNSMode  `validate:"oneof=disable hide show"`
	Tweaks    Tweaks
	TxID      *uint16 // pinned transaction id; nil means random per query

	Output OutputOptions
}

// NewQueryPlan returns a plan with every default filled in: type A, class
// IN, automatic transport, EDNS hidden, flag-day buffer size.
func NewQueryPlan() QueryPlan {
	return QueryPlan{
		Types:     []RRType{RRTypeA},
		Classes:   []RRClass{RRClassIN},
		Transport: TransportAuto,
		EDNS:      EDNSHide,
		Tweaks:    Tweaks{BufferSize: DefaultUDPPayloadSize},
		Output:    OutputOptions{Colour: ColourAutomatic},
	}
}

var planValidator = validator.New(validator.WithRequiredStructEnabled())

// Validate checks whether the plan is structurally complete and coherent.
func (p QueryPlan) Validate() error {
	if err := planValidator.Struct(p); err != nil {
		return fmt.Errorf("invalid query plan: %w", err)
	}
	if p.Tweaks.BufferSize < 512 {
		return fmt.Errorf("invalid query plan: EDNS buffer size %d below minimum 512", p.Tweaks.BufferSize)
	}
	return nil
}

// QueryCount returns how many queries the plan expands to.
func (p QueryPlan) QueryCount() int {
	servers := len(p.Nameservers)
	if servers == 0 {
		servers = 1
	}
	return servers * len(p.Domains) * len(p.Types) * len(p.Classes)
}
