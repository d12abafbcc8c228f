// Package query expands a QueryPlan into individual DNS queries, executes
// them in plan order, and collects the per-query ResponseViews for the
// renderers.
package query

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
	"time"

	"github.com/haukened/dog/internal/dns/common/clock"
	"github.com/haukened/dog/internal/dns/common/log"
	"github.com/haukened/dog/internal/dns/domain"
	"github.com/haukened/dog/internal/dns/gateways/codec"
	"github.com/haukened/dog/internal/dns/gateways/transport"
	"github.com/haukened/dog/internal/dns/infra/system"
)

// ErrTruncated is reported when a response arrives truncated over an
// explicitly requested UDP transport, where no TCP retry is allowed.
var ErrTruncated = errors.New("truncated response received over UDP")

// MessageCodec is the slice of the codec the orchestrator needs.
type MessageCodec interface {
	EncodeQuery(id uint16, questions []domain.Question, tweaks domain.Tweaks, edns domain.EDNSMode) ([]byte, error)
	Decode(data []byte) (domain.Message, error)
}

// TransportFactory builds a transport for one exchange.
type TransportFactory func(kind domain.Transport, server string, opts transport.Options) (transport.Transport, error)

// Options defines the orchestrator's dependencies. Codec is required;
// everything else has a production default and exists for injection in
// tests.
type Options struct {
	// required parameters
	Codec MessageCodec

	// options to inject for testing purposes
	NewTransport   TransportFactory
	DefaultServers func() ([]string, error)
	TxID           func() uint16
	Dial           transport.DialFunc
	Clock          clock.Clock
	Timeout        time.Duration
	Logger         log.Logger
}

// Orchestrator runs the queries of a plan sequentially and in a
// deterministic order: nameservers, then domains, then types, then
// classes. Failures of one query never abort the batch.
type Orchestrator struct {
	codec          MessageCodec
	newTransport   TransportFactory
	defaultServers func() ([]string, error)
	txid           func() uint16
	dial           transport.DialFunc
	clock          clock.Clock
	timeout        time.Duration
	logger         log.Logger
}

// New creates an orchestrator, filling defaulted options.
func New(opts Options) (*Orchestrator, error) {
	if opts.Codec == nil {
		return nil, fmt.Errorf("message codec is required")
	}
	if opts.NewTransport == nil {
		opts.NewTransport = transport.New
	}
	if opts.DefaultServers == nil {
		opts.DefaultServers = system.DefaultNameservers
	}
	if opts.TxID == nil {
		opts.TxID = randomTxID
	}
	if opts.Clock == nil {
		opts.Clock = clock.RealClock{}
	}
	if opts.Timeout <= 0 {
		opts.Timeout = 5 * time.Second
	}
	if opts.Logger == nil {
		opts.Logger = log.NewNoopLogger()
	}
	return &Orchestrator{
		codec:          opts.Codec,
		newTransport:   opts.NewTransport,
		defaultServers: opts.DefaultServers,
		txid:           opts.TxID,
		dial:           opts.Dial,
		clock:          opts.Clock,
		timeout:        opts.Timeout,
		logger:         opts.Logger,
	}, nil
}

// randomTxID draws a fresh transaction id from the system entropy source.
func randomTxID() uint16 {
	var b [2]byte
	_, _ = rand.Read(b[:])
	return binary.BigEndian.Uint16(b[:])
}

// Run executes the plan and returns one view per query, in the exact
// order of the nameservers × domains × types × classes traversal.
func (o *Orchestrator) Run(ctx context.Context, plan domain.QueryPlan) ([]domain.ResponseView, error) {
	if err := plan.Validate(); err != nil {
		return nil, err
	}

	servers := plan.Nameservers
	if len(servers) == 0 {
		discovered, err := o.defaultServers()
		if err != nil {
			return nil, fmt.Errorf("no nameserver given and %w", err)
		}
		servers = discovered
	}

	// Parse every domain up front so a bad name fails before any I/O.
	questions := make([][]domain.Question, len(plan.Domains))
	for i, name := range plan.Domains {
		for _, rrtype := range plan.Types {
			for _, class := range plan.Classes {
				q, err := domain.NewQuestion(name, rrtype, class)
				if err != nil {
					return nil, err
				}
				questions[i] = append(questions[i], q)
			}
		}
	}

	var views []domain.ResponseView
	for _, server := range servers {
		for _, perDomain := range questions {
			for _, q := range perDomain {
				views = append(views, o.runQuery(ctx, plan, server, q))
			}
		}
	}
	return views, nil
}

// runQuery performs a single exchange and builds its view. All failure
// paths produce a view carrying the error; nothing here aborts the batch.
func (o *Orchestrator) runQuery(ctx context.Context, plan domain.QueryPlan, server string, q domain.Question) domain.ResponseView {
	view := domain.ResponseView{
		Question:  q,
		Transport: plan.Transport,
		Server:    server,
	}

	id := o.txid()
	if plan.TxID != nil {
		id = *plan.TxID
	}

	request, err := o.codec.EncodeQuery(id, []domain.Question{q}, plan.Tweaks, plan.EDNS)
	if err != nil {
		view.Err = err
		return view
	}

	topts := transport.Options{
		Timeout:    o.timeout,
		BufferSize: plan.Tweaks.BufferSize,
		Dial:       o.dial,
		Logger:     o.logger,
	}
	if plan.EDNS == domain.EDNSDisable {
		topts.BufferSize = 0 // fall back to the transport default
	}

	start := o.clock.Now()

	tr, err := o.newTransport(plan.Transport, server, topts)
	if err != nil {
		view.Err = err
		return view
	}

	o.logger.Debug(map[string]any{
		"server":    server,
		"transport": string(plan.Transport),
		"question":  q.String(),
		"txid":      id,
	}, "Sending DNS query")

	reply, err := tr.Exchange(ctx, request)
	if err != nil {
		view.Err = err
		view.Duration = o.clock.Now().Sub(start)
		return view
	}

	if reply.ShouldRetryOverTCP(plan.Transport) {
		// Exactly one retry, on the same server, over TCP.
		o.logger.Debug(map[string]any{"server": server}, "Response truncated, retrying over TCP")
		view.Warnings = append(view.Warnings, "response truncated, retried over TCP")

		tcp, err := o.newTransport(domain.TransportTCP, server, topts)
		if err != nil {
			view.Err = err
			return view
		}
		if reply, err = tcp.Exchange(ctx, request); err != nil {
			view.Err = err
			view.Duration = o.clock.Now().Sub(start)
			return view
		}
		view.Transport = domain.TransportTCP
	} else if reply.Truncated {
		// The user pinned the transport to UDP; a truncated response is
		// final and an error.
		view.Err = ErrTruncated
		view.Duration = o.clock.Now().Sub(start)
		return view
	}

	view.Duration = o.clock.Now().Sub(start)
	view.Server = reply.Server

	msg, err := o.codec.Decode(reply.Payload)
	if err != nil {
		view.Err = err
		return view
	}
	if msg.ID != id {
		view.Err = fmt.Errorf("transaction id mismatch: sent %d, received %d", id, msg.ID)
		return view
	}

	view.Flags = msg.Flags
	view.RCode = codec.EffectiveRCode(msg)
	view.Answers = msg.Answers
	view.Authority = msg.Authority
	view.Additional = withoutOPT(msg.Additional)
	if plan.EDNS == domain.EDNSShow {
		view.EDNS = codec.ExtractEDNS(msg)
	}
	return view
}

// withoutOPT drops the OPT pseudo-record from a section; it is surfaced
// through the EDNS field instead, and only on request.
func withoutOPT(records []domain.ResourceRecord) []domain.ResourceRecord {
	out := records[:0:0]
	for _, rr := range records {
		if rr.Type != domain.RRTypeOPT {
			out = append(out, rr)
		}
	}
	return out
}

// HadErrors reports whether any view in the batch failed at the wire or
// transport level. DNS-level response codes are not errors.
func HadErrors(views []domain.ResponseView) bool {
	for _, v := range views {
		if v.Err != nil {
			return true
		}
	}
	return false
}
