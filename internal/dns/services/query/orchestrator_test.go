package query

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/haukened/dog/internal/dns/common/log"
	"github.com/haukened/dog/internal/dns/common/rrdata"
	"github.com/haukened/dog/internal/dns/domain"
	"github.com/haukened/dog/internal/dns/gateways/codec"
	"github.com/haukened/dog/internal/dns/gateways/transport"
)

// fakeTransport answers every exchange with the reply produced by fn.
type fakeTransport struct {
	fn func(request []byte) (transport.Reply, error)
}

func (f *fakeTransport) Exchange(_ context.Context, request []byte) (transport.Reply, error) {
	return f.fn(request)
}

// call records one transport factory invocation.
type call struct {
	kind   domain.Transport
	server string
}

// harness wires an orchestrator to a scripted transport behaviour.
type harness struct {
	codec *codec.Codec
	calls []call
	// behave maps a transport kind to the exchange behaviour.
	behave func(c call, request []byte) (transport.Reply, error)
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	return &harness{codec: codec.New(log.NewNoopLogger())}
}

func (h *harness) orchestrator(t *testing.T) *Orchestrator {
	t.Helper()
	o, err := New(Options{
		Codec: h.codec,
		NewTransport: func(kind domain.Transport, server string, _ transport.Options) (transport.Transport, error) {
			c := call{kind: kind, server: server}
			h.calls = append(h.calls, c)
			return &fakeTransport{fn: func(request []byte) (transport.Reply, error) {
				return h.behave(c, request)
			}}, nil
		},
		DefaultServers: func() ([]string, error) { return []string{"192.0.2.53"}, nil },
		TxID:           func() uint16 { return 7 },
		Logger:         log.NewNoopLogger(),
	})
	require.NoError(t, err)
	return o
}

// respondWith decodes the request and answers it with the given rcode and
// an A answer when answered is true.
func (h *harness) respondWith(t *testing.T, rcode domain.RCode, answered bool) func(call, []byte) (transport.Reply, error) {
	t.Helper()
	return func(c call, request []byte) (transport.Reply, error) {
		req, err := h.codec.Decode(request)
		require.NoError(t, err)

		resp := domain.Message{
			ID: req.ID,
			Flags: domain.Flags{
				Response:           true,
				RecursionDesired:   true,
				RecursionAvailable: true,
				RCode:              rcode,
			},
			Questions: req.Questions,
		}
		if answered {
			resp.Answers = []domain.ResourceRecord{{
				Name: req.Questions[0].Name, Type: domain.RRTypeA, Class: domain.RRClassIN,
				TTL: 300, Body: rrdata.A{Addr: []byte{192, 0, 2, 1}},
			}}
		}
		payload, err := h.codec.Encode(resp)
		require.NoError(t, err)
		return transport.Reply{Payload: payload, Server: c.server}, nil
	}
}

func plan(domains ...string) domain.QueryPlan {
	p := domain.NewQueryPlan()
	p.Domains = domains
	return p
}

func TestRunSingleQuery(t *testing.T) {
	h := newHarness(t)
	h.behave = h.respondWith(t, domain.RCodeNoError, true)

	views, err := h.orchestrator(t).Run(context.Background(), plan("example.net"))
	require.NoError(t, err)
	require.Len(t, views, 1)

	v := views[0]
	assert.NoError(t, v.Err)
	assert.Equal(t, "example.net. IN A", v.Question.String())
	assert.Equal(t, domain.RCodeNoError, v.RCode)
	require.Len(t, v.Answers, 1)
	assert.Equal(t, "192.0.2.1", v.Answers[0].Body.String())
	assert.Equal(t, "192.0.2.53", v.Server, "default resolver used")
}

func TestRunTraversalOrder(t *testing.T) {
	h := newHarness(t)
	h.behave = h.respondWith(t, domain.RCodeNoError, true)

	p := plan("example.net")
	p.Types = []domain.RRType{domain.RRTypeA, domain.RRTypeAAAA}
	p.Nameservers = []string{"1.1.1.1", "8.8.8.8"}

	views, err := h.orchestrator(t).Run(context.Background(), p)
	require.NoError(t, err)
	require.Len(t, views, 4)

	got := make([]string, len(views))
	for i, v := range views {
		got[i] = fmt.Sprintf("%s/%s", v.Server, v.Question.Type)
	}
	want := []string{"1.1.1.1/A", "1.1.1.1/AAAA", "8.8.8.8/A", "8.8.8.8/AAAA"}
	assert.Equal(t, want, got)
}

func TestRunTruncationRetriesOnceOverTCP(t *testing.T) {
	h := newHarness(t)
	answer := h.respondWith(t, domain.RCodeNoError, true)
	h.behave = func(c call, request []byte) (transport.Reply, error) {
		if c.kind == domain.TransportTCP {
			return answer(c, request)
		}
		// UDP replies truncated.
		reply, err := answer(c, request)
		reply.Payload[2] |= 0x02
		reply.Truncated = true
		return reply, err
	}

	views, err := h.orchestrator(t).Run(context.Background(), plan("example.net"))
	require.NoError(t, err)
	require.Len(t, views, 1)

	v := views[0]
	require.NoError(t, v.Err)
	assert.Equal(t, domain.TransportTCP, v.Transport)
	assert.Contains(t, v.Warnings, "response truncated, retried over TCP")

	// Exactly two transports: the UDP attempt, then one TCP retry.
	require.Len(t, h.calls, 2)
	assert.Equal(t, domain.TransportAuto, h.calls[0].kind)
	assert.Equal(t, domain.TransportTCP, h.calls[1].kind)
	assert.Equal(t, h.calls[0].server, h.calls[1].server, "retry stays on the same server")
}

func TestRunExplicitUDPNeverRetries(t *testing.T) {
	h := newHarness(t)
	answer := h.respondWith(t, domain.RCodeNoError, true)
	h.behave = func(c call, request []byte) (transport.Reply, error) {
		reply, err := answer(c, request)
		reply.Payload[2] |= 0x02
		reply.Truncated = true
		return reply, err
	}

	p := plan("example.net")
	p.Transport = domain.TransportUDP
	p.Nameservers = []string{"192.0.2.1"}

	views, err := h.orchestrator(t).Run(context.Background(), p)
	require.NoError(t, err)
	require.Len(t, views, 1)

	assert.ErrorIs(t, views[0].Err, ErrTruncated)
	assert.Len(t, h.calls, 1, "no TCP retry for explicit --udp")
}

func TestRunPinnedTxIDAppliesToEveryQuery(t *testing.T) {
	h := newHarness(t)
	var seen []uint16
	answer := h.respondWith(t, domain.RCodeNoError, true)
	h.behave = func(c call, request []byte) (transport.Reply, error) {
		req, err := h.codec.Decode(request)
		require.NoError(t, err)
		seen = append(seen, req.ID)
		return answer(c, request)
	}

	p := plan("a.net", "b.net")
	p.Nameservers = []string{"192.0.2.1"}
	txid := uint16(0xBEEF)
	p.TxID = &txid

	_, err := h.orchestrator(t).Run(context.Background(), p)
	require.NoError(t, err)
	assert.Equal(t, []uint16{0xBEEF, 0xBEEF}, seen)
}

func TestRunIDMismatchIsAnError(t *testing.T) {
	h := newHarness(t)
	answer := h.respondWith(t, domain.RCodeNoError, true)
	h.behave = func(c call, request []byte) (transport.Reply, error) {
		reply, err := answer(c, request)
		reply.Payload[0] ^= 0xFF
		return reply, err
	}

	views, err := h.orchestrator(t).Run(context.Background(), plan("example.net"))
	require.NoError(t, err)
	require.Len(t, views, 1)
	require.Error(t, views[0].Err)
	assert.Contains(t, views[0].Err.Error(), "transaction id mismatch")
}

func TestRunNXDomainIsDataNotError(t *testing.T) {
	h := newHarness(t)
	h.behave = h.respondWith(t, domain.RCodeNXDomain, false)

	views, err := h.orchestrator(t).Run(context.Background(), plan("missing.example.net"))
	require.NoError(t, err)
	require.Len(t, views, 1)

	v := views[0]
	assert.NoError(t, v.Err)
	assert.Equal(t, domain.RCodeNXDomain, v.RCode)
	assert.Empty(t, v.Answers)
	assert.False(t, HadErrors(views))
}

func TestRunTransportErrorDoesNotAbortBatch(t *testing.T) {
	h := newHarness(t)
	answer := h.respondWith(t, domain.RCodeNoError, true)
	failed := false
	h.behave = func(c call, request []byte) (transport.Reply, error) {
		if !failed {
			failed = true
			return transport.Reply{}, errors.New("connection refused")
		}
		return answer(c, request)
	}

	views, err := h.orchestrator(t).Run(context.Background(), plan("a.net", "b.net"))
	require.NoError(t, err)
	require.Len(t, views, 2)

	assert.Error(t, views[0].Err)
	assert.NoError(t, views[1].Err)
	assert.True(t, HadErrors(views))
}

func TestRunInvalidPlanFailsBeforeIO(t *testing.T) {
	h := newHarness(t)
	h.behave = func(call, []byte) (transport.Reply, error) {
		t.Fatal("no I/O expected for an invalid plan")
		return transport.Reply{}, nil
	}

	_, err := h.orchestrator(t).Run(context.Background(), domain.QueryPlan{})
	require.Error(t, err)
	assert.Empty(t, h.calls)
}

func TestRunEDNSShowSurfacesOptRecord(t *testing.T) {
	h := newHarness(t)
	h.behave = func(c call, request []byte) (transport.Reply, error) {
		req, err := h.codec.Decode(request)
		require.NoError(t, err)

		resp := domain.Message{
			ID:        req.ID,
			Flags:     domain.Flags{Response: true, RecursionDesired: true, RecursionAvailable: true},
			Questions: req.Questions,
			Additional: []domain.ResourceRecord{
				codec.NewOptRecord(4096),
			},
		}
		payload, err := h.codec.Encode(resp)
		require.NoError(t, err)
		return transport.Reply{Payload: payload, Server: c.server}, nil
	}

	p := plan("example.net")
	p.EDNS = domain.EDNSShow
	views, err := h.orchestrator(t).Run(context.Background(), p)
	require.NoError(t, err)
	require.Len(t, views, 1)

	v := views[0]
	require.NotNil(t, v.EDNS)
	assert.Equal(t, uint16(4096), v.EDNS.PayloadSize)
	assert.Empty(t, v.Additional, "OPT never shows up as a plain additional record")

	// With the default hide mode the OPT record disappears entirely.
	p.EDNS = domain.EDNSHide
	views, err = h.orchestrator(t).Run(context.Background(), p)
	require.NoError(t, err)
	assert.Nil(t, views[0].EDNS)
	assert.Empty(t, views[0].Additional)
}
