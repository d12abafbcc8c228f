package transport

import (
	"context"
	"errors"
	"net"

	"github.com/haukened/dog/internal/dns/domain"
)

// udpTransport sends one datagram and receives one, per RFC 1035
// section 4.2.1. If the response arrives with the TC bit set, the reply
// reports Truncated so the orchestrator can retry over TCP.
type udpTransport struct {
	addr string
	opts Options
}

func newUDPTransport(server string, opts Options) (*udpTransport, error) {
	addr, err := normalizeAddr(server, DefaultPortDNS)
	if err != nil {
		return nil, err
	}
	return &udpTransport{addr: addr, opts: opts}, nil
}

func (t *udpTransport) Exchange(ctx context.Context, request []byte) (Reply, error) {
	ctx, cancel := context.WithTimeout(ctx, t.opts.Timeout)
	defer cancel()

	conn, err := t.opts.Dial(ctx, "udp", t.addr)
	if err != nil {
		return Reply{}, wrapErr(OpConnect, t.addr, err)
	}
	defer conn.Close()

	if deadline, ok := ctx.Deadline(); ok {
		_ = conn.SetDeadline(deadline)
	}

	if _, err := conn.Write(request); err != nil {
		return Reply{}, wrapErr(OpSend, t.addr, err)
	}

	// Receive buffer sized to the advertised EDNS payload. One retry when
	// the read fails with a transient error; timeouts are final.
	buf := make([]byte, t.opts.BufferSize)
	n, err := conn.Read(buf)
	if err != nil && transientReadError(err) {
		t.opts.Logger.Debug(map[string]any{
			"server": t.addr,
			"error":  err.Error(),
		}, "Retrying UDP read after transient error")
		n, err = conn.Read(buf)
	}
	if err != nil {
		return Reply{}, wrapErr(OpReceive, t.addr, err)
	}

	payload := make([]byte, n)
	copy(payload, buf[:n])

	reply := Reply{
		Payload:   payload,
		Server:    remoteAddr(conn, t.addr),
		Truncated: tcBitSet(payload),
	}

	t.opts.Logger.Debug(map[string]any{
		"server":    reply.Server,
		"size":      n,
		"truncated": reply.Truncated,
	}, "Received UDP response")

	return reply, nil
}

// tcBitSet reports whether a raw DNS message has the truncation flag set.
func tcBitSet(payload []byte) bool {
	return len(payload) >= 3 && payload[2]&0x02 != 0
}

// transientReadError reports whether a read failure is worth one retry:
// a temporary condition that is not a timeout.
func transientReadError(err error) bool {
	var netErr net.Error
	if !errors.As(err, &netErr) {
		return false
	}
	//nolint:staticcheck // Temporary is the closest portable would-block signal
	return !netErr.Timeout() && netErr.Temporary()
}

// remoteAddr reports the address the response came from, falling back to
// the dialed address.
func remoteAddr(conn net.Conn, fallback string) string {
	if ra := conn.RemoteAddr(); ra != nil {
		return ra.String()
	}
	return fallback
}

var _ Transport = (*udpTransport)(nil)

// ShouldRetryOverTCP reports whether the reply should trigger the orchestrator's
// TCP retry for the given plan transport.
func (r Reply) ShouldRetryOverTCP(kind domain.Transport) bool {
	return r.Truncated && kind == domain.TransportAuto
}
