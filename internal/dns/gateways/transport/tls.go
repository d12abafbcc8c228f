package transport

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"net"
)

// tlsTransport exchanges one length-framed message over DNS-over-TLS,
// per RFC 7858. Certificate validation uses the platform trust store and
// failures are fatal for the exchange.
type tlsTransport struct {
	addr       string
	serverName string
	opts       Options
}

func newTLSTransport(server string, opts Options) (*tlsTransport, error) {
	addr, err := normalizeAddr(server, DefaultPortTLS)
	if err != nil {
		return nil, err
	}
	t := &tlsTransport{addr: addr, opts: opts}

	// SNI only makes sense for a hostname; a bare IP gets no server name
	// and certificate checking falls back to IP SANs.
	if host := hostOf(addr); net.ParseIP(host) == nil {
		t.serverName = host
	}
	return t, nil
}

func (t *tlsTransport) Exchange(ctx context.Context, request []byte) (Reply, error) {
	ctx, cancel := context.WithTimeout(ctx, t.opts.Timeout)
	defer cancel()

	conn, err := t.handshake(ctx)
	if err != nil {
		return Reply{}, err
	}
	defer conn.Close()

	if deadline, ok := ctx.Deadline(); ok {
		_ = conn.SetDeadline(deadline)
	}

	payload, op, err := framedExchange(conn, request)
	if err != nil {
		return Reply{}, wrapErr(op, t.addr, err)
	}

	t.opts.Logger.Debug(map[string]any{
		"server":      t.addr,
		"server_name": t.serverName,
		"size":        len(payload),
	}, "Received DNS-over-TLS response")

	return Reply{Payload: payload, Server: t.addr}, nil
}

// handshake dials and completes the TLS session, classifying certificate
// failures apart from other handshake errors.
func (t *tlsTransport) handshake(ctx context.Context) (net.Conn, error) {
	rawConn, err := t.opts.Dial(ctx, "tcp", t.addr)
	if err != nil {
		return nil, wrapErr(OpConnect, t.addr, err)
	}

	config := t.opts.TLSConfig
	if config == nil {
		config = &tls.Config{}
	} else {
		config = config.Clone()
	}
	if config.ServerName == "" {
		config.ServerName = t.serverName
	}
	if config.ServerName == "" {
		// crypto/tls refuses an empty ServerName; an IP literal is checked
		// against the certificate's IP SANs and never sent as SNI.
		config.ServerName = hostOf(t.addr)
	}

	tlsConn := tls.Client(rawConn, config)
	if err := tlsConn.HandshakeContext(ctx); err != nil {
		_ = rawConn.Close()
		wrapped := wrapErr(OpConnect, t.addr, err)
		var opErr *OpError
		if errors.As(wrapped, &opErr) && !errors.Is(opErr, ErrTLSCertificate) && !errors.Is(opErr, ErrTimeout) {
			return nil, &OpError{Op: OpConnect, Server: t.addr, Err: fmt.Errorf("%w: %v", ErrTLSHandshake, err)}
		}
		return nil, wrapped
	}
	return tlsConn, nil
}

var _ Transport = (*tlsTransport)(nil)
