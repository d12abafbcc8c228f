package transport

import (
	"context"
	"encoding/binary"
	"io"
	"net"
)

// tcpTransport exchanges one length-framed message over a fresh TCP
// connection, per RFC 1035 section 4.2.2.
type tcpTransport struct {
	addr string
	opts Options
}

func newTCPTransport(server string, opts Options) (*tcpTransport, error) {
	addr, err := normalizeAddr(server, DefaultPortDNS)
	if err != nil {
		return nil, err
	}
	return &tcpTransport{addr: addr, opts: opts}, nil
}

func (t *tcpTransport) Exchange(ctx context.Context, request []byte) (Reply, error) {
	ctx, cancel := context.WithTimeout(ctx, t.opts.Timeout)
	defer cancel()

	conn, err := t.opts.Dial(ctx, "tcp", t.addr)
	if err != nil {
		return Reply{}, wrapErr(OpConnect, t.addr, err)
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
		"server": t.addr,
		"size":   len(payload),
	}, "Received TCP response")

	return Reply{Payload: payload, Server: remoteAddr(conn, t.addr)}, nil
}

// framedExchange writes a two-octet length prefix plus the request, then
// reads a length prefix plus that many response bytes. Shared by the TCP
// and TLS transports. The returned Op names the phase of any failure.
func framedExchange(conn net.Conn, request []byte) ([]byte, Op, error) {
	frame := make([]byte, 2+len(request))
	binary.BigEndian.PutUint16(frame, uint16(len(request)))
	copy(frame[2:], request)

	if _, err := conn.Write(frame); err != nil {
		return nil, OpSend, err
	}

	var lengthPrefix [2]byte
	if _, err := io.ReadFull(conn, lengthPrefix[:]); err != nil {
		return nil, OpReceive, err
	}
	length := binary.BigEndian.Uint16(lengthPrefix[:])

	payload := make([]byte, length)
	if _, err := io.ReadFull(conn, payload); err != nil {
		return nil, OpReceive, err
	}
	return payload, "", nil
}

var _ Transport = (*tcpTransport)(nil)
