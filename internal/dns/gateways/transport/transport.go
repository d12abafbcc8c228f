// Package transport carries pre-encoded DNS messages to a server and
// returns the raw response bytes. Four carriers implement the same
// exchange contract: UDP, TCP, DNS-over-TLS, and DNS-over-HTTPS. The
// transports never look inside a message beyond the UDP truncation bit;
// encoding and decoding belong to the codec.
package transport

import (
	"context"
	"crypto/tls"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/haukened/dog/internal/dns/common/log"
	"github.com/haukened/dog/internal/dns/domain"
)

// Reply is the result of one exchange: the raw response payload, the
// server address it came from, and whether the response arrived with the
// truncation bit set (UDP only).
type Reply struct {
	Payload   []byte
	Server    string
	Truncated bool
}

// Transport sends one request and receives one response. Implementations
// are scoped to a single server; connections never outlive an exchange.
type Transport interface {
	Exchange(ctx context.Context, request []byte) (Reply, error)
}

// DialFunc creates a network connection. Injectable for tests.
type DialFunc func(ctx context.Context, network, address string) (net.Conn, error)

// Options configures a transport instance.
type Options struct {
	// Timeout bounds each complete exchange. Defaults to 5 seconds.
	Timeout time.Duration

	// BufferSize is the UDP receive buffer. Defaults to 4096 octets.
	BufferSize uint16

	// Dial overrides the connection factory, for tests.
	Dial DialFunc

	// TLSConfig overrides the DNS-over-TLS client configuration, for tests.
	// Nil uses the platform trust store.
	TLSConfig *tls.Config

	// HTTPClient overrides the DNS-over-HTTPS client, for tests.
	HTTPClient *http.Client

	Logger log.Logger
}

const (
	defaultTimeout       = 5 * time.Second
	defaultUDPBufferSize = 4096
)

// withDefaults fills the zero-valued options.
func (o Options) withDefaults() Options {
	if o.Timeout <= 0 {
		o.Timeout = defaultTimeout
	}
	if o.BufferSize == 0 {
		o.BufferSize = defaultUDPBufferSize
	}
	if o.Dial == nil {
		o.Dial = (&net.Dialer{}).DialContext
	}
	if o.Logger == nil {
		o.Logger = log.NewNoopLogger()
	}
	return o
}

// New creates the transport for the given kind and server address.
// TransportAuto resolves to UDP here; the orchestrator owns the retry
// over TCP when a truncated response comes back.
func New(kind domain.Transport, server string, opts Options) (Transport, error) {
	opts = opts.withDefaults()
	switch kind {
	case domain.TransportAuto, domain.TransportUDP:
		return newUDPTransport(server, opts)
	case domain.TransportTCP:
		return newTCPTransport(server, opts)
	case domain.TransportTLS:
		return newTLSTransport(server, opts)
	case domain.TransportHTTPS:
		return newHTTPSTransport(server, opts)
	default:
		return nil, fmt.Errorf("unsupported transport type: %s", kind)
	}
}
