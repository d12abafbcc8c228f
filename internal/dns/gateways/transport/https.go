package transport

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/url"

	"golang.org/x/net/http2"

	"github.com/haukened/dog/internal/dns/common/wire"
)

// dnsMessageMediaType is the DoH media type from RFC 8484.
const dnsMessageMediaType = "application/dns-message"

// httpsTransport POSTs one DNS message to a DoH endpoint, per RFC 8484.
// The server must be a full URL: no default path is guessed, and host
// resolution is left to the operating system.
type httpsTransport struct {
	url    *url.URL
	client *http.Client
	opts   Options
}

func newHTTPSTransport(server string, opts Options) (*httpsTransport, error) {
	u, err := url.Parse(server)
	if err != nil || u.Scheme == "" || u.Host == "" || u.Path == "" {
		return nil, ErrURLRequired
	}

	client := opts.HTTPClient
	if client == nil {
		// DoH servers speak HTTP/2; set it up explicitly rather than
		// relying on ALPN fallback.
		client = &http.Client{
			Timeout:   opts.Timeout,
			Transport: &http2.Transport{},
		}
	}
	return &httpsTransport{url: u, client: client, opts: opts}, nil
}

func (t *httpsTransport) Exchange(ctx context.Context, request []byte) (Reply, error) {
	ctx, cancel := context.WithTimeout(ctx, t.opts.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.url.String(), bytes.NewReader(request))
	if err != nil {
		return Reply{}, wrapErr(OpSend, t.url.String(), err)
	}
	req.Header.Set("Content-Type", dnsMessageMediaType)
	req.Header.Set("Accept", dnsMessageMediaType)

	resp, err := t.client.Do(req)
	if err != nil {
		return Reply{}, wrapErr(OpSend, t.url.String(), err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Reply{}, &HTTPStatusError{Code: resp.StatusCode, Status: resp.Status}
	}

	payload, err := io.ReadAll(io.LimitReader(resp.Body, wire.MaxMessageSize+1))
	if err != nil {
		return Reply{}, wrapErr(OpReceive, t.url.String(), err)
	}

	t.opts.Logger.Debug(map[string]any{
		"url":    t.url.String(),
		"status": resp.Status,
		"size":   len(payload),
	}, "Received DNS-over-HTTPS response")

	return Reply{Payload: payload, Server: t.url.String()}, nil
}

var _ Transport = (*httpsTransport)(nil)
