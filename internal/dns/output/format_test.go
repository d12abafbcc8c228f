package output

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/haukened/dog/internal/dns/common/rrdata"
	"github.com/haukened/dog/internal/dns/common/wire"
	"github.com/haukened/dog/internal/dns/domain"
)

func view(t *testing.T) domain.ResponseView {
	t.Helper()
	name, err := wire.ParseName("example.net")
	require.NoError(t, err)

	return domain.ResponseView{
		Question: domain.Question{Name: name, Type: domain.RRTypeA, Class: domain.RRClassIN},
		Server:   "192.0.2.53:53",
		RCode:    domain.RCodeNoError,
		Duration: 12 * time.Millisecond,
		Answers: []domain.ResourceRecord{
			{Name: name, Type: domain.RRTypeA, Class: domain.RRClassIN, TTL: 5400,
				Body: rrdata.A{Addr: []byte{192, 0, 2, 1}}},
			{Name: name, Type: domain.RRTypeTXT, Class: domain.RRClassIN, TTL: 60,
				Body: rrdata.TXT{Strings: [][]byte{[]byte("hello")}}},
		},
	}
}

func TestFormatTTL(t *testing.T) {
	tests := []struct {
		ttl     uint32
		seconds bool
		want    string
	}{
		{5400, false, "1h30m"},
		{5400, true, "5400"},
		{0, false, "0s"},
		{90061, false, "1d1h1m1s"},
		{45, false, "45s"},
		{3600, false, "1h"},
	}

	for _, tt := range tests {
		if got := formatTTL(tt.ttl, tt.seconds); got != tt.want {
			t.Errorf("formatTTL(%d, %v) = %q, want %q", tt.ttl, tt.seconds, got, tt.want)
		}
	}
}

func TestTableFormat(t *testing.T) {
	var out, errOut bytes.Buffer
	f := NewWithWriters(domain.OutputOptions{Colour: domain.ColourNever}, &out, &errOut)

	ok := f.Print([]domain.ResponseView{view(t)})
	assert.True(t, ok)

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "A example.net.")
	assert.Contains(t, lines[0], "1h30m")
	assert.Contains(t, lines[0], "192.0.2.1")
	assert.Contains(t, lines[1], `"hello"`)
	assert.Empty(t, errOut.String())
}

func TestTableFormatSectionsAndWarnings(t *testing.T) {
	v := view(t)
	v.Warnings = []string{"response truncated, retried over TCP"}
	v.Authority = []domain.ResourceRecord{{
		Name: v.Question.Name, Type: domain.RRTypeNS, Class: domain.RRClassIN, TTL: 300,
		Body: rrdata.NS{Nameserver: v.Question.Name},
	}}

	var out, errOut bytes.Buffer
	f := NewWithWriters(domain.OutputOptions{Colour: domain.ColourNever}, &out, &errOut)
	f.Print([]domain.ResponseView{v})

	assert.Contains(t, out.String(), "[authority]")
	assert.Contains(t, errOut.String(), "retried over TCP")
}

func TestTableFormatRCode(t *testing.T) {
	v := view(t)
	v.RCode = domain.RCodeNXDomain
	v.Answers = nil

	var out, errOut bytes.Buffer
	f := NewWithWriters(domain.OutputOptions{Colour: domain.ColourNever}, &out, &errOut)
	f.Print([]domain.ResponseView{v})

	assert.Contains(t, out.String(), "NXDOMAIN status for example.net. IN A")
}

func TestTableFormatErrorRow(t *testing.T) {
	v := view(t)
	v.Err = errors.New("connection refused")
	v.Answers = nil

	var out, errOut bytes.Buffer
	f := NewWithWriters(domain.OutputOptions{Colour: domain.ColourNever}, &out, &errOut)
	ok := f.Print([]domain.ResponseView{v})

	assert.True(t, ok, "table mode always counts as printed")
	assert.Empty(t, out.String())
	assert.Contains(t, errOut.String(), "connection refused")
}

func TestShortFormat(t *testing.T) {
	var out, errOut bytes.Buffer
	f := NewWithWriters(domain.OutputOptions{Short: true}, &out, &errOut)

	ok := f.Print([]domain.ResponseView{view(t)})
	assert.True(t, ok)
	assert.Equal(t, "192.0.2.1\n", out.String(), "only the first record's body")
}

func TestShortFormatNoResults(t *testing.T) {
	v := view(t)
	v.Answers = nil
	v.RCode = domain.RCodeNXDomain

	var out, errOut bytes.Buffer
	f := NewWithWriters(domain.OutputOptions{Short: true}, &out, &errOut)

	ok := f.Print([]domain.ResponseView{v})
	assert.False(t, ok, "no answers maps to exit 2")
	assert.Empty(t, out.String(), "stdout stays empty")
	assert.Contains(t, errOut.String(), "No results")
}

func TestJSONFormat(t *testing.T) {
	var out, errOut bytes.Buffer
	f := NewWithWriters(domain.OutputOptions{JSON: true, ShowDuration: true}, &out, &errOut)

	ok := f.Print([]domain.ResponseView{view(t)})
	assert.True(t, ok)

	var doc struct {
		Responses []struct {
			Query struct {
				Name  string `json:"name"`
				Type  string `json:"type"`
				Class string `json:"class"`
			} `json:"query"`
			Status     string `json:"status"`
			DurationMS int64  `json:"duration_ms"`
			Answers    []struct {
				Type string `json:"type"`
				TTL  uint32 `json:"ttl"`
				Data string `json:"data"`
			} `json:"answers"`
		} `json:"responses"`
	}
	require.NoError(t, json.Unmarshal(out.Bytes(), &doc))
	require.Len(t, doc.Responses, 1)

	r := doc.Responses[0]
	assert.Equal(t, "example.net.", r.Query.Name)
	assert.Equal(t, "A", r.Query.Type)
	assert.Equal(t, "IN", r.Query.Class)
	assert.Equal(t, "NOERROR", r.Status)
	assert.Equal(t, int64(12), r.DurationMS)
	require.Len(t, r.Answers, 2)
	assert.Equal(t, "192.0.2.1", r.Answers[0].Data)
	assert.Equal(t, uint32(5400), r.Answers[0].TTL)
}

func TestJSONFormatErrorRow(t *testing.T) {
	v := view(t)
	v.Err = errors.New("timeout")

	var out, errOut bytes.Buffer
	f := NewWithWriters(domain.OutputOptions{JSON: true}, &out, &errOut)
	f.Print([]domain.ResponseView{v})

	var doc struct {
		Responses []struct {
			Error string `json:"error"`
		} `json:"responses"`
	}
	require.NoError(t, json.Unmarshal(out.Bytes(), &doc))
	require.Len(t, doc.Responses, 1)
	assert.Equal(t, "timeout", doc.Responses[0].Error)
}
