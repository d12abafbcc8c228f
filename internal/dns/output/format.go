// Package output renders collected ResponseViews for the user: an aligned
// and optionally coloured table, a JSON document, or the bare first-result
// short form. All structure lives in the views; this package only formats.
package output

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/haukened/dog/internal/dns/domain"
)

// Format renders a batch of response views. Print returns false when
// short mode had no results to show, which maps to exit code 2.
type Format interface {
	Print(views []domain.ResponseView) bool
}

// New picks the format for the plan's output options, writing to stdout
// and stderr.
func New(opts domain.OutputOptions) Format {
	return NewWithWriters(opts, os.Stdout, os.Stderr)
}

// NewWithWriters picks the format with explicit writers, for tests.
func NewWithWriters(opts domain.OutputOptions, out, errOut io.Writer) Format {
	switch {
	case opts.Short:
		return &ShortFormat{Out: out, ErrOut: errOut, Seconds: opts.Seconds}
	case opts.JSON:
		return &JSONFormat{Out: out, ErrOut: errOut, ShowDuration: opts.ShowDuration}
	default:
		return &TableFormat{
			Out:          out,
			ErrOut:       errOut,
			Colours:      paletteFor(opts.Colour, out),
			Seconds:      opts.Seconds,
			ShowDuration: opts.ShowDuration || opts.Verbose,
		}
	}
}

// formatTTL renders a TTL the way dig users expect: either raw seconds or
// a compact duration like 1h30m with every zero unit dropped.
func formatTTL(ttl uint32, rawSeconds bool) string {
	if rawSeconds {
		return fmt.Sprintf("%d", ttl)
	}
	return compactDuration(ttl)
}

func compactDuration(seconds uint32) string {
	if seconds == 0 {
		return "0s"
	}
	units := []struct {
		suffix string
		size   uint32
	}{
		{"d", 86400},
		{"h", 3600},
		{"m", 60},
		{"s", 1},
	}

	var out string
	remaining := seconds
	for _, u := range units {
		if v := remaining / u.size; v > 0 {
			out += fmt.Sprintf("%d%s", v, u.suffix)
			remaining %= u.size
		}
	}
	return out
}

// formatElapsed renders a measured query duration in milliseconds.
func formatElapsed(d time.Duration) string {
	return fmt.Sprintf("%dms", d.Milliseconds())
}

// errorLine renders one failed query for stderr.
func errorLine(v domain.ResponseView) string {
	return fmt.Sprintf("dog: %s (%s): %v", v.Question, v.Server, v.Err)
}
