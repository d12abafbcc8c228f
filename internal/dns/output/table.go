package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/haukened/dog/internal/dns/domain"
)

// TableFormat renders each response as aligned rows of type, name, TTL,
// and record data, the default human-readable form.
type TableFormat struct {
	Out          io.Writer
	ErrOut       io.Writer
	Colours      Colours
	Seconds      bool
	ShowDuration bool
}

// row is one record line before alignment.
type row struct {
	section string
	rrtype  domain.RRType
	name    string
	ttl     string
	body    string
}

// Print renders every view. Failed queries go to the error writer; the
// batch is still considered printed.
func (t *TableFormat) Print(views []domain.ResponseView) bool {
	for i, v := range views {
		if i > 0 {
			fmt.Fprintln(t.Out)
		}
		t.printView(v)
	}
	return true
}

func (t *TableFormat) printView(v domain.ResponseView) {
	if v.Err != nil {
		fmt.Fprintln(t.ErrOut, errorLine(v))
		return
	}

	for _, warning := range v.Warnings {
		fmt.Fprintf(t.ErrOut, "dog: warning: %s\n", warning)
	}

	if v.RCode != domain.RCodeNoError {
		fmt.Fprintf(t.Out, "%s status for %s\n", v.RCode, v.Question)
	}

	var rows []row
	for _, rr := range v.Answers {
		rows = append(rows, t.buildRow("", rr))
	}
	for _, rr := range v.Authority {
		rows = append(rows, t.buildRow("authority", rr))
	}
	for _, rr := range v.Additional {
		rows = append(rows, t.buildRow("additional", rr))
	}
	t.renderRows(rows)

	if v.EDNS != nil {
		fmt.Fprintf(t.Out, "EDNS: version %d, udp payload %d, flags %#04x\n",
			v.EDNS.Version, v.EDNS.PayloadSize, v.EDNS.Flags)
	}

	if t.ShowDuration {
		fmt.Fprintf(t.Out, "Ran in %s against %s\n", formatElapsed(v.Duration), v.Server)
	}
}

func (t *TableFormat) buildRow(section string, rr domain.ResourceRecord) row {
	body := ""
	if rr.Body != nil {
		body = rr.Body.String()
	}
	return row{
		section: section,
		rrtype:  rr.Type,
		name:    rr.Name.String(),
		ttl:     formatTTL(rr.TTL, t.Seconds),
		body:    body,
	}
}

// renderRows right-aligns the type column, left-aligns the name column,
// and right-aligns the TTL column, then appends the section tag and body.
func (t *TableFormat) renderRows(rows []row) {
	var typeLen, nameLen, ttlLen int
	for _, r := range rows {
		typeLen = max(typeLen, len(r.rrtype.String()))
		nameLen = max(nameLen, len(r.name))
		ttlLen = max(ttlLen, len(r.ttl))
	}

	for _, r := range rows {
		typeName := r.rrtype.String()
		styled := t.Colours.styleForType(r.rrtype).Sprint(typeName)

		fmt.Fprint(t.Out, strings.Repeat(" ", typeLen-len(typeName)))
		fmt.Fprintf(t.Out, "%s %s ", styled, t.Colours.QName.Sprint(r.name))
		fmt.Fprint(t.Out, strings.Repeat(" ", nameLen-len(r.name)))
		fmt.Fprint(t.Out, strings.Repeat(" ", ttlLen-len(r.ttl)))
		fmt.Fprint(t.Out, r.ttl)

		if r.section != "" {
			fmt.Fprintf(t.Out, " [%s]", r.section)
		}
		fmt.Fprintf(t.Out, " %s\n", r.body)
	}
}
