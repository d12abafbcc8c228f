package output

import (
	"fmt"
	"io"

	"github.com/haukened/dog/internal/dns/domain"
)

// ShortFormat prints only the first answer's rendered body per response.
// A batch that produces no answers at all prints nothing to stdout and
// reports failure, which the caller maps to exit code 2.
type ShortFormat struct {
	Out     io.Writer
	ErrOut  io.Writer
	Seconds bool
}

// Print renders the batch. The return value is false when no response
// carried an answer, regardless of its response code.
func (s *ShortFormat) Print(views []domain.ResponseView) bool {
	anyResults := false
	for _, v := range views {
		if v.Err != nil {
			fmt.Fprintln(s.ErrOut, errorLine(v))
			continue
		}
		if len(v.Answers) == 0 {
			continue
		}
		anyResults = true
		if body := v.Answers[0].Body; body != nil {
			fmt.Fprintln(s.Out, body.String())
		}
	}
	if !anyResults {
		fmt.Fprintln(s.ErrOut, "No results")
	}
	return anyResults
}
