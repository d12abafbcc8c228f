package rrdata

import (
	"strings"

	"github.com/haukened/dog/internal/dns/common/wire"
	"github.com/haukened/dog/internal/dns/domain"
)

// TXT is a text record body: a sequence of character-strings. The segments
// are raw bytes; non-UTF-8 content is preserved and only escaped for
// display.
type TXT struct {
	Strings [][]byte
}

// RRType returns the type code for TXT records.
func (TXT) RRType() domain.RRType { return domain.RRTypeTXT }

// String renders each segment quoted, space-separated.
func (t TXT) String() string {
	parts := make([]string, len(t.Strings))
	for i, s := range t.Strings {
		parts[i] = quoteText(s)
	}
	return strings.Join(parts, " ")
}

// decodeTXT reads character-strings until the record data is exhausted.
// An empty RDATA yields an empty segment list.
func decodeTXT(c *wire.Cursor) (TXT, error) {
	var t TXT
	for c.Remaining() > 0 {
		s, err := readCharacterString(c)
		if err != nil {
			return TXT{}, err
		}
		t.Strings = append(t.Strings, s)
	}
	return t, nil
}

func encodeTXT(w *wire.Writer, t TXT) error {
	for _, s := range t.Strings {
		if err := writeCharacterString(w, s); err != nil {
			return err
		}
	}
	return nil
}
