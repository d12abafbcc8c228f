package domain

import (
	"fmt"

	"github.com/haukened/dog/internal/dns/common/wire"
)

// Question represents a DNS question: the name, type, and class being
// asked about.
type Question struct {
	Name  wire.Name
	Type  RRType
	Class RRClass
}

// NewQuestion constructs a Question from a presentation-form name and
// validates its fields.
func NewQuestion(name string, rrtype RRType, class RRClass) (Question, error) {
	n, err := wire.ParseName(name)
	if err != nil {
		return Question{}, fmt.Errorf("invalid question name: %w", err)
	}
	return Question{Name: n, Type: rrtype, Class: class}, nil
}

// String renders the question the way dig does: name, class, type.
func (q Question) String() string {
	return fmt.Sprintf("%s %s %s", q.Name, q.Class, q.Type)
}
