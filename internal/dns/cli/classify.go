package cli

import (
	"fmt"
	"net"
	"strings"

	"github.com/haukened/dog/internal/dns/common/utils"
	"github.com/haukened/dog/internal/dns/domain"
)

// argKind is what a bare command-line argument turned out to be.
type argKind int

const (
	argNameserver argKind = iota
	argType
	argClass
	argDomain
)

// classified is the result of classifying one bare argument.
type classified struct {
	kind   argKind
	value  string         // nameserver address or domain name
	rrtype domain.RRType  // for argType
	class  domain.RRClass // for argClass
	// extraType is set when an IP argument expands to a reverse-lookup
	// domain that also implies a PTR query.
	extraType *domain.RRType
}

// classify sorts a bare argument into nameserver, record type, class, or
// domain. Rules run top to bottom, first match wins:
//
//  1. a leading @ marks a nameserver;
//  2. an exact (case-insensitive) match against the record type table is
//     a type;
//  3. an exact match against the class table is a class;
//  4. an IP address becomes its reverse-lookup domain plus a PTR type;
//  5. anything shaped like a type constant that failed the table lookups
//     is an unknown type, not a domain;
//  6. everything else is a domain.
func classify(arg string) (classified, error) {
	if server, ok := strings.CutPrefix(arg, "@"); ok {
		return classified{kind: argNameserver, value: server}, nil
	}
	if t, ok := domain.RRTypeFromString(arg); ok {
		return classified{kind: argType, rrtype: t}, nil
	}
	if c, ok := domain.RRClassFromString(arg); ok {
		return classified{kind: argClass, class: c}, nil
	}
	if ip := net.ParseIP(arg); ip != nil {
		ptr := domain.RRTypePTR
		return classified{kind: argDomain, value: utils.ReverseLookupDomain(ip), extraType: &ptr}, nil
	}
	if isConstantName(arg) {
		return classified{}, fmt.Errorf("unknown record type %q", arg)
	}
	return classified{kind: argDomain, value: arg}, nil
}

// isConstantName reports whether an argument is shaped like a record type
// constant: uppercase ASCII letters and digits, starting with a letter.
// Lowercase single labels stay classifiable as domains.
func isConstantName(arg string) bool {
	if arg == "" {
		return false
	}
	if arg[0] < 'A' || arg[0] > 'Z' {
		return false
	}
	for i := 0; i < len(arg); i++ {
		b := arg[i]
		if (b < 'A' || b > 'Z') && (b < '0' || b > '9') {
			return false
		}
	}
	return true
}

