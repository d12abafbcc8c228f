// Package cli parses the command line into a QueryPlan. Bare arguments
// are classified by shape (nameserver, type, class, or domain); explicit
// flags bypass the classifier and append unconditionally.
package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/pflag"

	"github.com/haukened/dog/internal/dns/domain"
)

// Action is what the process should do after parsing.
type Action int

// Parse outcomes.
const (
	ActionRun Action = iota
	ActionHelp
	ActionVersion
	ActionList
)

// Result carries the parse outcome: the action to take and, for
// ActionRun, the complete query plan.
type Result struct {
	Action Action
	Plan   domain.QueryPlan
}

// Parse interprets the command-line arguments (without the program name).
// Every returned error is an options error and maps to exit code 3.
func Parse(args []string) (Result, error) {
	fs := pflag.NewFlagSet("dog", pflag.ContinueOnError)
	fs.SortFlags = false
	fs.Usage = func() {} // usage printing is the caller's decision

	// Query options
	queries := fs.StringArrayP("query", "q", nil, "Host name or domain name to query")
	types := fs.StringArrayP("type", "t", nil, "Type of the DNS record being queried (A, MX, NS...)")
	nameservers := fs.StringArrayP("nameserver", "n", nil, "Address of the nameserver to send packets to")
	classes := fs.StringArray("class", nil, "Network class of the DNS record being queried (IN, CH, HS)")

	// Sending options
	edns := fs.String("edns", "hide", "Whether to OPT in to EDNS (disable, hide, show)")
	txid := fs.String("txid", "", "Set the transaction ID of every query to a specific value")
	tweaks := fs.StringArrayP("tweaks", "Z", nil, "Set uncommon protocol tweaks")

	// Protocol options
	useUDP := fs.BoolP("udp", "U", false, "Use the DNS protocol over UDP")
	useTCP := fs.BoolP("tcp", "T", false, "Use the DNS protocol over TCP")
	useTLS := fs.BoolP("tls", "S", false, "Use the DNS-over-TLS protocol")
	useHTTPS := fs.BoolP("https", "H", false, "Use the DNS-over-HTTPS protocol")

	// Output options
	color := fs.String("color", "", "When to use terminal colors (always, automatic, never)")
	colour := fs.String("colour", "", "When to use terminal colours (always, automatic, never)")
	jsonOut := fs.BoolP("json", "J", false, "Display the output as JSON")
	seconds := fs.Bool("seconds", false, "Do not format durations, display them as seconds")
	short := fs.BoolP("short", "1", false, "Short mode: display nothing but the first result")
	showTime := fs.Bool("time", false, "Print how long the response took to arrive")

	// Meta options
	version := fs.BoolP("version", "V", false, "Print version information")
	help := fs.BoolP("help", "?", false, "Print list of command-line options")
	list := fs.BoolP("list", "l", false, "List the supported DNS record types")
	verbose := fs.BoolP("verbose", "v", false, "Print further details about the queries")

	if err := fs.Parse(args); err != nil {
		return Result{}, err
	}

	switch {
	case *help:
		return Result{Action: ActionHelp}, nil
	case *version:
		return Result{Action: ActionVersion}, nil
	case *list:
		return Result{Action: ActionList}, nil
	}

	plan := domain.NewQueryPlan()
	plan.Types = nil
	plan.Classes = nil

	// Named flags append unconditionally.
	plan.Domains = append(plan.Domains, *queries...)
	plan.Nameservers = append(plan.Nameservers, *nameservers...)
	for _, name := range *types {
		t, ok := domain.RRTypeFromString(name)
		if !ok {
			return Result{}, fmt.Errorf("invalid query type %q", name)
		}
		plan.Types = append(plan.Types, t)
	}
	for _, name := range *classes {
		c, ok := domain.RRClassFromString(name)
		if !ok {
			return Result{}, fmt.Errorf("invalid query class %q", name)
		}
		plan.Classes = append(plan.Classes, c)
	}

	// Bare arguments go through the classifier.
	for _, arg := range fs.Args() {
		cl, err := classify(arg)
		if err != nil {
			return Result{}, err
		}
		switch cl.kind {
		case argNameserver:
			plan.Nameservers = append(plan.Nameservers, cl.value)
		case argType:
			plan.Types = append(plan.Types, cl.rrtype)
		case argClass:
			plan.Classes = append(plan.Classes, cl.class)
		case argDomain:
			plan.Domains = append(plan.Domains, cl.value)
			if cl.extraType != nil {
				plan.Types = append(plan.Types, *cl.extraType)
			}
		}
	}

	if len(plan.Domains) == 0 {
		return Result{}, fmt.Errorf("no domain name provided")
	}

	// Fallbacks once everything has been collected.
	if len(plan.Types) == 0 {
		plan.Types = []domain.RRType{domain.RRTypeA}
	}
	if len(plan.Classes) == 0 {
		plan.Classes = []domain.RRClass{domain.RRClassIN}
	}

	if err := applyTransport(&plan, *useUDP, *useTCP, *useTLS, *useHTTPS); err != nil {
		return Result{}, err
	}

	switch domain.EDNSMode(*edns) {
	case domain.EDNSDisable, domain.EDNSHide, domain.EDNSShow:
		plan.EDNS = domain.EDNSMode(*edns)
	default:
		return Result{}, fmt.Errorf("invalid EDNS setting %q", *edns)
	}

	if *txid != "" {
		id, err := parseTxID(*txid)
		if err != nil {
			return Result{}, err
		}
		plan.TxID = &id
	}

	for _, tweak := range *tweaks {
		if err := applyTweak(&plan.Tweaks, tweak); err != nil {
			return Result{}, err
		}
	}

	plan.Output = domain.OutputOptions{
		JSON:         *jsonOut,
		Short:        *short,
		Seconds:      *seconds,
		ShowDuration: *showTime,
		Verbose:      *verbose,
		Colour:       colourMode(*color, *colour),
	}

	if err := plan.Validate(); err != nil {
		return Result{}, err
	}
	return Result{Action: ActionRun, Plan: plan}, nil
}

// applyTransport enforces that at most one transport is selected.
func applyTransport(plan *domain.QueryPlan, udp, tcp, tls, https bool) error {
	selected := 0
	for _, on := range []bool{udp, tcp, tls, https} {
		if on {
			selected++
		}
	}
	if selected > 1 {
		return fmt.Errorf("only one transport type can be used at a time")
	}
	switch {
	case udp:
		plan.Transport = domain.TransportUDP
	case tcp:
		plan.Transport = domain.TransportTCP
	case tls:
		plan.Transport = domain.TransportTLS
	case https:
		plan.Transport = domain.TransportHTTPS
	}
	return nil
}

// parseTxID reads a transaction id as hex, with or without a 0x prefix.
func parseTxID(s string) (uint16, error) {
	id, err := strconv.ParseUint(strings.TrimPrefix(strings.ToLower(s), "0x"), 16, 16)
	if err != nil {
		return 0, fmt.Errorf("invalid transaction ID %q", s)
	}
	return uint16(id), nil
}

// applyTweak interprets one -Z value. Multiple tweaks may share one flag
// instance separated by commas.
func applyTweak(tweaks *domain.Tweaks, value string) error {
	for _, part := range strings.Split(value, ",") {
		part = strings.TrimSpace(part)
		switch {
		case part == "aa":
			tweaks.AuthoritativeAnswer = true
		case part == "ad":
			tweaks.AuthenticData = true
		case part == "cd":
			tweaks.CheckingDisabled = true
		case strings.HasPrefix(part, "bufsize="):
			size, err := strconv.ParseUint(strings.TrimPrefix(part, "bufsize="), 10, 16)
			if err != nil {
				return fmt.Errorf("invalid buffer size %q", part)
			}
			tweaks.BufferSize = uint16(size)
		default:
			return fmt.Errorf("unknown protocol tweak %q", part)
		}
	}
	return nil
}

// colourMode folds the two flag spellings into one mode, accepting the
// usual synonyms.
func colourMode(color, colour string) domain.ColourMode {
	value := color
	if value == "" {
		value = colour
	}
	switch value {
	case "always", "yes":
		return domain.ColourAlways
	case "never", "no":
		return domain.ColourNever
	default:
		return domain.ColourAutomatic
	}
}
