// dog is a command-line DNS client: it sends the queries described on the
// command line over UDP, TCP, TLS, or HTTPS and renders the responses.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/haukened/dog/internal/dns/cli"
	"github.com/haukened/dog/internal/dns/common/log"
	"github.com/haukened/dog/internal/dns/domain"
	"github.com/haukened/dog/internal/dns/gateways/codec"
	"github.com/haukened/dog/internal/dns/infra/config"
	"github.com/haukened/dog/internal/dns/output"
	"github.com/haukened/dog/internal/dns/services/query"
)

const (
	version = "0.2.0"
	appName = "dog"
)

// Process exit codes.
const (
	exitSuccess      = 0
	exitNetworkError = 1
	exitNoShortReply = 2
	exitOptionsError = 3
)

func main() {
	os.Exit(run(os.Args[1:]))
}

// run parses the arguments, executes the plan, renders the result, and
// returns the status to exit with.
func run(args []string) int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: configuration error: %v\n", appName, err)
		return exitOptionsError
	}
	log.Configure(cfg.Debug)

	result, err := cli.Parse(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: invalid options: %v\n", appName, err)
		return exitOptionsError
	}

	switch result.Action {
	case cli.ActionHelp:
		fmt.Print(cli.Usage)
		return exitSuccess
	case cli.ActionVersion:
		fmt.Printf("%s %s\n", appName, version)
		return exitSuccess
	case cli.ActionList:
		printTypeList()
		return exitSuccess
	}

	log.Debug(map[string]any{
		"queries":   result.Plan.QueryCount(),
		"transport": string(result.Plan.Transport),
		"edns":      string(result.Plan.EDNS),
	}, "Running query plan")

	orchestrator, err := query.New(query.Options{
		Codec:  codec.New(log.GetLogger()),
		Logger: log.GetLogger(),
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", appName, err)
		return exitNetworkError
	}

	views, err := orchestrator.Run(context.Background(), result.Plan)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", appName, err)
		return exitOptionsError
	}

	printed := output.New(result.Plan.Output).Print(views)

	switch {
	case query.HadErrors(views):
		return exitNetworkError
	case !printed:
		return exitNoShortReply
	default:
		return exitSuccess
	}
}

// printTypeList prints the record type registry, one row per type.
func printTypeList() {
	fmt.Printf("%-12s %-40s %s\n", "Type", "Description", "Example")
	for _, info := range domain.AllTypes() {
		fmt.Printf("%-12s %-40s %s\n", info.Name, info.Description, info.Example)
	}
}
