// Package cli implements the fctp command: "solve" runs the genetic search
// on an instance and "generate" writes a random instance.
//
// For compatibility with existing wrappers, an invocation whose first
// argument is not a subcommand is treated as "solve", so the legacy form
//
//	fctp <supply> <demand> <unitCost> <fixedCost> <generations> <population> <mutationRate>
//
// keeps working and keeps printing one whitespace-separated result line.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/pflag"

	"github.com/katalvlaran/fctp/genetic"
	"github.com/katalvlaran/fctp/transport"
)

// Exit codes. Input and configuration failures are reported distinctly so
// wrapping scripts can tell them apart.
const (
	ExitOK            = 0
	ExitFailure       = 1
	ExitUsage         = 2
	ExitMalformed     = 3
	ExitInvalidConfig = 4
	ExitInvalidWeight = 5
)

var errUsage = errors.New("usage")

// Run executes the command described by args (without the program name)
// and returns the process exit code.
func Run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	var err error
	switch {
	case len(args) > 0 && args[0] == "generate":
		err = runGenerate(args[1:], stdout, stderr)
	case len(args) > 0 && args[0] == "solve":
		err = runSolve(ctx, args[1:], stdout, stderr)
	default:
		err = runSolve(ctx, args, stdout, stderr)
	}
	if err == nil || errors.Is(err, pflag.ErrHelp) {
		return ExitOK
	}

	fmt.Fprintf(stderr, "fctp: %v\n", err)

	return exitCode(err)
}

func exitCode(err error) int {
	switch {
	case errors.Is(err, errUsage):
		return ExitUsage
	case errors.Is(err, transport.ErrMalformedInput):
		return ExitMalformed
	case errors.Is(err, genetic.ErrInvalidConfiguration):
		return ExitInvalidConfig
	case errors.Is(err, genetic.ErrInvalidWeights):
		return ExitInvalidWeight
	default:
		return ExitFailure
	}
}

func parseError(err error) error {
	if errors.Is(err, pflag.ErrHelp) {
		return err
	}

	return usagef("%v", err)
}

func usagef(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{errUsage}, args...)...)
}
