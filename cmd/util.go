package cmd

import (
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/sahib/termpasshash/derive"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli"
)

// ExitCode is an error that maps the error interface to a specific error
// message and a unix exit code
type ExitCode struct {
	Code    int
	Message string
}

func (err ExitCode) Error() string {
	return err.Message
}

// exitCodeFromError translates the result of a command into the exit code
// of the process.
func exitCodeFromError(err error) int {
	if err == nil {
		return Success
	}

	var exitErr ExitCode
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	switch {
	case errors.Is(err, derive.ErrMismatch):
		return Mismatch
	case errors.Is(err, derive.ErrInvalidParams):
		return BadArgs
	case errors.Is(err, derive.ErrKDF), errors.Is(err, derive.ErrEncoding):
		return DerivationFailed
	default:
		return UnknownError
	}
}

func errorMessage(err error) string {
	if errors.Is(err, derive.ErrMismatch) {
		return "Results did not match!"
	}

	return err.Error()
}

func yesify(val bool) string {
	if val {
		return color.GreenString("yes")
	}

	return color.RedString("no")
}

type checkFunc func(ctx *cli.Context) int

func withArgCheck(checker checkFunc, handler cli.ActionFunc) cli.ActionFunc {
	return func(ctx *cli.Context) error {
		if code := checker(ctx); code != Success {
			return ExitCode{code, "bad arguments"}
		}

		return handler(ctx)
	}
}

func needAtLeast(min int) checkFunc {
	return func(ctx *cli.Context) int {
		if ctx.NArg() < min {
			if min == 1 {
				log.Warningf("Need at least %d argument.", min)
			} else {
				log.Warningf("Need at least %d arguments.", min)
			}

			if err := cli.ShowCommandHelp(ctx, ctx.Command.Name); err != nil {
				log.Warningf("Failed to display --help: %v", err)
			}

			return BadArgs
		}

		return Success
	}
}

func printError(err error) {
	fmt.Fprintln(color.Error, color.New(color.FgRed, color.Bold).Sprint(errorMessage(err)))
}
