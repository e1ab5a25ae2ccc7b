package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"acronymcreator/internal/render"
)

const version = "0.1.0"

// ErrEmptyResult means the phrase had no word left after filtering.
var ErrEmptyResult = errors.New("no acronym could be generated")

// emptyResultMessage is what users see for ErrEmptyResult.
const emptyResultMessage = "No acronym could be generated from the given phrase."

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	// Normalize cancellation exit code.
	if ctx.Err() != nil && code == 0 {
		code = 130
	}
	stop()
	os.Exit(code)
}

// run executes the command tree and maps errors to an exit status.
func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetIn(stdin)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.ExecuteContext(ctx)
	switch {
	case err == nil:
		return 0
	case render.IsBrokenPipe(err):
		return 0
	case errors.Is(err, ErrEmptyResult):
		fmt.Fprintln(stderr, emptyResultMessage)
		return 1
	default:
		fmt.Fprintln(stderr, "Error:", err)
		return 1
	}
}
