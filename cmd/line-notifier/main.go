package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCommand().ExecuteContext(ctx); err != nil {
		code := exitCodeFailure
		if !errors.Is(err, context.Canceled) {
			code = reportError(os.Stderr, err)
		}
		stop()
		os.Exit(code)
	}
}
