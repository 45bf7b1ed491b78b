// SPDX-License-Identifier: MIT
// Package: masseyramanujan/cmd/polydomain

// Command polydomain enumerates convergence-screened coefficient candidates
// for polynomial continued fractions and streams them as JSON lines.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
