// Package main starts the landing page web service.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	webcmd "github.com/trueluxconstruction/landing/internal/cmd/web"
	"github.com/trueluxconstruction/landing/internal/platform/config"
)

func main() {
	cfg, err := webcmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exit(2, "parse flags: %v", err)
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := webcmd.Run(ctx, cfg); err != nil {
		stop()
		config.Exit(1, "failed to serve: %v", err)
	}
}
