// Package main starts the terminal gallery preview.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	gallerycmd "github.com/trueluxconstruction/landing/internal/cmd/gallery"
	"github.com/trueluxconstruction/landing/internal/platform/config"
)

func main() {
	cfg, err := gallerycmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exit(2, "parse flags: %v", err)
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := gallerycmd.Run(ctx, cfg); err != nil {
		stop()
		config.Exit(1, "gallery preview: %v", err)
	}
}
