// Package main submits a consultation request to a landing service.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	contactcmd "github.com/trueluxconstruction/landing/internal/cmd/contact"
	"github.com/trueluxconstruction/landing/internal/platform/config"
)

func main() {
	cfg, err := contactcmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exit(2, "parse flags: %v", err)
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := contactcmd.Run(ctx, cfg); err != nil {
		stop()
		config.Exit(contactcmd.ExitCode(err), "contact: %v", err)
	}
}
