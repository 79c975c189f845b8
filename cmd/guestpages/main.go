// Package main generates per-guest QR codes and landing pages from a guest
// roster, plus the public-link result table used for bulk messaging.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	guestpagescmd "github.com/eventtools/guestpages/internal/cmd/guestpages"
	"github.com/eventtools/guestpages/internal/platform/config"
)

func main() {
	cfg, err := guestpagescmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("Error: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := guestpagescmd.Run(ctx, cfg, os.Stdout); err != nil {
		config.Exitf("Error: %v", err)
	}
}
