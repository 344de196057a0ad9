// Package main runs batches of campus simulations or a Lua scenario.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	simulatecmd "github.com/rhyrak/campus-sim/internal/cmd/simulate"
	"github.com/rhyrak/campus-sim/internal/platform/config"
)

func main() {
	cfg, err := simulatecmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("parse flags: %v", err)
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := simulatecmd.Run(ctx, cfg, os.Stdout, os.Stderr); err != nil {
		stop()
		config.Exitf("simulate: %v", err)
	}
}
