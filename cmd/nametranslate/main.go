// Package main translates the names of a JSON record array with a CSV table
// and reports coverage and duplicate names.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	nametranslatecmd "github.com/er336250/fish-test/internal/cmd/nametranslate"
	"github.com/er336250/fish-test/internal/platform/config"
)

func main() {
	cfg, err := nametranslatecmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("parse flags: %v", err)
	}
	log.SetPrefix("[NAMETRANSLATE] ")
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := nametranslatecmd.Run(ctx, cfg, os.Stdout); err != nil {
		config.ExitError(err)
	}
}
