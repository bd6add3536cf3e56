// Command server runs the alumni HTTP API until it receives SIGINT or SIGTERM.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/y0ngdev/the-bridge/internal/app"
	"github.com/y0ngdev/the-bridge/internal/config"
)

func main() {
	flag.Usage = config.Usage(os.Stderr, flag.CommandLine)
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx); err != nil {
		log.Fatal(err)
	}
}
