// Command worker consumes deficiency change events from Redis, writes the
// audit trail and fans out notifications. It also serves /metrics and
// /healthz on the server address.
//
// Exit codes: 0 = clean shutdown, 1 = error.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/heartmarshall/homecheck-backend/internal/app"
)

func main() {
	configPath := flag.String("config", "", "path to the YAML config (default $HOMECHECK_CONFIG or ./homecheck.yaml)")
	migrate := flag.Bool("migrate", false, "apply pending migrations before starting")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx, app.Options{ConfigPath: *configPath, Migrate: *migrate}); err != nil {
		log.Printf("worker: %v", err)
		stop()
		os.Exit(1)
	}
}
