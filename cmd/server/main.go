// Command server runs the kenchi API: the GraphQL endpoint, session login,
// and health probes.
//
// Configuration comes from CONFIG_PATH (YAML) or environment variables; see
// internal/config.
package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/michaelschade/kenchi-sub000/internal/app"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx); err != nil {
		log.Fatalf("server: %v", err)
	}
}
