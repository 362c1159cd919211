package main

import (
	"context"
	"log"
	"os"

	"github.com/growthverse/site/internal/site/app"
	"github.com/growthverse/site/internal/site/cli"
)

func main() {
	cfg, err := app.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	ctx := context.Background()
	application, err := app.New(ctx, cfg)
	if err != nil {
		log.Fatalf("failed to initialize application: %v", err)
	}
	defer func() { _ = application.Close() }()

	cli.Run(ctx, application.Hooks(), os.Stdin, os.Stdout)
}
