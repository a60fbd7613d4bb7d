package main

import (
	"context"
	"log"

	"mostar/internal/app/bootstrap"
)

// API process entrypoint.
// Data flow:
// 1) Load config.
// 2) Connect and migrate storage (or fall back to memory mode).
// 3) Serve the REST API and the live event stream.
func main() {
	log.Println("mostar api starting")
	app, err := bootstrap.BuildAPI()
	if err != nil {
		log.Fatalf("bootstrap api failed: %v", err)
	}
	defer func() {
		if err := app.Close(); err != nil {
			log.Printf("api shutdown close failed: %v", err)
		}
	}()

	if err := app.Run(context.Background()); err != nil {
		log.Fatalf("mostar api stopped with error: %v", err)
	}
}
