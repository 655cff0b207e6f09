package main

import (
	"city-route-service/internal/app"
	"city-route-service/internal/config"
	"city-route-service/internal/console"
	"context"
	"log"
	"os"
)

// main runs one interactive trip simulation on stdin/stdout.
func main() {
	config.Load()
	cfg := config.FromEnv()

	// Keep log lines off stdout so prompts stay readable.
	log.SetOutput(os.Stderr)

	ctx := context.Background()
	a, err := app.New(ctx, cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer a.Close()

	session := console.Session{
		Locations: a.Locations,
		Provider:  a.Provider,
		Trips:     a.Trips,
	}
	if err := console.Run(ctx, os.Stdin, os.Stdout, session); err != nil {
		log.Fatal(err)
	}
}
