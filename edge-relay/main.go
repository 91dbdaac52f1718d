package main

import (
	"log"
	"net/http"
	"time"

	"food-admin/config"
	"food-admin/edge-relay/internal/relay"
)

func main() {
	cfg := config.LoadRelay()

	rl := relay.NewRelay(relay.Config{TargetURL: cfg.TargetURL}, &http.Client{Timeout: 60 * time.Second})

	log.Printf("Edge relay starting on %s -> %s", cfg.Addr, cfg.TargetURL)
	log.Fatal(http.ListenAndServe(cfg.Addr, rl.SetupRoutes()))
}
