package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/valyala/fasthttp"

	"roadmap-engine/internal/config"
	"roadmap-engine/internal/handler"
	"roadmap-engine/internal/scenario"
)

func main() {
	godotenv.Load()

	path := os.Getenv("CONFIG_FILE")
	if path == "" {
		path = "config.yaml"
	}
	cfg, err := config.Load(path)
	if err != nil {
		log.Fatalf("Config failed: %v", err)
	}

	h := &handler.Handler{
		Scenarios: scenario.New(cfg.Scenarios.Path),
		FromEmail: cfg.Notify.FromEmail,
	}

	log.Printf("Roadmap engine starting on port %s", cfg.Server.Port)
	if err := fasthttp.ListenAndServe(":"+cfg.Server.Port, h.Route); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
