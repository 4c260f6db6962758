package main

import (
	"log"

	"github.com/joho/godotenv"

	"github.com/student-sumit04/AI-powered-meeting-notes-summarizer-and-sharer/internal/config"
	httpserver "github.com/student-sumit04/AI-powered-meeting-notes-summarizer-and-sharer/internal/http"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	srv, err := httpserver.NewServer(cfg)
	if err != nil {
		log.Fatalf("failed to create server: %v", err)
	}

	log.Printf("server running on port %s (env=%s)", cfg.Port, cfg.Env)
	if err := srv.Run(); err != nil {
		log.Fatalf("server stopped with error: %v", err)
	}
}
