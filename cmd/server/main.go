package main

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/GriffinCanCode/MathForDevs/backend/internal/infrastructure/config"
	"github.com/GriffinCanCode/MathForDevs/backend/internal/infrastructure/server"
)

func main() {
	// Parse flags; they override the environment
	port := flag.String("port", "", "Server port (overrides PORT)")
	content := flag.String("content", "", "Topic catalog file (overrides CONTENT_PATH)")
	dev := flag.Bool("dev", false, "Development logging (overrides LOG_DEV)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *port != "" {
		cfg.Server.Port = *port
	}
	if *content != "" {
		cfg.Content.Path = *content
	}
	if *dev {
		cfg.Logging.Development = true
	}

	srv, err := server.NewServer(cfg)
	if err != nil {
		log.Fatalf("Failed to create server: %v", err)
	}

	// Handle graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	// Start server in goroutine
	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.Run()
	}()

	// Wait for shutdown signal or error
	select {
	case <-sigChan:
		log.Println("Shutting down gracefully...")
		if err := srv.Close(); err != nil {
			log.Printf("Error during shutdown: %v", err)
		}
	case err := <-errChan:
		srv.Close()
		if err != nil {
			log.Fatalf("Server error: %v", err)
		}
	}
}
