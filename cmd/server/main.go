package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/newsbrief/newsbrief/internal/application"
	"github.com/newsbrief/newsbrief/internal/transport/middleware"
	"github.com/newsbrief/newsbrief/internal/transport/server"
)

var (
	Version   string = "dev"
	Commit    string = "unknown"
	BuildTime string = "unknown"
)

func main() {
	var (
		showHelp    = flag.Bool("help", false, "Show help message")
		showVersion = flag.Bool("version", false, "Show version information")
	)
	flag.Parse()

	if *showHelp {
		fmt.Printf("News Summarizer Server\n\n")
		fmt.Printf("Usage: %s [options]\n\n", os.Args[0])
		fmt.Printf("Options:\n")
		flag.PrintDefaults()
		fmt.Printf("\nEnvironment Variables:\n")
		fmt.Printf("  OPENAI_API_KEY         OpenAI API key\n")
		fmt.Printf("  OPENAI_MODEL           Model name (default: gpt-4o-mini)\n")
		fmt.Printf("  PORT                   Server port (default: 8080)\n")
		fmt.Printf("  HOST                   Server host (default: 0.0.0.0)\n")
		fmt.Printf("  ALLOWED_ORIGIN         CORS allowed origin (default: *)\n")
		fmt.Printf("  FETCH_TIMEOUT_SECONDS  Article fetch timeout (default: 30)\n")
		os.Exit(0)
	}

	if *showVersion {
		fmt.Printf("News Summarizer Server\n")
		fmt.Printf("Version: %s\n", Version)
		fmt.Printf("Commit: %s\n", Commit)
		fmt.Printf("Build Time: %s\n", BuildTime)
		os.Exit(0)
	}

	// Create application
	app, err := application.New()
	if err != nil {
		log.Fatalf("Failed to create application: %v", err)
	}
	defer app.Close()

	// Setup routes and middleware
	var handler http.Handler = server.NewRouter(app)
	handler = middleware.Logging(handler)
	handler = middleware.CORS(app.Config.AllowedOrigin)(handler)
	handler = middleware.Recover(handler)

	// Create HTTP server
	httpServer := &http.Server{
		Addr:         fmt.Sprintf("%s:%s", app.Config.Host, app.Config.Port),
		Handler:      handler,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Setup graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	// Start server
	go func() {
		log.Printf("Starting server on %s:%s", app.Config.Host, app.Config.Port)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for shutdown signal
	<-sigChan
	log.Println("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server shutdown error: %v", err)
	}

	log.Println("Server stopped")
}
