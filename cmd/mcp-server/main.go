// Package main provides the MCP server entry point for the API docs tools.
package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/bull/apidocs-mcp-server/internal/genai"
	"github.com/bull/apidocs-mcp-server/internal/index"
	mcpserver "github.com/bull/apidocs-mcp-server/internal/mcp"
	"github.com/bull/apidocs-mcp-server/internal/openapi"
)

func main() {
	// Load .env file if present (local development), ignore if missing (production)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Create context that cancels on SIGTERM/SIGINT
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer cancel()

	// Configuration from environment. Generation API keys arrive per tool
	// call and are never read from the environment.
	port := getEnv("PORT", "8080")
	baseURL := getEnv("GENAI_BASE_URL", "")
	model := getEnv("GENAI_MODEL", "")

	logger := slog.Default()

	// The endpoint index lives for the process lifetime; nothing persists.
	store := index.NewStore(logger)

	// Document sources: HTTP, local files, and GitHub-hosted specs.
	ghSource, err := openapi.NewGitHubSource()
	if err != nil {
		log.Fatalf("failed to create github source: %v", err)
	}
	loader := openapi.NewLoader(ghSource, logger)

	genaiClient := genai.NewClient(baseURL, model)

	// Create MCP server
	server := mcpserver.NewServer(&mcpserver.Config{
		Store:  store,
		Loader: loader,
		GenAI:  genaiClient,
	})

	// Create HTTP server with multiple endpoints
	mux := http.NewServeMux()

	mux.HandleFunc("/", mcpserver.NewLandingHandler())
	mux.HandleFunc("/health", mcpserver.NewHealthHandler(store))
	mux.Handle("/mcp", mcpserver.NewHTTPHandler(server, nil))

	// Check if running in server mode (HTTP) or stdio mode (local development)
	serverMode := getEnv("SERVER_MODE", "false") == "true"

	if serverMode {
		// HTTP mode: serve MCP over HTTP for remote clients
		addr := "0.0.0.0:" + port
		log.Printf("Starting HTTP server on %s (MCP at /mcp, health at /health)", addr)
		if err := http.ListenAndServe(addr, mux); err != nil {
			log.Fatalf("HTTP server error: %v", err)
		}
	} else {
		// Stdio mode: run MCP server over stdin/stdout for local clients
		// Also start HTTP health endpoint in background for local testing
		go func() {
			addr := "0.0.0.0:" + port
			log.Printf("Starting health server on %s", addr)
			if err := http.ListenAndServe(addr, mux); err != nil {
				log.Printf("Health server error: %v", err)
			}
		}()

		log.Println("Starting API Docs MCP Server (stdio mode)...")
		if err := server.Run(ctx); err != nil {
			log.Printf("server error: %v", err)
			os.Exit(1)
		}
	}
}

func getEnv(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}
