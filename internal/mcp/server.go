package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/bull/apidocs-mcp-server/internal/genai"
	"github.com/bull/apidocs-mcp-server/internal/index"
	"github.com/bull/apidocs-mcp-server/internal/openapi"
)

// Server wraps the MCP server with its dependencies.
type Server struct {
	server *mcp.Server
	store  *index.Store
	loader *openapi.Loader
	genai  *genai.Client
}

// Config holds server dependencies.
type Config struct {
	Store  *index.Store
	Loader *openapi.Loader
	GenAI  *genai.Client
}

// NewServer creates a configured MCP server with tools, the collections
// resource, and prompts registered.
func NewServer(cfg *Config) *Server {
	impl := &mcp.Implementation{
		Name:    "api-docs-server",
		Version: "v0.1.0",
	}

	server := mcp.NewServer(impl, nil)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "load",
		Description: "Load an OpenAPI/Swagger document from a URL, file path, or github:owner/repo/path locator and index its endpoints under a name.",
	}, makeLoadHandler(cfg.Loader, cfg.Store))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "search",
		Description: "Search loaded endpoints by substring of path or description. An empty query lists every endpoint.",
	}, makeSearchHandler(cfg.Store))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "details",
		Description: "Show full details for one endpoint: parameters, responses, and examples. Method is case-folded, path is matched exactly.",
	}, makeDetailsHandler(cfg.Store))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "codeSample",
		Description: "Generate a request code sample for an endpoint in javascript, python, or curl.",
	}, makeCodeSampleHandler(cfg.Store))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "testConnection",
		Description: "Verify the generation service is reachable with the given API key.",
	}, makeTestConnectionHandler(cfg.GenAI))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "chat",
		Description: "Send a message to the generation service and return the raw generated text.",
	}, makeChatHandler(cfg.GenAI))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "analyzeCode",
		Description: "Analyze code via the generation service. Analysis type: review, bugs, optimization, or explanation.",
	}, makeAnalyzeCodeHandler(cfg.GenAI))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "generateCode",
		Description: "Generate code from requirements via the generation service.",
	}, makeGenerateCodeHandler(cfg.GenAI))

	server.AddResource(collectionsResource(), makeCollectionsResourceHandler(cfg.Store))
	server.AddPrompt(apiOverviewPrompt(), makeAPIOverviewPromptHandler(cfg.Store))

	return &Server{
		server: server,
		store:  cfg.Store,
		loader: cfg.Loader,
		genai:  cfg.GenAI,
	}
}

// Run starts the server with stdio transport (blocks until client disconnects).
func (s *Server) Run(ctx context.Context) error {
	return s.server.Run(ctx, &mcp.StdioTransport{})
}

// MCPServer returns the underlying MCP server instance.
// Used by transport handlers that need to wrap the server.
func (s *Server) MCPServer() *mcp.Server {
	return s.server
}
