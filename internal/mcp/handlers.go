package mcp

import (
	"context"
	"errors"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/bull/apidocs-mcp-server/internal/genai"
	"github.com/bull/apidocs-mcp-server/internal/index"
	"github.com/bull/apidocs-mcp-server/internal/openapi"
	"github.com/bull/apidocs-mcp-server/internal/sample"
)

// textResult wraps plain text as a tool result. Every tool on this server
// replies with a single text content block.
func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
	}
}

// errorResult wraps a caught failure as descriptive error text. The request
// itself still succeeds at the protocol level; only unknown tool names
// propagate as hard failures.
func errorResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
		IsError: true,
	}
}

// makeLoadHandler creates the load tool handler: fetch, decode, ingest,
// report the endpoint count. Fetch and decode failures become formatted
// error text, never hard failures.
func makeLoadHandler(loader *openapi.Loader, store *index.Store) func(
	context.Context, *mcp.CallToolRequest, LoadInput,
) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input LoadInput) (
		*mcp.CallToolResult, any, error,
	) {
		doc, err := loader.Fetch(ctx, input.Source)
		if err != nil {
			return errorResult(fmt.Sprintf("Failed to load %q: %v", input.Source, err)), nil, nil
		}

		count, err := store.Ingest(doc, input.Name)
		if err != nil {
			return errorResult(fmt.Sprintf("Failed to store %q: %v", input.Name, err)), nil, nil
		}

		return textResult(formatLoadReport(input.Name, count)), nil, nil
	}
}

// makeSearchHandler creates the search tool handler. The empty query is the
// documented way to list every loaded endpoint.
func makeSearchHandler(store *index.Store) func(
	context.Context, *mcp.CallToolRequest, SearchInput,
) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input SearchInput) (
		*mcp.CallToolResult, any, error,
	) {
		return textResult(formatSearchResults(store.Search(input.Query))), nil, nil
	}
}

// makeDetailsHandler creates the details tool handler. A lookup miss is a
// text result, not an error.
func makeDetailsHandler(store *index.Store) func(
	context.Context, *mcp.CallToolRequest, DetailsInput,
) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input DetailsInput) (
		*mcp.CallToolResult, any, error,
	) {
		ep, err := store.FindByMethodAndPath(input.Method, input.Path)
		if err != nil {
			return textResult(formatNotFound(input.Method, input.Path)), nil, nil
		}
		return textResult(formatEndpointDetails(ep)), nil, nil
	}
}

// makeCodeSampleHandler creates the codeSample tool handler.
func makeCodeSampleHandler(store *index.Store) func(
	context.Context, *mcp.CallToolRequest, CodeSampleInput,
) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input CodeSampleInput) (
		*mcp.CallToolResult, any, error,
	) {
		ep, err := store.FindByMethodAndPath(input.Method, input.Path)
		if err != nil {
			return textResult(formatNotFound(input.Method, input.Path)), nil, nil
		}

		code, err := sample.Generate(ep, input.Language)
		if err != nil {
			if errors.Is(err, sample.ErrUnsupportedLanguage) {
				return textResult(formatUnsupportedLanguage(input.Language)), nil, nil
			}
			return errorResult(fmt.Sprintf("Failed to generate sample: %v", err)), nil, nil
		}
		return textResult(code), nil, nil
	}
}

// makeTestConnectionHandler creates the testConnection tool handler: one
// round trip to the generation service, formatted success or failure report.
func makeTestConnectionHandler(client *genai.Client) func(
	context.Context, *mcp.CallToolRequest, TestConnectionInput,
) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input TestConnectionInput) (
		*mcp.CallToolResult, any, error,
	) {
		reply, err := client.TestConnection(ctx, input.Key, input.Message)
		if err != nil {
			return errorResult(fmt.Sprintf("Connection failed: %v\nHint: %s", err, genai.Remediation(err))), nil, nil
		}
		return textResult(formatConnectionReport(client.Model(""), reply)), nil, nil
	}
}

// makeChatHandler creates the chat tool handler: forward the message, return
// the generated text raw.
func makeChatHandler(client *genai.Client) func(
	context.Context, *mcp.CallToolRequest, ChatInput,
) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input ChatInput) (
		*mcp.CallToolResult, any, error,
	) {
		reply, err := client.Chat(ctx, input.Key, input.Model, input.Message)
		if err != nil {
			return errorResult(fmt.Sprintf("Chat failed: %v\nHint: %s", err, genai.Remediation(err))), nil, nil
		}
		return textResult(reply), nil, nil
	}
}

// makeAnalyzeCodeHandler creates the analyzeCode tool handler.
func makeAnalyzeCodeHandler(client *genai.Client) func(
	context.Context, *mcp.CallToolRequest, AnalyzeCodeInput,
) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input AnalyzeCodeInput) (
		*mcp.CallToolResult, any, error,
	) {
		kind := genai.NormalizeAnalysisKind(input.AnalysisType)
		reply, err := client.AnalyzeCode(ctx, input.Key, input.Code, input.Language, kind)
		if err != nil {
			return errorResult(fmt.Sprintf("Analysis failed: %v\nHint: %s", err, genai.Remediation(err))), nil, nil
		}
		return textResult(reply), nil, nil
	}
}

// makeGenerateCodeHandler creates the generateCode tool handler.
func makeGenerateCodeHandler(client *genai.Client) func(
	context.Context, *mcp.CallToolRequest, GenerateCodeInput,
) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input GenerateCodeInput) (
		*mcp.CallToolResult, any, error,
	) {
		reply, err := client.GenerateCode(ctx, input.Key, input.Requirements, input.Language, input.Style)
		if err != nil {
			return errorResult(fmt.Sprintf("Generation failed: %v\nHint: %s", err, genai.Remediation(err))), nil, nil
		}
		return textResult(reply), nil, nil
	}
}
