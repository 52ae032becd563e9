package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/bull/apidocs-mcp-server/internal/index"
)

func apiOverviewPrompt() *mcp.Prompt {
	return &mcp.Prompt{
		Name:        "api_overview",
		Description: "Build a prompt asking a model to explain the loaded API endpoints.",
		Arguments: []*mcp.PromptArgument{
			{
				Name:        "focus",
				Description: "Optional substring to narrow the overview to matching endpoints.",
				Required:    false,
			},
		},
	}
}

// makeAPIOverviewPromptHandler renders the loaded endpoints into a user-role
// prompt. With no endpoints loaded the prompt says so instead of failing.
func makeAPIOverviewPromptHandler(store *index.Store) mcp.PromptHandler {
	return func(ctx context.Context, req *mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
		focus := req.Params.Arguments["focus"]
		endpoints := store.Search(focus)

		var b strings.Builder
		if len(endpoints) == 0 {
			b.WriteString("No API endpoints are loaded yet. Ask the user to load an OpenAPI document first.")
		} else {
			b.WriteString("Explain the following API surface to a developer. ")
			b.WriteString("Group related endpoints and call out anything unusual.\n\n")
			for _, ep := range endpoints {
				fmt.Fprintf(&b, "%s %s - %s\n", ep.Method, ep.Path, ep.Description)
			}
		}

		return &mcp.GetPromptResult{
			Description: "API overview request",
			Messages: []*mcp.PromptMessage{
				{
					Role:    "user",
					Content: &mcp.TextContent{Text: b.String()},
				},
			},
		}, nil
	}
}
