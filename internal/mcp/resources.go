package mcp

import (
	"context"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/bull/apidocs-mcp-server/internal/index"
)

// collectionsURI identifies the readable list of loaded API names.
const collectionsURI = "apidocs://collections"

func collectionsResource() *mcp.Resource {
	return &mcp.Resource{
		URI:         collectionsURI,
		Name:        "loaded-apis",
		Description: "Names of all currently loaded API collections, one per line.",
		MIMEType:    "text/plain",
	}
}

// makeCollectionsResourceHandler serves the collection names in insertion
// order, or a fixed placeholder when nothing is loaded.
func makeCollectionsResourceHandler(store *index.Store) mcp.ResourceHandler {
	return func(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
		names := store.CollectionNames()

		text := "No APIs loaded yet"
		if len(names) > 0 {
			text = strings.Join(names, "\n")
		}

		return &mcp.ReadResourceResult{
			Contents: []*mcp.ResourceContents{
				{
					URI:      collectionsURI,
					MIMEType: "text/plain",
					Text:     text,
				},
			},
		}, nil
	}
}
