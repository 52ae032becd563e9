package mcp

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/bull/apidocs-mcp-server/internal/index"
	"github.com/bull/apidocs-mcp-server/internal/sample"
)

// formatLoadReport describes a successful load.
func formatLoadReport(name string, count int) string {
	noun := "endpoints"
	if count == 1 {
		noun = "endpoint"
	}
	return fmt.Sprintf("Loaded %d %s into %q.", count, noun, name)
}

// formatSearchResults renders one "METHOD path - description" line per match.
func formatSearchResults(endpoints []index.Endpoint) string {
	if len(endpoints) == 0 {
		return "No endpoints matched. Load an API with the load tool, or broaden the query."
	}

	var b strings.Builder
	noun := "endpoints"
	if len(endpoints) == 1 {
		noun = "endpoint"
	}
	fmt.Fprintf(&b, "Found %d %s:\n", len(endpoints), noun)
	for _, ep := range endpoints {
		fmt.Fprintf(&b, "%s %s - %s\n", ep.Method, ep.Path, ep.Description)
	}
	return b.String()
}

// formatEndpointDetails renders a Markdown block describing one endpoint.
func formatEndpointDetails(ep index.Endpoint) string {
	var b strings.Builder
	fmt.Fprintf(&b, "## %s %s\n\n", ep.Method, ep.Path)
	if ep.Description != "" {
		fmt.Fprintf(&b, "%s\n\n", ep.Description)
	}

	b.WriteString("### Parameters\n\n")
	if len(ep.Parameters) == 0 {
		b.WriteString("None.\n\n")
	} else {
		b.WriteString("| Name | In | Type | Required | Description |\n")
		b.WriteString("|------|----|------|----------|-------------|\n")
		for _, p := range ep.Parameters {
			fmt.Fprintf(&b, "| %s | %s | %s | %t | %s |\n",
				p.Name, p.Location, p.Type, p.Required, p.Description)
		}
		b.WriteString("\n")
	}

	b.WriteString("### Responses\n\n")
	if len(ep.Responses) == 0 {
		b.WriteString("None documented.\n\n")
	} else {
		for _, r := range ep.Responses {
			fmt.Fprintf(&b, "- **%d** %s\n", r.StatusCode, r.Description)
			if r.Schema != nil {
				fmt.Fprintf(&b, "  ```json\n  %s\n  ```\n", compactJSON(r.Schema))
			}
		}
		b.WriteString("\n")
	}

	if len(ep.Examples) > 0 {
		b.WriteString("### Examples\n\n")
		for _, ex := range ep.Examples {
			fmt.Fprintf(&b, "- **%s**\n", ex.Title)
			if ex.Request != nil {
				fmt.Fprintf(&b, "  ```json\n  %s\n  ```\n", compactJSON(ex.Request))
			}
		}
	}

	return strings.TrimRight(b.String(), "\n") + "\n"
}

// formatNotFound describes a lookup miss; a miss is a text result, not an error.
func formatNotFound(method, path string) string {
	return fmt.Sprintf("No endpoint found for %s %s. The path comparison is exact; use the search tool to list documented paths.",
		strings.ToUpper(method), path)
}

// formatUnsupportedLanguage is the literal reply for codeSample languages
// outside the supported set.
func formatUnsupportedLanguage(language string) string {
	return fmt.Sprintf("Code samples for %q are not supported yet. Supported languages: %s.",
		language, strings.Join(sample.Supported, ", "))
}

// formatConnectionReport describes a successful connection test.
func formatConnectionReport(model, reply string) string {
	return fmt.Sprintf("Connection OK.\nModel: %s\nReply: %s", model, reply)
}

// compactJSON renders an opaque decoded value as single-line JSON, falling
// back to fmt for values JSON cannot represent.
func compactJSON(v any) string {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(data)
}
