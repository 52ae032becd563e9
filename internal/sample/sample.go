// Package sample renders ready-to-run request snippets for indexed endpoints.
package sample

import (
	"errors"
	"fmt"
	"strings"

	"github.com/bull/apidocs-mcp-server/internal/index"
)

// ErrUnsupportedLanguage is returned for any language outside Supported.
var ErrUnsupportedLanguage = errors.New("language not supported")

// Supported lists the languages Generate can render, in display order.
var Supported = []string{"javascript", "python", "curl"}

// placeholderBase stands in for the real server URL, which the source
// document may not carry.
const placeholderBase = "https://api.example.com"

// Generate renders a code sample for the endpoint in the given language.
func Generate(ep index.Endpoint, language string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(language)) {
	case "javascript":
		return javascriptSample(ep), nil
	case "python":
		return pythonSample(ep), nil
	case "curl":
		return curlSample(ep), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedLanguage, language)
	}
}

// hasBody reports whether the method conventionally carries a request body.
func hasBody(method string) bool {
	switch method {
	case "POST", "PUT", "PATCH":
		return true
	}
	return false
}

// queryParams returns the names of query-located parameters.
func queryParams(ep index.Endpoint) []string {
	var names []string
	for _, p := range ep.Parameters {
		if p.Location == "query" && p.Name != "" {
			names = append(names, p.Name)
		}
	}
	return names
}

func curlSample(ep index.Endpoint) string {
	var b strings.Builder
	fmt.Fprintf(&b, "curl -X %s \"%s%s", ep.Method, placeholderBase, ep.Path)
	if qs := queryParams(ep); len(qs) > 0 {
		pairs := make([]string, len(qs))
		for i, name := range qs {
			pairs[i] = name + "=VALUE"
		}
		b.WriteString("?" + strings.Join(pairs, "&"))
	}
	b.WriteString("\" \\\n  -H \"Content-Type: application/json\"")
	if hasBody(ep.Method) {
		b.WriteString(" \\\n  -d '{}'")
	}
	b.WriteString("\n")
	return b.String()
}

func javascriptSample(ep index.Endpoint) string {
	var b strings.Builder
	fmt.Fprintf(&b, "const response = await fetch(\"%s%s\", {\n", placeholderBase, ep.Path)
	fmt.Fprintf(&b, "  method: %q,\n", ep.Method)
	b.WriteString("  headers: { \"Content-Type\": \"application/json\" },\n")
	if hasBody(ep.Method) {
		b.WriteString("  body: JSON.stringify({}),\n")
	}
	b.WriteString("});\n")
	b.WriteString("const data = await response.json();\n")
	b.WriteString("console.log(data);\n")
	return b.String()
}

func pythonSample(ep index.Endpoint) string {
	var b strings.Builder
	b.WriteString("import requests\n\n")
	fmt.Fprintf(&b, "response = requests.request(\n    %q,\n    \"%s%s\",\n", ep.Method, placeholderBase, ep.Path)
	if qs := queryParams(ep); len(qs) > 0 {
		pairs := make([]string, len(qs))
		for i, name := range qs {
			pairs[i] = fmt.Sprintf("%q: \"VALUE\"", name)
		}
		fmt.Fprintf(&b, "    params={%s},\n", strings.Join(pairs, ", "))
	}
	if hasBody(ep.Method) {
		b.WriteString("    json={},\n")
	}
	b.WriteString(")\nresponse.raise_for_status()\nprint(response.json())\n")
	return b.String()
}
