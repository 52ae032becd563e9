package mcp

import (
	"bytes"
	"log"
	"net/http"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/parser"
	"go.abhg.dev/goldmark/toc"
)

const landingMarkdown = `# API Docs MCP Server

Browse OpenAPI/Swagger documentation and call an OpenAI-compatible generation
service through the Model Context Protocol.

## Connect

` + "```" + `
claude mcp add api-docs --transport streamable-http http://localhost:8080/mcp
` + "```" + `

## Endpoints

- [/mcp](/mcp) - MCP Streamable HTTP
- [/health](/health) - Health check

## Tools

- **load** - fetch an OpenAPI document (URL, file, or github: locator) and index it under a name
- **search** - substring search over endpoint paths and descriptions; empty query lists everything
- **details** - full Markdown details for one endpoint
- **codeSample** - javascript, python, or curl request snippet
- **testConnection** / **chat** / **analyzeCode** / **generateCode** - generation service pass-through

## Resources

- ` + "`apidocs://collections`" + ` - names of all loaded APIs
`

const landingShell = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>API Docs MCP Server</title>
<style>
  *, *::before, *::after { box-sizing: border-box; margin: 0; padding: 0; }
  body { font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, Helvetica, Arial, sans-serif; background: #0f172a; color: #e2e8f0; min-height: 100vh; display: flex; justify-content: center; }
  main { max-width: 640px; width: 90%; background: #1e293b; border-radius: 12px; padding: 2.5rem; margin: 3rem 0; box-shadow: 0 25px 50px rgba(0,0,0,0.4); }
  h1 { font-size: 1.75rem; margin-bottom: 0.75rem; color: #f8fafc; }
  h2 { font-size: 1rem; text-transform: uppercase; letter-spacing: 0.08em; color: #64748b; margin: 1.5rem 0 0.5rem; }
  p, li { line-height: 1.6; }
  ul { padding-left: 1.25rem; margin-bottom: 0.75rem; }
  a { color: #38bdf8; text-decoration: none; }
  a:hover { text-decoration: underline; }
  pre { background: #0f172a; border: 1px solid #334155; border-radius: 8px; padding: 1rem; overflow-x: auto; font-size: 0.85rem; line-height: 1.5; margin: 0.5rem 0; }
  code { font-family: "SF Mono", "Fira Code", Menlo, monospace; }
</style>
</head>
<body>
<main>
`

// renderLanding converts the landing markdown to HTML once at startup.
// The toc extension inserts a small table of contents under the title.
func renderLanding() []byte {
	md := goldmark.New(
		goldmark.WithParserOptions(parser.WithAutoHeadingID()),
		goldmark.WithExtensions(&toc.Extender{
			MinDepth: 2,
			MaxDepth: 2,
			Compact:  true,
		}),
	)

	var buf bytes.Buffer
	buf.WriteString(landingShell)
	if err := md.Convert([]byte(landingMarkdown), &buf); err != nil {
		// Static input; a conversion failure is a programming error.
		log.Printf("landing render error: %v", err)
		buf.WriteString("<h1>API Docs MCP Server</h1>")
	}
	buf.WriteString("</main>\n</body>\n</html>\n")
	return buf.Bytes()
}

// NewLandingHandler returns an HTTP handler that serves the landing page at /.
func NewLandingHandler() http.HandlerFunc {
	page := renderLanding()
	return func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write(page)
	}
}
