// Package mcp implements the MCP server surface for the API docs tools.
package mcp

// LoadInput defines the input parameters for the load tool.
type LoadInput struct {
	// Source locates the document: URL, local file path, or github:owner/repo/path[@ref].
	Source string `json:"source" jsonschema:"required,description=Where to fetch the OpenAPI/Swagger document from: an http(s) URL; a local file path; or github:owner/repo/path[@ref]"`
	// Name is the collection name the endpoints are stored under.
	Name string `json:"name" jsonschema:"required,description=Name to store the loaded API under. Loading the same name again replaces it"`
}

// SearchInput defines the input parameters for the search tool.
type SearchInput struct {
	// Query is matched case-insensitively against endpoint paths and
	// descriptions. An empty query lists every loaded endpoint.
	Query string `json:"query" jsonschema:"description=Substring to match against endpoint paths and descriptions. Empty lists everything"`
}

// DetailsInput defines the input parameters for the details tool.
type DetailsInput struct {
	Method string `json:"method" jsonschema:"required,description=HTTP method of the endpoint (any case)"`
	// Path must match the documented path exactly, including case and braces.
	Path string `json:"path" jsonschema:"required,description=Endpoint path exactly as documented (case-sensitive)"`
}

// CodeSampleInput defines the input parameters for the codeSample tool.
type CodeSampleInput struct {
	Method   string `json:"method" jsonschema:"required,description=HTTP method of the endpoint (any case)"`
	Path     string `json:"path" jsonschema:"required,description=Endpoint path exactly as documented (case-sensitive)"`
	Language string `json:"language" jsonschema:"required,description=Sample language: javascript; python; or curl"`
}

// TestConnectionInput defines the input parameters for the testConnection tool.
type TestConnectionInput struct {
	Key string `json:"key" jsonschema:"required,description=API key for the generation service"`
	// Message overrides the default connectivity probe.
	Message string `json:"message,omitempty" jsonschema:"description=Optional probe message to send"`
}

// ChatInput defines the input parameters for the chat tool.
type ChatInput struct {
	Key     string `json:"key" jsonschema:"required,description=API key for the generation service"`
	Message string `json:"message" jsonschema:"required,description=Message to send"`
	Model   string `json:"model,omitempty" jsonschema:"description=Optional model name; server default when omitted"`
}

// AnalyzeCodeInput defines the input parameters for the analyzeCode tool.
type AnalyzeCodeInput struct {
	Key      string `json:"key" jsonschema:"required,description=API key for the generation service"`
	Code     string `json:"code" jsonschema:"required,description=Code to analyze"`
	Language string `json:"language,omitempty" jsonschema:"description=Language of the code"`
	// AnalysisType selects the focus; unknown values fall back to review.
	AnalysisType string `json:"analysis_type,omitempty" jsonschema:"description=One of review; bugs; optimization; explanation. Defaults to review"`
}

// GenerateCodeInput defines the input parameters for the generateCode tool.
type GenerateCodeInput struct {
	Key          string `json:"key" jsonschema:"required,description=API key for the generation service"`
	Requirements string `json:"requirements" jsonschema:"required,description=What the generated code must do"`
	Language     string `json:"language,omitempty" jsonschema:"description=Target language"`
	Style        string `json:"style,omitempty" jsonschema:"description=Style constraints such as functional or object-oriented"`
}
