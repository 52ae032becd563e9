package index

// Endpoint represents one documented (method, path) operation from a loaded
// API document. Endpoints are never mutated after ingestion.
type Endpoint struct {
	Method      string      // Upper-cased HTTP verb: "GET", "POST", ...
	Path        string      // Document-supplied path, stored verbatim
	Description string      // Operation summary, falling back to description
	Parameters  []Parameter
	Responses   []Response
	Examples    []Example
}

// Parameter describes a single operation parameter.
type Parameter struct {
	Name        string
	Type        string // Schema type, defaults to "string" when unspecified
	Required    bool
	Description string
	Location    string // The document's "in" field, stored verbatim
}

// Response describes one documented response status.
type Response struct {
	StatusCode  int // Parsed from the document's string key ("404" -> 404)
	Description string
	Schema      any // Opaque schema or content value, passed through unmodified
}

// Example describes one named request example.
type Example struct {
	Title    string
	Request  any
	Response map[string]any // Response content is not captured by the source format
}

// Collection is the ordered set of endpoints produced from ingesting one
// document under one caller-chosen name.
type Collection struct {
	ID        string // UUID assigned at ingest time
	Name      string
	Endpoints []Endpoint
}
