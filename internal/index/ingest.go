package index

import (
	"sort"
	"strconv"
	"strings"
)

// normalizeDocument flattens a decoded OpenAPI/Swagger document into endpoint
// records. The walk is a single pass over the "paths" mapping: no $ref
// resolution, no composition, no validation. A document without "paths" (or
// with a non-object "paths") yields zero endpoints rather than an error.
//
// Decoded JSON/YAML objects carry no key order in Go, so paths, methods,
// responses and examples are iterated in sorted key order to keep ingestion
// deterministic across runs.
func normalizeDocument(doc map[string]any) []Endpoint {
	paths, ok := doc["paths"].(map[string]any)
	if !ok {
		return nil
	}

	endpoints := make([]Endpoint, 0, len(paths))
	for _, path := range sortedKeys(paths) {
		item, ok := paths[path].(map[string]any)
		if !ok {
			continue
		}
		for _, method := range sortedKeys(item) {
			// Non-object values under a path item (path-level "parameters"
			// arrays, "summary" strings, ...) are skipped silently.
			details, ok := item[method].(map[string]any)
			if !ok {
				continue
			}
			endpoints = append(endpoints, Endpoint{
				Method:      strings.ToUpper(method),
				Path:        path,
				Description: operationDescription(details),
				Parameters:  normalizeParameters(details["parameters"]),
				Responses:   normalizeResponses(details["responses"]),
				Examples:    normalizeExamples(details["examples"]),
			})
		}
	}
	return endpoints
}

// operationDescription prefers the operation summary over its description.
func operationDescription(details map[string]any) string {
	if s := stringField(details, "summary"); s != "" {
		return s
	}
	return stringField(details, "description")
}

func normalizeParameters(raw any) []Parameter {
	list, ok := raw.([]any)
	if !ok {
		return []Parameter{}
	}

	params := make([]Parameter, 0, len(list))
	for _, entry := range list {
		p, ok := entry.(map[string]any)
		if !ok {
			continue
		}
		param := Parameter{
			Name:        stringField(p, "name"),
			Type:        parameterType(p),
			Description: stringField(p, "description"),
			// Stored verbatim, invalid or missing values included.
			Location: stringField(p, "in"),
		}
		if required, ok := p["required"].(bool); ok {
			param.Required = required
		}
		params = append(params, param)
	}
	return params
}

// parameterType resolves a parameter's type: nested schema type first
// (OpenAPI 3), the parameter's own type second (Swagger 2), "string" last.
func parameterType(p map[string]any) string {
	if schema, ok := p["schema"].(map[string]any); ok {
		if t := stringField(schema, "type"); t != "" {
			return t
		}
	}
	if t := stringField(p, "type"); t != "" {
		return t
	}
	return "string"
}

func normalizeResponses(raw any) []Response {
	m, ok := raw.(map[string]any)
	if !ok {
		return []Response{}
	}

	responses := make([]Response, 0, len(m))
	for _, key := range sortedKeys(m) {
		// Non-numeric keys ("default", patterned ranges) keep StatusCode 0.
		code, _ := strconv.Atoi(key)
		resp := Response{StatusCode: code}
		if value, ok := m[key].(map[string]any); ok {
			resp.Description = stringField(value, "description")
			if schema, ok := value["schema"]; ok {
				resp.Schema = schema
			} else {
				resp.Schema = value["content"]
			}
		}
		responses = append(responses, resp)
	}
	return responses
}

func normalizeExamples(raw any) []Example {
	m, ok := raw.(map[string]any)
	if !ok {
		return []Example{}
	}

	examples := make([]Example, 0, len(m))
	for _, key := range sortedKeys(m) {
		request := m[key]
		if value, ok := m[key].(map[string]any); ok {
			if inner, ok := value["value"]; ok {
				request = inner
			}
		}
		examples = append(examples, Example{
			Title:   key,
			Request: request,
			// The source format does not carry example response content.
			Response: map[string]any{},
		})
	}
	return examples
}

func stringField(m map[string]any, key string) string {
	s, _ := m[key].(string)
	return s
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
