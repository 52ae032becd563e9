package openapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoader_FetchHTTP(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"paths": {"/ping": {"get": {"summary": "health check"}}}}`))
	}))
	defer server.Close()

	loader := NewLoader(nil, nil)
	doc, err := loader.Fetch(context.Background(), server.URL)
	require.NoError(t, err)

	paths, ok := doc["paths"].(map[string]any)
	require.True(t, ok, "paths should decode as a mapping")
	assert.Contains(t, paths, "/ping")
}

func TestLoader_FetchHTTP_RetriesServerErrors(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Write([]byte(`{"paths": {}}`))
	}))
	defer server.Close()

	loader := NewLoader(nil, nil)
	_, err := loader.Fetch(context.Background(), server.URL)
	require.NoError(t, err)
	assert.Equal(t, int32(2), calls.Load(), "first attempt should be retried")
}

func TestLoader_FetchHTTP_ClientErrorIsPermanent(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	loader := NewLoader(nil, nil)
	_, err := loader.Fetch(context.Background(), server.URL)
	require.ErrorIs(t, err, ErrFetchFailed)
	assert.Equal(t, int32(1), calls.Load(), "client errors must not be retried")
}

func TestLoader_FetchFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "spec.yaml")
	spec := "paths:\n  /orders:\n    post:\n      summary: create order\n"
	require.NoError(t, os.WriteFile(path, []byte(spec), 0o644))

	loader := NewLoader(nil, nil)
	doc, err := loader.Fetch(context.Background(), path)
	require.NoError(t, err)

	paths, ok := doc["paths"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, paths, "/orders")
}

func TestLoader_FetchFile_Missing(t *testing.T) {
	loader := NewLoader(nil, nil)
	_, err := loader.Fetch(context.Background(), filepath.Join(t.TempDir(), "nope.json"))
	require.ErrorIs(t, err, ErrFetchFailed)
}

func TestParseGitHubRef(t *testing.T) {
	tests := []struct {
		name    string
		ref     string
		owner   string
		repo    string
		path    string
		gitRef  string
		wantErr bool
	}{
		{name: "plain", ref: "acme/petstore/openapi.yaml", owner: "acme", repo: "petstore", path: "openapi.yaml"},
		{name: "nested path", ref: "acme/petstore/docs/api/spec.json", owner: "acme", repo: "petstore", path: "docs/api/spec.json"},
		{name: "with ref", ref: "acme/petstore/openapi.yaml@v2", owner: "acme", repo: "petstore", path: "openapi.yaml", gitRef: "v2"},
		{name: "missing path", ref: "acme/petstore", wantErr: true},
		{name: "empty segment", ref: "acme//openapi.yaml", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			owner, repo, path, gitRef, err := parseGitHubRef(tt.ref)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.owner, owner)
			assert.Equal(t, tt.repo, repo)
			assert.Equal(t, tt.path, path)
			assert.Equal(t, tt.gitRef, gitRef)
		})
	}
}
