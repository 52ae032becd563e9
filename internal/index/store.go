// Package index holds the in-memory endpoint index built from loaded
// OpenAPI/Swagger documents.
package index

import (
	"log/slog"
	"strings"
	"sync"

	"github.com/google/uuid"
)

// Store maps caller-chosen collection names to normalized endpoint records.
// It lives for the lifetime of the process and is never persisted.
//
// Requests arriving over the Streamable HTTP transport can run concurrently,
// so the name mapping is guarded by a single RWMutex: readers and the
// replace-on-reingest writer must not interleave on the same name.
type Store struct {
	mu          sync.RWMutex
	names       []string // insertion order, stable across re-ingests
	collections map[string]*Collection
	logger      *slog.Logger
}

// NewStore creates an empty endpoint index.
func NewStore(logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{
		collections: make(map[string]*Collection),
		logger:      logger,
	}
}

// Ingest normalizes a decoded document and stores its endpoints under name,
// fully replacing any prior collection held under that name. Re-ingesting an
// existing name does not change its position in the name order. Returns the
// number of endpoints ingested.
func (s *Store) Ingest(doc map[string]any, name string) (int, error) {
	if name == "" {
		return 0, ErrEmptyName
	}

	endpoints := normalizeDocument(doc)
	collection := &Collection{
		ID:        uuid.New().String(),
		Name:      name,
		Endpoints: endpoints,
	}

	s.mu.Lock()
	if _, exists := s.collections[name]; !exists {
		s.names = append(s.names, name)
	}
	s.collections[name] = collection
	s.mu.Unlock()

	s.logger.Debug("ingested collection",
		"name", name,
		"collection_id", collection.ID,
		"endpoints", len(endpoints),
	)
	return len(endpoints), nil
}

// Search returns every endpoint across all collections whose path or
// description contains query, compared case-insensitively. Results follow
// collection insertion order, then within-collection order. The empty query
// matches every record; callers rely on this for full enumeration.
func (s *Store) Search(query string) []Endpoint {
	needle := strings.ToLower(query)

	s.mu.RLock()
	defer s.mu.RUnlock()

	var matches []Endpoint
	for _, name := range s.names {
		for _, ep := range s.collections[name].Endpoints {
			if strings.Contains(strings.ToLower(ep.Path), needle) ||
				strings.Contains(strings.ToLower(ep.Description), needle) {
				matches = append(matches, ep)
			}
		}
	}
	return matches
}

// FindByMethodAndPath returns the first endpoint whose method matches the
// given method (case folded) and whose path matches exactly. The path
// comparison is case-sensitive with no normalization; callers that need
// tolerance must pass the path as it appears in the document.
func (s *Store) FindByMethodAndPath(method, path string) (Endpoint, error) {
	method = strings.ToUpper(method)
	for _, ep := range s.Search("") {
		if ep.Method == method && ep.Path == path {
			return ep, nil
		}
	}
	return Endpoint{}, ErrEndpointNotFound
}

// CollectionNames returns the distinct names currently holding a collection,
// in insertion order.
func (s *Store) CollectionNames() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make([]string, len(s.names))
	copy(names, s.names)
	return names
}

// Stats reports the number of loaded collections and total endpoints.
// Used by the health endpoint.
func (s *Store) Stats() (collections, endpoints int) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, c := range s.collections {
		endpoints += len(c.Endpoints)
	}
	return len(s.collections), endpoints
}
