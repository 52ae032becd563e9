package index

import (
	"errors"
	"fmt"
	"testing"
)

func mustIngest(t *testing.T, s *Store, raw, name string) int {
	t.Helper()
	count, err := s.Ingest(decode(t, raw), name)
	if err != nil {
		t.Fatalf("Ingest(%s) failed: %v", name, err)
	}
	return count
}

const usersDoc = `{
	"paths": {
		"/users": {
			"get": {"summary": "list users"},
			"post": {"summary": "create user"}
		},
		"/Users/{id}": {
			"get": {"summary": "fetch one user"}
		}
	}
}`

// TestStore_IngestAndEnumerate verifies one record per (method, details) pair
// and that the empty query enumerates everything.
func TestStore_IngestAndEnumerate(t *testing.T) {
	store := NewStore(nil)

	if got := store.Search(""); len(got) != 0 {
		t.Errorf("Expected empty search result before any ingest, got %d", len(got))
	}

	count := mustIngest(t, store, usersDoc, "svc")
	if count != 3 {
		t.Errorf("Expected 3 endpoints ingested, got %d", count)
	}
	if got := store.Search(""); len(got) != 3 {
		t.Errorf("Expected 3 records from empty query, got %d", len(got))
	}
}

// TestStore_ReingestReplaces verifies re-ingesting a name fully replaces its
// collection with no duplication.
func TestStore_ReingestReplaces(t *testing.T) {
	store := NewStore(nil)

	mustIngest(t, store, usersDoc, "svc")
	mustIngest(t, store, usersDoc, "svc")
	if got := store.Search(""); len(got) != 3 {
		t.Errorf("Expected 3 records after double ingest, got %d", len(got))
	}

	// Replacing with a smaller document drops the old records entirely.
	mustIngest(t, store, `{"paths": {"/ping": {"get": {}}}}`, "svc")
	got := store.Search("")
	if len(got) != 1 {
		t.Fatalf("Expected 1 record after replacement, got %d", len(got))
	}
	if got[0].Path != "/ping" {
		t.Errorf("Expected replacement record, got %q", got[0].Path)
	}
}

// TestStore_SearchCaseInsensitive verifies matching is case-insensitive on
// both path and description.
func TestStore_SearchCaseInsensitive(t *testing.T) {
	store := NewStore(nil)
	mustIngest(t, store, usersDoc, "svc")

	// "/Users/{id}" must match a lower-case query via its path.
	if got := store.Search("users"); len(got) != 3 {
		t.Errorf("Expected 3 matches for 'users', got %d", len(got))
	}
	// Description matching, query cased differently than the document.
	if got := store.Search("CREATE"); len(got) != 1 {
		t.Errorf("Expected 1 match for 'CREATE', got %d", len(got))
	}
	if got := store.Search("no-such-thing"); len(got) != 0 {
		t.Errorf("Expected 0 matches, got %d", len(got))
	}
}

// TestStore_FindByMethodAndPath verifies the asymmetric comparison: method is
// case folded, path is compared exactly.
func TestStore_FindByMethodAndPath(t *testing.T) {
	store := NewStore(nil)
	mustIngest(t, store, usersDoc, "svc")

	ep, err := store.FindByMethodAndPath("get", "/users")
	if err != nil {
		t.Fatalf("Expected lower-case method to match: %v", err)
	}
	if ep.Method != "GET" || ep.Path != "/users" {
		t.Errorf("Unexpected endpoint: %+v", ep)
	}

	// Path comparison is case-sensitive: "/Users" does not match "/users".
	if _, err := store.FindByMethodAndPath("GET", "/Users"); !errors.Is(err, ErrEndpointNotFound) {
		t.Errorf("Expected ErrEndpointNotFound for case-mismatched path, got %v", err)
	}

	// The mixed-case document path matches only when given exactly.
	if _, err := store.FindByMethodAndPath("get", "/Users/{id}"); err != nil {
		t.Errorf("Expected exact mixed-case path to match: %v", err)
	}
}

// TestStore_CollectionNames verifies insertion order and its stability under
// re-ingestion.
func TestStore_CollectionNames(t *testing.T) {
	store := NewStore(nil)

	mustIngest(t, store, `{"paths": {"/a": {"get": {}}}}`, "a")
	mustIngest(t, store, `{"paths": {"/b": {"get": {}}}}`, "b")

	names := store.CollectionNames()
	if len(names) != 2 || names[0] != "a" || names[1] != "b" {
		t.Fatalf("Expected [a b], got %v", names)
	}

	// Re-ingesting "a" must not move it behind "b".
	mustIngest(t, store, `{"paths": {"/a2": {"get": {}}}}`, "a")
	names = store.CollectionNames()
	if names[0] != "a" || names[1] != "b" {
		t.Errorf("Expected order preserved after re-ingest, got %v", names)
	}
}

// TestStore_SearchSpansCollections verifies search reads across all
// collections in insertion order.
func TestStore_SearchSpansCollections(t *testing.T) {
	store := NewStore(nil)
	mustIngest(t, store, `{"paths": {"/first": {"get": {"summary": "shared term"}}}}`, "one")
	mustIngest(t, store, `{"paths": {"/second": {"get": {"summary": "shared term"}}}}`, "two")

	got := store.Search("shared")
	if len(got) != 2 {
		t.Fatalf("Expected 2 matches across collections, got %d", len(got))
	}
	if got[0].Path != "/first" || got[1].Path != "/second" {
		t.Errorf("Expected collection insertion order, got %q then %q", got[0].Path, got[1].Path)
	}
}

// TestStore_IngestEmptyName verifies the name must be non-empty.
func TestStore_IngestEmptyName(t *testing.T) {
	store := NewStore(nil)
	if _, err := store.Ingest(map[string]any{}, ""); !errors.Is(err, ErrEmptyName) {
		t.Errorf("Expected ErrEmptyName, got %v", err)
	}
}

// TestStore_Stats verifies the health counters.
func TestStore_Stats(t *testing.T) {
	store := NewStore(nil)
	mustIngest(t, store, usersDoc, "svc")
	mustIngest(t, store, `{"paths": {"/ping": {"get": {}}}}`, "other")

	collections, endpoints := store.Stats()
	if collections != 2 {
		t.Errorf("Expected 2 collections, got %d", collections)
	}
	if endpoints != 4 {
		t.Errorf("Expected 4 endpoints, got %d", endpoints)
	}
}

// TestStore_ConcurrentReads exercises the read path under parallel access.
// Queries run while a writer replaces a collection; the race detector guards
// the locking discipline.
func TestStore_ConcurrentReads(t *testing.T) {
	store := NewStore(nil)
	mustIngest(t, store, usersDoc, "svc")

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 50; i++ {
			doc := map[string]any{
				"paths": map[string]any{
					fmt.Sprintf("/gen/%d", i): map[string]any{"get": map[string]any{}},
				},
			}
			if _, err := store.Ingest(doc, "svc"); err != nil {
				return
			}
		}
	}()

	for i := 0; i < 50; i++ {
		store.Search("gen")
		store.CollectionNames()
	}
	<-done
}
