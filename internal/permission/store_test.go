package permission

import (
	"context"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/google/uuid"
)

func newTestStore(t *testing.T, path string) *Store {
	t.Helper()
	store, err := NewStore(context.Background(), path)
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	return store
}

func TestGrantRevoke(t *testing.T) {
	store := newTestStore(t, filepath.Join(t.TempDir(), "perms.json"))
	defer store.Close()

	id := uuid.New()
	if store.Has(id, "admin") {
		t.Fatalf("fresh entity should hold nothing")
	}

	for _, node := range []string{"admin", "admin", "builder"} {
		if err := store.Grant(id, node); err != nil {
			t.Fatalf("Grant(%q): %v", node, err)
		}
	}
	if !store.Has(id, "admin") || !store.Has(id, "builder") {
		t.Errorf("granted nodes missing")
	}
	nodes, err := store.Nodes(id)
	if err != nil {
		t.Fatalf("Nodes: %v", err)
	}
	if want := []string{"admin", "builder"}; !reflect.DeepEqual(nodes, want) {
		t.Errorf("Nodes() = %v, want %v (duplicate grant must be a no-op)", nodes, want)
	}

	if err := store.Revoke(id, "admin"); err != nil {
		t.Fatalf("Revoke: %v", err)
	}
	if store.Has(id, "admin") {
		t.Errorf("revoked node still held")
	}
	if !store.Has(id, "builder") {
		t.Errorf("revoke removed the wrong node")
	}

	if err := store.Revoke(id, "builder"); err != nil {
		t.Fatalf("Revoke: %v", err)
	}
	if nodes, _ := store.Nodes(id); len(nodes) != 0 {
		t.Errorf("entity should hold nothing after revoking everything, got %v", nodes)
	}
}

func TestRevokeDoesNotDisturbOtherEntities(t *testing.T) {
	store := newTestStore(t, filepath.Join(t.TempDir(), "perms.json"))
	defer store.Close()

	first, second := uuid.New(), uuid.New()
	store.Grant(first, "admin")
	store.Grant(second, "admin")
	store.Revoke(first, "admin")

	if store.Has(first, "admin") {
		t.Errorf("revoked node still held")
	}
	if !store.Has(second, "admin") {
		t.Errorf("revoke leaked across entities")
	}
}

func TestGrantsSurviveReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "perms.json")
	id := uuid.New()

	store := newTestStore(t, path)
	if err := store.Grant(id, "admin"); err != nil {
		t.Fatalf("Grant: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	reopened := newTestStore(t, path)
	defer reopened.Close()

	if !reopened.Has(id, "admin") {
		nodes, err := reopened.Nodes(id)
		t.Errorf("grant lost across reopen: nodes=%v err=%v", nodes, err)
	}
}
