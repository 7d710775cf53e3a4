// Package permission persists permission-node grants for entity callers.
// The framework core only ever asks a Caller whether it holds a node; this
// store is the host-side answer for entity callers, backed by the same JSON
// file datastore the rest of the host uses.
package permission

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/keshon/datastore"
)

// Store maps entity ids to their granted permission nodes.
type Store struct {
	ds *datastore.DataStore
}

// NewStore opens (or creates) the grant store at path. The context controls
// the datastore's background save goroutine and must outlive the store;
// cancel it (or call Close) to flush and stop.
func NewStore(ctx context.Context, path string) (*Store, error) {
	ds, err := datastore.New(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("open permission store: %w", err)
	}
	return &Store{ds: ds}, nil
}

// Close flushes and closes the underlying datastore.
func (s *Store) Close() error {
	return s.ds.Close()
}

// Grant adds a node for the entity. Granting an already-held node is a no-op.
func (s *Store) Grant(id uuid.UUID, node string) error {
	nodes, err := s.Nodes(id)
	if err != nil {
		return err
	}
	for _, n := range nodes {
		if n == node {
			return nil
		}
	}
	return s.ds.Set(key(id), append(nodes, node))
}

// Revoke removes a node from the entity.
func (s *Store) Revoke(id uuid.UUID, node string) error {
	nodes, err := s.Nodes(id)
	if err != nil {
		return err
	}
	kept := make([]string, 0, len(nodes))
	for _, n := range nodes {
		if n != node {
			kept = append(kept, n)
		}
	}
	if len(kept) == 0 {
		return s.ds.Delete(key(id))
	}
	return s.ds.Set(key(id), kept)
}

// Has reports whether the entity holds the node. Read failures count as not
// held.
func (s *Store) Has(id uuid.UUID, node string) bool {
	nodes, err := s.Nodes(id)
	if err != nil {
		return false
	}
	for _, n := range nodes {
		if n == node {
			return true
		}
	}
	return false
}

// Nodes returns every node granted to the entity.
func (s *Store) Nodes(id uuid.UUID) ([]string, error) {
	var nodes []string
	found, err := s.ds.Get(key(id), &nodes)
	if err != nil {
		return nil, fmt.Errorf("read permission nodes: %w", err)
	}
	if !found {
		return nil, nil
	}
	return nodes, nil
}

func key(id uuid.UUID) string {
	return "perm:" + id.String()
}
