// Package game is the demonstration command set: a small in-memory world
// with players, items and the classic server chat commands (say, tp, give,
// kill, help, grant/revoke) wired through the command framework.
package game

import (
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"
)

// Player is one connected entity.
type Player struct {
	ID        uuid.UUID
	Name      string
	X, Y, Z   float64
	Health    int
	Inventory map[string]int
}

// World tracks players and broadcasts chat. Hosts install their own
// broadcast sink with SetBroadcast.
type World struct {
	mu        sync.RWMutex
	players   map[string]*Player
	broadcast func(text string)
}

// NewWorld returns an empty world.
func NewWorld() *World {
	return &World{players: make(map[string]*Player)}
}

// SetBroadcast installs the host's broadcast sink.
func (w *World) SetBroadcast(fn func(text string)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.broadcast = fn
}

// Broadcast sends text to every connected player, via the host sink.
func (w *World) Broadcast(text string) {
	w.mu.RLock()
	fn := w.broadcast
	w.mu.RUnlock()
	if fn != nil {
		fn(text)
	}
}

// AddPlayer connects a player under a fresh id.
func (w *World) AddPlayer(name string) *Player {
	return w.AddPlayerWithID(name, uuid.New())
}

// AddPlayerWithID connects a player under a caller-supplied id, replacing any
// player with the same name. Adding an already-connected player is a no-op.
func (w *World) AddPlayerWithID(name string, id uuid.UUID) *Player {
	w.mu.Lock()
	defer w.mu.Unlock()
	if p, ok := w.players[strings.ToLower(name)]; ok {
		return p
	}
	p := &Player{
		ID:        id,
		Name:      name,
		Health:    20,
		Inventory: make(map[string]int),
	}
	w.players[strings.ToLower(name)] = p
	return p
}

// RemovePlayer disconnects a player.
func (w *World) RemovePlayer(name string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	delete(w.players, strings.ToLower(name))
}

// PlayerByName returns the connected player with the given name, or nil.
// Lookup is case-insensitive.
func (w *World) PlayerByName(name string) *Player {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.players[strings.ToLower(name)]
}

// Teleport moves the named player to the destination player's position and
// reports the destination coordinates. Both players must be connected.
func (w *World) Teleport(name, dest string) (x, y, z float64, ok bool) {
	w.mu.Lock()
	defer w.mu.Unlock()

	mover := w.players[strings.ToLower(name)]
	target := w.players[strings.ToLower(dest)]
	if mover == nil || target == nil {
		return 0, 0, 0, false
	}
	mover.X, mover.Y, mover.Z = target.X, target.Y, target.Z
	return target.X, target.Y, target.Z, true
}

// Give adds count of the item to the named player's inventory.
func (w *World) Give(name, item string, count int) bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	p := w.players[strings.ToLower(name)]
	if p == nil {
		return false
	}
	p.Inventory[item] += count
	return true
}

// Kill drops the named player's health to zero.
func (w *World) Kill(name string) bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	p := w.players[strings.ToLower(name)]
	if p == nil {
		return false
	}
	p.Health = 0
	return true
}

// Position returns the named player's coordinates.
func (w *World) Position(name string) (x, y, z float64, ok bool) {
	w.mu.RLock()
	defer w.mu.RUnlock()

	p := w.players[strings.ToLower(name)]
	if p == nil {
		return 0, 0, 0, false
	}
	return p.X, p.Y, p.Z, true
}

// Health returns the named player's health.
func (w *World) Health(name string) (int, bool) {
	w.mu.RLock()
	defer w.mu.RUnlock()

	p := w.players[strings.ToLower(name)]
	if p == nil {
		return 0, false
	}
	return p.Health, true
}

// ItemCount returns how many of the item the named player holds.
func (w *World) ItemCount(name, item string) int {
	w.mu.RLock()
	defer w.mu.RUnlock()

	p := w.players[strings.ToLower(name)]
	if p == nil {
		return 0
	}
	return p.Inventory[item]
}

// PlayerNames returns the connected players' names, sorted.
func (w *World) PlayerNames() []string {
	w.mu.RLock()
	defer w.mu.RUnlock()

	names := make([]string, 0, len(w.players))
	for _, p := range w.players {
		names = append(names, p.Name)
	}
	sort.Strings(names)
	return names
}
