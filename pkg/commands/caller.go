package commands

import (
	"github.com/google/uuid"

	"github.com/John-DND/RegularCommands/pkg/stylize"
)

// CallerCategory names the kind of caller issuing a command. Hosts resolve
// the category before calling into the framework; the core never inspects
// concrete caller types.
type CallerCategory int

const (
	// CategoryEntity is an individual in-game entity, keyed by unique id.
	CategoryEntity CallerCategory = iota
	// CategoryConsole is the single interactive server console.
	CategoryConsole
	// CategoryAutomated is the single automated sender (command blocks,
	// scheduled scripts and the like).
	CategoryAutomated
)

func (c CallerCategory) String() string {
	switch c {
	case CategoryEntity:
		return "entity"
	case CategoryConsole:
		return "console"
	case CategoryAutomated:
		return "automated"
	}
	return "unknown"
}

// CallerID identifies a caller. Entity is the zero UUID unless Category is
// CategoryEntity. CallerID is comparable and safe to use as a map key.
type CallerID struct {
	Category CallerCategory
	Entity   uuid.UUID
}

// EntityID returns the id of an entity caller.
func EntityID(id uuid.UUID) CallerID {
	return CallerID{Category: CategoryEntity, Entity: id}
}

// ConsoleID returns the id of the console caller.
func ConsoleID() CallerID {
	return CallerID{Category: CategoryConsole}
}

// AutomatedID returns the id of the automated caller.
func AutomatedID() CallerID {
	return CallerID{Category: CategoryAutomated}
}

// Caller is the entity, console or automated sender issuing a command. Hosts
// implement it once per transport; the framework uses it for permission
// checks and for sending output back.
type Caller interface {
	ID() CallerID
	Name() string
	HasPermission(node string) bool
	SendMessage(text string)
	SendStyled(segments []stylize.Segment)
}
