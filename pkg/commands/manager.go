// Package commands is a command-registration and dispatch framework for
// game-server-style hosts. A host feeds raw invocations into a Manager; the
// framework tokenizes the arguments, matches them against every registered
// form of the named command, checks permissions, converts and validates the
// arguments, executes the matching forms and styles their output before
// sending it back to the caller.
package commands

import (
	"fmt"
	"log"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/John-DND/RegularCommands/pkg/stylize"
)

const noPermissionMessage = "You do not have permission to execute this command."

// Manager owns the command and provider registries and orchestrates
// dispatch. Registration is expected at setup time; invocation is the hot
// path and takes only read locks.
type Manager struct {
	mu       sync.RWMutex
	commands map[string]*Command

	entityProviders   map[uuid.UUID]Provider
	consoleProvider   Provider
	automatedProvider Provider

	registry *stylize.Registry
	logger   *log.Logger
}

// NewManager creates a manager using the given formatter registry and
// logger. A nil registry falls back to stylize.Default(); a nil logger falls
// back to log.Default().
func NewManager(registry *stylize.Registry, logger *log.Logger) *Manager {
	if registry == nil {
		registry = stylize.Default()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Manager{
		commands:        make(map[string]*Command),
		entityProviders: make(map[uuid.UUID]Provider),
		registry:        registry,
		logger:          logger,
	}
}

// Formatters returns the formatter registry used for stylization.
func (m *Manager) Formatters() *stylize.Registry { return m.registry }

// Logger returns the manager's logger.
func (m *Manager) Logger() *log.Logger { return m.logger }

// Register adds a command, replacing any command previously registered under
// the same name.
func (m *Manager) Register(cmd *Command) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.commands[cmd.Name()] = cmd
}

// Lookup returns the command registered under name, or nil.
func (m *Manager) Lookup(name string) *Command {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.commands[name]
}

// Commands returns all registered commands, sorted by name.
func (m *Manager) Commands() []*Command {
	m.mu.RLock()
	defer m.mu.RUnlock()

	list := make([]*Command, 0, len(m.commands))
	for _, c := range m.commands {
		list = append(list, c)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Name() < list[j].Name() })
	return list
}

// RegisterProvider associates a provider with the caller. Entity callers are
// keyed by unique id; the console and automated categories each retain a
// single provider, overwritten on re-registration.
func (m *Manager) RegisterProvider(caller Caller, p Provider) {
	m.mu.Lock()
	defer m.mu.Unlock()

	switch id := caller.ID(); id.Category {
	case CategoryEntity:
		m.entityProviders[id.Entity] = p
	case CategoryConsole:
		m.consoleProvider = p
	case CategoryAutomated:
		m.automatedProvider = p
	default:
		m.logger.Printf("[WARN] attempted to register a provider for unsupported caller category %v", id.Category)
	}
}

// RemoveProvider drops the provider associated with the caller.
func (m *Manager) RemoveProvider(caller Caller) {
	m.mu.Lock()
	defer m.mu.Unlock()

	switch id := caller.ID(); id.Category {
	case CategoryEntity:
		delete(m.entityProviders, id.Entity)
	case CategoryConsole:
		m.consoleProvider = nil
	case CategoryAutomated:
		m.automatedProvider = nil
	}
}

// HasProvider reports whether a provider is registered for the caller.
func (m *Manager) HasProvider(caller Caller) bool {
	return m.ProviderFor(caller) != nil
}

// ProviderFor returns the provider registered for the caller, or nil.
func (m *Manager) ProviderFor(caller Caller) Provider {
	m.mu.RLock()
	defer m.mu.RUnlock()

	switch id := caller.ID(); id.Category {
	case CategoryEntity:
		return m.entityProviders[id.Entity]
	case CategoryConsole:
		return m.consoleProvider
	case CategoryAutomated:
		return m.automatedProvider
	}
	return nil
}

// Execute runs one invocation end to end: tokenize, match against every form
// of the named command, then per match check permission, validate, execute
// and send output. Every match is processed; a failure in one form never
// stops the others. An unregistered name is logged, reported to the caller
// as a red error notice, and acknowledged with false.
func (m *Manager) Execute(caller Caller, name string, rawArgs []string) bool {
	cmd := m.Lookup(name)
	if cmd == nil {
		m.logger.Printf("[ERR] caller '%s' executed command '%s', which is not registered with this manager", caller.Name(), name)
		m.errorMessage(caller, fmt.Sprintf("Unknown command '%s'. Report this to your server admins.", name))
		return false
	}

	tokens := Tokenize(rawArgs)
	matches := cmd.Matches(caller, tokens)
	if len(matches) == 0 {
		caller.SendMessage(cmd.Usage())
		return true
	}

	for _, match := range matches {
		if !match.Permitted {
			m.errorMessage(caller, noPermissionMessage)
			continue
		}
		if match.Err != nil {
			m.errorMessage(caller, match.Err.Error())
			continue
		}

		ctx := &Context{manager: m, caller: caller, provider: m.ProviderFor(caller)}
		if v := match.Form.Validator(); v != nil {
			if err := v.Validate(ctx, match.Args); err != nil {
				m.errorMessage(caller, err.Error())
				continue
			}
		}

		output := match.Form.Execute(ctx, match.Args)
		if output == "" {
			continue
		}

		if !match.Form.CanStylize() {
			caller.SendMessage(output)
			continue
		}
		segments, err := m.registry.Stylize(output)
		if err != nil {
			// A markup bug must not swallow the result: log the position
			// context and fall back to the raw output.
			m.logger.Printf("[WARN] stylizer error while '%s' executed command '%s': %v", caller.Name(), name, err)
			caller.SendMessage(output)
			continue
		}
		caller.SendStyled(segments)
	}
	return true
}

// Complete proposes next-token completions for in-progress input. The last
// raw argument is the partial token being typed.
func (m *Manager) Complete(caller Caller, name string, rawArgs []string) []string {
	if len(rawArgs) == 0 {
		return nil
	}
	cmd := m.Lookup(name)
	if cmd == nil {
		return nil
	}

	ctx := &Context{manager: m, caller: caller, provider: m.ProviderFor(caller)}
	return cmd.Completions(ctx, Tokenize(rawArgs))
}

// errorMessage sends a red styled failure notice to the caller.
func (m *Manager) errorMessage(caller Caller, text string) {
	caller.SendStyled([]stylize.Segment{{Text: text, Color: stylize.Red}})
}
