package stylize

import "sync"

// Registry maps formatter names to formatters. Construct one per manager
// (or per test) rather than sharing process-wide state; lookups are cheap
// and registration is expected to happen once at setup.
type Registry struct {
	mu         sync.RWMutex
	formatters map[string]Formatter
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{formatters: make(map[string]Formatter)}
}

// Register adds a formatter under the given name, replacing any previous one.
func (r *Registry) Register(name string, f Formatter) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.formatters[name] = f
}

// Lookup returns the formatter registered under name.
func (r *Registry) Lookup(name string) (Formatter, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	f, ok := r.formatters[name]
	return f, ok
}

// Default returns a registry preloaded with the sixteen chat colors and the
// bold, italic, underline, strikethrough and obfuscated decorations.
func Default() *Registry {
	r := NewRegistry()
	for c, name := range colorNames {
		if c == ColorNone {
			continue
		}
		r.Register(name, WithColor(c))
	}
	r.Register("bold", func(s *Segment) { s.Bold = true })
	r.Register("italic", func(s *Segment) { s.Italic = true })
	r.Register("underline", func(s *Segment) { s.Underline = true })
	r.Register("strikethrough", func(s *Segment) { s.Strikethrough = true })
	r.Register("obfuscated", func(s *Segment) { s.Obfuscated = true })
	return r
}
