package commands

// Provider is the caller-specific adapter the host registers alongside a
// caller. The framework stores it and hands it back through Context; it
// never looks inside.
type Provider any

// Context is the read-only per-invocation bundle passed to executors,
// validators and completers. It lives for exactly one invocation and is
// never mutated after construction.
type Context struct {
	manager  *Manager
	caller   Caller
	provider Provider
}

// Manager returns the dispatching manager.
func (c *Context) Manager() *Manager { return c.manager }

// Caller returns the invoking caller.
func (c *Context) Caller() Caller { return c.caller }

// Provider returns the provider registered for the caller, or nil.
func (c *Context) Provider() Provider { return c.provider }
