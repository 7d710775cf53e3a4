package commands

// Command groups every form registered under one invoked name and owns the
// usage string shown when no form's shape fits the input.
type Command struct {
	name  string
	usage string
	forms []Form
}

// NewCommand builds a command from its forms. Forms are matched in the order
// given here.
func NewCommand(name, usage string, forms ...Form) *Command {
	return &Command{name: name, usage: usage, forms: forms}
}

// Name returns the invoked name.
func (c *Command) Name() string { return c.name }

// Usage returns the usage string.
func (c *Command) Usage() string { return c.usage }

// Forms returns the registered forms in registration order.
func (c *Command) Forms() []Form { return c.forms }
