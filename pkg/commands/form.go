package commands

import "github.com/John-DND/RegularCommands/pkg/converter"

// Parameter is one typed slot in a form's signature. Options, when set, are
// offered as tab completions for this slot. Vararg is only meaningful on the
// final parameter and lets it absorb any number of trailing tokens (including
// none), each converted with the same converter.
type Parameter struct {
	Name      string
	Converter converter.Converter
	Options   []string
	Vararg    bool
}

// Permissions is the set of permission nodes a caller must all hold to use a
// form. An empty set allows everyone.
type Permissions []string

// Allows reports whether the caller holds every node.
func (p Permissions) Allows(caller Caller) bool {
	for _, node := range p {
		if !caller.HasPermission(node) {
			return false
		}
	}
	return true
}

// Form is one typed-parameter signature plus behavior for a named command.
// A command may register several forms (overloads); they are tried in
// registration order. Execute returns the output to send to the caller, or
// an empty string for no message.
type Form interface {
	Parameters() []Parameter
	Permissions() Permissions
	CanStylize() bool
	Validator() *Validator
	Execute(ctx *Context, args []any) string
}

// CompleterProvider is implemented by forms that override the default
// parameter-option tab completion.
type CompleterProvider interface {
	Completer() Completer
}

// FuncForm is the plain-struct way to declare a form.
type FuncForm struct {
	Params   []Parameter
	Perms    Permissions
	Stylized bool
	Checks   *Validator
	Complete Completer
	Run      func(ctx *Context, args []any) string
}

func (f *FuncForm) Parameters() []Parameter  { return f.Params }
func (f *FuncForm) Permissions() Permissions { return f.Perms }
func (f *FuncForm) CanStylize() bool         { return f.Stylized }
func (f *FuncForm) Validator() *Validator    { return f.Checks }

func (f *FuncForm) Execute(ctx *Context, args []any) string {
	if f.Run == nil {
		return ""
	}
	return f.Run(ctx, args)
}

func (f *FuncForm) Completer() Completer { return f.Complete }
