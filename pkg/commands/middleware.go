package commands

// Middleware wraps a form (logging, rate limiting, auditing). Middlewares
// compose at registration time and the wrapped value remains a Form.
type Middleware func(Form) Form

// Apply applies middlewares in order; the first in the list is the outermost.
func Apply(f Form, mws ...Middleware) Form {
	for _, mw := range mws {
		f = mw(f)
	}
	return f
}

// Unwrappable is implemented by wrapped forms so callers can reach the
// underlying form (e.g. to type-assert to CompleterProvider).
type Unwrappable interface {
	Form
	Unwrap() Form
}

// WrappedForm delegates everything but Execute to the inner form. Used by
// middleware.
type WrappedForm struct {
	Inner   Form
	RunFunc func(ctx *Context, args []any) string
}

func (w *WrappedForm) Parameters() []Parameter  { return w.Inner.Parameters() }
func (w *WrappedForm) Permissions() Permissions { return w.Inner.Permissions() }
func (w *WrappedForm) CanStylize() bool         { return w.Inner.CanStylize() }
func (w *WrappedForm) Validator() *Validator    { return w.Inner.Validator() }

// Execute runs the wrapper's RunFunc.
func (w *WrappedForm) Execute(ctx *Context, args []any) string {
	if w.RunFunc != nil {
		return w.RunFunc(ctx, args)
	}
	return w.Inner.Execute(ctx, args)
}

// Completer delegates to the inner form's completer, if any.
func (w *WrappedForm) Completer() Completer {
	if cp, ok := w.Inner.(CompleterProvider); ok {
		return cp.Completer()
	}
	return nil
}

// Unwrap returns the inner form.
func (w *WrappedForm) Unwrap() Form { return w.Inner }

// WrapForm returns a form that runs run instead of f.Execute, delegating the
// rest of the Form surface to f.
func WrapForm(f Form, run func(ctx *Context, args []any) string) Form {
	return &WrappedForm{Inner: f, RunFunc: run}
}

// RootForm unwraps a form until the underlying form is not Unwrappable.
func RootForm(f Form) Form {
	for {
		u, ok := f.(Unwrappable)
		if !ok {
			return f
		}
		f = u.Unwrap()
	}
}

// WithExecutionLog logs every execution of the wrapped form through the
// manager's logger.
func WithExecutionLog(name string) Middleware {
	return func(f Form) Form {
		return WrapForm(f, func(ctx *Context, args []any) string {
			ctx.Manager().Logger().Printf("[INFO] '%s' executed command '%s' with %d argument(s)",
				ctx.Caller().Name(), name, len(args))
			return f.Execute(ctx, args)
		})
	}
}
