package commands

// ValidationStep performs one semantic check on converted arguments. A nil
// return means the step passed; a non-nil error carries the user-facing
// message.
type ValidationStep func(ctx *Context, args []any) error

// Validator chains validation steps. Steps run in order and the first
// failure stops the chain.
type Validator struct {
	steps []ValidationStep
}

// NewValidator builds a validator from its steps.
func NewValidator(steps ...ValidationStep) *Validator {
	return &Validator{steps: steps}
}

// Validate runs every step against the typed arguments, returning the first
// failure or nil when all pass.
func (v *Validator) Validate(ctx *Context, args []any) error {
	for _, step := range v.steps {
		if err := step(ctx, args); err != nil {
			return err
		}
	}
	return nil
}
