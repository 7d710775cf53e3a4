package commands

// MatchResult is the outcome of testing one form against one invocation's
// tokens. When Permitted is false no conversion was attempted. Otherwise
// either Args holds the converted arguments in token order, or Err carries
// the first converter failure.
type MatchResult struct {
	Form      Form
	Permitted bool
	Args      []any
	Err       error
}

// Matches evaluates every form of the command, in registration order, against
// the tokenized input. Forms whose parameter count cannot fit the token count
// produce no result; each shape-compatible form produces exactly one
// MatchResult. An empty result means no shape fit and usage should be shown.
// The dispatcher, not this method, decides how to iterate the results.
func (c *Command) Matches(caller Caller, tokens []string) []MatchResult {
	var results []MatchResult
	for _, form := range c.forms {
		params := form.Parameters()
		if !shapeCompatible(params, len(tokens)) {
			continue
		}
		if !form.Permissions().Allows(caller) {
			results = append(results, MatchResult{Form: form})
			continue
		}

		args, err := convertAll(params, tokens)
		results = append(results, MatchResult{Form: form, Permitted: true, Args: args, Err: err})
	}
	return results
}

func shapeCompatible(params []Parameter, tokens int) bool {
	if n := len(params); n > 0 && params[n-1].Vararg {
		return tokens >= n-1
	}
	return tokens == len(params)
}

// convertAll runs each token through its parameter's converter, stopping at
// the first failure. Tokens beyond the parameter count reuse the trailing
// vararg parameter's converter.
func convertAll(params []Parameter, tokens []string) ([]any, error) {
	args := make([]any, 0, len(tokens))
	for i, token := range tokens {
		p := params[min(i, len(params)-1)]
		conv := p.Converter
		if conv == nil {
			args = append(args, token)
			continue
		}
		v, err := conv(token)
		if err != nil {
			return nil, err
		}
		args = append(args, v)
	}
	return args, nil
}
