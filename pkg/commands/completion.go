package commands

import "strings"

// Completer proposes next-token completions for partial input. The last
// element of tokens is the token currently being typed (possibly empty).
type Completer func(ctx *Context, form Form, tokens []string) []string

// ParameterCompleter is the default completer: it selects the parameter
// under the cursor (staying on the final parameter once past the declared
// count, so trailing varargs keep completing) and filters its declared
// options by case-sensitive prefix. Forms with no parameters yield nothing.
func ParameterCompleter(ctx *Context, form Form, tokens []string) []string {
	params := form.Parameters()
	if len(params) == 0 || len(tokens) == 0 {
		return nil
	}

	param := params[min(len(params)-1, len(tokens)-1)]
	partial := tokens[len(tokens)-1]

	var results []string
	for _, option := range param.Options {
		if strings.HasPrefix(option, partial) {
			results = append(results, option)
		}
	}
	return results
}

// Completions collects completions across every form whose signature could
// still accommodate the in-progress tokens, in registration order, dropping
// duplicates. Forms may override the default completer via CompleterProvider.
func (c *Command) Completions(ctx *Context, tokens []string) []string {
	var results []string
	seen := make(map[string]struct{})

	for _, form := range c.forms {
		if !completionCompatible(form.Parameters(), len(tokens)) {
			continue
		}
		if !form.Permissions().Allows(ctx.Caller()) {
			continue
		}

		completer := Completer(ParameterCompleter)
		if cp, ok := form.(CompleterProvider); ok && cp.Completer() != nil {
			completer = cp.Completer()
		}
		for _, s := range completer(ctx, form, tokens) {
			if _, dup := seen[s]; dup {
				continue
			}
			seen[s] = struct{}{}
			results = append(results, s)
		}
	}
	return results
}

// completionCompatible is looser than shape compatibility: while typing, a
// form stays a candidate until the tokens outnumber its parameters (varargs
// never do).
func completionCompatible(params []Parameter, tokens int) bool {
	if n := len(params); n > 0 && params[n-1].Vararg {
		return true
	}
	return tokens <= len(params)
}
