package commands

import "strings"

// Tokenize reshapes a raw, whitespace-split argument array into logical
// tokens. A run of consecutive arguments opened by a leading '"' and closed
// by a trailing '"' (possibly within the same argument) is joined with single
// spaces into one token, with the enclosing quotes stripped. Token order
// matches input order.
//
// If a quote is opened but never closed, no input is lost: any tokens
// completed after the opening point are discarded and the original raw
// arguments from that point onward are emitted unmodified as the tail of the
// result.
func Tokenize(args []string) []string {
	var buf strings.Builder
	result := make([]string, 0, len(args))

	quoting := false
	openResult := 0
	openArg := 0

	for i, arg := range args {
		switch {
		case quoting:
			buf.WriteByte(' ')
			if strings.HasSuffix(arg, `"`) {
				buf.WriteString(arg[:len(arg)-1])
				result = append(result, buf.String())
				buf.Reset()
				quoting = false
			} else {
				buf.WriteString(arg)
			}
		case strings.HasPrefix(arg, `"`):
			if len(arg) > 1 && strings.HasSuffix(arg, `"`) {
				result = append(result, arg[1:len(arg)-1])
				continue
			}
			quoting = true
			buf.WriteString(arg[1:])
			openResult = len(result)
			openArg = i
		default:
			result = append(result, arg)
		}
	}

	if quoting {
		result = append(result[:openResult], args[openArg:]...)
	}
	return result
}
