package commands

import (
	"errors"
	"testing"

	"github.com/John-DND/RegularCommands/pkg/converter"
	"github.com/John-DND/RegularCommands/pkg/stylize"
)

// testCaller records everything sent to it.
type testCaller struct {
	id       CallerID
	name     string
	perms    map[string]bool
	messages []string
	styled   [][]stylize.Segment
}

func newTestCaller(perms ...string) *testCaller {
	c := &testCaller{id: ConsoleID(), name: "tester", perms: make(map[string]bool)}
	for _, p := range perms {
		c.perms[p] = true
	}
	return c
}

func (c *testCaller) ID() CallerID                   { return c.id }
func (c *testCaller) Name() string                   { return c.name }
func (c *testCaller) HasPermission(node string) bool { return c.perms[node] }
func (c *testCaller) SendMessage(text string)        { c.messages = append(c.messages, text) }
func (c *testCaller) SendStyled(segments []stylize.Segment) {
	c.styled = append(c.styled, segments)
}

func echoForm(params ...Parameter) *FuncForm {
	return &FuncForm{
		Params: params,
		Run: func(ctx *Context, args []any) string {
			return "ok"
		},
	}
}

func TestMatchesSelectsShapeCompatibleForms(t *testing.T) {
	oneArg := echoForm(Parameter{Name: "a", Converter: converter.String})
	twoArg := echoForm(
		Parameter{Name: "a", Converter: converter.String},
		Parameter{Name: "b", Converter: converter.String},
	)
	cmd := NewCommand("test", "/test", oneArg, twoArg)
	caller := newTestCaller()

	matches := cmd.Matches(caller, []string{"x", "y"})
	if len(matches) != 1 {
		t.Fatalf("expected exactly one match for 2 tokens, got %d", len(matches))
	}
	if matches[0].Form != Form(twoArg) {
		t.Errorf("expected the two-parameter form to match")
	}

	if matches := cmd.Matches(caller, nil); len(matches) != 0 {
		t.Errorf("expected no matches for 0 tokens, got %d", len(matches))
	}
}

func TestMatchesPreservesRegistrationOrder(t *testing.T) {
	first := echoForm(Parameter{Name: "a", Converter: converter.String})
	second := echoForm(Parameter{Name: "a", Converter: converter.Int})
	cmd := NewCommand("test", "/test", first, second)

	matches := cmd.Matches(newTestCaller(), []string{"x"})
	if len(matches) != 2 {
		t.Fatalf("expected both one-parameter forms to match, got %d", len(matches))
	}
	if matches[0].Form != Form(first) || matches[1].Form != Form(second) {
		t.Errorf("matches out of registration order")
	}
}

func TestMatchesSkipsConversionWhenDenied(t *testing.T) {
	converted := 0
	counting := converter.Converter(func(arg string) (any, error) {
		converted++
		return arg, nil
	})
	form := echoForm(Parameter{Name: "a", Converter: counting})
	form.Perms = Permissions{"admin"}
	cmd := NewCommand("test", "/test", form)

	matches := cmd.Matches(newTestCaller(), []string{"x"})
	if len(matches) != 1 {
		t.Fatalf("expected one match, got %d", len(matches))
	}
	if matches[0].Permitted {
		t.Errorf("expected permission to be denied")
	}
	if converted != 0 {
		t.Errorf("conversion ran %d time(s) for a denied form", converted)
	}
}

func TestMatchesPropagatesConversionFailure(t *testing.T) {
	form := echoForm(
		Parameter{Name: "a", Converter: converter.Int},
		Parameter{Name: "b", Converter: converter.Int},
	)
	cmd := NewCommand("test", "/test", form)

	matches := cmd.Matches(newTestCaller(), []string{"1", "x"})
	if len(matches) != 1 {
		t.Fatalf("expected one match, got %d", len(matches))
	}
	if matches[0].Err == nil {
		t.Fatalf("expected a conversion error")
	}
	if matches[0].Args != nil {
		t.Errorf("expected nil args alongside a conversion error")
	}
}

func TestMatchesVarargArity(t *testing.T) {
	form := echoForm(
		Parameter{Name: "first", Converter: converter.String},
		Parameter{Name: "rest", Converter: converter.Int, Vararg: true},
	)
	cmd := NewCommand("test", "/test", form)
	caller := newTestCaller()

	for _, tokens := range [][]string{
		{"x"},
		{"x", "1"},
		{"x", "1", "2", "3"},
	} {
		matches := cmd.Matches(caller, tokens)
		if len(matches) != 1 {
			t.Fatalf("expected vararg form to match %d token(s)", len(tokens))
		}
		if matches[0].Err != nil {
			t.Fatalf("unexpected conversion error for %q: %v", tokens, matches[0].Err)
		}
		if len(matches[0].Args) != len(tokens) {
			t.Errorf("expected %d converted args, got %d", len(tokens), len(matches[0].Args))
		}
	}

	if matches := cmd.Matches(caller, nil); len(matches) != 0 {
		t.Errorf("vararg form requires its fixed leading parameter")
	}

	matches := cmd.Matches(caller, []string{"x", "1", "nope"})
	if len(matches) != 1 || matches[0].Err == nil {
		t.Errorf("expected the trailing vararg converter failure to surface")
	}
}

func TestValidatorChainStopsAtFirstFailure(t *testing.T) {
	boom := errors.New("first failure")
	ran := false
	v := NewValidator(
		func(ctx *Context, args []any) error { return nil },
		func(ctx *Context, args []any) error { return boom },
		func(ctx *Context, args []any) error { ran = true; return nil },
	)

	if err := v.Validate(nil, nil); !errors.Is(err, boom) {
		t.Errorf("expected the first failing step's error, got %v", err)
	}
	if ran {
		t.Errorf("steps after the first failure must not run")
	}
}
