// Package console runs the framework behind an interactive readline REPL.
// Lines are treated as commands (with or without a leading slash), tab
// completion is wired to the completion engine and styled output is rendered
// as ANSI colors.
package console

import (
	"fmt"
	"strings"

	"github.com/ergochat/readline"

	"github.com/John-DND/RegularCommands/pkg/commands"
	"github.com/John-DND/RegularCommands/pkg/stylize"
)

// Caller is the single interactive console sender. It holds every
// permission.
type Caller struct{}

func (c *Caller) ID() commands.CallerID { return commands.ConsoleID() }

func (c *Caller) Name() string { return "CONSOLE" }

func (c *Caller) HasPermission(node string) bool { return true }

func (c *Caller) SendMessage(text string) { fmt.Println(text) }

func (c *Caller) SendStyled(segments []stylize.Segment) { fmt.Println(Render(segments)) }

// Host reads lines from the terminal and feeds them through the manager.
type Host struct {
	manager *commands.Manager
	caller  *Caller
	rl      *readline.Instance
}

// New builds a console host over the manager.
func New(manager *commands.Manager) (*Host, error) {
	h := &Host{manager: manager, caller: &Caller{}}
	rl, err := readline.NewFromConfig(&readline.Config{
		Prompt:       "> ",
		AutoComplete: &completer{host: h},
	})
	if err != nil {
		return nil, fmt.Errorf("init readline: %w", err)
	}
	h.rl = rl
	return h, nil
}

// Caller returns the console caller.
func (h *Host) Caller() commands.Caller { return h.caller }

// Run reads lines until EOF or interrupt. Each line is dispatched as one
// invocation; the first field names the command and the rest are its raw
// arguments.
func (h *Host) Run() error {
	defer h.rl.Close()
	for {
		line, err := h.rl.ReadLine()
		if err != nil {
			// Ctrl+C and Ctrl+D both end the session.
			return nil
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		fields := strings.Fields(strings.TrimPrefix(line, "/"))
		h.manager.Execute(h.caller, fields[0], fields[1:])
	}
}

// completer adapts the framework's completion engine to readline. The first
// field completes against registered command names; later fields go through
// the manager's completion entry point.
type completer struct {
	host *Host
}

func (c *completer) Do(line []rune, pos int) ([][]rune, int) {
	text := strings.TrimPrefix(string(line[:pos]), "/")

	fields := strings.Fields(text)
	if strings.HasSuffix(text, " ") || len(fields) == 0 {
		fields = append(fields, "")
	}
	partial := fields[len(fields)-1]

	var candidates []string
	if len(fields) == 1 {
		for _, cmd := range c.host.manager.Commands() {
			if strings.HasPrefix(cmd.Name(), partial) {
				candidates = append(candidates, cmd.Name())
			}
		}
	} else {
		candidates = c.host.manager.Complete(c.host.caller, fields[0], fields[1:])
	}

	completions := make([][]rune, 0, len(candidates))
	for _, cand := range candidates {
		completions = append(completions, []rune(strings.TrimPrefix(cand, partial)))
	}
	return completions, len([]rune(partial))
}
