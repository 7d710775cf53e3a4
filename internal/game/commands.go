package game

import (
	"fmt"
	"strings"

	"github.com/John-DND/RegularCommands/internal/permission"
	"github.com/John-DND/RegularCommands/pkg/commands"
	"github.com/John-DND/RegularCommands/pkg/converter"
	"github.com/John-DND/RegularCommands/pkg/stylize"
)

// RegisterAll registers the demonstration command set with the manager. The
// permission store may be nil, in which case the grant/revoke commands are
// not registered. Middlewares are applied to every form.
func RegisterAll(m *commands.Manager, world *World, catalog *Catalog, store *permission.Store, mws ...commands.Middleware) {
	registerSay(m, world, mws)
	registerTp(m, world, mws)
	registerGive(m, world, catalog, mws)
	registerKill(m, world, mws)
	registerHelp(m, mws)
	if store != nil {
		registerGrants(m, world, store, mws)
	}
}

func registerSay(m *commands.Manager, world *World, mws []commands.Middleware) {
	form := &commands.FuncForm{
		Params: []commands.Parameter{
			{Name: "message", Converter: converter.String},
			{Name: "more", Converter: converter.String, Vararg: true},
		},
		Run: func(ctx *commands.Context, args []any) string {
			words := make([]string, len(args))
			for i, a := range args {
				words[i] = a.(string)
			}
			world.Broadcast(fmt.Sprintf("[%s] %s", ctx.Caller().Name(), strings.Join(words, " ")))
			return ""
		},
	}
	m.Register(commands.NewCommand("say", "/say <message>",
		commands.Apply(form, append(mws, commands.WithExecutionLog("say"))...)))
}

func registerTp(m *commands.Manager, world *World, mws []commands.Middleware) {
	form := &commands.FuncForm{
		Params: []commands.Parameter{
			{Name: "player1", Converter: converter.String},
			{Name: "player2", Converter: converter.String},
		},
		Stylized: true,
		Complete: playerCompleter(world),
		Checks: commands.NewValidator(
			playerOnline(world, 0),
			playerOnline(world, 1),
			func(ctx *commands.Context, args []any) error {
				if strings.EqualFold(args[0].(string), args[1].(string)) {
					return fmt.Errorf("cannot teleport '%s' to themselves", args[0])
				}
				return nil
			},
		),
		Run: func(ctx *commands.Context, args []any) string {
			name, dest := args[0].(string), args[1].(string)
			x, y, z, ok := world.Teleport(name, dest)
			if !ok {
				return offlineMessage(name)
			}
			return fmt.Sprintf(">green{Teleported %s to %s at (%.2f, %.2f, %.2f).}",
				stylize.Escape(name), stylize.Escape(dest), x, y, z)
		},
	}
	m.Register(commands.NewCommand("tp", "/tp <player1> <player2>",
		commands.Apply(form, append(mws, commands.WithExecutionLog("tp"))...)))
}

func registerGive(m *commands.Manager, world *World, catalog *Catalog, mws []commands.Middleware) {
	params := func(withCount bool) []commands.Parameter {
		ps := []commands.Parameter{
			{Name: "player", Converter: converter.String},
			{Name: "item", Converter: catalog.Converter(), Options: catalog.Names()},
		}
		if withCount {
			ps = append(ps, commands.Parameter{
				Name: "count", Converter: converter.Int, Options: []string{"1", "16", "32", "64"},
			})
		}
		return ps
	}

	complete := func(ctx *commands.Context, form commands.Form, tokens []string) []string {
		if len(tokens) == 1 {
			return playerCompleter(world)(ctx, form, tokens)
		}
		return commands.ParameterCompleter(ctx, form, tokens)
	}

	run := func(ctx *commands.Context, args []any) string {
		target := args[0].(string)
		item := args[1].(Item)
		count := 1
		if len(args) > 2 {
			count = args[2].(int)
		}
		if !world.Give(target, item.Name, count) {
			return offlineMessage(target)
		}
		return fmt.Sprintf(">green{Gave %d x %s to %s.}", count, item.Name, stylize.Escape(target))
	}

	full := &commands.FuncForm{
		Params:   params(true),
		Stylized: true,
		Complete: complete,
		Checks: commands.NewValidator(
			playerOnline(world, 0),
			func(ctx *commands.Context, args []any) error {
				item := args[1].(Item)
				count := args[2].(int)
				if count < 1 || count > item.MaxStack {
					return fmt.Errorf("count must be between 1 and %d for %s", item.MaxStack, item.Name)
				}
				return nil
			},
		),
		Run: run,
	}
	single := &commands.FuncForm{
		Params:   params(false),
		Stylized: true,
		Complete: complete,
		Checks:   commands.NewValidator(playerOnline(world, 0)),
		Run:      run,
	}

	m.Register(commands.NewCommand("give", "/give <player> <item> [count]",
		commands.Apply(full, append(mws, commands.WithExecutionLog("give"))...),
		commands.Apply(single, append(mws, commands.WithExecutionLog("give"))...)))
}

func registerKill(m *commands.Manager, world *World, mws []commands.Middleware) {
	self := &commands.FuncForm{
		Stylized: true,
		Checks: commands.NewValidator(func(ctx *commands.Context, args []any) error {
			if ctx.Caller().ID().Category != commands.CategoryEntity {
				return fmt.Errorf("only players may kill themselves")
			}
			if world.PlayerByName(ctx.Caller().Name()) == nil {
				return fmt.Errorf("'%s' is not logged in", ctx.Caller().Name())
			}
			return nil
		}),
		Run: func(ctx *commands.Context, args []any) string {
			name := ctx.Caller().Name()
			if !world.Kill(name) {
				return offlineMessage(name)
			}
			world.Broadcast(fmt.Sprintf("%s died.", name))
			return ">gray{You died.}"
		},
	}
	other := &commands.FuncForm{
		Params: []commands.Parameter{
			{Name: "player", Converter: converter.String},
		},
		Perms:    commands.Permissions{"admin"},
		Stylized: true,
		Complete: playerCompleter(world),
		Checks:   commands.NewValidator(playerOnline(world, 0)),
		Run: func(ctx *commands.Context, args []any) string {
			name := args[0].(string)
			if !world.Kill(name) {
				return offlineMessage(name)
			}
			world.Broadcast(fmt.Sprintf("%s died.", name))
			return fmt.Sprintf(">gray{Killed %s.}", stylize.Escape(name))
		},
	}
	m.Register(commands.NewCommand("kill", "/kill [player]",
		commands.Apply(self, append(mws, commands.WithExecutionLog("kill"))...),
		commands.Apply(other, append(mws, commands.WithExecutionLog("kill"))...)))
}

func registerHelp(m *commands.Manager, mws []commands.Middleware) {
	list := &commands.FuncForm{
		Stylized: true,
		Run: func(ctx *commands.Context, args []any) string {
			var b strings.Builder
			b.WriteString(">gold{Available commands:}\n")
			for _, cmd := range ctx.Manager().Commands() {
				fmt.Fprintf(&b, ">yellow{%s}: %s\n", cmd.Name(), stylize.Escape(cmd.Usage()))
			}
			return strings.TrimRight(b.String(), "\n")
		},
	}
	one := &commands.FuncForm{
		Params: []commands.Parameter{
			{Name: "command", Converter: converter.String},
		},
		Stylized: true,
		Complete: func(ctx *commands.Context, form commands.Form, tokens []string) []string {
			partial := tokens[len(tokens)-1]
			var names []string
			for _, cmd := range ctx.Manager().Commands() {
				if strings.HasPrefix(cmd.Name(), partial) {
					names = append(names, cmd.Name())
				}
			}
			return names
		},
		Run: func(ctx *commands.Context, args []any) string {
			name := args[0].(string)
			cmd := ctx.Manager().Lookup(name)
			if cmd == nil {
				return fmt.Sprintf(">red{Unknown command '%s'.}", stylize.Escape(name))
			}
			return fmt.Sprintf(">yellow{%s}: %s", cmd.Name(), stylize.Escape(cmd.Usage()))
		},
	}
	m.Register(commands.NewCommand("help", "/help [command]",
		commands.Apply(list, mws...),
		commands.Apply(one, mws...)))
}

func registerGrants(m *commands.Manager, world *World, store *permission.Store, mws []commands.Middleware) {
	grant := &commands.FuncForm{
		Params: []commands.Parameter{
			{Name: "player", Converter: converter.String},
			{Name: "node", Converter: converter.String, Options: []string{"admin"}},
		},
		Perms:    commands.Permissions{"admin"},
		Stylized: true,
		Complete: firstSlotPlayers(world),
		Checks:   commands.NewValidator(playerOnline(world, 0)),
		Run: func(ctx *commands.Context, args []any) string {
			name, node := args[0].(string), args[1].(string)
			p := world.PlayerByName(name)
			if p == nil {
				return offlineMessage(name)
			}
			if err := store.Grant(p.ID, node); err != nil {
				ctx.Manager().Logger().Printf("[ERR] Failed to persist grant for %s: %v", p.ID, err)
				return ">red{Could not save the grant.}"
			}
			return fmt.Sprintf(">green{Granted '%s' to %s.}", stylize.Escape(node), stylize.Escape(name))
		},
	}
	m.Register(commands.NewCommand("grant", "/grant <player> <node>",
		commands.Apply(grant, append(mws, commands.WithExecutionLog("grant"))...)))

	revoke := &commands.FuncForm{
		Params: []commands.Parameter{
			{Name: "player", Converter: converter.String},
			{Name: "node", Converter: converter.String},
		},
		Perms:    commands.Permissions{"admin"},
		Stylized: true,
		Complete: firstSlotPlayers(world),
		Checks:   commands.NewValidator(playerOnline(world, 0)),
		Run: func(ctx *commands.Context, args []any) string {
			name, node := args[0].(string), args[1].(string)
			p := world.PlayerByName(name)
			if p == nil {
				return offlineMessage(name)
			}
			if err := store.Revoke(p.ID, node); err != nil {
				ctx.Manager().Logger().Printf("[ERR] Failed to persist revoke for %s: %v", p.ID, err)
				return ">red{Could not save the revoke.}"
			}
			return fmt.Sprintf(">green{Revoked '%s' from %s.}", stylize.Escape(node), stylize.Escape(name))
		},
	}
	m.Register(commands.NewCommand("revoke", "/revoke <player> <node>",
		commands.Apply(revoke, append(mws, commands.WithExecutionLog("revoke"))...)))

	perms := &commands.FuncForm{
		Params: []commands.Parameter{
			{Name: "player", Converter: converter.String},
		},
		Perms:    commands.Permissions{"admin"},
		Stylized: true,
		Complete: playerCompleter(world),
		Checks:   commands.NewValidator(playerOnline(world, 0)),
		Run: func(ctx *commands.Context, args []any) string {
			name := args[0].(string)
			p := world.PlayerByName(name)
			if p == nil {
				return offlineMessage(name)
			}
			nodes, err := store.Nodes(p.ID)
			if err != nil {
				ctx.Manager().Logger().Printf("[ERR] Failed to read permissions for %s: %v", p.ID, err)
				return ">red{Could not read the permissions.}"
			}
			if len(nodes) == 0 {
				return fmt.Sprintf(">gray{%s holds no permissions.}", stylize.Escape(name))
			}
			return fmt.Sprintf(">yellow{%s}: %s", stylize.Escape(name), stylize.Escape(strings.Join(nodes, ", ")))
		},
	}
	m.Register(commands.NewCommand("perms", "/perms <player>",
		commands.Apply(perms, append(mws, commands.WithExecutionLog("perms"))...)))
}

// offlineMessage covers the window between validation and execution in which
// the target may have disconnected.
func offlineMessage(name string) string {
	return fmt.Sprintf(">red{'%s' is not logged in.}", stylize.Escape(name))
}

// playerCompleter completes connected player names by prefix.
func playerCompleter(world *World) commands.Completer {
	return func(ctx *commands.Context, form commands.Form, tokens []string) []string {
		partial := tokens[len(tokens)-1]
		var names []string
		for _, name := range world.PlayerNames() {
			if strings.HasPrefix(name, partial) {
				names = append(names, name)
			}
		}
		return names
	}
}

// firstSlotPlayers completes player names for the first slot and falls back
// to declared options for the rest.
func firstSlotPlayers(world *World) commands.Completer {
	return func(ctx *commands.Context, form commands.Form, tokens []string) []string {
		if len(tokens) == 1 {
			return playerCompleter(world)(ctx, form, tokens)
		}
		return commands.ParameterCompleter(ctx, form, tokens)
	}
}

// playerOnline fails when the string argument at index names a player who is
// not logged in.
func playerOnline(world *World, index int) commands.ValidationStep {
	return func(ctx *commands.Context, args []any) error {
		name := args[index].(string)
		if world.PlayerByName(name) == nil {
			return fmt.Errorf("'%s' is not logged in", name)
		}
		return nil
	}
}
