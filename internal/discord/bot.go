// Package discord bridges the framework to Discord chat: messages carrying
// the configured prefix become command invocations, message authors become
// entity callers and styled segments are rendered as Markdown.
package discord

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/John-DND/RegularCommands/internal/config"
	"github.com/John-DND/RegularCommands/internal/game"
	"github.com/John-DND/RegularCommands/internal/permission"
	"github.com/John-DND/RegularCommands/pkg/commands"
)

// Bot is the Discord host.
type Bot struct {
	dg      *discordgo.Session
	manager *commands.Manager
	store   *permission.Store
	world   *game.World
	cfg     *config.Config
}

// StartBot connects to Discord and blocks until the context is canceled.
func StartBot(ctx context.Context, cfg *config.Config, manager *commands.Manager, store *permission.Store, world *game.World) error {
	b := &Bot{manager: manager, store: store, world: world, cfg: cfg}

	dg, err := discordgo.New("Bot " + cfg.DiscordToken)
	if err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}
	b.dg = dg

	dg.Identify.Intents = discordgo.IntentsGuilds | discordgo.IntentsGuildMessages | discordgo.IntentMessageContent
	dg.AddHandler(b.onReady)
	dg.AddHandler(b.onMessageCreate)

	if err := dg.Open(); err != nil {
		return fmt.Errorf("failed to open Discord session: %w", err)
	}
	defer dg.Close()

	<-ctx.Done()
	log.Println("[INFO] Shutdown signal received. Closing Discord session...")
	return nil
}

func (b *Bot) onReady(s *discordgo.Session, r *discordgo.Ready) {
	log.Printf("[INFO] Logged in as %s, command prefix '%s'", r.User.Username, b.cfg.CommandPrefix)
}

// onMessageCreate turns a prefixed chat message into one invocation. The
// author joins the world on first command so tp/give/kill have something to
// act on.
func (b *Bot) onMessageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author == nil || m.Author.Bot {
		return
	}
	content := m.Content
	if !strings.HasPrefix(content, b.cfg.CommandPrefix) {
		return
	}

	fields := strings.Fields(strings.TrimPrefix(content, b.cfg.CommandPrefix))
	if len(fields) == 0 {
		return
	}

	caller := b.callerFor(s, m)
	// Broadcasts go to the channel the command came from.
	b.world.SetBroadcast(func(text string) {
		if _, err := s.ChannelMessageSend(m.ChannelID, text); err != nil {
			log.Printf("[ERR] Failed to broadcast to channel %s: %v", m.ChannelID, err)
		}
	})
	b.world.AddPlayerWithID(caller.Name(), caller.ID().Entity)

	b.manager.Execute(caller, fields[0], fields[1:])
}

func (b *Bot) callerFor(s *discordgo.Session, m *discordgo.MessageCreate) *Caller {
	return &Caller{
		session:   s,
		channelID: m.ChannelID,
		userID:    m.Author.ID,
		username:  m.Author.Username,
		store:     b.store,
	}
}
