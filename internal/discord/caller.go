package discord

import (
	"log"
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/google/uuid"

	"github.com/John-DND/RegularCommands/internal/permission"
	"github.com/John-DND/RegularCommands/pkg/commands"
	"github.com/John-DND/RegularCommands/pkg/stylize"
)

// Caller is one Discord user issuing commands. The entity id is derived
// deterministically from the Discord user id so permission grants survive
// restarts.
type Caller struct {
	session   *discordgo.Session
	channelID string
	userID    string
	username  string
	store     *permission.Store
}

func (c *Caller) ID() commands.CallerID {
	return commands.EntityID(uuid.NewSHA1(uuid.NameSpaceOID, []byte("discord:"+c.userID)))
}

func (c *Caller) Name() string { return c.username }

func (c *Caller) HasPermission(node string) bool {
	return c.store != nil && c.store.Has(c.ID().Entity, node)
}

func (c *Caller) SendMessage(text string) {
	if _, err := c.session.ChannelMessageSend(c.channelID, text); err != nil {
		log.Printf("[ERR] Failed to send message to channel %s: %v", c.channelID, err)
	}
}

func (c *Caller) SendStyled(segments []stylize.Segment) {
	c.SendMessage(renderMarkdown(segments))
}

// renderMarkdown flattens styled segments into Discord Markdown. Colors have
// no Markdown equivalent and are dropped.
func renderMarkdown(segments []stylize.Segment) string {
	var b strings.Builder
	for _, seg := range segments {
		prefix, suffix := "", ""
		if seg.Bold {
			prefix, suffix = prefix+"**", "**"+suffix
		}
		if seg.Italic {
			prefix, suffix = prefix+"*", "*"+suffix
		}
		if seg.Underline {
			prefix, suffix = prefix+"__", "__"+suffix
		}
		if seg.Strikethrough {
			prefix, suffix = prefix+"~~", "~~"+suffix
		}
		if seg.Obfuscated {
			prefix, suffix = prefix+"||", "||"+suffix
		}
		b.WriteString(prefix)
		b.WriteString(seg.Text)
		b.WriteString(suffix)
	}
	return b.String()
}
