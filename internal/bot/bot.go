// Package bot serves card draws over a Discord chat command.
package bot

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"unicode"

	"github.com/arcanaland/cardsmith/internal/draw"
	"github.com/bwmarrin/discordgo"
)

const (
	// MaxDraw is the largest count honored; larger requests draw one card
	MaxDraw = 5

	replyDraw   = "Here's your draw"
	replyFailed = "Sorry, the draw failed."
)

// Drawer produces a sheet of k random cards and returns its path
type Drawer interface {
	Draw(k int) (string, []string, error)
}

// Sender is the part of the Discord session used to reply
type Sender interface {
	ChannelMessageSend(channelID string, content string, options ...discordgo.RequestOption) (*discordgo.Message, error)
	ChannelFileSend(channelID, name string, r io.Reader, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

var _ Sender = (*discordgo.Session)(nil)

// Bot answers the draw command with an image of randomly drawn cards
type Bot struct {
	session *discordgo.Session
	drawer  Drawer
	command string
	logger  *slog.Logger
}

// New creates a bot authenticated with token. Nothing connects until Run.
func New(token string, drawer Drawer, command string, logger *slog.Logger) (*Bot, error) {
	session, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, fmt.Errorf("error creating discord session: %v", err)
	}
	session.Identify.Intents = discordgo.IntentsGuildMessages |
		discordgo.IntentsDirectMessages |
		discordgo.IntentMessageContent
	// one command at a time, in arrival order
	session.SyncEvents = true

	b := newBot(drawer, command, logger)
	b.session = session
	session.AddHandler(b.onReady)
	session.AddHandler(b.onMessageCreate)
	return b, nil
}

func newBot(drawer Drawer, command string, logger *slog.Logger) *Bot {
	if logger == nil {
		logger = slog.Default()
	}
	return &Bot{
		drawer:  drawer,
		command: command,
		logger:  logger.With("component", "bot"),
	}
}

// Run connects to Discord and serves commands until ctx is cancelled
func (b *Bot) Run(ctx context.Context) error {
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("error opening discord connection: %v", err)
	}
	b.logger.Info("listening", "command", b.command)

	<-ctx.Done()

	b.logger.Info("shutting down")
	return b.session.Close()
}

func (b *Bot) onReady(s *discordgo.Session, r *discordgo.Ready) {
	b.logger.Info("logged in", "user", r.User.String())
}

func (b *Bot) onMessageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author == nil || (s.State.User != nil && m.Author.ID == s.State.User.ID) {
		return
	}
	if err := b.handle(s, m.ChannelID, m.Content); err != nil {
		b.logger.Error("draw command failed", "channel", m.ChannelID, "author", m.Author.ID, "err", err)
	}
}

// handle runs the draw command for one message. Messages that are not the
// command are ignored.
func (b *Bot) handle(sender Sender, channelID, content string) error {
	if !strings.HasPrefix(content, b.command) {
		return nil
	}

	count := ParseCount(content)
	l := b.logger.With("channel", channelID, "count", count)

	path, drawn, err := b.drawer.Draw(count)
	if err != nil {
		b.reply(sender, channelID, replyFailed)
		return fmt.Errorf("error drawing cards: %w", err)
	}
	defer func() {
		if err := draw.Remove(path); err != nil {
			l.Warn("could not remove sheet", "path", path, "err", err)
		}
	}()
	l.Debug("drew cards", "cards", drawn, "sheet", path)

	if _, err := sender.ChannelMessageSend(channelID, replyDraw); err != nil {
		return fmt.Errorf("error sending reply: %w", err)
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("error opening sheet: %w", err)
	}
	defer f.Close()

	if _, err := sender.ChannelFileSend(channelID, filepath.Base(path), f); err != nil {
		return fmt.Errorf("error uploading sheet: %w", err)
	}
	l.Info("served draw")
	return nil
}

func (b *Bot) reply(sender Sender, channelID, content string) {
	if _, err := sender.ChannelMessageSend(channelID, content); err != nil {
		b.logger.Warn("could not send reply", "channel", channelID, "err", err)
	}
}

// ParseCount reads the draw count from the last word of a command.
// Anything that is not a plain number draws one card, and so does a count
// above MaxDraw or below one.
func ParseCount(content string) int {
	words := strings.Split(content, " ")
	raw := words[len(words)-1]
	if raw == "" || strings.IndexFunc(raw, func(r rune) bool { return !unicode.IsDigit(r) }) >= 0 {
		return 1
	}

	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 || n > MaxDraw {
		return 1
	}
	return n
}
