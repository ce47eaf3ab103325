package bot

import (
	"context"
	"fmt"
	"time"

	tg "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/BalanceBalls/duty-bot/internal/logger"
	"github.com/BalanceBalls/duty-bot/internal/storage"
)

// commands
const (
	startCmd  = "start"
	helpCmd   = "help"
	dutyCmd   = "duty"
	statusCmd = "status"
)

type DutyBot struct {
	cfg *Config
	api BotAPI

	tracker   Tracker
	journal   Journal
	generator Generator
	auth      Authorizer
	names     *directory

	now func() time.Time
}

// New wires the bot. A nil journal discards records, a nil generator
// disables report files.
func New(cfg *Config, api BotAPI, tracker Tracker, journal Journal, gen Generator) *DutyBot {
	if journal == nil {
		journal = storage.Nop()
	}

	return &DutyBot{
		cfg:       cfg,
		api:       api,
		tracker:   tracker,
		journal:   journal,
		generator: gen,
		auth:      newAuthorizer(cfg, api),
		names:     newDirectory(),
		now:       time.Now,
	}
}

// Serve handles updates one at a time until ctx is done or updates is closed.
func (b *DutyBot) Serve(ctx context.Context, updates tg.UpdatesChannel) {
	log := logger.GetFromContext(ctx)
	log.InfoContext(ctx, "serving updates")

	for {
		select {
		case <-ctx.Done():
			log.InfoContext(ctx, "stopped serving updates", "reason", ctx.Err())
			return
		case update, ok := <-updates:
			if !ok {
				log.InfoContext(ctx, "updates channel closed")
				return
			}
			b.HandleUpdate(ctx, update)
		}
	}
}

func (b *DutyBot) HandleUpdate(ctx context.Context, update tg.Update) {
	log := logger.GetFromContext(ctx)

	// ignore any non-Message updates
	msg := update.Message
	if msg == nil || msg.From == nil || msg.Chat == nil {
		return
	}

	if !msg.IsCommand() {
		log.DebugContext(ctx, "ignoring user input", "user_id", msg.From.ID)
		return
	}

	b.names.remember(msg.From)

	command := msg.Command()
	switch command {
	case startCmd, helpCmd:
		b.sendText(ctx, msg.Chat.ID, helpMsg)
	case dutyCmd:
		b.handleDuty(ctx, msg)
	case statusCmd:
		b.handleStatus(ctx, msg)
	default:
		log.InfoContext(ctx, "command was not recognized", "command", command)
		return
	}

	b.logActivity(ctx, msg, command)
}

// logActivity mirrors a handled command to the bot log chat, if one is set.
func (b *DutyBot) logActivity(ctx context.Context, msg *tg.Message, command string) {
	if b.cfg.BotLogChatId == 0 {
		return
	}

	chat := msg.Chat.Title
	if msg.Chat.IsPrivate() || chat == "" {
		chat = privateChatTitle
	}

	b.sendText(ctx, b.cfg.BotLogChatId, fmt.Sprintf(activityTemplate,
		b.names.name(msg.From.ID), command, chat, msg.From.ID))
}

func (b *DutyBot) reply(ctx context.Context, to *tg.Message, text string) {
	message := tg.NewMessage(to.Chat.ID, text)
	message.ReplyToMessageID = to.MessageID

	b.send(ctx, message, to.Chat.ID)
}

func (b *DutyBot) sendText(ctx context.Context, chatId int64, text string) {
	b.send(ctx, tg.NewMessage(chatId, text), chatId)
}

// send delivers c and only logs failures. State was already updated by
// the time anything is sent.
func (b *DutyBot) send(ctx context.Context, c tg.Chattable, chatId int64) {
	if _, err := b.api.Send(c); err != nil {
		logger.GetFromContext(ctx).ErrorContext(ctx, "failed to send message",
			"chat_id", chatId, "error", err)
	}
}
