package bot

import (
	"context"
	"errors"
	"fmt"

	tg "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/BalanceBalls/duty-bot/internal/duty"
	"github.com/BalanceBalls/duty-bot/internal/logger"
	"github.com/BalanceBalls/duty-bot/internal/storage"
)

func (b *DutyBot) handleDuty(ctx context.Context, msg *tg.Message) {
	log := logger.GetFromContext(ctx)
	userId := msg.From.ID

	if err := b.auth.Authorize(ctx, userId); err != nil {
		log.WarnContext(ctx, "duty toggle refused", "user_id", userId, "error", err)

		if errors.Is(err, ErrNotAuthorized) {
			b.reply(ctx, msg, notAuthorizedMsg)
		} else {
			b.reply(ctx, msg, authCheckFailedMsg)
		}
		return
	}

	result := b.tracker.Toggle(duty.UserID(userId), b.now())
	officer := b.names.name(userId)
	clockIn := formatClockTime(result.Session.ClockIn)

	log.InfoContext(ctx, "duty toggled",
		"user_id", userId,
		"transition", result.Transition.String(),
		"session_id", result.Session.ID,
		"elapsed", result.Elapsed)

	var ack, post, direct string
	switch result.Transition {
	case duty.ClockedIn:
		ack = nowOnDutyMsg
		post = fmt.Sprintf(clockedInTemplate, officer, clockIn)
		direct = fmt.Sprintf(clockedInDirectTemplate, clockIn)
	case duty.ClockedOut:
		elapsed := formatElapsed(result.Elapsed)
		ack = nowOffDutyMsg
		post = fmt.Sprintf(clockedOutTemplate, officer, clockIn, elapsed)
		direct = fmt.Sprintf(clockedOutDirectTemplate, elapsed)
	}

	b.reply(ctx, msg, ack)
	b.sendText(ctx, b.cfg.DutyLogChatId, post)

	// a private chat with the bot already is the direct channel
	if b.cfg.NotifyUsers && !msg.Chat.IsPrivate() {
		b.sendText(ctx, userId, direct)
	}

	b.journalToggle(ctx, officer, result)
}

func (b *DutyBot) journalToggle(ctx context.Context, officer string, result duty.ToggleResult) {
	ctx, cancel := context.WithTimeout(ctx, b.cfg.commandsTimeout())
	defer cancel()

	record := storage.SessionRecord{
		SessionId: result.Session.ID,
		Event:     storage.EventClockIn,
		UserId:    int64(result.Session.UserID),
		UserName:  officer,
		ClockIn:   result.Session.ClockIn,
	}

	if result.Transition == duty.ClockedOut {
		record.Event = storage.EventClockOut
		record.ClockOut = result.ClockOut
		record.ElapsedSeconds = result.Elapsed.Seconds()
	}

	if err := b.journal.SaveSession(ctx, record); err != nil {
		logger.GetFromContext(ctx).ErrorContext(ctx, "failed to journal duty session",
			"session_id", result.Session.ID, "error", err)
	}
}

func (b *DutyBot) handleStatus(ctx context.Context, msg *tg.Message) {
	userId := duty.UserID(msg.From.ID)
	hours, minutes := hoursMinutes(b.tracker.WeeklyTotal(userId))

	session, onDuty := b.tracker.Session(userId)
	if !onDuty {
		b.reply(ctx, msg, fmt.Sprintf(statusOffDutyTemplate, hours, minutes))
		return
	}

	soFar := formatElapsed(b.now().Sub(session.ClockIn))
	b.reply(ctx, msg, fmt.Sprintf(statusOnDutyTemplate,
		formatClockTime(session.ClockIn), soFar, hours, minutes))
}
