package bot

import (
	"context"
	"errors"
	"testing"
	"time"

	tg "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BalanceBalls/duty-bot/internal/duty"
	"github.com/BalanceBalls/duty-bot/internal/storage"
)

func TestDutyClockInAndOutFromGroup(t *testing.T) {
	env := newTestEnv(testConfig())
	ctx := context.Background()

	env.bot.HandleUpdate(ctx, commandUpdate(alice(), groupChat(), "/duty"))

	msgs := env.api.messages()
	require.Len(t, msgs, 3)
	assert.Equal(t, groupChatId, msgs[0].ChatID)
	assert.Equal(t, nowOnDutyMsg, msgs[0].Text)
	assert.Equal(t, 7, msgs[0].ReplyToMessageID)
	assert.Equal(t, dutyLogChat, msgs[1].ChatID)
	assert.Equal(t, "🟢 Clocked In\nOfficer: @alice\nClock In Time: 2024-03-04 09:00:00", msgs[1].Text)
	assert.Equal(t, int64(1), msgs[2].ChatID)
	assert.Equal(t, "🟢 You clocked in at 2024-03-04 09:00:00.", msgs[2].Text)

	env.clock.Advance(3661 * time.Second)
	env.bot.HandleUpdate(ctx, commandUpdate(alice(), groupChat(), "/duty"))

	msgs = env.api.messages()
	require.Len(t, msgs, 6)
	assert.Equal(t, nowOffDutyMsg, msgs[3].Text)
	assert.Equal(t,
		"🔴 Clocked Out\nOfficer: @alice\nClock In Time: 2024-03-04 09:00:00\nTotal Time on Duty: 1:01:01",
		msgs[4].Text)
	assert.Equal(t, "🔴 You clocked out. Time on duty: 1:01:01.", msgs[5].Text)

	assert.Equal(t, float64(3661), env.tracker.WeeklyTotal(1))

	require.Len(t, env.journal.sessions, 2)
	in, out := env.journal.sessions[0], env.journal.sessions[1]
	assert.Equal(t, storage.EventClockIn, in.Event)
	assert.Equal(t, storage.EventClockOut, out.Event)
	assert.Equal(t, in.SessionId, out.SessionId)
	assert.Equal(t, "@alice", out.UserName)
	assert.Equal(t, t0, out.ClockIn)
	assert.Equal(t, t0.Add(3661*time.Second), out.ClockOut)
	assert.Equal(t, float64(3661), out.ElapsedSeconds)
	assert.True(t, in.ClockOut.IsZero())
}

func TestDutyFromPrivateChatSkipsDirectNotification(t *testing.T) {
	env := newTestEnv(testConfig())

	env.bot.HandleUpdate(context.Background(), commandUpdate(alice(), privateChat(1), "/duty"))

	assert.Equal(t, []string{nowOnDutyMsg}, env.api.textsTo(1))
	assert.Len(t, env.api.textsTo(dutyLogChat), 1)
}

func TestDutyWithNotificationsDisabled(t *testing.T) {
	cfg := testConfig()
	cfg.NotifyUsers = false
	env := newTestEnv(cfg)

	env.bot.HandleUpdate(context.Background(), commandUpdate(alice(), groupChat(), "/duty"))

	assert.Empty(t, env.api.textsTo(1))
	assert.Len(t, env.api.messages(), 2)
}

func TestDutyUsesFullNameWithoutUsername(t *testing.T) {
	env := newTestEnv(testConfig())

	env.bot.HandleUpdate(context.Background(), commandUpdate(bob(), groupChat(), "/duty"))

	logged := env.api.textsTo(dutyLogChat)
	require.Len(t, logged, 1)
	assert.Contains(t, logged[0], "Officer: Bob Stone")
}

func TestDutyCommandWithBotMention(t *testing.T) {
	env := newTestEnv(testConfig())

	update := commandUpdate(alice(), groupChat(), "/duty@duty_bot")
	update.Message.Entities[0].Length = len("/duty@duty_bot")
	env.bot.HandleUpdate(context.Background(), update)

	_, onDuty := env.tracker.Session(1)
	assert.True(t, onDuty)
}

func TestDutyRefusedWhenMemberStatusNotAllowed(t *testing.T) {
	cfg := testConfig()
	cfg.AuthChatId = -900
	env := newTestEnv(cfg)
	env.api.member = tg.ChatMember{Status: "left"}

	env.bot.HandleUpdate(context.Background(), commandUpdate(alice(), groupChat(), "/duty"))

	assert.Equal(t, []string{notAuthorizedMsg}, env.api.textsTo(groupChatId))
	assert.Empty(t, env.api.textsTo(dutyLogChat))
	assert.Empty(t, env.journal.sessions)

	_, onDuty := env.tracker.Session(1)
	assert.False(t, onDuty)

	require.Len(t, env.api.memberReq, 1)
	assert.Equal(t, int64(-900), env.api.memberReq[0].ChatID)
	assert.Equal(t, int64(1), env.api.memberReq[0].UserID)
}

func TestDutyAllowedForAdministrator(t *testing.T) {
	cfg := testConfig()
	cfg.AuthChatId = -900
	env := newTestEnv(cfg)
	env.api.member = tg.ChatMember{Status: "administrator"}

	env.bot.HandleUpdate(context.Background(), commandUpdate(alice(), groupChat(), "/duty"))

	_, onDuty := env.tracker.Session(1)
	assert.True(t, onDuty)
}

func TestDutyRefusedWhenAuthorizationFails(t *testing.T) {
	cfg := testConfig()
	cfg.AuthChatId = -900
	env := newTestEnv(cfg)
	env.api.memberErr = errors.New("telegram is down")

	env.bot.HandleUpdate(context.Background(), commandUpdate(alice(), groupChat(), "/duty"))

	assert.Equal(t, []string{authCheckFailedMsg}, env.api.textsTo(groupChatId))
	_, onDuty := env.tracker.Session(1)
	assert.False(t, onDuty)
}

func TestDutyStateSurvivesDeliveryAndJournalFailures(t *testing.T) {
	env := newTestEnv(testConfig())
	env.api.sendErr = errors.New("chat not found")
	env.journal.err = errors.New("disk full")
	ctx := context.Background()

	env.bot.HandleUpdate(ctx, commandUpdate(alice(), groupChat(), "/duty"))
	env.clock.Advance(time.Hour)
	env.bot.HandleUpdate(ctx, commandUpdate(alice(), groupChat(), "/duty"))

	assert.Equal(t, float64(3600), env.tracker.WeeklyTotal(1))
}

func TestStatusOffAndOnDuty(t *testing.T) {
	env := newTestEnv(testConfig())
	ctx := context.Background()

	env.tracker.Record(1, 90*time.Minute)
	env.bot.HandleUpdate(ctx, commandUpdate(alice(), privateChat(1), "/status"))

	env.bot.HandleUpdate(ctx, commandUpdate(alice(), privateChat(1), "/duty"))
	env.clock.Advance(20 * time.Minute)
	env.bot.HandleUpdate(ctx, commandUpdate(alice(), privateChat(1), "/status"))

	texts := env.api.textsTo(1)
	require.Len(t, texts, 3)
	assert.Equal(t, "🔴 You are off duty.\nThis week: 1h 30m", texts[0])
	assert.Equal(t, "🟢 You are on duty since 2024-03-04 09:00:00 (0:20:00 so far).\nThis week: 1h 30m", texts[2])
}

func TestActivityIsMirroredToBotLog(t *testing.T) {
	cfg := testConfig()
	cfg.BotLogChatId = -300
	env := newTestEnv(cfg)

	env.bot.HandleUpdate(context.Background(), commandUpdate(alice(), groupChat(), "/duty"))
	env.bot.HandleUpdate(context.Background(), commandUpdate(bob(), privateChat(2), "/help"))

	logged := env.api.textsTo(-300)
	require.Len(t, logged, 2)
	assert.Equal(t, "📌 Bot Activity Log\nUser: @alice\nCommand: /duty\nChat: Precinct\nUser ID: 1", logged[0])
	assert.Equal(t, "📌 Bot Activity Log\nUser: Bob Stone\nCommand: /help\nChat: private chat\nUser ID: 2", logged[1])
}

func TestHelpAndStart(t *testing.T) {
	env := newTestEnv(testConfig())

	env.bot.HandleUpdate(context.Background(), commandUpdate(alice(), privateChat(1), "/start"))
	env.bot.HandleUpdate(context.Background(), commandUpdate(alice(), privateChat(1), "/help"))

	assert.Equal(t, []string{helpMsg, helpMsg}, env.api.textsTo(1))
}

func TestIgnoredUpdates(t *testing.T) {
	env := newTestEnv(testConfig())
	ctx := context.Background()

	env.bot.HandleUpdate(ctx, tg.Update{})
	env.bot.HandleUpdate(ctx, commandUpdate(alice(), groupChat(), "/unknown"))
	env.bot.HandleUpdate(ctx, tg.Update{Message: &tg.Message{
		From: alice(),
		Chat: groupChat(),
		Text: "going on duty now",
	}})

	assert.Zero(t, env.api.sentCount())
	assert.Zero(t, env.tracker.OnDuty())
}

func TestServeProcessesUntilChannelCloses(t *testing.T) {
	env := newTestEnv(testConfig())

	updates := make(chan tg.Update, 3)
	updates <- commandUpdate(alice(), groupChat(), "/duty")
	updates <- commandUpdate(bob(), groupChat(), "/duty")
	updates <- commandUpdate(alice(), groupChat(), "/duty")
	close(updates)

	env.bot.Serve(context.Background(), updates)

	_, aliceOn := env.tracker.Session(1)
	_, bobOn := env.tracker.Session(duty.UserID(2))
	assert.False(t, aliceOn)
	assert.True(t, bobOn)
}

func TestServeStopsOnCancel(t *testing.T) {
	env := newTestEnv(testConfig())
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		env.bot.Serve(ctx, make(chan tg.Update))
		close(done)
	}()

	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Serve did not return after cancel")
	}
}
