package bot

import (
	"context"
	"time"

	tg "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/BalanceBalls/duty-bot/internal/duty"
	"github.com/BalanceBalls/duty-bot/internal/generator"
	"github.com/BalanceBalls/duty-bot/internal/storage"
)

// BotAPI is the part of *tg.BotAPI the bot needs.
type BotAPI interface {
	Send(c tg.Chattable) (tg.Message, error)
	GetChatMember(config tg.GetChatMemberConfig) (tg.ChatMember, error)
}

type Tracker interface {
	Toggle(userID duty.UserID, now time.Time) duty.ToggleResult
	SnapshotAndReset() (duty.Report, bool)
	Session(userID duty.UserID) (duty.Session, bool)
	WeeklyTotal(userID duty.UserID) float64
}

type Journal interface {
	SaveSession(ctx context.Context, session storage.SessionRecord) error
	SaveReport(ctx context.Context, report storage.ReportRecord) error
}

type Generator interface {
	Generate(leaderboard generator.Leaderboard) (generator.Report, error)
}

type Authorizer interface {
	Authorize(ctx context.Context, userId int64) error
}
