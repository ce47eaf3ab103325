package bot

import (
	"context"
	"errors"
	"fmt"

	tg "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"golang.org/x/exp/slices"
)

var ErrNotAuthorized = errors.New("user is not allowed to go on duty")

func newAuthorizer(cfg *Config, api BotAPI) Authorizer {
	if cfg.AuthChatId == 0 {
		return allowAll{}
	}

	return &memberStatusAuthorizer{
		api:      api,
		chatId:   cfg.AuthChatId,
		statuses: cfg.AllowedStatuses,
	}
}

type allowAll struct{}

func (allowAll) Authorize(context.Context, int64) error { return nil }

// memberStatusAuthorizer allows users whose membership status in chatId is
// one of statuses.
type memberStatusAuthorizer struct {
	api      BotAPI
	chatId   int64
	statuses []string
}

func (a *memberStatusAuthorizer) Authorize(_ context.Context, userId int64) error {
	member, err := a.api.GetChatMember(tg.GetChatMemberConfig{
		ChatConfigWithUser: tg.ChatConfigWithUser{
			ChatID: a.chatId,
			UserID: userId,
		},
	})
	if err != nil {
		return fmt.Errorf("could not fetch chat member: %w", err)
	}

	if !slices.Contains(a.statuses, member.Status) {
		return fmt.Errorf("%w: member status %q", ErrNotAuthorized, member.Status)
	}

	return nil
}
