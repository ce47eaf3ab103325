package bot

import (
	"fmt"
	"strings"
	"sync"

	tg "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// directory keeps the last seen display name of every user, reports only
// carry ids.
type directory struct {
	mu    sync.RWMutex
	names map[int64]string
}

func newDirectory() *directory {
	return &directory{names: make(map[int64]string)}
}

func (d *directory) remember(user *tg.User) {
	name := displayName(user)
	if name == "" {
		return
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	d.names[user.ID] = name
}

func (d *directory) name(userId int64) string {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if name, ok := d.names[userId]; ok {
		return name
	}

	return fmt.Sprintf(unknownOfficerTitle, userId)
}

func displayName(user *tg.User) string {
	if user.UserName != "" {
		return "@" + user.UserName
	}

	return strings.TrimSpace(user.FirstName + " " + user.LastName)
}
