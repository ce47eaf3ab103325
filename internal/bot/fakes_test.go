package bot

import (
	"context"
	"strings"
	"sync"
	"time"

	tg "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/BalanceBalls/duty-bot/internal/duty"
	"github.com/BalanceBalls/duty-bot/internal/generator"
	"github.com/BalanceBalls/duty-bot/internal/storage"
)

const (
	dutyLogChat int64 = -100
	reportChat  int64 = -200
	groupChatId int64 = -500
)

var t0 = time.Date(2024, 3, 4, 9, 0, 0, 0, time.UTC)

type fakeAPI struct {
	mu        sync.Mutex
	sent      []tg.Chattable
	sendErr   error
	member    tg.ChatMember
	memberErr error
	memberReq []tg.GetChatMemberConfig
}

func (f *fakeAPI) Send(c tg.Chattable) (tg.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.sent = append(f.sent, c)
	return tg.Message{}, f.sendErr
}

func (f *fakeAPI) GetChatMember(config tg.GetChatMemberConfig) (tg.ChatMember, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.memberReq = append(f.memberReq, config)
	return f.member, f.memberErr
}

func (f *fakeAPI) messages() []tg.MessageConfig {
	f.mu.Lock()
	defer f.mu.Unlock()

	var result []tg.MessageConfig
	for _, c := range f.sent {
		if m, ok := c.(tg.MessageConfig); ok {
			result = append(result, m)
		}
	}
	return result
}

func (f *fakeAPI) textsTo(chatId int64) []string {
	var result []string
	for _, m := range f.messages() {
		if m.ChatID == chatId {
			result = append(result, m.Text)
		}
	}
	return result
}

func (f *fakeAPI) documents() []tg.DocumentConfig {
	f.mu.Lock()
	defer f.mu.Unlock()

	var result []tg.DocumentConfig
	for _, c := range f.sent {
		if d, ok := c.(tg.DocumentConfig); ok {
			result = append(result, d)
		}
	}
	return result
}

func (f *fakeAPI) sentCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()

	return len(f.sent)
}

type fakeJournal struct {
	mu       sync.Mutex
	sessions []storage.SessionRecord
	reports  []storage.ReportRecord
	err      error
}

func (j *fakeJournal) SaveSession(_ context.Context, session storage.SessionRecord) error {
	j.mu.Lock()
	defer j.mu.Unlock()

	j.sessions = append(j.sessions, session)
	return j.err
}

func (j *fakeJournal) SaveReport(_ context.Context, report storage.ReportRecord) error {
	j.mu.Lock()
	defer j.mu.Unlock()

	j.reports = append(j.reports, report)
	return j.err
}

type fakeGenerator struct {
	got []generator.Leaderboard
	err error
}

func (g *fakeGenerator) Generate(leaderboard generator.Leaderboard) (generator.Report, error) {
	g.got = append(g.got, leaderboard)
	return generator.Report{Name: "report.html", Data: []byte("<html></html>")}, g.err
}

type testClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *testClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

type testEnv struct {
	bot     *DutyBot
	api     *fakeAPI
	journal *fakeJournal
	tracker *duty.Tracker
	clock   *testClock
}

func testConfig() *Config {
	return &Config{
		DutyLogChatId:   dutyLogChat,
		ReportChatId:    reportChat,
		AllowedStatuses: []string{"creator", "administrator", "member"},
		Leaderboard:     true,
		NotifyUsers:     true,
		CommandsTimeout: 5,
	}
}

func newTestEnv(cfg *Config) *testEnv {
	env := &testEnv{
		api:     &fakeAPI{},
		journal: &fakeJournal{},
		tracker: duty.NewTracker(),
		clock:   &testClock{now: t0},
	}

	env.bot = New(cfg, env.api, env.tracker, env.journal, nil)
	env.bot.now = env.clock.Now
	return env
}

func groupChat() *tg.Chat {
	return &tg.Chat{ID: groupChatId, Type: "group", Title: "Precinct"}
}

func privateChat(userId int64) *tg.Chat {
	return &tg.Chat{ID: userId, Type: "private"}
}

func commandUpdate(user *tg.User, chat *tg.Chat, text string) tg.Update {
	cmdLen := len(text)
	if i := strings.IndexByte(text, ' '); i >= 0 {
		cmdLen = i
	}

	return tg.Update{
		Message: &tg.Message{
			MessageID: 7,
			From:      user,
			Chat:      chat,
			Text:      text,
			Entities:  []tg.MessageEntity{{Type: "bot_command", Offset: 0, Length: cmdLen}},
		},
	}
}

func alice() *tg.User { return &tg.User{ID: 1, UserName: "alice", FirstName: "Alice"} }
func bob() *tg.User   { return &tg.User{ID: 2, FirstName: "Bob", LastName: "Stone"} }
