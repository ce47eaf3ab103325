package bot

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	BotToken       string `env:"BOT_TOKEN,notEmpty" validate:"required"`
	UpdatesTimeout int    `env:"UPDATES_TIMEOUT" envDefault:"60" validate:"gte=0"`

	// Seconds allowed for journal writes per command
	CommandsTimeout int `env:"COMMANDS_TIMEOUT" envDefault:"30" validate:"gt=0"`

	DutyLogChatId int64 `env:"DUTY_LOG_CHAT_ID,notEmpty" validate:"required"`
	ReportChatId  int64 `env:"REPORT_CHAT_ID"`
	BotLogChatId  int64 `env:"BOT_LOG_CHAT_ID"`

	// Members of AuthChatId with one of AllowedStatuses may go on duty.
	// Zero disables the check.
	AuthChatId      int64    `env:"AUTH_CHAT_ID"`
	AllowedStatuses []string `env:"DUTY_ALLOWED_STATUSES" envSeparator:"," envDefault:"creator,administrator,member" validate:"dive,oneof=creator administrator member restricted"`

	ReportInterval time.Duration `env:"REPORT_INTERVAL" envDefault:"168h" validate:"min=1m"`
	Leaderboard    bool          `env:"LEADERBOARD" envDefault:"true"`
	NotifyUsers    bool          `env:"NOTIFY_USERS" envDefault:"true"`
	GenerateFile   bool          `env:"GENERATE_FILE" envDefault:"false"`
	ReportFileDir  string        `env:"REPORT_FILE_DIR"`
	ReportTemplate string        `env:"REPORT_TEMPLATE" envDefault:"weekly_report.tmpl"`

	JournalDriver string `env:"JOURNAL_DRIVER" envDefault:"sqlite" validate:"oneof=sqlite postgres none"`
	JournalDsn    string `env:"JOURNAL_DSN" envDefault:"duty.sqlite" validate:"required_unless=JournalDriver none"`

	KeepAlive     bool   `env:"KEEP_ALIVE" envDefault:"true"`
	KeepAliveAddr string `env:"KEEP_ALIVE_ADDR" envDefault:":8080" validate:"required_if=KeepAlive true"`

	LogLevel  string `env:"LOG_LEVEL" envDefault:"info" validate:"oneof=debug info warn error"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text" validate:"oneof=text json"`
}

// LoadConfig reads an optional .env file and then the process environment.
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("error loading .env file: %w", err)
	}

	return ParseConfig(env.Options{})
}

func ParseConfig(opts env.Options) (*Config, error) {
	cfg := &Config{}

	if err := env.ParseWithOptions(cfg, opts); err != nil {
		return nil, fmt.Errorf("unable to parse environment variables: %w", err)
	}

	if cfg.ReportChatId == 0 {
		cfg.ReportChatId = cfg.DutyLogChatId
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func (c *Config) commandsTimeout() time.Duration {
	return time.Duration(c.CommandsTimeout) * time.Second
}
