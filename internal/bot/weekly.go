package bot

import (
	"context"
	"fmt"
	"strings"
	"time"

	tg "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/BalanceBalls/duty-bot/internal/duty"
	"github.com/BalanceBalls/duty-bot/internal/generator"
	"github.com/BalanceBalls/duty-bot/internal/logger"
	"github.com/BalanceBalls/duty-bot/internal/storage"
)

// RunWeeklyReports calls Tick every interval until ctx is done.
func (b *DutyBot) RunWeeklyReports(ctx context.Context, interval time.Duration) {
	log := logger.GetFromContext(ctx)
	log.InfoContext(ctx, "weekly reports scheduled", "interval", interval)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			b.Tick(ctx)
		}
	}
}

// Tick drains the weekly totals and publishes them. Totals are gone once
// drained: a failed delivery loses that week's report.
func (b *DutyBot) Tick(ctx context.Context) {
	log := logger.GetFromContext(ctx)

	report, ok := b.tracker.SnapshotAndReset()
	if !ok {
		log.InfoContext(ctx, "no duty recorded this period, skipping report")
		return
	}

	leaderboard := b.leaderboard(report, b.now())
	log.InfoContext(ctx, "publishing weekly report", "officers", len(report.Entries))

	b.journalReport(ctx, report, leaderboard)
	b.sendText(ctx, b.cfg.ReportChatId, renderReport(leaderboard, b.cfg.Leaderboard))

	if b.cfg.GenerateFile && b.generator != nil {
		b.sendReportFile(ctx, leaderboard)
	}

	if !b.cfg.NotifyUsers {
		return
	}

	for i, entry := range report.Entries {
		row := leaderboard.Rows[i]
		b.sendText(ctx, int64(entry.UserID), fmt.Sprintf(weeklyDirectTemplate, row.Hours, row.Minutes))
	}
}

func (b *DutyBot) leaderboard(report duty.Report, generatedAt time.Time) generator.Leaderboard {
	title := weeklyHoursTitle
	if b.cfg.Leaderboard {
		title = leaderboardTitle
	}

	rows := make([]generator.Row, 0, len(report.Entries))
	for i, entry := range report.Entries {
		hours, minutes := hoursMinutes(entry.TotalSeconds)
		rows = append(rows, generator.Row{
			Rank:         i + 1,
			Name:         b.names.name(int64(entry.UserID)),
			Hours:        hours,
			Minutes:      minutes,
			TotalSeconds: entry.TotalSeconds,
		})
	}

	return generator.Leaderboard{
		Title:       title,
		GeneratedAt: generatedAt,
		Rows:        rows,
	}
}

func renderReport(leaderboard generator.Leaderboard, ranked bool) string {
	var sb strings.Builder
	sb.WriteString(leaderboard.Title)
	sb.WriteString("\n")

	for _, row := range leaderboard.Rows {
		sb.WriteString("\n")
		if ranked {
			sb.WriteString(fmt.Sprintf("%d. ", row.Rank))
		}
		sb.WriteString(fmt.Sprintf("%s: %dh %dm", row.Name, row.Hours, row.Minutes))
	}

	return sb.String()
}

func (b *DutyBot) sendReportFile(ctx context.Context, leaderboard generator.Leaderboard) {
	file, err := b.generator.Generate(leaderboard)
	if err != nil {
		logger.GetFromContext(ctx).ErrorContext(ctx, "failed to generate report file", "error", err)
		return
	}

	doc := tg.NewDocument(b.cfg.ReportChatId, tg.FileBytes{
		Name:  file.Name,
		Bytes: file.Data,
	})
	doc.Caption = reportFileCaption

	b.send(ctx, doc, b.cfg.ReportChatId)
}

func (b *DutyBot) journalReport(ctx context.Context, report duty.Report, leaderboard generator.Leaderboard) {
	ctx, cancel := context.WithTimeout(ctx, b.cfg.commandsTimeout())
	defer cancel()

	record := storage.ReportRecord{GeneratedAt: leaderboard.GeneratedAt}
	for i, entry := range report.Entries {
		record.Rows = append(record.Rows, storage.ReportRow{
			Rank:         leaderboard.Rows[i].Rank,
			UserId:       int64(entry.UserID),
			UserName:     leaderboard.Rows[i].Name,
			TotalSeconds: entry.TotalSeconds,
		})
	}

	if err := b.journal.SaveReport(ctx, record); err != nil {
		logger.GetFromContext(ctx).ErrorContext(ctx, "failed to journal weekly report", "error", err)
	}
}
