package htmlgenerator

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BalanceBalls/duty-bot/internal/generator"
)

const DefaultTemplate = "weekly_report.tmpl"

type HtmlGenerator struct {
	reportsDir string
	tmplName   string
}

//go:embed *.tmpl
var tpls embed.FS

var _ generator.Generator = (*HtmlGenerator)(nil)

// New returns a generator rendering tmplName. When reportsDir is not empty
// every report is also written there.
func New(reportsDir string, tmplName string) *HtmlGenerator {
	if tmplName == "" {
		tmplName = DefaultTemplate
	}

	return &HtmlGenerator{
		reportsDir: reportsDir,
		tmplName:   tmplName,
	}
}

func (g *HtmlGenerator) Generate(leaderboard generator.Leaderboard) (generator.Report, error) {
	tmpl, err := template.ParseFS(tpls, g.tmplName)
	if err != nil {
		return generator.Report{}, fmt.Errorf(
			"failed to parse template file for html report: %w", err)
	}

	var buf bytes.Buffer
	if err = tmpl.ExecuteTemplate(&buf, g.tmplName, leaderboard); err != nil {
		return generator.Report{}, fmt.Errorf(
			"failed to generate an html report: %w", err)
	}

	report := generator.Report{
		Name: reportName(leaderboard),
		Data: buf.Bytes(),
	}

	if g.reportsDir == "" {
		return report, nil
	}

	if err = createDirIfNotExist(g.reportsDir); err != nil {
		return generator.Report{}, fmt.Errorf(
			"failed to create reports folder: %w", err)
	}

	path := filepath.Join(g.reportsDir, report.Name)
	if err = createFileIfNotExist(path, report.Data); err != nil {
		return generator.Report{}, fmt.Errorf(
			"failed to create html file for report: %w", err)
	}

	return report, nil
}

func reportName(leaderboard generator.Leaderboard) string {
	return "duty-report-" + leaderboard.GeneratedAt.UTC().Format("2006-01-02T150405") + ".html"
}

func createDirIfNotExist(reportsDir string) error {
	if _, err := os.Stat(reportsDir); errors.Is(err, os.ErrNotExist) {
		return os.MkdirAll(reportsDir, fs.ModePerm)
	}

	return nil
}

func createFileIfNotExist(path string, data []byte) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		if errors.Is(err, os.ErrExist) {
			return errors.New("file already exists: " + path)
		}
		return err
	}

	if _, err := f.Write(data); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}
