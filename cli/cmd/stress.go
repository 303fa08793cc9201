package cmd

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"regexp"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/ardnew/dlog/log"
)

// Stress logs from many goroutines at once and, when the filesystem sink is
// active, verifies that every line reached the file intact.
type Stress struct {
	Goroutines int    `default:"8"      help:"Number of concurrent writers" short:"g"`
	Lines      int    `default:"1000"   help:"Lines per writer"             short:"n"`
	Tag        string `default:"stress" help:"Tag for generated lines"`
	Level      string `default:"info"   enum:"info,debug,trace" help:"Level of generated lines"`
}

var (
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Width(12)
	valueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("15"))
	passStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)
	failStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
)

// stressReport summarizes one stress run.
type stressReport struct {
	elapsed   time.Duration
	expected  int
	found     int
	malformed int
	verified  bool // false if the file sink was not active
}

func (r stressReport) ok() bool {
	return !r.verified || (r.found == r.expected && r.malformed == 0)
}

func (r stressReport) render() string {
	row := func(label, value string) string {
		return lipgloss.JoinHorizontal(lipgloss.Top,
			labelStyle.Render(label), valueStyle.Render(value))
	}

	rows := []string{
		row("expected", strconv.Itoa(r.expected)),
		row("elapsed", r.elapsed.Round(time.Microsecond).String()),
	}

	switch {
	case !r.verified:
		rows = append(rows, row("verified", "no (filesystem sink inactive)"))
	case r.ok():
		rows = append(rows,
			row("found", strconv.Itoa(r.found)),
			lipgloss.JoinHorizontal(lipgloss.Top,
				labelStyle.Render("result"), passStyle.Render("PASS")),
		)
	default:
		rows = append(rows,
			row("found", strconv.Itoa(r.found)),
			row("malformed", strconv.Itoa(r.malformed)),
			lipgloss.JoinHorizontal(lipgloss.Top,
				labelStyle.Render("result"), failStyle.Render("FAIL")),
		)
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// Run executes the stress command.
func (s *Stress) Run(
	ctx context.Context,
	logger *log.Logger,
	out io.Writer,
) error {
	if s.Goroutines < 0 || s.Lines < 0 {
		return ErrStress.
			With(slog.Int("goroutines", s.Goroutines), slog.Int("lines", s.Lines)).
			Wrap(ErrNegativeCount)
	}

	level := log.ParseLevel(s.Level)

	var report stressReport

	if logger.Enabled(level) {
		report.expected = s.Goroutines * s.Lines
	}

	start := time.Now()

	var wg sync.WaitGroup
	for g := range s.Goroutines {
		wg.Go(func() {
			id := strconv.Itoa(g)

			for i := range s.Lines {
				if ctx.Err() != nil {
					return
				}

				logger.Log(level, s.Tag, "writer ", id, " line ", strconv.Itoa(i))
			}
		})
	}
	wg.Wait()

	report.elapsed = time.Since(start)

	if logger.Sinks().Has(log.SinkFilesystem) {
		found, malformed, err := countLines(logger.Path(), s.Tag)
		if err != nil {
			return ErrStress.
				With(slog.String("file", logger.Path())).
				Wrap(err)
		}

		report.verified = true
		report.found, report.malformed = found, malformed
	}

	_, _ = fmt.Fprintln(out, report.render())

	if !report.ok() {
		return ErrStress.With(
			slog.Int("expected", report.expected),
			slog.Int("found", report.found),
			slog.Int("malformed", report.malformed),
		)
	}

	return nil
}

var stressLine = regexp.MustCompile(
	`^(INFO|DEBUG|TRACE) \| TID:[0-9]+ \| (.*) \| writer [0-9]+ line [0-9]+$`,
)

// countLines scans the log file at path for lines carrying tag. It returns
// the number of well-formed stress lines and the number of lines mentioning
// the tag that do not match the expected form.
func countLines(path, tag string) (found, malformed int, err error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, 0, err
	}
	defer f.Close()

	marker := " | " + tag + " | "

	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := sc.Text()
		if !strings.Contains(line, marker) {
			continue
		}

		if m := stressLine.FindStringSubmatch(line); m != nil && m[2] == tag {
			found++
		} else {
			malformed++
		}
	}

	return found, malformed, sc.Err()
}
