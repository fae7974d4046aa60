package ui

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gifsaver/pkg/models"
)

const (
	ProgressBar   = "█"
	ProgressEmpty = "░"
	barWidth      = 20
)

// ExportProgress prints one line per item of an export run
type ExportProgress struct {
	term      *Terminal
	query     string
	total     int
	saved     int
	bytes     int64
	startTime time.Time
	now       func() time.Time
}

// NewExportProgress creates a progress printer writing to t, or to stdout
// when t is nil
func NewExportProgress(t *Terminal) *ExportProgress {
	if t == nil {
		t = NewTerminal(os.Stdout)
	}
	return &ExportProgress{term: t, now: time.Now}
}

// Start announces the run
func (p *ExportProgress) Start(query string, total int) {
	p.query = query
	p.total = total
	p.saved = 0
	p.bytes = 0
	p.startTime = p.now()

	p.term.PrintHighlight(fmt.Sprintf("Exporting top %d results for %q", total, query))
}

// ItemStarted prints the item about to be downloaded
func (p *ExportProgress) ItemStarted(index int, name string, gif models.GIF) {
	title := gif.Title
	if title == "" {
		title = gif.ID
	}
	p.term.Printf("%s %s %s %s\n",
		p.term.Cyan(Bar(p.saved, p.total, barWidth)),
		p.term.Yellow(name),
		p.term.Dim("["+ratingLabel(gif.Rating)+"]"),
		truncate(title, 50),
	)
}

// ItemDone records a saved item
func (p *ExportProgress) ItemDone(index int, name string, size int64) {
	p.saved++
	p.bytes += size
	p.term.Printf("  %s %s %s\n", p.term.Green("✓"), name, p.term.Dim(FormatBytes(size)))
}

// ItemFailed reports the item that aborted the run
func (p *ExportProgress) ItemFailed(index int, name string, err error) {
	p.term.Printf("  %s %s %s\n", p.term.Red("✗"), name, p.term.Red(err.Error()))
}

// Finish prints the summary line
func (p *ExportProgress) Finish(manifestPath string, saved int) {
	elapsed := p.now().Sub(p.startTime)
	p.term.PrintSuccess(fmt.Sprintf("Saved %d of %d GIFs (%s) in %s",
		saved, p.total, FormatBytes(p.bytes), FormatDuration(elapsed)))
	p.term.PrintInfo("Manifest", manifestPath)
}

// Bar returns a progress bar of width cells for done out of total
func Bar(done, total, width int) string {
	filled := 0
	if total > 0 {
		filled = done * width / total
	}
	if filled > width {
		filled = width
	}
	return fmt.Sprintf("[%s%s] %d/%d",
		strings.Repeat(ProgressBar, filled),
		strings.Repeat(ProgressEmpty, width-filled),
		done, total)
}

// FormatBytes formats a byte count in a human-readable way
func FormatBytes(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(bytes)/float64(div), "KMGTPE"[exp])
}

// FormatDuration formats a duration in a human-readable way
func FormatDuration(d time.Duration) string {
	switch {
	case d < time.Second:
		return fmt.Sprintf("%dms", d.Milliseconds())
	case d < time.Minute:
		return fmt.Sprintf("%.1fs", d.Seconds())
	case d < time.Hour:
		return fmt.Sprintf("%dm%ds", int(d.Minutes()), int(d.Seconds())%60)
	default:
		return fmt.Sprintf("%dh%dm", int(d.Hours()), int(d.Minutes())%60)
	}
}

func ratingLabel(rating string) string {
	if rating == "" {
		return "unrated"
	}
	return rating
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}
