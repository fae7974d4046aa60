package ui

import (
	"bytes"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"gifsaver/pkg/models"
)

func TestBar(t *testing.T) {
	assert.Equal(t, "[░░░░] 0/4", Bar(0, 4, 4))
	assert.Equal(t, "[██░░] 2/4", Bar(2, 4, 4))
	assert.Equal(t, "[████] 4/4", Bar(4, 4, 4))
	assert.Equal(t, "[░░░░] 0/0", Bar(0, 0, 4))
}

func TestFormatBytes(t *testing.T) {
	assert.Equal(t, "512 B", FormatBytes(512))
	assert.Equal(t, "1.5 KB", FormatBytes(1536))
	assert.Equal(t, "2.0 MB", FormatBytes(2*1024*1024))
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "250ms", FormatDuration(250*time.Millisecond))
	assert.Equal(t, "1.5s", FormatDuration(1500*time.Millisecond))
	assert.Equal(t, "2m5s", FormatDuration(125*time.Second))
	assert.Equal(t, "1h1m", FormatDuration(61*time.Minute))
}

func TestExportProgress(t *testing.T) {
	var buf bytes.Buffer
	p := NewExportProgress(NewTerminal(&buf))

	clock := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	p.now = func() time.Time { return clock }

	p.Start("cat", 2)
	p.ItemStarted(0, "0.gif", models.GIF{Title: "Happy Cat", Rating: "g"})
	p.ItemDone(0, "0.gif", 2048)
	p.ItemStarted(1, "1.gif", models.GIF{ID: "abc"})
	p.ItemFailed(1, "1.gif", fmt.Errorf("network error: timeout"))
	clock = clock.Add(2 * time.Second)
	p.Finish("saved/list.json", 1)

	out := buf.String()
	assert.Contains(t, out, `Exporting top 2 results for "cat"`)
	assert.Contains(t, out, "0.gif [g] Happy Cat")
	assert.Contains(t, out, "✓ 0.gif 2.0 KB")
	assert.Contains(t, out, "1.gif [unrated] abc")
	assert.Contains(t, out, "✗ 1.gif network error: timeout")
	assert.Contains(t, out, "Saved 1 of 2 GIFs (2.0 KB) in 2.0s")
	assert.Contains(t, out, "Manifest: saved/list.json")
	assert.Equal(t, 1, p.saved)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "abcdefg...", truncate("abcdefghijklmnop", 10))
}
