package ui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"gifsaver/pkg/models"
)

const missing = "-"

// SavedTable renders saved files with their manifest metadata
func (t *Terminal) SavedTable(saved []models.SavedGIF) string {
	rows := make([][]string, 0, len(saved))
	for _, s := range saved {
		if s.Data == nil {
			rows = append(rows, []string{s.Path, missing, missing, missing})
			continue
		}
		rows = append(rows, []string{s.Path, ratingLabel(s.Data.Rating), orMissing(s.Data.Author), truncate(orMissing(s.Data.Title), 50)})
	}
	return t.table([]string{"FILE", "RATING", "AUTHOR", "TITLE"}, rows)
}

// ResultsTable renders search results in the order given
func (t *Terminal) ResultsTable(results []models.GIF) string {
	rows := make([][]string, 0, len(results))
	for _, g := range results {
		rows = append(rows, []string{ratingLabel(g.Rating), orMissing(g.Username), truncate(orMissing(g.Title), 40), g.OriginalURL()})
	}
	return t.table([]string{"RATING", "AUTHOR", "TITLE", "URL"}, rows)
}

func (t *Terminal) table(headers []string, rows [][]string) string {
	color := t.ColorEnabled()

	tbl := table.New().
		Border(lipgloss.RoundedBorder()).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if !color {
				return cellStyle
			}
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
	if color {
		tbl = tbl.BorderStyle(tableLineStyle)
	}

	return tbl.Render()
}

func orMissing(s string) string {
	if s == "" {
		return missing
	}
	return s
}
