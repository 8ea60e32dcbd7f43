package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"

	"handhelds/internal/ranking"
	"handhelds/internal/scoring"
)

// comparisonRows lays out one row per category, one column per device, with
// the category winner in the last column.
func comparisonRows(names []string, entries []ranking.Entry, result ranking.Result) [][]string {
	header := append([]string{"category"}, names...)
	header = append(header, "winner")
	rows := [][]string{header}

	label := make(map[string]string, len(entries))
	for i, e := range entries {
		label[e.ID] = names[i]
	}

	cats := append(append([]scoring.Category{}, scoring.Categories...), scoring.CategoryAll)
	for _, c := range cats {
		row := []string{string(c)}
		for _, e := range entries {
			row = append(row, fmt.Sprintf("%.2f", e.Scores[c]))
		}
		winner := result.Winner(c)
		if name, ok := label[winner]; ok {
			winner = name
		}
		rows = append(rows, append(row, winner))
	}
	return rows
}

func writeTable(w io.Writer, rows [][]string) {
	if len(rows) == 0 {
		return
	}
	widths := make([]int, len(rows[0]))
	for _, row := range rows {
		for i := 0; i < len(row) && i < len(widths); i++ {
			if width := runewidth.StringWidth(row[i]); width > widths[i] {
				widths[i] = width
			}
		}
	}

	for r, row := range rows {
		var sb strings.Builder
		for i := range widths {
			content := ""
			if i < len(row) {
				content = row[i]
			}
			if i > 0 {
				sb.WriteString("  ")
			}
			sb.WriteString(runewidth.FillRight(content, widths[i]))
		}
		fmt.Fprintln(w, strings.TrimRight(sb.String(), " "))
		if r == 0 {
			total := 0
			for _, width := range widths {
				total += width + 2
			}
			fmt.Fprintln(w, strings.Repeat("-", total-2))
		}
	}
}
