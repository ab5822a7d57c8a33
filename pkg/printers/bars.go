package printers

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"github.com/dlync/murmur/pkg/streak"
	"github.com/dlync/murmur/pkg/thought"
)

const barWidth = 20

// BarRow pairs a frequency with its display label and emoji.
type BarRow struct {
	Label string
	Emoji string
	Count int
}

// Bars prints a horizontal bar chart, widest bar scaled to barWidth.
func (pp *PrettyPrint) Bars(rows []BarRow) {
	if len(rows) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Print(" none\n\n")
		return
	}

	max := 1
	for _, r := range rows {
		if r.Count > max {
			max = r.Count
		}
	}

	tbl := uitable.New()
	tbl.Separator = "  "
	for _, r := range rows {
		n := r.Count * barWidth / max
		if n < 1 {
			n = 1
		}
		tbl.AddRow(
			fmt.Sprintf("%s %s", r.Emoji, r.Label),
			strings.Repeat("█", n),
			fmt.Sprintf("%d×", r.Count),
		)
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
	fmt.Println("")
}

// FrequencyRows joins frequencies with a catalog lookup for display.
func FrequencyRows(freqs []streak.Frequency, lookup func(id string) (label, emoji string, ok bool)) []BarRow {
	rows := make([]BarRow, 0, len(freqs))
	for _, f := range freqs {
		label, emoji, ok := lookup(f.ID)
		if !ok {
			label = f.ID
		}
		rows = append(rows, BarRow{Label: label, Emoji: emoji, Count: f.Count})
	}
	return rows
}

// Stats prints the profile summary.
func (pp *PrettyPrint) Stats(user thought.UserStats) {
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow("username", user.Username)
	tbl.AddRow("streak", fmt.Sprintf("%d", user.Streak))
	tbl.AddRow("today", fmt.Sprintf("%d", user.ThoughtsToday))
	tbl.AddRow("total", fmt.Sprintf("%d", user.ThoughtsTotal))
	if user.LastLoggedDate != nil && !user.LastLoggedDate.IsZero() {
		tbl.AddRow("last logged", user.LastLoggedDate.String())
	} else {
		tbl.AddRow("last logged", "never")
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
	fmt.Println("")
}
