// Package moodlog saves the day's confirmed emotion snapshot.
package moodlog

import (
	"context"
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"github.com/dlync/murmur/pkg/app"
	"github.com/dlync/murmur/pkg/mood"
)

type MoodLog struct {
	Emotions []string
	List     bool

	Service *app.Service
}

func (n *MoodLog) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not log mood, no service")
	}

	if n.List || len(n.Emotions) == 0 {
		n.printCatalog(ctx)
		return nil
	}

	entry, err := n.Service.SaveEmotions(ctx, n.Emotions)
	if err != nil {
		return err
	}

	f := color.New(color.Faint)
	fmt.Println("")
	for _, id := range entry.Emotions {
		if e, ok := mood.ByID(id); ok {
			fmt.Printf("%s %s  ", e.Emoji, e.Label)
		}
	}
	fmt.Println("")
	_, _ = f.Printf("saved for %s\n", entry.Date)
	return nil
}

// printCatalog lists the selectable emotions, marking today's snapshot.
func (n *MoodLog) printCatalog(ctx context.Context) {
	today, saved, err := n.Service.TodayEmotions(ctx)
	if err != nil {
		today = nil
	}
	selected := make(map[string]bool, len(today))
	for _, id := range today {
		selected[id] = true
	}

	tbl := uitable.New()
	tbl.Separator = "  "
	for _, e := range mood.Catalog() {
		mark := " "
		if selected[e.ID] {
			mark = "●"
		}
		tbl.AddRow(mark, e.Emoji, e.ID, e.Label)
	}
	fmt.Println("")
	_, _ = fmt.Fprintln(color.Output, tbl)
	if saved {
		f := color.New(color.Faint)
		_, _ = f.Println("\ntoday's mood is saved")
	}
}
