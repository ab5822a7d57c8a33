// Package habitlog saves the day's confirmed habit snapshot.
package habitlog

import (
	"context"
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"github.com/dlync/murmur/pkg/app"
	"github.com/dlync/murmur/pkg/habit"
)

type HabitLog struct {
	Habits []string
	List   bool

	Service *app.Service
}

func (n *HabitLog) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not log habits, no service")
	}

	if n.List || len(n.Habits) == 0 {
		n.printCatalog()
		return nil
	}

	entry, err := n.Service.SaveHabits(ctx, n.Habits)
	if err != nil {
		return err
	}

	f := color.New(color.Faint)
	fmt.Println("")
	for _, id := range entry.Habits {
		if h, ok := habit.ByID(id); ok {
			fmt.Printf("%s %s  ", h.Emoji, h.Label)
		}
	}
	fmt.Println("")
	_, _ = f.Printf("saved for %s\n", entry.Date)
	return nil
}

func (n *HabitLog) printCatalog() {
	tbl := uitable.New()
	tbl.Separator = "  "
	for _, h := range habit.Catalog() {
		tbl.AddRow(h.Emoji, h.ID, h.Label)
	}
	fmt.Println("")
	_, _ = fmt.Fprintln(color.Output, tbl)
}
