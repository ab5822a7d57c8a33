// Package stats prints the profile summary and the most-felt frequency
// view.
package stats

import (
	"context"
	"errors"
	"fmt"

	"github.com/dlync/murmur/pkg/app"
	"github.com/dlync/murmur/pkg/habit"
	"github.com/dlync/murmur/pkg/mood"
	"github.com/dlync/murmur/pkg/printers"
	"github.com/dlync/murmur/pkg/timeutil"
)

type Stats struct {
	WindowDays int
	Habits     bool

	Service *app.Service
}

func (n *Stats) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not show stats, no service")
	}

	user, _, err := n.Service.Resume(ctx)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{Location: n.Service.Location}
	fmt.Println("")
	pp.Title(user.Username)
	pp.Stats(user)

	window := n.WindowDays
	if window <= 0 {
		window = 7
	}

	if n.Habits {
		kept, err := n.Service.MostKept(ctx, window, 0)
		if err != nil {
			return err
		}
		pp.Title(fmt.Sprintf("habits kept (last %s)", timeutil.FormatWindowDays(window)))
		pp.Bars(printers.FrequencyRows(kept, func(id string) (string, string, bool) {
			h, ok := habit.ByID(id)
			return h.Label, h.Emoji, ok
		}))
		return nil
	}

	felt, err := n.Service.MostFelt(ctx, window, 0)
	if err != nil {
		return err
	}
	pp.Title(fmt.Sprintf("most felt (last %s)", timeutil.FormatWindowDays(window)))
	pp.Bars(printers.FrequencyRows(felt, func(id string) (string, string, bool) {
		e, ok := mood.ByID(id)
		return e.Label, e.Emoji, ok
	}))
	return nil
}
