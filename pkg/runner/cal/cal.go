// Package cal renders the archive calendar: a month grid with the days that
// have journal activity emphasized.
package cal

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dlync/murmur/pkg/app"
	"github.com/dlync/murmur/pkg/printers"
	"github.com/dlync/murmur/pkg/timeutil"
)

type Cal struct {
	On   time.Time
	Year bool

	Service *app.Service
}

func (n *Cal) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not show calendar, no service")
	}

	loc := n.Service.Location
	if loc == nil {
		loc = time.Local
	}
	on := n.On
	if on.IsZero() {
		on = time.Now()
	}

	// Bound the aggregation to the visible range.
	var since, until string
	if n.Year {
		since = timeutil.DayKey(time.Date(on.In(loc).Year(), 1, 1, 0, 0, 0, 0, loc), loc)
		until = timeutil.DayKey(time.Date(on.In(loc).Year(), 12, 31, 0, 0, 0, 0, loc), loc)
	} else {
		first := time.Date(on.In(loc).Year(), on.In(loc).Month(), 1, 0, 0, 0, 0, loc)
		since = timeutil.DayKey(first, loc)
		until = timeutil.DayKey(first.AddDate(0, 1, -1), loc)
	}

	counts, err := n.Service.ThoughtActivity(ctx, since, until)
	if err != nil {
		return err
	}

	// Days holding a calendar event are emphasized like active days.
	start, err := timeutil.ParseDayKey(since, loc)
	if err != nil {
		return err
	}
	for d := start; timeutil.DayKey(d, loc) <= until; d = d.AddDate(0, 0, 1) {
		key := timeutil.DayKey(d, loc)
		if counts[key] > 0 {
			continue
		}
		if ok, err := n.Service.HasEvent(ctx, key); err == nil && ok {
			counts[key] = 1
		}
	}

	pp := printers.PrettyPrint{Location: loc}
	fmt.Println("")
	if n.Year {
		pp.Year(on, counts)
		return nil
	}
	pp.Calendar(on, counts)
	return nil
}
