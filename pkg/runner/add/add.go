package add

import (
	"context"
	"errors"
	"fmt"

	"github.com/fatih/color"

	"github.com/dlync/murmur/pkg/app"
	"github.com/dlync/murmur/pkg/printers"
	"github.com/dlync/murmur/pkg/timeutil"
)

// Add writes a new thought and reprints today's entries.
type Add struct {
	Body string
	Tag  string

	Service *app.Service
}

func (n *Add) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not add, no service")
	}

	t, user, err := n.Service.AddThought(ctx, n.Body, n.Tag)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{
		Renderer: n.Service.Renderer(ctx),
		Location: n.Service.Location,
	}
	fmt.Println("")

	day := timeutil.DayKey(t.Timestamp.Time, n.Service.Location)
	today, err := n.Service.ThoughtsOn(ctx, day)
	if err != nil {
		return err
	}
	pp.TitleWithCount(day, len(today))
	pp.Thoughts(today...)

	f := color.New(color.Faint)
	switch user.Streak {
	case 1:
		_, _ = f.Println("day 1 of a new streak")
	default:
		_, _ = f.Printf("streak: %d days\n", user.Streak)
	}
	return nil
}
