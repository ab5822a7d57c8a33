package get

import (
	"context"
	"errors"
	"fmt"

	"github.com/fatih/color"

	"github.com/dlync/murmur/pkg/app"
	"github.com/dlync/murmur/pkg/habit"
	"github.com/dlync/murmur/pkg/mood"
	"github.com/dlync/murmur/pkg/printers"
	"github.com/dlync/murmur/pkg/thought"
)

// Get lists thoughts for one day (the archive view) or the whole journal.
type Get struct {
	ShowID bool
	Day    string // empty means everything
	Tag    string

	Service *app.Service
}

func (n *Get) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not get, no service")
	}

	pp := printers.PrettyPrint{
		ShowID:   n.ShowID,
		Renderer: n.Service.Renderer(ctx),
		Location: n.Service.Location,
	}
	fmt.Println("")

	if n.Day != "" {
		return n.day(ctx, pp)
	}

	_, thoughts, err := n.Service.Resume(ctx)
	if err != nil {
		return err
	}
	thoughts = n.filtered(thoughts)
	pp.TitleWithCount("murmur", len(thoughts))
	pp.Thoughts(thoughts...)
	return nil
}

// day prints everything recorded on one day key: thoughts, the confirmed
// mood and habit snapshots, the photo, events, and voice notes.
func (n *Get) day(ctx context.Context, pp printers.PrettyPrint) error {
	thoughts, err := n.Service.ThoughtsOn(ctx, n.Day)
	if err != nil {
		return err
	}
	thoughts = n.filtered(thoughts)
	pp.TitleWithCount(n.Day, len(thoughts))
	pp.Thoughts(thoughts...)

	f := color.New(color.Faint)

	if events, err := n.Service.EventsOn(ctx, n.Day); err == nil && len(events) > 0 {
		pp.Title("events")
		for _, e := range events {
			if e.Note != "" {
				fmt.Printf("○ %s — %s\n", e.Title, e.Note)
			} else {
				fmt.Printf("○ %s\n", e.Title)
			}
		}
		fmt.Println("")
	}

	if photo, ok, err := n.Service.PhotoOn(ctx, n.Day); err == nil && ok {
		_, _ = f.Printf("photo: %s\n", photo.URI)
	}
	if notes, err := n.Service.VoiceNotesOn(ctx, n.Day); err == nil && len(notes) > 0 {
		for _, vn := range notes {
			_, _ = f.Printf("voice note: %s (%dms)\n", vn.URI, vn.DurationMs)
		}
	}

	n.printSnapshots(ctx, f)
	return nil
}

func (n *Get) printSnapshots(ctx context.Context, f *color.Color) {
	p := n.Service.Persistence
	if p == nil {
		return
	}
	for _, e := range p.Emotions(ctx) {
		if e.Date != n.Day {
			continue
		}
		for _, id := range e.Emotions {
			if em, ok := mood.ByID(id); ok {
				_, _ = f.Printf("%s %s  ", em.Emoji, em.Label)
			}
		}
		fmt.Println("")
	}
	for _, e := range p.Habits(ctx) {
		if e.Date != n.Day {
			continue
		}
		for _, id := range e.Habits {
			if h, ok := habit.ByID(id); ok {
				_, _ = f.Printf("%s %s  ", h.Emoji, h.Label)
			}
		}
		fmt.Println("")
	}
}

func (n *Get) filtered(all []*thought.Thought) []*thought.Thought {
	if n.Tag == "" {
		return all
	}
	c := make([]*thought.Thought, 0, len(all))
	for _, t := range all {
		if t.Tag == n.Tag {
			c = append(c, t)
		}
	}
	return c
}
