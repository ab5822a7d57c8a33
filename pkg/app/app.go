// Package app provides the high-level journaling operations. It wraps
// persistence and the pure streak/render logic so the CLI and any future UI
// share one implementation.
package app

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/dlync/murmur/pkg/daybook"
	"github.com/dlync/murmur/pkg/habit"
	"github.com/dlync/murmur/pkg/mood"
	"github.com/dlync/murmur/pkg/render"
	"github.com/dlync/murmur/pkg/store"
	"github.com/dlync/murmur/pkg/streak"
	"github.com/dlync/murmur/pkg/theme"
	"github.com/dlync/murmur/pkg/thought"
	"github.com/dlync/murmur/pkg/timeutil"
)

// Service carries the configuration the composition root owns: the store,
// the calendar timezone for day bucketing, and the clock. Nothing in here is
// a package-level singleton.
type Service struct {
	Persistence store.Persistence
	Location    *time.Location
	Clock       func() time.Time
}

var ErrNotFound = errors.New("app: not found")

func (s *Service) now() time.Time {
	if s.Clock != nil {
		return s.Clock()
	}
	return time.Now()
}

func (s *Service) loc() *time.Location {
	if s.Location != nil {
		return s.Location
	}
	return time.Local
}

func (s *Service) today() string {
	return timeutil.DayKey(s.now(), s.loc())
}

func (s *Service) persistence() (store.Persistence, error) {
	if s.Persistence == nil {
		return nil, errors.New("app: no persistence configured")
	}
	return s.Persistence, nil
}

// Resume loads the journal and re-evaluates the streak once, the way the
// original app does at start: a streak whose last log is older than
// yesterday is zeroed, nothing is ever incremented, and LastLoggedDate is
// left alone. The decayed stats are persisted so later loads agree.
func (s *Service) Resume(ctx context.Context) (thought.UserStats, []*thought.Thought, error) {
	p, err := s.persistence()
	if err != nil {
		return thought.UserStats{}, nil, err
	}
	thoughts := p.Thoughts(ctx)
	user := streak.OnResume(s.now(), s.loc(), p.User(ctx), thoughts)
	if err := p.SaveUser(user); err != nil {
		return thought.UserStats{}, nil, err
	}
	return user, thoughts, nil
}

// AddThought appends a new journal entry and advances the streak. The new
// stats are computed first and adopted only if the writes succeed; on any
// write failure the caller's view stays unchanged.
func (s *Service) AddThought(ctx context.Context, body, tag string) (*thought.Thought, thought.UserStats, error) {
	p, err := s.persistence()
	if err != nil {
		return nil, thought.UserStats{}, err
	}
	if strings.TrimSpace(render.Plain(render.Render(body))) == "" {
		return nil, thought.UserStats{}, errors.New("app: thought body required")
	}

	now := s.now()
	t := thought.New(body, tag, now)

	// Newest first, matching the stored order the app has always used.
	updated := append([]*thought.Thought{t}, p.Thoughts(ctx)...)
	user := streak.OnThoughtAdded(now, s.loc(), p.User(ctx), updated)

	// Two writes, thoughts first. If the stats write fails the new thought
	// is stranded with stale counters; Resume recomputes them from the
	// thought list on the next load.
	if err := p.SaveThoughts(updated); err != nil {
		return nil, thought.UserStats{}, err
	}
	if err := p.SaveUser(user); err != nil {
		return nil, thought.UserStats{}, err
	}
	return t, user, nil
}

// DeleteThought removes an entry by id and refreshes the derived counts.
// Streak and LastLoggedDate are never touched on deletion.
func (s *Service) DeleteThought(ctx context.Context, id string) (thought.UserStats, error) {
	p, err := s.persistence()
	if err != nil {
		return thought.UserStats{}, err
	}
	all := p.Thoughts(ctx)
	remaining := make([]*thought.Thought, 0, len(all))
	found := false
	for _, t := range all {
		if t.ID == id {
			found = true
			continue
		}
		remaining = append(remaining, t)
	}
	if !found {
		return thought.UserStats{}, fmt.Errorf("app: thought %s: %w", id, ErrNotFound)
	}

	user := streak.OnThoughtDeleted(s.now(), s.loc(), p.User(ctx), remaining)
	if err := p.SaveThoughts(remaining); err != nil {
		return thought.UserStats{}, err
	}
	if err := p.SaveUser(user); err != nil {
		return thought.UserStats{}, err
	}
	return user, nil
}

// UpdateUsername renames the profile.
func (s *Service) UpdateUsername(ctx context.Context, name string) (thought.UserStats, error) {
	p, err := s.persistence()
	if err != nil {
		return thought.UserStats{}, err
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return thought.UserStats{}, errors.New("app: username required")
	}
	user := p.User(ctx)
	user.Username = name
	if err := p.SaveUser(user); err != nil {
		return thought.UserStats{}, err
	}
	return user, nil
}

// ThoughtsOn lists the entries for one day key, newest first.
func (s *Service) ThoughtsOn(ctx context.Context, day string) ([]*thought.Thought, error) {
	p, err := s.persistence()
	if err != nil {
		return nil, err
	}
	var out []*thought.Thought
	for _, t := range p.Thoughts(ctx) {
		if timeutil.DayKey(t.Timestamp.Time, s.loc()) == day {
			out = append(out, t)
		}
	}
	return out, nil
}

// ThoughtActivity buckets entries per day over an inclusive range. Empty
// bounds leave that side open.
func (s *Service) ThoughtActivity(ctx context.Context, since, until string) (map[string]int, error) {
	p, err := s.persistence()
	if err != nil {
		return nil, err
	}
	return streak.AggregateByDay(streak.DayKeys(p.Thoughts(ctx), s.loc()), since, until), nil
}

// SaveEmotions records the confirmed emotion snapshot for today, replacing
// any earlier snapshot for the same day.
func (s *Service) SaveEmotions(ctx context.Context, ids []string) (mood.Entry, error) {
	p, err := s.persistence()
	if err != nil {
		return mood.Entry{}, err
	}
	for _, id := range ids {
		if _, ok := mood.ByID(id); !ok {
			return mood.Entry{}, fmt.Errorf("app: unknown emotion %q", id)
		}
	}

	entry := mood.Entry{
		Schema:   daybook.CurrentSchema,
		Date:     s.today(),
		Emotions: ids,
		SavedAt:  s.now().UTC().Format(time.RFC3339),
	}
	updated := replaceDayEntry(p.Emotions(ctx), entry, func(e mood.Entry) string { return e.Date })
	if err := p.SaveEmotions(updated); err != nil {
		return mood.Entry{}, err
	}
	return entry, nil
}

// TodayEmotions returns today's confirmed snapshot, if any.
func (s *Service) TodayEmotions(ctx context.Context) ([]string, bool, error) {
	p, err := s.persistence()
	if err != nil {
		return nil, false, err
	}
	for _, e := range p.Emotions(ctx) {
		if e.Date == s.today() {
			return e.Emotions, true, nil
		}
	}
	return nil, false, nil
}

// SaveHabits records the confirmed habit snapshot for today, replacing any
// earlier snapshot for the same day.
func (s *Service) SaveHabits(ctx context.Context, ids []string) (habit.Entry, error) {
	p, err := s.persistence()
	if err != nil {
		return habit.Entry{}, err
	}
	for _, id := range ids {
		if _, ok := habit.ByID(id); !ok {
			return habit.Entry{}, fmt.Errorf("app: unknown habit %q", id)
		}
	}

	entry := habit.Entry{
		Schema:  daybook.CurrentSchema,
		Date:    s.today(),
		Habits:  ids,
		SavedAt: s.now().UTC().Format(time.RFC3339),
	}
	updated := replaceDayEntry(p.Habits(ctx), entry, func(e habit.Entry) string { return e.Date })
	if err := p.SaveHabits(updated); err != nil {
		return habit.Entry{}, err
	}
	return entry, nil
}

// MostFelt ranks emotions over the trailing window by how often they were
// logged, ties broken by catalog order. k <= 0 returns the full list.
func (s *Service) MostFelt(ctx context.Context, windowDays, k int) ([]streak.Frequency, error) {
	p, err := s.persistence()
	if err != nil {
		return nil, err
	}
	records := make([]streak.DaySelections, 0)
	for _, e := range p.Emotions(ctx) {
		records = append(records, streak.DaySelections{Day: e.Date, IDs: e.Emotions})
	}
	return streak.TopByFrequency(records, mood.CatalogIDs(), windowDays, s.now(), s.loc(), k), nil
}

// MostKept is MostFelt for habits.
func (s *Service) MostKept(ctx context.Context, windowDays, k int) ([]streak.Frequency, error) {
	p, err := s.persistence()
	if err != nil {
		return nil, err
	}
	records := make([]streak.DaySelections, 0)
	for _, e := range p.Habits(ctx) {
		records = append(records, streak.DaySelections{Day: e.Date, IDs: e.Habits})
	}
	return streak.TopByFrequency(records, habit.CatalogIDs(), windowDays, s.now(), s.loc(), k), nil
}

// SavePhoto attaches a photo to today, replacing any existing one.
func (s *Service) SavePhoto(ctx context.Context, uri string) (daybook.PhotoEntry, error) {
	p, err := s.persistence()
	if err != nil {
		return daybook.PhotoEntry{}, err
	}
	if strings.TrimSpace(uri) == "" {
		return daybook.PhotoEntry{}, errors.New("app: photo uri required")
	}
	entry := daybook.PhotoEntry{
		Schema:  daybook.CurrentSchema,
		Date:    s.today(),
		URI:     uri,
		SavedAt: s.now().UTC().Format(time.RFC3339),
	}
	updated := replaceDayEntry(p.Photos(ctx), entry, func(e daybook.PhotoEntry) string { return e.Date })
	if err := p.SavePhotos(updated); err != nil {
		return daybook.PhotoEntry{}, err
	}
	return entry, nil
}

// RemovePhoto detaches the photo from a day.
func (s *Service) RemovePhoto(ctx context.Context, day string) error {
	p, err := s.persistence()
	if err != nil {
		return err
	}
	all := p.Photos(ctx)
	updated := make([]daybook.PhotoEntry, 0, len(all))
	for _, e := range all {
		if e.Date != day {
			updated = append(updated, e)
		}
	}
	return p.SavePhotos(updated)
}

// PhotoOn returns the photo for a day, if any.
func (s *Service) PhotoOn(ctx context.Context, day string) (daybook.PhotoEntry, bool, error) {
	p, err := s.persistence()
	if err != nil {
		return daybook.PhotoEntry{}, false, err
	}
	for _, e := range p.Photos(ctx) {
		if e.Date == day {
			return e, true, nil
		}
	}
	return daybook.PhotoEntry{}, false, nil
}

// AddEvent puts a calendar event on a day.
func (s *Service) AddEvent(ctx context.Context, day, title, note string) (*daybook.CalendarEvent, error) {
	p, err := s.persistence()
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(title) == "" {
		return nil, errors.New("app: event title required")
	}
	if _, err := timeutil.ParseDayKey(day, s.loc()); err != nil {
		return nil, err
	}
	e := daybook.NewEvent(day, title, note, s.now())
	updated := append(p.Events(ctx), e)
	sort.SliceStable(updated, func(i, j int) bool { return updated[i].Date < updated[j].Date })
	if err := p.SaveEvents(updated); err != nil {
		return nil, err
	}
	return e, nil
}

// UpdateEvent rewrites an event's title and note.
func (s *Service) UpdateEvent(ctx context.Context, id, title, note string) (*daybook.CalendarEvent, error) {
	p, err := s.persistence()
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(title) == "" {
		return nil, errors.New("app: event title required")
	}
	all := p.Events(ctx)
	for _, e := range all {
		if e.ID == id {
			e.Title = strings.TrimSpace(title)
			e.Note = strings.TrimSpace(note)
			if err := p.SaveEvents(all); err != nil {
				return nil, err
			}
			return e, nil
		}
	}
	return nil, fmt.Errorf("app: event %s: %w", id, ErrNotFound)
}

// DeleteEvent removes an event by id.
func (s *Service) DeleteEvent(ctx context.Context, id string) error {
	p, err := s.persistence()
	if err != nil {
		return err
	}
	all := p.Events(ctx)
	updated := make([]*daybook.CalendarEvent, 0, len(all))
	found := false
	for _, e := range all {
		if e.ID == id {
			found = true
			continue
		}
		updated = append(updated, e)
	}
	if !found {
		return fmt.Errorf("app: event %s: %w", id, ErrNotFound)
	}
	return p.SaveEvents(updated)
}

// HasEvent reports whether any calendar event falls on the day.
func (s *Service) HasEvent(ctx context.Context, day string) (bool, error) {
	p, err := s.persistence()
	if err != nil {
		return false, err
	}
	for _, e := range p.Events(ctx) {
		if e.Date == day {
			return true, nil
		}
	}
	return false, nil
}

// EventsOn lists the events for a day.
func (s *Service) EventsOn(ctx context.Context, day string) ([]*daybook.CalendarEvent, error) {
	p, err := s.persistence()
	if err != nil {
		return nil, err
	}
	var out []*daybook.CalendarEvent
	for _, e := range p.Events(ctx) {
		if e.Date == day {
			out = append(out, e)
		}
	}
	return out, nil
}

// AddVoiceNote attaches a recorded note to a day.
func (s *Service) AddVoiceNote(ctx context.Context, day, uri string, duration time.Duration) (*daybook.VoiceNote, error) {
	p, err := s.persistence()
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(uri) == "" {
		return nil, errors.New("app: voice note uri required")
	}
	if _, err := timeutil.ParseDayKey(day, s.loc()); err != nil {
		return nil, err
	}
	n := daybook.NewVoiceNote(day, uri, duration, s.now())
	if err := p.SaveVoiceNotes(append(p.VoiceNotes(ctx), n)); err != nil {
		return nil, err
	}
	return n, nil
}

// DeleteVoiceNote removes a voice note by id.
func (s *Service) DeleteVoiceNote(ctx context.Context, id string) error {
	p, err := s.persistence()
	if err != nil {
		return err
	}
	all := p.VoiceNotes(ctx)
	updated := make([]*daybook.VoiceNote, 0, len(all))
	found := false
	for _, n := range all {
		if n.ID == id {
			found = true
			continue
		}
		updated = append(updated, n)
	}
	if !found {
		return fmt.Errorf("app: voice note %s: %w", id, ErrNotFound)
	}
	return p.SaveVoiceNotes(updated)
}

// VoiceNotesOn lists the voice notes for a day.
func (s *Service) VoiceNotesOn(ctx context.Context, day string) ([]*daybook.VoiceNote, error) {
	p, err := s.persistence()
	if err != nil {
		return nil, err
	}
	var out []*daybook.VoiceNote
	for _, n := range p.VoiceNotes(ctx) {
		if n.Date == day {
			out = append(out, n)
		}
	}
	return out, nil
}

// Settings returns the reminder preference.
func (s *Service) Settings(ctx context.Context) (daybook.Settings, error) {
	p, err := s.persistence()
	if err != nil {
		return daybook.Settings{}, err
	}
	return p.Settings(ctx), nil
}

// SaveSettings validates and stores the reminder preference.
func (s *Service) SaveSettings(ctx context.Context, settings daybook.Settings) error {
	p, err := s.persistence()
	if err != nil {
		return err
	}
	if !settings.Valid() {
		return fmt.Errorf("app: invalid reminder time %02d:%02d", settings.Hour, settings.Minute)
	}
	return p.SaveSettings(settings)
}

// Theme returns the active theme, falling back to the default for unknown or
// unset keys.
func (s *Service) Theme(ctx context.Context) (theme.Theme, error) {
	p, err := s.persistence()
	if err != nil {
		return theme.Theme{}, err
	}
	return theme.Lookup(p.ThemeKey(ctx)), nil
}

// SetTheme switches the active theme.
func (s *Service) SetTheme(ctx context.Context, key string) (theme.Theme, error) {
	p, err := s.persistence()
	if err != nil {
		return theme.Theme{}, err
	}
	t, err := theme.Parse(key)
	if err != nil {
		return theme.Theme{}, err
	}
	if err := p.SaveThemeKey(t.Key); err != nil {
		return theme.Theme{}, err
	}
	return t, nil
}

// Renderer builds a body renderer whose accent is read from the active theme
// at render time, so a theme change restyles old entries without touching
// stored content.
func (s *Service) Renderer(ctx context.Context) render.Renderer {
	return render.Renderer{Accent: func() string {
		t, err := s.Theme(ctx)
		if err != nil {
			return theme.Default().Palette.Accent
		}
		return t.Palette.Accent
	}}
}

// replaceDayEntry swaps in entry for its day, keeping one record per day key
// and newest-day-first ordering.
func replaceDayEntry[T any](all []T, entry T, day func(T) string) []T {
	out := make([]T, 0, len(all)+1)
	for _, e := range all {
		if day(e) != day(entry) {
			out = append(out, e)
		}
	}
	out = append(out, entry)
	sort.SliceStable(out, func(i, j int) bool { return day(out[i]) > day(out[j]) })
	return out
}
