package app

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dlync/murmur/pkg/daybook"
	"github.com/dlync/murmur/pkg/habit"
	"github.com/dlync/murmur/pkg/mood"
	"github.com/dlync/murmur/pkg/store"
	"github.com/dlync/murmur/pkg/thought"
)

// memory is an in-memory Persistence for tests. failSaves makes every write
// fail so the all-or-nothing behavior can be observed.
type memory struct {
	thoughts   []*thought.Thought
	user       thought.UserStats
	emotions   []mood.Entry
	habits     []habit.Entry
	photos     []daybook.PhotoEntry
	events     []*daybook.CalendarEvent
	voiceNotes []*daybook.VoiceNote
	settings   daybook.Settings
	themeKey   string
	failSaves  bool

	// failUserSave fails only the stats write, after a thought write has
	// already landed.
	failUserSave bool
}

var errSave = errors.New("save refused")

func newMemory() *memory {
	return &memory{user: thought.DefaultUser(), settings: daybook.DefaultSettings()}
}

func (m *memory) save(do func()) error {
	if m.failSaves {
		return errSave
	}
	do()
	return nil
}

func (m *memory) Thoughts(_ context.Context) []*thought.Thought { return m.thoughts }
func (m *memory) SaveThoughts(t []*thought.Thought) error {
	return m.save(func() { m.thoughts = t })
}
func (m *memory) User(_ context.Context) thought.UserStats { return m.user }
func (m *memory) SaveUser(u thought.UserStats) error {
	if m.failUserSave {
		return errSave
	}
	return m.save(func() { m.user = u })
}
func (m *memory) Emotions(_ context.Context) []mood.Entry { return m.emotions }
func (m *memory) SaveEmotions(e []mood.Entry) error {
	return m.save(func() { m.emotions = e })
}
func (m *memory) Habits(_ context.Context) []habit.Entry { return m.habits }
func (m *memory) SaveHabits(e []habit.Entry) error {
	return m.save(func() { m.habits = e })
}
func (m *memory) Photos(_ context.Context) []daybook.PhotoEntry { return m.photos }
func (m *memory) SavePhotos(p []daybook.PhotoEntry) error {
	return m.save(func() { m.photos = p })
}
func (m *memory) Events(_ context.Context) []*daybook.CalendarEvent { return m.events }
func (m *memory) SaveEvents(e []*daybook.CalendarEvent) error {
	return m.save(func() { m.events = e })
}
func (m *memory) VoiceNotes(_ context.Context) []*daybook.VoiceNote { return m.voiceNotes }
func (m *memory) SaveVoiceNotes(n []*daybook.VoiceNote) error {
	return m.save(func() { m.voiceNotes = n })
}
func (m *memory) Settings(_ context.Context) daybook.Settings { return m.settings }
func (m *memory) SaveSettings(s daybook.Settings) error {
	return m.save(func() { m.settings = s })
}
func (m *memory) ThemeKey(_ context.Context) string { return m.themeKey }
func (m *memory) SaveThemeKey(k string) error {
	return m.save(func() { m.themeKey = k })
}
func (m *memory) Watch(_ context.Context) (<-chan store.Event, error) {
	ch := make(chan store.Event)
	close(ch)
	return ch, nil
}

func newService(m *memory, at time.Time) *Service {
	return &Service{
		Persistence: m,
		Location:    time.UTC,
		Clock:       func() time.Time { return at },
	}
}

func TestAddThoughtFlow(t *testing.T) {
	ctx := context.Background()
	m := newMemory()
	day1 := time.Date(2026, 8, 27, 9, 0, 0, 0, time.UTC)
	day2 := day1.AddDate(0, 0, 1)

	_, user, err := newService(m, day1).AddThought(ctx, "first", "")
	if err != nil {
		t.Fatal(err)
	}
	if user.Streak != 1 || user.ThoughtsToday != 1 || user.ThoughtsTotal != 1 {
		t.Fatalf("after first add: %+v", user)
	}

	added, user, err := newService(m, day2).AddThought(ctx, "second", "gratitude")
	if err != nil {
		t.Fatal(err)
	}
	if user.Streak != 2 {
		t.Fatalf("expected streak 2, got %d", user.Streak)
	}
	if user.ThoughtsToday != 1 || user.ThoughtsTotal != 2 {
		t.Fatalf("after second add: %+v", user)
	}
	if m.thoughts[0].ID != added.ID {
		t.Fatal("expected newest-first order")
	}
	if m.user.Streak != 2 {
		t.Fatal("stats were not persisted")
	}
}

func TestAddThoughtRejectsEmptyBody(t *testing.T) {
	m := newMemory()
	svc := newService(m, time.Date(2026, 8, 28, 9, 0, 0, 0, time.UTC))

	for _, body := range []string{"", "   ", "<b> </b>", "<div></div>"} {
		if _, _, err := svc.AddThought(context.Background(), body, ""); err == nil {
			t.Fatalf("body %q: expected error", body)
		}
	}
	if len(m.thoughts) != 0 {
		t.Fatal("nothing should have been stored")
	}
}

func TestAddThoughtFailedWriteChangesNothing(t *testing.T) {
	m := newMemory()
	m.failSaves = true
	svc := newService(m, time.Date(2026, 8, 28, 9, 0, 0, 0, time.UTC))

	_, _, err := svc.AddThought(context.Background(), "hello", "")
	if !errors.Is(err, errSave) {
		t.Fatalf("expected save error, got %v", err)
	}
	if len(m.thoughts) != 0 || m.user.Streak != 0 {
		t.Fatal("failed write must leave the store untouched")
	}
}

func TestAddThoughtPartialWriteHealsOnResume(t *testing.T) {
	ctx := context.Background()
	m := newMemory()
	m.failUserSave = true
	at := time.Date(2026, 8, 28, 9, 0, 0, 0, time.UTC)

	_, _, err := newService(m, at).AddThought(ctx, "kept", "")
	if !errors.Is(err, errSave) {
		t.Fatalf("expected the stats write to fail, got %v", err)
	}
	if len(m.thoughts) != 1 {
		t.Fatalf("thought write landed before the failure, got %d", len(m.thoughts))
	}
	if m.user.ThoughtsTotal != 0 || m.user.Streak != 0 {
		t.Fatalf("stats must not be half-written: %+v", m.user)
	}

	// The stale counters recompute from the thought list on the next load.
	m.failUserSave = false
	user, _, err := newService(m, at).Resume(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if user.ThoughtsTotal != 1 || user.ThoughtsToday != 1 {
		t.Fatalf("counts not recomputed: %+v", user)
	}
	if m.user.ThoughtsTotal != 1 {
		t.Fatal("recomputed counts were not persisted")
	}
}

func TestDeleteThoughtKeepsStreak(t *testing.T) {
	ctx := context.Background()
	m := newMemory()
	at := time.Date(2026, 8, 28, 9, 0, 0, 0, time.UTC)

	added, _, err := newService(m, at).AddThought(ctx, "only entry", "")
	if err != nil {
		t.Fatal(err)
	}

	user, err := newService(m, at.Add(time.Hour)).DeleteThought(ctx, added.ID)
	if err != nil {
		t.Fatal(err)
	}
	if user.Streak != 1 {
		t.Fatalf("deletion changed streak: %d", user.Streak)
	}
	if user.LastLoggedDate == nil {
		t.Fatal("deletion cleared lastLoggedDate")
	}
	if user.ThoughtsToday != 0 || user.ThoughtsTotal != 0 {
		t.Fatalf("counts not refreshed: %+v", user)
	}

	if _, err := newService(m, at).DeleteThought(ctx, "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestResumeDecayPersists(t *testing.T) {
	ctx := context.Background()
	m := newMemory()
	now := time.Date(2026, 8, 28, 9, 0, 0, 0, time.UTC)
	stale := &thought.Timestamp{Time: now.AddDate(0, 0, -4)}
	m.user = thought.UserStats{Username: "w", Streak: 9, LastLoggedDate: stale}

	user, _, err := newService(m, now).Resume(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if user.Streak != 0 {
		t.Fatalf("expected decay to 0, got %d", user.Streak)
	}
	if user.LastLoggedDate != stale {
		t.Fatal("resume must not touch lastLoggedDate")
	}
	if m.user.Streak != 0 {
		t.Fatal("decayed stats were not persisted")
	}
}

func TestSaveEmotionsReplacesDaySnapshot(t *testing.T) {
	ctx := context.Background()
	m := newMemory()
	at := time.Date(2026, 8, 28, 9, 0, 0, 0, time.UTC)
	svc := newService(m, at)

	if _, err := svc.SaveEmotions(ctx, []string{"calm", "tired"}); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.SaveEmotions(ctx, []string{"grateful"}); err != nil {
		t.Fatal(err)
	}

	if len(m.emotions) != 1 {
		t.Fatalf("expected one snapshot per day, got %d", len(m.emotions))
	}
	ids, ok, err := svc.TodayEmotions(ctx)
	if err != nil || !ok {
		t.Fatalf("expected today's snapshot, ok=%v err=%v", ok, err)
	}
	if len(ids) != 1 || ids[0] != "grateful" {
		t.Fatalf("expected the later snapshot to win, got %v", ids)
	}

	if _, err := svc.SaveEmotions(ctx, []string{"euphoric"}); err == nil {
		t.Fatal("expected unknown emotion to be rejected")
	}
}

func TestMostFeltWindowAndOrder(t *testing.T) {
	ctx := context.Background()
	m := newMemory()
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)
	m.emotions = []mood.Entry{
		{Date: "2026-08-28", Emotions: []string{"grateful", "calm"}},
		{Date: "2026-08-26", Emotions: []string{"calm", "grateful"}},
		{Date: "2026-07-01", Emotions: []string{"sad"}},
	}

	got, err := newService(m, now).MostFelt(ctx, 7, 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 {
		t.Fatalf("expected the stale entry filtered out, got %v", got)
	}
	// Equal counts fall back to catalog order: calm before grateful.
	if got[0].ID != "calm" || got[1].ID != "grateful" {
		t.Fatalf("tie not broken by catalog order: %v", got)
	}
}

func TestEventLifecycle(t *testing.T) {
	ctx := context.Background()
	m := newMemory()
	svc := newService(m, time.Date(2026, 8, 28, 9, 0, 0, 0, time.UTC))

	e, err := svc.AddEvent(ctx, "2026-09-01", "dentist", "bring the referral")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := svc.AddEvent(ctx, "tomorrow", "vague", ""); err == nil {
		t.Fatal("expected bad day key to be rejected")
	}

	if _, err := svc.UpdateEvent(ctx, e.ID, "dentist (moved)", ""); err != nil {
		t.Fatal(err)
	}
	if ok, err := svc.HasEvent(ctx, "2026-09-01"); err != nil || !ok {
		t.Fatalf("expected an event on the day, ok=%v err=%v", ok, err)
	}
	if ok, _ := svc.HasEvent(ctx, "2026-09-02"); ok {
		t.Fatal("no event expected on the next day")
	}
	onDay, err := svc.EventsOn(ctx, "2026-09-01")
	if err != nil {
		t.Fatal(err)
	}
	if len(onDay) != 1 || onDay[0].Title != "dentist (moved)" {
		t.Fatalf("got %+v", onDay)
	}

	if err := svc.DeleteEvent(ctx, e.ID); err != nil {
		t.Fatal(err)
	}
	if err := svc.DeleteEvent(ctx, e.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestPhotoReplacesPerDay(t *testing.T) {
	ctx := context.Background()
	m := newMemory()
	svc := newService(m, time.Date(2026, 8, 28, 9, 0, 0, 0, time.UTC))

	if _, err := svc.SavePhoto(ctx, "file:///a.jpg"); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.SavePhoto(ctx, "file:///b.jpg"); err != nil {
		t.Fatal(err)
	}
	got, ok, err := svc.PhotoOn(ctx, "2026-08-28")
	if err != nil || !ok {
		t.Fatalf("ok=%v err=%v", ok, err)
	}
	if got.URI != "file:///b.jpg" {
		t.Fatalf("expected replacement, got %q", got.URI)
	}
	if len(m.photos) != 1 {
		t.Fatalf("expected one photo per day, got %d", len(m.photos))
	}

	if err := svc.RemovePhoto(ctx, "2026-08-28"); err != nil {
		t.Fatal(err)
	}
	if _, ok, _ := svc.PhotoOn(ctx, "2026-08-28"); ok {
		t.Fatal("photo not removed")
	}
}

func TestRendererTracksActiveTheme(t *testing.T) {
	ctx := context.Background()
	m := newMemory()
	svc := newService(m, time.Date(2026, 8, 28, 9, 0, 0, 0, time.UTC))

	r := svc.Renderer(ctx)
	before := r.Render("{c:accent}x{/c}")[0].Color

	if _, err := svc.SetTheme(ctx, "dusk"); err != nil {
		t.Fatal(err)
	}
	after := r.Render("{c:accent}x{/c}")[0].Color

	if before == after {
		t.Fatal("renderer did not pick up the theme change")
	}
	if after != "#C4874A" {
		t.Fatalf("expected dusk accent, got %q", after)
	}

	if _, err := svc.SetTheme(ctx, "neon"); err == nil {
		t.Fatal("expected unknown theme to be rejected")
	}
}

func TestSaveSettingsValidates(t *testing.T) {
	ctx := context.Background()
	m := newMemory()
	svc := newService(m, time.Date(2026, 8, 28, 9, 0, 0, 0, time.UTC))

	err := svc.SaveSettings(ctx, daybook.Settings{Enabled: true, Hour: 25})
	if err == nil {
		t.Fatal("expected invalid hour to be rejected")
	}
	if err := svc.SaveSettings(ctx, daybook.Settings{Enabled: true, Hour: 7, Minute: 30}); err != nil {
		t.Fatal(err)
	}
	got, err := svc.Settings(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if !got.Enabled || got.Hour != 7 || got.Minute != 30 {
		t.Fatalf("got %+v", got)
	}
}
