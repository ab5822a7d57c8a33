package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/dlync/murmur/pkg/daybook"
	"github.com/dlync/murmur/pkg/mood"
	"github.com/dlync/murmur/pkg/thought"
)

func load(t *testing.T, dir string) Persistence {
	t.Helper()
	p, err := Load(PathConfig(dir))
	if err != nil {
		t.Fatal(err)
	}
	return p
}

func TestEmptyStoreReads(t *testing.T) {
	ctx := context.Background()
	p := load(t, t.TempDir())

	if got := p.Thoughts(ctx); len(got) != 0 {
		t.Fatalf("got %v", got)
	}
	user := p.User(ctx)
	if user.Username != "wanderer" || user.Streak != 0 {
		t.Fatalf("got %+v", user)
	}
	settings := p.Settings(ctx)
	if settings.Enabled || settings.Hour != 21 || settings.Minute != 0 {
		t.Fatalf("got %+v", settings)
	}
	if key := p.ThemeKey(ctx); key != "" {
		t.Fatalf("got %q", key)
	}
}

func TestRoundTrip(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	p := load(t, dir)

	now := time.Date(2026, 8, 28, 9, 0, 0, 0, time.UTC)
	in := []*thought.Thought{thought.New("hello **there**", "morning", now)}
	if err := p.SaveThoughts(in); err != nil {
		t.Fatal(err)
	}
	if err := p.SaveUser(thought.UserStats{Username: "aki", Streak: 3}); err != nil {
		t.Fatal(err)
	}
	if err := p.SaveEmotions([]mood.Entry{{Date: "2026-08-28", Emotions: []string{"calm"}}}); err != nil {
		t.Fatal(err)
	}
	if err := p.SaveThemeKey("moss"); err != nil {
		t.Fatal(err)
	}

	// A second instance over the same directory sees everything.
	p = load(t, dir)
	got := p.Thoughts(ctx)
	if len(got) != 1 || got[0].Body != "hello **there**" || got[0].Tag != "morning" {
		t.Fatalf("got %+v", got)
	}
	if !got[0].Timestamp.Equal(now) {
		t.Fatalf("timestamp did not survive: %v", got[0].Timestamp)
	}
	user := p.User(ctx)
	if user.Username != "aki" || user.Streak != 3 {
		t.Fatalf("got %+v", user)
	}
	if e := p.Emotions(ctx); len(e) != 1 || e[0].Emotions[0] != "calm" {
		t.Fatalf("got %+v", e)
	}
	if key := p.ThemeKey(ctx); key != "moss" {
		t.Fatalf("got %q", key)
	}
}

func TestCorruptDocumentReadsAsAbsent(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	p := load(t, dir)

	now := time.Date(2026, 8, 28, 9, 0, 0, 0, time.UTC)
	if err := p.SaveThoughts([]*thought.Thought{thought.New("x", "", now)}); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "thoughts"), []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}

	p = load(t, dir)
	if got := p.Thoughts(ctx); len(got) != 0 {
		t.Fatalf("corrupt document must read as empty, got %v", got)
	}
}

func TestUnknownSchemaReadsAsAbsent(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	doc := `{"schema":"murmur/v9","items":[{"id":"1","body":"future"}]}`
	if err := os.WriteFile(filepath.Join(dir, "thoughts"), []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}

	p := load(t, dir)
	if got := p.Thoughts(ctx); len(got) != 0 {
		t.Fatalf("unknown schema must read as empty, got %v", got)
	}
}

func TestInvalidSettingsFallBack(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	doc := `{"schema":"murmur/v1","items":{"enabled":true,"hour":31,"minute":0}}`
	if err := os.WriteFile(filepath.Join(dir, "settings"), []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}

	p := load(t, dir)
	got := p.Settings(ctx)
	if got.Enabled || got.Hour != 21 {
		t.Fatalf("expected default settings for an invalid document, got %+v", got)
	}

	if err := p.SaveSettings(daybook.Settings{Enabled: true, Hour: 8, Minute: 15}); err != nil {
		t.Fatal(err)
	}
	got = p.Settings(ctx)
	if !got.Enabled || got.Hour != 8 || got.Minute != 15 {
		t.Fatalf("got %+v", got)
	}
}

func TestNilEntriesFilteredOnRead(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	doc := `{"schema":"murmur/v1","items":[null,{"id":"","body":"no id"},{"id":"5","body":"ok","timestamp":"2026-08-28T09:00:00Z"}]}`
	if err := os.WriteFile(filepath.Join(dir, "thoughts"), []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}

	p := load(t, dir)
	got := p.Thoughts(ctx)
	if len(got) != 1 || got[0].ID != "5" {
		t.Fatalf("got %+v", got)
	}
}

func TestWatchSeesWrites(t *testing.T) {
	dir := t.TempDir()
	p := load(t, dir)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events, err := p.Watch(ctx)
	if err != nil {
		t.Fatal(err)
	}

	if err := p.SaveThemeKey("dusk"); err != nil {
		t.Fatal(err)
	}

	// Temp-file traffic can surface as unclassified events ahead of the
	// document change, so drain until the key shows up.
	deadline := time.After(5 * time.Second)
	for {
		select {
		case ev := <-events:
			if ev.Key == "theme" {
				return
			}
		case <-deadline:
			t.Fatal("no event for the written document")
		}
	}
}
