package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/peterbourgon/diskv/v3"

	"github.com/dlync/murmur/pkg/daybook"
	"github.com/dlync/murmur/pkg/habit"
	"github.com/dlync/murmur/pkg/mood"
	"github.com/dlync/murmur/pkg/thought"
)

// Persistence is the contract the rest of the application reads and writes
// through. Each collection lives under its own key as one versioned JSON
// document. Reads are tolerant: a missing, corrupt, or unknown-schema
// document reads as empty, never as an error.
type Persistence interface {
	Thoughts(ctx context.Context) []*thought.Thought
	SaveThoughts(thoughts []*thought.Thought) error
	User(ctx context.Context) thought.UserStats
	SaveUser(user thought.UserStats) error
	Emotions(ctx context.Context) []mood.Entry
	SaveEmotions(entries []mood.Entry) error
	Habits(ctx context.Context) []habit.Entry
	SaveHabits(entries []habit.Entry) error
	Photos(ctx context.Context) []daybook.PhotoEntry
	SavePhotos(photos []daybook.PhotoEntry) error
	Events(ctx context.Context) []*daybook.CalendarEvent
	SaveEvents(events []*daybook.CalendarEvent) error
	VoiceNotes(ctx context.Context) []*daybook.VoiceNote
	SaveVoiceNotes(notes []*daybook.VoiceNote) error
	Settings(ctx context.Context) daybook.Settings
	SaveSettings(s daybook.Settings) error
	ThemeKey(ctx context.Context) string
	SaveThemeKey(key string) error
	Watch(ctx context.Context) (<-chan Event, error)
}

// Document keys. Each holds a single JSON document.
const (
	keyThoughts   = "thoughts"
	keyUser       = "user"
	keyEmotions   = "emotions"
	keyHabits     = "habits"
	keyPhotos     = "photos"
	keyEvents     = "events"
	keyVoiceNotes = "voicenotes"
	keySettings   = "settings"
	keyTheme      = "theme"
)

// currentSchema tags every persisted document. A document carrying a
// different tag is treated the same as an absent one.
const currentSchema = "murmur/v1"

// Load creates a Persistence backed by diskv using the provided config.
func Load(cfg Config) (Persistence, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	basePath := cfg.BasePath()
	if basePath == "" {
		return nil, errors.New("store: base path required")
	}
	return &persistence{d: diskv.New(diskv.Options{
		BasePath:     basePath,
		TempDir:      filepath.Join(basePath, ".tmp"),
		CacheSizeMax: 1024 * 1024, // 1MB
	}), basePath: basePath}, nil
}

type persistence struct {
	d        *diskv.Diskv
	basePath string
}

// document is the envelope every collection is stored in. The schema tag is
// checked on the way in so a future format can change shape without old
// binaries misreading it.
type document[T any] struct {
	Schema string `json:"schema"`
	Items  T      `json:"items"`
}

// readDoc decodes the document at key into out. Fails closed: any read or
// decode problem leaves out untouched and reports false, with a note on
// stderr for anything other than plain absence.
func readDoc[T any](p *persistence, key string, out *T) bool {
	if !p.d.Has(key) {
		return false
	}
	data, err := p.d.Read(key)
	if err != nil {
		fmt.Fprintf(os.Stderr, "store: %s: %v\n", key, err)
		return false
	}
	var doc document[T]
	if err := json.Unmarshal(data, &doc); err != nil {
		fmt.Fprintf(os.Stderr, "store: %s: corrupt document: %v\n", key, err)
		return false
	}
	if doc.Schema != currentSchema {
		fmt.Fprintf(os.Stderr, "store: %s: unknown schema %q\n", key, doc.Schema)
		return false
	}
	*out = doc.Items
	return true
}

func writeDoc[T any](p *persistence, key string, items T) error {
	data, err := json.Marshal(document[T]{Schema: currentSchema, Items: items})
	if err != nil {
		return fmt.Errorf("store: encode %s: %w", key, err)
	}
	if err := p.d.Write(key, data); err != nil {
		return fmt.Errorf("store: write %s: %w", key, err)
	}
	return nil
}

func (p *persistence) Thoughts(_ context.Context) []*thought.Thought {
	var items []*thought.Thought
	readDoc(p, keyThoughts, &items)
	out := make([]*thought.Thought, 0, len(items))
	for _, t := range items {
		if t == nil || t.ID == "" {
			continue
		}
		out = append(out, t)
	}
	return out
}

func (p *persistence) SaveThoughts(thoughts []*thought.Thought) error {
	return writeDoc(p, keyThoughts, thoughts)
}

func (p *persistence) User(_ context.Context) thought.UserStats {
	user := thought.DefaultUser()
	readDoc(p, keyUser, &user)
	if user.Username == "" {
		user.Username = thought.DefaultUser().Username
	}
	return user
}

func (p *persistence) SaveUser(user thought.UserStats) error {
	user.Schema = thought.CurrentSchema
	return writeDoc(p, keyUser, user)
}

func (p *persistence) Emotions(_ context.Context) []mood.Entry {
	var items []mood.Entry
	readDoc(p, keyEmotions, &items)
	return items
}

func (p *persistence) SaveEmotions(entries []mood.Entry) error {
	return writeDoc(p, keyEmotions, entries)
}

func (p *persistence) Habits(_ context.Context) []habit.Entry {
	var items []habit.Entry
	readDoc(p, keyHabits, &items)
	return items
}

func (p *persistence) SaveHabits(entries []habit.Entry) error {
	return writeDoc(p, keyHabits, entries)
}

func (p *persistence) Photos(_ context.Context) []daybook.PhotoEntry {
	var items []daybook.PhotoEntry
	readDoc(p, keyPhotos, &items)
	return items
}

func (p *persistence) SavePhotos(photos []daybook.PhotoEntry) error {
	return writeDoc(p, keyPhotos, photos)
}

func (p *persistence) Events(_ context.Context) []*daybook.CalendarEvent {
	var items []*daybook.CalendarEvent
	readDoc(p, keyEvents, &items)
	out := make([]*daybook.CalendarEvent, 0, len(items))
	for _, e := range items {
		if e == nil || e.ID == "" {
			continue
		}
		out = append(out, e)
	}
	return out
}

func (p *persistence) SaveEvents(events []*daybook.CalendarEvent) error {
	return writeDoc(p, keyEvents, events)
}

func (p *persistence) VoiceNotes(_ context.Context) []*daybook.VoiceNote {
	var items []*daybook.VoiceNote
	readDoc(p, keyVoiceNotes, &items)
	out := make([]*daybook.VoiceNote, 0, len(items))
	for _, n := range items {
		if n == nil || n.ID == "" {
			continue
		}
		out = append(out, n)
	}
	return out
}

func (p *persistence) SaveVoiceNotes(notes []*daybook.VoiceNote) error {
	return writeDoc(p, keyVoiceNotes, notes)
}

func (p *persistence) Settings(_ context.Context) daybook.Settings {
	s := daybook.DefaultSettings()
	readDoc(p, keySettings, &s)
	if !s.Valid() {
		return daybook.DefaultSettings()
	}
	return s
}

func (p *persistence) SaveSettings(s daybook.Settings) error {
	s.Schema = daybook.CurrentSchema
	return writeDoc(p, keySettings, s)
}

func (p *persistence) ThemeKey(_ context.Context) string {
	var key string
	readDoc(p, keyTheme, &key)
	return key
}

func (p *persistence) SaveThemeKey(key string) error {
	return writeDoc(p, keyTheme, key)
}
