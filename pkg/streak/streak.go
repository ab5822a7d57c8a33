// Package streak maintains the journaling streak and derives day-bucketed
// activity counts. Everything here is a pure function over its inputs; the
// caller owns persistence and decides whether to adopt the returned stats.
package streak

import (
	"sort"
	"time"

	"github.com/dlync/murmur/pkg/thought"
	"github.com/dlync/murmur/pkg/timeutil"
)

// OnThoughtAdded advances the streak for a thought written at now and
// refreshes the derived counts from the full thought list (which already
// includes the new thought).
//
// The continuation rule: a first-ever entry starts the streak at 1; a second
// entry on the same calendar day leaves it unchanged; an entry the day after
// the last logged day extends it by one; a gap of two or more days resets it
// to 1. LastLoggedDate is always moved to now.
func OnThoughtAdded(now time.Time, loc *time.Location, user thought.UserStats, thoughts []*thought.Thought) thought.UserStats {
	next := user
	next.Streak = continueStreak(now, loc, user)
	next.LastLoggedDate = &thought.Timestamp{Time: now}
	next.ThoughtsToday = countOnDay(thoughts, timeutil.DayKey(now, loc), loc)
	next.ThoughtsTotal = len(thoughts)
	return next
}

// OnResume re-evaluates a loaded streak once, at app start. It detects a
// streak that silently expired while the app was closed: a last log on
// today's or yesterday's calendar day keeps the streak alive, anything older
// zeroes it. It never increments and never touches LastLoggedDate — only
// writing a new thought can grow a streak; opening the app can only
// confirm or kill one.
func OnResume(now time.Time, loc *time.Location, user thought.UserStats, thoughts []*thought.Thought) thought.UserStats {
	next := user
	next.Streak = restoreStreak(now, loc, user)
	next.ThoughtsToday = countOnDay(thoughts, timeutil.DayKey(now, loc), loc)
	next.ThoughtsTotal = len(thoughts)
	return next
}

// OnThoughtDeleted refreshes the derived counts from the remaining thoughts.
// Streak and LastLoggedDate are deliberately untouched: deleting a past
// reflection should not retroactively break a streak earned by writing that
// day, even when the deleted thought was the only one for the day that
// established it.
func OnThoughtDeleted(now time.Time, loc *time.Location, user thought.UserStats, remaining []*thought.Thought) thought.UserStats {
	next := user
	next.ThoughtsToday = countOnDay(remaining, timeutil.DayKey(now, loc), loc)
	next.ThoughtsTotal = len(remaining)
	return next
}

func continueStreak(now time.Time, loc *time.Location, user thought.UserStats) int {
	if user.LastLoggedDate == nil || user.LastLoggedDate.IsZero() {
		return 1
	}
	last := timeutil.DayKey(user.LastLoggedDate.Time, loc)
	switch last {
	case timeutil.DayKey(now, loc):
		return user.Streak
	case timeutil.DaysAgo(now, 1, loc):
		return user.Streak + 1
	default:
		return 1
	}
}

func restoreStreak(now time.Time, loc *time.Location, user thought.UserStats) int {
	if user.LastLoggedDate == nil || user.LastLoggedDate.IsZero() {
		return 0
	}
	last := timeutil.DayKey(user.LastLoggedDate.Time, loc)
	if last == timeutil.DayKey(now, loc) || last == timeutil.DaysAgo(now, 1, loc) {
		return user.Streak
	}
	return 0
}

func countOnDay(thoughts []*thought.Thought, day string, loc *time.Location) int {
	count := 0
	for _, t := range thoughts {
		if t == nil {
			continue
		}
		if timeutil.DayKey(t.Timestamp.Time, loc) == day {
			count++
		}
	}
	return count
}

// DayKeys projects thoughts onto their calendar day keys in loc.
func DayKeys(thoughts []*thought.Thought, loc *time.Location) []string {
	keys := make([]string, 0, len(thoughts))
	for _, t := range thoughts {
		if t == nil {
			continue
		}
		keys = append(keys, timeutil.DayKey(t.Timestamp.Time, loc))
	}
	return keys
}

// AggregateByDay groups day keys into per-day counts over an inclusive
// range. Either bound may be empty to leave that side open. The same
// contract serves thoughts, emotion logs, and habit logs — counts only, no
// ordering concerns.
func AggregateByDay(days []string, since, until string) map[string]int {
	counts := make(map[string]int)
	for _, day := range days {
		if day == "" {
			continue
		}
		if since != "" && day < since {
			continue
		}
		if until != "" && day > until {
			continue
		}
		counts[day]++
	}
	return counts
}

// DaySelections is one day's confirmed category selections, the shape shared
// by emotion and habit logs.
type DaySelections struct {
	Day string
	IDs []string
}

// Frequency is a category id with its occurrence count.
type Frequency struct {
	ID    string
	Count int
}

// TopByFrequency counts category occurrences across the trailing windowDays
// calendar days (inclusive of today), keeps categories that occurred at
// least once, and orders them by descending count. Ties are broken by the
// category's position in the canonical catalog order, not by record order.
// k <= 0 returns the full filtered list.
func TopByFrequency(records []DaySelections, canonical []string, windowDays int, now time.Time, loc *time.Location, k int) []Frequency {
	if windowDays < 1 {
		windowDays = 1
	}
	cutoff := timeutil.DaysAgo(now, windowDays-1, loc)
	today := timeutil.DayKey(now, loc)

	counts := make(map[string]int)
	for _, rec := range records {
		if rec.Day < cutoff || rec.Day > today {
			continue
		}
		for _, id := range rec.IDs {
			counts[id]++
		}
	}

	// Walking the canonical list first gives the stable sort its tie-break
	// order for free.
	out := make([]Frequency, 0, len(counts))
	for _, id := range canonical {
		if counts[id] > 0 {
			out = append(out, Frequency{ID: id, Count: counts[id]})
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Count > out[j].Count
	})

	if k > 0 && len(out) > k {
		out = out[:k]
	}
	return out
}
