package thought

import (
	"strconv"
	"strings"
	"time"
)

// Thought is a single journal entry. Immutable once created except for
// deletion; identity is ID.
type Thought struct {
	Schema    string    `json:"schema,omitempty"`
	ID        string    `json:"id"`
	Body      string    `json:"body"`
	Tag       string    `json:"tag,omitempty"`
	Timestamp Timestamp `json:"timestamp"`
}

// New creates a thought stamped at now. IDs are millisecond timestamps so
// they sort in creation order.
func New(body, tag string, now time.Time) *Thought {
	return &Thought{
		Schema:    CurrentSchema,
		ID:        strconv.FormatInt(now.UnixMilli(), 10),
		Body:      strings.TrimSpace(body),
		Tag:       strings.TrimSpace(tag),
		Timestamp: Timestamp{Time: now},
	}
}

// CurrentSchema tags persisted thought records.
const CurrentSchema = "murmur/v1"
