package thought

// UserStats tracks the journaling streak and derived entry counts.
//
// Streak and LastLoggedDate are the only fields with real lifecycle logic;
// they change only when a new thought is added, never on deletion.
// ThoughtsToday and ThoughtsTotal are recomputed from the thought list on
// every load and after every add or delete; the stored values are only a
// cache and are never trusted as truth.
type UserStats struct {
	Schema         string     `json:"schema,omitempty"`
	Username       string     `json:"username"`
	Streak         int        `json:"streak"`
	ThoughtsToday  int        `json:"thoughtsToday"`
	ThoughtsTotal  int        `json:"thoughtsTotal"`
	LastLoggedDate *Timestamp `json:"lastLoggedDate"`
}

// DefaultUser is the profile before anything has been written.
func DefaultUser() UserStats {
	return UserStats{
		Schema:   CurrentSchema,
		Username: "wanderer",
	}
}
