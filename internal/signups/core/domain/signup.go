package domain

import "time"

// Signup is a captured email signup. Email is the unique key, stored
// lower-cased and trimmed.
type Signup struct {
	Email      string
	Source     string
	CapturedAt time.Time
}
