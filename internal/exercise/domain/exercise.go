package domain

import "time"

type ID string

// Exercise is a single log entry. Username is copied from the owning user at
// creation time and is the only link back to that user.
type Exercise struct {
	ID          ID
	Username    string
	Description string
	Duration    int
	Date        time.Time
	CreatedAt   time.Time
}
