package activity

import "time"

// Line is one display-ready description of a single event.
type Line struct {
	Kind      string // event type with the "Event" suffix stripped, e.g. "Push"
	Repo      string
	Text      string // the full "- ..." display line
	Timestamp time.Time
}
