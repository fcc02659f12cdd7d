package query

import "time"

type Lodging struct {
	City string
	From time.Time
	To   time.Time

	// MaxPerNight is a hint for sources able to filter, the planner filters again
	MaxPerNight *float64
}
