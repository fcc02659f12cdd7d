package trip

import "time"

type TransportOption struct {
	Mode     TransportMode `groups:"basic"`
	Provider string        `groups:"basic"`

	DepartureTime time.Time `groups:"basic"`
	ArrivalTime   time.Time `groups:"basic"`

	Price           float64 `groups:"basic"`
	DurationMinutes int     `groups:"basic"`
	Transfers       int     `groups:"basic"`

	Notes string `groups:"detailed"`
}

func (t TransportOption) Duration() time.Duration {
	return time.Duration(t.DurationMinutes) * time.Minute
}
