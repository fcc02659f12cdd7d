package trip

import (
	"errors"
	"fmt"
	"time"
)

var ErrInvalidDateRange = errors.New("end must be after start")

// Event is a single calendar entry. Times are local wall-clock values, their
// time.Location carries no meaning.
type Event struct {
	Title string `groups:"basic"`

	Start time.Time `groups:"basic"`
	End   time.Time `groups:"basic"`

	Location string `groups:"basic"`
	URL      string `groups:"detailed"`
	Notes    string `groups:"detailed"`
}

func NewEvent(title string, start time.Time, end time.Time) (Event, error) {
	event := Event{
		Title: title,
		Start: start,
		End:   end,
	}

	return event, event.Validate()
}

func (e Event) Validate() error {
	if !e.End.After(e.Start) {
		return fmt.Errorf("%w: event %q ends %s before starting %s", ErrInvalidDateRange, e.Title, e.End, e.Start)
	}

	return nil
}

func (e Event) Duration() time.Duration {
	return e.End.Sub(e.Start)
}
