package slots

import (
	"time"
)

type Assignment struct {
	Date     time.Time
	Slot     Slot
	Activity string
}

func (a Assignment) Start() time.Time {
	start, _ := a.Slot.On(a.Date)
	return start
}

func (a Assignment) End() time.Time {
	_, end := a.Slot.On(a.Date)
	return end
}

// Compose fills every day from start to end inclusive with a contiguous slice of
// the templates. When fewer templates remain than a day needs, that day starts
// over from the first template and the leftover ones are skipped.
func Compose(start time.Time, end time.Time, pace string, templates []string) []Assignment {
	if len(templates) == 0 {
		return nil
	}

	perDay := ActivitiesPerDay(pace)
	if perDay > len(DaySlots) {
		perDay = len(DaySlots)
	}

	var assignments []Assignment
	cursor := 0

	for date := startOfDay(start); !date.After(startOfDay(end)); date = date.AddDate(0, 0, 1) {
		day := window(templates, cursor, perDay)
		if len(day) < perDay {
			cursor = 0
			day = window(templates, cursor, perDay)
		}
		cursor += perDay

		for i, activity := range day {
			assignments = append(assignments, Assignment{
				Date:     date,
				Slot:     DaySlots[i],
				Activity: activity,
			})
		}
	}

	return assignments
}

func window(templates []string, from int, size int) []string {
	if from >= len(templates) {
		return nil
	}

	to := from + size
	if to > len(templates) {
		to = len(templates)
	}

	return templates[from:to]
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
