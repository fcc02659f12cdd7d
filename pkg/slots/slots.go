package slots

import (
	"time"

	"github.com/tripplanner/tripplanner/pkg/util"
)

type Slot struct {
	Name string

	// Only the clock part of Start and End is used
	Start time.Time
	End   time.Time
}

func clock(hour int, minute int) time.Time {
	return time.Date(0, time.January, 1, hour, minute, 0, 0, time.UTC)
}

var (
	SlotMorning   = Slot{Name: "Morning", Start: clock(9, 0), End: clock(12, 30)}
	SlotAfternoon = Slot{Name: "Afternoon", Start: clock(14, 30), End: clock(18, 0)}
	SlotEvening   = Slot{Name: "Evening", Start: clock(20, 0), End: clock(22, 0)}
)

// DaySlots in the order a day is filled
var DaySlots = []Slot{SlotMorning, SlotAfternoon, SlotEvening}

func (s Slot) On(date time.Time) (time.Time, time.Time) {
	return util.AddTimeToDate(date, s.Start), util.AddTimeToDate(date, s.End)
}
