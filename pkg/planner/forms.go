package planner

import (
	"fmt"
	"strings"

	"github.com/tripplanner/tripplanner/pkg/scoring"
	"github.com/tripplanner/tripplanner/pkg/util"
)

const (
	DefaultTripAlarmMinutes = 45
	DefaultDayAlarmMinutes  = 30
)

// TripForm holds the raw answers of any front end before validation
type TripForm struct {
	Origin        string   `form:"origin" json:"origin"`
	Destination   string   `form:"dest" json:"dest"`
	From          string   `form:"d_from" json:"d_from"`
	To            string   `form:"d_to" json:"d_to"`
	Modes         []string `form:"modes" json:"modes"`
	MaxPerNight   string   `form:"max_night" json:"max_night"`
	AlarmMinutes  string   `form:"alarm_min" json:"alarm_min"`
	LodgingFilter string   `form:"lodging_filter" json:"lodging_filter"`
}

func DefaultTripForm() TripForm {
	return TripForm{
		Origin:       "Bologna",
		Destination:  "Lisbona",
		From:         "2025-10-18",
		To:           "2025-10-21",
		Modes:        []string{"flight", "train", "drive"},
		MaxPerNight:  "100",
		AlarmMinutes: fmt.Sprint(DefaultTripAlarmMinutes),
	}
}

func (f TripForm) Request() (TripRequest, error) {
	var request TripRequest
	var err error

	request.Origin = strings.TrimSpace(f.Origin)
	request.Destination = strings.TrimSpace(f.Destination)
	if request.Origin == "" || request.Destination == "" {
		return request, fmt.Errorf("%w: origin and destination are required", ErrMalformedInput)
	}

	if request.From, err = ParseDate("departure date", f.From); err != nil {
		return request, err
	}
	if request.To, err = ParseDate("return date", f.To); err != nil {
		return request, err
	}
	if request.Modes, err = ParseModes(f.Modes); err != nil {
		return request, err
	}
	if request.MaxPerNight, err = ParseBudget(f.MaxPerNight); err != nil {
		return request, err
	}
	if request.AlarmMinutes, err = ParseMinutes("alarm", f.AlarmMinutes, DefaultTripAlarmMinutes); err != nil {
		return request, err
	}

	request.LodgingFilter = strings.TrimSpace(f.LodgingFilter)
	request.Weights = scoring.DefaultWeights()

	return request, nil
}

type DayForm struct {
	City         string `form:"city" json:"city"`
	From         string `form:"d_from" json:"d_from"`
	To           string `form:"d_to" json:"d_to"`
	Pace         string `form:"pace" json:"pace"`
	Interests    string `form:"interests" json:"interests"`
	AlarmMinutes string `form:"alarm_min" json:"alarm_min"`
}

func DefaultDayForm() DayForm {
	return DayForm{
		City:         "Lisbona",
		From:         "2025-10-18",
		To:           "2025-10-20",
		Pace:         "relax",
		Interests:    "food, views",
		AlarmMinutes: fmt.Sprint(DefaultDayAlarmMinutes),
	}
}

func (f DayForm) Request() (DayRequest, error) {
	var request DayRequest
	var err error

	request.City = strings.TrimSpace(f.City)
	if request.City == "" {
		return request, fmt.Errorf("%w: a city is required", ErrMalformedInput)
	}

	if request.From, err = ParseDate("start date", f.From); err != nil {
		return request, err
	}
	if request.To, err = ParseDate("end date", f.To); err != nil {
		return request, err
	}
	if request.AlarmMinutes, err = ParseMinutes("alarm", f.AlarmMinutes, DefaultDayAlarmMinutes); err != nil {
		return request, err
	}

	request.Pace = strings.TrimSpace(f.Pace)
	// repeated interests repeat their templates
	request.Interests = util.SplitList(f.Interests)

	return request, nil
}
