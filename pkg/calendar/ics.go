package calendar

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/tripplanner/tripplanner/pkg/trip"
)

const (
	ContentType = "text/calendar; charset=utf-8"

	DefaultProductID = "-//TripPlanner//Planner//IT"
	MethodPublish    = "PUBLISH"

	LocalTimeFormat = "20060102T150405"
	UTCTimeFormat   = "20060102T150405Z"

	lineEnding  = "\r\n"
	uidDomain   = "tripplanner"
	alarmReason = "Reminder"
)

type Serializer struct {
	ProductID string
	Method    string

	// AlarmMinutes adds a display alarm that many minutes before each event, 0 disables it
	AlarmMinutes int

	Now    func() time.Time
	NewUID func() string
}

func NewSerializer(alarmMinutes int) *Serializer {
	return &Serializer{
		ProductID:    DefaultProductID,
		AlarmMinutes: alarmMinutes,
		Now:          time.Now,
		NewUID: func() string {
			return fmt.Sprintf("%s@%s", uuid.NewString(), uidDomain)
		},
	}
}

func FormatLocal(t time.Time) string {
	return t.Format(LocalTimeFormat)
}

// Serialize renders the whole document or nothing at all
func (s *Serializer) Serialize(itinerary trip.Itinerary) (string, error) {
	if err := itinerary.Validate(); err != nil {
		return "", err
	}

	stamp := s.now().UTC().Format(UTCTimeFormat)

	lines := []string{
		"BEGIN:VCALENDAR",
		"PRODID:" + s.productID(),
		"VERSION:2.0",
		"CALSCALE:GREGORIAN",
	}
	if s.Method != "" {
		lines = append(lines, "METHOD:"+s.Method)
	}
	lines = append(lines,
		"X-WR-CALNAME:"+Escape(itinerary.Title),
		"X-WR-TIMEZONE:"+TimezoneID,
	)
	lines = append(lines, vtimezoneEuropeRome...)

	for _, event := range itinerary.Events {
		lines = append(lines, s.eventLines(event, stamp)...)
	}

	lines = append(lines, "END:VCALENDAR")

	return strings.Join(lines, lineEnding) + lineEnding, nil
}

func (s *Serializer) Encode(w io.Writer, itinerary trip.Itinerary) error {
	document, err := s.Serialize(itinerary)
	if err != nil {
		return err
	}

	_, err = io.WriteString(w, document)
	return err
}

func (s *Serializer) eventLines(event trip.Event, stamp string) []string {
	lines := []string{
		"BEGIN:VEVENT",
		"UID:" + s.newUID(),
		"DTSTAMP:" + stamp,
		fmt.Sprintf("DTSTART;TZID=%s:%s", TimezoneID, FormatLocal(event.Start)),
		fmt.Sprintf("DTEND;TZID=%s:%s", TimezoneID, FormatLocal(event.End)),
		"SUMMARY:" + Escape(event.Title),
	}

	if event.Location != "" {
		lines = append(lines, "LOCATION:"+Escape(event.Location))
	}

	if description := Description(event); description != "" {
		lines = append(lines, "DESCRIPTION:"+Escape(description))
	}

	if s.AlarmMinutes > 0 {
		lines = append(lines,
			"BEGIN:VALARM",
			fmt.Sprintf("TRIGGER:-PT%dM", s.AlarmMinutes),
			"ACTION:DISPLAY",
			"DESCRIPTION:"+alarmReason,
			"END:VALARM",
		)
	}

	return append(lines, "END:VEVENT")
}

// Description joins the notes and a labelled link, one per line
func Description(event trip.Event) string {
	var parts []string

	if event.Notes != "" {
		parts = append(parts, event.Notes)
	}
	if event.URL != "" {
		parts = append(parts, "Link: "+event.URL)
	}

	return strings.Join(parts, "\n")
}

func (s *Serializer) productID() string {
	if s.ProductID == "" {
		return DefaultProductID
	}

	return s.ProductID
}

func (s *Serializer) now() time.Time {
	if s.Now == nil {
		return time.Now()
	}

	return s.Now()
}

func (s *Serializer) newUID() string {
	if s.NewUID == nil {
		return fmt.Sprintf("%s@%s", uuid.NewString(), uidDomain)
	}

	return s.NewUID()
}
