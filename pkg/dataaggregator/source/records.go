package source

import (
	"fmt"
	"time"

	"github.com/jinzhu/copier"
	"github.com/tripplanner/tripplanner/pkg/trip"
	"github.com/tripplanner/tripplanner/pkg/util"
)

const clockFormat = "15:04"

// TransportRecord is a timetable row relative to the travel date
type TransportRecord struct {
	Mode            string  `yaml:"Mode"`
	Provider        string  `yaml:"Provider"`
	Departure       string  `yaml:"Departure"`
	DurationMinutes int     `yaml:"DurationMinutes"`
	Price           float64 `yaml:"Price"`
	Transfers       int     `yaml:"Transfers"`
	Notes           string  `yaml:"Notes"`
}

type LodgingRecord struct {
	Name          string  `yaml:"Name"`
	Location      string  `yaml:"Location"`
	PricePerNight float64 `yaml:"PricePerNight"`
	Rating        float64 `yaml:"Rating"`
	Reviews       int     `yaml:"Reviews"`
	URL           string  `yaml:"URL"`
}

func (r TransportRecord) Validate() error {
	if _, err := trip.ParseTransportMode(r.Mode); err != nil {
		return err
	}
	if _, err := time.Parse(clockFormat, r.Departure); err != nil {
		return fmt.Errorf("departure %q of %s: %w", r.Departure, r.Provider, err)
	}
	if r.DurationMinutes <= 0 || r.Price < 0 || r.Transfers < 0 {
		return fmt.Errorf("invalid figures for %s", r.Provider)
	}

	return nil
}

// ToOption places the record on date, arriving DurationMinutes after departure
func (r TransportRecord) ToOption(date time.Time) (trip.TransportOption, error) {
	var option trip.TransportOption

	if err := r.Validate(); err != nil {
		return option, err
	}

	if err := copier.Copy(&option, r); err != nil {
		return option, err
	}

	mode, _ := trip.ParseTransportMode(r.Mode)
	departureClock, _ := time.Parse(clockFormat, r.Departure)

	option.Mode = mode
	option.DepartureTime = util.AddTimeToDate(date, departureClock)
	option.ArrivalTime = option.DepartureTime.Add(option.Duration())

	return option, nil
}

func (r LodgingRecord) Validate() error {
	if r.Name == "" {
		return fmt.Errorf("lodging without a name")
	}
	if r.PricePerNight < 0 || r.Rating < 0 || r.Rating > 5 || r.Reviews < 0 {
		return fmt.Errorf("invalid figures for %s", r.Name)
	}

	return nil
}

// ToOption fills an empty location with the city being searched
func (r LodgingRecord) ToOption(city string) (trip.LodgingOption, error) {
	var option trip.LodgingOption

	if err := r.Validate(); err != nil {
		return option, err
	}

	if err := copier.Copy(&option, r); err != nil {
		return option, err
	}

	if option.Location == "" {
		option.Location = city
	}

	return option, nil
}

func TransportOptions(records []TransportRecord, mode trip.TransportMode, date time.Time) ([]trip.TransportOption, error) {
	var options []trip.TransportOption

	for _, record := range records {
		if recordMode, _ := trip.ParseTransportMode(record.Mode); recordMode != mode {
			continue
		}

		option, err := record.ToOption(date)
		if err != nil {
			return nil, err
		}

		options = append(options, option)
	}

	return options, nil
}

func LodgingOptions(records []LodgingRecord, city string) ([]trip.LodgingOption, error) {
	options := make([]trip.LodgingOption, 0, len(records))

	for _, record := range records {
		option, err := record.ToOption(city)
		if err != nil {
			return nil, err
		}

		options = append(options, option)
	}

	return options, nil
}
