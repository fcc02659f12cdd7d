package planner

import (
	"fmt"
	"time"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/kr/pretty"
	"github.com/rs/zerolog/log"
	"github.com/tripplanner/tripplanner/pkg/calendar"
	"github.com/tripplanner/tripplanner/pkg/dataaggregator"
	"github.com/tripplanner/tripplanner/pkg/dataaggregator/query"
	"github.com/tripplanner/tripplanner/pkg/itinerary"
	"github.com/tripplanner/tripplanner/pkg/scoring"
	"github.com/tripplanner/tripplanner/pkg/slots"
	"github.com/tripplanner/tripplanner/pkg/trip"
	"github.com/tripplanner/tripplanner/pkg/util"
)

const (
	tripProductID = "-//TripPlanner//Transport+Lodging//IT"
	dayProductID  = "-//TripPlanner//Day itinerary//IT"
)

type TripRequest struct {
	Origin      string
	Destination string

	From time.Time
	To   time.Time

	Modes []trip.TransportMode

	// MaxPerNight of nil means no lodging budget
	MaxPerNight   *float64
	LodgingFilter string

	AlarmMinutes int

	// MinimumOneNight counts a same day stay as one night when pricing
	MinimumOneNight bool

	Weights scoring.Weights
}

type TripPlan struct {
	Origin      string `groups:"basic"`
	Destination string `groups:"basic"`

	Outbound trip.TransportOption `groups:"basic"`
	Inbound  trip.TransportOption `groups:"basic"`
	Lodging  trip.LodgingOption   `groups:"basic"`

	Nights    int     `groups:"basic"`
	StayTotal float64 `groups:"basic"`

	Itinerary trip.Itinerary `groups:"basic"`
	Links     []string       `groups:"basic"`

	Calendar string `groups:"detailed"`
}

type DayRequest struct {
	City string

	From time.Time
	To   time.Time

	Pace      string
	Interests []string

	AlarmMinutes int
}

type DayPlan struct {
	Itinerary trip.Itinerary `groups:"basic"`
	Links     []string       `groups:"basic"`

	Calendar string `groups:"detailed"`
}

type Planner struct {
	Aggregator *dataaggregator.Aggregator

	NewSerializer func(alarmMinutes int) *calendar.Serializer
}

func New(aggregator *dataaggregator.Aggregator) *Planner {
	return &Planner{
		Aggregator:    aggregator,
		NewSerializer: calendar.NewSerializer,
	}
}

// PlanTrip selects transport both ways and a lodging, then builds the four
// event calendar. Nothing is returned unless every step succeeds.
func (p *Planner) PlanTrip(request TripRequest) (*TripPlan, error) {
	if err := trip.CheckStay(request.From, request.To); err != nil {
		return nil, err
	}

	if len(request.Modes) == 0 {
		return nil, fmt.Errorf("%w: no transport mode selected", scoring.ErrEmptyCandidateSet)
	}

	lodgingFilter, err := compileLodgingFilter(request.LodgingFilter)
	if err != nil {
		return nil, err
	}

	transportScore := scoring.TransportScorer(request.Weights.Transport)

	outbound, err := p.bestTransport(query.Transports{
		Modes:       request.Modes,
		Origin:      request.Origin,
		Destination: request.Destination,
		Date:        request.From,
	}, transportScore)
	if err != nil {
		return nil, fmt.Errorf("outbound: %w", err)
	}

	inbound, err := p.bestTransport(query.Transports{
		Modes:       request.Modes,
		Origin:      request.Destination,
		Destination: request.Origin,
		Date:        request.To,
	}, transportScore)
	if err != nil {
		return nil, fmt.Errorf("return: %w", err)
	}

	lodgings, err := p.Aggregator.LodgingOptions(query.Lodging{
		City:        request.Destination,
		From:        request.From,
		To:          request.To,
		MaxPerNight: request.MaxPerNight,
	})
	if err != nil {
		return nil, fmt.Errorf("lodging: %w", err)
	}

	if request.MaxPerNight != nil {
		budget := *request.MaxPerNight
		util.InPlaceFilter(&lodgings, func(option trip.LodgingOption) bool {
			return option.PricePerNight <= budget
		})
	}

	if lodgingFilter != nil {
		if lodgings, err = filterLodgings(lodgings, lodgingFilter); err != nil {
			return nil, err
		}
	}

	lodging, err := scoring.PickBest(lodgings, scoring.LodgingScorer(request.Weights.Lodging))
	if err != nil {
		return nil, fmt.Errorf("lodging in %s: %w", request.Destination, err)
	}

	tripItinerary, err := itinerary.TransportAndLodging(itinerary.Stay{
		Origin:      request.Origin,
		Destination: request.Destination,
		From:        request.From,
		To:          request.To,
		Outbound:    outbound,
		Inbound:     inbound,
		Lodging:     lodging,
	})
	if err != nil {
		return nil, err
	}

	serializer := p.serializer(request.AlarmMinutes)
	serializer.ProductID = tripProductID

	document, err := serializer.Serialize(tripItinerary)
	if err != nil {
		return nil, err
	}

	nights := itinerary.Nights(request.From, request.To, request.MinimumOneNight)

	plan := &TripPlan{
		Origin:      request.Origin,
		Destination: request.Destination,
		Outbound:    outbound,
		Inbound:     inbound,
		Lodging:     lodging,
		Nights:      nights,
		StayTotal:   itinerary.StayPrice(lodging, nights),
		Itinerary:   tripItinerary,
		Links:       calendar.QuickAddLinks(tripItinerary),
		Calendar:    document,
	}

	if event := log.Debug(); event.Enabled() {
		event.Str("outbound", pretty.Sprint(outbound)).
			Str("inbound", pretty.Sprint(inbound)).
			Str("lodging", pretty.Sprint(lodging)).
			Msg("Selected trip options")
	}

	return plan, nil
}

func (p *Planner) bestTransport(q query.Transports, score func(trip.TransportOption) float64) (trip.TransportOption, error) {
	options, err := p.Aggregator.TransportOptions(q)
	if err != nil {
		return trip.TransportOption{}, err
	}

	return scoring.PickBest(options, score)
}

// PlanDays spreads interest activities over the day slots of every date in the range
func (p *Planner) PlanDays(request DayRequest) (*DayPlan, error) {
	if err := trip.CheckDays(request.From, request.To); err != nil {
		return nil, err
	}

	assignments := slots.Compose(request.From, request.To, request.Pace, slots.Templates(request.Interests))

	dayItinerary, err := itinerary.DayActivities(request.City, request.From, request.To, assignments)
	if err != nil {
		return nil, err
	}

	serializer := p.serializer(request.AlarmMinutes)
	serializer.ProductID = dayProductID
	serializer.Method = calendar.MethodPublish

	document, err := serializer.Serialize(dayItinerary)
	if err != nil {
		return nil, err
	}

	log.Debug().Str("city", request.City).Int("events", len(dayItinerary.Events)).Msg("Composed day itinerary")

	return &DayPlan{
		Itinerary: dayItinerary,
		Links:     calendar.QuickAddLinks(dayItinerary),
		Calendar:  document,
	}, nil
}

func (p *Planner) serializer(alarmMinutes int) *calendar.Serializer {
	if p.NewSerializer == nil {
		return calendar.NewSerializer(alarmMinutes)
	}

	return p.NewSerializer(alarmMinutes)
}

func compileLodgingFilter(filter string) (*vm.Program, error) {
	if filter == "" {
		return nil, nil
	}

	program, err := expr.Compile(filter, expr.Env(trip.LodgingOption{}), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("%w: lodging filter: %v", ErrMalformedInput, err)
	}

	return program, nil
}

func filterLodgings(lodgings []trip.LodgingOption, program *vm.Program) ([]trip.LodgingOption, error) {
	var matching []trip.LodgingOption

	for _, option := range lodgings {
		output, err := expr.Run(program, option)
		if err != nil {
			return nil, fmt.Errorf("%w: lodging filter on %s: %v", ErrMalformedInput, option.Name, err)
		}

		if keep, _ := output.(bool); keep {
			matching = append(matching, option)
		}
	}

	return matching, nil
}
