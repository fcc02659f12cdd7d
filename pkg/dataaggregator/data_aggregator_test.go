package dataaggregator

import (
	"reflect"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tripplanner/tripplanner/pkg/dataaggregator/query"
	"github.com/tripplanner/tripplanner/pkg/dataaggregator/source"
	"github.com/tripplanner/tripplanner/pkg/dataaggregator/source/fixtures"
	"github.com/tripplanner/tripplanner/pkg/trip"
)

var travelDate = time.Date(2025, 10, 18, 0, 0, 0, 0, time.UTC)

func fixtureAggregator() *Aggregator {
	aggregator := &Aggregator{}
	aggregator.RegisterSource(fixtures.FlightSource())
	aggregator.RegisterSource(fixtures.TrainSource())
	aggregator.RegisterSource(fixtures.DriveSource())
	aggregator.RegisterSource(fixtures.LodgingSource{})

	return aggregator
}

type staticLodgingSource struct {
	options []trip.LodgingOption
}

func (s staticLodgingSource) GetName() string { return "static" }

func (s staticLodgingSource) Supports() []reflect.Type {
	return []reflect.Type{reflect.TypeOf([]trip.LodgingOption{})}
}

func (s staticLodgingSource) Lookup(q any) (interface{}, error) {
	if _, ok := q.(query.Lodging); !ok {
		return nil, source.ErrUnsupportedQuery
	}

	return s.options, nil
}

func TestTransportOptionsCanonicalOrder(t *testing.T) {
	options, err := fixtureAggregator().TransportOptions(query.Transports{
		Modes:       []trip.TransportMode{trip.TransportModeDrive, trip.TransportModeFlight, trip.TransportModeTrain},
		Origin:      "Bologna",
		Destination: "Lisbona",
		Date:        travelDate,
	})
	require.NoError(t, err)

	var providers []string
	for _, option := range options {
		providers = append(providers, option.Provider)
	}

	assert.Equal(t, []string{"ITA Airways", "Lufthansa", "Frecciarossa", "Italo", "Car (estimate)"}, providers)
}

func TestTransportOptionsTimes(t *testing.T) {
	options, err := fixtureAggregator().TransportOptions(query.Transports{
		Modes: []trip.TransportMode{trip.TransportModeTrain},
		Date:  travelDate,
	})
	require.NoError(t, err)
	require.Len(t, options, 2)

	frecciarossa := options[0]
	assert.Equal(t, trip.TransportModeTrain, frecciarossa.Mode)
	assert.Equal(t, time.Date(2025, 10, 18, 7, 30, 0, 0, time.UTC), frecciarossa.DepartureTime)
	assert.Equal(t, time.Date(2025, 10, 18, 10, 35, 0, 0, time.UTC), frecciarossa.ArrivalTime)
	assert.Equal(t, 59.0, frecciarossa.Price)
	assert.Equal(t, 185, frecciarossa.DurationMinutes)

	for _, option := range options {
		assert.Equal(t, option.Duration(), option.ArrivalTime.Sub(option.DepartureTime))
	}
}

func TestTransportOptionsNoModes(t *testing.T) {
	options, err := fixtureAggregator().TransportOptions(query.Transports{Date: travelDate})
	require.NoError(t, err)
	assert.Empty(t, options)
}

func TestTransportOptionsMissingSource(t *testing.T) {
	aggregator := &Aggregator{}
	aggregator.RegisterSource(fixtures.TrainSource())

	_, err := aggregator.TransportOptions(query.Transports{
		Modes: []trip.TransportMode{trip.TransportModeTrain, trip.TransportModeFlight},
		Date:  travelDate,
	})
	assert.ErrorIs(t, err, ErrNoSource)
}

func TestLodgingOptions(t *testing.T) {
	options, err := fixtureAggregator().LodgingOptions(query.Lodging{City: "Lisbona"})
	require.NoError(t, err)
	require.Len(t, options, 4)

	for _, option := range options {
		assert.Equal(t, "Lisbona", option.Location)
	}
	assert.Equal(t, "Hotel Centro Storico", options[0].Name)
}

func TestLookupRegistrationOrder(t *testing.T) {
	aggregator := &Aggregator{}
	aggregator.RegisterSource(fixtures.FlightSource())
	aggregator.RegisterSource(staticLodgingSource{options: []trip.LodgingOption{{Name: "First"}}})
	aggregator.RegisterSource(fixtures.LodgingSource{})

	options, err := aggregator.LodgingOptions(query.Lodging{City: "Lisbona"})
	require.NoError(t, err)
	require.Len(t, options, 1)
	assert.Equal(t, "First", options[0].Name)
}

func TestLookupUnknownType(t *testing.T) {
	_, err := Lookup[[]string](fixtureAggregator(), query.Lodging{})
	assert.ErrorIs(t, err, ErrNoSource)
}
