package fixtures

import (
	"reflect"

	"github.com/tripplanner/tripplanner/pkg/dataaggregator/query"
	"github.com/tripplanner/tripplanner/pkg/dataaggregator/source"
	"github.com/tripplanner/tripplanner/pkg/trip"
)

// TransportSource answers transport queries for a single mode from a fixed table
type TransportSource struct {
	Name    string
	Mode    trip.TransportMode
	Records []source.TransportRecord
}

func FlightSource() TransportSource {
	return TransportSource{Name: "Fixture flights", Mode: trip.TransportModeFlight, Records: Flights}
}

func TrainSource() TransportSource {
	return TransportSource{Name: "Fixture trains", Mode: trip.TransportModeTrain, Records: Trains}
}

func DriveSource() TransportSource {
	return TransportSource{Name: "Fixture drive estimate", Mode: trip.TransportModeDrive, Records: Drives}
}

func (s TransportSource) GetName() string {
	return s.Name
}

func (s TransportSource) Supports() []reflect.Type {
	return []reflect.Type{
		reflect.TypeOf([]trip.TransportOption{}),
	}
}

func (s TransportSource) Lookup(q any) (interface{}, error) {
	switch q := q.(type) {
	case query.Transport:
		if q.Mode != s.Mode {
			return nil, source.ErrUnsupportedQuery
		}

		return source.TransportOptions(s.Records, s.Mode, q.Date)
	default:
		return nil, source.ErrUnsupportedQuery
	}
}
