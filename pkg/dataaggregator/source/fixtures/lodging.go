package fixtures

import (
	"reflect"

	"github.com/tripplanner/tripplanner/pkg/dataaggregator/query"
	"github.com/tripplanner/tripplanner/pkg/dataaggregator/source"
	"github.com/tripplanner/tripplanner/pkg/trip"
)

type LodgingSource struct{}

func (s LodgingSource) GetName() string {
	return "Fixture lodgings"
}

func (s LodgingSource) Supports() []reflect.Type {
	return []reflect.Type{
		reflect.TypeOf([]trip.LodgingOption{}),
	}
}

func (s LodgingSource) Lookup(q any) (interface{}, error) {
	switch q := q.(type) {
	case query.Lodging:
		return source.LodgingOptions(Lodgings, q.City)
	default:
		return nil, source.ErrUnsupportedQuery
	}
}
