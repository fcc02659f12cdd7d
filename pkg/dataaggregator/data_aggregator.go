package dataaggregator

import (
	"errors"
	"reflect"

	"github.com/rs/zerolog/log"
	"github.com/tripplanner/tripplanner/pkg/dataaggregator/source"
	"golang.org/x/exp/slices"
)

var ErrNoSource = errors.New("failed to find a matching data source for type")

type Aggregator struct {
	Sources []DataSource
}

var GlobalAggregator Aggregator

func (a *Aggregator) RegisterSource(source DataSource) {
	a.Sources = append(a.Sources, source)

	log.Debug().Str("name", source.GetName()).Msg("Registering new Data Source")
}

// Lookup asks each source supporting T in registration order
func Lookup[T any](a *Aggregator, query any) (T, error) {
	var empty T

	lookupType := reflect.TypeOf(*new(T))
	if lookupType.Kind() == reflect.Pointer {
		lookupType = lookupType.Elem()
	}

	for _, dataSource := range a.Sources {
		if !slices.Contains(dataSource.Supports(), lookupType) {
			continue
		}

		returnValue, returnError := dataSource.Lookup(query)

		if errors.Is(returnError, source.ErrUnsupportedQuery) {
			continue
		}

		log.Debug().Str("source", dataSource.GetName()).Str("type", lookupType.String()).Msg("Data Source lookup")

		if returnValue == nil {
			return empty, returnError
		} else {
			return returnValue.(T), returnError
		}
	}

	return empty, ErrNoSource
}
