package dataaggregator

import (
	"reflect"
)

// DataSource is a provider of candidate options. Lookup returns
// source.ErrUnsupportedQuery for queries it cannot answer so the next
// registered source gets a chance.
type DataSource interface {
	GetName() string
	Supports() []reflect.Type
	Lookup(any) (interface{}, error)
}
