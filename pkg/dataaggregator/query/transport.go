package query

import (
	"time"

	"github.com/tripplanner/tripplanner/pkg/trip"
)

type Transport struct {
	Mode        trip.TransportMode
	Origin      string
	Destination string
	Date        time.Time
}

// Transports fans out into one Transport query per mode
type Transports struct {
	Modes       []trip.TransportMode
	Origin      string
	Destination string
	Date        time.Time
}
