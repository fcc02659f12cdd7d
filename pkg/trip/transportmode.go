package trip

import (
	"fmt"
	"strings"
)

type TransportMode string

const (
	TransportModeFlight TransportMode = "flight"
	TransportModeTrain  TransportMode = "train"
	TransportModeDrive  TransportMode = "drive"
)

// TransportModes is the canonical order candidates are gathered in
var TransportModes = []TransportMode{
	TransportModeFlight,
	TransportModeTrain,
	TransportModeDrive,
}

func ParseTransportMode(s string) (TransportMode, error) {
	mode := TransportMode(strings.ToLower(strings.TrimSpace(s)))

	switch mode {
	case TransportModeFlight, TransportModeTrain, TransportModeDrive:
		return mode, nil
	}

	return "", fmt.Errorf("unrecognised transport mode %q", s)
}

func (m TransportMode) String() string {
	return string(m)
}
