package yamlfile

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tripplanner/tripplanner/pkg/dataaggregator/query"
	"github.com/tripplanner/tripplanner/pkg/dataaggregator/source"
	"github.com/tripplanner/tripplanner/pkg/trip"
)

const providerData = `
Transport:
  - Mode: train
    Provider: Regionale
    Departure: "06:10"
    DurationMinutes: 300
    Price: 25
    Transfers: 2
    Notes: Slow but cheap
---
Lodging:
  - Name: Casa Azul
    Location: Alfama
    PricePerNight: 70
    Rating: 4.6
    Reviews: 300
  - Name: Pensão Central
    PricePerNight: 40
    Rating: 3.9
    Reviews: 80
`

func writeProviderData(t *testing.T, contents string) string {
	directory := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(directory, "providers.yaml"), []byte(contents), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(directory, "README.txt"), []byte("ignored"), 0o644))

	return directory
}

func TestSourceLookup(t *testing.T) {
	yamlSource := &Source{Directory: writeProviderData(t, providerData)}
	require.NoError(t, yamlSource.Setup())

	date := time.Date(2025, 10, 18, 0, 0, 0, 0, time.UTC)

	result, err := yamlSource.Lookup(query.Transport{Mode: trip.TransportModeTrain, Date: date})
	require.NoError(t, err)

	trains := result.([]trip.TransportOption)
	require.Len(t, trains, 1)
	assert.Equal(t, "Regionale", trains[0].Provider)
	assert.Equal(t, 2, trains[0].Transfers)
	assert.Equal(t, "Slow but cheap", trains[0].Notes)
	assert.Equal(t, time.Date(2025, 10, 18, 11, 10, 0, 0, time.UTC), trains[0].ArrivalTime)

	_, err = yamlSource.Lookup(query.Transport{Mode: trip.TransportModeFlight, Date: date})
	assert.ErrorIs(t, err, source.ErrUnsupportedQuery)

	result, err = yamlSource.Lookup(query.Lodging{City: "Lisbona"})
	require.NoError(t, err)

	lodgings := result.([]trip.LodgingOption)
	require.Len(t, lodgings, 2)
	assert.Equal(t, "Alfama", lodgings[0].Location)
	assert.Equal(t, "Lisbona", lodgings[1].Location)
	assert.Equal(t, 4.6, lodgings[0].Rating)
}

func TestSourceRejectsInvalidRows(t *testing.T) {
	yamlSource := &Source{Directory: writeProviderData(t, "Transport:\n  - Mode: boat\n    Provider: Ferry\n    Departure: \"07:00\"\n    DurationMinutes: 60\n")}
	assert.Error(t, yamlSource.Setup())

	yamlSource = &Source{Directory: writeProviderData(t, "Lodging:\n  - Name: Too good\n    Rating: 7\n")}
	assert.Error(t, yamlSource.Setup())
}

func TestSourceMissingDirectory(t *testing.T) {
	yamlSource := &Source{Directory: filepath.Join(t.TempDir(), "missing")}
	assert.Error(t, yamlSource.Setup())
}
