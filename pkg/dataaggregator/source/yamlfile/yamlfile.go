package yamlfile

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"reflect"

	"github.com/rs/zerolog/log"
	"github.com/tripplanner/tripplanner/pkg/dataaggregator/query"
	"github.com/tripplanner/tripplanner/pkg/dataaggregator/source"
	"github.com/tripplanner/tripplanner/pkg/trip"
	"gopkg.in/yaml.v3"
)

// Document is one YAML document of provider data. A file may hold several.
type Document struct {
	Transport []source.TransportRecord `yaml:"Transport"`
	Lodging   []source.LodgingRecord   `yaml:"Lodging"`
}

// Source serves the provider tables found in a directory of .yaml files.
// Modes without any rows are left to the next source.
type Source struct {
	Directory string

	transport []source.TransportRecord
	lodging   []source.LodgingRecord
}

func (s *Source) Setup() error {
	err := filepath.Walk(s.Directory,
		func(path string, fileInfo os.FileInfo, err error) error {
			if err != nil {
				return err
			}

			if fileInfo.IsDir() {
				return nil
			}

			extension := filepath.Ext(path)
			if extension != ".yaml" && extension != ".yml" {
				return nil
			}

			log.Debug().Str("path", path).Msg("Loading provider data file")

			providerYaml, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			return s.load(providerYaml)
		})
	if err != nil {
		return err
	}

	log.Info().
		Str("directory", s.Directory).
		Int("transport", len(s.transport)).
		Int("lodging", len(s.lodging)).
		Msg("Loaded provider data")

	return nil
}

func (s *Source) load(providerYaml []byte) error {
	decoder := yaml.NewDecoder(bytes.NewReader(providerYaml))

	for {
		var document Document
		err := decoder.Decode(&document)
		if errors.Is(err, io.EOF) {
			return nil
		} else if err != nil {
			return err
		}

		for _, record := range document.Transport {
			if err := record.Validate(); err != nil {
				return err
			}
		}
		for _, record := range document.Lodging {
			if err := record.Validate(); err != nil {
				return err
			}
		}

		s.transport = append(s.transport, document.Transport...)
		s.lodging = append(s.lodging, document.Lodging...)
	}
}

func (s *Source) GetName() string {
	return "YAML provider data " + s.Directory
}

func (s *Source) Supports() []reflect.Type {
	return []reflect.Type{
		reflect.TypeOf([]trip.TransportOption{}),
		reflect.TypeOf([]trip.LodgingOption{}),
	}
}

func (s *Source) Lookup(q any) (interface{}, error) {
	switch q := q.(type) {
	case query.Transport:
		options, err := source.TransportOptions(s.transport, q.Mode, q.Date)
		if err != nil {
			return nil, err
		}
		if len(options) == 0 {
			return nil, source.ErrUnsupportedQuery
		}

		return options, nil
	case query.Lodging:
		if len(s.lodging) == 0 {
			return nil, source.ErrUnsupportedQuery
		}

		return source.LodgingOptions(s.lodging, q.City)
	default:
		return nil, source.ErrUnsupportedQuery
	}
}
