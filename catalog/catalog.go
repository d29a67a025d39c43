package catalog

import (
	"fmt"
	"sort"

	"bikeshare/config"
	"bikeshare/utils"
)

// Source contains the location of the record source of a city
// + Trips: path to the trips file
// + Stations: path to the station coordinates file. Empty if the city has none
// + TimeLayout: layout of the timestamps of the trips file
type Source struct {
	Trips      string
	Stations   string
	TimeLayout string
}

// Catalog maps a city identifier to its record source
type Catalog struct {
	sources map[string]Source
}

// New returns a Catalog with the given sources. City identifiers are case-insensitive
func New(sources map[string]Source) *Catalog {
	normalized := make(map[string]Source, len(sources))
	for city, source := range sources {
		if source.TimeLayout == "" {
			source.TimeLayout = config.DefaultTimeLayout
		}
		normalized[utils.Normalize(city)] = source
	}

	return &Catalog{sources: normalized}
}

// FromConfig returns a Catalog with the datasets declared in the explorer config
func FromConfig(cfg *config.Config) *Catalog {
	sources := make(map[string]Source, len(cfg.Datasets))
	for city, datasetConfig := range cfg.Datasets {
		sources[city] = Source{
			Trips:      datasetConfig.Trips,
			Stations:   datasetConfig.Stations,
			TimeLayout: datasetConfig.TimeLayout,
		}
	}
	return New(sources)
}

// Lookup returns the source registered for city
func (c *Catalog) Lookup(city string) (Source, error) {
	source, ok := c.sources[utils.Normalize(city)]
	if !ok {
		return Source{}, fmt.Errorf("city %q: %w", city, ErrSourceNotFound)
	}
	return source, nil
}

// Cities returns the registered cities sorted alphabetically
func (c *Catalog) Cities() []string {
	cities := make([]string, 0, len(c.sources))
	for city := range c.sources {
		cities = append(cities, city)
	}
	sort.Strings(cities)
	return cities
}
