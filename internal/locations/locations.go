// Package locations loads the list of places to render as hex tiles.
//
// The file is a JSON object mapping a tile name to either a free-text address
// or a two-element [latitude, longitude] array:
//
//	{
//	  "Home":   "221B Baker Street, London",
//	  "Harbor": [51.5033, -0.1195]
//	}
package locations

import (
	"fmt"
	"os"
	"sort"

	"github.com/bytedance/sonic"
)

// Coordinates is a normalized latitude/longitude pair.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Location is either an address or a coordinate pair; exactly one is set.
type Location struct {
	Address string       `json:"address,omitempty"`
	Coords  *Coordinates `json:"coords,omitempty"`
}

// IsCoordinates reports whether the location is a coordinate pair.
func (l Location) IsCoordinates() bool {
	return l.Coords != nil
}

func (l Location) String() string {
	if l.Coords != nil {
		return fmt.Sprintf("(%g, %g)", l.Coords.Lat, l.Coords.Lon)
	}
	return l.Address
}

// Set maps tile names to locations.
type Set map[string]Location

// Names returns the tile names in sorted order.
func (s Set) Names() []string {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Load reads and normalizes a locations file.
func Load(path string) (Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read locations: %w", err)
	}
	return Parse(data)
}

// Parse normalizes a locations document. List values must hold exactly two
// numbers; any other value type is an error naming the offending entry.
func Parse(data []byte) (Set, error) {
	var raw map[string]interface{}
	if err := sonic.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse locations: %w", err)
	}

	set := make(Set, len(raw))
	for name, v := range raw {
		loc, err := normalize(v)
		if err != nil {
			return nil, fmt.Errorf("location %q: %w", name, err)
		}
		set[name] = loc
	}
	return set, nil
}

func normalize(v interface{}) (Location, error) {
	switch val := v.(type) {
	case string:
		if val == "" {
			return Location{}, fmt.Errorf("empty address")
		}
		return Location{Address: val}, nil
	case []interface{}:
		if len(val) != 2 {
			return Location{}, fmt.Errorf("coordinates need 2 values, got %d", len(val))
		}
		var pair [2]float64
		for i, item := range val {
			f, ok := item.(float64)
			if !ok {
				return Location{}, fmt.Errorf("coordinate %d is %T, not a number", i, item)
			}
			pair[i] = f
		}
		return Location{Coords: &Coordinates{Lat: pair[0], Lon: pair[1]}}, nil
	default:
		return Location{}, fmt.Errorf("unsupported value type %T", v)
	}
}
