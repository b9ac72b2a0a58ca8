package maps

import (
	"context"
	"fmt"

	"googlemaps.github.io/maps"
)

// GeocodeService resolves free-text place queries to coordinates via the
// Google Maps Geocoding API. Used to fill in coordinates the model left at
// zero; the whole service is optional and only wired when an API key is set.
type GeocodeService struct {
	client *maps.Client
}

// NewGeocodeService creates a GeocodeService with the given API key.
func NewGeocodeService(apiKey string) (*GeocodeService, error) {
	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create maps client: %w", err)
	}
	return &GeocodeService{client: client}, nil
}

// Locate geocodes query and returns the first result's coordinates.
func (s *GeocodeService) Locate(ctx context.Context, query string) (float64, float64, error) {
	results, err := s.client.Geocode(ctx, &maps.GeocodingRequest{Address: query})
	if err != nil {
		return 0, 0, fmt.Errorf("geocode api error: %w", err)
	}
	if len(results) == 0 {
		return 0, 0, fmt.Errorf("no geocode result for %q", query)
	}
	loc := results[0].Geometry.Location
	return loc.Lat, loc.Lng, nil
}
