package clients

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/redis/go-redis/v9"

	"tutorlift_backend/internal/logger"
)

// geocodeCacheTTL keeps resolved postal codes warm; postal geography
// changes rarely so a long TTL is safe.
const geocodeCacheTTL = 24 * time.Hour

// Location is a geocoded postal code.
type Location struct {
	City      string  `json:"city"`
	Province  string  `json:"province"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// GeocodingService resolves a postal code to a location. A nil Location
// with a nil error means the geocoder found no result for the code.
type GeocodingService interface {
	Geocode(ctx context.Context, postalCode string) (*Location, error)
}

type geocodingClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	cache      *redis.Client
}

// NewGeocodingClient builds a geocoder with an optional redis read-through
// cache. Pass a nil cache to always hit the provider.
func NewGeocodingClient(baseURL, apiKey string, httpClient *http.Client, cache *redis.Client) GeocodingService {
	return &geocodingClient{baseURL: baseURL, apiKey: apiKey, httpClient: httpClient, cache: cache}
}

func (c *geocodingClient) Geocode(ctx context.Context, postalCode string) (*Location, error) {
	if loc, ok := c.cacheGet(ctx, postalCode); ok {
		return loc, nil
	}

	loc, err := c.fetch(ctx, postalCode)
	if err != nil {
		return nil, err
	}
	if loc != nil {
		c.cacheSet(ctx, postalCode, loc)
	}
	return loc, nil
}

func (c *geocodingClient) fetch(ctx context.Context, postalCode string) (*Location, error) {
	query := url.Values{}
	query.Set("address", postalCode)
	query.Set("components", "country:CA")
	query.Set("key", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/maps/api/geocode/json?"+query.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("geocoding: build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("geocoding: resolve %s: %w", postalCode, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, providerError("geocoding", resp)
	}

	var payload struct {
		Status  string `json:"status"`
		Results []struct {
			AddressComponents []struct {
				LongName string   `json:"long_name"`
				Types    []string `json:"types"`
			} `json:"address_components"`
			Geometry struct {
				Location struct {
					Lat float64 `json:"lat"`
					Lng float64 `json:"lng"`
				} `json:"location"`
			} `json:"geometry"`
		} `json:"results"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("geocoding: decode response: %w", err)
	}

	if len(payload.Results) == 0 {
		return nil, nil
	}

	result := payload.Results[0]
	loc := &Location{
		Latitude:  result.Geometry.Location.Lat,
		Longitude: result.Geometry.Location.Lng,
	}
	for _, component := range result.AddressComponents {
		for _, t := range component.Types {
			switch t {
			case "locality":
				loc.City = component.LongName
			case "administrative_area_level_1":
				loc.Province = component.LongName
			}
		}
	}
	return loc, nil
}

func (c *geocodingClient) cacheGet(ctx context.Context, postalCode string) (*Location, bool) {
	if c.cache == nil {
		return nil, false
	}
	raw, err := c.cache.Get(ctx, cacheKey(postalCode)).Result()
	if err != nil {
		if err != redis.Nil {
			logger.FromContext(ctx).Warn("geocode cache read failed", "error", err)
		}
		return nil, false
	}
	var loc Location
	if err := json.Unmarshal([]byte(raw), &loc); err != nil {
		return nil, false
	}
	return &loc, true
}

func (c *geocodingClient) cacheSet(ctx context.Context, postalCode string, loc *Location) {
	if c.cache == nil {
		return
	}
	raw, err := json.Marshal(loc)
	if err != nil {
		return
	}
	if err := c.cache.Set(ctx, cacheKey(postalCode), raw, geocodeCacheTTL).Err(); err != nil {
		logger.FromContext(ctx).Warn("geocode cache write failed", "error", err)
	}
}

func cacheKey(postalCode string) string {
	return "geocode:" + postalCode
}
