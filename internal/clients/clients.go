// Package clients holds the typed clients for the external collaborators
// this service depends on: the identity provider, the geocoder and the
// payment provider. Each is consumed through an interface so services can
// be tested without the network.
package clients

import (
	"fmt"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"

	"tutorlift_backend/internal/config"
)

// ProviderError is a non-2xx response from any external provider.
type ProviderError struct {
	Provider   string
	StatusCode int
	Message    string
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("%s: %d %s", e.Provider, e.StatusCode, e.Message)
}

// ClientFault reports whether the provider blamed the request (4xx).
// Services map these to bad-request errors instead of internal ones.
func (e *ProviderError) ClientFault() bool {
	return e.StatusCode >= 400 && e.StatusCode < 500
}

// Clients bundles every external collaborator, dialed once at startup.
type Clients struct {
	Identity IdentityService
	Geocoder GeocodingService
	Payments PaymentService
}

func New(cfg *config.Config) *Clients {
	httpClient := &http.Client{Timeout: 10 * time.Second}

	var cache *redis.Client
	if cfg.Redis.Addr != "" {
		cache = redis.NewClient(&redis.Options{Addr: cfg.Redis.Addr})
	}

	return &Clients{
		Identity: NewIdentityClient(cfg.Identity.BaseURL, cfg.Identity.APIKey, httpClient),
		Geocoder: NewGeocodingClient(cfg.Geocoding.BaseURL, cfg.Geocoding.APIKey, httpClient, cache),
		Payments: NewStripeClient(cfg.Stripe.BaseURL, cfg.Stripe.APIKey, httpClient),
	}
}
