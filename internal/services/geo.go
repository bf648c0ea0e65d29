package services

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// GeoService resolves an IP address to a coarse location via an
// ip-api.com-style JSON endpoint. Lookups are best effort; callers fall back
// to the unknown location on any error.
type GeoService struct {
	apiURL string
	client *http.Client
}

func NewGeoService(apiURL string) *GeoService {
	return &GeoService{
		apiURL: apiURL,
		client: &http.Client{Timeout: 5 * time.Second},
	}
}

type geoResponse struct {
	Status  string `json:"status"`
	Country string `json:"country"`
	City    string `json:"city"`
}

// Lookup returns the country and city for the given IP address.
func (s *GeoService) Lookup(ip string) (string, string, error) {
	url := fmt.Sprintf("%s/%s", s.apiURL, ip)
	resp, err := s.client.Get(url)
	if err != nil {
		return "", "", fmt.Errorf("geolocation request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", "", fmt.Errorf("geolocation API returned status %d", resp.StatusCode)
	}

	var geo geoResponse
	if err := json.NewDecoder(resp.Body).Decode(&geo); err != nil {
		return "", "", fmt.Errorf("failed to decode geolocation response: %w", err)
	}

	if geo.Status != "success" {
		return "", "", fmt.Errorf("geolocation lookup failed for %s", ip)
	}

	return geo.Country, geo.City, nil
}
