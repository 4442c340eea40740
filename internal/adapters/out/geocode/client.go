// Package geocode provides the HTTP client for the external geocoding
// provider. It implements ports.GeocoderClient against a Google-style
// geocoding API: a GET request with the address as a query parameter and a
// JSON body carrying a status string plus result geometries.
package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"parcelmatch/internal/core/domain/model/kernel"
	"parcelmatch/internal/pkg/errs"
)

const defaultTimeout = 5 * time.Second

// Client calls the geocoding provider over HTTP.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient creates a geocoding client for the given provider endpoint.
// The base URL points at the JSON geocode resource, for example
// "https://maps.googleapis.com/maps/api/geocode/json".
func NewClient(baseURL, apiKey string) (*Client, error) {
	if baseURL == "" {
		return nil, errs.NewValueIsRequiredError("baseURL")
	}
	if apiKey == "" {
		return nil, errs.NewValueIsRequiredError("apiKey")
	}

	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
	}, nil
}

// response mirrors the provider's JSON body. Only the fields the client
// reads are declared.
type response struct {
	Status  string `json:"status"`
	Results []struct {
		Geometry struct {
			Location struct {
				Lat *float64 `json:"lat"`
				Lng *float64 `json:"lng"`
			} `json:"location"`
		} `json:"geometry"`
	} `json:"results"`
}

// Geocode resolves a single-line postal address into a coordinate.
// Any provider error, non-OK status, empty result set or incomplete
// geometry counts as a total failure for the address.
func (c *Client) Geocode(ctx context.Context, postalLine string) (kernel.Coordinate, error) {
	if postalLine == "" {
		return kernel.Coordinate{}, errs.NewValueIsRequiredError("postalLine")
	}

	query := url.Values{}
	query.Set("address", postalLine)
	query.Set("key", c.apiKey)
	requestURL := c.baseURL + "?" + query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return kernel.Coordinate{}, errs.NewGeocodingFailedErrorWithCause(postalLine, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return kernel.Coordinate{}, errs.NewGeocodingFailedErrorWithCause(postalLine, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return kernel.Coordinate{}, errs.NewGeocodingFailedErrorWithCause(postalLine,
			fmt.Errorf("provider returned HTTP %d", resp.StatusCode))
	}

	var body response
	if err = json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return kernel.Coordinate{}, errs.NewGeocodingFailedErrorWithCause(postalLine, err)
	}

	if body.Status != "OK" {
		return kernel.Coordinate{}, errs.NewGeocodingFailedErrorWithCause(postalLine,
			fmt.Errorf("provider status %q", body.Status))
	}
	if len(body.Results) == 0 {
		return kernel.Coordinate{}, errs.NewGeocodingFailedErrorWithCause(postalLine,
			fmt.Errorf("provider returned no results"))
	}

	location := body.Results[0].Geometry.Location
	if location.Lat == nil || location.Lng == nil {
		return kernel.Coordinate{}, errs.NewGeocodingFailedErrorWithCause(postalLine,
			fmt.Errorf("provider result has no coordinates"))
	}

	coordinate, err := kernel.NewCoordinate(*location.Lat, *location.Lng)
	if err != nil {
		return kernel.Coordinate{}, errs.NewGeocodingFailedErrorWithCause(postalLine, err)
	}

	return coordinate, nil
}
