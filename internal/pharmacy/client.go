// Package pharmacy finds nearby pharmacies through the Overpass API.
package pharmacy

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// Pharmacy is a single pharmacy node from OpenStreetMap.
type Pharmacy struct {
	ID   string  `json:"id"`
	Name string  `json:"name"`
	Lat  float64 `json:"lat"`
	Lon  float64 `json:"lon"`
}

// DirectionsURL returns a Google Maps directions link to the pharmacy.
func (p Pharmacy) DirectionsURL() string {
	q := url.Values{}
	q.Set("api", "1")
	q.Set("destination", fmt.Sprintf("%f,%f", p.Lat, p.Lon))
	return "https://www.google.com/maps/dir/?" + q.Encode()
}

type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

type overpassResponse struct {
	Elements []struct {
		ID   int64   `json:"id"`
		Lat  float64 `json:"lat"`
		Lon  float64 `json:"lon"`
		Tags struct {
			Name string `json:"name"`
		} `json:"tags"`
	} `json:"elements"`
}

// Nearby queries pharmacy nodes within radius meters of the given point.
// Unnamed nodes get the generic "Аптека" label, matching the map view.
func (c *Client) Nearby(ctx context.Context, lat, lon float64, radius int) ([]Pharmacy, error) {
	if lat < -90 || lat > 90 || lon < -180 || lon > 180 {
		return nil, fmt.Errorf("invalid coordinates %f,%f", lat, lon)
	}
	if radius <= 0 {
		return nil, fmt.Errorf("radius must be positive")
	}

	query := fmt.Sprintf("[out:json];node[amenity=pharmacy](around:%d,%f,%f);out;", radius, lat, lon)
	reqURL := c.baseURL + "?data=" + url.QueryEscape(query)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, err
	}

	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("pharmacy lookup failed: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(res.Body)
		return nil, fmt.Errorf("pharmacy lookup failed with status %d: %s", res.StatusCode, string(body))
	}

	var parsed overpassResponse
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("failed to parse pharmacy response: %w", err)
	}

	pharmacies := make([]Pharmacy, 0, len(parsed.Elements))
	for _, el := range parsed.Elements {
		name := el.Tags.Name
		if name == "" {
			name = "Аптека"
		}
		pharmacies = append(pharmacies, Pharmacy{
			ID:   strconv.FormatInt(el.ID, 10),
			Name: name,
			Lat:  el.Lat,
			Lon:  el.Lon,
		})
	}

	return pharmacies, nil
}
