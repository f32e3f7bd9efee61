// Package ocr extracts purchased items from a photographed fiscal receipt
// via the check-recognition API.
package ocr

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/akozyreva/medcab/internal/logger"
)

// Item is a single recognized receipt line. Price is in rubles; the API
// reports kopecks and the client divides by 100.
type Item struct {
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
	Price    float64 `json:"price"`
}

type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

func NewClient(baseURL, token string) *Client {
	return &Client{
		baseURL: baseURL,
		token:   token,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

type apiResponse struct {
	Data struct {
		JSON struct {
			Items []struct {
				Name     string  `json:"name"`
				Quantity float64 `json:"quantity"`
				Price    int64   `json:"price"` // kopecks
			} `json:"items"`
		} `json:"json"`
	} `json:"data"`
}

// RecognizeFile uploads a receipt photo and returns the recognized items.
func (c *Client) RecognizeFile(ctx context.Context, imagePath string) ([]Item, error) {
	f, err := os.Open(imagePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open receipt image: %w", err)
	}
	defer f.Close()

	return c.Recognize(ctx, filepath.Base(imagePath), f)
}

// Recognize uploads receipt image data as a multipart form (qrfile + token).
func (c *Client) Recognize(ctx context.Context, filename string, image io.Reader) ([]Item, error) {
	if c.token == "" {
		return nil, fmt.Errorf("no API token configured, run 'medcab token set' first")
	}

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	part, err := w.CreateFormFile("qrfile", filename)
	if err != nil {
		return nil, err
	}
	if _, err := io.Copy(part, image); err != nil {
		return nil, fmt.Errorf("failed to read receipt image: %w", err)
	}
	if err := w.WriteField("token", c.token); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, &buf)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", w.FormDataContentType())

	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("receipt recognition request failed: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(res.Body)
		return nil, fmt.Errorf("receipt recognition failed with status %d: %s", res.StatusCode, string(body))
	}

	var parsed apiResponse
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("failed to parse recognition response: %w", err)
	}

	raw := parsed.Data.JSON.Items
	if len(raw) == 0 {
		return nil, fmt.Errorf("receipt could not be recognized")
	}

	items := make([]Item, len(raw))
	for i, it := range raw {
		items[i] = Item{
			Name:     it.Name,
			Quantity: it.Quantity,
			Price:    float64(it.Price) / 100,
		}
	}

	logger.Debug("Recognized receipt", "items", len(items))
	return items, nil
}
