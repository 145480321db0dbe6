// File: internal/services/directory/feeds.go
package directory

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// flexString decodes a feed value that may arrive as a JSON string, a
// number, or null. The ministry feed is not consistent about this.
type flexString string

func (f *flexString) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		*f = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = flexString(s)
		return nil
	}
	*f = flexString(data)
	return nil
}

func (f flexString) String() string { return string(f) }

// FeedRecord is one pharmacy entry as published by the directory feed.
type FeedRecord struct {
	LocalID      flexString `json:"local_id"`
	Name         flexString `json:"local_nombre"`
	CommuneName  flexString `json:"comuna_nombre"`
	LocalityName flexString `json:"localidad_nombre"`
	Address      flexString `json:"local_direccion"`
	OpensAt      flexString `json:"funcionamiento_hora_apertura"`
	ClosesAt     flexString `json:"funcionamiento_hora_cierre"`
	Phone        flexString `json:"local_telefono"`
	Lat          flexString `json:"local_lat"`
	Lng          flexString `json:"local_lng"`
	Weekday      flexString `json:"funcionamiento_dia"`
	Date         flexString `json:"fecha"`
	RegionCode   flexString `json:"fk_region"`
	CommuneCode  flexString `json:"fk_comuna"`
	LocalityCode flexString `json:"fk_localidad"`
}

// FeedClient downloads pharmacy listings from the public directory endpoints.
type FeedClient struct {
	httpClient *http.Client
}

// NewFeedClient creates a feed client with a bounded request timeout.
func NewFeedClient(timeout time.Duration) *FeedClient {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &FeedClient{
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Fetch downloads and decodes one feed. Any transport or decode failure is
// returned to the caller; a refresh never proceeds on partial data.
func (c *FeedClient) Fetch(ctx context.Context, url string) ([]FeedRecord, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, NewFetchError(url, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, NewFetchError(url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, NewFetchError(url, fmt.Errorf("unexpected status %d", resp.StatusCode))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, NewFetchError(url, err)
	}

	var records []FeedRecord
	if err := json.Unmarshal(body, &records); err != nil {
		return nil, NewFetchError(url, err)
	}
	return records, nil
}
