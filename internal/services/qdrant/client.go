// File: internal/services/qdrant/client.go
package qdrant

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/qdrant/go-client/qdrant"
)

// ClientService implements Qdrant operations over the HTTP REST API.
type ClientService struct {
	config  *Config
	client  *http.Client
	baseURL string
	logger  Logger
}

// NewClientService creates a new HTTP-based Qdrant client.
func NewClientService(config *Config, logger Logger) (*ClientService, error) {
	if err := config.Validate(); err != nil {
		return nil, NewConfigError(err.Error())
	}

	service := &ClientService{
		config:  config,
		client:  &http.Client{Timeout: config.Timeout},
		baseURL: strings.TrimRight(config.URL, "/"),
		logger:  logger,
	}

	logger.Info("Qdrant HTTP client initialized",
		"url", service.baseURL,
		"collection", config.Collection)

	return service, nil
}

func (c *ClientService) do(ctx context.Context, method, url string, body interface{}) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, c.config.Timeout)
	defer cancel()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return nil, NewOperationError("encoding request body", err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return nil, NewOperationError("building request", err)
	}
	if c.config.APIKey != "" {
		req.Header.Set("Api-Key", c.config.APIKey)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, NewOperationError("HTTP request failed", err)
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, NewOperationError(
			fmt.Sprintf("HTTP %d: %s", resp.StatusCode, string(respBody)), nil)
	}
	return respBody, nil
}

// HealthCheck tests the connection by fetching collection info.
func (c *ClientService) HealthCheck(ctx context.Context) error {
	url := fmt.Sprintf("%s/collections/%s", c.baseURL, c.config.Collection)
	if _, err := c.do(ctx, http.MethodGet, url, nil); err != nil {
		c.logger.Error("Qdrant health check failed", "error", err)
		return NewConnectionError("health check failed", err)
	}
	c.logger.Debug("Qdrant health check passed")
	return nil
}

type queryResponse struct {
	Result struct {
		Points []struct {
			ID      json.RawMessage        `json:"id"`
			Score   float32                `json:"score"`
			Payload map[string]interface{} `json:"payload"`
		} `json:"points"`
	} `json:"result"`
}

// QuerySimilar performs a nearest-neighbor search with payloads included.
func (c *ClientService) QuerySimilar(ctx context.Context, embedding []float32, topK int) ([]*qdrant.ScoredPoint, error) {
	url := fmt.Sprintf("%s/collections/%s/points/query", c.baseURL, c.config.Collection)

	requestBody := map[string]interface{}{
		"query":        embedding,
		"limit":        topK,
		"with_payload": true,
	}

	raw, err := c.do(ctx, http.MethodPost, url, requestBody)
	if err != nil {
		c.logger.Error("similarity search failed", "error", err)
		return nil, err
	}

	var response queryResponse
	if err := json.Unmarshal(raw, &response); err != nil {
		return nil, NewOperationError("decoding search response", err)
	}

	scoredPoints := make([]*qdrant.ScoredPoint, len(response.Result.Points))
	for i, point := range response.Result.Points {
		scoredPoints[i] = &qdrant.ScoredPoint{
			Id:      decodePointID(point.ID),
			Score:   point.Score,
			Payload: convertPayloadFromHTTP(point.Payload),
		}
	}

	c.logger.Debug("similarity search completed", "results_count", len(scoredPoints))
	return scoredPoints, nil
}

// RecreateCollection drops and recreates the collection. The knowledge index
// is rebuilt from scratch rather than updated incrementally.
func (c *ClientService) RecreateCollection(ctx context.Context) error {
	url := fmt.Sprintf("%s/collections/%s", c.baseURL, c.config.Collection)

	// A missing collection is fine on delete.
	if _, err := c.do(ctx, http.MethodDelete, url, nil); err != nil {
		c.logger.Warn("collection delete before recreate failed", "error", err)
	}

	createBody := map[string]interface{}{
		"vectors": map[string]interface{}{
			"size":     c.config.VectorSize,
			"distance": "Cosine",
		},
	}
	if _, err := c.do(ctx, http.MethodPut, url, createBody); err != nil {
		return NewOperationError("creating collection", err)
	}

	c.logger.Info("collection recreated",
		"collection", c.config.Collection,
		"vector_size", c.config.VectorSize)
	return nil
}

// UpsertPoints writes a batch of embedded chunks into the collection.
func (c *ClientService) UpsertPoints(ctx context.Context, points []Point) error {
	if len(points) == 0 {
		return nil
	}

	url := fmt.Sprintf("%s/collections/%s/points?wait=true", c.baseURL, c.config.Collection)

	body := map[string]interface{}{"points": make([]map[string]interface{}, 0, len(points))}
	encoded := body["points"].([]map[string]interface{})
	for _, p := range points {
		if p.ID == "" {
			return NewOperationError("point id is required", nil)
		}
		if len(p.Values) == 0 {
			return NewOperationError(fmt.Sprintf("point %q has empty vector", p.ID), nil)
		}
		encoded = append(encoded, map[string]interface{}{
			"id":      p.ID,
			"vector":  p.Values,
			"payload": p.Payload,
		})
	}
	body["points"] = encoded

	if _, err := c.do(ctx, http.MethodPut, url, body); err != nil {
		c.logger.Error("point upsert failed", "count", len(points), "error", err)
		return err
	}

	c.logger.Debug("points upserted", "count", len(points))
	return nil
}

// decodePointID handles both numeric and UUID point ids in REST responses.
func decodePointID(raw json.RawMessage) *qdrant.PointId {
	var num uint64
	if err := json.Unmarshal(raw, &num); err == nil {
		return &qdrant.PointId{PointIdOptions: &qdrant.PointId_Num{Num: num}}
	}
	var id string
	if err := json.Unmarshal(raw, &id); err == nil {
		return &qdrant.PointId{PointIdOptions: &qdrant.PointId_Uuid{Uuid: id}}
	}
	return nil
}

// convertPayloadFromHTTP maps a JSON payload into qdrant.Value form.
func convertPayloadFromHTTP(httpPayload map[string]interface{}) map[string]*qdrant.Value {
	payload := make(map[string]*qdrant.Value)
	for k, v := range httpPayload {
		switch val := v.(type) {
		case string:
			payload[k] = &qdrant.Value{Kind: &qdrant.Value_StringValue{StringValue: val}}
		case float64:
			payload[k] = &qdrant.Value{Kind: &qdrant.Value_DoubleValue{DoubleValue: val}}
		case bool:
			payload[k] = &qdrant.Value{Kind: &qdrant.Value_BoolValue{BoolValue: val}}
		default:
			payload[k] = &qdrant.Value{Kind: &qdrant.Value_StringValue{StringValue: fmt.Sprintf("%v", val)}}
		}
	}
	return payload
}
