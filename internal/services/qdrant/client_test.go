// File: internal/services/qdrant/client_test.go
package qdrant

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	qdrantpb "github.com/qdrant/go-client/qdrant"

	"github.com/pharmago/pharmago/internal/services"
)

func newTestClient(t *testing.T, serverURL string) *ClientService {
	t.Helper()
	svc, err := NewClientService(&Config{
		URL:        serverURL,
		Collection: "test_collection",
		Timeout:    5 * time.Second,
		VectorSize: 4,
	}, &services.NoOpLogger{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return svc
}

func TestQuerySimilar(t *testing.T) {
	var gotPath string
	var gotBody map[string]interface{}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		json.NewDecoder(r.Body).Decode(&gotBody)
		w.Write([]byte(`{"result":{"points":[
			{"id":"b1c2","score":0.9,"payload":{"page_content":"texto","page":12,"flag":true}},
			{"id":7,"score":0.5,"payload":{}}
		]}}`))
	}))
	defer server.Close()

	svc := newTestClient(t, server.URL)
	points, err := svc.QuerySimilar(context.Background(), []float32{0.1, 0.2}, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gotPath != "/collections/test_collection/points/query" {
		t.Errorf("unexpected path: %s", gotPath)
	}
	if gotBody["limit"] != float64(3) {
		t.Errorf("expected limit 3, got %v", gotBody["limit"])
	}
	if gotBody["with_payload"] != true {
		t.Error("expected with_payload to be requested")
	}

	if len(points) != 2 {
		t.Fatalf("expected 2 points, got %d", len(points))
	}

	first := points[0]
	if uuid, ok := first.Id.PointIdOptions.(*qdrantpb.PointId_Uuid); !ok || uuid.Uuid != "b1c2" {
		t.Errorf("unexpected first id: %v", first.Id)
	}
	if text, ok := first.Payload["page_content"].Kind.(*qdrantpb.Value_StringValue); !ok || text.StringValue != "texto" {
		t.Errorf("unexpected payload text: %v", first.Payload["page_content"])
	}
	if page, ok := first.Payload["page"].Kind.(*qdrantpb.Value_DoubleValue); !ok || page.DoubleValue != 12 {
		t.Errorf("unexpected page payload: %v", first.Payload["page"])
	}
	if flag, ok := first.Payload["flag"].Kind.(*qdrantpb.Value_BoolValue); !ok || !flag.BoolValue {
		t.Errorf("unexpected flag payload: %v", first.Payload["flag"])
	}

	if num, ok := points[1].Id.PointIdOptions.(*qdrantpb.PointId_Num); !ok || num.Num != 7 {
		t.Errorf("unexpected second id: %v", points[1].Id)
	}
}

func TestQuerySimilarServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	svc := newTestClient(t, server.URL)
	if _, err := svc.QuerySimilar(context.Background(), []float32{0.1}, 3); err == nil {
		t.Fatal("expected error on server failure")
	}
}

func TestRecreateCollection(t *testing.T) {
	var methods []string
	var createBody map[string]interface{}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		methods = append(methods, r.Method)
		if r.Method == http.MethodPut {
			json.NewDecoder(r.Body).Decode(&createBody)
		}
		w.Write([]byte(`{"result":true}`))
	}))
	defer server.Close()

	svc := newTestClient(t, server.URL)
	if err := svc.RecreateCollection(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(methods) != 2 || methods[0] != http.MethodDelete || methods[1] != http.MethodPut {
		t.Errorf("expected DELETE then PUT, got %v", methods)
	}
	vectors := createBody["vectors"].(map[string]interface{})
	if vectors["size"] != float64(4) {
		t.Errorf("expected vector size 4, got %v", vectors["size"])
	}
	if vectors["distance"] != "Cosine" {
		t.Errorf("expected cosine distance, got %v", vectors["distance"])
	}
}

func TestUpsertPoints(t *testing.T) {
	var gotBody map[string]interface{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("wait") != "true" {
			t.Error("expected wait=true on upsert")
		}
		json.NewDecoder(r.Body).Decode(&gotBody)
		w.Write([]byte(`{"result":{"status":"completed"}}`))
	}))
	defer server.Close()

	svc := newTestClient(t, server.URL)
	err := svc.UpsertPoints(context.Background(), []Point{
		{ID: "p1", Values: []float32{0.1, 0.2}, Payload: map[string]interface{}{"page_content": "texto"}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	points := gotBody["points"].([]interface{})
	if len(points) != 1 {
		t.Fatalf("expected one encoded point, got %d", len(points))
	}
}

func TestUpsertPointsValidation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("invalid points must not reach the server")
	}))
	defer server.Close()

	svc := newTestClient(t, server.URL)

	if err := svc.UpsertPoints(context.Background(), []Point{{ID: "", Values: []float32{0.1}}}); err == nil {
		t.Error("expected error for missing id")
	}
	if err := svc.UpsertPoints(context.Background(), []Point{{ID: "p1"}}); err == nil {
		t.Error("expected error for empty vector")
	}
	if err := svc.UpsertPoints(context.Background(), nil); err != nil {
		t.Errorf("empty batch must be a no-op, got %v", err)
	}
}
