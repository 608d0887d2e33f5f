package nerhttp

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestRecognizeMapsLabelsToEntityFields(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/entities" {
			http.NotFound(w, r)
			return
		}
		var payload map[string]any
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if payload["text"] != "Applicant: John Smith" {
			t.Fatalf("unexpected text payload: %v", payload["text"])
		}
		_, _ = w.Write([]byte(`{"entities":[
			{"text":"John Smith","label":"PERSON"},
			{"text":"Shady Cove","label":"GPE"},
			{"text":"$250,000","label":"MONEY"},
			{"text":"Tuesday","label":"DATE"}
		]}`))
	}))
	defer server.Close()

	client := New(server.URL, time.Second)
	entities, err := client.Recognize(context.Background(), "Applicant: John Smith")
	if err != nil {
		t.Fatalf("Recognize() error = %v", err)
	}

	if got := entities["person_entities"]; len(got) != 1 || got[0] != "John Smith" {
		t.Fatalf("expected person_entities [John Smith], got %v", got)
	}
	if got := entities["location_entities"]; len(got) != 1 || got[0] != "Shady Cove" {
		t.Fatalf("expected location_entities [Shady Cove], got %v", got)
	}
	if got := entities["financial_entities"]; len(got) != 1 || got[0] != "$250,000" {
		t.Fatalf("expected financial_entities [$250,000], got %v", got)
	}
	if _, ok := entities["date_entities"]; ok {
		t.Fatalf("unmapped labels must be dropped, got %v", entities)
	}
}

func TestRecognizeIncludesHTTPBodyInError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model not loaded", http.StatusBadGateway)
	}))
	defer server.Close()

	client := New(server.URL, time.Second)
	_, err := client.Recognize(context.Background(), "text")
	if err == nil {
		t.Fatalf("expected error")
	}
	if !strings.Contains(err.Error(), "model not loaded") {
		t.Fatalf("expected response body in error, got %v", err)
	}
}
