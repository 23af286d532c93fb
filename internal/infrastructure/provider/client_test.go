package provider

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestClient_FetchCars(t *testing.T) {
	t.Run("unwraps the list envelope", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/car" {
				t.Errorf("unexpected path: %s", r.URL.Path)
			}
			if got := r.Header.Get("Authorization"); got != "Bearer secret" {
				t.Errorf("unexpected authorization header: %q", got)
			}
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"result": {"data": [{"id": 1}, {"id": 2}]}}`))
		}))
		defer srv.Close()

		client := NewClient(srv.URL, "secret", srv.Client())
		raw, err := client.FetchCars(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		var items []json.RawMessage
		if err := json.Unmarshal(raw, &items); err != nil {
			t.Fatalf("expected a raw array, got %s", raw)
		}
		if len(items) != 2 {
			t.Fatalf("expected 2 items, got %d", len(items))
		}
	})

	t.Run("no authorization header without a token", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if got := r.Header.Get("Authorization"); got != "" {
				t.Errorf("expected no authorization header, got %q", got)
			}
			w.Write([]byte(`{"result": {"data": []}}`))
		}))
		defer srv.Close()

		client := NewClient(srv.URL, "", srv.Client())
		if _, err := client.FetchCars(context.Background()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("non-2xx is an error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer srv.Close()

		client := NewClient(srv.URL, "", srv.Client())
		if _, err := client.FetchCars(context.Background()); err == nil {
			t.Fatal("expected error")
		}
	})

	t.Run("broken envelope is an error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`not json`))
		}))
		defer srv.Close()

		client := NewClient(srv.URL, "", srv.Client())
		if _, err := client.FetchCars(context.Background()); err == nil {
			t.Fatal("expected error")
		}
	})
}

func TestClient_FetchAveragePrices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/car/average-price" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		w.Write([]byte(`{"result": {"Sedan": 120.5, "SUV": "180.00"}}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "", srv.Client())
	raw, err := client.FetchAveragePrices(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var prices map[string]json.RawMessage
	if err := json.Unmarshal(raw, &prices); err != nil {
		t.Fatalf("expected a raw object, got %s", raw)
	}
	if len(prices) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(prices))
	}
}
