// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package predict

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielhkuo/diarisk/models"
)

func testFeatures() models.FeatureVector {
	return models.FeatureVector{
		HighBP:       1,
		GenHlth:      3,
		PhysHlth:     5,
		PhysActivity: 1,
		Gender:       1,
		Age:          9,
		BMI:          24.7,
	}
}

func TestPredict_Success(t *testing.T) {
	var gotBody map[string]interface{}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("expected application/json, got %s", ct)
		}
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Fatalf("failed to decode request body: %v", err)
		}
		json.NewEncoder(w).Encode(map[string]float64{"probability": 0.42})
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	result, err := client.Predict(context.Background(), testFeatures())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Probability != 0.42 {
		t.Errorf("expected probability 0.42, got %g", result.Probability)
	}

	// The payload carries the computed BMI, never the raw inputs
	if gotBody["BMI"] != 24.7 {
		t.Errorf("expected BMI 24.7 in payload, got %v", gotBody["BMI"])
	}
	if _, ok := gotBody["height_cm"]; ok {
		t.Error("height_cm must not reach the model")
	}
	if _, ok := gotBody["weight_kg"]; ok {
		t.Error("weight_kg must not reach the model")
	}
}

func TestPredict_Non2xxIsFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "internal error", http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	if _, err := client.Predict(context.Background(), testFeatures()); err == nil {
		t.Fatal("expected error for 500 response")
	}
}

func TestPredict_MalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	if _, err := client.Predict(context.Background(), testFeatures()); err == nil {
		t.Fatal("expected error for non-JSON body")
	}
}

func TestPredict_ProbabilityOutOfRange(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]float64{"probability": 1.7})
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	if _, err := client.Predict(context.Background(), testFeatures()); err == nil {
		t.Fatal("expected error for probability outside [0, 1]")
	}
}

func TestPredict_ContextCancelled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]float64{"probability": 0.5})
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client := NewClient(srv.URL)
	if _, err := client.Predict(ctx, testFeatures()); err == nil {
		t.Fatal("expected error for cancelled context")
	}
}
