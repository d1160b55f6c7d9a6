// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/danielhkuo/diarisk/cliparse"
	"github.com/danielhkuo/diarisk/db"
	"github.com/danielhkuo/diarisk/form"
	"github.com/danielhkuo/diarisk/models"
	"github.com/danielhkuo/diarisk/predict"
)

// SetupTestDB creates a fresh in-memory sqlite database with the schema.
// Each call uses a unique shared-cache name so pooled connections see
// the same database while tests stay isolated from each other.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	url := "file:" + uuid.NewString() + "?mode=memory&cache=shared"
	conn, err := sql.Open("sqlite", url)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	if err := db.CreateSchema(conn, "sqlite"); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:         5000,
		DatabaseURL:  "file:test.db?mode=memory",
		DatabaseType: "sqlite",
		ModelURL:     "http://model.test/predict",
		Threshold:    0.502,
	}
}

// StubPredictor is a predict.Client that returns a canned result.
type StubPredictor struct {
	Probability float64
	Err         error
	Calls       int
}

func (p *StubPredictor) Predict(ctx context.Context, features models.FeatureVector) (predict.Result, error) {
	p.Calls++
	if p.Err != nil {
		return predict.Result{}, p.Err
	}
	return predict.Result{Probability: p.Probability}, nil
}

// ValidFormValues returns a complete, in-range questionnaire
// (height 180 / weight 80, so the computed BMI is 24.7).
func ValidFormValues() form.Values {
	return form.Values{
		"height_cm":            "180",
		"weight_kg":            "80",
		"HighBP":               "1",
		"HighChol":             "0",
		"HeartDiseaseorAttack": "0",
		"GenHlth":              "3",
		"PhysHlth":             "5",
		"DiffWalk":             "0",
		"PhysActivity":         "1",
		"Gender":               "1",
		"Age":                  "9",
	}
}

// ValidPredictBody returns a valid JSON body for POST /api/predict
func ValidPredictBody() map[string]interface{} {
	return map[string]interface{}{
		"height_cm":            180,
		"weight_kg":            80,
		"HighBP":               1,
		"HighChol":             0,
		"HeartDiseaseorAttack": 0,
		"GenHlth":              3,
		"PhysHlth":             5,
		"DiffWalk":             0,
		"PhysActivity":         1,
		"Gender":               1,
		"Age":                  9,
	}
}

// InsertTestAssessment stores an assessment and returns its ID
func InsertTestAssessment(t *testing.T, conn *sql.DB, probability float64, result int) string {
	t.Helper()

	input := map[string]float64{
		"height_cm": 180, "weight_kg": 80,
		"HighBP": 1, "HighChol": 0, "HeartDiseaseorAttack": 0,
		"GenHlth": 3, "PhysHlth": 5, "DiffWalk": 0,
		"PhysActivity": 1, "Gender": 1, "Age": 9,
		"BMI": 24.7,
	}
	inputJSON, _ := json.Marshal(input)

	id := uuid.NewString()
	_, err := conn.Exec(`
		INSERT INTO assessment (id, created_at, input, probability, result)
		VALUES ($1, $2, $3, $4, $5)
	`, id, time.Now().UTC(), string(inputJSON), probability, result)
	if err != nil {
		t.Fatalf("Failed to insert test assessment: %v", err)
	}

	return id
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
