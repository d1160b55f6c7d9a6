// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/danielhkuo/diarisk/cliparse"
	"github.com/danielhkuo/diarisk/form"
	"github.com/danielhkuo/diarisk/middleware"
	"github.com/danielhkuo/diarisk/models"
	"github.com/danielhkuo/diarisk/predict"
)

// Fixed user-facing message for upstream failures; detail goes to the log.
const predictFailureMessage = "Prediction service is unavailable. Please try again."

type AssessmentHandler struct {
	db        *sql.DB
	cfg       cliparse.Config
	predictor predict.Client
}

func NewAssessmentHandler(db *sql.DB, cfg cliparse.Config, predictor predict.Client) *AssessmentHandler {
	return &AssessmentHandler{db: db, cfg: cfg, predictor: predictor}
}

// Predict handles POST /api/predict
// Validates the raw fields, computes BMI, forwards the feature payload
// to the model endpoint, and stores the assessment.
func (h *AssessmentHandler) Predict(w http.ResponseWriter, r *http.Request) {
	if !strings.HasPrefix(r.Header.Get("Content-Type"), "application/json") {
		middleware.ErrorResponse(w, http.StatusBadRequest, "JSON request required")
		return
	}

	var raw map[string]interface{}
	if err := middleware.ParseJSONBody(w, r, &raw); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	sub, errs := form.ParseAndValidate(valuesFromJSON(raw))
	if len(errs) > 0 {
		middleware.JSONResponse(w, http.StatusBadRequest, models.ValidationErrorResponse{Errors: errs})
		return
	}

	result, err := h.predictor.Predict(r.Context(), sub.Features)
	if err != nil {
		slog.Error("prediction request failed", "error", err)
		middleware.ErrorResponse(w, http.StatusBadGateway, predictFailureMessage)
		return
	}

	outcome := 0
	if result.Probability > h.cfg.Threshold {
		outcome = 1
	}

	recordID, _, err := saveAssessment(h.db, sub.Data, result.Probability, outcome)
	if err != nil {
		slog.Error("failed to save assessment", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.PredictResponse{
		Probability: math.Round(result.Probability*10000) / 10000,
		RiskLevel:   riskLevel(outcome),
		Result:      outcome,
		RecordID:    recordID,
	})
}

func riskLevel(result int) string {
	if result == 1 {
		return models.RiskHigh
	}
	return models.RiskLow
}

// valuesFromJSON flattens a decoded JSON object into raw form values.
// API clients send numbers and strings interchangeably.
func valuesFromJSON(raw map[string]interface{}) form.Values {
	values := form.Values{}
	for k, v := range raw {
		switch t := v.(type) {
		case string:
			values[k] = t
		case float64:
			values[k] = strconv.FormatFloat(t, 'f', -1, 64)
		case bool:
			if t {
				values[k] = "1"
			} else {
				values[k] = "0"
			}
		}
	}
	return values
}

// saveAssessment inserts a completed assessment and returns its ID
// and creation time
func saveAssessment(db *sql.DB, data map[string]float64, probability float64, result int) (string, time.Time, error) {
	inputJSON, err := json.Marshal(data)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to encode input: %w", err)
	}

	id := uuid.NewString()
	createdAt := time.Now().UTC()
	_, err = db.Exec(`
		INSERT INTO assessment (id, created_at, input, probability, result)
		VALUES ($1, $2, $3, $4, $5)
	`, id, createdAt, string(inputJSON), probability, result)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to insert assessment: %w", err)
	}

	return id, createdAt, nil
}
