// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/danielhkuo/diarisk/cliparse"
	"github.com/danielhkuo/diarisk/middleware"
	"github.com/danielhkuo/diarisk/models"
	"github.com/danielhkuo/diarisk/report"
)

type RecordsHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewRecordsHandler(db *sql.DB, cfg cliparse.Config) *RecordsHandler {
	return &RecordsHandler{db: db, cfg: cfg}
}

// GetRecord handles GET /records/{id}
// Returns the stored assessment with its validated inputs
func (h *RecordsHandler) GetRecord(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "id is required")
		return
	}

	rec, err := loadAssessment(h.db, id)
	if err == sql.ErrNoRows {
		middleware.ErrorResponse(w, http.StatusNotFound, "Record not found")
		return
	}
	if err != nil {
		slog.Error("failed to query assessment", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, rec)
}

// DownloadReport handles GET /records/{id}/report
// Streams the assessment as a PDF attachment
func (h *RecordsHandler) DownloadReport(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "id is required")
		return
	}

	rec, err := loadAssessment(h.db, id)
	if err == sql.ErrNoRows {
		middleware.ErrorResponse(w, http.StatusNotFound, "Record not found")
		return
	}
	if err != nil {
		slog.Error("failed to query assessment", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	data, err := report.Build(rec)
	if err != nil {
		slog.Error("failed to build report", "error", err, "record_id", id)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to build report")
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", report.Filename(rec)))
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.Write(data)
}

// loadAssessment reads one stored assessment by ID
func loadAssessment(db *sql.DB, id string) (models.Assessment, error) {
	var rec models.Assessment
	var inputJSON []byte

	err := db.QueryRow(`
		SELECT id, created_at, input, probability, result
		FROM assessment
		WHERE id = $1
	`, id).Scan(&rec.ID, &rec.CreatedAt, &inputJSON, &rec.Probability, &rec.Result)
	if err != nil {
		return models.Assessment{}, err
	}

	if err := json.Unmarshal(inputJSON, &rec.Input); err != nil {
		return models.Assessment{}, fmt.Errorf("failed to parse stored input: %w", err)
	}

	return rec, nil
}
