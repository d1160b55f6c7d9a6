// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"github.com/danielhkuo/diarisk/cliparse"
	"github.com/danielhkuo/diarisk/handlers"
	"github.com/danielhkuo/diarisk/middleware"
	"github.com/danielhkuo/diarisk/predict"
	"github.com/danielhkuo/diarisk/session"
)

func NewRouter(db *sql.DB, cfg cliparse.Config, sessions *session.Store, predictor predict.Client) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	pagesHandler := handlers.NewPagesHandler(db, cfg, sessions, predictor)
	assessmentHandler := handlers.NewAssessmentHandler(db, cfg, predictor)
	recordsHandler := handlers.NewRecordsHandler(db, cfg)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Questionnaire wizard (HTML)
	mux.HandleFunc("GET /{$}", middleware.WithLogging(pagesHandler.Start))
	mux.HandleFunc("GET /assess/{token}", middleware.WithLogging(pagesHandler.ShowSection))
	mux.HandleFunc("POST /assess/{token}/next", middleware.WithLogging(pagesHandler.NextSection))
	mux.HandleFunc("POST /assess/{token}/prev", middleware.WithLogging(pagesHandler.PrevSection))
	mux.HandleFunc("POST /assess/{token}/submit", middleware.WithLogging(pagesHandler.Submit))

	// Prediction API (JSON); CORS so external clients can call it directly
	predictChain := middleware.CORS(middleware.WithLogging(assessmentHandler.Predict))
	mux.Handle("POST /api/predict", predictChain)
	mux.Handle("OPTIONS /api/predict", predictChain)

	// Stored assessments
	mux.HandleFunc("GET /records/{id}", middleware.WithLogging(recordsHandler.GetRecord))
	mux.HandleFunc("GET /records/{id}/report", middleware.WithLogging(recordsHandler.DownloadReport))

	return mux
}
