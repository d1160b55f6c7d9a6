// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the Diarisk server.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(db, cfg, sessions, predictor)

# Endpoints

Health:

	GET /health

Questionnaire wizard (HTML):

	GET  /                      - Start a session, redirect to section 0
	GET  /assess/{token}        - Render the active section
	POST /assess/{token}/next   - Validate and advance
	POST /assess/{token}/prev   - Go back
	POST /assess/{token}/submit - Predict, store, render result

Prediction API (JSON):

	POST /api/predict - Validate, predict, store

Stored assessments:

	GET /records/{id}        - Assessment as JSON
	GET /records/{id}/report - Assessment as PDF attachment

# Handler Initialization

The router creates handler instances with dependency injection:

	pagesHandler := handlers.NewPagesHandler(db, cfg, sessions, predictor)
	assessmentHandler := handlers.NewAssessmentHandler(db, cfg, predictor)
	recordsHandler := handlers.NewRecordsHandler(db, cfg)
*/
package router
