// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the Diarisk server.

# Handler Types

Each handler is a struct with database, config, and service dependencies:

  - PagesHandler: server-rendered questionnaire wizard and result view
  - AssessmentHandler: JSON prediction API
  - RecordsHandler: stored assessment retrieval and PDF reports

Handlers are created via constructor functions:

	pages := handlers.NewPagesHandler(db, cfg, sessions, predictor)
	api := handlers.NewAssessmentHandler(db, cfg, predictor)
	records := handlers.NewRecordsHandler(db, cfg)

# Wizard Flow

The wizard walks one session through the questionnaire sections:

	GET  /                       → Start (new session, redirect)
	GET  /assess/{token}         → ShowSection
	POST /assess/{token}/next    → NextSection (guarded by validation)
	POST /assess/{token}/prev    → PrevSection (unconditional)
	POST /assess/{token}/submit  → Submit (validate, predict, store, result view)

Submit consumes the session atomically, so a double-click cannot issue
two upstream predictions; on upstream failure the session is restored
and a fixed alert message renders.

# Prediction API

	POST /api/predict → Predict

Accepts the eleven raw fields as JSON, answers with
{probability, risk_level, result, record_id}. Validation failures
return 400 with per-field messages; upstream failures return 502 with
a generic message.

# Records

	GET /records/{id}        → GetRecord (JSON)
	GET /records/{id}/report → DownloadReport (PDF attachment)
*/
package handlers
