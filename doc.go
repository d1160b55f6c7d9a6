// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Diarisk assessment server.

Diarisk is a type 2 diabetes risk screening service. It walks users
through a multi-section health questionnaire, sends the collected
features to an external model-serving endpoint (a gradient-boosting
model behind HTTP), and stores each assessment for later retrieval as
JSON or as a downloadable PDF report.

# Starting the Server

The server requires the model endpoint URL via environment variable or
CLI flag:

	MODEL_URL=http://localhost:8501/predict go run main.go

Or with flags:

	go run main.go -p 5000 -m "http://localhost:8501/predict"

# Configuration

Required settings:

  - MODEL_URL (-m): URL of the external prediction endpoint

Optional settings:

  - PORT (-p): Server port (default: 5000)
  - DATABASE_URL (-d): Connection string (default: file:diarisk.db)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - THRESHOLD (-threshold): Decision threshold (default: 0.502)
  - PUBLIC_URL (-public-url): Base URL used in report links

A .env file in the working directory is loaded on startup if present.

# Architecture

The server uses a handler-based architecture with dependency injection:

  - handlers: HTTP request handlers (wizard pages, predictions, records)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - models: Request/response types and the feature-field catalog
  - form: Section navigation, validation, and payload assembly
  - session: In-memory wizard session store
  - predict: Client for the external model endpoint
  - report: PDF report generation
  - web: Embedded HTML templates
  - db: Schema creation
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
