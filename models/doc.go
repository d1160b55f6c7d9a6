// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Form Catalog Types

Types describing the questionnaire structure:

  - Section: title plus ordered fields, shown/hidden as a unit
  - Field: name, label, kind, required flag, numeric bounds, options
  - Option: one selectable value of a select or radio field

# Model Payload

FeatureVector is the exact payload POSTed to the prediction endpoint.
Its fields mirror the columns the gradient-boosting model was trained
on (HighBP, HighChol, GenHlth, PhysHlth, DiffWalk,
HeartDiseaseorAttack, PhysActivity, Gender, Age, BMI). The raw
height_cm/weight_kg inputs never reach the model; only the computed
BMI does.

# Response Types

  - PredictResponse: probability, risk_level, result, record_id
  - ValidationErrorResponse: errors (per-field messages)
  - ErrorResponse: error, message

# Domain Types

  - Assessment: one stored prediction with its validated inputs

# Constants

Risk levels:

	RiskLow  = "low"
	RiskHigh = "high"

Field kinds:

	KindNumber = "number"
	KindSelect = "select"
	KindRadio  = "radio"
*/
package models
