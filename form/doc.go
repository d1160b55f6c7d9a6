// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package form implements the questionnaire: section catalog, navigation
state machine, validation, and model payload assembly.

# Section Catalog

Sections returns the four questionnaire sections covering the eleven
input fields (body measurements, medical history, current health,
lifestyle and demographics). Each field carries its kind, required
flag, and numeric bounds, so validation is driven entirely by the
catalog.

# Navigation

State tracks the active section index and the values entered so far.
Transitions:

	errs := state.Next(form.Sections()) // advances only if the section validates
	state.Prev()                        // unconditional, clamped at 0

ComputeVisibility and Progress are pure helpers for the rendering
layer:

	vis := form.ComputeVisibility(state.Index, form.Total())
	pct := form.Progress(state.Index, form.Total())

# Validation

ValidateSection checks the active section; ParseAndValidate checks the
whole questionnaire, computes BMI from height/weight (rounded to one
decimal), strips the two raw fields from the model payload, and
returns a Submission ready for the prediction endpoint.

Bounds follow the BRFSS-coded training data: height 90-230 cm, weight
25-220 kg, Age groups 1-13, GenHlth 1-5, PhysHlth 0-30 days, binary
fields 0/1, and a computed-BMI sanity band of 10-80.
*/
package form
