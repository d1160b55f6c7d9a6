// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package form

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/danielhkuo/diarisk/models"
)

// Values holds raw user input keyed by field name.
type Values map[string]string

// State is the canonical wizard state: which section is active and
// what the user has entered so far. Invariant: 0 <= Index < Total().
type State struct {
	Index  int
	Values Values
}

// NewState returns a state positioned at the first section.
func NewState() *State {
	return &State{Index: 0, Values: Values{}}
}

// Visibility describes which navigation controls the active section shows.
type Visibility struct {
	ShowPrev   bool
	ShowNext   bool
	ShowSubmit bool
}

// ComputeVisibility returns the navigation controls for a section index:
// previous is hidden on the first section, next is hidden on the last,
// and submit appears only on the last.
func ComputeVisibility(index, total int) Visibility {
	return Visibility{
		ShowPrev:   index > 0,
		ShowNext:   index < total-1,
		ShowSubmit: index == total-1,
	}
}

// Progress returns the progress indicator percentage for a section index.
func Progress(index, total int) float64 {
	if total <= 0 {
		return 0
	}
	return float64(index+1) / float64(total) * 100
}

// Merge copies the submitted values for the given section's fields into
// the state. Fields outside the section are ignored so a tampered POST
// cannot overwrite answers from other sections.
func (s *State) Merge(sec models.Section, submitted map[string]string) {
	for _, f := range sec.Fields {
		if raw, ok := submitted[f.Name]; ok {
			s.Values[f.Name] = raw
		}
	}
}

// Next validates the active section and advances on success. On
// failure the index does not change and the messages are returned.
// The index is clamped at the last section.
func (s *State) Next(sections []models.Section) []string {
	if errs := ValidateSection(sections[s.Index], s.Values); len(errs) > 0 {
		return errs
	}
	if s.Index < len(sections)-1 {
		s.Index++
	}
	return nil
}

// Prev moves back one section unconditionally, clamped at the first.
func (s *State) Prev() {
	if s.Index > 0 {
		s.Index--
	}
}

// ValidateSection checks every required field of a section, whatever
// its kind: radio groups need a selected option, everything else needs
// a non-blank trimmed value in range. Valid iff the result is empty.
func ValidateSection(sec models.Section, values Values) []string {
	var errs []string
	for _, f := range sec.Fields {
		if !f.Required {
			continue
		}
		if _, _, err := parseField(f, values[f.Name]); err != nil {
			errs = append(errs, err.Error())
		}
	}
	return errs
}

// Submission is a fully validated questionnaire: Data holds every
// field by name (raw inputs plus computed BMI) for storage, Features
// is the payload for the prediction endpoint.
type Submission struct {
	Data     map[string]float64
	Features models.FeatureVector
}

// ParseAndValidate checks the complete questionnaire, computes BMI,
// and assembles the model payload. Returns the per-field messages on
// failure.
func ParseAndValidate(values Values) (*Submission, []string) {
	var errs []string
	data := map[string]float64{}

	for _, sec := range sections {
		for _, f := range sec.Fields {
			val, ok, err := parseField(f, values[f.Name])
			if err != nil {
				errs = append(errs, err.Error())
				continue
			}
			if ok {
				data[f.Name] = val
			}
		}
	}
	if len(errs) > 0 {
		return nil, errs
	}

	bmi, err := ComputeBMI(data["height_cm"], data["weight_kg"])
	if err != nil {
		return nil, []string{err.Error()}
	}
	data["BMI"] = bmi

	return &Submission{
		Data: data,
		Features: models.FeatureVector{
			HighBP:               int(data["HighBP"]),
			HighChol:             int(data["HighChol"]),
			GenHlth:              int(data["GenHlth"]),
			PhysHlth:             int(data["PhysHlth"]),
			DiffWalk:             int(data["DiffWalk"]),
			HeartDiseaseorAttack: int(data["HeartDiseaseorAttack"]),
			PhysActivity:         int(data["PhysActivity"]),
			Gender:               int(data["Gender"]),
			Age:                  int(data["Age"]),
			BMI:                  bmi,
		},
	}, nil
}

// ComputeBMI returns weight_kg / (height_cm/100)^2 rounded to one
// decimal place. Values outside the plausible 10-80 band are rejected.
func ComputeBMI(heightCm, weightKg float64) (float64, error) {
	if heightCm <= 0 || weightKg <= 0 {
		return 0, fmt.Errorf("height and weight must be positive")
	}
	heightM := heightCm / 100
	bmi := math.Round(weightKg/(heightM*heightM)*10) / 10
	if bmi < 10 || bmi > 80 {
		return 0, fmt.Errorf("computed BMI %.1f is implausible", bmi)
	}
	return bmi, nil
}

// parseField validates one raw value against the field's bounds. The
// bool is false only for optional fields left blank.
func parseField(f models.Field, raw string) (float64, bool, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		if f.Required {
			if f.Kind == models.KindRadio {
				return 0, false, fmt.Errorf("%s: select an option", f.Name)
			}
			return 0, false, fmt.Errorf("%s is required", f.Name)
		}
		return 0, false, nil
	}

	val, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false, fmt.Errorf("%s: invalid value %q", f.Name, raw)
	}
	if f.Integer {
		val = math.Trunc(val)
	}
	if val < f.Min || val > f.Max {
		return 0, false, fmt.Errorf("%s must be between %g and %g", f.Name, f.Min, f.Max)
	}
	return val, true, nil
}
