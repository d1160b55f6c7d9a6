// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package form

import "github.com/danielhkuo/diarisk/models"

var yesNo = []models.Option{
	{Value: "0", Label: "No"},
	{Value: "1", Label: "Yes"},
}

// BRFSS age buckets; the model was trained on the coded values 1-13.
var ageGroups = []models.Option{
	{Value: "1", Label: "18-24"},
	{Value: "2", Label: "25-29"},
	{Value: "3", Label: "30-34"},
	{Value: "4", Label: "35-39"},
	{Value: "5", Label: "40-44"},
	{Value: "6", Label: "45-49"},
	{Value: "7", Label: "50-54"},
	{Value: "8", Label: "55-59"},
	{Value: "9", Label: "60-64"},
	{Value: "10", Label: "65-69"},
	{Value: "11", Label: "70-74"},
	{Value: "12", Label: "75-79"},
	{Value: "13", Label: "80 or older"},
}

var sections = []models.Section{
	{
		Title: "Body Measurements",
		Fields: []models.Field{
			{Name: "height_cm", Label: "Height (cm)", Kind: models.KindNumber, Required: true, Min: 90, Max: 230},
			{Name: "weight_kg", Label: "Weight (kg)", Kind: models.KindNumber, Required: true, Min: 25, Max: 220},
		},
	},
	{
		Title: "Medical History",
		Fields: []models.Field{
			{Name: "HighBP", Label: "High blood pressure", Kind: models.KindRadio, Required: true, Integer: true, Min: 0, Max: 1, Options: yesNo},
			{Name: "HighChol", Label: "High cholesterol", Kind: models.KindRadio, Required: true, Integer: true, Min: 0, Max: 1, Options: yesNo},
			{Name: "HeartDiseaseorAttack", Label: "Heart disease or heart attack", Kind: models.KindRadio, Required: true, Integer: true, Min: 0, Max: 1, Options: yesNo},
		},
	},
	{
		Title: "Current Health",
		Fields: []models.Field{
			{Name: "GenHlth", Label: "General health", Kind: models.KindSelect, Required: true, Integer: true, Min: 1, Max: 5, Options: []models.Option{
				{Value: "1", Label: "Excellent"},
				{Value: "2", Label: "Very good"},
				{Value: "3", Label: "Good"},
				{Value: "4", Label: "Fair"},
				{Value: "5", Label: "Poor"},
			}},
			{Name: "PhysHlth", Label: "Days of poor physical health (last 30 days)", Kind: models.KindNumber, Required: true, Integer: true, Min: 0, Max: 30},
			{Name: "DiffWalk", Label: "Serious difficulty walking or climbing stairs", Kind: models.KindRadio, Required: true, Integer: true, Min: 0, Max: 1, Options: yesNo},
		},
	},
	{
		Title: "Lifestyle & Demographics",
		Fields: []models.Field{
			{Name: "PhysActivity", Label: "Physical activity in the past 30 days", Kind: models.KindRadio, Required: true, Integer: true, Min: 0, Max: 1, Options: yesNo},
			{Name: "Gender", Label: "Gender", Kind: models.KindRadio, Required: true, Integer: true, Min: 0, Max: 1, Options: []models.Option{
				{Value: "0", Label: "Female"},
				{Value: "1", Label: "Male"},
			}},
			{Name: "Age", Label: "Age group", Kind: models.KindSelect, Required: true, Integer: true, Min: 1, Max: 13, Options: ageGroups},
		},
	},
}

// Sections returns the ordered questionnaire sections.
func Sections() []models.Section {
	return sections
}

// Total returns the number of sections.
func Total() int {
	return len(sections)
}

// Labels maps field names to display labels, including the computed
// BMI entry that only exists on stored assessments.
func Labels() map[string]string {
	labels := map[string]string{
		"BMI": "Body mass index (computed)",
	}
	for _, sec := range sections {
		for _, f := range sec.Fields {
			labels[f.Name] = f.Label
		}
	}
	return labels
}

// FieldOrder returns every input field name in display order, followed
// by the computed BMI. Used when rendering stored assessments.
func FieldOrder() []string {
	order := []string{}
	for _, sec := range sections {
		for _, f := range sec.Fields {
			order = append(order, f.Name)
		}
	}
	return append(order, "BMI")
}
