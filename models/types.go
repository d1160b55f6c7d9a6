package models

import "time"

// Risk level constants
const (
	RiskLow  = "low"
	RiskHigh = "high"
)

// Field kind constants
const (
	KindNumber = "number"
	KindSelect = "select"
	KindRadio  = "radio"
)

// Form catalog types

// Option is one selectable value of a select or radio field.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// Field describes one questionnaire input and its validation bounds.
type Field struct {
	Name     string   `json:"name"`
	Label    string   `json:"label"`
	Kind     string   `json:"kind"`
	Required bool     `json:"required"`
	Integer  bool     `json:"integer"`
	Min      float64  `json:"min"`
	Max      float64  `json:"max"`
	Options  []Option `json:"options,omitempty"`
}

// Section is one visually grouped subset of fields, shown as a unit.
type Section struct {
	Title  string  `json:"title"`
	Fields []Field `json:"fields"`
}

// FeatureVector is the payload sent to the prediction endpoint. Field
// order and JSON names match the columns the model was trained on; the
// raw height/weight inputs are replaced by the computed BMI.
type FeatureVector struct {
	HighBP               int     `json:"HighBP"`
	HighChol             int     `json:"HighChol"`
	GenHlth              int     `json:"GenHlth"`
	PhysHlth             int     `json:"PhysHlth"`
	DiffWalk             int     `json:"DiffWalk"`
	HeartDiseaseorAttack int     `json:"HeartDiseaseorAttack"`
	PhysActivity         int     `json:"PhysActivity"`
	Gender               int     `json:"Gender"`
	Age                  int     `json:"Age"`
	BMI                  float64 `json:"BMI"`
}

// Response types

type PredictResponse struct {
	Probability float64 `json:"probability"`
	RiskLevel   string  `json:"risk_level"`
	Result      int     `json:"result"`
	RecordID    string  `json:"record_id"`
}

// ValidationErrorResponse carries per-field validation messages.
type ValidationErrorResponse struct {
	Errors []string `json:"errors"`
}

// Domain types

// Assessment is one stored prediction. Input holds every validated
// field by name, including the raw height/weight and the computed BMI.
type Assessment struct {
	ID          string             `json:"id"`
	CreatedAt   time.Time          `json:"created_at"`
	Input       map[string]float64 `json:"input"`
	Probability float64            `json:"probability"`
	Result      int                `json:"result"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
