package api

import "github.com/kbukum/hofkit/fold"

// ZipRequest is the body of /v1/zip and /v1/evaluate.
type ZipRequest struct {
	Operands   []float64 `json:"operands" validate:"required,min=1"`
	Operations []string  `json:"operations" validate:"dive,required"`
}

// ZipResponse reports the fold result and the operands it overwrote.
type ZipResponse struct {
	Result   float64   `json:"result"`
	Operands []float64 `json:"operands"`
}

// EvaluateResponse reports every step of an evaluation.
type EvaluateResponse struct {
	fold.Trace[float64]
}

// SelectRequest is the body of /v1/select. Mode is greatest or least.
type SelectRequest struct {
	Values   []float64 `json:"values" validate:"required"`
	Mode     string    `json:"mode" validate:"omitempty,oneof=greatest least"`
	TieBreak string    `json:"tie_break" validate:"omitempty,tiebreak"`
}

// StringSelectRequest is the body of /v1/longest. Mode defaults to longest.
type StringSelectRequest struct {
	Values   []string `json:"values" validate:"required"`
	Mode     string   `json:"mode" validate:"omitempty,oneof=longest shortest greatest least"`
	TieBreak string   `json:"tie_break" validate:"omitempty,tiebreak"`
}

// SelectResponse carries a selected value; Value is omitted when nothing was found.
type SelectResponse struct {
	Found    bool   `json:"found"`
	Value    any    `json:"value,omitempty"`
	Mode     string `json:"mode"`
	TieBreak string `json:"tie_break"`
}

// StringsRequest is the body of /v1/capitalized.
type StringsRequest struct {
	Values []string `json:"values" validate:"required"`
}

// FlattenRequest is the body of /v1/flatten.
type FlattenRequest struct {
	Entries map[string]any `json:"entries" validate:"required"`
	Sorted  *bool          `json:"sorted"`
}

// LinesResponse carries a list of strings.
type LinesResponse struct {
	Values []string `json:"values"`
	Count  int      `json:"count"`
}
