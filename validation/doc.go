// Package validation provides input validation for hofkit request and
// config structs.
//
// It supports struct tag validation (go-playground/validator) and
// programmatic validation with error collection. Both report failures as an
// *errors.AppError with per-field details.
//
// # Struct Tag Validation
//
//	type SelectRequest struct {
//	    Values   []float64 `json:"values" validate:"required"`
//	    TieBreak string    `json:"tie_break" validate:"omitempty,tiebreak"`
//	}
//	err := validation.Validate(req)
//
// # Programmatic Validation
//
//	v := validation.New()
//	v.Check(port > 0, "server.port", "must be positive")
//	err := v.Validate()
package validation
