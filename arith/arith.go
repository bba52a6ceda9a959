// Package arith provides the named float64 operations used to drive
// fold.Zip, and a registry that resolves operations by name.
package arith

import (
	"fmt"

	apperrors "github.com/kbukum/hofkit/errors"
	"github.com/kbukum/hofkit/fold"
)

// Canonical operation names.
const (
	NameAdd      = "add"
	NameSubtract = "subtract"
	NameMultiply = "multiply"
	NameDivide   = "divide"
)

// ErrDivisionByZero is the cause of the DomainError returned by Divide.
// It also matches apperrors.ErrDomain.
var ErrDivisionByZero = fmt.Errorf("%w: division by zero", apperrors.ErrDomain)

var (
	// Add returns a + b.
	Add = fold.NewTotalOperation(NameAdd, func(a, b float64) float64 { return a + b })
	// Subtract returns a - b.
	Subtract = fold.NewTotalOperation(NameSubtract, func(a, b float64) float64 { return a - b })
	// Multiply returns a * b.
	Multiply = fold.NewTotalOperation(NameMultiply, func(a, b float64) float64 { return a * b })
	// Divide returns a / b and fails with a domain error when b is zero.
	Divide = fold.NewOperation(NameDivide, divide)
)

func divide(a, b float64) (float64, error) {
	if b == 0 {
		return 0, apperrors.DomainError(NameDivide, "division by zero").
			WithDetail("dividend", a).
			WithCause(ErrDivisionByZero)
	}
	return a / b, nil
}

// Builtins returns the four arithmetic operations in declaration order.
func Builtins() []fold.Operation[float64] {
	return []fold.Operation[float64]{Add, Subtract, Multiply, Divide}
}
