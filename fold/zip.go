package fold

import (
	apperrors "github.com/kbukum/hofkit/errors"
)

// Step records one application of an operation during Evaluate.
type Step[T any] struct {
	Index     int    `json:"index"`
	Operation string `json:"operation"`
	Left      T      `json:"left"`
	Right     T      `json:"right"`
	Result    T      `json:"result"`
}

// Trace is the outcome of Evaluate. Partials has the same layout Zip leaves
// in its operand slice: Partials[i] is the accumulated value after step i-1.
type Trace[T any] struct {
	Result   T         `json:"result"`
	Partials []T       `json:"partials"`
	Steps    []Step[T] `json:"steps"`
}

// Validate checks that ops can be folded over operands without mutating anything.
func Validate[T any](operands []T, ops []Operation[T]) error {
	if len(operands) == 0 {
		return apperrors.EmptyInput("operand")
	}
	if len(ops) != len(operands)-1 {
		return apperrors.LengthMismatch(len(operands), len(ops))
	}
	return nil
}

// Zip folds ops over operands in place and returns the last operand.
//
// For each i, operands[i+1] is overwritten with ops[i].Apply(operands[i], operands[i+1])
// before ops[i+1] runs. Length errors are reported before any slot is written.
// An operation error is returned unchanged; slots written by earlier steps keep
// their new values and the failing slot is left as it was.
func Zip[T any](operands []T, ops []Operation[T]) (T, error) {
	if err := Validate(operands, ops); err != nil {
		var zero T
		return zero, err
	}

	i := 0
	for _, op := range ops {
		result, err := op.Apply(operands[i], operands[i+1])
		if err != nil {
			var zero T
			return zero, err
		}
		i++
		operands[i] = result
	}
	return operands[i], nil
}

// Evaluate runs the same fold as Zip on a copy of operands, leaving the
// caller's slice untouched. On an operation error the returned Trace holds
// the partial results and steps completed so far.
func Evaluate[T any](operands []T, ops []Operation[T]) (Trace[T], error) {
	if err := Validate(operands, ops); err != nil {
		return Trace[T]{}, err
	}

	trace := Trace[T]{
		Partials: append([]T(nil), operands...),
		Steps:    make([]Step[T], 0, len(ops)),
	}
	for i, op := range ops {
		left, right := trace.Partials[i], trace.Partials[i+1]
		result, err := op.Apply(left, right)
		if err != nil {
			trace.Result = left
			return trace, err
		}
		trace.Partials[i+1] = result
		trace.Steps = append(trace.Steps, Step[T]{
			Index:     i,
			Operation: op.Name(),
			Left:      left,
			Right:     right,
			Result:    result,
		})
	}
	trace.Result = trace.Partials[len(trace.Partials)-1]
	return trace, nil
}

// Reduce returns only the final value of Evaluate.
func Reduce[T any](operands []T, ops []Operation[T]) (T, error) {
	trace, err := Evaluate(operands, ops)
	if err != nil {
		var zero T
		return zero, err
	}
	return trace.Result, nil
}
