// Package script compiles Starlark expressions over the operands a and b into
// named float64 operations, so new operations can be declared in config.
//
//	op, err := script.New("hypot", "math.sqrt(a*a + b*b)")
package script

import (
	"fmt"
	"strings"

	starlarkMath "go.starlark.net/lib/math"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	apperrors "github.com/kbukum/hofkit/errors"
	"github.com/kbukum/hofkit/fold"
)

const (
	entryPoint = "op"
	// maxSteps bounds a single evaluation.
	maxSteps = 100_000
)

var predeclared = starlark.StringDict{
	"math": starlarkMath.Module,
}

type operation struct {
	name string
	expr string
	fn   *starlark.Function
}

// New compiles expr into an operation called name. The expression sees the
// left operand as a and the right operand as b, and must evaluate to a number.
func New(name, expr string) (fold.Operation[float64], error) {
	name = strings.TrimSpace(name)
	expr = strings.TrimSpace(expr)
	if name == "" {
		return nil, apperrors.MissingField("name")
	}
	if expr == "" {
		return nil, apperrors.MissingField("expression")
	}
	if strings.ContainsAny(expr, "\r\n") {
		return nil, apperrors.InvalidInput("expression", "must be a single line")
	}

	src := fmt.Sprintf("def %s(a, b):\n    return %s\n", entryPoint, expr)
	fn, err := compile(name, src)
	if err != nil {
		return nil, apperrors.InvalidInput("expression", err.Error()).
			WithDetail("operation", name).
			WithCause(err)
	}
	return &operation{name: name, expr: expr, fn: fn}, nil
}

func compile(name, src string) (*starlark.Function, error) {
	opts := &syntax.FileOptions{}
	f, err := opts.Parse(name+".star", src, 0)
	if err != nil {
		return nil, err
	}
	prog, err := starlark.FileProgram(f, predeclared.Has)
	if err != nil {
		return nil, err
	}
	globals, err := prog.Init(&starlark.Thread{Name: "compile:" + name}, predeclared)
	if err != nil {
		return nil, err
	}
	fn, ok := globals[entryPoint].(*starlark.Function)
	if !ok {
		return nil, fmt.Errorf("%s is not a function", entryPoint)
	}
	return fn, nil
}

func (o *operation) Name() string { return o.name }

// Expression returns the source expression.
func (o *operation) Expression() string { return o.expr }

// Apply evaluates the expression. Evaluation failures (division by zero,
// type errors, step limit) are reported as domain errors.
func (o *operation) Apply(a, b float64) (float64, error) {
	thread := &starlark.Thread{Name: o.name}
	thread.SetMaxExecutionSteps(maxSteps)

	v, err := starlark.Call(thread, o.fn, starlark.Tuple{starlark.Float(a), starlark.Float(b)}, nil)
	if err != nil {
		return 0, apperrors.DomainError(o.name, evalMessage(err)).
			WithCause(fmt.Errorf("%w: %w", apperrors.ErrDomain, err))
	}
	result, ok := starlark.AsFloat(v)
	if !ok {
		return 0, apperrors.DomainError(o.name, fmt.Sprintf("expression returned %s, not a number", v.Type()))
	}
	return result, nil
}

func evalMessage(err error) string {
	if evalErr, ok := err.(*starlark.EvalError); ok {
		return evalErr.Msg
	}
	return err.Error()
}
