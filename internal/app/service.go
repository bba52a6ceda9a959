package app

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/kbukum/hofkit/arith"
	"github.com/kbukum/hofkit/arith/script"
	apperrors "github.com/kbukum/hofkit/errors"
	"github.com/kbukum/hofkit/fold"
	"github.com/kbukum/hofkit/logger"
	"github.com/kbukum/hofkit/observability"
	"github.com/kbukum/hofkit/selector"
	"github.com/kbukum/hofkit/util"
)

// Mode names a selection.
type Mode string

const (
	ModeGreatest Mode = "greatest"
	ModeLeast    Mode = "least"
	ModeLongest  Mode = "longest"
	ModeShortest Mode = "shortest"
)

// ParseMode accepts the Mode names case-insensitively. An empty string is ModeGreatest.
func ParseMode(s string) (Mode, error) {
	switch m := Mode(strings.ToLower(strings.TrimSpace(s))); m {
	case "":
		return ModeGreatest, nil
	case ModeGreatest, ModeLeast, ModeLongest, ModeShortest:
		return m, nil
	default:
		return "", apperrors.InvalidInput("mode", fmt.Sprintf("unknown selection mode %q", s))
	}
}

// Service runs evaluations and selections on behalf of the CLI and HTTP API.
type Service struct {
	name     string
	registry *arith.Registry
	tie      selector.TieBreak
	log      *logger.Logger
	metrics  *observability.Metrics
}

// NewService builds a Service with the built-in operations plus every
// scripted operation in cfg.Operations.Custom. A nil metrics disables
// metric recording.
func NewService(cfg *Config, log *logger.Logger, metrics *observability.Metrics) (*Service, error) {
	registry := arith.NewRegistry()
	for _, name := range util.SortedKeys(cfg.Operations.Custom) {
		op, err := script.New(name, cfg.Operations.Custom[name])
		if err != nil {
			return nil, fmt.Errorf("operations.custom.%s: %w", name, err)
		}
		if err := registry.Register(op); err != nil {
			return nil, fmt.Errorf("operations.custom.%s: %w", name, err)
		}
	}

	s := &Service{
		name:     cfg.Name,
		registry: registry,
		tie:      cfg.DefaultTieBreak(),
		log:      log.WithComponent("app"),
		metrics:  metrics,
	}
	s.log.Debug("service ready", logger.Fields(
		logger.FieldOperations, registry.Names(),
		logger.FieldTieBreak, s.tie.String(),
	))
	return s, nil
}

// Operations returns the canonical names of every resolvable operation.
func (s *Service) Operations() []string {
	return s.registry.Names()
}

// TieBreak parses name, falling back to the configured default when empty.
func (s *Service) TieBreak(name string) (selector.TieBreak, error) {
	if strings.TrimSpace(name) == "" {
		return s.tie, nil
	}
	tie, err := selector.ParseTieBreak(name)
	if err != nil {
		return s.tie, apperrors.InvalidInput("tie_break", err.Error())
	}
	return tie, nil
}

// Zip folds names over operands in place. On success operands holds the
// running partial results; on failure the slots written before the failing
// step keep their new values.
func (s *Service) Zip(ctx context.Context, operands []float64, names []string) (result float64, err error) {
	ctx, end := s.begin(ctx, "zip", observability.SpanEvaluate)
	defer func() { end(err) }()

	ops, err := s.resolve(ctx, operands, names)
	if err != nil {
		return 0, err
	}
	result, err = fold.Zip(operands, ops)
	if err != nil {
		s.log.WithContext(ctx).Warn("zip failed", logger.Fields(
			logger.FieldOperations, names,
			logger.FieldOperands, operands,
			logger.FieldError, err.Error(),
		))
		return result, err
	}
	s.recordSteps(ctx, len(ops))
	s.log.WithContext(ctx).Debug("zip evaluated", logger.Fields(
		logger.FieldOperations, names,
		logger.FieldResult, result,
	))
	return result, nil
}

// Evaluate folds names over a copy of operands and returns every step.
func (s *Service) Evaluate(ctx context.Context, operands []float64, names []string) (trace fold.Trace[float64], err error) {
	ctx, end := s.begin(ctx, "evaluate", observability.SpanEvaluate)
	defer func() { end(err) }()

	ops, err := s.resolve(ctx, operands, names)
	if err != nil {
		return trace, err
	}
	trace, err = fold.Evaluate(operands, ops)
	s.recordSteps(ctx, len(trace.Steps))
	if err != nil {
		s.log.WithContext(ctx).Warn("evaluation failed", logger.Fields(
			logger.FieldOperations, names,
			logger.FieldCount, len(trace.Steps),
			logger.FieldError, err.Error(),
		))
		return trace, err
	}
	s.log.WithContext(ctx).Debug("evaluation finished", logger.Fields(
		logger.FieldOperations, names,
		logger.FieldResult, trace.Result,
	))
	return trace, nil
}

func (s *Service) resolve(ctx context.Context, operands []float64, names []string) ([]fold.Operation[float64], error) {
	observability.SetSpanAttribute(ctx, observability.AttrOperations, names)
	observability.SetSpanAttribute(ctx, observability.AttrOperandCount, len(operands))

	if err := ctx.Err(); err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, apperrors.Timeout(strings.Join(names, ",")).WithCause(err)
		}
		return nil, err
	}
	ops, err := s.registry.Resolve(names)
	if err != nil {
		return nil, err
	}
	if err := fold.Validate(operands, ops); err != nil {
		return nil, err
	}
	for i, op := range ops {
		ops[i] = finite(op)
	}
	return ops, nil
}

// finite fails a step whose result overflows to ±Inf or is NaN, so that no
// non-finite value is ever written into the operands.
func finite(op fold.Operation[float64]) fold.Operation[float64] {
	return fold.NewOperation(op.Name(), func(a, b float64) (float64, error) {
		r, err := op.Apply(a, b)
		if err != nil {
			return r, err
		}
		if math.IsInf(r, 0) || math.IsNaN(r) {
			return r, apperrors.DomainError(op.Name(), "result is not finite").
				WithDetail("left", a).WithDetail("right", b)
		}
		return r, nil
	})
}

// Select picks the greatest or least number.
func (s *Service) Select(ctx context.Context, values []float64, mode Mode, tie selector.TieBreak) (v float64, found bool, err error) {
	ctx, end := s.begin(ctx, "select", observability.SpanSelect)
	defer func() { end(err) }()

	switch mode {
	case ModeGreatest:
		v, found = selector.Greatest(values, tie)
	case ModeLeast:
		v, found = selector.Least(values, tie)
	default:
		return 0, false, apperrors.InvalidInput("mode", fmt.Sprintf("%s does not apply to numbers", mode))
	}
	s.traceSelection(ctx, mode, tie, found)
	return v, found, nil
}

// SelectString picks the longest, shortest, greatest or least string.
// Length is counted in runes.
func (s *Service) SelectString(ctx context.Context, strs []string, mode Mode, tie selector.TieBreak) (v string, found bool, err error) {
	ctx, end := s.begin(ctx, "select_string", observability.SpanSelect)
	defer func() { end(err) }()

	switch mode {
	case ModeLongest:
		v, found = selector.Longest(strs, tie)
	case ModeShortest:
		v, found = selector.Shortest(strs, tie)
	case ModeGreatest:
		v, found = selector.Greatest(strs, tie)
	case ModeLeast:
		v, found = selector.Least(strs, tie)
	default:
		return "", false, apperrors.InvalidInput("mode", fmt.Sprintf("unknown selection mode %q", mode))
	}
	s.traceSelection(ctx, mode, tie, found)
	return v, found, nil
}

// Longest returns the string with the most runes.
func (s *Service) Longest(ctx context.Context, strs []string, tie selector.TieBreak) (string, bool) {
	v, found, _ := s.SelectString(ctx, strs, ModeLongest, tie)
	return v, found
}

func (s *Service) traceSelection(ctx context.Context, mode Mode, tie selector.TieBreak, found bool) {
	observability.SetSpanAttribute(ctx, observability.AttrTieBreak, tie)
	observability.SetSpanAttribute(ctx, observability.AttrFound, found)
	s.log.WithContext(ctx).Debug("selection finished", logger.Fields(
		logger.FieldOperation, string(mode),
		logger.FieldTieBreak, tie.String(),
		logger.FieldFound, found,
	))
}

// Capitalized keeps the strings whose first letter is already upper-case.
func (s *Service) Capitalized(ctx context.Context, strs []string) []string {
	ctx, end := s.begin(ctx, "capitalized", observability.SpanTransform)
	defer end(nil)

	out := util.Capitalized(strs)
	s.log.WithContext(ctx).Debug("capitalized filtered", logger.Fields(logger.FieldCount, len(out)))
	return out
}

// Flatten renders one "key -> value" line per entry, in key order when sorted is set.
func (s *Service) Flatten(ctx context.Context, m map[string]any, sorted bool) []string {
	ctx, end := s.begin(ctx, "flatten", observability.SpanTransform)
	defer end(nil)

	var out []string
	if sorted {
		out = util.FlattenSorted(m)
	} else {
		out = util.Flatten(m)
	}
	s.log.WithContext(ctx).Debug("map flattened", logger.Fields(logger.FieldCount, len(out)))
	return out
}

// CheckHealth reports the operation registry.
func (s *Service) CheckHealth(context.Context) observability.Health {
	names := s.registry.Names()
	return observability.Health{
		Name:    "operations",
		Status:  observability.HealthStatusUp,
		Details: map[string]string{"registered": strings.Join(names, ",")},
	}
}

// begin opens the span for one call and returns a func that closes it.
func (s *Service) begin(ctx context.Context, op, span string) (context.Context, func(error)) {
	oc := observability.NewOperationContext(s.name, op, logger.RequestIDFromContext(ctx), s.metrics)
	ctx, sp := oc.StartSpanForOperation(ctx, span)
	return ctx, func(err error) {
		if err != nil && s.metrics != nil {
			code := string(apperrors.ErrCodeInternal)
			if appErr, ok := apperrors.AsAppError(err); ok {
				code = string(appErr.Code)
			}
			s.metrics.RecordError(ctx, code, "app")
		}
		oc.EndOperation(ctx, sp, err)
	}
}

func (s *Service) recordSteps(ctx context.Context, n int) {
	if s.metrics != nil {
		s.metrics.RecordSteps(ctx, n)
	}
}
