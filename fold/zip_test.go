package fold

import (
	"errors"
	"slices"
	"strconv"
	"testing"

	apperrors "github.com/kbukum/hofkit/errors"
)

var errZeroDivisor = errors.New("division by zero")

var (
	add = NewTotalOperation("add", func(a, b float64) float64 { return a + b })
	mul = NewTotalOperation("multiply", func(a, b float64) float64 { return a * b })
	div = NewOperation("divide", func(a, b float64) (float64, error) {
		if b == 0 {
			return 0, errZeroDivisor
		}
		return a / b, nil
	})
)

func TestZip_ChainOverwritesOperands(t *testing.T) {
	operands := []float64{1, 1, 3, 0, 4}
	got, err := Zip(operands, []Operation[float64]{add, mul, add, div})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 1.5 {
		t.Errorf("expected result 1.5, got %v", got)
	}
	want := []float64{1, 2, 6, 6, 1.5}
	if !slices.Equal(operands, want) {
		t.Errorf("expected operands %v, got %v", want, operands)
	}
}

func TestZip_SingleOperand(t *testing.T) {
	operands := []float64{42}
	got, err := Zip(operands, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 42 {
		t.Errorf("expected 42, got %v", got)
	}
	if operands[0] != 42 {
		t.Errorf("expected operand unchanged, got %v", operands[0])
	}
}

func TestZip_OperationErrorKeepsEarlierWrites(t *testing.T) {
	operands := []float64{2, 3, 0, 5}
	_, err := Zip(operands, []Operation[float64]{mul, div, add})
	if err != errZeroDivisor {
		t.Fatalf("expected the operation's own error, got %v", err)
	}
	want := []float64{2, 6, 0, 5}
	if !slices.Equal(operands, want) {
		t.Errorf("expected operands %v after failure, got %v", want, operands)
	}
}

func TestZip_LengthMismatchLeavesOperandsUntouched(t *testing.T) {
	tests := []struct {
		name string
		ops  []Operation[float64]
	}{
		{"too few", []Operation[float64]{add}},
		{"too many", []Operation[float64]{add, add, add}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			operands := []float64{1, 2, 3}
			_, err := Zip(operands, tc.ops)
			if !errors.Is(err, apperrors.ErrLengthMismatch) {
				t.Fatalf("expected length mismatch, got %v", err)
			}
			if !slices.Equal(operands, []float64{1, 2, 3}) {
				t.Errorf("expected operands untouched, got %v", operands)
			}
		})
	}
}

func TestZip_EmptyOperands(t *testing.T) {
	_, err := Zip([]float64{}, nil)
	if !errors.Is(err, apperrors.ErrEmptyInput) {
		t.Fatalf("expected empty input error, got %v", err)
	}
}

func TestZip_GenericType(t *testing.T) {
	concat := NewTotalOperation("concat", func(a, b string) string { return a + b })
	operands := []string{"a", "b", "c"}
	got, err := Zip(operands, []Operation[string]{concat, concat})
	if err != nil {
		t.Fatal(err)
	}
	if got != "abc" {
		t.Errorf("expected abc, got %q", got)
	}
	if !slices.Equal(operands, []string{"a", "ab", "abc"}) {
		t.Errorf("unexpected operands %v", operands)
	}
}

func TestEvaluate_DoesNotMutate(t *testing.T) {
	operands := []float64{1, 1, 3, 0, 4}
	trace, err := Evaluate(operands, []Operation[float64]{add, mul, add, div})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if trace.Result != 1.5 {
		t.Errorf("expected result 1.5, got %v", trace.Result)
	}
	if !slices.Equal(trace.Partials, []float64{1, 2, 6, 6, 1.5}) {
		t.Errorf("unexpected partials %v", trace.Partials)
	}
	if !slices.Equal(operands, []float64{1, 1, 3, 0, 4}) {
		t.Errorf("expected caller operands untouched, got %v", operands)
	}
	if len(trace.Steps) != 4 {
		t.Fatalf("expected 4 steps, got %d", len(trace.Steps))
	}
	last := trace.Steps[3]
	if last.Operation != "divide" || last.Left != 6 || last.Right != 4 || last.Result != 1.5 {
		t.Errorf("unexpected last step %+v", last)
	}
}

func TestEvaluate_PartialTraceOnError(t *testing.T) {
	trace, err := Evaluate([]float64{2, 3, 0, 5}, []Operation[float64]{mul, div, add})
	if err != errZeroDivisor {
		t.Fatalf("expected the operation's own error, got %v", err)
	}
	if len(trace.Steps) != 1 {
		t.Errorf("expected 1 completed step, got %d", len(trace.Steps))
	}
	if !slices.Equal(trace.Partials, []float64{2, 6, 0, 5}) {
		t.Errorf("unexpected partials %v", trace.Partials)
	}
	if trace.Result != 6 {
		t.Errorf("expected last good accumulator 6, got %v", trace.Result)
	}
}

func TestReduce(t *testing.T) {
	got, err := Reduce([]float64{2, 3, 4}, []Operation[float64]{add, mul})
	if err != nil {
		t.Fatal(err)
	}
	if got != 20 {
		t.Errorf("expected 20, got %v", got)
	}
	if _, err := Reduce([]float64{1, 2}, nil); !errors.Is(err, apperrors.ErrLengthMismatch) {
		t.Errorf("expected length mismatch, got %v", err)
	}
}

func TestNames(t *testing.T) {
	got := Names([]Operation[float64]{add, mul, div})
	if !slices.Equal(got, []string{"add", "multiply", "divide"}) {
		t.Errorf("unexpected names %v", got)
	}
}

func TestCompose(t *testing.T) {
	code := func(c rune) int { return int(c) }
	double := func(n int) int64 { return int64(n) * 2 }
	if got := Compose(code, double)('z'); got != 244 {
		t.Errorf("expected 244, got %d", got)
	}

	toString := Compose(func(n int) int { return n + 1 }, strconv.Itoa)
	if got := toString(41); got != "42" {
		t.Errorf("expected \"42\", got %q", got)
	}
}
