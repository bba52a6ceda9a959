package arith

import (
	"slices"
	"testing"

	apperrors "github.com/kbukum/hofkit/errors"
	"github.com/kbukum/hofkit/fold"
)

func TestRegistry_Lookup(t *testing.T) {
	r := NewRegistry()
	tests := []struct {
		name string
		want string
	}{
		{"add", NameAdd},
		{"ADD", NameAdd},
		{" + ", NameAdd},
		{"di", NameSubtract},
		{"-", NameSubtract},
		{"mult", NameMultiply},
		{"*", NameMultiply},
		{"div", NameDivide},
		{"/", NameDivide},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			op, err := r.Lookup(tc.name)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if op.Name() != tc.want {
				t.Errorf("expected %q, got %q", tc.want, op.Name())
			}
		})
	}
}

func TestRegistry_LookupUnknown(t *testing.T) {
	_, err := NewRegistry().Lookup("pow")
	appErr, ok := apperrors.AsAppError(err)
	if !ok || appErr.Code != apperrors.ErrCodeUnknownOperation {
		t.Fatalf("expected UNKNOWN_OPERATION, got %v", err)
	}
}

func TestRegistry_Parse(t *testing.T) {
	ops, err := NewRegistry().Parse("add, mult,,+,div")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"add", "multiply", "add", "divide"}
	if got := fold.Names(ops); !slices.Equal(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}

	empty, err := NewRegistry().Parse("  ")
	if err != nil || len(empty) != 0 {
		t.Errorf("expected no operations, got %v (err %v)", empty, err)
	}
}

func TestRegistry_ResolveReportsIndex(t *testing.T) {
	_, err := NewRegistry().Resolve([]string{"add", "nope"})
	appErr, ok := apperrors.AsAppError(err)
	if !ok {
		t.Fatalf("expected AppError, got %v", err)
	}
	if appErr.Details["index"] != 1 {
		t.Errorf("expected index=1, got %v", appErr.Details["index"])
	}
}

func TestRegistry_Register(t *testing.T) {
	r := NewRegistry()
	maxOp := fold.NewTotalOperation("Max", func(a, b float64) float64 { return max(a, b) })
	if err := r.Register(maxOp); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	op, err := r.Lookup("max")
	if err != nil {
		t.Fatalf("expected registered op, got %v", err)
	}
	if got, _ := op.Apply(2, 7); got != 7 {
		t.Errorf("expected 7, got %v", got)
	}
	if !slices.Contains(r.Names(), "max") {
		t.Errorf("expected max in %v", r.Names())
	}

	err = r.Register(fold.NewTotalOperation("div", func(a, b float64) float64 { return a }))
	if appErr, ok := apperrors.AsAppError(err); !ok || appErr.Code != apperrors.ErrCodeAlreadyExists {
		t.Errorf("expected alias collision to be rejected, got %v", err)
	}
	err = r.Register(fold.NewTotalOperation("add", func(a, b float64) float64 { return a }))
	if appErr, ok := apperrors.AsAppError(err); !ok || appErr.Code != apperrors.ErrCodeAlreadyExists {
		t.Errorf("expected duplicate to be rejected, got %v", err)
	}
	if err := r.Register(fold.NewTotalOperation(" ", func(a, b float64) float64 { return a })); err == nil {
		t.Error("expected blank name to be rejected")
	}
}

func TestSplitList(t *testing.T) {
	if got := SplitList(" a ,b,, c "); !slices.Equal(got, []string{"a", "b", "c"}) {
		t.Errorf("unexpected split %v", got)
	}
	if got := SplitList(""); len(got) != 0 {
		t.Errorf("expected empty, got %v", got)
	}
}
