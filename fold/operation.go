package fold

// Operation is a named, deterministic binary operation over a single type.
// Apply may fail for specific operand values but must not have side effects.
type Operation[T any] interface {
	Name() string
	Apply(a, b T) (T, error)
}

// OperationFunc is the function shape wrapped by NewOperation.
type OperationFunc[T any] func(a, b T) (T, error)

type namedOperation[T any] struct {
	name string
	fn   OperationFunc[T]
}

func (o namedOperation[T]) Name() string { return o.name }

func (o namedOperation[T]) Apply(a, b T) (T, error) { return o.fn(a, b) }

// NewOperation creates an immutable named operation from a partial function.
func NewOperation[T any](name string, fn OperationFunc[T]) Operation[T] {
	return namedOperation[T]{name: name, fn: fn}
}

// NewTotalOperation creates an immutable named operation from a function that cannot fail.
func NewTotalOperation[T any](name string, fn func(a, b T) T) Operation[T] {
	return namedOperation[T]{name: name, fn: func(a, b T) (T, error) {
		return fn(a, b), nil
	}}
}

// Names returns the identifiers of ops in order.
func Names[T any](ops []Operation[T]) []string {
	names := make([]string, len(ops))
	for i, op := range ops {
		names[i] = op.Name()
	}
	return names
}

// Compose returns g∘f: a function that applies f and then g.
func Compose[T, U, R any](f func(T) U, g func(U) R) func(T) R {
	return func(v T) R {
		return g(f(v))
	}
}
