package arith

import (
	"sort"
	"strings"
	"sync"

	apperrors "github.com/kbukum/hofkit/errors"
	"github.com/kbukum/hofkit/fold"
)

// builtinAliases maps short names and symbols onto canonical names.
var builtinAliases = map[string]string{
	"+":    NameAdd,
	"-":    NameSubtract,
	"di":   NameSubtract,
	"sub":  NameSubtract,
	"*":    NameMultiply,
	"x":    NameMultiply,
	"mult": NameMultiply,
	"mul":  NameMultiply,
	"/":    NameDivide,
	"div":  NameDivide,
}

// Registry resolves float64 operations by name. It is safe for concurrent use.
type Registry struct {
	mu      sync.RWMutex
	ops     map[string]fold.Operation[float64]
	aliases map[string]string
}

// NewRegistry creates a registry preloaded with the builtin operations and their aliases.
func NewRegistry() *Registry {
	r := &Registry{
		ops:     make(map[string]fold.Operation[float64]),
		aliases: make(map[string]string, len(builtinAliases)),
	}
	for _, op := range Builtins() {
		r.ops[op.Name()] = op
	}
	for alias, name := range builtinAliases {
		r.aliases[alias] = name
	}
	return r
}

// Register adds op under its own name. Names are case-insensitive and must be unique.
func (r *Registry) Register(op fold.Operation[float64]) error {
	name := normalize(op.Name())
	if name == "" {
		return apperrors.MissingField("name")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.ops[name]; ok {
		return apperrors.AlreadyExists("operation").WithDetail("operation", name)
	}
	if _, ok := r.aliases[name]; ok {
		return apperrors.AlreadyExists("operation").WithDetail("operation", name)
	}
	r.ops[name] = op
	return nil
}

// Lookup returns the operation registered under name or one of its aliases.
func (r *Registry) Lookup(name string) (fold.Operation[float64], error) {
	key := normalize(name)
	r.mu.RLock()
	defer r.mu.RUnlock()
	if canonical, ok := r.aliases[key]; ok {
		key = canonical
	}
	op, ok := r.ops[key]
	if !ok {
		return nil, apperrors.UnknownOperation(name)
	}
	return op, nil
}

// Resolve looks up every name in order.
func (r *Registry) Resolve(names []string) ([]fold.Operation[float64], error) {
	ops := make([]fold.Operation[float64], 0, len(names))
	for i, name := range names {
		op, err := r.Lookup(name)
		if err != nil {
			if appErr, ok := apperrors.AsAppError(err); ok {
				appErr.WithDetail("index", i)
			}
			return nil, err
		}
		ops = append(ops, op)
	}
	return ops, nil
}

// Parse resolves a comma-separated list such as "add,multiply,/".
// An empty or blank list yields no operations.
func (r *Registry) Parse(list string) ([]fold.Operation[float64], error) {
	return r.Resolve(SplitList(list))
}

// Names returns the registered canonical names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.ops))
	for name := range r.ops {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// SplitList splits a comma-separated list, trimming blanks and dropping empty items.
func SplitList(list string) []string {
	var out []string
	for _, part := range strings.Split(list, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
