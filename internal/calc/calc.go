// Package calc maps calculator operation names onto the mathplex function library.
// It is shared by the command-line evaluator and the terminal calculator.
package calc

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"slices"

	"github.com/lukaszgryglicki/mathplex"
)

var (
	ErrUnknownOp = errors.New("calc: unknown operation")
	ErrArity     = errors.New("calc: wrong number of operands")
)

// Variadic marks an Op without an upper operand limit.
const Variadic = -1

// Op is a named operation. Operands are anything mathplex.Transform accepts.
type Op struct {
	Name    string
	Summary string
	MinArgs int
	MaxArgs int
	Apply   func(args ...any) (mathplex.Complex, error)
}

// Unary reports whether the op takes exactly one operand.
func (o Op) Unary() bool { return o.MinArgs == 1 && o.MaxArgs == 1 }

func (o Op) checkArity(n int) error {
	if n < o.MinArgs || (o.MaxArgs != Variadic && n > o.MaxArgs) {
		return fmt.Errorf("%w: %s takes %s, got %d", ErrArity, o.Name, o.arityText(), n)
	}
	return nil
}

func (o Op) arityText() string {
	switch {
	case o.MaxArgs == Variadic:
		return fmt.Sprintf("at least %d operands", o.MinArgs)
	case o.MinArgs == o.MaxArgs:
		return fmt.Sprintf("%d operands", o.MinArgs)
	}
	return fmt.Sprintf("%d to %d operands", o.MinArgs, o.MaxArgs)
}

// Usage renders e.g. "pow <a> <b>".
func (o Op) Usage() string {
	s := o.Name
	for i := 0; i < o.MinArgs; i++ {
		s += fmt.Sprintf(" <%c>", 'a'+i)
	}
	if o.MaxArgs == Variadic {
		s += " ..."
	}
	return s
}

// Result is one evaluation.
type Result struct {
	Op    string
	Args  []string
	Value mathplex.Complex
}

// Registry holds the known operations.
type Registry struct {
	ops    map[string]Op
	logger *slog.Logger
}

// NewRegistry returns a registry with every mathplex operation registered.
// A nil logger uses slog.Default().
func NewRegistry(logger *slog.Logger) *Registry {
	if logger == nil {
		logger = slog.Default()
	}
	r := &Registry{ops: make(map[string]Op), logger: logger}
	for _, op := range builtins() {
		r.Register(op)
	}
	return r
}

// Register adds or replaces an op.
func (r *Registry) Register(op Op) { r.ops[op.Name] = op }

func (r *Registry) Lookup(name string) (Op, bool) {
	op, ok := r.ops[name]
	return op, ok
}

// Names returns the registered op names sorted.
func (r *Registry) Names() []string { return slices.Sorted(maps.Keys(r.ops)) }

// Eval applies the named op to args.
func (r *Registry) Eval(ctx context.Context, name string, args ...any) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	op, ok := r.ops[name]
	if !ok {
		return Result{}, fmt.Errorf("%w %q", ErrUnknownOp, name)
	}
	if err := op.checkArity(len(args)); err != nil {
		return Result{}, err
	}
	v, err := op.Apply(args...)
	if err != nil {
		r.logger.DebugContext(ctx, "evaluation failed", "op", name, "args", args, "error", err)
		return Result{}, fmt.Errorf("%s: %w", name, err)
	}
	res := Result{Op: name, Args: make([]string, len(args)), Value: v}
	for i, a := range args {
		res.Args[i] = fmt.Sprint(a)
	}
	r.logger.DebugContext(ctx, "evaluated", "op", name, "args", res.Args, "result", v.String())
	return res, nil
}
