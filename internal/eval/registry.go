package eval

import (
	"fmt"
	"maps"
	"slices"
	"strconv"

	"github.com/agbru/bigcalc/internal/bigint"
)

// OperandKind describes how the right-hand operand of an operation is read.
type OperandKind int

const (
	// NoOperand marks unary operations.
	NoOperand OperandKind = iota
	// ValueOperand is a big integer literal.
	ValueOperand
	// CountOperand is a shift count.
	CountOperand
	// ModulusOperand is a 32-bit modulus.
	ModulusOperand
)

// Op is a registered operation.
type Op struct {
	Name   string
	Symbol string // infix spelling, empty when the op is prefix-only
	Right  OperandKind
	Usage  string
	apply  func(m bigint.Multiplier, a *bigint.Int, rhs string) (Result, error)
}

// Registry maps operation names and infix symbols to operations.
type Registry struct {
	byName   map[string]Op
	bySymbol map[string]Op
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{byName: make(map[string]Op), bySymbol: make(map[string]Op)}
}

// Register adds op, replacing any operation of the same name or symbol.
func (r *Registry) Register(op Op) {
	r.byName[op.Name] = op
	if op.Symbol != "" {
		r.bySymbol[op.Symbol] = op
	}
}

// Lookup returns the operation registered under name.
func (r *Registry) Lookup(name string) (Op, bool) {
	op, ok := r.byName[name]
	return op, ok
}

// LookupSymbol returns the operation spelled sym in infix form.
func (r *Registry) LookupSymbol(sym string) (Op, bool) {
	op, ok := r.bySymbol[sym]
	return op, ok
}

// List returns all operations sorted by name.
func (r *Registry) List() []Op {
	names := slices.Sorted(maps.Keys(r.byName))
	ops := make([]Op, 0, len(names))
	for _, n := range names {
		ops = append(ops, r.byName[n])
	}
	return ops
}

func unary(f func(a *bigint.Int) *bigint.Int) func(bigint.Multiplier, *bigint.Int, string) (Result, error) {
	return func(_ bigint.Multiplier, a *bigint.Int, _ string) (Result, error) {
		return Result{Value: f(a)}, nil
	}
}

func binary(f func(m bigint.Multiplier, a, b *bigint.Int) (*bigint.Int, error)) func(bigint.Multiplier, *bigint.Int, string) (Result, error) {
	return func(m bigint.Multiplier, a *bigint.Int, rhs string) (Result, error) {
		b, err := ParseValue(rhs)
		if err != nil {
			return Result{}, err
		}
		z, err := f(m, a, b)
		if err != nil {
			return Result{}, err
		}
		return Result{Value: z}, nil
	}
}

func shift(f func(a *bigint.Int, n int) *bigint.Int) func(bigint.Multiplier, *bigint.Int, string) (Result, error) {
	return func(_ bigint.Multiplier, a *bigint.Int, rhs string) (Result, error) {
		n, err := ParseCount(rhs)
		if err != nil {
			return Result{}, err
		}
		return Result{Value: f(a, n)}, nil
	}
}

func infallible(f func(a, b *bigint.Int) *bigint.Int) func(bigint.Multiplier, *bigint.Int, *bigint.Int) (*bigint.Int, error) {
	return func(_ bigint.Multiplier, a, b *bigint.Int) (*bigint.Int, error) { return f(a, b), nil }
}

// DefaultRegistry returns a registry holding every bigcalc operation.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	for _, op := range []Op{
		{Name: "not", Right: NoOperand, Usage: "not a", apply: unary((*bigint.Int).Not)},
		{Name: "hex", Right: NoOperand, Usage: "hex a", apply: func(_ bigint.Multiplier, a *bigint.Int, _ string) (Result, error) {
			return Result{Value: a, Format: "hex"}, nil
		}},
		{Name: "bin", Right: NoOperand, Usage: "bin a", apply: func(_ bigint.Multiplier, a *bigint.Int, _ string) (Result, error) {
			return Result{Value: a, Format: "bin"}, nil
		}},
		{Name: "xor", Symbol: "^", Right: ValueOperand, Usage: "xor a b", apply: binary(infallible((*bigint.Int).Xor))},
		{Name: "or", Symbol: "|", Right: ValueOperand, Usage: "or a b", apply: binary(infallible((*bigint.Int).Or))},
		{Name: "and", Symbol: "&", Right: ValueOperand, Usage: "and a b", apply: binary(infallible((*bigint.Int).And))},
		{Name: "add", Symbol: "+", Right: ValueOperand, Usage: "add a b", apply: binary(infallible((*bigint.Int).Add))},
		{Name: "sub", Symbol: "-", Right: ValueOperand, Usage: "sub a b", apply: binary(func(_ bigint.Multiplier, a, b *bigint.Int) (*bigint.Int, error) {
			return a.Sub(b)
		})},
		{Name: "wsub", Right: ValueOperand, Usage: "wsub a b", apply: binary(infallible((*bigint.Int).WrappingSub))},
		{Name: "mul", Symbol: "*", Right: ValueOperand, Usage: "mul a b", apply: binary(func(m bigint.Multiplier, a, b *bigint.Int) (*bigint.Int, error) {
			return m.Mul(a, b), nil
		})},
		{Name: "shl", Symbol: "<<", Right: CountOperand, Usage: "shl a n", apply: shift((*bigint.Int).Lsh)},
		{Name: "shr", Symbol: ">>", Right: CountOperand, Usage: "shr a n", apply: shift((*bigint.Int).Rsh)},
		{Name: "mod", Symbol: "%", Right: ModulusOperand, Usage: "mod a m", apply: func(_ bigint.Multiplier, a *bigint.Int, rhs string) (Result, error) {
			m, err := ParseModulus(rhs)
			if err != nil {
				return Result{}, err
			}
			r, err := a.Mod(m)
			if err != nil {
				return Result{}, err
			}
			return Result{Scalar: strconv.FormatUint(uint64(r), 10)}, nil
		}},
		{Name: "cmp", Right: ValueOperand, Usage: "cmp a b", apply: func(_ bigint.Multiplier, a *bigint.Int, rhs string) (Result, error) {
			b, err := ParseValue(rhs)
			if err != nil {
				return Result{}, err
			}
			return Result{Scalar: strconv.Itoa(a.Cmp(b))}, nil
		}},
	} {
		r.Register(op)
	}
	return r
}

// Arity returns the number of operands op takes.
func (op Op) Arity() int {
	if op.Right == NoOperand {
		return 1
	}
	return 2
}

func (op Op) String() string {
	if op.Symbol == "" {
		return op.Usage
	}
	return fmt.Sprintf("%s  (a %s b)", op.Usage, op.Symbol)
}
