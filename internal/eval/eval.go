package eval

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/agbru/bigcalc/internal/bigint"
	apperrors "github.com/agbru/bigcalc/internal/errors"
)

// Result is the outcome of an evaluation. Exactly one of Value and Scalar is
// set: mod and cmp produce a Scalar rendered in decimal, every other
// operation produces a Value.
type Result struct {
	Op     string
	Value  *bigint.Int
	Scalar string
	// Format forces the rendering of Value ("hex" or "bin"); empty leaves it
	// to the caller.
	Format string
}

// IsScalar reports whether r carries a scalar rather than a value.
func (r Result) IsScalar() bool { return r.Value == nil }

// Render returns r as text, using format for values unless r.Format
// overrides it.
func (r Result) Render(format string) string {
	if r.IsScalar() {
		return r.Scalar
	}
	if r.Format != "" {
		format = r.Format
	}
	if format == "bin" {
		return r.Value.Bin()
	}
	return r.Value.Hex()
}

// Resolver resolves operand tokens that are not literals, such as variable
// references. It returns false when tok is not a reference it knows.
type Resolver func(tok string) (*bigint.Int, bool)

// Evaluator evaluates expressions against a registry.
type Evaluator struct {
	Registry   *Registry
	Multiplier bigint.Multiplier
	Resolve    Resolver
}

// New returns an Evaluator over the default registry multiplying with the
// given Karatsuba threshold.
func New(threshold int) *Evaluator {
	return &Evaluator{Registry: DefaultRegistry(), Multiplier: bigint.Multiplier{Threshold: threshold}}
}

// Eval parses and evaluates expr. Failures of the operation itself are
// returned as apperrors.EvaluationError wrapping the bigint cause.
func (e *Evaluator) Eval(expr string) (Result, error) {
	op, lhs, rhs, err := e.parse(expr)
	if err != nil {
		return Result{}, err
	}
	return e.Apply(op, lhs, rhs)
}

// Apply evaluates op on already-split operand tokens. rhs is ignored for
// unary operations. References on the right are resolved for every operand
// kind; a count or modulus reference must fit in 64 bits and is then narrowed
// like a literal.
func (e *Evaluator) Apply(op Op, lhs, rhs string) (Result, error) {
	a, err := e.value(lhs)
	if err != nil {
		return Result{}, apperrors.EvaluationError{Op: op.Name, Cause: err}
	}
	if op.Right != NoOperand {
		if rhs, err = e.rightToken(op.Right, rhs); err != nil {
			return Result{}, apperrors.EvaluationError{Op: op.Name, Cause: err}
		}
	}
	res, err := op.apply(e.Multiplier, a, rhs)
	if err != nil {
		return Result{}, apperrors.EvaluationError{Op: op.Name, Cause: err}
	}
	res.Op = op.Name
	return res, nil
}

// rightToken replaces a resolved reference by a literal of the right kind.
func (e *Evaluator) rightToken(kind OperandKind, tok string) (string, error) {
	v, ok := e.resolve(tok)
	if !ok {
		if IsReference(tok) {
			return "", fmt.Errorf("%w %s", ErrUndefinedVariable, tok)
		}
		return tok, nil
	}
	if kind == ValueOperand {
		return "0x" + v.Hex(), nil
	}
	if v.BitLen() > 64 {
		return "", fmt.Errorf("%w: %s is wider than 64 bits", ErrSyntax, tok)
	}
	var u uint64
	limbs := v.Limbs()
	for i := len(limbs) - 1; i >= 0; i-- {
		u = u<<32 | uint64(limbs[i])
	}
	return strconv.FormatUint(u, 10), nil
}

func (e *Evaluator) parse(expr string) (op Op, lhs, rhs string, err error) {
	fields := strings.Fields(expr)
	if len(fields) == 0 {
		return Op{}, "", "", fmt.Errorf("%w: empty expression", ErrSyntax)
	}

	if named, ok := e.Registry.Lookup(strings.ToLower(fields[0])); ok {
		if len(fields)-1 != named.Arity() {
			return Op{}, "", "", fmt.Errorf("%w: %s takes %d operand(s), usage: %s", ErrSyntax, named.Name, named.Arity(), named.Usage)
		}
		if named.Arity() == 1 {
			return named, fields[1], "", nil
		}
		return named, fields[1], fields[2], nil
	}

	if len(fields) == 3 {
		if infix, ok := e.Registry.LookupSymbol(fields[1]); ok {
			return infix, fields[0], fields[2], nil
		}
		if !e.isOperand(fields[0]) {
			return Op{}, "", "", fmt.Errorf("%w: unknown operation %q", ErrSyntax, fields[0])
		}
		return Op{}, "", "", fmt.Errorf("%w: unknown operator %q", ErrSyntax, fields[1])
	}
	return Op{}, "", "", fmt.Errorf("%w: unknown operation %q", ErrSyntax, fields[0])
}

func (e *Evaluator) value(tok string) (*bigint.Int, error) {
	if v, ok := e.resolve(tok); ok {
		return v, nil
	}
	if IsReference(tok) {
		return nil, fmt.Errorf("%w %s", ErrUndefinedVariable, tok)
	}
	return ParseValue(tok)
}

// isOperand reports whether tok reads as a left operand, so that a failed
// infix lookup can blame the operator rather than the first word.
func (e *Evaluator) isOperand(tok string) bool {
	if _, ok := e.resolve(tok); ok || IsReference(tok) {
		return true
	}
	_, err := ParseValue(tok)
	return err == nil
}

func (e *Evaluator) resolve(tok string) (*bigint.Int, bool) {
	if e.Resolve == nil {
		return nil, false
	}
	return e.Resolve(tok)
}
