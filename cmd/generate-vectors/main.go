// Command generate-vectors writes random known-answer vectors to a TOML file
// that bigcalc --vectors can verify. Expectations are computed with math/big.
package main

import (
	"flag"
	"fmt"
	"io"
	"math/big"
	"math/rand/v2"
	"os"
	"strconv"

	"github.com/BurntSushi/toml"

	"github.com/agbru/bigcalc/internal/logging"
	"github.com/agbru/bigcalc/internal/vectors"
)

// ops are the operations generated, in rotation.
var ops = []string{"add", "sub", "mul", "xor", "or", "and", "shl", "shr", "mod", "cmp"}

type options struct {
	count    int
	maxLimbs int
	seed     uint64
	output   string
}

func main() {
	var opts options
	flag.IntVar(&opts.count, "n", 100, "Number of vectors to generate.")
	flag.IntVar(&opts.maxLimbs, "limbs", 64, "Maximum operand size in 32-bit limbs.")
	flag.Uint64Var(&opts.seed, "seed", 1, "Random seed.")
	flag.StringVar(&opts.output, "o", "", "Output file (default stdout).")
	flag.Parse()

	logger := logging.NewConsoleLogger(os.Stderr, "generate-vectors", false, false)
	if opts.count <= 0 || opts.maxLimbs <= 0 {
		logger.Error("invalid options", fmt.Errorf("-n and -limbs must be positive"))
		os.Exit(1)
	}

	out := io.Writer(os.Stdout)
	if opts.output != "" {
		f, err := os.Create(opts.output)
		if err != nil {
			logger.Error("failed to create output file", err, logging.String("path", opts.output))
			os.Exit(1)
		}
		defer f.Close()
		out = f
	}

	vs := generate(rand.New(rand.NewPCG(opts.seed, opts.seed^0x9E3779B97F4A7C15)), opts.count, opts.maxLimbs)
	if err := write(out, vs); err != nil {
		logger.Error("failed to write vectors", err)
		os.Exit(1)
	}
	logger.Info("vectors generated", logging.Int("count", len(vs)), logging.Uint64("seed", opts.seed))
}

// vectorFile mirrors the layout vectors.Load reads.
type vectorFile struct {
	Vectors []vectors.Vector `toml:"vector"`
}

func write(w io.Writer, vs []vectors.Vector) error {
	fmt.Fprintln(w, "# Generated by generate-vectors. Expectations computed with math/big.")
	return toml.NewEncoder(w).Encode(vectorFile{Vectors: vs})
}

// generate returns n vectors cycling through ops with operands of up to
// maxLimbs limbs.
func generate(r *rand.Rand, n, maxLimbs int) []vectors.Vector {
	vs := make([]vectors.Vector, 0, n)
	for i := range n {
		op := ops[i%len(ops)]
		a, b := randBig(r, maxLimbs), randBig(r, maxLimbs)
		v := vectors.Vector{Name: fmt.Sprintf("%s-%03d", op, i), Op: op, A: "0x" + a.Text(16)}

		switch op {
		case "sub":
			if a.Cmp(b) < 0 {
				a, b = b, a
				v.A = "0x" + a.Text(16)
			}
			v.B = "0x" + b.Text(16)
		case "shl", "shr":
			count := r.IntN(32*maxLimbs + 40)
			v.B = strconv.Itoa(count)
		case "mod":
			v.B = strconv.FormatUint(uint64(r.Uint32()|1), 10)
		default:
			v.B = "0x" + b.Text(16)
		}
		v.Want = oracle(op, a, v.B)
		vs = append(vs, v)
	}
	return vs
}

// oracle computes the expectation of op applied to a and the textual right
// operand rhs.
func oracle(op string, a *big.Int, rhs string) string {
	hex := func(z *big.Int) string { return "0x" + z.Text(16) }
	parse := func(s string) *big.Int {
		z, _ := new(big.Int).SetString(s, 0)
		return z
	}
	b := parse(rhs)
	z := new(big.Int)
	switch op {
	case "add":
		return hex(z.Add(a, b))
	case "sub":
		return hex(z.Sub(a, b))
	case "mul":
		return hex(z.Mul(a, b))
	case "xor":
		return hex(z.Xor(a, b))
	case "or":
		return hex(z.Or(a, b))
	case "and":
		return hex(z.And(a, b))
	case "shl":
		return hex(z.Lsh(a, uint(b.Uint64())))
	case "shr":
		return hex(z.Rsh(a, uint(b.Uint64())))
	case "mod":
		return z.Mod(a, b).String()
	case "cmp":
		return strconv.Itoa(a.Cmp(b))
	}
	panic("generate-vectors: no oracle for " + op)
}

// randBig returns a value of 1 to maxLimbs limbs. One in eight is zero and
// one in eight is all ones, to exercise carries.
func randBig(r *rand.Rand, maxLimbs int) *big.Int {
	limbs := 1 + r.IntN(maxLimbs)
	switch r.IntN(8) {
	case 0:
		return new(big.Int)
	case 1:
		z := new(big.Int).Lsh(big.NewInt(1), uint(32*limbs))
		return z.Sub(z, big.NewInt(1))
	}
	buf := make([]byte, 4*limbs)
	for i := range buf {
		buf[i] = byte(r.Uint32())
	}
	return new(big.Int).SetBytes(buf)
}
