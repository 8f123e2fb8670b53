package lcg

import (
	"math/bits"
	"strconv"
)

// engine is the recurrence shared by both variants. The multiplicative
// variant is the special case c == 0 with the additive term left out of the
// operation label.
type engine struct {
	a, c, m  uint64
	mixed    bool
	denom    float64 // m−1, or 0 when m ≤ 1
	labelBuf []byte
}

func newEngine(v Variant, k Constants) *engine {
	e := &engine{a: k.A, c: k.C, m: k.M, mixed: v != Multiplicative}
	if k.M > 1 {
		e.denom = float64(k.M - 1)
	}
	return e
}

// next returns (a*x + c) mod m without losing precision: the product is
// formed in 128 bits.
func (e *engine) next(x uint64) uint64 {
	hi, lo := bits.Mul64(e.a, x)
	var carry uint64
	lo, carry = bits.Add64(lo, e.c, 0)
	hi += carry
	return bits.Rem64(hi, lo, e.m)
}

// ratio normalizes the post-step state into [0,1].
func (e *engine) ratio(next uint64) float64 {
	if e.denom == 0 {
		return 0
	}
	return float64(next) / e.denom
}

// label renders "(a * x + c) MOD(m)" or "(a * x) MOD(m)".
func (e *engine) label(x uint64) string {
	b := e.labelBuf[:0]
	b = append(b, '(')
	b = strconv.AppendUint(b, e.a, 10)
	b = append(b, " * "...)
	b = strconv.AppendUint(b, x, 10)
	if e.mixed {
		b = append(b, " + "...)
		b = strconv.AppendUint(b, e.c, 10)
	}
	b = append(b, ") MOD("...)
	b = strconv.AppendUint(b, e.m, 10)
	b = append(b, ')')
	e.labelBuf = b
	return string(b)
}

// RowCount is the number of rows produced for a requested count p:
// min(p, HardCapRows) + 1.
func RowCount(p int) int {
	if p > HardCapRows {
		p = HardCapRows
	}
	if p < 0 {
		p = 0
	}
	return p + 1
}

// Generate iterates the recurrence and returns min(p, 8192)+1 rows.
//
// Steps:
//  1. x = seed mod m (a non-negative state even when seed ≥ m).
//  2. For i = 1..min(p,8192)+1: record x, next = (a·x + c) mod m, the label,
//     ratio = next/(m−1) (0 when m ≤ 1), then x = next.
//
// Inputs are assumed validated; Generate never fails.
//
// Complexity: O(p) time and memory.
func Generate(params Params, k Constants) Sequence {
	e := newEngine(params.Variant, k)
	n := RowCount(params.P)
	rows := make([]Row, n)

	x := params.Seed % k.M
	for i := 0; i < n; i++ {
		nx := e.next(x)
		rows[i] = Row{
			Index:   i + 1,
			Current: x,
			Op:      e.label(x),
			Next:    nx,
			Ratio:   e.ratio(nx),
		}
		x = nx
	}

	return Sequence{Params: params, Constants: k, Rows: rows}
}

// Run is the full pipeline: Validate, DeriveConstants, Generate.
// On a validation failure it returns the *ValidationError and no rows.
func Run(variant Variant, raw RawInputs, opts ...Option) (Sequence, error) {
	params, err := Validate(variant, raw)
	if err != nil {
		return Sequence{}, err
	}
	return Generate(params, DeriveConstants(params, opts...)), nil
}
