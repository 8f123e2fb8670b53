package lcg

import (
	"math"
	"math/bits"
)

// multiplicativeHeadroom adds two bits of modulus for the multiplicative
// variant, whose period is at most m/4.
const multiplicativeHeadroom = 2

// Exponent returns g for the requested count p under the given strategy.
//
// ExponentLogRatio:  ⌈ln p / ln 2⌉ in float64 (legacy parity).
// ExponentBitLength: bit length of p−1, i.e. the smallest g with 2^g ≥ p.
//
// p < 1 yields 0.
func Exponent(p int, mode ExponentMode) uint {
	if p <= 1 {
		return 0
	}
	if mode == ExponentBitLength {
		return uint(bits.Len64(uint64(p - 1)))
	}
	return uint(math.Ceil(math.Log(float64(p)) / math.Ln2))
}

// DeriveConstants computes {g, m, a, c} from validated params.
//
// Linear:         g = ⌈log2 p⌉,     m = 2^g, a = 1 + 4k, c = params.C.
// Multiplicative: g = ⌈log2 p⌉ + 2, m = 2^g, a = 3 + 8k | 5 + 8k, c = 0.
//
// a ≡ 1 (mod 4) is required for full period of the mixed generator with a
// power-of-two modulus; a ≡ 3 or 5 (mod 8) gives period m/4 for odd seeds.
//
// Complexity: O(1).
func DeriveConstants(params Params, opts ...Option) Constants {
	o := resolveOptions(opts)

	g := Exponent(params.P, o.ExponentMode)
	var out Constants
	if params.Variant == Multiplicative {
		g += multiplicativeHeadroom
		out.A = params.Form.base() + 8*params.K
		out.C = 0
	} else {
		out.A = 1 + 4*params.K
		out.C = params.C
	}
	out.G = g
	out.M = uint64(1) << g

	return out
}
