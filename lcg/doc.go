// Package lcg builds tabulated pseudo-random sequences with the two classic
// linear congruential schemes: the mixed (linear) generator and the
// multiplicative generator, both over a power-of-two modulus.
//
// 🚀 What is an LCG?
//
//	A linear congruential generator iterates
//	    X_{i+1} = (a·X_i + c) MOD(m)
//	starting from a seed X_0. With c = 0 it is called multiplicative.
//	The normalized output r_i = X_{i+1}/(m−1) lies in [0,1]; it reaches 1 when X_{i+1} = m−1.
//
// ✨ Key features:
//   - Raw-text validation that reports EVERY violated rule at once
//     (format, domain and capacity errors), never just the first.
//   - Constant derivation sized from the requested count p:
//     linear:         g = ⌈ln p / ln 2⌉,     m = 2^g, a = 1 + 4k, c prime
//     multiplicative: g = ⌈ln p / ln 2⌉ + 2, m = 2^g, a = 3 + 8k or 5 + 8k, c = 0
//   - One parameterized engine for both variants.
//   - Fixed-point ratio rendering with D ∈ [0,12] decimals and a fully
//     quoted CSV export (plus a parser for round-trips).
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/congruent/lcg"
//
//	params, err := lcg.Validate(lcg.Linear, lcg.RawInputs{
//	    Seed: "5", K: "1", C: "7", P: "3", D: "2",
//	})
//	if err != nil {
//	    var verr *lcg.ValidationError
//	    if errors.As(err, &verr) {
//	        for _, msg := range verr.Messages() {
//	            fmt.Println("•", msg)
//	        }
//	    }
//	    return
//	}
//	consts := lcg.DeriveConstants(params)
//	seq := lcg.Generate(params, consts)
//	fmt.Print(seq.CSV())
//
// Exponent strategy:
//
//	The default ExponentLogRatio evaluates math.Ceil(math.Log(p)/math.Ln2)
//	exactly like the legacy tool, including its floating-point behaviour at
//	exact powers of two. ExponentBitLength computes the smallest g with
//	2^g ≥ p from the bit length of p−1 and is exact for every p.
//	Select it with WithExponentMode(ExponentBitLength).
//
// Limits:
//
//   - p ≤ HardCapRows (8192); exactly min(p, 8192)+1 rows are produced.
//   - D ≤ MaxDecimals (12).
//   - The multiplier a must fit in 64 bits; larger k is a domain error.
//
// Performance:
//
//   - Validate:        O(√c) for the primality trial division, O(1) otherwise.
//   - DeriveConstants: O(1).
//   - Generate:        O(p) time and memory.
//   - ToCSV:           O(p·D).
//
// Thread safety:
//
//	Every function is pure; values returned are never mutated afterwards
//	and may be shared freely between goroutines.
package lcg
