package lcg_test

import (
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/congruent/lcg"
)

// legacyExponent reproduces ⌈ln p / ln 2⌉ the way the legacy tool does.
func legacyExponent(p int) uint {
	return uint(math.Ceil(math.Log(float64(p)) / math.Ln2))
}

// TestDeriveConstants_Linear checks m = 2^⌈ln p/ln 2⌉ and a ≡ 1 (mod 4)
// across the whole accepted range of p.
func TestDeriveConstants_Linear(t *testing.T) {
	for p := 1; p <= lcg.HardCapRows; p++ {
		params := lcg.Params{Variant: lcg.Linear, Seed: 1, K: uint64(p), C: 7, P: p}
		k := lcg.DeriveConstants(params)
		g := legacyExponent(p)
		require.Equal(t, g, k.G, "p=%d", p)
		require.Equal(t, uint64(1)<<g, k.M, "p=%d", p)
		require.GreaterOrEqual(t, k.M, uint64(p), "p=%d", p)
		require.Equal(t, uint64(1), k.A%4, "p=%d", p)
		require.Equal(t, uint64(7), k.C)
	}
}

// TestDeriveConstants_Multiplicative checks a mod 8 matches the form and the
// two extra bits of modulus.
func TestDeriveConstants_Multiplicative(t *testing.T) {
	for _, form := range []lcg.MultiplierForm{lcg.Form3Plus8K, lcg.Form5Plus8K} {
		want := uint64(3)
		if form == lcg.Form5Plus8K {
			want = 5
		}
		for p := 1; p <= 300; p++ {
			params := lcg.Params{Variant: lcg.Multiplicative, Seed: 1, K: uint64(p), Form: form, P: p}
			k := lcg.DeriveConstants(params)
			assert.Equal(t, want, k.A%8, "form=%s p=%d", form, p)
			assert.Equal(t, legacyExponent(p)+2, k.G, "p=%d", p)
			assert.Equal(t, uint64(0), k.C)
			assert.Equal(t, k.M/4, k.MaxPeriod(lcg.Multiplicative))
		}
	}
}

// TestExponent_BitLength checks the exact strategy against a brute force.
func TestExponent_BitLength(t *testing.T) {
	for p := 1; p <= lcg.HardCapRows; p++ {
		g := lcg.Exponent(p, lcg.ExponentBitLength)
		m := uint64(1) << g
		require.GreaterOrEqual(t, m, uint64(p), "p=%d", p)
		if g > 0 {
			require.Less(t, m/2, uint64(p), "p=%d not minimal", p)
		}
	}
	assert.Equal(t, uint(13), lcg.Exponent(8192, lcg.ExponentBitLength))
	assert.Equal(t, uint(0), lcg.Exponent(1, lcg.ExponentLogRatio))
	assert.Equal(t, uint(0), lcg.Exponent(0, lcg.ExponentBitLength))
}

// TestDeriveConstants_WithExponentMode checks the option is honored.
func TestDeriveConstants_WithExponentMode(t *testing.T) {
	params := lcg.Params{Variant: lcg.Multiplicative, Seed: 1, P: 5}
	k := lcg.DeriveConstants(params, lcg.WithExponentMode(lcg.ExponentBitLength))
	assert.Equal(t, uint(5), k.G)
	assert.Equal(t, uint64(32), k.M)
}

// TestWithExponentMode_PanicsOnUnknown mirrors the option-constructor rule.
func TestWithExponentMode_PanicsOnUnknown(t *testing.T) {
	assert.PanicsWithValue(t, lcg.ErrBadExponentMode.Error(), func() {
		lcg.WithExponentMode(lcg.ExponentMode(7))
	})
}

// TestGenerate_LinearScenario is scenario 1: seed=5, k=1, c=7, p=3.
func TestGenerate_LinearScenario(t *testing.T) {
	seq, err := lcg.Run(lcg.Linear, lcg.RawInputs{Seed: "5", K: "1", C: "7", P: "3", D: "2"})
	require.NoError(t, err)

	assert.Equal(t, lcg.Constants{G: 2, M: 4, A: 5, C: 7}, seq.Constants)
	want := []lcg.Row{
		{Index: 1, Current: 1, Op: "(5 * 1 + 7) MOD(4)", Next: 0, Ratio: 0},
		{Index: 2, Current: 0, Op: "(5 * 0 + 7) MOD(4)", Next: 3, Ratio: 1},
		{Index: 3, Current: 3, Op: "(5 * 3 + 7) MOD(4)", Next: 2, Ratio: 2.0 / 3.0},
		{Index: 4, Current: 2, Op: "(5 * 2 + 7) MOD(4)", Next: 1, Ratio: 1.0 / 3.0},
	}
	assert.Equal(t, want, seq.Rows)
}

// TestGenerate_MultiplicativeScenario is scenario 2: seed=5, k=0, a=3, p=2.
func TestGenerate_MultiplicativeScenario(t *testing.T) {
	seq, err := lcg.Run(lcg.Multiplicative, lcg.RawInputs{Seed: "5", K: "0", Form: "3+8k", P: "2", D: "3"})
	require.NoError(t, err)

	assert.Equal(t, lcg.Constants{G: 3, M: 8, A: 3, C: 0}, seq.Constants)
	require.Len(t, seq.Rows, 3)
	assert.Equal(t, "(3 * 5) MOD(8)", seq.Rows[0].Op)
	assert.Equal(t, []uint64{5, 7, 5}, []uint64{seq.Rows[0].Current, seq.Rows[1].Current, seq.Rows[2].Current})
	assert.Equal(t, []uint64{7, 5, 7}, []uint64{seq.Rows[0].Next, seq.Rows[1].Next, seq.Rows[2].Next})
	assert.InDelta(t, 5.0/7.0, seq.Rows[1].Ratio, 1e-15)
}

// TestGenerate_SingleCount covers p=1: g=0, m=1 and every ratio is 0.
func TestGenerate_SingleCount(t *testing.T) {
	seq, err := lcg.Run(lcg.Linear, lcg.RawInputs{Seed: "9", K: "2", C: "3", P: "1", D: "0"})
	require.NoError(t, err)
	assert.Equal(t, uint64(1), seq.Constants.M)
	require.Len(t, seq.Rows, 2)
	for _, r := range seq.Rows {
		assert.Equal(t, uint64(0), r.Current)
		assert.Equal(t, uint64(0), r.Next)
		assert.Equal(t, 0.0, r.Ratio)
	}
}

// TestGenerate_SeedLargerThanModulus checks the initial state is reduced.
func TestGenerate_SeedLargerThanModulus(t *testing.T) {
	seq, err := lcg.Run(lcg.Linear, lcg.RawInputs{Seed: "1000003", K: "0", C: "3", P: "16", D: "2"})
	require.NoError(t, err)
	assert.Equal(t, uint64(1000003%16), seq.Rows[0].Current)
}

// TestGenerate_Properties checks length, recurrence, continuity and ratio
// range for a spread of inputs on both variants.
func TestGenerate_Properties(t *testing.T) {
	inputs := []struct {
		v   lcg.Variant
		raw lcg.RawInputs
	}{
		{lcg.Linear, lcg.RawInputs{Seed: "0", K: "0", C: "2", P: "1", D: "1"}},
		{lcg.Linear, lcg.RawInputs{Seed: "12345", K: "7", C: "13", P: "100", D: "5"}},
		{lcg.Linear, lcg.RawInputs{Seed: "77", K: "1000", C: "7919", P: "8192", D: "12"}},
		{lcg.Multiplicative, lcg.RawInputs{Seed: "1", K: "3", Form: "5+8k", P: "64", D: "4"}},
		{lcg.Multiplicative, lcg.RawInputs{Seed: "999", K: "11", Form: "3+8k", P: "5000", D: "6"}},
	}
	for _, in := range inputs {
		seq, err := lcg.Run(in.v, in.raw)
		require.NoError(t, err)
		k := seq.Constants

		require.Len(t, seq.Rows, lcg.RowCount(seq.Params.P))
		require.Equal(t, seq.Params.P+1, len(seq.Rows))
		for i, r := range seq.Rows {
			require.Equal(t, i+1, r.Index)
			require.Equal(t, (k.A*r.Current+k.C)%k.M, r.Next)
			if i+1 < len(seq.Rows) {
				require.Equal(t, r.Next, seq.Rows[i+1].Current)
			}
			require.GreaterOrEqual(t, r.Ratio, 0.0)
			require.LessOrEqual(t, r.Ratio, 1.0)
			if in.v == lcg.Multiplicative {
				require.Equal(t, uint64(1), r.Current%2, "multiplicative states stay odd")
			}
		}
	}
}

// TestGenerate_MultiplicativePeriod checks the odd-seed sequence repeats
// with period m/4. The exact exponent keeps m/4 == p for p a power of two.
func TestGenerate_MultiplicativePeriod(t *testing.T) {
	seq, err := lcg.Run(lcg.Multiplicative,
		lcg.RawInputs{Seed: "3", K: "2", Form: "5+8k", P: "64", D: "2"},
		lcg.WithExponentMode(lcg.ExponentBitLength))
	require.NoError(t, err)
	period := int(seq.Constants.MaxPeriod(lcg.Multiplicative))
	require.Less(t, period, len(seq.Rows))

	seen := map[uint64]int{}
	for i, r := range seq.Rows[:period] {
		_, dup := seen[r.Current]
		require.False(t, dup, "state %d repeated early at row %d", r.Current, i+1)
		seen[r.Current] = i
	}
	assert.Equal(t, seq.Rows[0].Current, seq.Rows[period].Current)
}

// TestGenerate_WideMultiplier checks 128-bit products with the largest k.
func TestGenerate_WideMultiplier(t *testing.T) {
	seq, err := lcg.Run(lcg.Linear, lcg.RawInputs{Seed: "7", K: "4611686018427387903", C: "8191", P: "8192", D: "4"})
	require.NoError(t, err)
	k := seq.Constants
	require.Equal(t, uint64(math.MaxUint64-2), k.A)

	a := new(big.Int).SetUint64(k.A)
	c := new(big.Int).SetUint64(k.C)
	m := new(big.Int).SetUint64(k.M)
	for _, r := range seq.Rows[:64] {
		want := new(big.Int).SetUint64(r.Current)
		want.Mul(want, a).Add(want, c).Mod(want, m)
		require.Equal(t, want.Uint64(), r.Next, "row %d", r.Index)
	}
}

// TestRowCount checks min(p, cap)+1.
func TestRowCount(t *testing.T) {
	assert.Equal(t, 4, lcg.RowCount(3))
	assert.Equal(t, lcg.HardCapRows+1, lcg.RowCount(lcg.HardCapRows))
	assert.Equal(t, lcg.HardCapRows+1, lcg.RowCount(9000))
	assert.Equal(t, 1, lcg.RowCount(0))
}
