// Package lcg - validation of raw textual inputs.
//
// Validation runs in two stages, both of which always complete:
//  1. Shape: every numeric field must match ^\d+$ and fit in 64 bits.
//  2. Domain/capacity: run only for fields that passed stage 1
//     (p ≤ HardCapRows, c prime for linear, odd positive seed for
//     multiplicative, multiplier representable in 64 bits).
//
// Nothing is corrected or defaulted: every violation becomes an Issue.
package lcg

import (
	"fmt"
	"math"
	"strconv"
)

// Field names used in Issue.Field.
const (
	FieldSeed = "seed"
	FieldK    = "k"
	FieldC    = "c"
	FieldForm = "form"
	FieldP    = "p"
	FieldD    = "d"
)

// Display messages.
const (
	msgSeedFormat = "seed (X0) must be a non-negative integer"
	msgKFormat    = "k must be a non-negative integer"
	msgCFormat    = "c must be a non-negative integer"
	msgPFormat    = "p must be a positive integer"
	msgDFormat    = "D (decimals) must be a non-negative integer"
	msgDMax       = "D must not exceed 12"
	msgCPrime     = "c must be prime"
	msgSeedOdd    = "seed X0 must be odd and greater than 0"
	msgFormEnum   = "multiplier form must be 3+8k or 5+8k"
	msgKTooLarge  = "k is too large: multiplier a does not fit in 64 bits"
)

var msgPCap = fmt.Sprintf("p must not exceed %d", HardCapRows)

// Largest k for which a = 1 + 4k and a = 5 + 8k stay within uint64.
const (
	maxKLinear         = (math.MaxUint64 - 1) / 4
	maxKMultiplicative = (math.MaxUint64 - 5) / 8
)

// isNonNegIntStr reports whether s is one or more ASCII digits and nothing else.
func isNonNegIntStr(s string) bool {
	if len(s) == 0 {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// parseField returns the value of a digits-only field; ok is false for bad
// shape or a value that overflows uint64.
func parseField(s string) (uint64, bool) {
	if !isNonNegIntStr(s) {
		return 0, false
	}
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// IsPrime tests n by trial division up to √n.
func IsPrime(n uint64) bool {
	if n <= 1 {
		return false
	}
	if n%2 == 0 {
		return n == 2
	}
	for i := uint64(3); i <= n/i; i += 2 {
		if n%i == 0 {
			return false
		}
	}
	return true
}

// collector accumulates issues in check order.
type collector struct {
	issues []Issue
}

func (c *collector) add(field string, kind IssueKind, msg string) {
	c.issues = append(c.issues, Issue{Field: field, Kind: kind, Message: msg})
}

// Validate checks raw inputs for the given variant and returns either a
// typed Params or a *ValidationError listing every violated rule.
//
// Linear:         seed, k, c, p, D; p ∈ [1,8192]; D ≤ 12; c prime ≥ 2.
// Multiplicative: seed, k, p, D, form; p ∈ [1,8192]; D ≤ 12; seed odd > 0.
//
// Complexity: O(√c) for linear, O(1) for multiplicative.
func Validate(variant Variant, raw RawInputs) (Params, error) {
	if variant != Linear && variant != Multiplicative {
		return Params{}, fmt.Errorf("%w: %d", ErrUnknownVariant, int(variant))
	}

	var (
		col           collector
		out           = Params{Variant: variant}
		seedOK, kOK   bool
		cOK, pOK, dOK bool
		formOK        = true
		seedVal, kVal uint64
		cVal          uint64
		pVal, dVal    uint64
		form          MultiplierForm
	)

	// Stage 1: shape.
	if seedVal, seedOK = parseField(raw.Seed); !seedOK {
		col.add(FieldSeed, KindFormat, msgSeedFormat)
	}
	if kVal, kOK = parseField(raw.K); !kOK {
		col.add(FieldK, KindFormat, msgKFormat)
	}
	if variant == Linear {
		if cVal, cOK = parseField(raw.C); !cOK {
			col.add(FieldC, KindFormat, msgCFormat)
		}
	} else {
		if form, formOK = ParseMultiplierForm(raw.Form); !formOK {
			col.add(FieldForm, KindFormat, msgFormEnum)
		}
	}
	if pVal, pOK = parseField(raw.P); !pOK || pVal == 0 {
		pOK = false
		col.add(FieldP, KindFormat, msgPFormat)
	}
	if dVal, dOK = parseField(raw.D); !dOK {
		col.add(FieldD, KindFormat, msgDFormat)
	} else if dVal > MaxDecimals {
		col.add(FieldD, KindDomain, msgDMax)
	}

	// Stage 2: capacity and domain predicates on well-formed fields.
	if pOK && pVal > HardCapRows {
		col.add(FieldP, KindCapacity, msgPCap)
	}
	switch variant {
	case Linear:
		if cOK && (cVal < 2 || !IsPrime(cVal)) {
			col.add(FieldC, KindDomain, msgCPrime)
		}
		if kOK && kVal > maxKLinear {
			col.add(FieldK, KindDomain, msgKTooLarge)
		}
	case Multiplicative:
		if seedOK && (seedVal == 0 || seedVal%2 == 0) {
			col.add(FieldSeed, KindDomain, msgSeedOdd)
		}
		if kOK && kVal > maxKMultiplicative {
			col.add(FieldK, KindDomain, msgKTooLarge)
		}
	}

	if len(col.issues) > 0 {
		return Params{}, &ValidationError{Variant: variant, Issues: col.issues}
	}

	out.Seed = seedVal
	out.K = kVal
	out.P = int(pVal)
	out.D = int(dVal)
	if variant == Linear {
		out.C = cVal
	} else {
		out.Form = form
	}
	return out, nil
}
