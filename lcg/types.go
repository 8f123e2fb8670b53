// Package lcg defines core types, limits, options and sentinel errors for
// the linear and multiplicative congruential generators.
package lcg

import (
	"errors"
	"fmt"
)

// Hard limits shared by both variants.
const (
	// HardCapRows bounds the requested count p so a single synchronous
	// generation stays cheap on an interactive surface.
	HardCapRows = 8192

	// MaxDecimals bounds the fixed-point precision D of rendered ratios.
	MaxDecimals = 12
)

// Sentinel errors. A *ValidationError matches ErrFormat, ErrDomain and
// ErrCapacity through errors.Is whenever it carries an issue of that kind.
var (
	// ErrFormat indicates a field whose text is not a non-negative integer.
	ErrFormat = errors.New("lcg: malformed integer field")

	// ErrDomain indicates a well-formed value outside its allowed domain
	// (c not prime, even seed, D too large, multiplier overflow).
	ErrDomain = errors.New("lcg: value outside allowed domain")

	// ErrCapacity indicates a requested count above HardCapRows.
	ErrCapacity = errors.New("lcg: requested count exceeds hard cap")

	// ErrUnknownVariant indicates a Variant outside {Linear, Multiplicative}.
	ErrUnknownVariant = errors.New("lcg: unknown generator variant")

	// ErrBadExponentMode indicates an ExponentMode outside the known set.
	ErrBadExponentMode = errors.New("lcg: unknown exponent mode")

	// ErrBadCSV indicates text that is not a CSV blob produced by ToCSV.
	ErrBadCSV = errors.New("lcg: malformed csv")
)

// Variant selects the recurrence family.
type Variant int

const (
	// Linear is the mixed generator X' = (aX + c) mod m with c prime.
	Linear Variant = iota

	// Multiplicative is X' = (aX) mod m with an odd seed.
	Multiplicative
)

// String returns the lower-case variant name.
func (v Variant) String() string {
	switch v {
	case Linear:
		return "linear"
	case Multiplicative:
		return "multiplicative"
	default:
		return fmt.Sprintf("Variant(%d)", int(v))
	}
}

// ParseVariant maps "linear"/"multiplicative" back to a Variant.
func ParseVariant(s string) (Variant, error) {
	switch s {
	case "linear", "lineal":
		return Linear, nil
	case "multiplicative", "multiplicativo":
		return Multiplicative, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownVariant, s)
}

// MultiplierForm is the closed choice of multiplier rule for the
// multiplicative variant. Both forms give period m/4 for odd seeds.
type MultiplierForm int

const (
	// Form3Plus8K selects a = 3 + 8k.
	Form3Plus8K MultiplierForm = iota

	// Form5Plus8K selects a = 5 + 8k.
	Form5Plus8K
)

// String renders the form the way it is offered to users.
func (f MultiplierForm) String() string {
	if f == Form5Plus8K {
		return "5+8k"
	}
	return "3+8k"
}

// base returns the additive term of the form (3 or 5).
func (f MultiplierForm) base() uint64 {
	if f == Form5Plus8K {
		return 5
	}
	return 3
}

// ParseMultiplierForm accepts "3+8k" or "5+8k" (an empty string selects the
// default 3+8k, mirroring the preselected option of the original form).
func ParseMultiplierForm(s string) (MultiplierForm, bool) {
	switch s {
	case "", "3+8k":
		return Form3Plus8K, true
	case "5+8k":
		return Form5Plus8K, true
	}
	return 0, false
}

// RawInputs carries the untouched text of every form field.
// C is ignored by the multiplicative variant; Form is ignored by the linear one.
type RawInputs struct {
	Seed string
	K    string
	C    string
	Form string
	P    string
	D    string
}

// Params is a fully typed, range-checked parameter set produced by Validate.
// It is comparable and may be used as a map key.
type Params struct {
	Variant Variant
	Seed    uint64         // X0
	K       uint64         // multiplier index
	C       uint64         // additive constant (linear only; 0 otherwise)
	Form    MultiplierForm // multiplicative only
	P       int            // requested count, 1..HardCapRows
	D       int            // decimals, 0..MaxDecimals
}

// Constants are the values derived once per request from Params.
type Constants struct {
	G uint   // modulus exponent
	M uint64 // modulus, always 2^G ≥ 1
	A uint64 // multiplier
	C uint64 // additive constant, 0 for the multiplicative variant
}

// MaxPeriod returns the theoretical maximal period for the variant:
// m for the mixed generator and 2^(g−2) = m/4 for the multiplicative one.
func (c Constants) MaxPeriod(v Variant) uint64 {
	if v == Multiplicative {
		if c.G < 2 {
			return 1
		}
		return c.M >> 2
	}
	return c.M
}

// Row is a single step of the recurrence.
// Ratio is computed from Next, the post-step state.
type Row struct {
	Index   int    // 1-based position
	Current uint64 // X_i before the step
	Op      string // e.g. "(5 * 1 + 7) MOD(4)"
	Next    uint64 // X_{i+1}
	Ratio   float64
}

// Sequence is the immutable outcome of one generation request.
type Sequence struct {
	Params    Params
	Constants Constants
	Rows      []Row
}

// CSV serializes the sequence with its own decimal precision.
func (s Sequence) CSV() string {
	return ToCSV(s.Rows, s.Params.D)
}

// ExponentMode selects how the modulus exponent g is computed from p.
type ExponentMode int

const (
	// ExponentLogRatio evaluates ⌈ln p / ln 2⌉ in float64, matching the
	// legacy tool bit for bit (including exact powers of two).
	ExponentLogRatio ExponentMode = iota

	// ExponentBitLength returns the smallest g with 2^g ≥ p, exactly.
	ExponentBitLength
)

// Options configures constant derivation.
type Options struct {
	ExponentMode ExponentMode
}

// Option is a functional option for DeriveConstants and Run.
type Option func(*Options)

// WithExponentMode selects the exponent strategy.
// Panics with ErrBadExponentMode on an unknown mode.
func WithExponentMode(mode ExponentMode) Option {
	if mode != ExponentLogRatio && mode != ExponentBitLength {
		panic(ErrBadExponentMode.Error())
	}
	return func(o *Options) {
		o.ExponentMode = mode
	}
}

// DefaultOptions returns the legacy-compatible configuration.
func DefaultOptions() Options {
	return Options{ExponentMode: ExponentLogRatio}
}

func resolveOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
