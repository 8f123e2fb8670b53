package session

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/spacemonkeygo/monkit/v3"

	"github.com/katalvlaran/congruent/lcg"
)

var mon = monkit.Package()

// DefaultCacheSize is the number of recent sequences kept per session.
const DefaultCacheSize = 16

var (
	// ErrNothingToExport indicates ExportCSV was called without a result.
	ErrNothingToExport = errors.New("session: no rows to export")

	// ErrBadCacheSize indicates WithCacheSize received n ≤ 0.
	ErrBadCacheSize = errors.New("session: cache size must be positive")
)

// Options configures a Session.
type Options struct {
	CacheSize    int
	ExponentMode lcg.ExponentMode
	Now          func() time.Time
}

// Option is a functional option for New.
type Option func(*Options)

// WithCacheSize sets the LRU capacity. Panics on n ≤ 0.
func WithCacheSize(n int) Option {
	if n <= 0 {
		panic(ErrBadCacheSize.Error())
	}
	return func(o *Options) {
		o.CacheSize = n
	}
}

// WithExponentMode forwards the exponent strategy to lcg.DeriveConstants.
// Panics on an unknown mode.
func WithExponentMode(mode lcg.ExponentMode) Option {
	if mode != lcg.ExponentLogRatio && mode != lcg.ExponentBitLength {
		panic(lcg.ErrBadExponentMode.Error())
	}
	return func(o *Options) {
		o.ExponentMode = mode
	}
}

// WithClock overrides the time source used for export filenames.
func WithClock(now func() time.Time) Option {
	return func(o *Options) {
		if now != nil {
			o.Now = now
		}
	}
}

// DefaultOptions returns the legacy-compatible defaults.
func DefaultOptions() Options {
	return Options{
		CacheSize:    DefaultCacheSize,
		ExponentMode: lcg.ExponentLogRatio,
		Now:          time.Now,
	}
}

// cacheKey identifies a generation request after validation.
type cacheKey struct {
	params lcg.Params
	mode   lcg.ExponentMode
}

// Session is the caller-owned state of one generator form.
type Session struct {
	variant lcg.Variant
	opts    Options

	inputs lcg.RawInputs
	result *lcg.Sequence
	issues []lcg.Issue

	cache *lru.Cache[cacheKey, lcg.Sequence]
}

// New creates an empty session for the given variant.
func New(variant lcg.Variant, opts ...Option) (*Session, error) {
	if variant != lcg.Linear && variant != lcg.Multiplicative {
		return nil, fmt.Errorf("session: %w", lcg.ErrUnknownVariant)
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	cache, err := lru.New[cacheKey, lcg.Sequence](o.CacheSize)
	if err != nil {
		return nil, fmt.Errorf("session: create cache: %w", err)
	}
	return &Session{variant: variant, opts: o, cache: cache}, nil
}

// Variant reports which generator this session drives.
func (s *Session) Variant() lcg.Variant { return s.variant }

// Generate validates raw, derives the constants and iterates the recurrence.
//
// On success the current result is replaced and the error list cleared.
// On a validation failure the issues are stored, the previous result is
// kept and the *lcg.ValidationError is returned.
func (s *Session) Generate(raw lcg.RawInputs) (err error) {
	defer mon.Task()(nil)(&err)

	s.inputs = raw
	params, err := lcg.Validate(s.variant, raw)
	if err != nil {
		mon.Meter("validation_failures").Mark(1)
		s.issues = lcg.IssuesOf(err)
		return err
	}

	key := cacheKey{params: params, mode: s.opts.ExponentMode}
	seq, ok := s.cache.Get(key)
	if ok {
		mon.Counter("cache_hits").Inc(1)
	} else {
		consts := lcg.DeriveConstants(params, lcg.WithExponentMode(s.opts.ExponentMode))
		seq = lcg.Generate(params, consts)
		s.cache.Add(key, cloneSequence(seq))
	}
	mon.IntVal("rows").Observe(int64(len(seq.Rows)))

	s.issues = nil
	seq = cloneSequence(seq)
	s.result = &seq
	return nil
}

// cloneSequence copies the row storage so cached entries never alias rows
// handed out to callers.
func cloneSequence(seq lcg.Sequence) lcg.Sequence {
	seq.Rows = slices.Clone(seq.Rows)
	return seq
}

// Clear wipes inputs, result and errors. The cache is kept.
func (s *Session) Clear() {
	s.inputs = lcg.RawInputs{}
	s.result = nil
	s.issues = nil
}

// Inputs returns the raw inputs of the last Generate call.
func (s *Session) Inputs() lcg.RawInputs { return s.inputs }

// Result returns a copy of the current sequence, if any. Edits to the
// returned rows do not reach the session or its cache.
func (s *Session) Result() (lcg.Sequence, bool) {
	if s.result == nil {
		return lcg.Sequence{}, false
	}
	return cloneSequence(*s.result), true
}

// Errors returns the issues of the last failed Generate call, or nil.
func (s *Session) Errors() []lcg.Issue {
	if len(s.issues) == 0 {
		return nil
	}
	out := make([]lcg.Issue, len(s.issues))
	copy(out, s.issues)
	return out
}

// CacheLen reports how many sequences the LRU currently holds.
func (s *Session) CacheLen() int { return s.cache.Len() }

// Summary renders the derived constants of the current result, e.g.
// "a: 5; c: 7  g: 2; m: 4" or "a: 3  g: 3  m: 8  N: 2". Empty without a result.
func (s *Session) Summary() string {
	if s.result == nil {
		return ""
	}
	k := s.result.Constants
	if s.variant == lcg.Multiplicative {
		return fmt.Sprintf("a: %d  g: %d  m: %d  N: %d", k.A, k.G, k.M, k.MaxPeriod(lcg.Multiplicative))
	}
	return fmt.Sprintf("a: %d; c: %d  g: %d; m: %d", k.A, k.C, k.G, k.M)
}

// ExportCSV returns the CSV text of the current result.
func (s *Session) ExportCSV() (string, error) {
	if s.result == nil || len(s.result.Rows) == 0 {
		return "", ErrNothingToExport
	}
	return s.result.CSV(), nil
}

// WriteCSV streams the current result to w and returns the suggested
// download filename.
func (s *Session) WriteCSV(w io.Writer) (filename string, err error) {
	defer mon.Task()(nil)(&err)

	if s.result == nil || len(s.result.Rows) == 0 {
		return "", ErrNothingToExport
	}
	if err = lcg.WriteCSV(w, s.result.Rows, s.result.Params.D); err != nil {
		return "", fmt.Errorf("session: %w", err)
	}
	return lcg.ExportFilename(s.variant, s.opts.Now()), nil
}
