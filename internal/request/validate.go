package request

import (
	"math"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/keyforge/keyforge/internal/charset"
)

var validate = validator.New()

const (
	// DefaultLength is the key length used when none is requested.
	DefaultLength = 16

	// DefaultKeyCount is the collection size used when multi-key
	// retrieval is requested without an explicit count.
	DefaultKeyCount = 2

	// defaultFixedWidth is the chunk size used when a separator is given
	// without a width in character mode.
	defaultFixedWidth = 4

	// maxCapacity bounds every length and count field.
	maxCapacity = math.MaxInt64

	// largeLengthHint is the length beyond which generation may take a
	// while; verbose mode points that out.
	largeLengthHint = 100_000
)

// Validate applies the validation rules in order and returns the
// resolved configuration. All failures surface here, before any
// randomness is drawn.
func Validate(req Request) (*Config, error) {
	if req.Length < 0 {
		return nil, errors.Wrapf(ErrNonPositiveLength, "length %d", req.Length)
	}

	if req.Length == 0 {
		req.Length = DefaultLength
	}

	if err := validate.Struct(req); err != nil {
		return nil, errors.Wrap(ErrInvalidParameter, err.Error())
	}

	for _, n := range []int64{int64(req.Length), int64(req.WordCount), int64(req.KeyCount)} {
		if n >= maxCapacity {
			return nil, ErrCapacityExceeded
		}
	}

	if req.Verbose && req.Length >= largeLengthHint {
		log.Warn().
			Int("length", req.Length).
			Msg("large key length, generation may take a while")
	}

	if !req.Exclude.IsZero() && req.IncludeAll {
		return nil, errors.Wrap(ErrMutuallyExclusive, "exclude and include-all")
	}

	if req.Encoded && req.URLSafe {
		return nil, errors.Wrap(ErrMutuallyExclusive, "encoded and urlsafe-encoded")
	}

	excluded, err := resolveExclusion(req)
	if err != nil {
		return nil, err
	}

	candidates := charset.Candidates(excluded)
	if len(candidates) == 0 {
		return nil, ErrEmptyCharset
	}

	if req.Unique && !req.UseWords && req.Length > len(candidates) && !req.BypassUniqueLimit {
		return nil, errors.Wrapf(ErrUniqueCapacity,
			"length %d > %d candidates", req.Length, len(candidates))
	}

	plan, err := resolvePlan(req)
	if err != nil {
		return nil, err
	}

	if req.UseWords && req.WordCount == 0 {
		return nil, ErrMissingWordCount
	}

	if !req.UseWords && req.WordCount > 0 && req.Verbose {
		log.Warn().Msg("word count is ignored unless word mode is enabled")
	}

	encoding := EncodingNone

	switch {
	case req.Encoded:
		encoding = EncodingBase64
	case req.URLSafe:
		encoding = EncodingBase64URL
	}

	return &Config{
		Length:    req.Length,
		Charset:   candidates,
		Unique:    req.Unique,
		Bypass:    req.BypassUniqueLimit,
		Encoding:  encoding,
		Plan:      plan,
		UseWords:  req.UseWords,
		WordCount: req.WordCount,
		KeyCount:  req.KeyCount,
		Verbose:   req.Verbose,
	}, nil
}

// resolveExclusion turns the tagged exclusion variant into a concrete
// excluded character set. When nothing is requested punctuation is
// excluded, unless include-all keeps the full alphabet. Literal sets are
// used verbatim aside from whitespace stripping; whitespace-only
// requests are a no-op.
func resolveExclusion(req Request) (string, error) {
	e := req.Exclude

	if e.IsZero() {
		if req.IncludeAll {
			return "", nil
		}

		return charset.Resolve("punct")
	}

	set := 0
	for _, used := range []bool{e.Name != "", e.Index != 0, e.Literal != ""} {
		if used {
			set++
		}
	}

	if set > 1 {
		return "", errors.Wrap(ErrInvalidParameter, "multiple exclusion selectors")
	}

	switch {
	case e.Name != "":
		if e.Name == "whitespace" {
			if req.Verbose {
				log.Warn().Msg("whitespace is always excluded from the charset")
			}

			return "", nil
		}

		return charset.Resolve(e.Name)

	case e.Index != 0:
		return charset.ResolveIndex(e.Index)

	case e.Literal != "":
		stripped := stripWhitespace(e.Literal)
		if len(stripped) < len(e.Literal) && req.Verbose {
			log.Warn().Msg("whitespace is always excluded from the charset")
		}

		return stripped, nil
	}

	return "", nil
}

// resolvePlan validates the separator and widths and normalizes them
// into a SeparatorPlan.
func resolvePlan(req Request) (SeparatorPlan, error) {
	none := SeparatorPlan{Mode: WrapNone}

	if req.Separator == "" {
		if (req.SepWidth > 0 || len(req.SepWidths) > 0) && req.Verbose {
			log.Warn().Msg("separator width given without a separator, wrapping disabled")
		}

		return none, nil
	}

	if !req.UseWords && len(req.Separator) > 1 {
		return none, ErrSeparatorLength
	}

	if req.Separator != " " && strings.ContainsAny(req.Separator, charset.Whitespace) {
		return none, ErrSeparatorWhitespace
	}

	if req.SepWidth > 0 && len(req.SepWidths) > 0 {
		return none, errors.Wrap(ErrMutuallyExclusive, "fixed and iterable separator widths")
	}

	if len(req.SepWidths) > 0 {
		return chunkPlan(req)
	}

	return fixedPlan(req)
}

// fixedPlan resolves fixed-width wrapping. In character mode the width
// is a repeating chunk size and must stay below the key length; widths
// within one of the length clamp to length-1 so the separator is not
// silently dropped. Word mode resolves a zero width to half the raw
// length at wrap time.
func fixedPlan(req Request) (SeparatorPlan, error) {
	plan := SeparatorPlan{Mode: WrapFixed, Sep: req.Separator, Width: req.SepWidth}

	if req.UseWords {
		return plan, nil
	}

	if plan.Width == 0 {
		plan.Width = defaultFixedWidth
	}

	if req.Length > 1 && plan.Width >= req.Length {
		if plan.Width > req.Length+1 {
			return plan, errors.Wrapf(ErrSeparatorWidth,
				"width %d, length %d", plan.Width, req.Length)
		}

		if req.Verbose {
			log.Warn().
				Int("width", plan.Width).
				Int("adjusted", req.Length-1).
				Msg("separator width reaches past the key, clamping")
		}

		plan.Width = req.Length - 1
	}

	return plan, nil
}

// chunkPlan resolves iterable widths: successive chunk sizes whose sum,
// plus one separator per chunk, must not exceed the key length.
func chunkPlan(req Request) (SeparatorPlan, error) {
	plan := SeparatorPlan{Mode: WrapChunks, Sep: req.Separator, Widths: req.SepWidths}

	if req.UseWords {
		return plan, errors.Wrap(ErrSeparatorWidth, "iterable widths do not apply to word mode")
	}

	sum := 0

	for _, w := range req.SepWidths {
		if w < 1 {
			return plan, errors.Wrap(ErrSeparatorWidth, "widths must be positive")
		}

		sum += w
	}

	if sum+len(req.SepWidths) > req.Length {
		return plan, errors.Wrapf(ErrSeparatorWidth,
			"widths consume %d of %d characters", sum+len(req.SepWidths), req.Length)
	}

	return plan, nil
}

func stripWhitespace(s string) string {
	var b strings.Builder

	b.Grow(len(s))

	for _, c := range s {
		if !strings.ContainsRune(charset.Whitespace, c) {
			b.WriteRune(c)
		}
	}

	return b.String()
}
