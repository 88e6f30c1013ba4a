// Package request validates and normalizes generation requests into an
// internally consistent configuration the sampler and wrapper consume.
package request

// Encoding selects the final transform applied to a wrapped key.
type Encoding int

// Encoding modes. At most one non-none mode applies to a key.
const (
	EncodingNone Encoding = iota
	EncodingBase64
	EncodingBase64URL
)

// Exclusion selects which characters are removed from the universal
// alphabet. At most one selector may be set.
type Exclusion struct {
	Name    string
	Index   int
	Literal string
}

// ByProfileName excludes a named catalog profile.
func ByProfileName(name string) Exclusion {
	return Exclusion{Name: name}
}

// ByProfileIndex excludes a catalog profile by its 1-based index.
func ByProfileIndex(idx int) Exclusion {
	return Exclusion{Index: idx}
}

// ByLiteralChars excludes the given characters verbatim.
func ByLiteralChars(chars string) Exclusion {
	return Exclusion{Literal: chars}
}

// IsZero reports whether no exclusion was requested.
func (e Exclusion) IsZero() bool {
	return e.Name == "" && e.Index == 0 && e.Literal == ""
}

// Request describes one key-generation session. The zero value of every
// field means "use the default"; Validate fills the defaults in.
type Request struct {
	Length            int `validate:"gte=0"`
	Exclude           Exclusion
	IncludeAll        bool
	Unique            bool
	BypassUniqueLimit bool
	Encoded           bool
	URLSafe           bool
	Separator         string
	SepWidth          int   `validate:"gte=0"`
	SepWidths         []int `validate:"omitempty,dive,gt=0"`
	UseWords          bool
	WordCount         int `validate:"gte=0"`
	KeyCount          int `validate:"gte=0"`
	Verbose           bool
}

// WrapMode selects the separator placement strategy.
type WrapMode int

// Wrap modes.
const (
	WrapNone WrapMode = iota
	WrapFixed
	WrapChunks
)

// SeparatorPlan is the resolved wrapping strategy applied before
// encoding. In fixed word mode a zero Width means "half the raw length",
// resolved at wrap time.
type SeparatorPlan struct {
	Mode   WrapMode
	Sep    string
	Width  int
	Widths []int
}

// Config is a validated, internally consistent generation request. It is
// owned by the session that created it and read-only afterwards.
type Config struct {
	Length    int
	Charset   []byte
	Unique    bool
	Bypass    bool
	Encoding  Encoding
	Plan      SeparatorPlan
	UseWords  bool
	WordCount int
	KeyCount  int
	Verbose   bool
}
