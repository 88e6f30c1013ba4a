package charset

import (
	"math"
	"strings"
)

const (
	asciiLower  = "abcdefghijklmnopqrstuvwxyz"
	asciiUpper  = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	ascii       = asciiLower + asciiUpper
	digits      = "0123456789"
	hexDigits   = digits + "abcdefABCDEF"
	hexLower    = digits + "abcdef"
	octDigits   = "01234567"
	punctuation = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

	// Whitespace characters are never part of any candidate set and a
	// request to exclude them is a no-op.
	Whitespace = " \t\n\v\f\r"
)

// Alphabet is the universal character set keys are drawn from before any
// exclusions are applied: ASCII letters, digits and punctuation.
const Alphabet = ascii + digits + punctuation

// Profile is a named set of characters excluded from Alphabet.
type Profile struct {
	Name     string
	Excluded string
}

// The catalog is a closed, ordered list; indices are 1-based and stable.
// rfc_4122 restricts the candidate set to exactly the 16 lowercase hex
// digits, non_rfc_4122 to its complement.
var catalog = []Profile{
	{"punct", punctuation},
	{"ascii", ascii},
	{"ascii_lower", asciiLower},
	{"ascii_upper", asciiUpper},
	{"ascii_punct", ascii + punctuation},
	{"ascii_lower_punct", asciiLower + punctuation},
	{"ascii_upper_punct", asciiUpper + punctuation},
	{"digits", digits},
	{"digits_ascii", digits + ascii},
	{"digits_punct", digits + punctuation},
	{"digits_ascii_lower", digits + asciiLower},
	{"digits_ascii_upper", digits + asciiUpper},
	{"digits_ascii_lower_punct", digits + asciiLower + punctuation},
	{"digits_ascii_upper_punct", digits + asciiUpper + punctuation},
	{"hexdigits", hexDigits},
	{"hex_punct", hexDigits + punctuation},
	{"hex_ascii", hexDigits + ascii},
	{"hex_ascii_lower", hexDigits + asciiLower},
	{"hex_ascii_upper", hexDigits + asciiUpper},
	{"hex_ascii_lower_punct", hexDigits + asciiLower + punctuation},
	{"hex_ascii_upper_punct", hexDigits + asciiUpper + punctuation},
	{"octdigits", octDigits},
	{"oct_punct", octDigits + punctuation},
	{"oct_ascii", octDigits + ascii},
	{"oct_ascii_lower", octDigits + asciiLower},
	{"oct_ascii_upper", octDigits + asciiUpper},
	{"oct_ascii_punct", octDigits + ascii + punctuation},
	{"oct_ascii_lower_punct", octDigits + asciiLower + punctuation},
	{"oct_ascii_upper_punct", octDigits + asciiUpper + punctuation},
	{"rfc_4122", subtract(Alphabet, hexLower)},
	{"non_rfc_4122", hexLower},
}

var byName = func() map[string]string {
	m := make(map[string]string, len(catalog))
	for _, p := range catalog {
		m[p.Name] = p.Excluded
	}
	return m
}()

// uniqueDisabled lists profiles whose candidate sets are too small for
// meaningful unique draws.
var uniqueDisabled = map[string]bool{
	"ascii_punct":     true, // 10 candidate characters
	"oct_ascii_punct": true, // 2 candidate characters
}

// Count returns the number of profiles in the catalog.
func Count() int {
	return len(catalog)
}

// IsProfile reports whether name is a known exclusion profile.
func IsProfile(name string) bool {
	_, ok := byName[name]
	return ok
}

// UniqueDisabled reports whether the profile's candidate set is too
// small for unique-characters mode to make sense.
func UniqueDisabled(name string) bool {
	return uniqueDisabled[name]
}

// Resolve returns the excluded character set for a profile name.
func Resolve(name string) (string, error) {
	excluded, ok := byName[name]
	if !ok {
		return "", ErrUnknownProfile
	}

	return excluded, nil
}

// ResolveIndex returns the excluded character set for a 1-based catalog
// index.
func ResolveIndex(idx int) (string, error) {
	if idx < 1 || idx > len(catalog) {
		return "", ErrUnknownProfile
	}

	return catalog[idx-1].Excluded, nil
}

// Candidates returns the ordered candidate set left after removing the
// excluded characters from Alphabet. Alphabet carries no whitespace, so
// the result never does either.
func Candidates(excluded string) []byte {
	return []byte(subtract(Alphabet, excluded))
}

// Entropy returns the maximum unique key length for a profile and the
// bits of entropy a single uniform draw from its candidate set carries.
func Entropy(name string) (int, float64, error) {
	excluded, err := Resolve(name)
	if err != nil {
		return 0, 0, err
	}

	n := len(Candidates(excluded))

	return n, math.Log2(float64(n)), nil
}

// subtract removes every character of cut from s, keeping order.
func subtract(s, cut string) string {
	var b strings.Builder

	b.Grow(len(s))

	for _, c := range s {
		if !strings.ContainsRune(cut, c) {
			b.WriteRune(c)
		}
	}

	return b.String()
}
