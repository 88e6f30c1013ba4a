package charset

import (
	"errors"
	"math"
	"strings"
	"testing"
)

func TestCatalogCount(t *testing.T) {
	if got := Count(); got != 31 {
		t.Errorf("Count() = %d, want 31", got)
	}

	if got := len(Chart()); got != 31 {
		t.Errorf("len(Chart()) = %d, want 31", got)
	}
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name       string
		profile    string
		candidates int
	}{
		{"punctuation leaves alphanumerics", "punct", 62},
		{"ascii leaves digits and punctuation", "ascii", 42},
		{"digits leaves letters and punctuation", "digits", 84},
		{"ascii_punct leaves digits", "ascii_punct", 10},
		{"oct_ascii_punct leaves two digits", "oct_ascii_punct", 2},
		{"rfc_4122 leaves lowercase hex", "rfc_4122", 16},
		{"non_rfc_4122 removes lowercase hex", "non_rfc_4122", 78},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			excluded, err := Resolve(tt.profile)
			if err != nil {
				t.Fatalf("Resolve(%q) error = %v", tt.profile, err)
			}

			if got := len(Candidates(excluded)); got != tt.candidates {
				t.Errorf("Candidates(%q) length = %d, want %d", tt.profile, got, tt.candidates)
			}
		})
	}
}

func TestResolveUnknown(t *testing.T) {
	if _, err := Resolve("nope"); !errors.Is(err, ErrUnknownProfile) {
		t.Errorf("Resolve(nope) error = %v, want ErrUnknownProfile", err)
	}
}

func TestResolveIndex(t *testing.T) {
	first, err := ResolveIndex(1)
	if err != nil {
		t.Fatalf("ResolveIndex(1) error = %v", err)
	}

	punctProfile, err := Resolve("punct")
	if err != nil {
		t.Fatalf("Resolve(punct) error = %v", err)
	}

	if first != punctProfile {
		t.Errorf("ResolveIndex(1) = %q, want the punct profile", first)
	}

	last, err := ResolveIndex(31)
	if err != nil {
		t.Fatalf("ResolveIndex(31) error = %v", err)
	}

	hexProfile, err := Resolve("non_rfc_4122")
	if err != nil {
		t.Fatalf("Resolve(non_rfc_4122) error = %v", err)
	}

	if last != hexProfile {
		t.Errorf("ResolveIndex(31) = %q, want the non_rfc_4122 profile", last)
	}

	for _, idx := range []int{0, -1, 32} {
		if _, err := ResolveIndex(idx); !errors.Is(err, ErrUnknownProfile) {
			t.Errorf("ResolveIndex(%d) error = %v, want ErrUnknownProfile", idx, err)
		}
	}
}

func TestRFC4122Candidates(t *testing.T) {
	excluded, err := Resolve("rfc_4122")
	if err != nil {
		t.Fatalf("Resolve(rfc_4122) error = %v", err)
	}

	candidates := string(Candidates(excluded))
	if len(candidates) != 16 {
		t.Fatalf("rfc_4122 candidate count = %d, want 16", len(candidates))
	}

	for _, c := range candidates {
		if !strings.ContainsRune("0123456789abcdef", c) {
			t.Errorf("rfc_4122 candidate %q is not a lowercase hex digit", c)
		}
	}
}

func TestIsProfile(t *testing.T) {
	if !IsProfile("hexdigits") {
		t.Error("IsProfile(hexdigits) = false, want true")
	}

	if IsProfile("hexdigit") {
		t.Error("IsProfile(hexdigit) = true, want false")
	}
}

func TestUniqueDisabled(t *testing.T) {
	for _, name := range []string{"ascii_punct", "oct_ascii_punct"} {
		if !UniqueDisabled(name) {
			t.Errorf("UniqueDisabled(%q) = false, want true", name)
		}
	}

	if UniqueDisabled("punct") {
		t.Error("UniqueDisabled(punct) = true, want false")
	}
}

func TestCandidatesNeverContainWhitespace(t *testing.T) {
	for _, p := range Chart() {
		excluded, err := Resolve(p.Name)
		if err != nil {
			t.Fatalf("Resolve(%q) error = %v", p.Name, err)
		}

		if strings.ContainsAny(string(Candidates(excluded)), Whitespace) {
			t.Errorf("profile %q candidates contain whitespace", p.Name)
		}
	}
}

func TestEntropy(t *testing.T) {
	maxLen, bits, err := Entropy("punct")
	if err != nil {
		t.Fatalf("Entropy(punct) error = %v", err)
	}

	if maxLen != 62 {
		t.Errorf("Entropy(punct) max length = %d, want 62", maxLen)
	}

	if math.Abs(bits-math.Log2(62)) > 1e-9 {
		t.Errorf("Entropy(punct) bits = %f, want log2(62)", bits)
	}

	if _, _, err := Entropy("nope"); !errors.Is(err, ErrUnknownProfile) {
		t.Errorf("Entropy(nope) error = %v, want ErrUnknownProfile", err)
	}
}

func TestChart(t *testing.T) {
	entries := Chart()

	if entries[0].Index != 1 || entries[0].Name != "punct" {
		t.Errorf("Chart()[0] = %+v, want index 1 profile punct", entries[0])
	}

	for _, e := range entries {
		switch e.Name {
		case "ascii_punct":
			if e.MaxUniqueLen != 10 || !e.UniqueDisabled {
				t.Errorf("ascii_punct entry = %+v, want max 10 and unique disabled", e)
			}
		case "oct_ascii_punct":
			if e.MaxUniqueLen != 2 || !e.UniqueDisabled {
				t.Errorf("oct_ascii_punct entry = %+v, want max 2 and unique disabled", e)
			}
		}
	}
}
