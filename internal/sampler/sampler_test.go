package sampler

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/keyforge/keyforge/internal/request"
)

func TestChars(t *testing.T) {
	chars := []byte("abcdefgh")

	// straddle the internal buffer sizes
	for _, length := range []int{0, 1, 7, 16, 100, 3000} {
		s, err := Chars(length, chars)
		if err != nil {
			t.Fatalf("Chars(%d) error = %v", length, err)
		}

		if len(s) != length {
			t.Errorf("Chars(%d) length = %d", length, len(s))
		}

		for i := 0; i < len(s); i++ {
			if !strings.ContainsRune(string(chars), rune(s[i])) {
				t.Errorf("Chars(%d) produced %q outside the candidate set", length, s[i])
			}
		}
	}
}

func TestCharsSingleCandidate(t *testing.T) {
	s, err := Chars(5, []byte("x"))
	if err != nil {
		t.Fatalf("Chars() error = %v", err)
	}

	if s != "xxxxx" {
		t.Errorf("Chars(5, x) = %q, want xxxxx", s)
	}
}

func TestCharsSizeErrors(t *testing.T) {
	if _, err := Chars(8, nil); !errors.Is(err, ErrCharsetSize) {
		t.Errorf("Chars with empty set error = %v, want ErrCharsetSize", err)
	}

	if _, err := Chars(8, make([]byte, 257)); !errors.Is(err, ErrCharsetSize) {
		t.Errorf("Chars with oversized set error = %v, want ErrCharsetSize", err)
	}
}

func TestDraw(t *testing.T) {
	cfg, err := request.Validate(request.Request{Length: 24})
	if err != nil {
		t.Fatalf("Validate() error = %v", err)
	}

	raw, err := Draw(cfg)
	if err != nil {
		t.Fatalf("Draw() error = %v", err)
	}

	if len(raw) != 24 {
		t.Errorf("Draw() length = %d, want 24", len(raw))
	}

	for i := 0; i < len(raw); i++ {
		if !strings.ContainsRune(string(cfg.Charset), rune(raw[i])) {
			t.Errorf("Draw() produced %q outside the candidate set", raw[i])
		}
	}
}

func TestDrawUnique(t *testing.T) {
	cfg, err := request.Validate(request.Request{Length: 40, Unique: true})
	if err != nil {
		t.Fatalf("Validate() error = %v", err)
	}

	raw, err := Draw(cfg)
	if err != nil {
		t.Fatalf("Draw() error = %v", err)
	}

	if len(raw) != 40 {
		t.Fatalf("Draw() length = %d, want 40", len(raw))
	}

	seen := make(map[byte]bool, len(raw))

	for i := 0; i < len(raw); i++ {
		if seen[raw[i]] {
			t.Errorf("Draw() repeated %q in unique mode", raw[i])
		}

		seen[raw[i]] = true
	}
}

func TestDrawUniqueBypass(t *testing.T) {
	// 80 characters out of 62 candidates; repeats are unavoidable.
	cfg, err := request.Validate(request.Request{Length: 80, Unique: true, BypassUniqueLimit: true})
	if err != nil {
		t.Fatalf("Validate() error = %v", err)
	}

	raw, err := Draw(cfg)
	if err != nil {
		t.Fatalf("Draw() error = %v", err)
	}

	if len(raw) != 80 {
		t.Errorf("Draw() length = %d, want 80", len(raw))
	}
}

func TestDrawUniqueBypassDiagnostics(t *testing.T) {
	prev := log.Logger
	defer func() { log.Logger = prev }()

	var buf bytes.Buffer

	log.Logger = zerolog.New(&buf)

	cfg, err := request.Validate(request.Request{Length: 80, Unique: true, BypassUniqueLimit: true})
	if err != nil {
		t.Fatalf("Validate() error = %v", err)
	}

	if _, err := Draw(cfg); err != nil {
		t.Fatalf("Draw() error = %v", err)
	}

	// the bypass warning is a verbose diagnostic only
	if strings.Contains(buf.String(), "bypassed") {
		t.Errorf("Draw() warned without verbose: %s", buf.String())
	}

	cfg.Verbose = true

	if _, err := Draw(cfg); err != nil {
		t.Fatalf("Draw() error = %v", err)
	}

	if !strings.Contains(buf.String(), "bypassed") {
		t.Error("Draw() with verbose should warn about the bypassed limit")
	}
}

func TestDrawWords(t *testing.T) {
	cfg, err := request.Validate(request.Request{UseWords: true, WordCount: 4})
	if err != nil {
		t.Fatalf("Validate() error = %v", err)
	}

	raw, err := Draw(cfg)
	if err != nil {
		t.Fatalf("Draw() error = %v", err)
	}

	known := make(map[string]bool, len(corpus))
	for _, w := range corpus {
		known[w] = true
	}

	words := strings.Split(raw, " ")
	if len(words) != 4 {
		t.Fatalf("Draw() words = %d, want 4", len(words))
	}

	for _, w := range words {
		if !known[w] {
			t.Errorf("Draw() produced %q outside the corpus", w)
		}
	}
}

func TestIntn(t *testing.T) {
	if _, err := Intn(0); !errors.Is(err, ErrCharsetSize) {
		t.Errorf("Intn(0) error = %v, want ErrCharsetSize", err)
	}

	for i := 0; i < 200; i++ {
		v, err := Intn(5)
		if err != nil {
			t.Fatalf("Intn(5) error = %v", err)
		}

		if v < 0 || v >= 5 {
			t.Errorf("Intn(5) = %d, out of range", v)
		}
	}
}

func TestUnique(t *testing.T) {
	chars := []byte("abcdefghij")

	s, err := unique(10, chars)
	if err != nil {
		t.Fatalf("unique() error = %v", err)
	}

	if len(s) != 10 {
		t.Fatalf("unique() length = %d, want 10", len(s))
	}

	for _, c := range chars {
		if !strings.ContainsRune(s, rune(c)) {
			t.Errorf("unique() over the full set is missing %q", c)
		}
	}
}
