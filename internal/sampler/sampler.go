// Package sampler draws key material from a candidate character set or
// a word list using a cryptographically secure random source.
package sampler

import (
	"crypto/rand"
	"math"
	"math/big"

	"github.com/rs/zerolog/log"

	"github.com/keyforge/keyforge/internal/request"
)

const (
	// maxBufLen is the maximum length of a temporary buffer for random bytes.
	maxBufLen = 2048

	// minRegenBufLen is the minimum length of temporary buffer for random
	// bytes to fill after the first rand.Read request didn't produce the
	// full result. If the initial buffer is smaller, this value is ignored.
	minRegenBufLen = 16

	// maxByteValue is the maximum value of a byte (2^8 - 1).
	maxByteValue = 255

	// byteRange is the total number of possible byte values (2^8).
	byteRange = 256
)

// Draw produces the raw pre-wrapping material for one key: a character
// sequence in character mode, space-joined words in word mode.
func Draw(cfg *request.Config) (string, error) {
	if cfg.UseWords {
		return drawWords(cfg)
	}

	if !cfg.Unique {
		return Chars(cfg.Length, cfg.Charset)
	}

	if cfg.Length > len(cfg.Charset) {
		// Only reachable with the bypass flag; repeats are unavoidable.
		if cfg.Verbose {
			log.Warn().
				Int("length", cfg.Length).
				Int("candidates", len(cfg.Charset)).
				Msg("unique character limit bypassed, key will repeat characters")
		}

		return Chars(cfg.Length, cfg.Charset)
	}

	s, err := Chars(cfg.Length, cfg.Charset)
	if err != nil {
		return "", err
	}

	if pairwiseDistinct(s) {
		if cfg.Verbose {
			log.Debug().Msg("independent draw is already unique, keeping it")
		}

		return s, nil
	}

	return unique(cfg.Length, cfg.Charset)
}

// Chars returns a random string of the provided length drawn uniformly
// from the provided candidate characters (maximum 256).
func Chars(length int, chars []byte) (string, error) {
	if length == 0 {
		return "", nil
	}

	clen := len(chars)
	if clen < 1 || clen > byteRange {
		return "", ErrCharsetSize
	}

	if clen == 1 {
		out := make([]byte, length)
		for i := range out {
			out[i] = chars[0]
		}

		return string(out), nil
	}

	maxRb := maxByteValue - (byteRange % clen)
	bufLen := estimatedBufLen(length, maxRb)

	if bufLen < length {
		bufLen = length
	}

	if bufLen > maxBufLen {
		bufLen = maxBufLen
	}

	buf := make([]byte, bufLen) // storage for random bytes
	out := make([]byte, length) // storage for result

	var i int // index in out
	for {
		if _, err := rand.Read(buf[:bufLen]); err != nil {
			return "", err
		}

		for _, rb := range buf[:bufLen] {
			c := int(rb)
			if c > maxRb {
				// Skip this value to avoid modulo bias.
				continue
			}

			out[i] = chars[c%clen]
			i++

			if i == length {
				return string(out), nil
			}
		}

		// Adjust new requested length, but no smaller than minRegenBufLen.
		bufLen = estimatedBufLen(length-i, maxRb)
		if bufLen < minRegenBufLen && minRegenBufLen < cap(buf) {
			bufLen = minRegenBufLen
		}

		if bufLen > maxBufLen {
			bufLen = maxBufLen
		}
	}
}

// estimatedBufLen returns the estimated number of random bytes to request
// given that byte values greater than maxByte will be rejected.
func estimatedBufLen(need, maxByte int) int {
	return int(math.Ceil(float64(need) * (maxByteValue / float64(maxByte))))
}

// Intn returns a uniform random int in [0, n).
func Intn(n int) (int, error) {
	if n < 1 {
		return 0, ErrCharsetSize
	}

	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return 0, err
	}

	return int(v.Int64()), nil
}

// unique draws length characters without replacement: a partial
// Fisher-Yates shuffle over a copy of the candidate set.
func unique(length int, chars []byte) (string, error) {
	pool := make([]byte, len(chars))
	copy(pool, chars)

	for i := 0; i < length; i++ {
		j, err := Intn(len(pool) - i)
		if err != nil {
			return "", err
		}

		pool[i], pool[i+j] = pool[i+j], pool[i]
	}

	return string(pool[:length]), nil
}

func pairwiseDistinct(s string) bool {
	var seen [256]bool

	for i := 0; i < len(s); i++ {
		if seen[s[i]] {
			return false
		}

		seen[s[i]] = true
	}

	return true
}
