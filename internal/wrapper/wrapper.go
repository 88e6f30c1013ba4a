// Package wrapper applies the separator plan and optional base64
// encoding to raw key material.
package wrapper

import (
	"encoding/base64"
	"strings"

	"github.com/mitchellh/go-wordwrap"
	"github.com/rs/zerolog/log"

	"github.com/keyforge/keyforge/internal/request"
)

// Wrap inserts separators per the resolved plan, re-scans the result for
// characters the charset cannot explain, and applies encoding as the
// final step. Stripping every separator occurrence from a wrapped
// character key reproduces the raw key exactly.
func Wrap(raw string, cfg *request.Config) (string, error) {
	text := raw

	switch cfg.Plan.Mode {
	case request.WrapNone:
		// nothing to place

	case request.WrapFixed:
		var err error

		if text, err = wrapFixed(raw, cfg); err != nil {
			return "", err
		}

	case request.WrapChunks:
		if strings.Contains(raw, cfg.Plan.Sep) {
			return "", ErrSeparatorIncompatible
		}

		text = joinChunks(raw, cfg.Plan)
	}

	if err := rescan(text, cfg); err != nil {
		return "", err
	}

	return encode(text, cfg.Encoding), nil
}

// wrapFixed chunks the key every Width characters. The trailing
// remainder chunk is never split further. Word mode reflows the
// space-joined words at the width instead (half the raw length when
// unspecified) and joins the lines with the separator.
func wrapFixed(raw string, cfg *request.Config) (string, error) {
	plan := cfg.Plan

	if cfg.UseWords {
		width := plan.Width
		if width == 0 {
			width = len(raw) / 2
		}

		if width < 1 {
			width = 1
		}

		lines := strings.Split(wordwrap.WrapString(raw, uint(width)), "\n")

		return strings.Join(lines, plan.Sep), nil
	}

	if strings.Contains(raw, plan.Sep) {
		// Chunking would put the separator next to itself and make the
		// key ambiguous to split.
		return "", ErrSeparatorIncompatible
	}

	var chunks []string

	for start := 0; start < len(raw); start += plan.Width {
		end := start + plan.Width
		if end > len(raw) {
			end = len(raw)
		}

		chunks = append(chunks, raw[start:end])
	}

	return strings.Join(chunks, plan.Sep), nil
}

// joinChunks inserts the separator at cumulative offsets w1, w1+w2, ...
// with the last chunk running to the end of the key.
func joinChunks(raw string, plan request.SeparatorPlan) string {
	var chunks []string

	start := 0

	for _, w := range plan.Widths {
		chunks = append(chunks, raw[start:start+w])
		start += w
	}

	chunks = append(chunks, raw[start:])

	return strings.Join(chunks, plan.Sep)
}

// rescan checks the wrapped text for characters outside the resolved
// charset plus the separator (and the space that joins words). In
// verbose mode a stray character only warns; otherwise it is fatal.
func rescan(text string, cfg *request.Config) error {
	allowed := string(cfg.Charset) + cfg.Plan.Sep
	if cfg.UseWords {
		allowed += " "
	}

	for i := 0; i < len(text); i++ {
		if strings.IndexByte(allowed, text[i]) >= 0 {
			continue
		}

		if !cfg.Verbose {
			return ErrUnexpectedCharacter
		}

		log.Warn().
			Str("char", string(text[i])).
			Msg("unexpected character in wrapped key")
	}

	return nil
}

func encode(text string, enc request.Encoding) string {
	switch enc {
	case request.EncodingBase64:
		return base64.StdEncoding.EncodeToString([]byte(text))
	case request.EncodingBase64URL:
		return base64.URLEncoding.EncodeToString([]byte(text))
	default:
		return text
	}
}
