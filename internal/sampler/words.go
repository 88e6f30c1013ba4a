package sampler

import (
	"strings"

	"github.com/keyforge/keyforge/internal/request"
)

// drawWords picks the configured number of words from the corpus. Words
// may repeat across positions; each word is copied as-is and joined with
// single spaces for the wrapper to reflow.
func drawWords(cfg *request.Config) (string, error) {
	words := make([]string, cfg.WordCount)

	for i := range words {
		j, err := Intn(len(corpus))
		if err != nil {
			return "", err
		}

		words[i] = corpus[j]
	}

	return strings.Join(words, " "), nil
}
