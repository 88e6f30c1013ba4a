// Package export persists generated keys to files: verbatim text for a
// single key, a structured JSON object for a collection.
package export

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/keyforge/keyforge/internal/keygen"
	"github.com/keyforge/keyforge/internal/sampler"
)

const (
	// DefaultKeyName is the base file name for a single exported key.
	DefaultKeyName = "generated_key"

	// DefaultKeysName is the base file name for an exported collection.
	DefaultKeysName = "generated_keys"

	keyExt  = ".bin"
	keysExt = ".json"

	// idSuffixLen is the number of secure digits appended to derive a
	// unique file name.
	idSuffixLen = 5
)

var digits = []byte("0123456789")

// Key writes a single key to a .bin file and returns the path actually
// written. An empty name uses the default base name.
func Key(k *keygen.Key, name string, overwrite bool) (string, error) {
	path, err := targetPath(name, DefaultKeyName, keyExt, overwrite)
	if err != nil {
		return "", err
	}

	if err := os.WriteFile(path, []byte(k.String()), 0o600); err != nil {
		return "", errors.Wrap(err, "failed to export key")
	}

	log.Info().Str("path", path).Msg("key exported")

	return path, nil
}

// Keys writes a collection to a JSON file, preserving collection order
// (key1, key2, ...), and returns the path actually written.
func Keys(c *keygen.Collection, name string, overwrite bool) (string, error) {
	path, err := targetPath(name, DefaultKeysName, keysExt, overwrite)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer

	buf.WriteString("{\n")

	for i, label := range c.Labels() {
		v, err := json.Marshal(c.At(i).String())
		if err != nil {
			return "", errors.Wrap(err, "failed to serialize keys")
		}

		buf.WriteString("    ")

		l, _ := json.Marshal(label)
		buf.Write(l)
		buf.WriteString(": ")
		buf.Write(v)

		if i < c.Len()-1 {
			buf.WriteByte(',')
		}

		buf.WriteByte('\n')
	}

	buf.WriteString("}\n")

	if err := os.WriteFile(path, buf.Bytes(), 0o600); err != nil {
		return "", errors.Wrap(err, "failed to export keys")
	}

	log.Info().Str("path", path).Int("keys", c.Len()).Msg("keys exported")

	return path, nil
}

// targetPath resolves the output path. When the file exists and
// overwrite is off, the name is suffixed with secure digits until it is
// unique; with overwrite on the existing file is replaced with a warning.
func targetPath(name, defaultName, ext string, overwrite bool) (string, error) {
	if name == "" {
		name = defaultName
	}

	name = strings.TrimSuffix(name, filepath.Ext(name))
	path := name + ext

	if _, err := os.Stat(path); err != nil {
		return path, nil
	}

	if overwrite {
		log.Warn().Str("path", path).Msg("key file exists, overwriting")
		return path, nil
	}

	for {
		id, err := sampler.Chars(idSuffixLen, digits)
		if err != nil {
			return "", err
		}

		candidate := name + "_ID" + id + ext
		if _, err := os.Stat(candidate); err != nil {
			return candidate, nil
		}
	}
}
