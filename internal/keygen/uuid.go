package keygen

import (
	"github.com/google/uuid"

	"github.com/keyforge/keyforge/internal/request"
	"github.com/keyforge/keyforge/internal/sampler"
	"github.com/keyforge/keyforge/internal/wrapper"
)

// uuidVariants are the RFC 4122 variant nibble values.
const uuidVariants = "89ab"

// NewUUID generates an RFC 4122 compliant identifier: 32 hex digits in
// the 8-4-4-4-12 layout with the version and variant nibbles forced to
// spec values. It is a thin specialization of the sampler and wrapper
// over the rfc_4122 profile, not a separate algorithm. A zero version
// defaults to 4.
func NewUUID(version int) (uuid.UUID, error) {
	if version == 0 {
		version = 4
	}

	if version < 1 || version > 5 {
		return uuid.UUID{}, ErrUUIDVersion
	}

	cfg, err := request.Validate(request.Request{
		Length:    32,
		Exclude:   request.ByProfileName("rfc_4122"),
		Separator: "-",
		SepWidths: []int{8, 4, 4, 4},
	})
	if err != nil {
		return uuid.UUID{}, err
	}

	raw, err := sampler.Draw(cfg)
	if err != nil {
		return uuid.UUID{}, err
	}

	v, err := sampler.Intn(len(uuidVariants))
	if err != nil {
		return uuid.UUID{}, err
	}

	hex := []byte(raw)
	hex[12] = byte('0' + version) // version nibble
	hex[16] = uuidVariants[v]     // variant nibble

	text, err := wrapper.Wrap(string(hex), cfg)
	if err != nil {
		return uuid.UUID{}, err
	}

	return uuid.Parse(text)
}
