// Package cryptox implements password hashing for stored credentials.
//
// Digests use Argon2id and are encoded in the PHC string format
//
//	$argon2id$v=19$m=<memory KiB>,t=<iterations>,p=<parallelism>$<salt>$<key>
//
// with unpadded standard base64 for salt and key, so a digest carries
// everything needed to verify it later.
package cryptox

import (
	"fmt"

	"github.com/alexedwards/argon2id"
)

// Params are the tunable Argon2id cost parameters.
type Params struct {
	Memory      uint32 `json:"memory" validate:"gte=8"`
	Iterations  uint32 `json:"iterations" validate:"gte=1"`
	Parallelism uint8  `json:"parallelism" validate:"gte=1"`
	SaltLength  uint32 `json:"salt_length" validate:"gte=8"`
	KeyLength   uint32 `json:"key_length" validate:"gte=16"`
}

// DefaultParams returns the parameters used when nothing else is configured:
// 64 MiB, 3 passes, 4 lanes, 16-byte salt, 32-byte key.
func DefaultParams() Params {
	return Params{
		Memory:      64 * 1024,
		Iterations:  3,
		Parallelism: 4,
		SaltLength:  16,
		KeyLength:   32,
	}
}

func (p Params) String() string {
	return fmt.Sprintf("m=%d,t=%d,p=%d", p.Memory, p.Iterations, p.Parallelism)
}

func (p Params) argon2id() *argon2id.Params {
	return &argon2id.Params{
		Memory:      p.Memory,
		Iterations:  p.Iterations,
		Parallelism: p.Parallelism,
		SaltLength:  p.SaltLength,
		KeyLength:   p.KeyLength,
	}
}

// PasswordHasher produces salted Argon2id digests with fixed parameters.
type PasswordHasher struct {
	params Params
}

func NewPasswordHasher(p Params) *PasswordHasher {
	return &PasswordHasher{params: p}
}

// Params returns the parameters the hasher was built with.
func (h *PasswordHasher) Params() Params {
	return h.params
}

// Hash returns the encoded digest of password. A fresh random salt is drawn
// for every call, so hashing the same input twice yields different strings.
// The empty string is hashed like any other input.
func (h *PasswordHasher) Hash(password string) (string, error) {
	digest, err := argon2id.CreateHash(password, h.params.argon2id())
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return digest, nil
}

// VerifyPassword reports whether password matches digest. Parameters and salt
// are read from the digest. A malformed digest is an error, not a mismatch.
func VerifyPassword(password, digest string) (bool, error) {
	ok, err := argon2id.ComparePasswordAndHash(password, digest)
	if err != nil {
		return false, fmt.Errorf("verify password: %w", err)
	}
	return ok, nil
}

// DecodeParams extracts the cost parameters embedded in digest.
func DecodeParams(digest string) (Params, error) {
	p, salt, key, err := argon2id.DecodeHash(digest)
	if err != nil {
		return Params{}, fmt.Errorf("decode digest: %w", err)
	}
	return Params{
		Memory:      p.Memory,
		Iterations:  p.Iterations,
		Parallelism: p.Parallelism,
		SaltLength:  uint32(len(salt)),
		KeyLength:   uint32(len(key)),
	}, nil
}
