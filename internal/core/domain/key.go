package domain

import (
	"errors"
	"fmt"

	"github.com/stellar/go/keypair"
	"github.com/stellar/go/strkey"
)

// SeedLength is the size of a raw Ed25519 seed.
const SeedLength = 32

// ErrKeyWiped is returned when a wiped KeyMaterial is used.
var ErrKeyWiped = errors.New("key material has been wiped")

// KeyMaterial is a scoped handle on a raw signing seed. It redacts itself in
// every textual form and must be wiped as soon as signing returns.
type KeyMaterial struct {
	seed  []byte
	wiped bool
}

// NewKeyMaterial copies seed into a new handle.
func NewKeyMaterial(seed []byte) (*KeyMaterial, error) {
	if len(seed) != SeedLength {
		return nil, fmt.Errorf("seed must be %d bytes, got %d", SeedLength, len(seed))
	}
	buf := make([]byte, SeedLength)
	copy(buf, seed)
	return &KeyMaterial{seed: buf}, nil
}

// KeyMaterialFromSecret decodes an S... secret seed.
func KeyMaterialFromSecret(secret string) (*KeyMaterial, error) {
	raw, err := strkey.Decode(strkey.VersionByteSeed, secret)
	if err != nil {
		return nil, fmt.Errorf("decoding secret seed: %w", err)
	}
	defer zero(raw)
	return NewKeyMaterial(raw)
}

// RawSeed returns a copy of the seed as the fixed array keypair expects.
func (k *KeyMaterial) RawSeed() ([SeedLength]byte, error) {
	var out [SeedLength]byte
	if k == nil || k.wiped {
		return out, ErrKeyWiped
	}
	copy(out[:], k.seed)
	return out, nil
}

// Keypair derives the full keypair for signing.
func (k *KeyMaterial) Keypair() (*keypair.Full, error) {
	seed, err := k.RawSeed()
	if err != nil {
		return nil, err
	}
	defer zero(seed[:])
	return keypair.FromRawSeed(seed)
}

// Address returns the public G... address of the key.
func (k *KeyMaterial) Address() (string, error) {
	kp, err := k.Keypair()
	if err != nil {
		return "", err
	}
	return kp.Address(), nil
}

// Bytes exposes the seed for encryption at rest. Callers must not retain it.
func (k *KeyMaterial) Bytes() ([]byte, error) {
	if k == nil || k.wiped {
		return nil, ErrKeyWiped
	}
	return k.seed, nil
}

// Wipe zeroes the seed. It is safe to call more than once.
func (k *KeyMaterial) Wipe() {
	if k == nil || k.wiped {
		return
	}
	zero(k.seed)
	k.seed = nil
	k.wiped = true
}

// Wiped reports whether Wipe has been called.
func (k *KeyMaterial) Wiped() bool {
	return k == nil || k.wiped
}

func (k *KeyMaterial) String() string   { return "KeyMaterial(redacted)" }
func (k *KeyMaterial) GoString() string { return "KeyMaterial(redacted)" }

// MarshalJSON never serializes the seed.
func (k *KeyMaterial) MarshalJSON() ([]byte, error) {
	return []byte(`"[redacted]"`), nil
}

func zero(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
