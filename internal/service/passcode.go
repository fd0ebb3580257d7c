package service

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"stellar-wallet-core/pkg/apperror"

	"golang.org/x/crypto/argon2"
)

// Argon2id parameters for the device passcode hash.
const (
	argon2Time    = 1
	argon2Memory  = 64 * 1024 // 64MB
	argon2Threads = 4
	argon2KeyLen  = 32
	argon2SaltLen = 16
)

var errNoPasscode = errors.New("device has no passcode")

type argon2Params struct {
	memory  uint32
	time    uint32
	threads uint8
	keyLen  uint32
}

var defaultArgon2Params = argon2Params{
	memory:  argon2Memory,
	time:    argon2Time,
	threads: argon2Threads,
	keyLen:  argon2KeyLen,
}

// PasscodeVerifier implements ports.PresenceVerifier against the configured
// Argon2id passcode hash. It holds no unlocked state between calls.
type PasscodeVerifier struct {
	encodedHash string
}

// NewPasscodeVerifier creates a verifier. An empty hash means the device has no
// passcode and every verification fails with StorageUnavailable.
func NewPasscodeVerifier(encodedHash string) *PasscodeVerifier {
	return &PasscodeVerifier{encodedHash: encodedHash}
}

// Verify checks credential against the passcode hash.
func (v *PasscodeVerifier) Verify(ctx context.Context, credential string) error {
	if err := ctx.Err(); err != nil {
		return apperror.ErrAuthFailed()
	}
	if v.encodedHash == "" {
		return apperror.ErrStorageUnavailable(errNoPasscode)
	}

	salt, hash, params, err := decodeArgon2Hash(v.encodedHash)
	if err != nil {
		return apperror.ErrStorageUnavailable(fmt.Errorf("reading passcode hash: %w", err))
	}

	other := argon2.IDKey([]byte(credential), salt, params.time, params.memory, params.threads, params.keyLen)
	if subtle.ConstantTimeCompare(hash, other) != 1 {
		return apperror.ErrAuthFailed()
	}
	return nil
}

// HashPasscode produces the encoded hash stored in keystore.passcode_hash.
// Format: $argon2id$v=19$m=65536,t=1,p=4$<salt>$<hash>
func HashPasscode(passcode string) (string, error) {
	return hashPasscode(passcode, defaultArgon2Params)
}

func hashPasscode(passcode string, p argon2Params) (string, error) {
	salt := make([]byte, argon2SaltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("generating salt: %w", err)
	}

	hash := argon2.IDKey([]byte(passcode), salt, p.time, p.memory, p.threads, p.keyLen)

	return fmt.Sprintf(
		"$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version,
		p.memory, p.time, p.threads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(hash),
	), nil
}

func decodeArgon2Hash(encodedHash string) (salt, hash []byte, params argon2Params, err error) {
	parts := strings.Split(encodedHash, "$")
	if len(parts) != 6 {
		return nil, nil, params, fmt.Errorf("invalid hash format: expected 6 parts, got %d", len(parts))
	}

	if parts[1] != "argon2id" {
		return nil, nil, params, fmt.Errorf("unsupported algorithm: %s", parts[1])
	}

	var version int
	if _, err = fmt.Sscanf(parts[2], "v=%d", &version); err != nil {
		return nil, nil, params, fmt.Errorf("parsing version: %w", err)
	}
	if version != argon2.Version {
		return nil, nil, params, fmt.Errorf("unsupported argon2 version %d", version)
	}

	if _, err = fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &params.memory, &params.time, &params.threads); err != nil {
		return nil, nil, params, fmt.Errorf("parsing params: %w", err)
	}

	salt, err = base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return nil, nil, params, fmt.Errorf("decoding salt: %w", err)
	}

	hash, err = base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil {
		return nil, nil, params, fmt.Errorf("decoding hash: %w", err)
	}

	params.keyLen = uint32(len(hash))

	return salt, hash, params, nil
}
