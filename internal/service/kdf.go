package service

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/scrypt"
)

// Vault KDF names.
const (
	KDFScrypt   = "scrypt"
	KDFArgon2id = "argon2id"
)

const (
	vaultVersion = 1
	vaultCipher  = "aes-256-gcm"
	vaultSaltLen = 32
	vaultKeyLen  = 32
)

var (
	// errVaultPassphrase means the MAC did not match: wrong credential.
	errVaultPassphrase = errors.New("vault mac mismatch")
	// errVaultCorrupt means the blob is structurally invalid.
	errVaultCorrupt = errors.New("vault is corrupt")
)

// KDFParams selects and tunes the key derivation function used for new vaults.
// Existing vaults always open with the parameters recorded inside them.
type KDFParams struct {
	Name string
	// scrypt
	N, R, P int
	// argon2id
	Time, MemoryKiB uint32
	Threads         uint8
}

// DefaultKDFParams returns the production parameters for name.
func DefaultKDFParams(name string) (KDFParams, error) {
	switch name {
	case "", KDFScrypt:
		return KDFParams{Name: KDFScrypt, N: 32768, R: 8, P: 1}, nil
	case KDFArgon2id:
		return KDFParams{Name: KDFArgon2id, Time: argon2Time, MemoryKiB: argon2Memory, Threads: argon2Threads}, nil
	}
	return KDFParams{}, fmt.Errorf("unsupported kdf %q", name)
}

// vaultFile is the on-disk JSON form of an encrypted seed.
type vaultFile struct {
	Version int         `json:"version"`
	Address string      `json:"address"`
	Crypto  vaultCrypto `json:"crypto"`
}

type vaultCrypto struct {
	Cipher     string         `json:"cipher"`
	CipherText string         `json:"ciphertext"`
	Nonce      string         `json:"nonce"`
	KDF        string         `json:"kdf"`
	KDFParams  vaultKDFParams `json:"kdfparams"`
	MAC        string         `json:"mac"`
}

type vaultKDFParams struct {
	DKLen     int    `json:"dklen"`
	Salt      string `json:"salt"`
	N         int    `json:"n,omitempty"`
	R         int    `json:"r,omitempty"`
	P         int    `json:"p,omitempty"`
	Time      uint32 `json:"t,omitempty"`
	MemoryKiB uint32 `json:"m,omitempty"`
	Threads   uint8  `json:"threads,omitempty"`
}

func deriveKey(passphrase string, salt []byte, p vaultKDFParams, kdf string) ([]byte, error) {
	switch kdf {
	case KDFScrypt:
		return scrypt.Key([]byte(passphrase), salt, p.N, p.R, p.P, p.DKLen)
	case KDFArgon2id:
		if p.Time == 0 || p.MemoryKiB == 0 || p.Threads == 0 {
			return nil, fmt.Errorf("argon2id params missing")
		}
		return argon2.IDKey([]byte(passphrase), salt, p.Time, p.MemoryKiB, p.Threads, uint32(p.DKLen)), nil
	}
	return nil, fmt.Errorf("unsupported kdf %q", kdf)
}

// vaultMAC authenticates the ciphertext under the second half of the derived key.
func vaultMAC(derived, ciphertext []byte) []byte {
	m := hmac.New(sha256.New, derived[16:])
	m.Write(ciphertext)
	return m.Sum(nil)
}

// sealVault encrypts seed under passphrase and returns the JSON blob.
func sealVault(seed []byte, address, passphrase string, params KDFParams) ([]byte, error) {
	salt := make([]byte, vaultSaltLen)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return nil, fmt.Errorf("generating salt: %w", err)
	}

	kp := vaultKDFParams{DKLen: vaultKeyLen, Salt: hex.EncodeToString(salt)}
	switch params.Name {
	case KDFScrypt:
		kp.N, kp.R, kp.P = params.N, params.R, params.P
	case KDFArgon2id:
		kp.Time, kp.MemoryKiB, kp.Threads = params.Time, params.MemoryKiB, params.Threads
	default:
		return nil, fmt.Errorf("unsupported kdf %q", params.Name)
	}

	derived, err := deriveKey(passphrase, salt, kp, params.Name)
	if err != nil {
		return nil, fmt.Errorf("deriving key: %w", err)
	}
	defer zeroBytes(derived)

	block, err := aes.NewCipher(derived)
	if err != nil {
		return nil, fmt.Errorf("creating cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("creating GCM: %w", err)
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, fmt.Errorf("generating nonce: %w", err)
	}
	ciphertext := gcm.Seal(nil, nonce, seed, []byte(address))

	return json.Marshal(vaultFile{
		Version: vaultVersion,
		Address: address,
		Crypto: vaultCrypto{
			Cipher:     vaultCipher,
			CipherText: hex.EncodeToString(ciphertext),
			Nonce:      hex.EncodeToString(nonce),
			KDF:        params.Name,
			KDFParams:  kp,
			MAC:        hex.EncodeToString(vaultMAC(derived, ciphertext)),
		},
	})
}

// openVault decrypts blob. It returns errVaultPassphrase for a wrong passphrase
// and errVaultCorrupt (wrapped) for anything structurally wrong. The caller owns
// and must zero the returned seed.
func openVault(blob []byte, passphrase string) (seed []byte, address string, err error) {
	var v vaultFile
	if err := json.Unmarshal(blob, &v); err != nil {
		return nil, "", fmt.Errorf("%w: %v", errVaultCorrupt, err)
	}
	if v.Version != vaultVersion || v.Crypto.Cipher != vaultCipher || v.Crypto.KDFParams.DKLen != vaultKeyLen {
		return nil, "", fmt.Errorf("%w: unsupported vault format", errVaultCorrupt)
	}

	salt, err1 := hex.DecodeString(v.Crypto.KDFParams.Salt)
	nonce, err2 := hex.DecodeString(v.Crypto.Nonce)
	ciphertext, err3 := hex.DecodeString(v.Crypto.CipherText)
	mac, err4 := hex.DecodeString(v.Crypto.MAC)
	if err := errors.Join(err1, err2, err3, err4); err != nil {
		return nil, "", fmt.Errorf("%w: %v", errVaultCorrupt, err)
	}

	derived, err := deriveKey(passphrase, salt, v.Crypto.KDFParams, v.Crypto.KDF)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", errVaultCorrupt, err)
	}
	defer zeroBytes(derived)

	if !hmac.Equal(mac, vaultMAC(derived, ciphertext)) {
		return nil, "", errVaultPassphrase
	}

	block, err := aes.NewCipher(derived)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", errVaultCorrupt, err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", errVaultCorrupt, err)
	}
	if len(nonce) != gcm.NonceSize() {
		return nil, "", fmt.Errorf("%w: bad nonce length", errVaultCorrupt)
	}

	seed, err = gcm.Open(nil, nonce, ciphertext, []byte(v.Address))
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", errVaultCorrupt, err)
	}
	return seed, v.Address, nil
}

func zeroBytes(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
