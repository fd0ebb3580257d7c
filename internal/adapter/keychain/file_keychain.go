// Package keychain provides a device-local ports.PlatformKeystore. Each blob is
// wrapped with the device key before it touches disk, so the files are useless
// without both the device key and the user's passcode.
package keychain

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"stellar-wallet-core/internal/core/ports"
)

const fileExt = ".key"

var idRe = regexp.MustCompile(`^[A-Za-z0-9_.-]{1,64}$`)

// ErrInvalidID is returned for ids that cannot be used as file names.
var ErrInvalidID = errors.New("keychain: invalid key id")

// FileKeychain stores one device-key-sealed file per key id.
type FileKeychain struct {
	dir       string
	deviceKey ports.EncryptionService
}

// NewFileKeychain creates dir (0700) if missing.
func NewFileKeychain(dir string, deviceKey ports.EncryptionService) (*FileKeychain, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("creating keychain dir: %w", err)
	}
	return &FileKeychain{dir: dir, deviceKey: deviceKey}, nil
}

func (k *FileKeychain) path(id string) (string, error) {
	if !idRe.MatchString(id) || id == "." || id == ".." {
		return "", ErrInvalidID
	}
	return filepath.Join(k.dir, id+fileExt), nil
}

// Set replaces the blob atomically: write to a temp file, then rename.
func (k *FileKeychain) Set(ctx context.Context, id string, blob []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	p, err := k.path(id)
	if err != nil {
		return err
	}

	sealed, err := k.deviceKey.Seal(blob, id)
	if err != nil {
		return fmt.Errorf("sealing %s: %w", id, err)
	}

	tmp, err := os.CreateTemp(k.dir, id+".*.tmp")
	if err != nil {
		return fmt.Errorf("writing %s: %w", id, err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.WriteString(sealed); err != nil {
		tmp.Close()
		return fmt.Errorf("writing %s: %w", id, err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("syncing %s: %w", id, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("writing %s: %w", id, err)
	}
	if err := os.Rename(tmp.Name(), p); err != nil {
		return fmt.Errorf("replacing %s: %w", id, err)
	}
	return nil
}

// Get returns nil, nil when no blob is stored under id.
func (k *FileKeychain) Get(ctx context.Context, id string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	p, err := k.path(id)
	if err != nil {
		return nil, err
	}

	sealed, err := os.ReadFile(p)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading %s: %w", id, err)
	}

	blob, err := k.deviceKey.Open(string(sealed), id)
	if err != nil {
		return nil, fmt.Errorf("unwrapping %s: %w", id, err)
	}
	return blob, nil
}

// Remove is a no-op for ids that are not stored.
func (k *FileKeychain) Remove(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	p, err := k.path(id)
	if err != nil {
		return err
	}
	if err := os.Remove(p); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("removing %s: %w", id, err)
	}
	return nil
}

func (k *FileKeychain) Exists(ctx context.Context, id string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	p, err := k.path(id)
	if err != nil {
		return false, err
	}
	_, err = os.Stat(p)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, os.ErrNotExist):
		return false, nil
	default:
		return false, fmt.Errorf("checking %s: %w", id, err)
	}
}
