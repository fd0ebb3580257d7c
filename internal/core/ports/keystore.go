package ports

import "context"

// PlatformKeystore stores opaque encrypted blobs.
type PlatformKeystore interface {
	Set(ctx context.Context, id string, blob []byte) error
	// Get returns nil, nil when no blob is stored under id.
	Get(ctx context.Context, id string) ([]byte, error)
	Remove(ctx context.Context, id string) error
	Exists(ctx context.Context, id string) (bool, error)
}

// PresenceVerifier performs the user-presence check required before every key read.
type PresenceVerifier interface {
	Verify(ctx context.Context, credential string) error
}
