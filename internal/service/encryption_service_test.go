package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Valid 32-byte key in hex (64 chars)
const testDeviceKey = "0123456789abcdef0123456789abcdef0123456789abcdef0123456789abcdef"

func TestAESEncryptionService_NewInvalidKey(t *testing.T) {
	_, err := NewAESEncryptionService("shortkey")
	assert.Error(t, err)

	_, err = NewAESEncryptionService("abcd")
	assert.ErrorContains(t, err, "must be 32 bytes")
}

func TestAESEncryptionService_SealOpen(t *testing.T) {
	svc, err := NewAESEncryptionService(testDeviceKey)
	require.NoError(t, err)

	plaintext := []byte(`{"version":1}`)
	sealed, err := svc.Seal(plaintext, "primary")
	require.NoError(t, err)
	assert.NotContains(t, sealed, "version")

	opened, err := svc.Open(sealed, "primary")
	require.NoError(t, err)
	assert.Equal(t, plaintext, opened)
}

func TestAESEncryptionService_DifferentNonces(t *testing.T) {
	svc, err := NewAESEncryptionService(testDeviceKey)
	require.NoError(t, err)

	c1, err := svc.Seal([]byte("same"), "id")
	require.NoError(t, err)
	c2, err := svc.Seal([]byte("same"), "id")
	require.NoError(t, err)

	assert.NotEqual(t, c1, c2, "random nonce must change the ciphertext")
}

func TestAESEncryptionService_AssociatedDataBindsSlot(t *testing.T) {
	svc, err := NewAESEncryptionService(testDeviceKey)
	require.NoError(t, err)

	sealed, err := svc.Seal([]byte("blob"), "slot-a")
	require.NoError(t, err)

	_, err = svc.Open(sealed, "slot-b")
	assert.Error(t, err, "a blob copied to another slot must not open")
}

func TestAESEncryptionService_TamperedCiphertext(t *testing.T) {
	svc, err := NewAESEncryptionService(testDeviceKey)
	require.NoError(t, err)

	sealed, err := svc.Seal([]byte("secret"), "id")
	require.NoError(t, err)

	last := sealed[len(sealed)-2:]
	replacement := "ff"
	if last == "ff" {
		replacement = "00"
	}
	_, err = svc.Open(sealed[:len(sealed)-2]+replacement, "id")
	assert.Error(t, err)
}

func TestAESEncryptionService_WrongKey(t *testing.T) {
	svc1, _ := NewAESEncryptionService(testDeviceKey)
	svc2, _ := NewAESEncryptionService("abcdef0123456789abcdef0123456789abcdef0123456789abcdef0123456789")

	sealed, err := svc1.Seal([]byte("blob"), "id")
	require.NoError(t, err)

	_, err = svc2.Open(sealed, "id")
	assert.Error(t, err)
}

func TestAESEncryptionService_InvalidCiphertext(t *testing.T) {
	svc, _ := NewAESEncryptionService(testDeviceKey)

	_, err := svc.Open("not-hex-at-all!!!", "id")
	assert.Error(t, err)

	_, err = svc.Open("abcdef", "id")
	assert.ErrorContains(t, err, "too short")
}
