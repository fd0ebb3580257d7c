package domain

import (
	"strings"

	"github.com/stellar/go/strkey"
	"github.com/stellar/go/xdr"
)

// IsValidAccountAddress accepts ed25519 account (G...) and muxed account (M...) addresses.
func IsValidAccountAddress(address string) bool {
	switch {
	case strings.HasPrefix(address, "G"):
		return strkey.IsValidEd25519PublicKey(address)
	case strings.HasPrefix(address, "M"):
		_, err := strkey.Decode(strkey.VersionByteMuxedAccount, address)
		return err == nil
	}
	return false
}

// BaseAccount returns the G... account behind a muxed address, or the address
// itself when it is already an ed25519 account.
func BaseAccount(address string) (string, error) {
	if strings.HasPrefix(address, "G") {
		return address, nil
	}
	muxed, err := xdr.AddressToMuxedAccount(address)
	if err != nil {
		return "", err
	}
	accountID := muxed.ToAccountId()
	return accountID.Address(), nil
}

// IsMuxedAddress reports whether address is an M... muxed account.
func IsMuxedAddress(address string) bool {
	return strings.HasPrefix(address, "M")
}
