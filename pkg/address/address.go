package address

import (
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/btcutil/base58"
	"github.com/ethereum/go-ethereum/crypto"
	"golang.org/x/crypto/ripemd160"
)

// MainnetVersion is the network byte of addresses starting with 'A'.
const MainnetVersion byte = 0x17

var (
	ErrInvalidPublicKey = errors.New("invalid public key")
	ErrInvalidAddress   = errors.New("invalid address")
)

// FromPublicKey derives the base58check address of a hex encoded
// compressed secp256k1 public key.
func FromPublicKey(publicKey string, version byte) (string, error) {
	raw, err := hex.DecodeString(publicKey)
	if err != nil {
		return "", fmt.Errorf("%w: decode hex: %w", ErrInvalidPublicKey, err)
	}

	if len(raw) != 33 {
		return "", fmt.Errorf("%w: expected 33 bytes, got %d", ErrInvalidPublicKey, len(raw))
	}

	if _, err := crypto.DecompressPubkey(raw); err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidPublicKey, err)
	}

	hasher := ripemd160.New()
	// hash.Hash never returns an error on Write
	_, _ = hasher.Write(raw)

	return base58.CheckEncode(hasher.Sum(nil), version), nil
}

// Validate checks the checksum, payload length and network byte of addr.
func Validate(addr string, version byte) error {
	payload, v, err := base58.CheckDecode(addr)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidAddress, err)
	}

	if v != version {
		return fmt.Errorf("%w: network version %d, expected %d", ErrInvalidAddress, v, version)
	}

	if len(payload) != ripemd160.Size {
		return fmt.Errorf("%w: payload of %d bytes", ErrInvalidAddress, len(payload))
	}

	return nil
}
