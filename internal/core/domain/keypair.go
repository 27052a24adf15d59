package domain

import (
	"crypto/ed25519"
	"crypto/rand"
	"encoding/hex"
	"fmt"

	"github.com/btcsuite/btcd/btcutil/base58"
)

// Keypair is an ed25519 signing key with its base58 address. The private
// key stays inside this struct and is never logged; use SeedHex only when
// the key must be persisted (and always encrypt the result).
type Keypair struct {
	priv    ed25519.PrivateKey
	address string
}

// NewKeypair generates a keypair from the OS CSPRNG.
func NewKeypair() (*Keypair, error) {
	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("generating keypair: %w", err)
	}
	return &Keypair{priv: priv, address: base58.Encode(pub)}, nil
}

// KeypairFromSeed reconstructs a keypair from a 32-byte ed25519 seed.
func KeypairFromSeed(seed []byte) (*Keypair, error) {
	if len(seed) != ed25519.SeedSize {
		return nil, fmt.Errorf("seed must be %d bytes, got %d", ed25519.SeedSize, len(seed))
	}
	priv := ed25519.NewKeyFromSeed(seed)
	pub := priv.Public().(ed25519.PublicKey)
	return &Keypair{priv: priv, address: base58.Encode(pub)}, nil
}

// KeypairFromSeedHex reconstructs a keypair from a hex-encoded seed.
func KeypairFromSeedHex(seedHex string) (*Keypair, error) {
	seed, err := hex.DecodeString(seedHex)
	if err != nil {
		return nil, fmt.Errorf("decoding seed hex: %w", err)
	}
	return KeypairFromSeed(seed)
}

// Address returns the base58-encoded public key.
func (k *Keypair) Address() string {
	return k.address
}

// Sign signs msg with the private key.
func (k *Keypair) Sign(msg []byte) []byte {
	return ed25519.Sign(k.priv, msg)
}

// SeedHex returns the hex-encoded private seed.
// WARNING: exposes key material. Callers must encrypt before persisting.
func (k *Keypair) SeedHex() string {
	return hex.EncodeToString(k.priv.Seed())
}

// IsValidAddress reports whether addr decodes to a 32-byte public key.
func IsValidAddress(addr string) bool {
	if addr == "" {
		return false
	}
	decoded := base58.Decode(addr)
	return len(decoded) == ed25519.PublicKeySize
}
