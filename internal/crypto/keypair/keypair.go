// Package keypair derives secp256k1 account keys from family seeds and
// signs transaction hashes with them.
package keypair

import (
	"encoding/binary"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	addresscodec "github.com/LeJamon/goswtc/internal/codec/address-codec"
	"github.com/LeJamon/goswtc/internal/crypto"
	common "github.com/LeJamon/goswtc/internal/crypto/common"
	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"
)

var (
	ErrInvalidSecret    = errors.New("invalid secret")
	ErrInvalidPublicKey = errors.New("invalid public key")
	ErrInvalidSignature = errors.New("invalid signature")
	ErrNonCanonical     = errors.New("signature is not fully canonical")
)

// KeyPair is the account key pair behind a family seed.
type KeyPair struct {
	priv   *secp256k1.PrivateKey
	pub    []byte
	secret string
}

// FromSecret derives the account key pair for a base58 family seed.
func FromSecret(secret string) (*KeyPair, error) {
	entropy, err := addresscodec.DecodeSeed(secret)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSecret, err)
	}
	defer crypto.SecureErase(entropy)

	priv := deriveAccountKey(entropy)
	return &KeyPair{
		priv:   priv,
		pub:    priv.PubKey().SerializeCompressed(),
		secret: secret,
	}, nil
}

// Generate creates a key pair from fresh random entropy.
func Generate() (*KeyPair, error) {
	entropy, err := crypto.RandomBytes(addresscodec.SeedLength)
	if err != nil {
		return nil, err
	}
	defer crypto.SecureErase(entropy)

	secret, err := addresscodec.EncodeSeed(entropy)
	if err != nil {
		return nil, err
	}
	return FromSecret(secret)
}

// IsValidSecret reports whether secret decodes to a family seed.
func IsValidSecret(secret string) bool {
	return addresscodec.IsValidSecret(secret)
}

// deriveAccountKey implements family seed derivation: the root key is the
// first in-range sha512half(seed || seq), the account key adds the first
// in-range sha512half(rootPub || 0 || seq) to it.
func deriveAccountKey(entropy []byte) *secp256k1.PrivateKey {
	root := firstValidScalar(entropy)
	rootPub := secp256k1.NewPrivateKey(root).PubKey().SerializeCompressed()

	generator := make([]byte, 0, len(rootPub)+4)
	generator = append(generator, rootPub...)
	generator = binary.BigEndian.AppendUint32(generator, 0)
	tweak := firstValidScalar(generator)

	var key secp256k1.ModNScalar
	key.Add2(root, tweak)
	return secp256k1.NewPrivateKey(&key)
}

func firstValidScalar(prefix []byte) *secp256k1.ModNScalar {
	buf := make([]byte, len(prefix)+4)
	copy(buf, prefix)
	for seq := uint32(0); ; seq++ {
		binary.BigEndian.PutUint32(buf[len(prefix):], seq)
		h := common.Sha512Half(buf)

		var s secp256k1.ModNScalar
		if overflow := s.SetByteSlice(h[:]); !overflow && !s.IsZero() {
			return &s
		}
	}
}

// Secret returns the family seed the key pair was derived from.
func (k *KeyPair) Secret() string {
	return k.secret
}

// PublicKey returns the compressed public key as upper case hex.
func (k *KeyPair) PublicKey() string {
	return strings.ToUpper(hex.EncodeToString(k.pub))
}

// PublicKeyBytes returns the compressed public key.
func (k *KeyPair) PublicKeyBytes() []byte {
	return append([]byte(nil), k.pub...)
}

// AccountID returns RIPEMD160(SHA256(pub)).
func (k *KeyPair) AccountID() [crypto.AccountIDSize]byte {
	return crypto.CalcAccountID(k.pub)
}

// Address returns the account address of the key pair.
func (k *KeyPair) Address() string {
	return addresscodec.EncodeAddress(k.AccountID())
}

// SignHash signs a 32-byte digest and returns the DER signature as upper
// case hex. The digest is signed as is, without hashing it again.
func (k *KeyPair) SignHash(hash []byte) (string, error) {
	if len(hash) != 32 {
		return "", fmt.Errorf("%w: digest must be 32 bytes, got %d", ErrInvalidSignature, len(hash))
	}

	der := ecdsa.Sign(k.priv, hash).Serialize()
	if crypto.ECDSACanonicality(der) != crypto.CanonicityFullyCanonical {
		return "", ErrNonCanonical
	}
	return strings.ToUpper(hex.EncodeToString(der)), nil
}

// Verify checks a hex DER signature over hash against a hex public key.
func Verify(hash []byte, signatureHex, publicKeyHex string) (bool, error) {
	pubBytes, err := hex.DecodeString(publicKeyHex)
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrInvalidPublicKey, err)
	}
	pub, err := secp256k1.ParsePubKey(pubBytes)
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrInvalidPublicKey, err)
	}

	sigBytes, err := hex.DecodeString(signatureHex)
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrInvalidSignature, err)
	}
	if crypto.ECDSACanonicality(sigBytes) == crypto.CanonicityNone {
		return false, ErrInvalidSignature
	}
	sig, err := ecdsa.ParseDERSignature(sigBytes)
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrInvalidSignature, err)
	}
	return sig.Verify(hash, pub), nil
}
