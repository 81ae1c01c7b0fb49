package morph

import (
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"sync"

	"golang.org/x/crypto/chacha20poly1305"
)

// Sealing errors.
var (
	ErrInvalidKeySize  = errors.New("invalid key size")
	ErrCiphertextShort = errors.New("ciphertext too short")
)

var (
	sealMu   sync.RWMutex
	sealAEAD cipher.AEAD
)

// SetSealKey installs the process-wide key used by Sealed.
// Key must be 32 bytes. Safe to call at any time to rotate keys; values
// sealed under the previous key no longer open.
func SetSealKey(key []byte) error {
	if len(key) != chacha20poly1305.KeySize {
		return fmt.Errorf("%w: must be %d bytes, got %d", ErrInvalidKeySize, chacha20poly1305.KeySize, len(key))
	}
	aead, err := chacha20poly1305.NewX(key)
	if err != nil {
		return err
	}
	sealMu.Lock()
	defer sealMu.Unlock()
	sealAEAD = aead
	return nil
}

// ResetSealKey removes the seal key.
// This is primarily useful for test isolation.
func ResetSealKey() {
	sealMu.Lock()
	defer sealMu.Unlock()
	sealAEAD = nil
}

func currentSealer() (cipher.AEAD, error) {
	sealMu.RLock()
	defer sealMu.RUnlock()
	if sealAEAD == nil {
		return nil, ErrMissingKey
	}
	return sealAEAD, nil
}

// Sealed encodes T with S, seals the result with XChaCha20-Poly1305 under the
// process seal key, and writes it as base64 text. The inner tree travels as
// CBOR, so the sealed text is the same whichever host carries it.
//
//	type Account struct {
//	    Token morph.As[string, morph.Sealed[string, morph.Same[string]]] `json:"token"`
//	}
type Sealed[T any, S Strategy[T]] struct{}

func (Sealed[T, S]) EncodeAs(v T) (Node, error) {
	aead, err := currentSealer()
	if err != nil {
		return Node{}, &EncodeError{Err: err, Type: fmt.Sprintf("%T", v)}
	}
	var s S
	inner, err := s.EncodeAs(v)
	if err != nil {
		return Node{}, err
	}
	plaintext, err := appendCBOR(nil, inner)
	if err != nil {
		return Node{}, &EncodeError{Err: ErrSeal, Type: fmt.Sprintf("%T", v), Cause: err}
	}
	nonce := make([]byte, aead.NonceSize(), aead.NonceSize()+len(plaintext)+aead.Overhead())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return Node{}, &EncodeError{Err: ErrSeal, Type: fmt.Sprintf("%T", v), Cause: err}
	}
	// Nonce is prepended to the ciphertext.
	sealed := aead.Seal(nonce, nonce, plaintext, nil)
	return StringNode(base64.StdEncoding.EncodeToString(sealed)), nil
}

func (Sealed[T, S]) DecodeAs(v Value) (T, error) {
	var zero T
	if v.Kind() != KindString {
		return zero, invalidShape(v, "sealed base64 string")
	}
	aead, err := currentSealer()
	if err != nil {
		return zero, &DecodeError{Err: err, Input: "sealed value"}
	}
	sealed, err := base64.StdEncoding.DecodeString(v.Text())
	if err != nil {
		return zero, &DecodeError{Err: ErrUnseal, Input: "sealed value", Cause: err}
	}
	if len(sealed) < aead.NonceSize()+aead.Overhead() {
		return zero, &DecodeError{Err: ErrUnseal, Input: "sealed value", Cause: ErrCiphertextShort}
	}
	nonce, ciphertext := sealed[:aead.NonceSize()], sealed[aead.NonceSize():]
	plaintext, err := aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return zero, &DecodeError{Err: ErrUnseal, Input: "sealed value", Cause: err}
	}
	inner, err := newCBORValue(plaintext)
	if err != nil {
		return zero, &DecodeError{Err: ErrUnseal, Input: "sealed value", Cause: err}
	}
	var s S
	return s.DecodeAs(inner)
}
