package store

import (
	"crypto/cipher"
	"crypto/rand"
	"errors"
	"fmt"

	"golang.org/x/crypto/chacha20poly1305"
	"golang.org/x/crypto/scrypt"
)

// pinEnvelopeVersion is the current on-disk format of PIN-protected keys.
const pinEnvelopeVersion = 1

// ErrWrongPin is returned when the PIN is incorrect or the envelope has been
// modified.
var ErrWrongPin = errors.New("wrong PIN or corrupted key")

// pinEnvelope is the JSON structure holding a PIN-sealed secret and its KDF
// parameters.
type pinEnvelope struct {
	V      int    `json:"v"`
	Salt   []byte `json:"salt"`
	Nonce  []byte `json:"nonce"`
	N      int    `json:"scrypt_N"`
	R      int    `json:"scrypt_r"`
	P      int    `json:"scrypt_p"`
	Cipher []byte `json:"cipher"`
}

// scryptParams are the KDF costs used for new envelopes.
var scryptParams = struct{ N, R, P int }{N: 1 << 15, R: 8, P: 1}

// sealWithPin derives a key from pin and seals secret. ad binds the envelope
// to its owner so envelopes cannot be swapped between users.
func sealWithPin(pin string, secret, ad []byte) (pinEnvelope, error) {
	salt := make([]byte, 16)
	if _, err := rand.Read(salt); err != nil {
		return pinEnvelope{}, err
	}
	nonce := make([]byte, chacha20poly1305.NonceSizeX)
	if _, err := rand.Read(nonce); err != nil {
		return pinEnvelope{}, err
	}
	p := scryptParams
	aead, err := pinCipher(pin, salt, p.N, p.R, p.P)
	if err != nil {
		return pinEnvelope{}, err
	}
	return pinEnvelope{
		V:      pinEnvelopeVersion,
		Salt:   salt,
		Nonce:  nonce,
		N:      p.N,
		R:      p.R,
		P:      p.P,
		Cipher: aead.Seal(nil, nonce, secret, ad),
	}, nil
}

// openWithPin reverses sealWithPin.
func openWithPin(pin string, env pinEnvelope, ad []byte) ([]byte, error) {
	if env.V > pinEnvelopeVersion {
		return nil, fmt.Errorf("unsupported PIN envelope version %d", env.V)
	}
	aead, err := pinCipher(pin, env.Salt, env.N, env.R, env.P)
	if err != nil {
		return nil, err
	}
	if len(env.Nonce) != aead.NonceSize() {
		return nil, ErrWrongPin
	}
	pt, err := aead.Open(nil, env.Nonce, env.Cipher, ad)
	if err != nil {
		return nil, ErrWrongPin
	}
	return pt, nil
}

func pinCipher(pin string, salt []byte, n, r, p int) (cipher.AEAD, error) {
	key, err := scrypt.Key([]byte(pin), salt, n, r, p, chacha20poly1305.KeySize)
	if err != nil {
		return nil, err
	}
	return chacha20poly1305.NewX(key)
}
