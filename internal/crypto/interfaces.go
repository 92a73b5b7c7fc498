// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/crypto_mock.go -package=mock

import "context"

// AttestClaims are the device facts vouched for by an attestation.
type AttestClaims struct {
	UserID   string
	DeviceID string
	Version  string
}

// Attestor is the key-attestation service. Attest returns a certificate
// chain, leaf first, binding the device public key to claims and challenge.
type Attestor interface {
	DevicePublicKey() string
	Attest(ctx context.Context, challenge string, claims AttestClaims) ([]string, error)
}

// KeyChain seals secrets kept at rest, such as credential auth codes.
// Sealed blobs are nonce || ciphertext.
type KeyChain interface {
	Seal(plaintext []byte) ([]byte, error)
	Open(sealed []byte) ([]byte, error)
}
