// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"context"
	"crypto/ed25519"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/hkdf"
)

const (
	attestIssuer  = "go-device-keeper"
	deviceKeyInfo = "device-attestation-key"
	certValidity  = 24 * time.Hour
)

var ErrAttestation = errors.New("attestation failed")

// DeviceClaims is the payload of the leaf certificate.
type DeviceClaims struct {
	UserID    string `json:"userId"`
	DeviceID  string `json:"deviceId"`
	DevicePk  string `json:"devicePk"`
	Version   string `json:"version"`
	Challenge string `json:"challenge"`
	jwt.RegisteredClaims
}

// RootClaims is the payload of the root certificate vouching for the device
// key.
type RootClaims struct {
	DevicePk string `json:"devicePk"`
	jwt.RegisteredClaims
}

// jwtAttestor signs the leaf with a device key derived from the device
// secret and the root with the service secret.
type jwtAttestor struct {
	deviceKey  ed25519.PrivateKey
	rootSecret []byte
	now        func() time.Time
}

// NewJWTAttestor derives the device signing key from deviceSecret and udid
// with HKDF-SHA256.
func NewJWTAttestor(deviceSecret, rootSecret, udid string) (Attestor, error) {
	if deviceSecret == "" || rootSecret == "" || udid == "" {
		return nil, fmt.Errorf("%w: missing attestation secrets", ErrAttestation)
	}

	seed := make([]byte, ed25519.SeedSize)
	kdf := hkdf.New(sha256.New, []byte(deviceSecret), []byte(udid), []byte(deviceKeyInfo))
	if _, err := io.ReadFull(kdf, seed); err != nil {
		return nil, fmt.Errorf("derive device key: %w", err)
	}

	return &jwtAttestor{
		deviceKey:  ed25519.NewKeyFromSeed(seed),
		rootSecret: []byte(rootSecret),
		now:        time.Now,
	}, nil
}

// DevicePublicKey implements [Attestor].
func (a *jwtAttestor) DevicePublicKey() string {
	pub := a.deviceKey.Public().(ed25519.PublicKey)
	return base64.RawURLEncoding.EncodeToString(pub)
}

// Attest implements [Attestor]. The chain is [leaf, root].
func (a *jwtAttestor) Attest(ctx context.Context, challenge string, claims AttestClaims) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if claims.DeviceID == "" || claims.UserID == "" {
		return nil, fmt.Errorf("%w: user and device id are required", ErrAttestation)
	}

	now := a.now()
	devicePk := a.DevicePublicKey()

	leaf := jwt.NewWithClaims(jwt.SigningMethodEdDSA, &DeviceClaims{
		UserID:    claims.UserID,
		DeviceID:  claims.DeviceID,
		DevicePk:  devicePk,
		Version:   claims.Version,
		Challenge: challenge,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    claims.DeviceID,
			Subject:   claims.UserID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(certValidity)),
		},
	})
	leafSigned, err := leaf.SignedString(a.deviceKey)
	if err != nil {
		return nil, fmt.Errorf("%w: sign leaf: %w", ErrAttestation, err)
	}

	root := jwt.NewWithClaims(jwt.SigningMethodHS256, &RootClaims{
		DevicePk: devicePk,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    attestIssuer,
			Subject:   claims.DeviceID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(certValidity)),
		},
	})
	rootSigned, err := root.SignedString(a.rootSecret)
	if err != nil {
		return nil, fmt.Errorf("%w: sign root: %w", ErrAttestation, err)
	}

	return []string{leafSigned, rootSigned}, nil
}

// VerifyChain checks a chain produced by Attest: the root must be signed
// with rootSecret and the leaf with the device key the root vouches for.
func VerifyChain(chain []string, rootSecret string) (*DeviceClaims, error) {
	if len(chain) != 2 {
		return nil, fmt.Errorf("%w: chain must have 2 certificates", ErrAttestation)
	}

	var root RootClaims
	_, err := jwt.ParseWithClaims(chain[1], &root, func(*jwt.Token) (any, error) {
		return []byte(rootSecret), nil
	}, jwt.WithIssuer(attestIssuer), jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, fmt.Errorf("%w: root: %w", ErrAttestation, err)
	}

	pub, err := base64.RawURLEncoding.DecodeString(root.DevicePk)
	if err != nil || len(pub) != ed25519.PublicKeySize {
		return nil, fmt.Errorf("%w: bad device key in root", ErrAttestation)
	}

	var leaf DeviceClaims
	_, err = jwt.ParseWithClaims(chain[0], &leaf, func(*jwt.Token) (any, error) {
		return ed25519.PublicKey(pub), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodEdDSA.Alg()}))
	if err != nil {
		return nil, fmt.Errorf("%w: leaf: %w", ErrAttestation, err)
	}
	if leaf.DeviceID != root.Subject {
		return nil, fmt.Errorf("%w: leaf and root disagree on device", ErrAttestation)
	}
	return &leaf, nil
}
