// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"math/big"
	"strconv"
)

const (
	PinCodeMin = 100000
	PinCodeMax = 999999

	tokenBytes = 16
)

// GeneratePinCode returns a uniformly random six digit PIN.
func GeneratePinCode() (int, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(PinCodeMax-PinCodeMin+1))
	if err != nil {
		return 0, fmt.Errorf("generate pin code: %w", err)
	}
	return int(n.Int64()) + PinCodeMin, nil
}

// GenerateToken returns a random one-time pairing token.
func GenerateToken() (string, error) {
	b := make([]byte, tokenBytes)
	if _, err := io.ReadFull(rand.Reader, b); err != nil {
		return "", fmt.Errorf("generate token: %w", err)
	}
	return hex.EncodeToString(b), nil
}

// PinCommitment binds pin to a pairing token. The sink sends the commitment
// instead of the PIN so the source can check user input locally.
func PinCommitment(token string, pin int) string {
	mac := hmac.New(sha256.New, []byte(token))
	mac.Write([]byte(strconv.Itoa(pin)))
	return hex.EncodeToString(mac.Sum(nil))
}

// VerifyPinCommitment reports whether pin matches commitment under token.
func VerifyPinCommitment(token string, pin int, commitment string) bool {
	want, err := hex.DecodeString(commitment)
	if err != nil {
		return false
	}
	got, _ := hex.DecodeString(PinCommitment(token, pin))
	return hmac.Equal(got, want)
}
