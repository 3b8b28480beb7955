// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"errors"
	"strings"
)

// OverridePINHeader carries the PIN on override requests
const OverridePINHeader = "X-Override-PIN"

var (
	ErrPINRequired = errors.New("override PIN required")
	ErrInvalidPIN  = errors.New("invalid override PIN")
)

// OverrideGate decides whether a caller may set a manual entries override.
// An empty PIN disables the gate.
type OverrideGate struct {
	digest []byte
}

func NewOverrideGate(pin string) OverrideGate {
	pin = strings.TrimSpace(pin)
	if pin == "" {
		return OverrideGate{}
	}
	return OverrideGate{digest: hashPIN(pin)}
}

// Enabled reports whether a PIN is configured.
func (g OverrideGate) Enabled() bool {
	return g.digest != nil
}

// Check validates the provided PIN against the configured one.
// Digests are compared so timing does not depend on PIN length.
func (g OverrideGate) Check(provided string) error {
	if !g.Enabled() {
		return nil
	}
	provided = strings.TrimSpace(provided)
	if provided == "" {
		return ErrPINRequired
	}
	if !hmac.Equal(hashPIN(provided), g.digest) {
		return ErrInvalidPIN
	}
	return nil
}

func hashPIN(pin string) []byte {
	sum := sha256.Sum256([]byte(pin))
	return sum[:]
}
