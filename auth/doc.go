// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth gates manual entry overrides behind a PIN.

The raffle core never authorizes; callers that expose the override
operation decide who may use it. The HTTP layer does it here:

	gate := auth.NewOverrideGate(cfg.OverridePIN)
	if err := gate.Check(r.Header.Get(auth.OverridePINHeader)); err != nil {
		// 403
	}

An empty PIN disables the gate. Both sides are hashed with SHA-256 and
compared with hmac.Equal.

# Errors

  - ErrPINRequired: a PIN is configured but the request carried none
  - ErrInvalidPIN: the PIN did not match
*/
package auth
