package keyring

import (
	"errors"
	"fmt"

	"github.com/ecotrack/ecotrack-cli/internal/constants"
	"github.com/zalando/go-keyring"
)

var (
	// ErrNotFound is returned when no credentials are found in the keyring
	ErrNotFound = errors.New("credentials not found in keyring")
	// ErrKeyringUnavailable is returned when the OS keyring is not available
	ErrKeyringUnavailable = errors.New("OS keyring is not available")
)

// Credentials holds the session cookie and CSRF token for the EcoTrack
// server. The CSRF value is also what gets echoed in the X-CSRFToken header.
type Credentials struct {
	Session string
	CSRF    string
}

// Get retrieves the session credentials from the OS keyring.
// Returns ErrNotFound if nothing is stored.
func Get() (Credentials, error) {
	session, err := keyring.Get(constants.AppName, "session-cookie")
	if err != nil {
		if err == keyring.ErrNotFound {
			return Credentials{}, ErrNotFound
		}
		return Credentials{}, fmt.Errorf("%w: %v", ErrKeyringUnavailable, err)
	}
	// The CSRF token is optional; a missing token is not fatal, the server
	// will reject mutating calls and the failure surfaces like any other.
	csrf, err := keyring.Get(constants.AppName, "csrf-token")
	if err != nil && err != keyring.ErrNotFound {
		return Credentials{}, fmt.Errorf("%w: %v", ErrKeyringUnavailable, err)
	}
	return Credentials{Session: session, CSRF: csrf}, nil
}

// Set stores the session credentials in the OS keyring.
func Set(creds Credentials) error {
	if creds.Session == "" {
		return errors.New("session cookie cannot be empty")
	}
	if err := keyring.Set(constants.AppName, "session-cookie", creds.Session); err != nil {
		return fmt.Errorf("failed to store credentials in keyring: %w", err)
	}
	if creds.CSRF != "" {
		if err := keyring.Set(constants.AppName, "csrf-token", creds.CSRF); err != nil {
			return fmt.Errorf("failed to store credentials in keyring: %w", err)
		}
	}
	return nil
}

// Delete removes the session credentials from the OS keyring.
func Delete() error {
	err := keyring.Delete(constants.AppName, "session-cookie")
	if err != nil {
		if err == keyring.ErrNotFound {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete credentials from keyring: %w", err)
	}
	// Best effort for the CSRF entry; a leftover token on its own is useless.
	if err := keyring.Delete(constants.AppName, "csrf-token"); err != nil && err != keyring.ErrNotFound {
		return fmt.Errorf("failed to delete credentials from keyring: %w", err)
	}
	return nil
}

// IsAvailable checks if the OS keyring is available on the current system.
// This is a best-effort check and may not catch all failure scenarios.
func IsAvailable() bool {
	_, err := keyring.Get(constants.AppName, "test-availability")
	// ErrNotFound means the keyring is reachable but empty.
	return err == nil || err == keyring.ErrNotFound
}
