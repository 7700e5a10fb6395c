// Package keyring stores database connection strings in the OS keyring so
// postgres passwords never appear on the command line or in chart.yaml.
package keyring

import (
	"errors"
	"fmt"
	"strings"

	"github.com/zalando/go-keyring"

	"github.com/julianstephens/gantt/internal/constants"
)

// RefPrefix marks a --config value that names a keyring profile instead of a
// literal connection string, e.g. "keyring:work".
const RefPrefix = "keyring:"

var (
	// ErrNotFound is returned when no credentials are found in the keyring
	ErrNotFound = errors.New("credentials not found in keyring")
	// ErrKeyringUnavailable is returned when the OS keyring is not available
	ErrKeyringUnavailable = errors.New("OS keyring is not available")
)

func account(profile string) string {
	if profile == "" {
		return constants.DefaultKeyringUser
	}
	return profile
}

// GetConnectionString retrieves the connection string stored for profile.
// An empty profile selects the default entry.
func GetConnectionString(profile string) (string, error) {
	connStr, err := keyring.Get(constants.AppName, account(profile))
	if err != nil {
		if err == keyring.ErrNotFound {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("%w: %v", ErrKeyringUnavailable, err)
	}
	return connStr, nil
}

// SetConnectionString stores connStr under profile.
func SetConnectionString(profile, connStr string) error {
	if connStr == "" {
		return errors.New("connection string cannot be empty")
	}
	if err := keyring.Set(constants.AppName, account(profile), connStr); err != nil {
		return fmt.Errorf("failed to store credentials in keyring: %w", err)
	}
	return nil
}

// DeleteConnectionString removes the entry for profile.
func DeleteConnectionString(profile string) error {
	err := keyring.Delete(constants.AppName, account(profile))
	if err != nil {
		if err == keyring.ErrNotFound {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete credentials from keyring: %w", err)
	}
	return nil
}

// Resolve expands a "keyring:<profile>" reference into the stored connection
// string. Any other value is returned unchanged.
func Resolve(value string) (string, error) {
	if !strings.HasPrefix(value, RefPrefix) {
		return value, nil
	}
	profile := strings.TrimPrefix(value, RefPrefix)
	connStr, err := GetConnectionString(profile)
	if err != nil {
		return "", fmt.Errorf("resolve keyring profile %q: %w", account(profile), err)
	}
	return connStr, nil
}

// IsAvailable checks if the OS keyring is available on the current system.
// This is a best-effort check and may not catch all failure scenarios.
func IsAvailable() bool {
	_, err := keyring.Get(constants.AppName, "test-availability")
	return err == nil || err == keyring.ErrNotFound
}
