package apikeys

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrMissingAPIKey is returned when no usable key has been provided
var ErrMissingAPIKey = errors.New("a valid Mapzen API key has not been provided")

// IsValid reports whether key is neither empty nor the sample placeholder
func IsValid(key string) bool {
	return key != "" && key != DefaultAPIKey
}

// RequireAPIKey returns the stored key, or ErrMissingAPIKey when it is
// unset or still the placeholder. APIKey itself never fails.
func (m *Manager) RequireAPIKey() (string, error) {
	key := m.APIKey()
	if !IsValid(key) {
		return "", fmt.Errorf("%w: declare the %q string resource or call SetAPIKey", ErrMissingAPIKey, m.resourceName)
	}
	return key, nil
}

// Resolve returns the key a component should use. A key passed explicitly
// to the component supersedes the stored one.
func (m *Manager) Resolve(explicit string) string {
	if explicit != "" {
		return explicit
	}
	return m.APIKey()
}

// Authorize adds the resolved key to req as the api_key query parameter.
// The request is only modified, never sent.
func (m *Manager) Authorize(req *http.Request, explicit string) error {
	key := m.Resolve(explicit)
	if !IsValid(key) {
		return fmt.Errorf("authorize %s %s: %w", req.Method, req.URL.Path, ErrMissingAPIKey)
	}

	query := req.URL.Query()
	query.Set(ParamName, key)
	req.URL.RawQuery = query.Encode()
	return nil
}
