package secrets

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// ErrSecretNotFound is returned by Get for keys absent after Load.
var ErrSecretNotFound = errors.New("secret not found")

// Manager loads secrets once at startup and serves them read-only for the
// rest of the process lifetime.
type Manager struct {
	connector Connector
	values    map[string]string
}

// NewManager builds a manager. A nil connector means secrets are read from
// the process environment instead of an external vault.
func NewManager(connector Connector) *Manager {
	return &Manager{connector: connector, values: make(map[string]string)}
}

// Load resolves every named secret through the connector, or snapshots the
// process environment when no connector is configured.
func (m *Manager) Load(ctx context.Context, secretNames []string) error {
	m.values = make(map[string]string)

	if m.connector == nil {
		for _, entry := range os.Environ() {
			key, value, ok := strings.Cut(entry, "=")
			if ok {
				m.values[key] = value
			}
		}
		return nil
	}

	for _, name := range secretNames {
		fetched, err := m.connector.GetSecretValue(ctx, name)
		if err != nil {
			return fmt.Errorf("load secret %q: %w", name, err)
		}
		for key, value := range fetched {
			m.values[key] = value
		}
	}
	return nil
}

// Get returns the value for key, failing with ErrSecretNotFound when absent.
func (m *Manager) Get(key string) (string, error) {
	value, ok := m.values[key]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrSecretNotFound, key)
	}
	return value, nil
}

// GetInt returns the value for key parsed as an integer.
func (m *Manager) GetInt(key string) (int, error) {
	value, err := m.Get(key)
	if err != nil {
		return 0, err
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("secret %s is not an integer: %w", key, err)
	}
	return parsed, nil
}
