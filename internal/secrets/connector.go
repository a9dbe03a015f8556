package secrets

import "context"

// Connector is a strategy for fetching sensitive configuration from an
// external vault. A single secret name may resolve to many key/value pairs.
type Connector interface {
	GetSecretValue(ctx context.Context, secretName string) (map[string]string, error)
}
