package secrets

import (
	"context"
	"encoding/json"
	"fmt"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
)

// AWSConnector resolves secrets from AWS Secrets Manager. Each secret is
// expected to hold a JSON object of key/value pairs.
type AWSConnector struct {
	client *secretsmanager.Client
}

// NewAWSConnector builds a connector using the default AWS credential chain.
func NewAWSConnector(ctx context.Context) (*AWSConnector, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}
	return &AWSConnector{client: secretsmanager.NewFromConfig(cfg)}, nil
}

// GetSecretValue fetches one secret and decodes its JSON payload.
func (c *AWSConnector) GetSecretValue(ctx context.Context, secretName string) (map[string]string, error) {
	out, err := c.client.GetSecretValue(ctx, &secretsmanager.GetSecretValueInput{
		SecretId: &secretName,
	})
	if err != nil {
		return nil, fmt.Errorf("get secret value %q: %w", secretName, err)
	}

	var payload []byte
	switch {
	case out.SecretString != nil:
		payload = []byte(*out.SecretString)
	case out.SecretBinary != nil:
		payload = out.SecretBinary
	default:
		return map[string]string{}, nil
	}

	values := make(map[string]string)
	if err := json.Unmarshal(payload, &values); err != nil {
		return nil, fmt.Errorf("decode secret %q: %w", secretName, err)
	}
	return values, nil
}
