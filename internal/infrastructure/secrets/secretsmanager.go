package secrets

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"os"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
)

var ErrEmptySecret = errors.New("secret has no string value")

// secretKeys are probed, in order, when the secret string is a JSON object.
var secretKeys = []string{"SUMUP_API_KEY", "api_key", "apiKey"}

type SecretGetter interface {
	GetSecretValue(ctx context.Context, params *secretsmanager.GetSecretValueInput, optFns ...func(*secretsmanager.Options)) (*secretsmanager.GetSecretValueOutput, error)
}

// Resolver reads the provider API key from AWS Secrets Manager.
type Resolver struct {
	client SecretGetter
}

func NewResolver(client SecretGetter) *Resolver {
	return &Resolver{client: client}
}

// NewResolverFromEnv builds a Secrets Manager client.
//
// Supported env vars:
//   - AWS_REGION (passed in as region)
//   - SECRETSMANAGER_ENDPOINT (optional; e.g. http://localstack:4566)
//   - AWS_ACCESS_KEY_ID / AWS_SECRET_ACCESS_KEY (default: local, only with an endpoint override)
func NewResolverFromEnv(ctx context.Context, region string) (*Resolver, error) {
	endpoint := os.Getenv("SECRETSMANAGER_ENDPOINT")

	loadOpts := []func(*config.LoadOptions) error{
		config.WithRegion(region),
	}
	if endpoint != "" {
		// Local emulators do not validate credentials, but the AWS SDK requires them.
		creds := credentials.NewStaticCredentialsProvider(
			getenvDefault("AWS_ACCESS_KEY_ID", "local"),
			getenvDefault("AWS_SECRET_ACCESS_KEY", "local"),
			"",
		)
		loadOpts = append(loadOpts, config.WithCredentialsProvider(creds))
	}

	cfg, err := config.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, err
	}

	client := secretsmanager.NewFromConfig(cfg, func(o *secretsmanager.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
		}
	})
	return NewResolver(client), nil
}

// Resolve returns the secret value. JSON object secrets are unwrapped
// through secretKeys; any other string is returned trimmed.
func (r *Resolver) Resolve(ctx context.Context, secretID string) (string, error) {
	log.Printf("[checkout][secrets] resolve start secret_id=%s", secretID)
	out, err := r.client.GetSecretValue(ctx, &secretsmanager.GetSecretValueInput{
		SecretId: aws.String(secretID),
	})
	if err != nil {
		log.Printf("[checkout][secrets] resolve failed secret_id=%s err=%v", secretID, err)
		return "", err
	}

	value := strings.TrimSpace(aws.ToString(out.SecretString))
	if value == "" {
		return "", ErrEmptySecret
	}

	if strings.HasPrefix(value, "{") {
		var fields map[string]any
		if err := json.Unmarshal([]byte(value), &fields); err == nil {
			for _, k := range secretKeys {
				if s, ok := fields[k].(string); ok && strings.TrimSpace(s) != "" {
					value = strings.TrimSpace(s)
					break
				}
			}
		}
	}

	log.Printf("[checkout][secrets] resolve success secret_id=%s", secretID)
	return value, nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
