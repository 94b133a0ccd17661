package database

import (
	"context"
	"testing"

	"telematics_roi/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDynamoDBConfig(t *testing.T) {
	cfg, err := NewDynamoDBConfig(context.Background(), config.AWSConfig{
		Region:           "eu-west-1",
		AccessKeyID:      "local",
		SecretAccessKey:  "local",
		DynamoDBEndpoint: "http://localhost:8000",
	})
	require.NoError(t, err)
	assert.Equal(t, "eu-west-1", cfg.Region)

	creds, err := cfg.Credentials.Retrieve(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "local", creds.AccessKeyID)
}

func TestConnectDynamoDB(t *testing.T) {
	client, err := ConnectDynamoDB(context.Background(), config.AWSConfig{
		Region:          "us-east-1",
		AccessKeyID:     "local",
		SecretAccessKey: "local",
	})
	require.NoError(t, err)
	assert.NotNil(t, client)
}
