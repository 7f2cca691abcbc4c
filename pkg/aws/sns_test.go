package aws

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadAWSConfig_RegionOverride(t *testing.T) {
	t.Setenv("AWS_REGION", "us-east-1")
	t.Setenv("AWS_ACCESS_KEY_ID", "test")
	t.Setenv("AWS_SECRET_ACCESS_KEY", "test")

	cfg, err := LoadAWSConfig(context.Background(), "ap-south-1")
	require.NoError(t, err)
	assert.Equal(t, "ap-south-1", cfg.Region)

	cfg, err = LoadAWSConfig(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, "us-east-1", cfg.Region)
}

func TestSNSClient_PublishRequiresTopic(t *testing.T) {
	t.Setenv("AWS_ACCESS_KEY_ID", "test")
	t.Setenv("AWS_SECRET_ACCESS_KEY", "test")
	cfg, err := LoadAWSConfig(context.Background(), "ap-south-1")
	require.NoError(t, err)

	client := NewSNSClient(cfg, "http://localhost:4566")

	err = client.Publish(context.Background(), "", []byte(`{}`))
	assert.EqualError(t, err, "empty topicArn")
}
