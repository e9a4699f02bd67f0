package storage

import (
	"alcyxob/fitness-tracker/internal/config"
	"context"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewS3Storage_DisabledWithoutBucket(t *testing.T) {
	fs, err := NewS3Storage(context.Background(), config.S3Config{Region: "us-east-1"})
	require.NoError(t, err)
	assert.Nil(t, fs)
}

func TestGeneratePresignedDownloadURL(t *testing.T) {
	fs, err := NewS3Storage(context.Background(), config.S3Config{
		Endpoint:        "http://localhost:9000",
		Region:          "us-east-1",
		AccessKeyID:     "minio",
		SecretAccessKey: "minio-secret",
		BucketName:      "reports",
		UsePathStyle:    true,
	})
	require.NoError(t, err)
	require.NotNil(t, fs)

	raw, err := fs.GeneratePresignedDownloadURL(context.Background(), "insights/a@x.com/2024-06-15-1.json", 5*time.Minute)
	require.NoError(t, err)

	u, err := url.Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, "localhost:9000", u.Host)
	assert.Equal(t, "/reports/insights/a@x.com/2024-06-15-1.json", u.Path)
	assert.Equal(t, "300", u.Query().Get("X-Amz-Expires"))
	assert.NotEmpty(t, u.Query().Get("X-Amz-Signature"))
}
