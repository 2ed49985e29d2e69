package storage_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"url-reconciler/core/storage"
	"url-reconciler/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewClient(t *testing.T) {
	t.Run("ValidConfig", func(t *testing.T) {
		cfg := storage.Config{
			Endpoint:  "localhost:9000",
			AccessKey: "testkey",
			SecretKey: "testsecret",
			UseSSL:    false,
			Bucket:    "exports",
			Region:    "us-east-1",
		}

		client, err := storage.NewClient(cfg)
		assert.NoError(t, err)
		assert.NotNil(t, client)
	})

	t.Run("EndpointWithHTTP", func(t *testing.T) {
		cfg := storage.Config{
			Endpoint:  "http://localhost:9000",
			AccessKey: "testkey",
			SecretKey: "testsecret",
		}

		client, err := storage.NewClient(cfg)
		assert.NoError(t, err)
		assert.NotNil(t, client)
	})

	t.Run("EndpointWithHTTPS", func(t *testing.T) {
		cfg := storage.Config{
			Endpoint:  "https://s3.amazonaws.com",
			AccessKey: "testkey",
			SecretKey: "testsecret",
			UseSSL:    true,
			Region:    "us-east-1",
		}

		client, err := storage.NewClient(cfg)
		assert.NoError(t, err)
		assert.NotNil(t, client)
	})

	t.Run("NoEndpoint", func(t *testing.T) {
		_, err := storage.NewClient(storage.Config{})
		assert.ErrorContains(t, err, "not configured")
	})
}

func TestConfigTimeout(t *testing.T) {
	assert.Equal(t, 30*time.Second, storage.Config{}.Timeout())
	assert.Equal(t, 5*time.Second, storage.Config{TimeoutSeconds: 5}.Timeout())
}

func TestLatestObject(t *testing.T) {
	now := time.Now()

	t.Run("PicksNewestMatching", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("ListObjects", mock.Anything, "exports", mock.Anything).Return(mocks.Objects(
			minio.ObjectInfo{Key: "links/2024-01.csv", LastModified: now.Add(-2 * time.Hour)},
			minio.ObjectInfo{Key: "links/2024-03.csv", LastModified: now},
			minio.ObjectInfo{Key: "links/notes.txt", LastModified: now.Add(time.Hour)},
			minio.ObjectInfo{Key: "links/2024-02.csv", LastModified: now.Add(-time.Hour)},
		))

		key, err := storage.LatestObject(context.Background(), client, "exports", "links/", ".csv")
		require.NoError(t, err)
		assert.Equal(t, "links/2024-03.csv", key)
	})

	t.Run("NoMatch", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("ListObjects", mock.Anything, "exports", mock.Anything).Return(mocks.Objects())

		_, err := storage.LatestObject(context.Background(), client, "exports", "links/", ".csv")
		assert.Error(t, err)
	})

	t.Run("ListError", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("ListObjects", mock.Anything, "exports", mock.Anything).Return(mocks.Objects(
			minio.ObjectInfo{Err: errors.New("access denied")},
		))

		_, err := storage.LatestObject(context.Background(), client, "exports", "links/", ".csv")
		assert.ErrorContains(t, err, "access denied")
	})
}

func TestConfig_Enabled(t *testing.T) {
	assert.False(t, storage.Config{}.Enabled())
	assert.True(t, storage.Config{Endpoint: "localhost:9000"}.Enabled())
}
