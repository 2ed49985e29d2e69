package storage

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// Client defines the storage operations used to read exports.
type Client interface {
	// BucketExists checks if a bucket exists.
	BucketExists(ctx context.Context, bucketName string) (bool, error)
	// GetObject downloads an object.
	GetObject(ctx context.Context, bucketName, objectName string, opts minio.GetObjectOptions) (io.ReadCloser, error)
	// ListObjects lists objects in a bucket.
	ListObjects(ctx context.Context, bucketName string, opts minio.ListObjectsOptions) <-chan minio.ObjectInfo
}

// NewClient creates a MinIO-backed Client. The connection is lazy: nothing is
// dialed until the first call.
func NewClient(cfg Config) (Client, error) {
	if !cfg.Enabled() {
		return nil, fmt.Errorf("storage endpoint is not configured")
	}

	// Minio expects endpoint without scheme
	endpoint := strings.TrimPrefix(cfg.Endpoint, "http://")
	endpoint = strings.TrimPrefix(endpoint, "https://")

	mc, err := minio.New(endpoint, &minio.Options{
		Creds:     credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure:    cfg.UseSSL,
		Region:    cfg.Region,
		Transport: newTransport(cfg.Timeout()),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client: %w", err)
	}
	return &minioStore{Client: mc}, nil
}

// newTransport bounds every phase of a request by timeout so a dead endpoint
// fails the first call instead of hanging it.
func newTransport(timeout time.Duration) *http.Transport {
	return &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   timeout,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		ForceAttemptHTTP2:     true,
		MaxIdleConns:          16,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   timeout,
		ExpectContinueTimeout: time.Second,
		ResponseHeaderTimeout: timeout,
	}
}

// minioStore adapts *minio.Client, whose GetObject returns *minio.Object.
type minioStore struct {
	*minio.Client
}

func (c *minioStore) GetObject(ctx context.Context, bucketName, objectName string, opts minio.GetObjectOptions) (io.ReadCloser, error) {
	return c.Client.GetObject(ctx, bucketName, objectName, opts)
}

// LatestObject returns the most recently modified object under prefix whose
// key ends with suffix.
func LatestObject(ctx context.Context, client Client, bucket, prefix, suffix string) (string, error) {
	var (
		latest   string
		latestAt time.Time
	)
	for obj := range client.ListObjects(ctx, bucket, minio.ListObjectsOptions{Prefix: prefix, Recursive: true}) {
		if obj.Err != nil {
			return "", fmt.Errorf("failed to list %s/%s: %w", bucket, prefix, obj.Err)
		}
		if !strings.HasSuffix(obj.Key, suffix) {
			continue
		}
		if latest == "" || obj.LastModified.After(latestAt) {
			latest, latestAt = obj.Key, obj.LastModified
		}
	}
	if latest == "" {
		return "", fmt.Errorf("no %s objects under %s/%s", suffix, bucket, prefix)
	}
	return latest, nil
}
