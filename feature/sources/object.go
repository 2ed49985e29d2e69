package sources

import (
	"context"
	"fmt"
	"strings"

	"url-reconciler/core/reconcile"
	"url-reconciler/core/storage"

	"github.com/minio/minio-go/v7"
)

// ObjectSource reads a CSV export from object storage.
type ObjectSource struct {
	client storage.Client
	bucket string
	cfg    Config
}

// NewObjectSource creates a source reading cfg.Location from bucket.
func NewObjectSource(client storage.Client, bucket string, cfg Config) *ObjectSource {
	return &ObjectSource{client: client, bucket: bucket, cfg: cfg}
}

func (s *ObjectSource) Name() string {
	return fmt.Sprintf("object:%s/%s", s.bucket, s.cfg.Location)
}

// Load downloads and parses the export. A prefix location resolves to its newest .csv.
func (s *ObjectSource) Load(ctx context.Context) ([]reconcile.URLPair, error) {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket %s: %w", s.bucket, err)
	}
	if !exists {
		return nil, fmt.Errorf("bucket %s does not exist", s.bucket)
	}

	key := s.cfg.Location
	if strings.HasSuffix(key, "/") {
		if key, err = storage.LatestObject(ctx, s.client, s.bucket, key, ".csv"); err != nil {
			return nil, err
		}
	}

	obj, err := s.client.GetObject(ctx, s.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to get %s: %w", key, err)
	}
	defer obj.Close()

	pairs, err := readCSV(obj, s.cfg)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", key, err)
	}
	return pairs, nil
}
