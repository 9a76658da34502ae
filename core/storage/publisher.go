package storage

import (
	"bytes"
	"context"
	"fmt"
	"path"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// Publisher mirrors persisted catalog files to an object storage bucket so
// downstream consumers can read them without filesystem access.
type Publisher struct {
	client Client
	bucket string
	prefix string
	log    *zap.Logger
}

// NewPublisher creates a publisher for the configured bucket.
func NewPublisher(client Client, cfg Config, log *zap.Logger) *Publisher {
	return &Publisher{
		client: client,
		bucket: cfg.Bucket,
		prefix: cfg.Prefix,
		log:    log,
	}
}

// Publish uploads one catalog document under the configured prefix,
// creating the bucket on first use.
func (p *Publisher) Publish(ctx context.Context, name string, data []byte) error {
	exists, err := p.client.BucketExists(ctx, p.bucket)
	if err != nil {
		return fmt.Errorf("check bucket %s: %w", p.bucket, err)
	}
	if !exists {
		if err := p.client.MakeBucket(ctx, p.bucket, minio.MakeBucketOptions{}); err != nil {
			return fmt.Errorf("create bucket %s: %w", p.bucket, err)
		}
	}

	objectName := path.Join(p.prefix, name)
	_, err = p.client.PutObject(ctx, p.bucket, objectName,
		bytes.NewReader(data), int64(len(data)),
		minio.PutObjectOptions{ContentType: "application/json"},
	)
	if err != nil {
		return fmt.Errorf("upload %s: %w", objectName, err)
	}

	p.log.Info("catalog published",
		zap.String("bucket", p.bucket),
		zap.String("object", objectName),
		zap.Int("bytes", len(data)),
	)
	return nil
}
