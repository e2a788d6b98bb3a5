// Package storage persists uploaded project images. Files go to S3 when a
// bucket is configured and to local disk otherwise; either way the stored
// object keeps a fresh uuid name with the upload's original extension.
package storage

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/awantha2003/portfolio-backend/config"
	"github.com/google/uuid"
)

// ImageStore saves an uploaded image and returns the URL it will be served
// from.
type ImageStore interface {
	Save(ctx context.Context, filename, contentType string, body io.Reader) (string, error)
}

// NewFromConfig picks the store implementation from configuration: S3 when
// S3_BUCKET is set, local disk under UPLOAD_DIR otherwise.
func NewFromConfig(ctx context.Context, c map[string]string) (ImageStore, error) {
	bucket := config.GetString(c, "S3_BUCKET", "")
	if bucket != "" {
		region := config.GetString(c, "AWS_REGION", "us-east-1")
		return NewS3Store(ctx, bucket, region)
	}
	dir := config.GetString(c, "UPLOAD_DIR", "uploads")
	return NewLocalStore(dir)
}

// ObjectName builds the stored filename: a new uuid plus the original
// extension, lowercased. Uploads without an extension stay extension-less.
func ObjectName(original string) string {
	ext := strings.ToLower(filepath.Ext(original))
	return fmt.Sprintf("%s%s", uuid.New(), ext)
}
