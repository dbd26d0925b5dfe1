package blob

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"strings"

	"backoffice/internal/config"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// ErrNotConfigured is returned when the object store settings are absent.
var ErrNotConfigured = errors.New("blob storage is not configured")

// Object describes a stored file as returned to upload clients.
type Object struct {
	URL         string `json:"url"`
	Pathname    string `json:"pathname"`
	ContentType string `json:"contentType"`
	Size        int64  `json:"size"`
}

// Store is the upload/delete surface the handlers depend on.
type Store interface {
	Put(ctx context.Context, filename string, body io.Reader, size int64, contentType string) (Object, error)
	Delete(ctx context.Context, publicURL string) error
}

// MinioStore stores files in an S3-compatible bucket.
type MinioStore struct {
	client     *minio.Client
	bucket     string
	publicBase string
}

// New builds a MinioStore from config. Returns ErrNotConfigured when the
// endpoint or credentials are missing so callers can degrade to 503.
func New(cfg config.BlobConfig) (*MinioStore, error) {
	if cfg.Endpoint == "" || cfg.AccessKey == "" || cfg.SecretKey == "" {
		return nil, ErrNotConfigured
	}

	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, err
	}

	publicBase := cfg.PublicBaseURL
	if publicBase == "" {
		scheme := "http"
		if cfg.UseSSL {
			scheme = "https"
		}
		publicBase = fmt.Sprintf("%s://%s/%s", scheme, cfg.Endpoint, cfg.Bucket)
	}

	return &MinioStore{
		client:     client,
		bucket:     cfg.Bucket,
		publicBase: strings.TrimSuffix(publicBase, "/"),
	}, nil
}

// Put streams body into the bucket under filename and returns the public
// object description. size may be -1 when the caller does not know it.
func (s *MinioStore) Put(ctx context.Context, filename string, body io.Reader, size int64, contentType string) (Object, error) {
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	info, err := s.client.PutObject(ctx, s.bucket, filename, body, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return Object{}, err
	}

	return Object{
		URL:         s.publicBase + "/" + filename,
		Pathname:    filename,
		ContentType: contentType,
		Size:        info.Size,
	}, nil
}

// Delete removes the object a public URL points at.
func (s *MinioStore) Delete(ctx context.Context, publicURL string) error {
	key, err := s.keyFromURL(publicURL)
	if err != nil {
		return err
	}
	return s.client.RemoveObject(ctx, s.bucket, key, minio.RemoveObjectOptions{})
}

func (s *MinioStore) keyFromURL(publicURL string) (string, error) {
	if strings.HasPrefix(publicURL, s.publicBase+"/") {
		return strings.TrimPrefix(publicURL, s.publicBase+"/"), nil
	}

	// Tolerate URLs from an earlier public base: fall back to the path
	// segment after the bucket name.
	u, err := url.Parse(publicURL)
	if err != nil {
		return "", fmt.Errorf("invalid blob url: %w", err)
	}
	path := strings.TrimPrefix(u.Path, "/")
	if rest, ok := strings.CutPrefix(path, s.bucket+"/"); ok {
		return rest, nil
	}
	if path == "" {
		return "", fmt.Errorf("blob url %q has no object key", publicURL)
	}
	return path, nil
}
