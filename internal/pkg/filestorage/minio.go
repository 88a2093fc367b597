package filestorage

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"net/url"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/yigit/studentregistry/internal/pkg/logger"
)

// MinioConfig holds the connection settings for an S3-compatible stash
type MinioConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

// MinioStorage stores documents as objects keyed by their recorded path.
type MinioStorage struct {
	client   *minio.Client
	bucket   string
	nameFunc func(displayName string) string
}

// NewMinioStorage connects to the endpoint and makes sure the bucket exists.
func NewMinioStorage(ctx context.Context, cfg MinioConfig) (*MinioStorage, error) {
	endpoint, secure, err := normaliseEndpoint(cfg.Endpoint)
	if err != nil {
		return nil, fmt.Errorf("invalid minio endpoint: %w", err)
	}
	if cfg.Bucket == "" {
		return nil, errors.New("minio bucket is required")
	}

	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: secure || cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client: %w", err)
	}

	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket %s: %w", cfg.Bucket, err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("failed to create bucket %s: %w", cfg.Bucket, err)
		}
		logger.Info().Str("bucket", cfg.Bucket).Msg("Created minio bucket")
	}

	return &MinioStorage{
		client:   client,
		bucket:   cfg.Bucket,
		nameFunc: StorageName,
	}, nil
}

// SaveFile streams the upload into the bucket under a generated key.
func (ms *MinioStorage) SaveFile(ctx context.Context, fileHeader *multipart.FileHeader) (*FileInfo, error) {
	if fileHeader == nil {
		return nil, errors.New("no file provided")
	}

	src, err := fileHeader.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	displayName := DisplayName(fileHeader.Filename)
	storageName := ms.nameFunc(displayName)
	key := storedPath(storageName)
	contentType := fileHeader.Header.Get("Content-Type")

	uploaded, err := ms.client.PutObject(ctx, ms.bucket, key, src, fileHeader.Size, minio.PutObjectOptions{
		ContentType: contentType,
		UserMetadata: map[string]string{
			"display-name": displayName,
		},
	})
	if err != nil {
		logger.Error().Err(err).Str("bucket", ms.bucket).Str("key", key).Msg("Failed to put object")
		return nil, fmt.Errorf("failed to upload object: %w", err)
	}

	logger.Info().Str("filename", displayName).Str("key", key).Int64("size", uploaded.Size).Msg("Object stored successfully")
	return &FileInfo{
		Path:        key,
		StorageName: storageName,
		Filename:    displayName,
		FileSize:    uploaded.Size,
		MimeType:    contentType,
	}, nil
}

// DeleteFile removes the object stored under filePath.
func (ms *MinioStorage) DeleteFile(ctx context.Context, filePath string) error {
	if filePath == "" {
		return nil
	}
	name, ok := storageNameFromPath(filePath)
	if !ok {
		return fmt.Errorf("invalid file path: %s", filePath)
	}

	if err := ms.client.RemoveObject(ctx, ms.bucket, storedPath(name), minio.RemoveObjectOptions{}); err != nil {
		logger.Error().Err(err).Str("bucket", ms.bucket).Str("key", filePath).Msg("Failed to remove object")
		return fmt.Errorf("failed to remove object: %w", err)
	}
	return nil
}

// normaliseEndpoint accepts either "minio:9000" or "http(s)://minio:9000".
func normaliseEndpoint(raw string) (endpoint string, secure bool, err error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", false, errors.New("empty endpoint")
	}

	if strings.Contains(raw, "://") {
		u, err := url.Parse(raw)
		if err != nil {
			return "", false, err
		}
		if u.Host == "" {
			return "", false, errors.New("endpoint has no host")
		}
		if u.Path != "" && u.Path != "/" {
			return "", false, errors.New("endpoint must not contain a path")
		}
		return u.Host, u.Scheme == "https", nil
	}

	return raw, false, nil
}
