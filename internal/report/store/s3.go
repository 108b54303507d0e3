package store

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"path"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/ANUSHREE1403/Generating-Report-for-failed-query-logs-in-BQ/internal/report/entity"
)

type S3Config struct {
	Endpoint  string
	Bucket    string
	AccessKey string
	SecretKey string
	Region    string
	UseSSL    bool
}

// S3Store keeps files in an S3 compatible bucket. A folder is a key prefix and a
// file id is its object key, so a name maps to at most one file.
type S3Store struct {
	client *minio.Client
	bucket string
}

func NewS3Store(cfg S3Config) (*S3Store, error) {
	if cfg.Endpoint == "" {
		return nil, errors.New("s3 endpoint is required")
	}
	if cfg.Bucket == "" {
		return nil, errors.New("s3 bucket is required")
	}
	if cfg.AccessKey == "" || cfg.SecretKey == "" {
		return nil, errors.New("s3 credentials are required")
	}

	endpoint := cfg.Endpoint
	useSSL := cfg.UseSSL
	if u, err := url.Parse(cfg.Endpoint); err == nil && u.Host != "" {
		endpoint = u.Host
		if u.Scheme == "https" {
			useSSL = true
		}
	}

	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: useSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("create minio client: %w", err)
	}

	return &S3Store{client: client, bucket: cfg.Bucket}, nil
}

func (s *S3Store) FindFiles(ctx context.Context, folderID, name string) ([]entity.RemoteFile, error) {
	key := objectKey(folderID, name)

	info, err := s.client.StatObject(ctx, s.bucket, key, minio.StatObjectOptions{})
	if err != nil {
		if isNoSuchKey(err) {
			return nil, nil
		}
		return nil, err
	}

	return []entity.RemoteFile{{
		ID:        key,
		Name:      name,
		CreatedAt: info.LastModified,
		Size:      info.Size,
	}}, nil
}

func (s *S3Store) Download(ctx context.Context, fileID string) ([]byte, error) {
	obj, err := s.client.GetObject(ctx, s.bucket, fileID, minio.GetObjectOptions{})
	if err != nil {
		return nil, err
	}
	defer func() { _ = obj.Close() }()

	return io.ReadAll(obj)
}

func (s *S3Store) Create(ctx context.Context, folderID, name, mimeType string, data []byte) (string, error) {
	key := objectKey(folderID, name)
	if err := s.put(ctx, key, mimeType, data); err != nil {
		return "", err
	}
	return key, nil
}

func (s *S3Store) Update(ctx context.Context, fileID, mimeType string, data []byte) error {
	return s.put(ctx, fileID, mimeType, data)
}

func (s *S3Store) put(ctx context.Context, key, mimeType string, data []byte) error {
	_, err := s.client.PutObject(ctx, s.bucket, key, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: mimeType,
	})
	return err
}

func objectKey(folderID, name string) string {
	folderID = strings.Trim(folderID, "/")
	if folderID == "" {
		return name
	}
	return path.Join(folderID, name)
}

func isNoSuchKey(err error) bool {
	return minio.ToErrorResponse(err).Code == "NoSuchKey"
}
