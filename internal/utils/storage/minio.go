package storage

import (
	"bytes"
	"context"
	"fmt"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"mime/multipart"
	"recipehub/internal/utils"
)

type MinIO struct {
	client   *minio.Client
	bucket   string
	endpoint string
	useSSL   bool
}

func NewMinIO(ctx context.Context, cfg *utils.Config) (*MinIO, error) {
	client, err := minio.New(cfg.MinIOEndpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.MinIOAccessKey, cfg.MinIOSecretKey, ""),
		Secure: cfg.MinIOUseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("create minio client: %w", err)
	}

	m := &MinIO{client: client, bucket: cfg.MinIOBucket, endpoint: cfg.MinIOEndpoint, useSSL: cfg.MinIOUseSSL}
	if err := m.ensureBucket(ctx); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *MinIO) ensureBucket(ctx context.Context) error {
	exists, err := m.client.BucketExists(ctx, m.bucket)
	if err != nil {
		return fmt.Errorf("check minio bucket: %w", err)
	}
	if exists {
		return nil
	}
	if err := m.client.MakeBucket(ctx, m.bucket, minio.MakeBucketOptions{}); err != nil {
		return fmt.Errorf("create minio bucket: %w", err)
	}
	return nil
}

func (m *MinIO) UploadFile(ctx context.Context, fileName string, file *multipart.FileHeader, folder string, allowTypes ...string) (string, error) {
	up, err := prepareUpload(fileName, file, folder, allowTypes...)
	if err != nil {
		return "", err
	}

	_, err = m.client.PutObject(ctx, m.bucket, up.key, bytes.NewReader(up.body), int64(len(up.body)),
		minio.PutObjectOptions{
			ContentType: up.contentType,
			UserMetadata: map[string]string{
				"original-filename": file.Filename,
			},
		})
	if err != nil {
		return "", fmt.Errorf("minio put object: %w", err)
	}
	return up.key, nil
}

func (m *MinIO) DeleteFile(ctx context.Context, objectKey string) error {
	if err := m.client.RemoveObject(ctx, m.bucket, objectKey, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("minio remove object: %w", err)
	}
	return nil
}

func (m *MinIO) publicBase() string {
	scheme := "http"
	if m.useSSL {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s/%s", scheme, m.endpoint, m.bucket)
}

func (m *MinIO) GetPublicLinkKey(objectKey string) string {
	return m.publicBase() + "/" + objectKey
}

func (m *MinIO) GetObjectKeyFromLink(link string) string {
	return keyFromLink(m.publicBase(), link)
}
