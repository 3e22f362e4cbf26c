package storage

import (
	"context"
	"errors"
	"fmt"
	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"io"
	"mime/multipart"
	"path"
	"recipehub/internal/utils"
	"slices"
	"strings"
	"time"
)

var (
	AllowImage = []string{"image/png", "image/jpeg", "image/webp"}

	ErrFileTypeNotAllowed = errors.New("file type not allowed")
	ErrUnknownDriver      = errors.New("unknown storage driver")
)

// Storage is the image host used for recipe pictures.
type Storage interface {
	UploadFile(ctx context.Context, fileName string, file *multipart.FileHeader, folder string, allowTypes ...string) (string, error)
	DeleteFile(ctx context.Context, objectKey string) error
	GetPublicLinkKey(objectKey string) string
	GetObjectKeyFromLink(link string) string
}

type upload struct {
	body        []byte
	contentType string
	key         string
}

func New(ctx context.Context, cfg *utils.Config) (Storage, error) {
	switch strings.ToLower(cfg.StorageDriver) {
	case "", "s3":
		return NewAwsS3(ctx, cfg)
	case "minio":
		return NewMinIO(ctx, cfg)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownDriver, cfg.StorageDriver)
	}
}

// prepareUpload reads the file, sniffs its content type and builds the object key.
func prepareUpload(fileName string, file *multipart.FileHeader, folder string, allowTypes ...string) (upload, error) {
	src, err := file.Open()
	if err != nil {
		return upload{}, fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	body, err := io.ReadAll(src)
	if err != nil {
		return upload{}, fmt.Errorf("read upload: %w", err)
	}

	mtype := mimetype.Detect(body)
	if len(allowTypes) > 0 && !slices.ContainsFunc(allowTypes, mtype.Is) {
		return upload{}, fmt.Errorf("%w: %s", ErrFileTypeNotAllowed, mtype.String())
	}

	return upload{
		body:        body,
		contentType: mtype.String(),
		key:         objectKey(folder, fileName, mtype.Extension()),
	}, nil
}

func objectKey(folder, fileName, ext string) string {
	d := time.Now().UTC()
	name := fmt.Sprintf("%s-%s%s", fileName, uuid.New().String()[:8], ext)
	return path.Join(folder, fmt.Sprintf("%d/%02d", d.Year(), d.Month()), name)
}

func keyFromLink(base, link string) string {
	base = strings.TrimSuffix(base, "/") + "/"
	if !strings.HasPrefix(link, base) {
		return ""
	}
	return strings.TrimPrefix(link, base)
}
