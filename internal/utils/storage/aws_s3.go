package storage

import (
	"bytes"
	"context"
	"fmt"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"mime/multipart"
	"recipehub/internal/utils"
	"strings"
)

type AwsS3 struct {
	client   *s3.Client
	bucket   string
	region   string
	endpoint string
}

func NewAwsS3(ctx context.Context, cfg *utils.Config) (*AwsS3, error) {
	awsCfg, err := config.LoadDefaultConfig(ctx,
		config.WithRegion(cfg.AWSS3Region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AWSAccessKey,
			cfg.AWSSecretKey,
			"",
		)),
	)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	endpoint := strings.TrimSuffix(cfg.AWSS3Endpoint, "/")
	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
			o.UsePathStyle = true
		}
	})

	return &AwsS3{
		client:   client,
		bucket:   cfg.AWSS3Bucket,
		region:   cfg.AWSS3Region,
		endpoint: endpoint,
	}, nil
}

func (s *AwsS3) UploadFile(ctx context.Context, fileName string, file *multipart.FileHeader, folder string, allowTypes ...string) (string, error) {
	up, err := prepareUpload(fileName, file, folder, allowTypes...)
	if err != nil {
		return "", err
	}

	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(up.key),
		Body:          bytes.NewReader(up.body),
		ContentType:   aws.String(up.contentType),
		ContentLength: aws.Int64(int64(len(up.body))),
	})
	if err != nil {
		return "", fmt.Errorf("s3 put object: %w", err)
	}
	return up.key, nil
}

func (s *AwsS3) DeleteFile(ctx context.Context, objectKey string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(objectKey),
	})
	if err != nil {
		return fmt.Errorf("s3 delete object: %w", err)
	}
	return nil
}

func (s *AwsS3) publicBase() string {
	if s.endpoint != "" {
		return fmt.Sprintf("%s/%s", s.endpoint, s.bucket)
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com", s.bucket, s.region)
}

func (s *AwsS3) GetPublicLinkKey(objectKey string) string {
	return s.publicBase() + "/" + objectKey
}

func (s *AwsS3) GetObjectKeyFromLink(link string) string {
	return keyFromLink(s.publicBase(), link)
}
