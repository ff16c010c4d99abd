package media

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/BruksfildServices01/caregivers-platform/internal/config"
)

type ObjectStore interface {
	Put(ctx context.Context, key, contentType string, body []byte) (string, error)
}

type S3Store struct {
	client     *s3.Client
	bucket     string
	publicBase string
}

// NewS3Store uses static credentials when AWS_ACCESS_KEY_ID is set and the
// default AWS credential chain otherwise. S3_ENDPOINT switches to
// path-style addressing for S3-compatible servers.
func NewS3Store(ctx context.Context, cfg *config.Config) (*S3Store, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.S3Region),
	}
	if cfg.AWSAccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AWSAccessKey, cfg.AWSSecretKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.S3Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.S3Endpoint)
			o.UsePathStyle = true
		}
	})

	return &S3Store{
		client:     client,
		bucket:     cfg.S3Bucket,
		publicBase: publicBase(cfg),
	}, nil
}

func (s *S3Store) Put(ctx context.Context, key, contentType string, body []byte) (string, error) {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(body),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("put s3://%s/%s: %w", s.bucket, key, err)
	}
	return s.publicBase + "/" + key, nil
}

func publicBase(cfg *config.Config) string {
	switch {
	case cfg.S3PublicBaseURL != "":
		return strings.TrimRight(cfg.S3PublicBaseURL, "/")
	case cfg.S3Endpoint != "":
		return strings.TrimRight(cfg.S3Endpoint, "/") + "/" + cfg.S3Bucket
	default:
		return fmt.Sprintf("https://%s.s3.%s.amazonaws.com", cfg.S3Bucket, cfg.S3Region)
	}
}

// Photos turns uploads into stored caregiver photos.
type Photos struct {
	store ObjectStore
}

func NewPhotos(store ObjectStore) *Photos {
	return &Photos{store: store}
}

// Upload normalizes the image and stores it under a fresh key. It returns
// the public URL of the stored object.
func (p *Photos) Upload(ctx context.Context, caregiverID uint, r io.Reader) (string, error) {
	body, err := Normalize(r)
	if err != nil {
		return "", err
	}

	key := fmt.Sprintf("caregivers/%d/%s.webp", caregiverID, uuid.NewString())
	return p.store.Put(ctx, key, "image/webp", body)
}

var _ ObjectStore = (*S3Store)(nil)
