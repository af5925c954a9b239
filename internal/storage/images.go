package storage

import (
	"context"
	"path"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/appsalute/clinic-booking/internal/config"
)

// ImageResolver turns a doctor's stored image path into the URL clients load.
type ImageResolver interface {
	Resolve(ctx context.Context, imagePath string) (string, error)
}

// NewImageResolver presigns from S3 when a bucket is configured and serves stored paths otherwise.
func NewImageResolver(cfg *config.Config) ImageResolver {
	if cfg.S3Bucket == "" {
		return LocalResolver{}
	}
	return NewS3Resolver(cfg)
}

type LocalResolver struct{}

func (LocalResolver) Resolve(_ context.Context, imagePath string) (string, error) {
	return imagePath, nil
}

type S3Resolver struct {
	presign *s3.PresignClient
	bucket  string
	prefix  string
	ttl     time.Duration
}

func NewS3Resolver(cfg *config.Config) *S3Resolver {
	opts := s3.Options{
		Region: cfg.S3Region,
		Credentials: aws.NewCredentialsCache(
			credentials.NewStaticCredentialsProvider(cfg.S3AccessKey, cfg.S3SecretKey, ""),
		),
	}
	if cfg.S3Endpoint != "" {
		opts.BaseEndpoint = aws.String(cfg.S3Endpoint)
		opts.UsePathStyle = true
	}

	return &S3Resolver{
		presign: s3.NewPresignClient(s3.New(opts)),
		bucket:  cfg.S3Bucket,
		prefix:  cfg.S3Prefix,
		ttl:     cfg.PresignTTL(),
	}
}

// Resolve presigns a GET for <prefix><basename>. Signing is local; no request is sent.
func (r *S3Resolver) Resolve(ctx context.Context, imagePath string) (string, error) {
	key := r.prefix + path.Base(imagePath)

	req, err := r.presign.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(r.bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(r.ttl))
	if err != nil {
		return "", err
	}
	return req.URL, nil
}
