package gateway

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	appconfig "github.com/documenta/docuflow/internal/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

type s3Gateway struct {
	presigner *s3.PresignClient
	bucket    string
	expiry    time.Duration
	logger    *slog.Logger
}

// New creates an S3-backed gateway from the storage configuration.
// With an endpoint configured it targets an S3-compatible local stack
// using path-style addressing and static credentials; otherwise it uses
// the default AWS credential chain.
func New(ctx context.Context, cfg *appconfig.StorageConfig, logger *slog.Logger) (System, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.Region),
	}

	if cfg.AccessKeyID != "" && cfg.SecretAccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})

	return &s3Gateway{
		presigner: s3.NewPresignClient(client),
		bucket:    cfg.Bucket,
		expiry:    cfg.URLExpiryDuration(),
		logger:    logger.With("system", "gateway"),
	}, nil
}

func (g *s3Gateway) PresignUpload(ctx context.Context, key, contentType string) (string, error) {
	req, err := g.presigner.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(g.bucket),
		Key:         aws.String(key),
		ContentType: aws.String(contentType),
	}, s3.WithPresignExpires(g.expiry))
	if err != nil {
		return "", fmt.Errorf("presign put object: %w", err)
	}

	g.logger.Debug("upload url issued", "key", key, "expiry", g.expiry)
	return req.URL, nil
}

func (g *s3Gateway) PresignDownload(ctx context.Context, key string) (string, error) {
	req, err := g.presigner.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(g.bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(g.expiry))
	if err != nil {
		return "", fmt.Errorf("presign get object: %w", err)
	}

	g.logger.Debug("download url issued", "key", key, "expiry", g.expiry)
	return req.URL, nil
}
