package storage

import (
	"context"
	"errors"

	"feedbackservice/internal/config"
	"feedbackservice/internal/logging"

	"github.com/aws/aws-sdk-go-v2/aws"
	awshttp "github.com/aws/aws-sdk-go-v2/aws/transport/http"
	s3Config "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"go.uber.org/zap"
)

func NewS3Client(ctx context.Context, cfg *config.Config) (*s3.Client, error) {
	opts := []func(*s3Config.LoadOptions) error{
		s3Config.WithRegion(cfg.S3Region),
	}
	if cfg.S3AccessKeyID != "" {
		opts = append(opts, s3Config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(
				cfg.S3AccessKeyID,
				cfg.S3SecretAccessKey,
				"",
			),
		))
	}

	s3Cfg, err := s3Config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, err
	}
	s3Client := s3.NewFromConfig(s3Cfg, func(o *s3.Options) {
		if cfg.S3Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.S3Endpoint)
			o.UsePathStyle = true
		}
	})
	return s3Client, nil
}

// EnsureBucket creates the bucket, treating "already exists" as success.
func EnsureBucket(ctx context.Context, client *s3.Client, name string, logger *logging.Logger) error {
	_, err := client.CreateBucket(ctx, &s3.CreateBucketInput{Bucket: aws.String(name)})
	if err != nil {
		var opErr *awshttp.ResponseError
		if errors.As(err, &opErr) && opErr.HTTPStatusCode() == 409 {
			logger.Info(ctx, "Bucket already exists", zap.String("bucket", name))
			return nil
		}
	}
	return err
}
