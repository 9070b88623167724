package media

import (
	"bytes"
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/ehihameneromosele/fullblog2c/metal/env"
)

// Uploader stores media somewhere durable and returns its public URL.
type Uploader interface {
	Upload(ctx context.Context, media *Media) (string, error)
}

type S3Store struct {
	client *s3.Client
	bucket string
	region string
}

func MakeS3Store(ctx context.Context, s3Env env.S3Environment) (*S3Store, error) {
	cfg, err := awsconfig.LoadDefaultConfig(
		ctx,
		awsconfig.WithRegion(s3Env.Region),
		awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(s3Env.AccessKeyID, s3Env.SecretAccessKey, ""),
		),
	)

	if err != nil {
		return nil, fmt.Errorf("issue loading the aws config: %w", err)
	}

	return &S3Store{
		client: s3.NewFromConfig(cfg),
		bucket: s3Env.Bucket,
		region: s3Env.Region,
	}, nil
}

func (s *S3Store) Upload(ctx context.Context, media *Media) (string, error) {
	key := media.Key(PostsPrefix)

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(media.data),
		ContentType: aws.String(media.ContentType()),
	})

	if err != nil {
		return "", fmt.Errorf("issue uploading [%s] to s3: %w", key, err)
	}

	return s.URLFor(key), nil
}

func (s *S3Store) URLFor(key string) string {
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.region, key)
}
