package pictureBed

import (
	"anvaya-club/config"
	"anvaya-club/internal/global/errs"
	"bytes"
	"context"
	"path"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/gabriel-vasile/mimetype"
	"github.com/pkg/errors"
)

// S3 stores objects in an S3 compatible bucket (AWS, MinIO, R2).
type S3 struct {
	cfg      config.S3
	client   *s3.Client
	uploader *manager.Uploader
	now      func() time.Time
}

func NewS3(ctx context.Context, cfg config.S3) (*S3, error) {
	region := cfg.Region
	if region == "" {
		region = "us-east-1"
	}
	opts := []func(*awsconfig.LoadOptions) error{awsconfig.WithRegion(region)}
	if cfg.AccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretAccessKey, ""),
		))
	}
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "load aws config")
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
		o.UsePathStyle = cfg.UsePathStyle
	})
	return &S3{
		cfg:      cfg,
		client:   client,
		uploader: manager.NewUploader(client),
		now:      time.Now,
	}, nil
}

func (b *S3) key(folder, filename string) string {
	key := path.Join(strings.Trim(b.cfg.Prefix, "/"), cleanFolder(folder), objectName(filename, b.now()))
	return strings.TrimLeft(key, "/")
}

// URL builds the public address of key from base_url, falling back to the endpoint.
func (b *S3) URL(key string) string {
	base := strings.TrimRight(b.cfg.BaseURL, "/")
	if base == "" {
		base = strings.TrimRight(b.cfg.Endpoint, "/")
	}
	if base == "" {
		base = "https://" + b.cfg.Bucket + ".s3.amazonaws.com"
		return base + "/" + key
	}
	if b.cfg.UsePathStyle {
		return base + "/" + b.cfg.Bucket + "/" + key
	}
	return base + "/" + key
}

func (b *S3) Upload(ctx context.Context, in UploadInput) (*Object, error) {
	key := b.key(in.Folder, in.Filename)
	_, err := b.uploader.Upload(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(b.cfg.Bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(in.Data),
		ContentType: aws.String(mimetype.Detect(in.Data).String()),
	})
	if err != nil {
		return nil, errs.Wrap(errs.ErrExternalService, err, "Storage error: upload failed").With("key", key)
	}
	return &Object{URL: b.URL(key), RemoteID: key}, nil
}

// Delete relies on S3 treating a missing key as success.
func (b *S3) Delete(ctx context.Context, remoteID string, _ Kind) error {
	_, err := b.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(b.cfg.Bucket),
		Key:    aws.String(remoteID),
	})
	if err != nil {
		return errs.Wrap(errs.ErrExternalService, err, "Storage error: delete failed").With("key", remoteID)
	}
	return nil
}
