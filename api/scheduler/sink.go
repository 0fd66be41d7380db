package scheduler

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/parsa000721/records/config"
	"github.com/parsa000721/records/export"
)

// ArchivePrefix is the folder (or key prefix) archives are written under
const ArchivePrefix = "archive"

// ArchiveSink stores finished archive workbooks
type ArchiveSink interface {
	Put(ctx context.Context, name string, body []byte) error
}

// DirSink writes archives into a local directory
type DirSink struct {
	dir string
}

// NewDirSink creates dir if needed
func NewDirSink(dir string) (*DirSink, error) {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("create archive dir: %w", err)
	}
	return &DirSink{dir: dir}, nil
}

// Put implements ArchiveSink
func (d *DirSink) Put(_ context.Context, name string, body []byte) error {
	return os.WriteFile(filepath.Join(d.dir, filepath.Base(name)), body, 0o640)
}

type s3PutAPI interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3Config holds the construction parameters of an S3Sink
type S3Config struct {
	Bucket    string
	Region    string
	Endpoint  string // optional; for S3 compatible servers such as MinIO
	PathStyle bool
}

// S3Sink uploads archives to an S3 bucket under ArchivePrefix
type S3Sink struct {
	client s3PutAPI
	bucket string
}

// NewS3Sink builds an S3 client from the default credential chain
func NewS3Sink(ctx context.Context, cfg S3Config) (*S3Sink, error) {
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("s3 bucket required")
	}
	region := cfg.Region
	if region == "" {
		region = "us-east-1"
	}
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}
	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.PathStyle {
			o.UsePathStyle = true
		}
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
	})
	return &S3Sink{client: client, bucket: cfg.Bucket}, nil
}

// Put implements ArchiveSink
func (s *S3Sink) Put(ctx context.Context, name string, body []byte) error {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(path.Join(ArchivePrefix, name)),
		Body:        bytes.NewReader(body),
		ContentType: aws.String(export.ContentType),
	})
	return err
}

// SinkFromConfig picks S3 when a bucket is configured and a local directory otherwise.
// The directory defaults to <STORE_PATH>/archive.
func SinkFromConfig(ctx context.Context, conf *config.Config) (ArchiveSink, error) {
	if conf.ArchiveS3Bucket != "" {
		s, err := NewS3Sink(ctx, S3Config{
			Bucket:    conf.ArchiveS3Bucket,
			Region:    conf.ArchiveS3Region,
			Endpoint:  conf.ArchiveS3Endpoint,
			PathStyle: conf.ArchiveS3PathStyle,
		})
		if err != nil {
			return nil, err
		}
		return s, nil
	}

	dir := conf.ArchiveDir
	if dir == "" {
		dir = filepath.Join(conf.StorePath, ArchivePrefix)
	}
	d, err := NewDirSink(dir)
	if err != nil {
		return nil, err
	}
	return d, nil
}
