// Package workitem provides the sources of pending editions: each edition is a
// year with a resident and a hospital preferences artifact. Sources enumerate
// pending editions in ascending year order, retire artifacts once a block
// exists for them, and can requeue retired artifacts.
package workitem

import (
	"context"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/s3"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	S3API interface {
		ListObjectsV2(ctx context.Context, params *s3.ListObjectsV2Input, optFns ...func(*s3.Options)) (*s3.ListObjectsV2Output, error)
		GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
		DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
		ListObjectVersions(ctx context.Context, params *s3.ListObjectVersionsInput, optFns ...func(*s3.Options)) (*s3.ListObjectVersionsOutput, error)
	}
	Metrics interface {
		Observe(operation string, err error, started time.Time)
	}
)
