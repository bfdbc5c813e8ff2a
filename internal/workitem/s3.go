package workitem

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/goodnatureofminers/matchledger/internal/model"
	"go.uber.org/zap"
)

// S3Source reads editions from a versioned bucket. Retiring an artifact leaves
// a delete marker; requeueing removes that marker, restoring the object.
type S3Source struct {
	client  S3API
	bucket  string
	metrics Metrics
	logger  *zap.Logger
}

// NewS3Source builds an S3Source for bucket.
func NewS3Source(client S3API, bucket string, metrics Metrics, logger *zap.Logger) (*S3Source, error) {
	if bucket == "" {
		return nil, errors.New("s3 bucket is required")
	}
	if metrics == nil {
		return nil, errors.New("work item source metrics is required")
	}
	return &S3Source{
		client:  client,
		bucket:  bucket,
		metrics: metrics,
		logger:  logger.With(zap.String("bucket", bucket)),
	}, nil
}

// ListPendingEditions returns the years whose artifacts are all present in the bucket.
func (s *S3Source) ListPendingEditions(ctx context.Context) (years []string, err error) {
	started := time.Now()
	defer func() {
		s.metrics.Observe("list_pending", err, started)
	}()

	var keys []string
	input := &s3.ListObjectsV2Input{Bucket: aws.String(s.bucket)}
	for {
		out, err := s.client.ListObjectsV2(ctx, input)
		if err != nil {
			return nil, fmt.Errorf("list objects: %w", err)
		}
		for _, obj := range out.Contents {
			keys = append(keys, aws.ToString(obj.Key))
		}
		if !aws.ToBool(out.IsTruncated) || out.NextContinuationToken == nil {
			break
		}
		input.ContinuationToken = out.NextContinuationToken
	}

	return editionYears(keys), nil
}

// FetchArtifact downloads one artifact of an edition.
func (s *S3Source) FetchArtifact(ctx context.Context, year string, kind model.ArtifactKind) (data []byte, err error) {
	started := time.Now()
	defer func() {
		s.metrics.Observe("fetch_artifact", err, started)
	}()

	key := model.ArtifactKey(year, kind)
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, fmt.Errorf("get object %s: %w", key, err)
	}
	defer func() {
		if closeErr := out.Body.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close object %s: %w", key, closeErr)
		}
	}()

	data, err = io.ReadAll(out.Body)
	if err != nil {
		return nil, fmt.Errorf("read object %s: %w", key, err)
	}
	return data, nil
}

// RetireArtifact deletes the current version of an artifact.
func (s *S3Source) RetireArtifact(ctx context.Context, year string, kind model.ArtifactKind) (err error) {
	started := time.Now()
	defer func() {
		s.metrics.Observe("retire_artifact", err, started)
	}()

	key := model.ArtifactKey(year, kind)
	if _, err = s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	}); err != nil {
		return fmt.Errorf("delete object %s: %w", key, err)
	}
	s.logger.Debug("artifact retired", zap.String("key", key))
	return nil
}

// HasDeletionMarker reports whether the latest version of the artifact is a delete marker.
func (s *S3Source) HasDeletionMarker(ctx context.Context, year string, kind model.ArtifactKind) (found bool, err error) {
	started := time.Now()
	defer func() {
		s.metrics.Observe("has_deletion_marker", err, started)
	}()

	_, found, err = s.latestDeleteMarker(ctx, model.ArtifactKey(year, kind))
	return found, err
}

// Requeue removes the latest delete marker of the artifact so it is pending again.
// An artifact without a delete marker is left as is.
func (s *S3Source) Requeue(ctx context.Context, year string, kind model.ArtifactKind) (err error) {
	started := time.Now()
	defer func() {
		s.metrics.Observe("requeue_artifact", err, started)
	}()

	key := model.ArtifactKey(year, kind)
	versionID, found, err := s.latestDeleteMarker(ctx, key)
	if err != nil {
		return err
	}
	if !found {
		return nil
	}

	if _, err = s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket:    aws.String(s.bucket),
		Key:       aws.String(key),
		VersionId: aws.String(versionID),
	}); err != nil {
		return fmt.Errorf("remove delete marker of %s: %w", key, err)
	}
	s.logger.Info("artifact requeued", zap.String("key", key), zap.String("marker", versionID))
	return nil
}

func (s *S3Source) latestDeleteMarker(ctx context.Context, key string) (string, bool, error) {
	input := &s3.ListObjectVersionsInput{
		Bucket: aws.String(s.bucket),
		Prefix: aws.String(key),
	}
	for {
		out, err := s.client.ListObjectVersions(ctx, input)
		if err != nil {
			return "", false, fmt.Errorf("list object versions %s: %w", key, err)
		}
		for _, marker := range out.DeleteMarkers {
			if aws.ToString(marker.Key) == key && aws.ToBool(marker.IsLatest) {
				return aws.ToString(marker.VersionId), true, nil
			}
		}
		if !aws.ToBool(out.IsTruncated) {
			return "", false, nil
		}
		input.KeyMarker = out.NextKeyMarker
		input.VersionIdMarker = out.NextVersionIdMarker
	}
}
