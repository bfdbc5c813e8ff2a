package workitem

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/goodnatureofminers/matchledger/internal/model"
	"go.uber.org/zap"
)

const (
	pendingDir = "pending"
	retiredDir = "retired"
)

// FSSource keeps artifacts under root/pending and moves them to root/retired on
// retirement. A file present in root/retired plays the role of a delete marker.
type FSSource struct {
	root    string
	metrics Metrics
	logger  *zap.Logger
}

// NewFSSource prepares the pending and retired directories under root.
func NewFSSource(root string, metrics Metrics, logger *zap.Logger) (*FSSource, error) {
	if root == "" {
		return nil, errors.New("work item root directory is required")
	}
	if metrics == nil {
		return nil, errors.New("work item source metrics is required")
	}
	for _, dir := range []string{pendingDir, retiredDir} {
		if err := os.MkdirAll(filepath.Join(root, dir), 0o755); err != nil {
			return nil, fmt.Errorf("create %s dir: %w", dir, err)
		}
	}
	return &FSSource{
		root:    root,
		metrics: metrics,
		logger:  logger.With(zap.String("root", root)),
	}, nil
}

func (s *FSSource) ListPendingEditions(ctx context.Context) (years []string, err error) {
	started := time.Now()
	defer func() {
		s.metrics.Observe("list_pending", err, started)
	}()

	if err = ctx.Err(); err != nil {
		return nil, err
	}
	entries, err := os.ReadDir(filepath.Join(s.root, pendingDir))
	if err != nil {
		return nil, fmt.Errorf("read pending dir: %w", err)
	}

	keys := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.Type().IsRegular() {
			keys = append(keys, e.Name())
		}
	}
	return editionYears(keys), nil
}

func (s *FSSource) FetchArtifact(ctx context.Context, year string, kind model.ArtifactKind) (data []byte, err error) {
	started := time.Now()
	defer func() {
		s.metrics.Observe("fetch_artifact", err, started)
	}()

	if err = ctx.Err(); err != nil {
		return nil, err
	}
	key := model.ArtifactKey(year, kind)
	data, err = os.ReadFile(s.path(pendingDir, key))
	if err != nil {
		return nil, fmt.Errorf("read artifact %s: %w", key, err)
	}
	return data, nil
}

func (s *FSSource) RetireArtifact(ctx context.Context, year string, kind model.ArtifactKind) (err error) {
	started := time.Now()
	defer func() {
		s.metrics.Observe("retire_artifact", err, started)
	}()

	if err = ctx.Err(); err != nil {
		return err
	}
	key := model.ArtifactKey(year, kind)
	if err = os.Rename(s.path(pendingDir, key), s.path(retiredDir, key)); err != nil {
		return fmt.Errorf("retire artifact %s: %w", key, err)
	}
	s.logger.Debug("artifact retired", zap.String("key", key))
	return nil
}

func (s *FSSource) HasDeletionMarker(ctx context.Context, year string, kind model.ArtifactKind) (found bool, err error) {
	started := time.Now()
	defer func() {
		s.metrics.Observe("has_deletion_marker", err, started)
	}()

	if err = ctx.Err(); err != nil {
		return false, err
	}
	_, err = os.Stat(s.path(retiredDir, model.ArtifactKey(year, kind)))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, fs.ErrNotExist):
		return false, nil
	default:
		return false, fmt.Errorf("stat retired artifact: %w", err)
	}
}

// Requeue moves a retired artifact back to pending. Missing retired files are ignored.
func (s *FSSource) Requeue(ctx context.Context, year string, kind model.ArtifactKind) (err error) {
	started := time.Now()
	defer func() {
		s.metrics.Observe("requeue_artifact", err, started)
	}()

	if err = ctx.Err(); err != nil {
		return err
	}
	key := model.ArtifactKey(year, kind)
	err = os.Rename(s.path(retiredDir, key), s.path(pendingDir, key))
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("requeue artifact %s: %w", key, err)
	}
	s.logger.Info("artifact requeued", zap.String("key", key))
	return nil
}

func (s *FSSource) path(dir, key string) string {
	return filepath.Join(s.root, dir, key)
}
