package reload

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"sync"

	"github.com/osse101/Materials_Go/internal/event"
	"github.com/osse101/Materials_Go/internal/logger"
	"github.com/osse101/Materials_Go/internal/material"
)

// SourceReloader reloads the registry for a named trigger
type SourceReloader interface {
	ReloadFrom(ctx context.Context, source string) (*material.Registry, error)
}

// WatchJob reloads the registry when the content files change.
// It implements worker.Job and is meant to be run by a scheduler.
type WatchJob struct {
	reloader     SourceReloader
	materialsDir string
	files        []string

	mu   sync.Mutex
	last string
}

// NewWatchJob watches every material file in materialsDir plus the extra files.
// Empty paths in files are ignored.
func NewWatchJob(reloader SourceReloader, materialsDir string, files ...string) *WatchJob {
	var extra []string
	for _, f := range files {
		if f != "" {
			extra = append(extra, f)
		}
	}
	return &WatchJob{reloader: reloader, materialsDir: materialsDir, files: extra}
}

// Prime records the current content state so the first tick does not reload
func (j *WatchJob) Prime() error {
	fp, err := j.Fingerprint()
	if err != nil {
		return err
	}
	j.mu.Lock()
	j.last = fp
	j.mu.Unlock()
	logger.Info(LogMsgWatchStarted, "dir", j.materialsDir, "files", len(j.files))
	return nil
}

// Process reloads when the fingerprint moved since the last run.
// Content that fails to load is not retried until it changes again.
func (j *WatchJob) Process(ctx context.Context) error {
	fp, err := j.Fingerprint()
	if err != nil {
		return err
	}

	j.mu.Lock()
	changed := fp != j.last
	j.last = fp
	j.mu.Unlock()

	if !changed {
		return nil
	}

	logger.FromContext(ctx).Info(LogMsgContentChanged, "fingerprint", fp[:12])
	_, err = j.reloader.ReloadFrom(ctx, event.SourceWatch)
	return err
}

// Fingerprint hashes the name, size and modification time of every watched file
func (j *WatchJob) Fingerprint() (string, error) {
	paths, err := material.ContentFiles(j.materialsDir)
	if err != nil {
		return "", fmt.Errorf(ErrMsgFingerprintFailed, err)
	}
	paths = append(paths, j.files...)

	h := sha256.New()
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			return "", fmt.Errorf(ErrMsgFingerprintFailed, err)
		}
		fmt.Fprintf(h, "%s\x00%d\x00%d\n", p, info.Size(), info.ModTime().UnixNano())
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}
