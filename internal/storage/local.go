package storage

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// LocalStore stages uploads and commits outputs on the local filesystem.
// Staged names are random, committed names are timestamped by the caller,
// so concurrent requests never touch the same file.
type LocalStore struct {
	uploadDir string
	outputDir string
}

func NewLocalStore(uploadDir, outputDir string) *LocalStore {
	return &LocalStore{
		uploadDir: uploadDir,
		outputDir: outputDir,
	}
}

func (s *LocalStore) Stage(ctx context.Context, r io.Reader, originalName string) (string, error) {
	if err := os.MkdirAll(s.uploadDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create upload dir %s: %w", s.uploadDir, err)
	}

	staged := filepath.Join(s.uploadDir, uuid.NewString()+strings.ToLower(filepath.Ext(originalName)))
	dst, err := os.Create(staged)
	if err != nil {
		return "", fmt.Errorf("failed to create staged file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, r); err != nil {
		os.Remove(staged)
		return "", fmt.Errorf("failed to write staged file: %w", err)
	}
	return staged, nil
}

func (s *LocalStore) Commit(ctx context.Context, name string, data []byte) (string, error) {
	if err := os.MkdirAll(s.outputDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create output dir %s: %w", s.outputDir, err)
	}

	outputPath := filepath.Join(s.outputDir, name)
	if err := os.WriteFile(outputPath, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write output document: %w", err)
	}
	return "/output/" + name, nil
}

func (s *LocalStore) Release(ctx context.Context, stagedPath string) {
	if stagedPath == "" {
		return
	}
	if err := os.Remove(stagedPath); err != nil && !os.IsNotExist(err) {
		slog.Warn("Failed to remove staged upload.", "path", stagedPath, "error", err)
	}
}
