package services

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"

	"github.com/otiai10/gosseract/v2"
	"golang.org/x/sync/semaphore"
)

// OCREngine runs Tesseract recognition over staged images. Recognition is
// CPU-bound, so admission is bounded by a weighted semaphore: a burst of
// image uploads queues here instead of starving every other request.
type OCREngine struct {
	language string
	sem      *semaphore.Weighted
}

func NewOCREngine(language string, concurrency int64) *OCREngine {
	if concurrency <= 0 {
		concurrency = int64(runtime.NumCPU())
	}
	return &OCREngine{
		language: language,
		sem:      semaphore.NewWeighted(concurrency),
	}
}

// Recognize returns whatever text the engine recovers from the image,
// which may legitimately be empty for a blank page.
func (o *OCREngine) Recognize(ctx context.Context, imagePath string) (string, error) {
	if err := o.sem.Acquire(ctx, 1); err != nil {
		return "", fmt.Errorf("waiting for OCR slot: %w", err)
	}
	defer o.sem.Release(1)

	client := gosseract.NewClient()
	defer client.Close()

	if err := client.SetLanguage(o.language); err != nil {
		return "", fmt.Errorf("failed to set OCR language %q: %w", o.language, err)
	}
	if err := client.SetImage(imagePath); err != nil {
		return "", fmt.Errorf("failed to load image for OCR: %w", err)
	}

	slog.Info("Running OCR.", "image", imagePath, "language", o.language)
	text, err := client.Text()
	if err != nil {
		return "", fmt.Errorf("OCR recognition failed: %w", err)
	}
	slog.Info("OCR finished.", "image", imagePath, "chars", len(text))
	return text, nil
}
