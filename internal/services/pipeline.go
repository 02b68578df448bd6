package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/Mahesh0843/Telugu-DOCX/internal/apperrors"
	"github.com/Mahesh0843/Telugu-DOCX/internal/models"
	"github.com/Mahesh0843/Telugu-DOCX/internal/storage"
)

// TextExtractor recovers source text from a staged upload.
type TextExtractor interface {
	Extract(ctx context.Context, file *models.UploadedFile) (string, error)
}

// TextTranslator produces the tagged translation outcome for raw text.
type TextTranslator interface {
	Translate(ctx context.Context, text string) TranslationResult
}

// DocumentRenderer serializes text into document bytes.
type DocumentRenderer interface {
	Render(text string) ([]byte, error)
}

// Outcome is the successful result of one conversion.
type Outcome struct {
	Filename    string
	Data        []byte
	URI         string
	Translation TranslationResult
}

// Pipeline sequences one conversion request: extract, translate, render,
// commit. Stages run strictly in order; nothing is shared between requests
// beyond the store, which only ever sees disjoint names.
type Pipeline struct {
	extractor  TextExtractor
	translator TextTranslator
	emitter    DocumentRenderer
	store      storage.Store
	ledger     *Ledger

	now func() time.Time
}

func NewPipeline(extractor TextExtractor, translator TextTranslator, emitter DocumentRenderer, store storage.Store, ledger *Ledger) *Pipeline {
	return &Pipeline{
		extractor:  extractor,
		translator: translator,
		emitter:    emitter,
		store:      store,
		ledger:     ledger,
		now:        time.Now,
	}
}

// Convert runs one conversion end to end. The staged upload stays the
// caller's to Release once the response has been written.
func (p *Pipeline) Convert(ctx context.Context, file *models.UploadedFile) (*Outcome, error) {
	if file == nil || file.StagedPath == "" {
		return nil, apperrors.ErrNoFileUploaded
	}

	logCtx := slog.With("file", file.OriginalFilename)
	logCtx.Info("Processing file.", "mimeType", file.MimeType, "size", file.Size)
	ref := p.ledger.Open(ctx, file.OriginalFilename)

	p.ledger.SetStatus(ctx, ref, models.StatusExtracting)
	text, err := p.extractor.Extract(ctx, file)
	if err != nil {
		logCtx.Error("Extraction failed.", "error", err)
		p.ledger.Fail(ctx, ref, fmt.Sprintf("extraction failed: %v", err))
		return nil, err
	}

	p.ledger.SetStatus(ctx, ref, models.StatusTranslating)
	logCtx.Info("Translating to Telugu.")
	result := p.translator.Translate(ctx, text)
	if result.Status != TranslationOK {
		logCtx.Warn("Emitting without a clean translation.", "translationStatus", string(result.Status), "reason", result.Reason)
	}

	p.ledger.SetStatus(ctx, ref, models.StatusEmitting)
	data, err := p.emitter.Render(result.Text)
	if err != nil {
		logCtx.Error("Document rendering failed.", "error", err)
		p.ledger.Fail(ctx, ref, fmt.Sprintf("document rendering failed: %v", err))
		return nil, err
	}

	name := fmt.Sprintf("translated_%d.docx", p.now().UnixMilli())
	uri, err := p.store.Commit(ctx, name, data)
	if err != nil {
		logCtx.Error("Failed to commit output document.", "error", err)
		p.ledger.Fail(ctx, ref, fmt.Sprintf("output commit failed: %v", err))
		return nil, apperrors.Wrap(apperrors.ErrDocumentWrite, err)
	}

	p.ledger.Complete(ctx, ref, string(result.Status), uri)
	logCtx.Info("Conversion complete.", "output", uri)
	return &Outcome{
		Filename:    name,
		Data:        data,
		URI:         uri,
		Translation: result,
	}, nil
}

// Release removes the staged upload. A missing staged file is tolerated
// silently; Release is safe to call on any exit path.
func (p *Pipeline) Release(ctx context.Context, file *models.UploadedFile) {
	if file == nil {
		return
	}
	p.store.Release(ctx, file.StagedPath)
}
