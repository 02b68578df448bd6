package services

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/Mahesh0843/Telugu-DOCX/internal/apperrors"
	"github.com/Mahesh0843/Telugu-DOCX/internal/models"
)

type fakeExtractor struct {
	text string
	err  error
}

func (f *fakeExtractor) Extract(ctx context.Context, file *models.UploadedFile) (string, error) {
	return f.text, f.err
}

type fakeTranslator struct {
	result TranslationResult
}

func (f *fakeTranslator) Translate(ctx context.Context, text string) TranslationResult {
	if f.result.Text == "" && f.result.Status == "" {
		return TranslationResult{Status: TranslationOK, Text: text}
	}
	return f.result
}

type fakeRenderer struct {
	data   []byte
	err    error
	called int
}

func (f *fakeRenderer) Render(text string) ([]byte, error) {
	f.called++
	return f.data, f.err
}

type fakeStore struct {
	committed []string
	released  []string
	commitErr error
}

func (f *fakeStore) Stage(ctx context.Context, r io.Reader, originalName string) (string, error) {
	return "staged/" + originalName, nil
}

func (f *fakeStore) Commit(ctx context.Context, name string, data []byte) (string, error) {
	if f.commitErr != nil {
		return "", f.commitErr
	}
	f.committed = append(f.committed, name)
	return "/output/" + name, nil
}

func (f *fakeStore) Release(ctx context.Context, stagedPath string) {
	f.released = append(f.released, stagedPath)
}

func stagedUpload() *models.UploadedFile {
	return &models.UploadedFile{
		OriginalFilename: "exam.pdf",
		MimeType:         "application/pdf",
		StagedPath:       "uploads/abc.pdf",
		Size:             1024,
	}
}

func newTestPipeline(ex TextExtractor, tr TextTranslator, re DocumentRenderer, st *fakeStore) *Pipeline {
	return NewPipeline(ex, tr, re, st, nil)
}

func TestConvertSuccess(t *testing.T) {
	store := &fakeStore{}
	renderer := &fakeRenderer{data: []byte("docx bytes")}
	p := newTestPipeline(&fakeExtractor{text: "1. What is a pendulum? 2M"}, &fakeTranslator{}, renderer, store)

	outcome, err := p.Convert(context.Background(), stagedUpload())
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}
	if string(outcome.Data) != "docx bytes" {
		t.Errorf("outcome data = %q, want the rendered bytes", outcome.Data)
	}
	if !strings.HasPrefix(outcome.Filename, "translated_") || !strings.HasSuffix(outcome.Filename, ".docx") {
		t.Errorf("filename = %q, want translated_<timestamp>.docx", outcome.Filename)
	}
	if len(store.committed) != 1 {
		t.Errorf("commit count = %d, want exactly one", len(store.committed))
	}
	if outcome.Translation.Status != TranslationOK {
		t.Errorf("translation status = %q, want %q", outcome.Translation.Status, TranslationOK)
	}
}

func TestConvertNilFileIsNoFileUploaded(t *testing.T) {
	p := newTestPipeline(&fakeExtractor{}, &fakeTranslator{}, &fakeRenderer{}, &fakeStore{})

	_, err := p.Convert(context.Background(), nil)
	if !errors.Is(err, apperrors.ErrNoFileUploaded) {
		t.Errorf("expected NO_FILE_UPLOADED, got %v", err)
	}
}

func TestConvertExtractionFailureSkipsEmission(t *testing.T) {
	store := &fakeStore{}
	renderer := &fakeRenderer{data: []byte("unused")}
	p := newTestPipeline(&fakeExtractor{err: apperrors.ErrEmptyDocument}, &fakeTranslator{}, renderer, store)

	_, err := p.Convert(context.Background(), stagedUpload())
	if !errors.Is(err, apperrors.ErrEmptyDocument) {
		t.Fatalf("expected EMPTY_DOCUMENT, got %v", err)
	}
	if renderer.called != 0 {
		t.Error("no document may be rendered when extraction fails")
	}
	if len(store.committed) != 0 {
		t.Error("no document may be committed when extraction fails")
	}
}

func TestConvertDegradedTranslationStillEmits(t *testing.T) {
	store := &fakeStore{}
	original := "1. What is a pendulum? 2M"
	p := newTestPipeline(
		&fakeExtractor{text: original},
		&fakeTranslator{result: TranslationResult{Status: TranslationDegraded, Text: original, Reason: "no credential"}},
		&fakeRenderer{data: []byte("docx bytes")},
		store,
	)

	outcome, err := p.Convert(context.Background(), stagedUpload())
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}
	if outcome.Translation.Status != TranslationDegraded {
		t.Errorf("translation status = %q, want %q", outcome.Translation.Status, TranslationDegraded)
	}
	if len(store.committed) != 1 {
		t.Error("degraded translation must still produce a document")
	}
}

func TestConvertCommitFailureIsDocumentWriteError(t *testing.T) {
	store := &fakeStore{commitErr: errors.New("disk full")}
	p := newTestPipeline(&fakeExtractor{text: "text"}, &fakeTranslator{}, &fakeRenderer{data: []byte("x")}, store)

	_, err := p.Convert(context.Background(), stagedUpload())
	if !errors.Is(err, apperrors.ErrDocumentWrite) {
		t.Errorf("expected DOCUMENT_WRITE_ERROR, got %v", err)
	}
}

func TestConvertTwiceYieldsDistinctFilenames(t *testing.T) {
	store := &fakeStore{}
	p := newTestPipeline(&fakeExtractor{text: "text"}, &fakeTranslator{}, &fakeRenderer{data: []byte("x")}, store)

	base := time.Now()
	tick := 0
	p.now = func() time.Time {
		tick++
		return base.Add(time.Duration(tick) * time.Millisecond)
	}

	first, err := p.Convert(context.Background(), stagedUpload())
	if err != nil {
		t.Fatalf("first Convert: %v", err)
	}
	second, err := p.Convert(context.Background(), stagedUpload())
	if err != nil {
		t.Fatalf("second Convert: %v", err)
	}
	if first.Filename == second.Filename {
		t.Errorf("both conversions produced %q, want distinct names", first.Filename)
	}
}

func TestReleaseDelegatesToStoreOnce(t *testing.T) {
	store := &fakeStore{}
	p := newTestPipeline(&fakeExtractor{}, &fakeTranslator{}, &fakeRenderer{}, store)

	file := stagedUpload()
	p.Release(context.Background(), file)
	if len(store.released) != 1 || store.released[0] != file.StagedPath {
		t.Errorf("released = %v, want exactly the staged path", store.released)
	}

	p.Release(context.Background(), nil)
	if len(store.released) != 1 {
		t.Error("releasing a nil file must be a no-op")
	}
}
