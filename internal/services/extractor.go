package services

import (
	"bytes"
	"context"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"github.com/Mahesh0843/Telugu-DOCX/internal/apperrors"
	"github.com/Mahesh0843/Telugu-DOCX/internal/models"
)

// FileKind is the closed set of inputs the extractor knows how to handle.
type FileKind int

const (
	KindPDF FileKind = iota
	KindImage
)

// Classify routes a staged file to PDF parsing or image OCR. Either signal
// alone selects the PDF path: declared MIME type and filename extension are
// OR-ed, neither vetoes the other.
func Classify(mimeType, filename string) FileKind {
	if mimeType == "application/pdf" || strings.EqualFold(filepath.Ext(filename), ".pdf") {
		return KindPDF
	}
	return KindImage
}

// Extractor recovers plain text from a staged PDF or image.
type Extractor struct {
	ocr *OCREngine
}

func NewExtractor(ocrLanguage string, ocrConcurrency int64) *Extractor {
	return &Extractor{
		ocr: NewOCREngine(ocrLanguage, ocrConcurrency),
	}
}

func (e *Extractor) Extract(ctx context.Context, file *models.UploadedFile) (string, error) {
	switch Classify(file.MimeType, file.OriginalFilename) {
	case KindPDF:
		slog.Info("Extracting text from PDF.", "file", file.OriginalFilename)
		return e.extractPDF(ctx, file.StagedPath)
	default:
		slog.Info("Extracting text from image via OCR.", "file", file.OriginalFilename)
		return e.ocr.Recognize(ctx, file.StagedPath)
	}
}

// extractPDF validates the binary as a PDF, then concatenates all
// recoverable text. A structurally valid PDF with no text layer (a pure
// scan) is an error here, not an empty success; the OCR path is the one
// that may legitimately return nothing.
func (e *Extractor) extractPDF(ctx context.Context, path string) (string, error) {
	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed
	if err := api.ValidateFile(path, conf); err != nil {
		return "", apperrors.Wrap(apperrors.ErrMalformedDocument, err)
	}

	f, reader, err := pdf.Open(path)
	if err != nil {
		return "", apperrors.Wrap(apperrors.ErrMalformedDocument, err)
	}
	defer f.Close()

	plain, err := reader.GetPlainText()
	if err != nil {
		return "", apperrors.Wrap(apperrors.ErrMalformedDocument, err)
	}

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(plain); err != nil {
		return "", apperrors.Wrap(apperrors.ErrMalformedDocument, err)
	}

	text := buf.String()
	if strings.TrimSpace(text) == "" {
		return "", apperrors.ErrEmptyDocument
	}
	return text, nil
}
