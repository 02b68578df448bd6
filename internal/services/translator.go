package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"

	"github.com/Mahesh0843/Telugu-DOCX/internal/gcp"
)

// TranslationStatus tags how the translated text was produced.
type TranslationStatus string

const (
	// TranslationOK means the text is a genuine Gemini translation.
	TranslationOK TranslationStatus = "translated"
	// TranslationDegraded means the original text was passed through
	// untranslated, typically because no credential is configured.
	TranslationDegraded TranslationStatus = "degraded"
	// TranslationFailed means the service call failed; Text still carries
	// the original extracted content so the document is never lost.
	TranslationFailed TranslationStatus = "failed"
)

// TranslationResult is the tagged outcome of one translation attempt.
// Failures are data, not errors: the orchestrator always has text to emit.
type TranslationResult struct {
	Status TranslationStatus
	Text   string
	Reason string
}

// contentGenerator is the slice of *genai.GenerativeModel the translator
// needs, split out so tests can substitute the model call.
type contentGenerator interface {
	GenerateContent(ctx context.Context, parts ...genai.Part) (*genai.GenerateContentResponse, error)
}

// Translator sends extracted text to Gemini wrapped in the fixed
// formatting-preserving prompt.
type Translator struct {
	model   contentGenerator
	timeout time.Duration
}

// NewTranslator builds a Translator. A nil model is allowed and selects the
// degraded pass-through path.
func NewTranslator(model *gcp.GeminiModel, timeout time.Duration) *Translator {
	t := &Translator{timeout: timeout}
	if model != nil {
		t.model = model.Model
	}
	return t
}

func (t *Translator) Translate(ctx context.Context, text string) TranslationResult {
	if text == "" {
		return TranslationResult{Status: TranslationOK, Text: ""}
	}

	if t.model == nil {
		slog.Warn("GEMINI_API_KEY not set; returning original text untranslated.")
		return TranslationResult{
			Status: TranslationDegraded,
			Text:   text,
			Reason: "translation credential not configured",
		}
	}

	callCtx := ctx
	if t.timeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, t.timeout)
		defer cancel()
	}

	prompt := fmt.Sprintf(gcp.TranslationPrompt, text)
	resp, err := t.model.GenerateContent(callCtx, genai.Text(prompt))
	if err != nil {
		reason := err.Error()
		if errors.Is(err, context.DeadlineExceeded) {
			reason = fmt.Sprintf("translation timed out after %s", t.timeout)
		}
		slog.Error("Translation failed; keeping original text.", "error", err)
		return TranslationResult{Status: TranslationFailed, Text: text, Reason: reason}
	}

	translated := extractResponseText(resp)
	if translated == "" {
		slog.Error("Gemini returned no text; keeping original text.")
		return TranslationResult{Status: TranslationFailed, Text: text, Reason: "model returned no text"}
	}

	slog.Info("Translation successful.", "chars", len(translated))
	return TranslationResult{Status: TranslationOK, Text: translated}
}

// extractResponseText concatenates all text parts of the first candidate
// and trims surrounding whitespace.
func extractResponseText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}

	var b strings.Builder
	var textParts int
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			b.WriteString(string(txt))
			textParts++
		}
	}
	if textParts > 1 {
		slog.Warn("Gemini response contained multiple text parts; they have been concatenated.", "parts", textParts)
	}
	return strings.TrimSpace(b.String())
}
