package gcp

import (
	"context"
	"fmt"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// TranslationPrompt wraps the extracted text with the translation
// constraints. The formatting rules are strict on purpose: the output has to
// drop into an exam paper unchanged, so numbering, mark annotations and
// spacing must survive translation byte for byte.
const TranslationPrompt = `You are a professional Telugu school textbook translator for 10th Class Andhra Pradesh State Board Physical Science (Physics + Chemistry).

**Context:**
You are translating questions exactly as they appear in the textbook/exam format.

**Strict Instructions:**
1. Translate ONLY the provided questions from English to Telugu.
2. Use precise, standard technical terminology appropriate for 10th-grade Physical Science.
3. PRESERVE ALL ORIGINAL FORMATTING exactly: question numbers (1., 2., a., b., i., ii.), marks (2M, 5M, 10M), bullet points, spacing, and any special symbols.
4. DO NOT add any extra text, explanations, instructions, headers, or comments.
5. DO NOT modify the structure, intent, or meaning of any questions.
6. Your output must contain ONLY the translated Telugu questions, nothing else.
7. If the input contains non-question content, extract and translate ONLY the question sections.

**Text to translate:**
%s`

// GeminiModel bundles a configured generative model with the client that
// owns it, so callers can close both together.
type GeminiModel struct {
	Model *genai.GenerativeModel

	baseClient *genai.Client
}

// NewGeminiModel creates a Gemini client authenticated by API key and
// returns the named generative model ready for use.
func NewGeminiModel(ctx context.Context, apiKey, modelName string) (*GeminiModel, error) {
	if apiKey == "" || modelName == "" {
		return nil, fmt.Errorf("NewGeminiModel: apiKey and modelName cannot be empty")
	}

	baseClient, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("genai.NewClient: %w", err)
	}

	return &GeminiModel{
		Model:      baseClient.GenerativeModel(modelName),
		baseClient: baseClient,
	}, nil
}

func (g *GeminiModel) Close() error {
	if g.baseClient != nil {
		return g.baseClient.Close()
	}
	return nil
}
