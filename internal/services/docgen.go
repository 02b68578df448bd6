package services

import (
	"bytes"
	"strings"

	docx "github.com/fumiama/go-docx"

	"github.com/Mahesh0843/Telugu-DOCX/internal/apperrors"
)

// Nirmala UI ships with Windows and has full Telugu Unicode coverage, which
// makes it the safest default for documents opened by teachers. Size is in
// half-points: 24 renders as 12pt.
const (
	teluguFont    = "Nirmala UI"
	fontHalfPoint = "24"
)

// DocEmitter renders translated text as a Word document.
type DocEmitter struct{}

func NewDocEmitter() *DocEmitter {
	return &DocEmitter{}
}

// Render produces the .docx bytes. Each newline-delimited input line
// becomes exactly one paragraph, in input order; nothing is dropped,
// merged, or reordered.
func (e *DocEmitter) Render(text string) ([]byte, error) {
	doc := docx.New().WithDefaultTheme()

	for _, line := range strings.Split(text, "\n") {
		para := doc.AddParagraph()
		para.AddText(line).Size(fontHalfPoint).Font(teluguFont, teluguFont, teluguFont, "")
	}

	var buf bytes.Buffer
	if _, err := doc.WriteTo(&buf); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrDocumentWrite, err)
	}
	return buf.Bytes(), nil
}
