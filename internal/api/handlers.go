package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Mahesh0843/Telugu-DOCX/internal/apperrors"
	"github.com/Mahesh0843/Telugu-DOCX/internal/models"
	"github.com/Mahesh0843/Telugu-DOCX/internal/services"
)

const docxContentType = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"

// Converter is the pipeline surface the HTTP layer drives.
type Converter interface {
	Convert(ctx context.Context, file *models.UploadedFile) (*services.Outcome, error)
	Release(ctx context.Context, file *models.UploadedFile)
}

type Handler struct {
	pipeline Converter
}

func NewHandler(pipeline Converter) *Handler {
	return &Handler{pipeline: pipeline}
}

func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Convert turns a staged upload into a downloadable Telugu document.
func (h *Handler) Convert(c *gin.Context) {
	file := StagedFile(c)
	if file == nil {
		c.JSON(apperrors.ErrNoFileUploaded.Status, apperrors.Response(apperrors.ErrNoFileUploaded))
		return
	}
	// The staged upload is released after the response has been written,
	// whichever path the request takes out of here.
	defer h.pipeline.Release(c.Request.Context(), file)

	outcome, err := h.pipeline.Convert(c.Request.Context(), file)
	if err != nil {
		appErr := apperrors.From(err)
		c.JSON(appErr.Status, apperrors.Response(appErr))
		return
	}

	c.Header("X-Translation-Status", string(outcome.Translation.Status))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", outcome.Filename))
	c.Data(http.StatusOK, docxContentType, outcome.Data)
}
