package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Mahesh0843/Telugu-DOCX/internal/apperrors"
	"github.com/Mahesh0843/Telugu-DOCX/internal/models"
	"github.com/Mahesh0843/Telugu-DOCX/internal/storage"
)

const uploadedFileKey = "uploadedFile"

// CORSMiddleware allows the configured frontend origin, or any origin when
// none is configured.
func CORSMiddleware(allowedOrigin string) gin.HandlerFunc {
	if allowedOrigin == "" {
		allowedOrigin = "*"
	}
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", allowedOrigin)
		c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}

// UploadMiddleware stages the multipart "file" field through the store and
// hands the staged triple to the handler via the request context. A request
// without a file passes through untouched; the converter enforces the
// missing-file precondition itself. An upload beyond the size limit is
// rejected here with 413 so it is not misreported as a missing file.
func UploadMiddleware(store storage.Store, maxSize int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if maxSize > 0 {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxSize)
		}

		fileHeader, err := c.FormFile("file")
		if err != nil {
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				c.AbortWithStatusJSON(apperrors.ErrFileTooLarge.Status,
					apperrors.Response(apperrors.ErrFileTooLarge))
				return
			}
			c.Next()
			return
		}

		src, err := fileHeader.Open()
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError,
				apperrors.Response(apperrors.Wrap(apperrors.ErrInternal, err)))
			return
		}
		defer src.Close()

		stagedPath, err := store.Stage(c.Request.Context(), src, fileHeader.Filename)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError,
				apperrors.Response(apperrors.Wrap(apperrors.ErrInternal, err)))
			return
		}

		c.Set(uploadedFileKey, &models.UploadedFile{
			OriginalFilename: fileHeader.Filename,
			MimeType:         fileHeader.Header.Get("Content-Type"),
			StagedPath:       stagedPath,
			Size:             fileHeader.Size,
		})
		c.Next()
	}
}

// StagedFile returns the upload staged by UploadMiddleware, or nil.
func StagedFile(c *gin.Context) *models.UploadedFile {
	v, ok := c.Get(uploadedFileKey)
	if !ok {
		return nil
	}
	file, ok := v.(*models.UploadedFile)
	if !ok {
		return nil
	}
	return file
}
