package models

import "time"

// UploadedFile describes one staged upload. It is created by the upload
// middleware before the pipeline runs and owned by a single request; the
// staged copy is removed once that request's response has been written.
type UploadedFile struct {
	OriginalFilename string
	MimeType         string
	StagedPath       string
	Size             int64
}

// Conversion job statuses recorded in the ledger.
const (
	StatusReceived    = "RECEIVED"
	StatusExtracting  = "EXTRACTING"
	StatusTranslating = "TRANSLATING"
	StatusEmitting    = "EMITTING"
	StatusCompleted   = "COMPLETED"
	StatusFailed      = "FAILED"
)

// ConversionRecord is the Firestore document tracking one conversion
// request. Recording is advisory: a ledger write failure never fails the
// conversion itself.
type ConversionRecord struct {
	OriginalFilename  string    `firestore:"originalFilename,omitempty"`
	Status            string    `firestore:"status,omitempty"`
	TranslationStatus string    `firestore:"translationStatus,omitempty"`
	OutputURI         string    `firestore:"outputUri,omitempty"`
	ErrorDetails      string    `firestore:"errorDetails,omitempty"`
	CreatedAt         time.Time `firestore:"createdAt,omitempty"`
}
