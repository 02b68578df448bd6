package services

import (
	"context"
	"log/slog"
	"time"

	"cloud.google.com/go/firestore"

	"github.com/Mahesh0843/Telugu-DOCX/internal/models"
)

// Ledger records conversion jobs in Firestore. It is entirely advisory: a
// nil Ledger is valid and every method degrades to a no-op, and write
// failures are logged but never propagated into the pipeline.
type Ledger struct {
	client     *firestore.Client
	collection string
}

// NewLedger returns a Ledger, or nil when no Firestore client is
// configured.
func NewLedger(client *firestore.Client, collection string) *Ledger {
	if client == nil {
		return nil
	}
	return &Ledger{client: client, collection: collection}
}

// Open creates the initial record for a conversion and returns its ref.
func (l *Ledger) Open(ctx context.Context, originalFilename string) *firestore.DocumentRef {
	if l == nil {
		return nil
	}
	rec := models.ConversionRecord{
		OriginalFilename: originalFilename,
		Status:           models.StatusReceived,
		CreatedAt:        time.Now(),
	}
	ref, _, err := l.client.Collection(l.collection).Add(ctx, rec)
	if err != nil {
		slog.Warn("Failed to create conversion record.", "error", err)
		return nil
	}
	return ref
}

// SetStatus advances the recorded pipeline stage.
func (l *Ledger) SetStatus(ctx context.Context, ref *firestore.DocumentRef, status string) {
	l.update(ctx, ref, []firestore.Update{
		{Path: "status", Value: status},
	})
}

// Complete marks the conversion finished, with the translation status and
// the committed output URI.
func (l *Ledger) Complete(ctx context.Context, ref *firestore.DocumentRef, translationStatus, outputURI string) {
	l.update(ctx, ref, []firestore.Update{
		{Path: "status", Value: models.StatusCompleted},
		{Path: "translationStatus", Value: translationStatus},
		{Path: "outputUri", Value: outputURI},
	})
}

// Fail marks the conversion failed with its error details.
func (l *Ledger) Fail(ctx context.Context, ref *firestore.DocumentRef, errDetails string) {
	l.update(ctx, ref, []firestore.Update{
		{Path: "status", Value: models.StatusFailed},
		{Path: "errorDetails", Value: errDetails},
	})
}

func (l *Ledger) update(ctx context.Context, ref *firestore.DocumentRef, updates []firestore.Update) {
	if l == nil || ref == nil {
		return
	}
	if _, err := ref.Update(ctx, updates); err != nil {
		slog.Warn("Failed to update conversion record.", "documentId", ref.ID, "error", err)
	}
}
