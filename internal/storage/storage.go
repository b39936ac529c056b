// Package storage keeps generated .ics files in an S3-compatible bucket so
// clients can fetch them through short-lived links.
package storage

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// CalendarContentType is served with every uploaded event file.
const CalendarContentType = "text/calendar"

const calendarPrefix = "events/"

// CalendarFile is one rendered event headed for the bucket.
type CalendarFile struct {
	Key       string
	Body      []byte
	RequestID string
}

// StoredFile is what the bucket reports after an upload.
type StoredFile struct {
	Key  string
	Size int64
	ETag string
}

// Storage is the bucket behind hosted .ics links.
type Storage interface {
	Put(ctx context.Context, f CalendarFile) (StoredFile, error)
	Delete(ctx context.Context, key string) error
	// PresignGet returns a download URL that stops working after expiry.
	PresignGet(ctx context.Context, key string, expiry time.Duration) (string, error)
}

// NewCalendarKey returns a fresh, unguessable object key for an event file.
func NewCalendarKey() string {
	return calendarPrefix + uuid.NewString() + ".ics"
}
