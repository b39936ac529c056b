package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"quickcal/internal/model"
)

func (s *eventService) newRecord(in ProcessInput, text, prompt string, started time.Time) *model.RequestRecord {
	return &model.RequestRecord{
		ID:           uuid.NewString(),
		RequestID:    in.RequestID,
		CreatedAt:    started.UTC(),
		UserEmail:    orDefault(in.UserEmail, "anonymous"),
		SessionID:    orDefault(in.SessionID, "unknown"),
		SelectedText: text,
		TextLength:   len(text),
		TextWords:    len(strings.Fields(text)),
		CurrentDate:  in.CurrentDate,
		Timezone:     in.Timezone,
		SourceURL:    in.SourceURL,
		SourceIP:     in.SourceIP,
		UserAgent:    in.UserAgent,
		Status:       model.StatusProcessing,
		Prompt:       prompt,
	}
}

func (s *eventService) complete(ctx context.Context, rec *model.RequestRecord, started time.Time) {
	done := s.now().UTC()
	rec.CompletedAt = &done
	rec.ProcessingMS = done.Sub(started).Milliseconds()
	s.save(ctx, rec)

	s.log.WithFields(logrus.Fields{
		"record_id":      rec.ID,
		"request_id":     rec.RequestID,
		"status":         rec.Status,
		"text_length":    rec.TextLength,
		"text_words":     rec.TextWords,
		"timezone":       orDefault(rec.Timezone, "not-provided"),
		"gemini_ms":      rec.GeminiMS,
		"processing_ms":  rec.ProcessingMS,
		"missing_fields": rec.ResultMissing,
		"error":          rec.ErrorMessage,
	}).Info("event extraction finished")
}

func (s *eventService) fail(ctx context.Context, rec *model.RequestRecord, started time.Time, err error) {
	rec.Status = model.StatusError
	rec.ErrorMessage = err.Error()
	s.complete(ctx, rec, started)
}

// save writes rec to the history. The history is best effort: a failed
// write never fails the request.
func (s *eventService) save(ctx context.Context, rec *model.RequestRecord) {
	if err := s.history.Save(ctx, rec); err != nil {
		s.log.WithFields(logrus.Fields{
			"record_id":  rec.ID,
			"request_id": rec.RequestID,
			"status":     rec.Status,
		}).WithError(err).Warn("request history write failed")
	}
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
