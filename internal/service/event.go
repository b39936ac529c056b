package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"quickcal/internal/calendar"
	"quickcal/internal/llm"
	"quickcal/internal/model"
	"quickcal/internal/repository"
	"quickcal/internal/storage"
)

var (
	ErrTextRequired      = errors.New("selected_text is required")
	ErrStartMissing      = errors.New("timestamp_start is missing from the response")
	ErrMalformedResponse = errors.New("malformed model response")
)

const (
	defaultTitle       = "Untitled Event"
	defaultDescription = "No description provided."
)

var tracer = otel.Tracer("quickcal/internal/service")

// ProcessInput is one extraction request as received from the client.
type ProcessInput struct {
	Text        string
	CurrentDate string
	Timezone    string
	SourceURL   string
	UserEmail   string
	SessionID   string
	Calendar    string

	RequestID string
	SourceIP  string
	UserAgent string
}

// EventResult is the extracted event plus the links derived from it.
type EventResult struct {
	model.Event
	GcalLink     string `json:"gcal_link"`
	OutlookLink  string `json:"outlook_link"`
	CalendarLink string `json:"calendar_link"`
	IcsLink      string `json:"ics_link,omitempty"`
	ics          []byte
}

// RequestListResult is the service-level DTO for paginated request history.
type RequestListResult struct {
	Items []model.RequestRecord `json:"data"`
	Total int                   `json:"total"`
}

// EventService defines the use cases of the relay.
type EventService interface {
	// Process turns free-form text into an event and its calendar links.
	Process(ctx context.Context, in ProcessInput) (*EventResult, error)

	// ProcessICS runs Process and also returns the event as an iCalendar file.
	ProcessICS(ctx context.Context, in ProcessInput) ([]byte, *EventResult, error)

	// RecentRequests pages through the request history, newest first.
	RecentRequests(ctx context.Context, limit, offset int) (*RequestListResult, error)
}

// Options configures the optional parts of the event service.
type Options struct {
	// Store receives generated .ics files; nil disables hosted files.
	Store         storage.Storage
	PresignExpiry time.Duration
	// Location is used to render "today" when the client sends no date.
	Location *time.Location
	Logger   logrus.FieldLogger
	Now      func() time.Time
}

type eventService struct {
	gen     llm.Generator
	history repository.RequestRepository
	store   storage.Storage
	expiry  time.Duration
	loc     *time.Location
	log     logrus.FieldLogger
	now     func() time.Time
}

// NewEventService constructs a new EventService. A nil history discards records.
func NewEventService(gen llm.Generator, history repository.RequestRepository, opts Options) EventService {
	if history == nil {
		history = repository.NopRequestRepository{}
	}
	s := &eventService{
		gen:     gen,
		history: history,
		store:   opts.Store,
		expiry:  opts.PresignExpiry,
		loc:     opts.Location,
		log:     opts.Logger,
		now:     opts.Now,
	}
	if s.loc == nil {
		s.loc = time.UTC
	}
	if s.log == nil {
		s.log = logrus.StandardLogger()
	}
	if s.now == nil {
		s.now = time.Now
	}
	if s.expiry <= 0 {
		s.expiry = 24 * time.Hour
	}
	return s
}

func (s *eventService) Process(ctx context.Context, in ProcessInput) (*EventResult, error) {
	ctx, span := tracer.Start(ctx, "EventService.Process")
	defer span.End()

	text := strings.TrimSpace(in.Text)
	if text == "" {
		return nil, ErrTextRequired
	}
	if in.RequestID == "" {
		in.RequestID = uuid.NewString()
	}
	span.SetAttributes(
		attribute.String("quickcal.request_id", in.RequestID),
		attribute.Int("quickcal.text_length", len(text)),
	)

	started := s.now()
	prompt := BuildPrompt(text, in.CurrentDate, in.Timezone, started, s.loc)
	rec := s.newRecord(in, text, prompt, started)
	s.save(ctx, rec)

	genStart := time.Now()
	raw, err := s.gen.Generate(ctx, prompt)
	rec.GeminiMS = time.Since(genStart).Milliseconds()
	rec.RawResponse = raw
	if err != nil {
		err = fmt.Errorf("gemini generate content: %w", err)
		s.fail(ctx, rec, started, err)
		span.RecordError(err)
		span.SetStatus(codes.Error, "generate content")
		return nil, err
	}

	res, err := s.buildResult(ctx, in, raw)
	if err != nil {
		s.fail(ctx, rec, started, err)
		span.RecordError(err)
		span.SetStatus(codes.Error, "extract event")
		return nil, err
	}

	rec.Status = model.StatusSuccess
	rec.ResultTitle = res.Title
	rec.ResultLocation = res.Location
	rec.ResultStart = res.TimestampStart
	rec.ResultEnd = res.TimestampEnd
	rec.ResultMissing = res.Missing
	s.complete(ctx, rec, started)

	span.SetAttributes(attribute.Int("quickcal.missing_fields", len(res.Missing)))
	return res, nil
}

func (s *eventService) ProcessICS(ctx context.Context, in ProcessInput) ([]byte, *EventResult, error) {
	res, err := s.Process(ctx, in)
	if err != nil {
		return nil, nil, err
	}
	return res.ics, res, nil
}

// RecentRequests returns paginated history without exposing repository types.
func (s *eventService) RecentRequests(ctx context.Context, limit, offset int) (*RequestListResult, error) {
	if limit <= 0 {
		limit = 10
	}
	if offset < 0 {
		offset = 0
	}

	res, err := s.history.List(ctx, repository.PageQuery{Limit: limit, Offset: offset})
	if err != nil {
		return nil, err
	}
	return &RequestListResult{Items: res.Items, Total: res.Total}, nil
}

func (s *eventService) buildResult(ctx context.Context, in ProcessInput, raw string) (*EventResult, error) {
	ex, err := parseExtraction(raw)
	if err != nil {
		return nil, err
	}
	if ex.TimestampStart == nil || strings.TrimSpace(*ex.TimestampStart) == "" {
		return nil, ErrStartMissing
	}

	start, end, err := calendar.ResolveSpan(*ex.TimestampStart, valueOr(ex.TimestampEnd, ""))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}

	missing := ex.Missing
	if missing == nil {
		missing = []string{}
	}
	ev := model.Event{
		Title:          valueOr(ex.Title, defaultTitle),
		TimestampStart: calendar.FormatTimestamp(start),
		TimestampEnd:   calendar.FormatTimestamp(end),
		Location:       valueOr(ex.Location, ""),
		Description:    valueOr(ex.Description, defaultDescription),
		Missing:        missing,
		Start:          start,
		End:            end,
	}

	ics, err := calendar.EncodeICS(ev, "quickcal-"+in.RequestID, s.now())
	if err != nil {
		return nil, err
	}

	res := &EventResult{
		Event:       ev,
		GcalLink:    calendar.GoogleLink(ev),
		OutlookLink: calendar.OutlookLink(ev),
		ics:         ics,
	}
	res.IcsLink = s.publish(ctx, in.RequestID, ics)
	res.CalendarLink = calendar.LinkFor(in.Calendar, ev, res.IcsLink, ics)
	return res, nil
}

// publish uploads the calendar file and returns a presigned link. Failures
// are logged and yield an empty link.
func (s *eventService) publish(ctx context.Context, requestID string, ics []byte) string {
	if s.store == nil {
		return ""
	}
	key := storage.NewCalendarKey()
	log := s.log.WithFields(logrus.Fields{"request_id": requestID, "object_key": key})

	if _, err := s.store.Put(ctx, storage.CalendarFile{Key: key, Body: ics, RequestID: requestID}); err != nil {
		log.WithError(err).Warn("ics upload failed")
		return ""
	}

	link, err := s.store.PresignGet(ctx, key, s.expiry)
	if err != nil {
		log.WithError(err).Warn("ics presign failed")
		if delErr := s.store.Delete(ctx, key); delErr != nil {
			log.WithError(delErr).Warn("ics cleanup failed")
		}
		return ""
	}
	return link
}
