package handler

import (
	"context"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"quickcal/internal/database"
	"quickcal/internal/http/middleware"
	"quickcal/internal/service"
)

// processTextRequest is the body of the extraction endpoints. The browser
// extension sends selectedText; selected_text is accepted as well.
type processTextRequest struct {
	SelectedText     string `json:"selected_text"`
	SelectedTextAlt  string `json:"selectedText"`
	CurrentDate      string `json:"currentDate"`
	Timezone         string `json:"timezone"`
	SourceURL        string `json:"sourceUrl"`
	UserEmail        string `json:"userEmail"`
	SessionID        string `json:"sessionId"`
	CalendarProvider string `json:"calendar"`
}

func (r processTextRequest) text() string {
	if r.SelectedText != "" {
		return r.SelectedText
	}
	return r.SelectedTextAlt
}

// RouteOptions toggles optional routes.
type RouteOptions struct {
	// HistoryAPI mounts GET /requests.
	HistoryAPI bool
}

// RegisterRoutes attaches HTTP routes to the provided Fiber app.
// db may be nil when the request history database is disabled.
func RegisterRoutes(app *fiber.App, db database.Pinger, eventSvc service.EventService, opts RouteOptions) {
	app.Get("/health", HealthCheck(db))
	app.Get("/healthz", Liveness())

	app.Post("/process_text", ProcessText(eventSvc))
	app.Post("/process_text/ics", ProcessTextICS(eventSvc))
	if opts.HistoryAPI {
		app.Get("/requests", ListRequests(eventSvc))
	}
}

// HealthCheck reports readiness. The database is pinged when configured.
//
// @Summary Readiness check
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 503 {object} errorPayload
// @Router /health [get]
func HealthCheck(db database.Pinger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if db != nil {
			ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
			defer cancel()
			if err := db.PingContext(ctx); err != nil {
				return writeError(c, fiber.StatusServiceUnavailable, "SERVICE_UNAVAILABLE", "dependency unavailable")
			}
		}
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "healthy"})
	}
}

// Liveness always answers 200.
//
// @Summary Liveness check
// @Tags health
// @Success 200
// @Router /healthz [get]
func Liveness() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	}
}

// ProcessText extracts an event from the selected text.
//
// @Summary Extract an event from text
// @Tags events
// @Accept json
// @Produce json
// @Param body body processTextRequest true "Selected text and client context"
// @Success 200 {object} service.EventResult
// @Failure 400 {object} errorPayload
// @Failure 500 {object} errorPayload
// @Router /process_text [post]
func ProcessText(eventSvc service.EventService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		in, err := parseProcessInput(c)
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "BAD_REQUEST", "request body must be a JSON object")
		}

		res, err := eventSvc.Process(c.UserContext(), in)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(res)
	}
}

// ProcessTextICS extracts an event and returns it as an iCalendar file.
//
// @Summary Extract an event as .ics
// @Tags events
// @Accept json
// @Produce text/calendar
// @Param body body processTextRequest true "Selected text and client context"
// @Success 200 {file} file
// @Failure 400 {object} errorPayload
// @Failure 500 {object} errorPayload
// @Router /process_text/ics [post]
func ProcessTextICS(eventSvc service.EventService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		in, err := parseProcessInput(c)
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "BAD_REQUEST", "request body must be a JSON object")
		}

		ics, _, err := eventSvc.ProcessICS(c.UserContext(), in)
		if err != nil {
			return writeServiceError(c, err)
		}

		c.Set(fiber.HeaderContentType, "text/calendar; charset=utf-8")
		c.Set(fiber.HeaderContentDisposition, `attachment; filename="event.ics"`)
		return c.Send(ics)
	}
}

// ListRequests pages through the request history.
//
// @Summary List extraction requests
// @Tags requests
// @Produce json
// @Param limit query int false "Page size" default(10)
// @Param offset query int false "Offset" default(0)
// @Success 200 {object} service.RequestListResult
// @Failure 400 {object} errorPayload
// @Failure 500 {object} errorPayload
// @Router /requests [get]
func ListRequests(eventSvc service.EventService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		limit, err := strconv.Atoi(c.Query("limit", "10"))
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_LIMIT", "invalid limit")
		}
		offset, err := strconv.Atoi(c.Query("offset", "0"))
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_OFFSET", "invalid offset")
		}

		res, err := eventSvc.RecentRequests(c.UserContext(), limit, offset)
		if err != nil {
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(res)
	}
}

// parseProcessInput decodes the body with the app's JSON decoder. An empty
// body decodes to an empty request so the text presence check answers it.
func parseProcessInput(c *fiber.Ctx) (service.ProcessInput, error) {
	var req processTextRequest
	if body := c.Body(); len(body) > 0 {
		if err := c.App().Config().JSONDecoder(body, &req); err != nil {
			return service.ProcessInput{}, err
		}
	}

	return service.ProcessInput{
		Text:        req.text(),
		CurrentDate: req.CurrentDate,
		Timezone:    req.Timezone,
		SourceURL:   req.SourceURL,
		UserEmail:   req.UserEmail,
		SessionID:   req.SessionID,
		Calendar:    req.CalendarProvider,
		RequestID:   middleware.RequestIDFromCtx(c),
		SourceIP:    c.IP(),
		UserAgent:   c.Get(fiber.HeaderUserAgent),
	}, nil
}
