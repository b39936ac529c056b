package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"google.golang.org/genai"

	"quickcal/internal/config"
)

// eventSchema constrains the model to the fields the service extracts.
var eventSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"title":           {Type: genai.TypeString},
		"timestamp_start": {Type: genai.TypeString},
		"timestamp_end":   {Type: genai.TypeString},
		"location":        {Type: genai.TypeString},
		"description":     {Type: genai.TypeString},
		"missing": {
			Type:  genai.TypeArray,
			Items: &genai.Schema{Type: genai.TypeString},
		},
	},
}

type options struct {
	transport  http.RoundTripper
	registerer prometheus.Registerer
}

// Option customizes NewGemini.
type Option func(*options)

// WithTransport replaces the outbound round tripper (otelhttp-wrapped default transport otherwise).
func WithTransport(rt http.RoundTripper) Option {
	return func(o *options) { o.transport = rt }
}

// WithRegisterer registers the upstream latency histogram on reg.
func WithRegisterer(reg prometheus.Registerer) Option {
	return func(o *options) { o.registerer = reg }
}

// Gemini is a Generator backed by the generateContent endpoint of the
// Gemini API. It is safe for concurrent use by multiple goroutines.
type Gemini struct {
	model    string
	config   *genai.GenerateContentConfig
	client   *genai.Client
	duration *prometheus.HistogramVec
}

var _ Generator = (*Gemini)(nil)

// NewGemini builds a client for cfg. A missing API key is not an error here;
// Generate reports it on every call.
func NewGemini(ctx context.Context, cfg config.GeminiConfig, opts ...Option) (*Gemini, error) {
	o := options{transport: otelhttp.NewTransport(http.DefaultTransport)}
	for _, opt := range opts {
		opt(&o)
	}

	g := &Gemini{
		model: modelName(cfg.Model),
		config: &genai.GenerateContentConfig{
			Temperature:      genai.Ptr(float32(cfg.Temperature)),
			TopP:             genai.Ptr(float32(cfg.TopP)),
			TopK:             genai.Ptr(float32(cfg.TopK)),
			MaxOutputTokens:  int32(cfg.MaxOutputTokens),
			ResponseMIMEType: "application/json",
			ResponseSchema:   eventSchema,
		},
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "gemini_request_duration_seconds",
				Help:    "Latency of generateContent calls.",
				Buckets: []float64{0.25, 0.5, 1, 2, 4, 8, 16, 32},
			},
			[]string{"outcome"},
		),
	}

	if cfg.APIKey != "" {
		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:     cfg.APIKey,
			Backend:    genai.BackendGeminiAPI,
			HTTPClient: &http.Client{Timeout: cfg.Timeout(), Transport: o.transport},
			HTTPOptions: genai.HTTPOptions{
				BaseURL:    cfg.BaseURL,
				APIVersion: "v1beta",
			},
		})
		if err != nil {
			return nil, fmt.Errorf("create genai client: %w", err)
		}
		g.client = client
	}

	if o.registerer != nil {
		if err := o.registerer.Register(g.duration); err != nil {
			return nil, fmt.Errorf("register gemini metrics: %w", err)
		}
	}

	return g, nil
}

// Generate sends prompt as a single user turn and returns the concatenated
// text parts of the first candidate.
func (g *Gemini) Generate(ctx context.Context, prompt string) (string, error) {
	if g.client == nil {
		return "", ErrAPIKeyMissing
	}

	start := time.Now()
	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), g.config)
	if err != nil {
		g.duration.WithLabelValues("error").Observe(time.Since(start).Seconds())
		if code, msg, ok := apiError(err); ok {
			return "", fmt.Errorf("gemini API error: %d - %s: %w", code, msg, err)
		}
		return "", fmt.Errorf("gemini request: %w", err)
	}
	g.duration.WithLabelValues("ok").Observe(time.Since(start).Seconds())

	return firstText(resp)
}

func apiError(err error) (int, string, bool) {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Code, apiErr.Message, true
	}
	var apiErrPtr *genai.APIError
	if errors.As(err, &apiErrPtr) && apiErrPtr != nil {
		return apiErrPtr.Code, apiErrPtr.Message, true
	}
	return 0, "", false
}

func firstText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 {
		if resp != nil && resp.PromptFeedback != nil && resp.PromptFeedback.BlockReason != "" {
			return "", fmt.Errorf("%w: prompt blocked (%s)", ErrEmptyResponse, resp.PromptFeedback.BlockReason)
		}
		return "", ErrEmptyResponse
	}

	c := resp.Candidates[0]
	if c == nil || c.Content == nil {
		if c != nil && c.FinishReason != "" {
			return "", fmt.Errorf("%w: finish reason %s", ErrEmptyResponse, c.FinishReason)
		}
		return "", ErrEmptyResponse
	}

	var b strings.Builder
	for _, p := range c.Content.Parts {
		// Thought summaries are not part of the answer.
		if p != nil && !p.Thought {
			b.WriteString(p.Text)
		}
	}
	if b.Len() == 0 {
		return "", ErrEmptyResponse
	}
	return b.String(), nil
}

func modelName(m string) string {
	m = strings.TrimSpace(m)
	if strings.HasPrefix(m, "models/") || strings.HasPrefix(m, "tunedModels/") {
		return m
	}
	return "models/" + m
}
