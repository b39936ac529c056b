package model

import "time"

// Request statuses stored in the history.
const (
	StatusProcessing = "processing"
	StatusSuccess    = "success"
	StatusError      = "error"
)

// RequestRecord is one extraction attempt as stored in the request history.
// ID is generated server side for every attempt; RequestID is the
// X-Request-ID correlation value and may repeat across attempts.
type RequestRecord struct {
	ID             string     `json:"id"`
	RequestID      string     `json:"request_id"`
	CreatedAt      time.Time  `json:"created_at"`
	UserEmail      string     `json:"user_email"`
	SessionID      string     `json:"session_id"`
	SelectedText   string     `json:"selected_text"`
	TextLength     int        `json:"text_length"`
	TextWords      int        `json:"text_words"`
	CurrentDate    string     `json:"current_date"`
	Timezone       string     `json:"timezone"`
	SourceURL      string     `json:"source_url"`
	SourceIP       string     `json:"source_ip"`
	UserAgent      string     `json:"user_agent"`
	Status         string     `json:"status"`
	Prompt         string     `json:"-"`
	RawResponse    string     `json:"raw_response,omitempty"`
	ResultTitle    string     `json:"result_title,omitempty"`
	ResultLocation string     `json:"result_location,omitempty"`
	ResultStart    string     `json:"result_start,omitempty"`
	ResultEnd      string     `json:"result_end,omitempty"`
	ResultMissing  []string   `json:"result_missing,omitempty"`
	ErrorMessage   string     `json:"error_message,omitempty"`
	GeminiMS       int64      `json:"gemini_ms"`
	ProcessingMS   int64      `json:"processing_ms"`
	CompletedAt    *time.Time `json:"completed_at,omitempty"`
}
