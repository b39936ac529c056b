package model

import "time"

// Event is the structured calendar event extracted from free-form text.
// Timestamps use the compact UTC layout YYYYMMDDTHHMMSS.
type Event struct {
	Title          string    `json:"title"`
	TimestampStart string    `json:"timestamp_start"`
	TimestampEnd   string    `json:"timestamp_end"`
	Location       string    `json:"location"`
	Description    string    `json:"description"`
	Missing        []string  `json:"missing"`
	Start          time.Time `json:"-"`
	End            time.Time `json:"-"`
}
