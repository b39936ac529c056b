package service

import (
	"encoding/json"
	"fmt"
	"strings"
)

// extraction mirrors the JSON object requested from the model. Pointers
// distinguish absent fields from empty ones.
type extraction struct {
	Title          *string  `json:"title"`
	TimestampStart *string  `json:"timestamp_start"`
	TimestampEnd   *string  `json:"timestamp_end"`
	Location       *string  `json:"location"`
	Description    *string  `json:"description"`
	Missing        []string `json:"missing"`
}

// cleanResponse drops a surrounding markdown code fence. The fence is
// recognized only when the first line contains ```.
func cleanResponse(raw string) string {
	lines := strings.Split(strings.TrimSpace(raw), "\n")
	if len(lines) > 0 && strings.Contains(lines[0], "```") {
		if len(lines) <= 2 {
			return ""
		}
		lines = lines[1 : len(lines)-1]
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}

func parseExtraction(raw string) (*extraction, error) {
	var ex extraction
	if err := json.Unmarshal([]byte(cleanResponse(raw)), &ex); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	return &ex, nil
}

func valueOr(p *string, def string) string {
	if p == nil || strings.TrimSpace(*p) == "" {
		return def
	}
	return strings.TrimSpace(*p)
}
