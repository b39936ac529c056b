package storage

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"quickcal/internal/config"
)

func TestNewMinIO_Validation(t *testing.T) {
	tests := []struct {
		name    string
		cfg     config.MinIOConfig
		wantErr string
	}{
		{
			name:    "missing endpoint",
			cfg:     config.MinIOConfig{AccessKey: "a", SecretKey: "s", Bucket: "b"},
			wantErr: "minio endpoint is required",
		},
		{
			name:    "missing credentials",
			cfg:     config.MinIOConfig{Endpoint: "localhost:9000", Bucket: "b"},
			wantErr: "minio credentials are required",
		},
		{
			name:    "missing bucket",
			cfg:     config.MinIOConfig{Endpoint: "localhost:9000", AccessKey: "a", SecretKey: "s"},
			wantErr: "minio bucket is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st, err := NewMinIO(context.Background(), tt.cfg)
			assert.Nil(t, st)
			assert.EqualError(t, err, tt.wantErr)
		})
	}
}

func TestPutOptions(t *testing.T) {
	opts := putOptions(CalendarFile{Key: "events/a.ics", Body: []byte("BEGIN:VCALENDAR"), RequestID: "req-1"})
	assert.Equal(t, "text/calendar", opts.ContentType)
	assert.Equal(t, map[string]string{"request-id": "req-1"}, opts.UserMetadata)

	opts = putOptions(CalendarFile{Key: "events/b.ics"})
	assert.Nil(t, opts.UserMetadata)
}

func TestDownloadParams(t *testing.T) {
	params := downloadParams("events/1f2e.ics")
	assert.Equal(t, `attachment; filename="event-1f2e.ics"`, params.Get("response-content-disposition"))
	assert.Equal(t, "text/calendar", params.Get("response-content-type"))
}

func TestNewCalendarKey(t *testing.T) {
	a, b := NewCalendarKey(), NewCalendarKey()
	assert.NotEqual(t, a, b)
	assert.True(t, strings.HasPrefix(a, "events/"))
	assert.True(t, strings.HasSuffix(a, ".ics"))
}
