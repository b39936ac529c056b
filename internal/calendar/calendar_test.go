package calendar

import (
	"bytes"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/emersion/go-ical"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quickcal/internal/model"
)

func sampleEvent() model.Event {
	start := time.Date(2025, 8, 25, 18, 0, 0, 0, time.UTC)
	return model.Event{
		Title:          "Team meeting & planning",
		TimestampStart: "20250825T180000",
		TimestampEnd:   "20250825T190000",
		Location:       "Conference Room A",
		Description:    "Weekly sync. Agenda at https://example.com/a?b=c",
		Start:          start,
		End:            start.Add(time.Hour),
	}
}

func TestParseTimestamp(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    time.Time
		wantErr bool
	}{
		{name: "plain", in: "20250825T180000", want: time.Date(2025, 8, 25, 18, 0, 0, 0, time.UTC)},
		{name: "zulu suffix", in: "20250825T180000Z", want: time.Date(2025, 8, 25, 18, 0, 0, 0, time.UTC)},
		{name: "surrounding spaces", in: " 20251231T235959 ", want: time.Date(2025, 12, 31, 23, 59, 59, 0, time.UTC)},
		{name: "iso layout rejected", in: "2025-08-25T18:00:00", wantErr: true},
		{name: "empty", in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseTimestamp(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got))
			assert.Equal(t, time.UTC, got.Location())
		})
	}
}

func TestFormatTimestamp(t *testing.T) {
	loc := time.FixedZone("EST", -5*3600)
	assert.Equal(t, "20250825T180000", FormatTimestamp(time.Date(2025, 8, 25, 13, 0, 0, 0, loc)))
}

func TestResolveSpan(t *testing.T) {
	start := time.Date(2025, 8, 25, 18, 0, 0, 0, time.UTC)

	t.Run("explicit end", func(t *testing.T) {
		s, e, err := ResolveSpan("20250825T180000", "20250825T203000")
		require.NoError(t, err)
		assert.Equal(t, start, s)
		assert.Equal(t, start.Add(150*time.Minute), e)
	})

	t.Run("missing end defaults to one hour", func(t *testing.T) {
		_, e, err := ResolveSpan("20250825T180000", "")
		require.NoError(t, err)
		assert.Equal(t, start.Add(time.Hour), e)
	})

	t.Run("end before start defaults to one hour", func(t *testing.T) {
		_, e, err := ResolveSpan("20250825T180000", "20250825T170000")
		require.NoError(t, err)
		assert.Equal(t, start.Add(time.Hour), e)
	})

	t.Run("bad start", func(t *testing.T) {
		_, _, err := ResolveSpan("tomorrow", "")
		assert.Error(t, err)
	})
}

func TestGoogleLink(t *testing.T) {
	link := GoogleLink(sampleEvent())

	u, err := url.Parse(link)
	require.NoError(t, err)
	assert.Equal(t, "www.google.com", u.Host)
	assert.Equal(t, "/calendar/render", u.Path)

	q := u.Query()
	assert.Equal(t, "TEMPLATE", q.Get("action"))
	assert.Equal(t, "Team meeting & planning", q.Get("text"))
	assert.Equal(t, "20250825T180000Z/20250825T190000Z", q.Get("dates"))
	assert.Equal(t, "Conference Room A", q.Get("location"))
	assert.Equal(t, "Weekly sync. Agenda at https://example.com/a?b=c", q.Get("details"))
	assert.True(t, strings.HasPrefix(u.RawQuery, "action=TEMPLATE&text="))
}

func TestOutlookLink(t *testing.T) {
	u, err := url.Parse(OutlookLink(sampleEvent()))
	require.NoError(t, err)

	q := u.Query()
	assert.Equal(t, "outlook.live.com", u.Host)
	assert.Equal(t, "Team meeting & planning", q.Get("subject"))
	assert.Equal(t, "2025-08-25T18:00:00Z", q.Get("startdt"))
	assert.Equal(t, "2025-08-25T19:00:00Z", q.Get("enddt"))
	assert.Equal(t, "/calendar/action/compose", q.Get("path"))
	assert.Equal(t, "addevent", q.Get("rru"))
	assert.Equal(t, "false", q.Get("allday"))
}

func TestEncodeICS(t *testing.T) {
	ev := sampleEvent()
	stamp := time.Date(2025, 8, 24, 12, 0, 0, 0, time.UTC)

	data, err := EncodeICS(ev, "quickcal-test-uid", stamp)
	require.NoError(t, err)
	assert.Contains(t, string(data), "PRODID:"+ProductID)

	cal, err := ical.NewDecoder(bytes.NewReader(data)).Decode()
	require.NoError(t, err)

	events := cal.Events()
	require.Len(t, events, 1)

	summary, err := events[0].Props.Text(ical.PropSummary)
	require.NoError(t, err)
	assert.Equal(t, ev.Title, summary)

	uid, err := events[0].Props.Text(ical.PropUID)
	require.NoError(t, err)
	assert.Equal(t, "quickcal-test-uid", uid)

	start, err := events[0].DateTimeStart(time.UTC)
	require.NoError(t, err)
	assert.True(t, ev.Start.Equal(start))

	end, err := events[0].DateTimeEnd(time.UTC)
	require.NoError(t, err)
	assert.True(t, ev.End.Equal(end))
}

func TestEncodeICS_OmitsEmptyOptionalFields(t *testing.T) {
	ev := sampleEvent()
	ev.Location = ""
	ev.Description = ""

	data, err := EncodeICS(ev, "uid", time.Now())
	require.NoError(t, err)
	assert.NotContains(t, string(data), "LOCATION")
	assert.NotContains(t, string(data), "DESCRIPTION")
}

func TestLinkFor(t *testing.T) {
	ev := sampleEvent()
	ics := []byte("BEGIN:VCALENDAR\r\nEND:VCALENDAR\r\n")

	assert.Equal(t, GoogleLink(ev), LinkFor("", ev, "", ics))
	assert.Equal(t, GoogleLink(ev), LinkFor("unknown", ev, "", ics))
	assert.Equal(t, OutlookLink(ev), LinkFor(PreferenceOutlook, ev, "", ics))
	assert.Equal(t, "https://files.example.com/e.ics", LinkFor(PreferenceApple, ev, "https://files.example.com/e.ics", ics))

	dataURL := LinkFor(PreferenceOther, ev, "", ics)
	assert.True(t, strings.HasPrefix(dataURL, "data:text/calendar;charset=utf-8,"))
	decoded, err := url.PathUnescape(strings.TrimPrefix(dataURL, "data:text/calendar;charset=utf-8,"))
	require.NoError(t, err)
	assert.Equal(t, string(ics), decoded)
}
