package calendar

import (
	"net/url"
	"strings"

	"quickcal/internal/model"
)

// Calendar preferences understood by LinkFor.
const (
	PreferenceGoogle  = "google_calendar"
	PreferenceOutlook = "outlook_calendar"
	PreferenceApple   = "apple_calendar"
	PreferenceOther   = "other_calendar"
)

const (
	googleBase  = "https://www.google.com/calendar/render"
	outlookBase = "https://outlook.live.com/calendar/0/deeplink/compose"

	outlookLayout = "2006-01-02T15:04:05Z"
)

// GoogleLink builds a Google Calendar template link for ev.
func GoogleLink(ev model.Event) string {
	dates := FormatTimestamp(ev.Start) + "Z/" + FormatTimestamp(ev.End) + "Z"
	return googleBase + "?" + encode([][2]string{
		{"action", "TEMPLATE"},
		{"text", ev.Title},
		{"dates", dates},
		{"details", ev.Description},
		{"location", ev.Location},
	})
}

// OutlookLink builds an Outlook.com compose deeplink for ev.
func OutlookLink(ev model.Event) string {
	return outlookBase + "?" + encode([][2]string{
		{"allday", "false"},
		{"subject", ev.Title},
		{"body", ev.Description},
		{"startdt", ev.Start.UTC().Format(outlookLayout)},
		{"enddt", ev.End.UTC().Format(outlookLayout)},
		{"location", ev.Location},
		{"path", "/calendar/action/compose"},
		{"rru", "addevent"},
	})
}

// DataURL wraps an encoded iCalendar file into a data: URL.
func DataURL(ics []byte) string {
	return "data:text/calendar;charset=utf-8," + url.PathEscape(string(ics))
}

// LinkFor picks the link matching a calendar preference. Unknown or empty
// preferences use Google Calendar. File-based preferences prefer the hosted
// file and fall back to a data: URL.
func LinkFor(pref string, ev model.Event, fileLink string, ics []byte) string {
	switch pref {
	case PreferenceOutlook:
		return OutlookLink(ev)
	case PreferenceApple, PreferenceOther:
		if fileLink != "" {
			return fileLink
		}
		return DataURL(ics)
	default:
		return GoogleLink(ev)
	}
}

// encode keeps parameter order stable, unlike url.Values.Encode.
func encode(params [][2]string) string {
	var b strings.Builder
	for i, p := range params {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(p[0]))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(p[1]))
	}
	return b.String()
}
