package service

import (
	"fmt"
	"time"
)

const promptDateLayout = "January 02, 2006"

const promptTemplate = `
I will give you some text that I want you to parse. The text should describe an event.
Please provide a raw JSON response with the following fields:

title: the title of the event.
timestamp_start: a UTC timestamp of when the event starts in the format YYYYMMDDTHHMMSS. If no year is given, default to the upcoming instance of that date.
timestamp_end: a UTC timestamp of when the event ends in the format YYYYMMDDTHHMMSS. (If not given, default to one hour after start.)
location: the location of the event.
description: a short 2-3 sentence description of the event containing any pertinent information or links.

missing: a list with any of the above fields (title, timestamp_start, timestamp_end, location, description) which are not described in the event.

IMPORTANT: The user is in the %[1]s timezone. When parsing times mentioned in the text (like "3 PM", "2:30", "tomorrow at 5", etc.), interpret them as being in the user's timezone (%[1]s) and then convert them to UTC for the timestamp fields.

Please parse the following text:
Today's date is %[2]s. User timezone: %[1]s. %[3]s
`

// BuildPrompt renders the extraction prompt. An empty timezone means UTC and
// an empty currentDate is replaced by now formatted in loc.
func BuildPrompt(text, currentDate, timezone string, now time.Time, loc *time.Location) string {
	if timezone == "" {
		timezone = "UTC"
	}
	if currentDate == "" {
		if loc == nil {
			loc = time.UTC
		}
		currentDate = now.In(loc).Format(promptDateLayout)
	}
	return fmt.Sprintf(promptTemplate, timezone, currentDate, text)
}
