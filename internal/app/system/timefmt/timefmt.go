// Package timefmt renders submission timestamps for humans.
//
// Submitters send ISO-8601 timestamps; the stored row and the email
// footer both carry the same localized display string, so the format
// lives in one place.
package timefmt

import (
	"time"
)

// DisplayLayout is the human-readable form used in stored rows and
// notification emails: long month name, numeric day and year,
// hour:minute, time-zone abbreviation.
const DisplayLayout = "January 2, 2006, 3:04 PM MST"

// Parse reads an ISO-8601 / RFC 3339 timestamp as sent by the form client.
func Parse(value string) (time.Time, error) {
	return time.Parse(time.RFC3339, value)
}

// Display renders t with DisplayLayout.
func Display(t time.Time) string {
	return t.Format(DisplayLayout)
}
