package icalendar

import "time"

const (
	ProductID = "-//Butler AI//Butler Assistant//EN"
	Version   = "2.0"
)

// Event is one VEVENT. Attendees are plain names or e-mail addresses.
type Event struct {
	UID         string
	Summary     string
	Description string
	Location    string
	Start       time.Time
	End         time.Time
	Attendees   []string
	Created     time.Time
}
