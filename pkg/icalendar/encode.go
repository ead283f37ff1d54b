package icalendar

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/emersion/go-ical"
)

// Encode writes events as a single VCALENDAR. Times are emitted in UTC.
func Encode(w io.Writer, now time.Time, events ...Event) error {
	cal := ical.NewCalendar()
	cal.Props.SetText(ical.PropVersion, Version)
	cal.Props.SetText(ical.PropProductID, ProductID)

	for _, e := range events {
		if e.UID == "" {
			return fmt.Errorf("icalendar: event %q has no UID", e.Summary)
		}
		cal.Children = append(cal.Children, component(e, now).Component)
	}

	if err := ical.NewEncoder(w).Encode(cal); err != nil {
		return fmt.Errorf("icalendar: encode: %w", err)
	}
	return nil
}

// Marshal returns the VCALENDAR text for events.
func Marshal(now time.Time, events ...Event) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, now, events...); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func component(e Event, now time.Time) *ical.Event {
	ev := ical.NewEvent()
	ev.Props.SetText(ical.PropUID, e.UID)
	ev.Props.SetDateTime(ical.PropDateTimeStamp, now.UTC())
	ev.Props.SetDateTime(ical.PropDateTimeStart, e.Start.UTC())
	if !e.End.IsZero() {
		ev.Props.SetDateTime(ical.PropDateTimeEnd, e.End.UTC())
	}
	if !e.Created.IsZero() {
		ev.Props.SetDateTime(ical.PropCreated, e.Created.UTC())
	}
	ev.Props.SetText(ical.PropSummary, e.Summary)
	if e.Description != "" {
		ev.Props.SetText(ical.PropDescription, e.Description)
	}
	if e.Location != "" {
		ev.Props.SetText(ical.PropLocation, e.Location)
	}

	for _, a := range e.Attendees {
		prop := ical.NewProp(ical.PropAttendee)
		prop.Params.Set(ical.ParamCommonName, a)
		if strings.Contains(a, "@") {
			prop.Value = "mailto:" + a
		} else {
			prop.Value = "urn:butler:attendee:" + strings.ReplaceAll(strings.ToLower(a), " ", "-")
		}
		ev.Props.Add(prop)
	}
	return ev
}
