package usecase

import (
	"context"
	"strings"
	"time"

	"butler-assistant/internal/model"
	"butler-assistant/pkg/datemath"
	"butler-assistant/pkg/gcalendar"
)

// syncAppointment copies an appointment to the external calendar. An
// unresolvable date falls back to today and a missing time to the default
// morning slot. Failures are logged and leave the local record in place.
func (uc *implUseCase) syncAppointment(ctx context.Context, a model.Appointment, now time.Time) (string, bool) {
	if uc.calendar == nil {
		return "", false
	}

	date, ok := uc.dates.ResolveDate(a.Date, now)
	if !ok {
		date = uc.dates.StartOfDay(now)
	}
	start := datemath.TimeOfDay{Hour: defaultEventHour}.On(date)
	if tod, ok := datemath.ResolveTime(a.Time); ok {
		start = tod.On(date)
	}

	return uc.createEvent(ctx, gcalendar.CreateEventRequest{
		Summary:     a.Description,
		Description: a.Description,
		StartTime:   start,
		EndTime:     start.Add(defaultEventSpan),
	})
}

func (uc *implUseCase) syncMeeting(ctx context.Context, m model.Meeting) (string, bool) {
	if uc.calendar == nil {
		return "", false
	}

	start, end, ok := uc.meetingSpan(m)
	if !ok {
		uc.l.Warnf(ctx, "%s: meeting %d has no usable date or time", logPrefixCalendar, m.ID)
		return "", false
	}

	description := m.Description
	if len(m.Attendees) > 0 {
		if description != "" {
			description += "\n\n"
		}
		description += "Attendees: " + strings.Join(m.Attendees, ", ")
	}

	return uc.createEvent(ctx, gcalendar.CreateEventRequest{
		Summary:     m.Title,
		Description: description,
		Location:    m.Location,
		StartTime:   start,
		EndTime:     end,
	})
}

func (uc *implUseCase) createEvent(ctx context.Context, req gcalendar.CreateEventRequest) (string, bool) {
	req.CalendarID = uc.cfg.CalendarID
	req.Timezone = uc.cfg.Timezone
	req.Reminders = gcalendar.DefaultReminders

	ev, err := uc.calendar.CreateEvent(ctx, req)
	if err != nil {
		uc.l.Warnf(ctx, "%s: %q not synced: %v", logPrefixCalendar, req.Summary, err)
		return "", false
	}

	uc.l.Info(ctx, "calendar event created", "event_id", ev.ID, "summary", ev.Summary)
	return ev.HtmlLink, true
}

// meetingSpan places a stored meeting on the timeline. An end at or before
// the start belongs to the next day.
func (uc *implUseCase) meetingSpan(m model.Meeting) (time.Time, time.Time, bool) {
	date, err := time.ParseInLocation(datemath.DateLayout, m.Date, uc.dates.Location())
	if err != nil {
		return time.Time{}, time.Time{}, false
	}
	startTOD, ok := datemath.ParseClock(m.StartTime)
	if !ok {
		return time.Time{}, time.Time{}, false
	}

	start := startTOD.On(date)
	end := start.Add(defaultEventSpan)
	if endTOD, ok := datemath.ParseClock(m.EndTime); ok {
		end = endTOD.On(date)
		if !end.After(start) {
			end = end.AddDate(0, 0, 1)
		}
	}
	return start, end, true
}
