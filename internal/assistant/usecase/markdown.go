package usecase

import (
	"fmt"
	"strings"
	"time"

	"butler-assistant/internal/model"
	"butler-assistant/internal/record"
	"butler-assistant/pkg/datemath"
)

func meetingMarkdown(m model.Meeting, synced bool) string {
	date := displayDate(m.Date)
	span := displayClock(m.StartTime) + " - " + displayClock(m.EndTime)

	var b strings.Builder
	b.WriteString("## Meeting Scheduled\n\n")
	fmt.Fprintf(&b, "I've scheduled your meeting for %s at %s.", date, span)
	if synced {
		b.WriteString(msgCalendarAdded)
	}
	b.WriteString("\n\n### Meeting Details\n")
	fmt.Fprintf(&b, "- **Title**: %s\n", m.Title)
	fmt.Fprintf(&b, "- **Date**: %s\n", date)
	fmt.Fprintf(&b, "- **Time**: %s\n", span)
	if m.Location != "" {
		fmt.Fprintf(&b, "- **Location**: %s\n", m.Location)
	}
	if len(m.Attendees) > 0 {
		fmt.Fprintf(&b, "- **Attendees**: %s\n", strings.Join(m.Attendees, ", "))
	}
	if m.Description != "" {
		fmt.Fprintf(&b, "- **Description**: %s\n", m.Description)
	}
	return b.String()
}

func itineraryMarkdown(agenda record.Agenda, userName string) string {
	var b strings.Builder
	b.WriteString("### Today's Itinerary\n\n")

	if len(agenda.Appointments) > 0 {
		b.WriteString("#### Scheduled Appointments\n")
		for _, e := range agenda.Appointments {
			b.WriteString("- " + agendaLine(e) + "\n")
		}
		b.WriteString("\n")
	}

	if len(agenda.Tasks) > 0 {
		b.WriteString("#### Tasks for Today\n")
		for _, t := range agenda.Tasks {
			box := "[ ]"
			if t.Completed {
				box = "[x]"
			}
			fmt.Fprintf(&b, "- %s (%s) %s\n", box, strings.ToUpper(string(t.Priority)), t.Description)
		}
		b.WriteString("\n")
	}

	if len(agenda.Appointments) == 0 && len(agenda.Tasks) == 0 {
		fmt.Fprintf(&b, msgNothingToday+"\n\n", userName)
	}

	b.WriteString("#### Butler's Recommendations\n")
	fmt.Fprintf(&b, "- It would be an excellent day to review your quarterly goals, %s.\n", userName)
	b.WriteString("- Consider taking a short walk between 2pm and 3pm for optimal productivity.\n")
	return b.String()
}

func agendaLine(e model.AgendaEntry) string {
	when := e.Time
	if when == "" {
		when = "Anytime"
	}
	if e.EndTime != "" {
		when += " - " + e.EndTime
	}

	line := when + ": " + e.Description
	if e.Location != "" {
		line += " (" + e.Location + ")"
	}
	return line
}

// displayDate renders an ISO date as "Friday, May 3, 2024". Other values
// are shown as stored.
func displayDate(iso string) string {
	d, err := time.Parse(datemath.DateLayout, iso)
	if err != nil {
		return iso
	}
	return d.Format(displayDateLayout)
}

// displayClock renders HH:MM as "3:04 PM".
func displayClock(hhmm string) string {
	tod, ok := datemath.ParseClock(hhmm)
	if !ok {
		return hhmm
	}
	return tod.On(time.Time{}).Format(displayTimeLayout)
}
