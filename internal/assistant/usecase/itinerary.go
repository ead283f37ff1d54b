package usecase

import (
	"context"
	"fmt"

	"butler-assistant/internal/assistant"
	"butler-assistant/internal/intent"
	"butler-assistant/internal/record"
	"butler-assistant/pkg/icalendar"
)

func (uc *implUseCase) Itinerary(ctx context.Context) assistant.Reply {
	agenda := uc.Agenda(ctx)
	return assistant.Reply{
		Type:    assistant.ReplyItinerary,
		Content: itineraryMarkdown(agenda, uc.cfg.UserName),
	}
}

func (uc *implUseCase) Agenda(ctx context.Context) record.Agenda {
	return uc.records.ListToday(ctx, uc.now())
}

func (uc *implUseCase) ParseReply(ctx context.Context, text string) intent.Result {
	return intent.Parse(text)
}

// MeetingICS exports one stored meeting as an iCalendar document.
func (uc *implUseCase) MeetingICS(ctx context.Context, id int64) ([]byte, error) {
	m, err := uc.records.GetMeeting(ctx, id)
	if err != nil {
		return nil, err
	}

	start, end, ok := uc.meetingSpan(m)
	if !ok {
		return nil, fmt.Errorf("meeting %d: unreadable date or time", id)
	}

	return icalendar.Marshal(uc.now(), icalendar.Event{
		UID:         fmt.Sprintf("%d@butler-assistant", m.ID),
		Summary:     m.Title,
		Description: m.Description,
		Location:    m.Location,
		Start:       start,
		End:         end,
		Attendees:   m.Attendees,
		Created:     m.CreatedAt,
	})
}
