package extractor

import (
	"strconv"
	"strings"
	"time"

	"butler-assistant/pkg/datemath"
)

// meetingRule extracts one field. Rules run in order; a later rule may read
// fields set by an earlier one.
type meetingRule struct {
	field    string
	extract  func(s *scan) (fieldMatch, bool)
	apply    func(req *MeetingRequest, m fieldMatch)
	fallback func(req *MeetingRequest, s *scan)
}

func (e *RuleExtractor) meetingRules() []meetingRule {
	return []meetingRule{
		{
			field:    "title",
			extract:  extractTitle,
			apply:    func(req *MeetingRequest, m fieldMatch) { req.Title = m.Value },
			fallback: func(req *MeetingRequest, _ *scan) { req.Title = DefaultMeetingTitle },
		},
		{
			field:   "date",
			extract: e.extractDate,
			apply:   func(req *MeetingRequest, m fieldMatch) { req.Date = m.Value },
			fallback: func(req *MeetingRequest, s *scan) {
				req.Date = e.dates.StartOfDay(s.now).Format(datemath.DateLayout)
			},
		},
		{
			field:    "startTime",
			extract:  extractStartTime,
			apply:    func(req *MeetingRequest, m fieldMatch) { req.StartTime = m.Value },
			fallback: func(req *MeetingRequest, _ *scan) { req.StartTime = DefaultStartTime },
		},
		{
			field:   "endTime",
			extract: extractDuration,
			apply: func(req *MeetingRequest, m fieldMatch) {
				d, _ := time.ParseDuration(m.Value)
				req.EndTime = endTime(req.StartTime, d)
			},
			fallback: func(req *MeetingRequest, _ *scan) {
				req.EndTime = endTime(req.StartTime, DefaultMeetingDuration*time.Minute)
			},
		},
		{
			field: "location",
			extract: func(s *scan) (fieldMatch, bool) {
				return s.clauseAfter(locationKeyRe, timeShaped)
			},
			apply: func(req *MeetingRequest, m fieldMatch) { req.Location = m.Value },
		},
		{
			field: "attendees",
			extract: func(s *scan) (fieldMatch, bool) {
				return s.clauseAfter(attendeesKeyRe, nil)
			},
			apply: func(req *MeetingRequest, m fieldMatch) { req.Attendees = splitAttendees(m.Value) },
		},
		{
			field: "description",
			extract: func(s *scan) (fieldMatch, bool) {
				return s.clauseAfter(descriptionKeyRe, nil)
			},
			apply: func(req *MeetingRequest, m fieldMatch) { req.Description = m.Value },
		},
	}
}

// ExtractMeeting extracts a meeting from command and optional details.
// Fields that cannot be found get their defaults; extraction never fails.
func (e *RuleExtractor) ExtractMeeting(command, details string, now time.Time) MeetingRequest {
	s := newScan(strings.TrimSpace(command+" "+details), now)
	req := MeetingRequest{Attendees: []string{}}

	for _, rule := range e.meetingRules() {
		if m, ok := rule.extract(s); ok {
			rule.apply(&req, m)
			continue
		}
		if rule.fallback != nil {
			rule.fallback(&req, s)
		}
	}

	return req
}

func extractTitle(s *scan) (fieldMatch, bool) {
	loc := meetingTriggerRe.FindStringIndex(s.text)
	if loc == nil {
		return fieldMatch{}, false
	}

	// "meeting on|about|for <title>" unless the next word is a count or a date.
	start := loc[1]
	words := wordRe.FindAllStringIndex(s.text[start:], 2)
	if len(words) == 2 {
		lead := strings.ToLower(s.text[start+words[0][0] : start+words[0][1]])
		next := s.text[start+words[1][0] : start+words[1][1]]
		if (lead == "on" || lead == "about" || lead == "for") &&
			!timeShaped(next) && !s.dateStarts[start+words[1][0]] {
			start += words[0][1]
		}
	}

	end := s.nextStop(start)
	title := trimClause(s.text[start:end])
	if title == "" {
		return fieldMatch{}, false
	}
	return fieldMatch{Value: title, Start: loc[0], End: end}, true
}

func (e *RuleExtractor) extractDate(s *scan) (fieldMatch, bool) {
	for _, loc := range dateTokenRe.FindAllStringSubmatchIndex(s.text, -1) {
		t, ok := e.dates.ResolveDate(s.text[loc[2]:loc[3]], s.now)
		if !ok {
			continue
		}
		return fieldMatch{Value: t.Format(datemath.DateLayout), Start: loc[2], End: loc[3]}, true
	}
	return fieldMatch{}, false
}

func extractStartTime(s *scan) (fieldMatch, bool) {
	for _, loc := range meetingTimeRe.FindAllStringSubmatchIndex(s.text, -1) {
		// "at 2024" or "at 3/4" are not clock values.
		if loc[1] < len(s.text) && strings.IndexByte("0123456789/", s.text[loc[1]]) >= 0 {
			continue
		}

		token := s.text[loc[2]:loc[3]]
		if loc[4] >= 0 {
			token += s.text[loc[4]:loc[5]] + "m"
		}
		t, ok := datemath.ResolveTime(token)
		if !ok {
			continue
		}
		return fieldMatch{Value: t.String(), Start: loc[0], End: loc[1]}, true
	}
	return fieldMatch{}, false
}

func extractDuration(s *scan) (fieldMatch, bool) {
	loc := durationRe.FindStringSubmatchIndex(s.text)
	if loc == nil {
		return fieldMatch{}, false
	}

	n, err := strconv.Atoi(s.text[loc[2]:loc[3]])
	if err != nil {
		return fieldMatch{}, false
	}

	// Only the clock face matters, so whole days are dropped before converting.
	minutes := n % minutesPerDay
	if strings.HasPrefix(strings.ToLower(s.text[loc[4]:loc[5]]), "h") {
		minutes = n % 24 * 60
	}
	d := time.Duration(minutes) * time.Minute
	return fieldMatch{Value: d.String(), Start: loc[0], End: loc[1]}, true
}

// endTime adds d to an HH:MM start. The result wraps past midnight.
func endTime(start string, d time.Duration) string {
	t, ok := datemath.ParseClock(start)
	if !ok {
		t, _ = datemath.ParseClock(DefaultStartTime)
	}
	return t.Add(d).String()
}

func splitAttendees(value string) []string {
	attendees := []string{}
	for _, name := range attendeeSplitRe.Split(value, -1) {
		if name = trimClause(name); name != "" {
			attendees = append(attendees, name)
		}
	}
	return attendees
}
