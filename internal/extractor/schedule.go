package extractor

import (
	"strings"
	"time"

	"butler-assistant/pkg/datemath"
)

// ExtractSchedulingRequest handles loose "put X on my calendar" phrasing.
// Date and time spans are stripped first, then scheduling verbs; the
// remainder is the description.
func (e *RuleExtractor) ExtractSchedulingRequest(command string, now time.Time) (SchedulingRequest, error) {
	var req SchedulingRequest

	dateToken := "today"
	if loc := dateTokenRe.FindStringSubmatchIndex(command); loc != nil {
		dateToken = command[loc[2]:loc[3]]
	}
	if t, ok := e.dates.ResolveDate(dateToken, now); ok {
		req.Date = t.Format(datemath.DateLayout)
	} else {
		req.Date = dateToken
	}

	if loc := clockTokenRe.FindStringSubmatchIndex(command); loc != nil {
		token := strings.TrimSpace(command[loc[2]:loc[3]])
		if t, ok := datemath.ResolveTime(token); ok {
			req.Time = t.String()
		} else {
			req.Time = token
		}
	}

	text := dateTokenRe.ReplaceAllString(command, " ")
	text = clockTokenRe.ReplaceAllString(text, " ")
	text = scheduleTriggerRe.ReplaceAllString(text, " ")

	req.Description = cleanDescription(text)
	if req.Description == "" {
		return req, ErrEmptyDescription
	}

	return req, nil
}
