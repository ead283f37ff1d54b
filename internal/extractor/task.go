package extractor

import (
	"strings"
	"time"

	"butler-assistant/internal/model"
	"butler-assistant/pkg/datemath"
)

// ExtractTask extracts a task. The due-date and priority phrases are removed
// from the text along with trigger words; what remains is the description.
func (e *RuleExtractor) ExtractTask(command string, now time.Time) (TaskRequest, error) {
	req := TaskRequest{Priority: model.PriorityMedium}
	text := command

	if m, ok := e.extractDue(text, now); ok {
		req.DueDate = m.Value
		text = cut(text, m)
	}
	if m, ok := extractPriority(text); ok {
		req.Priority = model.Priority(m.Value)
		text = cut(text, m)
	}

	text = taskTriggerRe.ReplaceAllString(text, " ")
	req.Description = cleanDescription(text)
	if req.Description == "" {
		return req, ErrEmptyDescription
	}

	return req, nil
}

// extractDue resolves "due [on|by] <token>". Unresolvable tokens are kept raw.
func (e *RuleExtractor) extractDue(text string, now time.Time) (fieldMatch, bool) {
	loc := dueRe.FindStringSubmatchIndex(text)
	if loc == nil {
		return fieldMatch{}, false
	}

	token := text[loc[2]:loc[3]]
	value := token
	if t, ok := e.dates.ResolveDate(token, now); ok {
		value = t.Format(datemath.DateLayout)
	}
	return fieldMatch{Value: value, Start: loc[0], End: loc[1]}, true
}

func extractPriority(text string) (fieldMatch, bool) {
	loc := priorityRe.FindStringSubmatchIndex(text)
	if loc == nil {
		return fieldMatch{}, false
	}

	var value string
	switch {
	case loc[2] >= 0:
		value = text[loc[2]:loc[3]]
	case loc[4] >= 0:
		value = text[loc[4]:loc[5]]
	}
	return fieldMatch{Value: strings.ToLower(value), Start: loc[0], End: loc[1]}, true
}
