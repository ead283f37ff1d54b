package extractor

import (
	"time"

	"butler-assistant/pkg/datemath"
)

// Extractor turns raw commands into structured meeting, task and scheduling requests.
type Extractor interface {
	ExtractMeeting(command, details string, now time.Time) MeetingRequest
	ExtractTask(command string, now time.Time) (TaskRequest, error)
	ExtractSchedulingRequest(command string, now time.Time) (SchedulingRequest, error)
}

// RuleExtractor applies ordered field rules over the command text.
type RuleExtractor struct {
	dates *datemath.Parser
}

var _ Extractor = (*RuleExtractor)(nil)

// New creates a RuleExtractor resolving dates with the given parser.
func New(dates *datemath.Parser) *RuleExtractor {
	return &RuleExtractor{dates: dates}
}
