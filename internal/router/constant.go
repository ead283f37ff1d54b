package router

import "regexp"

const (
	logPrefixClassify = "internal.router.Classify"
)

// rule order decides ties: "schedule a meeting" is a meeting, "remind me
// to book" is a task.
var rules = []struct {
	route Route
	re    *regexp.Regexp
}{
	{RouteItinerary, regexp.MustCompile(`(?i)\b(itinerary|agenda|my day|plan (?:for )?(?:my |the )?day|what(?:'|’)?s on (?:today|my schedule))\b`)},
	{RouteMeeting, regexp.MustCompile(`(?i)\b(meeting|meet with|call with|sync with)\b`)},
	{RouteTask, regexp.MustCompile(`(?i)\b(task|to-?do|remind me|reminder|add .+ to (?:my )?list|due (?:by|on)?)\b`)},
	{RouteScheduling, regexp.MustCompile(`(?i)\b(schedule|appointment|book|calendar|event|set up)\b`)},
}
