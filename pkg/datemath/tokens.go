package datemath

import (
	"regexp"
	"strings"
	"time"
)

var (
	slashDateRe = regexp.MustCompile(`^(\d{1,2})/(\d{1,2})(?:/(\d{4}|\d{2}))?$`)
	isoDateRe   = regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2})$`)
	clockRe     = regexp.MustCompile(`^(\d{1,2})(?::(\d{2}))?\s*(?:([ap])\.?\s*m\.?)?$`)
	durationRe  = regexp.MustCompile(`^in (\d+) (days?|weeks?|months?)$`)
	spaceRe     = regexp.MustCompile(`\s+`)
)

var weekdays = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

// LookupWeekday returns the weekday for a lowercase English day name.
func LookupWeekday(name string) (time.Weekday, bool) {
	wd, ok := weekdays[strings.ToLower(name)]
	return wd, ok
}

func normalize(token string) string {
	return spaceRe.ReplaceAllString(strings.ToLower(strings.TrimSpace(token)), " ")
}

// Classify reports the kind of a temporal token. It checks shape only;
// a token of a date kind can still fail to resolve (e.g. 2/30).
func Classify(token string) TokenKind {
	tok := normalize(token)

	switch tok {
	case "":
		return KindUnknown
	case "today":
		return KindToday
	case "tomorrow":
		return KindTomorrow
	case "yesterday":
		return KindYesterday
	case "noon", "midnight":
		return KindAbsoluteTime
	}

	if _, ok := weekdays[tok]; ok {
		return KindWeekday
	}
	if rest, ok := strings.CutPrefix(tok, "next "); ok {
		if _, ok := weekdays[rest]; ok {
			return KindNextWeekday
		}
	}
	if rest, ok := strings.CutPrefix(tok, "this "); ok {
		if _, ok := weekdays[rest]; ok {
			return KindThisWeekday
		}
	}

	switch {
	case slashDateRe.MatchString(tok), isoDateRe.MatchString(tok):
		return KindAbsoluteDate
	case clockRe.MatchString(tok):
		return KindAbsoluteTime
	case durationRe.MatchString(tok):
		return KindRelativeDuration
	}

	return KindUnknown
}
