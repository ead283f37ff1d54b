package extractor

import (
	"regexp"
	"slices"
	"sort"
	"strings"
	"time"
	"unicode"

	"butler-assistant/pkg/datemath"
)

// scan is one pass over a command. stops holds the byte offsets where a
// free-text clause must end: keyword starts and date token starts.
type scan struct {
	text       string
	now        time.Time
	stops      []int
	dateStarts map[int]bool
}

func newScan(text string, now time.Time) *scan {
	s := &scan{
		text:       text,
		now:        now,
		dateStarts: make(map[int]bool),
	}

	for _, loc := range stopKeywordRe.FindAllStringIndex(text, -1) {
		s.stops = append(s.stops, loc[0])
	}
	for _, loc := range dateTokenRe.FindAllStringSubmatchIndex(text, -1) {
		s.stops = append(s.stops, loc[2])
		s.dateStarts[loc[2]] = true
	}
	slices.Sort(s.stops)

	return s
}

// nextStop returns the first stop at or after pos, or the end of the text.
func (s *scan) nextStop(pos int) int {
	i := sort.SearchInts(s.stops, pos)
	if i < len(s.stops) {
		return s.stops[i]
	}
	return len(s.text)
}

// clauseAfter returns the text following the first occurrence of key whose
// clause is non-empty and not rejected by skip.
func (s *scan) clauseAfter(key *regexp.Regexp, skip func(string) bool) (fieldMatch, bool) {
	for _, loc := range key.FindAllStringIndex(s.text, -1) {
		end := s.nextStop(loc[1])
		value := trimClause(s.text[loc[1]:end])
		if value == "" || (skip != nil && skip(value)) {
			continue
		}
		return fieldMatch{Value: value, Start: loc[0], End: end}, true
	}
	return fieldMatch{}, false
}

func trimClause(v string) string {
	return strings.Trim(spaceRe.ReplaceAllString(v, " "), clauseTrimSet)
}

// timeShaped reports whether a clause begins with a clock value or a count,
// as in "at 3pm" or "in 2 days".
func timeShaped(value string) bool {
	first, _, _ := strings.Cut(value, " ")
	if first == "" {
		return false
	}
	if unicode.IsDigit(rune(first[0])) {
		return true
	}
	return datemath.Classify(first) == datemath.KindAbsoluteTime
}

// cleanDescription collapses whitespace and strips leading filler words
// and dangling prepositions.
func cleanDescription(text string) string {
	text = trimClause(text)
	text = leadingFillerRe.ReplaceAllString(text, "")
	text = trimClause(text)
	text = trailingFillerRe.ReplaceAllString(text, "")
	return trimClause(text)
}

func cut(text string, m fieldMatch) string {
	return text[:m.Start] + " " + text[m.End:]
}
