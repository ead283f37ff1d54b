package datemath

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Parser converts relative and absolute date strings to time.Time values
// in a fixed location.
type Parser struct {
	location *time.Location
}

// NewParser creates a new date parser for the given IANA timezone string.
// e.g. "Europe/London", or "Local" for the system clock.
func NewParser(timezone string) (*Parser, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{location: loc}, nil
}

// Location returns the parser's timezone.
func (p *Parser) Location() *time.Location {
	return p.location
}

// Parse converts a date string to an absolute time.Time at the start of the day.
// Unknown input falls back to the day of baseTime; malformed "in ..." and
// "next ..." phrases return an error together with baseTime.
func (p *Parser) Parse(relative string, baseTime time.Time) (time.Time, error) {
	relative = normalize(relative)

	if t, ok := p.ResolveDate(relative, baseTime); ok {
		return t, nil
	}

	if strings.HasPrefix(relative, "in ") {
		return baseTime, fmt.Errorf("%w: %q", ErrInvalidDuration, relative)
	}
	if rest, ok := strings.CutPrefix(relative, "next "); ok {
		return baseTime, fmt.Errorf("%w: %q", ErrUnknownWeekday, rest)
	}

	return p.startOfDay(baseTime), nil
}

// ResolveDate resolves a date token against now. The result is midnight of
// the resolved day in the parser's location. ok is false when the token is
// not a recognizable date.
func (p *Parser) ResolveDate(token string, now time.Time) (time.Time, bool) {
	tok := normalize(token)
	today := p.startOfDay(now)

	switch Classify(tok) {
	case KindToday:
		return today, true
	case KindTomorrow:
		return today.AddDate(0, 0, 1), true
	case KindYesterday:
		return today.AddDate(0, 0, -1), true
	case KindWeekday:
		return thisWeekday(today, weekdays[tok]), true
	case KindThisWeekday:
		return thisWeekday(today, weekdays[strings.TrimPrefix(tok, "this ")]), true
	case KindNextWeekday:
		return nextWeekday(today, weekdays[strings.TrimPrefix(tok, "next ")]), true
	case KindAbsoluteDate:
		return p.absoluteDate(tok, today)
	case KindRelativeDuration:
		t, err := p.parseInDuration(tok, today)
		return t, err == nil
	}

	return time.Time{}, false
}

// thisWeekday returns the occurrence of target in today's Sunday-first week.
// It may lie in the past.
func thisWeekday(today time.Time, target time.Weekday) time.Time {
	return today.AddDate(0, 0, int(target)-int(today.Weekday()))
}

// nextWeekday returns the first occurrence of target strictly after today.
func nextWeekday(today time.Time, target time.Weekday) time.Time {
	daysUntil := (int(target) - int(today.Weekday()) + 7) % 7
	if daysUntil == 0 {
		daysUntil = 7
	}
	return today.AddDate(0, 0, daysUntil)
}

func (p *Parser) absoluteDate(tok string, today time.Time) (time.Time, bool) {
	var year, month, day int

	if m := isoDateRe.FindStringSubmatch(tok); m != nil {
		year, _ = strconv.Atoi(m[1])
		month, _ = strconv.Atoi(m[2])
		day, _ = strconv.Atoi(m[3])
	} else if m := slashDateRe.FindStringSubmatch(tok); m != nil {
		month, _ = strconv.Atoi(m[1])
		day, _ = strconv.Atoi(m[2])
		year = today.Year()
		if m[3] != "" {
			year, _ = strconv.Atoi(m[3])
			if len(m[3]) == 2 {
				year += 2000
			}
		}
	} else {
		return time.Time{}, false
	}

	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, p.location)
	if t.Year() != year || int(t.Month()) != month || t.Day() != day {
		return time.Time{}, false
	}
	return t, true
}

// parseInDuration handles patterns like "in 3 days", "in 2 weeks", "in 1 month".
func (p *Parser) parseInDuration(relative string, baseTime time.Time) (time.Time, error) {
	matches := durationRe.FindStringSubmatch(relative)
	if len(matches) != 3 {
		return baseTime, fmt.Errorf("%w: %q", ErrInvalidDuration, relative)
	}

	amount, _ := strconv.Atoi(matches[1])
	unit := matches[2]

	switch {
	case strings.HasPrefix(unit, "day"):
		return p.startOfDay(baseTime.AddDate(0, 0, amount)), nil
	case strings.HasPrefix(unit, "week"):
		return p.startOfDay(baseTime.AddDate(0, 0, amount*7)), nil
	case strings.HasPrefix(unit, "month"):
		return p.startOfDay(baseTime.AddDate(0, amount, 0)), nil
	}

	return baseTime, fmt.Errorf("%w: %q", ErrUnknownUnit, unit)
}

// StartOfDay returns midnight at the start of t's day in the parser's timezone.
func (p *Parser) StartOfDay(t time.Time) time.Time {
	return p.startOfDay(t)
}

func (p *Parser) startOfDay(t time.Time) time.Time {
	t = t.In(p.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, p.location)
}

// EndOfDay returns 23:59:59 at the end of the given start-of-day time.
func (p *Parser) EndOfDay(startOfDay time.Time) time.Time {
	return startOfDay.Add(23*time.Hour + 59*time.Minute + 59*time.Second)
}
