package datemath

import "strconv"

// ResolveTime converts a time token such as "3pm", "2:30 p.m." or "14:00"
// into a TimeOfDay. Missing minutes default to 00. Hours above 12 are
// rejected when a meridiem is present.
func ResolveTime(token string) (TimeOfDay, bool) {
	tok := normalize(token)

	switch tok {
	case "noon":
		return TimeOfDay{Hour: 12}, true
	case "midnight":
		return TimeOfDay{}, true
	}

	m := clockRe.FindStringSubmatch(tok)
	if m == nil {
		return TimeOfDay{}, false
	}

	hour, _ := strconv.Atoi(m[1])
	minute := 0
	if m[2] != "" {
		minute, _ = strconv.Atoi(m[2])
	}
	if minute > 59 {
		return TimeOfDay{}, false
	}

	switch m[3] {
	case "":
		if hour > 23 {
			return TimeOfDay{}, false
		}
	case "a":
		if hour < 1 || hour > 12 {
			return TimeOfDay{}, false
		}
		if hour == 12 {
			hour = 0
		}
	case "p":
		if hour < 1 || hour > 12 {
			return TimeOfDay{}, false
		}
		if hour < 12 {
			hour += 12
		}
	}

	return TimeOfDay{Hour: hour, Minute: minute}, true
}

// ParseClock parses a stored HH:MM value.
func ParseClock(value string) (TimeOfDay, bool) {
	m := clockRe.FindStringSubmatch(normalize(value))
	if m == nil || m[2] == "" || m[3] != "" {
		return TimeOfDay{}, false
	}
	return ResolveTime(value)
}
