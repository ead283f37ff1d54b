package intent

import (
	"regexp"
	"strings"
)

const (
	apostrophe = `['’]`
	quote      = `["'“”‘’]`
)

var (
	schedulingRe = regexp.MustCompile(`(?i)I` + apostrophe + `ve (scheduled|added|created|set up) ` + quote + `(.+?)` + quote +
		` (for|on) (.+?)(?: at (.+?))?([.,]|$)`)
	taskRe = regexp.MustCompile(`(?i)I` + apostrophe + `ve (added|created) (a task|a reminder|the task) ` + quote + `(.+?)` + quote +
		`(?: with (.+?) priority)?(?: due (on|by) (.+?))?([.,]|$)`)
	itineraryRe = regexp.MustCompile(`(?i)(Here` + apostrophe + `s|I` + apostrophe + `ve prepared) your itinerary`)
)

// Parse reduces assistant prose to an action. The three patterns are checked
// independently in the order scheduling, task, itinerary; a later match
// overwrites the type and action of an earlier one, and a task match also
// replaces the data.
func Parse(text string) Result {
	result := Result{
		Type:    TypeText,
		Action:  ActionNone,
		Content: text,
	}

	if m := schedulingRe.FindStringSubmatch(text); m != nil {
		result.Type = TypeScheduling
		result.Action = ActionCreateAppointment
		result.Data = Data{
			Description: m[2],
			Date:        m[4],
			Time:        m[5],
		}
	}

	if m := taskRe.FindStringSubmatch(text); m != nil {
		priority := strings.ToLower(m[4])
		if priority == "" {
			priority = "medium"
		}
		result.Type = TypeTask
		result.Action = ActionCreateTask
		result.Data = Data{
			Description: m[3],
			Priority:    priority,
			DueDate:     m[6],
		}
	}

	if itineraryRe.MatchString(text) {
		result.Type = TypeItinerary
		result.Action = ActionCreateItinerary
	}

	return result
}
