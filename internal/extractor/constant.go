package extractor

import "regexp"

const (
	DefaultMeetingTitle    = "Untitled Meeting"
	DefaultStartTime       = "09:00"
	DefaultMeetingDuration = 60 // minutes

	minutesPerDay = 24 * 60
)

const weekdayAlt = `sunday|monday|tuesday|wednesday|thursday|friday|saturday`

var (
	// dateTokenRe finds temporal date tokens; group 1 is the token itself,
	// without a leading preposition.
	dateTokenRe = regexp.MustCompile(`(?i)\b(?:(?:on|for|by)\s+)?((?:next|this)\s+(?:` + weekdayAlt + `)|` + weekdayAlt +
		`|today|tomorrow|yesterday|\d{4}-\d{2}-\d{2}|\d{1,2}/\d{1,2}(?:/\d{4}|/\d{2})?|in\s+\d+\s+(?:days?|weeks?|months?))\b`)

	// meetingTimeRe matches "at|from <time>"; group 1 is the clock or noon|midnight,
	// group 2 the meridiem letter.
	meetingTimeRe = regexp.MustCompile(`(?i)\b(?:at|from)\s+(\d{1,2}(?::\d{2})?|noon\b|midnight\b)(?:\s*([ap])\.?\s*m\b\.?)?`)

	// clockTokenRe matches times that need no keyword: a colon or a meridiem.
	clockTokenRe = regexp.MustCompile(`(?i)\b(?:(?:at|from|between)\s+)?(\d{1,2}:\d{2}(?:\s*[ap]\.?\s*m\b\.?)?|\d{1,2}\s*[ap]\.?\s*m\b\.?)`)

	durationRe = regexp.MustCompile(`(?i)\b(?:for|duration)\s+(\d+)\s*(min(?:ute)?s?|hours?|hrs?)\b`)

	meetingTriggerRe = regexp.MustCompile(`(?i)\b(?:schedule|set\s+up|book|arrange|plan)(?:\s+(?:a|an|the))?\s+meeting\b`)
	stopKeywordRe    = regexp.MustCompile(`(?i)\b(?:with|at|in|on|for|from|duration|about|regarding|agenda|description|location|place)\b`)
	locationKeyRe    = regexp.MustCompile(`(?i)\b(?:at|in|location|place)\b`)
	attendeesKeyRe   = regexp.MustCompile(`(?i)\bwith\b`)
	descriptionKeyRe = regexp.MustCompile(`(?i)\b(?:about|regarding|agenda|description)\b`)
	attendeeSplitRe  = regexp.MustCompile(`(?i),|\band\b`)

	dueRe      = regexp.MustCompile(`(?i)\bdue(?:\s+(?:on|by))?\s+((?:next|this)\s+\w+|in\s+\d+\s+\w+|[^\s,.;!?]+)`)
	priorityRe = regexp.MustCompile(`(?i)\b(?:(?:with\s+(?:a\s+)?)?(high|medium|low)(?:\s+priority)?|priority:?\s+(high|medium|low))\b`)

	taskTriggerRe     = regexp.MustCompile(`(?i)\b(?:remind(?:\s+me)?|to-do|todo|task|add|create|make(?:\s+a)?(?:\s+new)?)\b`)
	scheduleTriggerRe = regexp.MustCompile(`(?i)\b(?:schedule|appointment|meeting|event|calendar|add|create|set(?:\s+up)?|book)\b`)

	leadingFillerRe  = regexp.MustCompile(`(?i)^(?:(?:a|an|the|to|that|about|me|new)\s+)+`)
	trailingFillerRe = regexp.MustCompile(`(?i)(?:\s+(?:on|at|for|by|from|between|to|in))+$`)
	spaceRe          = regexp.MustCompile(`\s+`)
	wordRe           = regexp.MustCompile(`\S+`)
)

const clauseTrimSet = " \t\r\n,.;:!?-"
