package intent

// Type is the kind of assistant reply.
type Type string

const (
	TypeText       Type = "text"
	TypeScheduling Type = "scheduling"
	TypeTask       Type = "task"
	TypeItinerary  Type = "itinerary"
)

// Action is what the caller should do with an assistant reply.
type Action string

const (
	ActionNone              Action = "none"
	ActionCreateAppointment Action = "create_appointment"
	ActionCreateTask        Action = "create_task"
	ActionCreateItinerary   Action = "create_itinerary"
)

// Data carries the fields lifted from a confirmation sentence. Scheduling
// confirmations fill Description, Date and Time; task confirmations fill
// Description, Priority and DueDate.
type Data struct {
	Description string `json:"description,omitempty"`
	Date        string `json:"date,omitempty"`
	Time        string `json:"time,omitempty"`
	Priority    string `json:"priority,omitempty"`
	DueDate     string `json:"dueDate,omitempty"`
}

// Result is the parsed form of an assistant reply. Content is always the full text.
type Result struct {
	Type    Type   `json:"type"`
	Action  Action `json:"action"`
	Content string `json:"content"`
	Data    Data   `json:"data"`
}
