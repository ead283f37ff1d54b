package gcalendar

const (
	DefaultCalendarID = "primary"
	DefaultTokenPath  = "token.json"

	ReminderPopup = "popup"
	ReminderEmail = "email"
)
