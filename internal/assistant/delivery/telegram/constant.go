package telegram

const (
	cmdStart = "/start"
	cmdHelp  = "/help"
	cmdToday = "/today"

	actionView    = "View"
	actionDismiss = "Dismiss"

	msgStart = "Good day. I am *Butler*, at your service.\n\n" +
		"Tell me what you need in plain words, for example:\n" +
		"• _Schedule a meeting with Alice tomorrow at 3pm for 45 minutes_\n" +
		"• _Remind me to renew the passport due Friday high priority_\n" +
		"• _Book the dentist on 5/20 at 9:30_\n\n" +
		"Send /today for today's itinerary."
	msgHelp = "*Commands*\n" +
		"/today shows today's itinerary\n" +
		"/help shows this message\n\n" +
		"Anything else is treated as a request: meetings, tasks and appointments are recorded, everything else is a conversation."
	msgDismissed = "Very good."
	msgNoted     = "Noted."
)
