package usecase

import "time"

const (
	logPrefixCommand      = "internal.assistant.usecase.HandleCommand"
	logPrefixConversation = "internal.assistant.usecase.HandleConversation"
	logPrefixCalendar     = "internal.assistant.usecase.syncCalendar"
	logPrefixReminder     = "internal.assistant.usecase.ScheduleReminder"
	logPrefixSweep        = "internal.assistant.usecase.SweepReminders"
)

const (
	defaultUserName        = "sir"
	defaultSessionID       = "default"
	defaultTaskLead        = time.Hour
	defaultAppointmentLead = 30 * time.Minute

	maxHistory  = 10
	temperature = 0.7
	maxTokens   = 500

	remindedSize = 4096
	remindedTTL  = 48 * time.Hour

	// Untimed appointments land in this slot on the calendar.
	defaultEventHour = 9
	defaultEventSpan = time.Hour

	displayDateLayout = "Monday, January 2, 2006"
	displayTimeLayout = "3:04 PM"
)

const (
	msgTaskUnclear       = "I apologize, sir, but I couldn't determine the task description. Could you please provide more details?"
	msgSchedulingUnclear = "I apologize, sir, but I couldn't determine what you'd like to schedule. Could you please provide more details?"
	msgLLMUnavailable    = "I apologize, but I seem to be having some difficulty processing your request. Please try again in a moment."
	msgCalendarAdded     = " I've also added it to your Google Calendar."
	msgNothingToday      = "You have no scheduled appointments or tasks due today. How refreshing, %s."
)

const personaPrompt = `You are Butler, a refined AI butler. You speak formally and courteously, addressing the user as "%s". Your manner is polite, efficient and a touch British, and you pay close attention to detail.

You can manage tasks and reminders, schedule appointments and meetings, prepare daily itineraries and offer recommendations.

Answer concisely but completely. When you take an action, say what you are doing.
When scheduling, confirm in the form: I've scheduled "<description>" for <date> at <time>.
When adding a task, confirm in the form: I've added a task "<description>" with <priority> priority due on <date>.
When asked for the day's plan, begin with: Here's your itinerary.`
