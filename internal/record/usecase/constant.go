package usecase

const (
	logPrefixNew               = "internal.record.usecase.New"
	logPrefixCreateTask        = "internal.record.usecase.CreateTask"
	logPrefixCreateAppointment = "internal.record.usecase.CreateAppointment"
	logPrefixCreateMeeting     = "internal.record.usecase.CreateMeeting"
)
