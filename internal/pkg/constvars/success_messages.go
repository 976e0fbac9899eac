package constvars

const (
	// Generic messages
	ResponseUnknown = "unknown"
	ResponseSuccess = "success"
	ResponseError   = "error"

	// Auth messages
	LoginSuccess    = "successfully login"
	LogoutSuccess   = "successfully logout"
	RegisterSuccess = "account created successfully"

	// Booking messages
	AppointmentCreatedSuccess   = "appointment created successfully"
	AppointmentCancelledSuccess = "appointment cancelled successfully"
	AppointmentGetSuccess       = "get appointment successfully"
	AppointmentListSuccess      = "get appointments successfully"

	// Slot messages
	SlotCreatedSuccess = "time slot created successfully"
	SlotDeletedSuccess = "time slot deleted successfully"
	SlotListSuccess    = "get time slots successfully"
	SlotDatesSuccess   = "get available dates successfully"

	// Lawyer messages
	LawyerCreatedSuccess     = "lawyer created successfully"
	LawyerListSuccess        = "get lawyers successfully"
	LawyerStatsSuccess       = "get lawyer statistics successfully"
	LawyerDeactivatedSuccess = "lawyer deactivated successfully"
)
