package constvars

const (
	LoggingRequestIDKey     = "request_id"
	LoggingRequestKey       = "request"
	LoggingResponseKey      = "response"
	LoggingMethodKey        = "method"
	LoggingEndpointKey      = "endpoint"
	LoggingQueryKey         = "query"
	LoggingRemoteAddrKey    = "remote_addr"
	LoggingUserAgentKey     = "user_agent"
	LoggingStatusCodeKey    = "status_code"
	LoggingDurationKey      = "duration"
	LoggingSuccessKey       = "success"
	LoggingOperationKey     = "operation"
	LoggingErrorTypeKey     = "error_type"
	LoggingErrorCodeKey     = "error_code"
	LoggingErrorMessageKey  = "error_message"
	LoggingSessionDataKey   = "session_data"
	LoggingAppointmentIDKey = "appointment_id"
	LoggingTimeSlotIDKey    = "time_slot_id"
	LoggingLawyerIDKey      = "lawyer_id"
	LoggingTransactionIDKey = "transaction_id"
	LoggingOperationIDKey   = "operation_id"
	LoggingMerchantIDKey    = "merchant_id"
)
