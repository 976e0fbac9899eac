package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required":     "is required",
	"email":        "must be a valid email",
	"alphanum":     "must contain only alphanumeric characters",
	"min":          "must be at least %s characters long",
	"max":          "maximum at %s characters long",
	"eqfield":      "must match %s",
	"password":     "must be at least 8 characters long, contain at least one special character, and one uppercase letter",
	"numeric":      "must be a number",
	"len":          "must be %s characters long",
	"oneof":        "must be one of [%s]",
	"url":          "must be a valid URL",
	"phone_number": "must be a valid international phone number",
	"slot_date":    "must be a date in YYYY-MM-DD format",
	"slot_time":    "must be a time in HH:MM format",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":     true,
	"max":     true,
	"len":     true,
	"eqfield": true,
	"oneof":   true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientNotAuthorized                 = "you can't access this feature"
	ErrClientNotLoggedIn                   = "your session ended, please login again"
	ErrClientInvalidEmailOrPassword        = "invalid email or password"
	ErrClientEmailAlreadyExists            = "email already used"
	ErrClientPasswordsDoNotMatch           = "passwords do not match"
	ErrClientSlotNotFound                  = "time slot not found"
	ErrClientSlotNotAvailable              = "slot no longer available"
	ErrClientSlotOverlaps                  = "slot overlaps an existing slot"
	ErrClientSlotHasBooking                = "slot already has a booking and cannot be deleted"
	ErrClientAppointmentNotFound           = "appointment not found"
	ErrClientLawyerNotFound                = "lawyer not found"
)

// Error messages for developers
const (
	ErrDevInvalidInput             = "invalid input"
	ErrDevValidationFailed         = "validation failed"
	ErrDevCannotParseJSON          = "cannot parse JSON into struct or other data types"
	ErrDevCannotMarshalJSON        = "cannot convert struct or other data types to JSON"
	ErrDevCannotParseForm          = "cannot parse url-encoded form body"
	ErrDevBuildRequest             = "encountering error while building request DTO"
	ErrDevURLParamIDValidation     = "parameter %s validation failed"
	ErrDevFailedToHashPassword     = "failed to hash password"
	ErrDevFailedToCreateUser       = "failed to create user"
	ErrDevInvalidCredentials       = "invalid credentials"
	ErrDevEmailAlreadyExists       = "email already exists"
	ErrDevPasswordsDoNotMatch      = "passwords do not match"
	ErrDevUserNotExists            = "user not exists in our system"
	ErrDevRoleTypeDoesntMatch      = "request done by user with different role"
	ErrDevSlotNotExists            = "time slot not exists"
	ErrDevSlotNotAvailable         = "time slot is not available anymore"
	ErrDevSlotOverlaps             = "time slot overlaps another slot of the same lawyer on the same date"
	ErrDevSlotStillBooked          = "time slot is referenced by a non-cancelled appointment"
	ErrDevAppointmentNotExists     = "appointment not exists"
	ErrDevAppointmentRolledBack    = "appointment insert rolled back after slot flip failure"
	ErrDevLawyerNotExists          = "lawyer not exists"
	ErrDevPaymentMerchantMismatch  = "callback merchant id does not match configured merchant id"
	ErrDevPaymentSignatureMismatch = "callback signature does not match computed signature"
	ErrDevPaymentEmptyTransaction  = "callback transaction id resolves to an empty appointment id"

	// Auth messages
	ErrDevAuthSigningMethod         = "unexpected signing method"
	ErrDevAuthTokenInvalid          = "invalid token"
	ErrDevAuthTokenInvalidOrExpired = "invalid or expired token"
	ErrDevAuthTokenMissing          = "token missing"
	ErrDevAuthGenerateToken         = "failed to generate token"
	ErrDevRedisStoreSession         = "failed to store session in redis"

	// Database messages
	ErrDevDBFailedToInsertDocument   = "failed to insert document into database"
	ErrDevDBFailedToUpdateDocument   = "failed to update document into database"
	ErrDevDBFailedToFindDocument     = "failed when do find document on database"
	ErrDevDBFailedToDeleteDocument   = "failed when do delete document on database"
	ErrDevDBFailedToIterateDocuments = "failed when iterating documents from database"
	ErrDevDBStringNotObjectID        = "given ID is not valid object ID"

	// Redis messages
	ErrDevRedisSetData    = "failed to SET data into redis"
	ErrDevRedisGetData    = "failed to GET data from redis"
	ErrDevRedisGetNoData  = "failed to GET data from redis, there is no data associated with key %s"
	ErrDevRedisDeleteData = "failed to DELETE data from redis"

	// Minio messages
	ErrDevMinioFailedToCreateObject = "failed to create object into minio storage with bucket name '%s'"

	// RabbitMQ messages
	ErrDevRabbitMQPublish = "failed to publish message to rabbitmq queue %s"

	// Server messages
	ErrDevServerProcess          = "server failed to process something related to machine system"
	ErrDevServerDeadlineExceeded = "deadline exceeded"
	ErrDevServerParseSessionData = "failed to parse session data"
)

const (
	ErrEnvParsing     = "Error parsing %s: %v, will use default value"
	ErrEnvKeyNotExist = "Error getting env key: %s, will use default value"
)
