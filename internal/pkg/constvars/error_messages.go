package constvars

// Client messages are safe for end users; Dev messages are for logs only.
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientNotAuthorized                 = "you can't access this feature"
	ErrClientNotLoggedIn                   = "your session ended, please login again"
	ErrClientInvalidUsernameOrPassword     = "invalid username or password"
	ErrClientPasswordsDoNotMatch           = "passwords do not match"
	ErrClientEmailAlreadyExists            = "email already used"
	ErrClientUsernameAlreadyExists         = "username already used"
	ErrClientSurveyUnavailable             = "survey unavailable"
	ErrClientSlotUnavailable               = "this slot is not available anymore"
	ErrClientSlotOutsideWorkingHours       = "this time is outside the clinic's working hours"
	ErrClientTooManyLoginAttempts          = "too many failed login attempts, please try again later"
	ErrClientBookingNotFound               = "booking not found"
	ErrClientChecklistItemNotFound         = "checklist item not found"
	ErrClientLinkNotFound                  = "link not found"
)

const (
	ErrDevInvalidInput          = "invalid input"
	ErrDevValidationFailed      = "request validation failed"
	ErrDevCannotParseJSON       = "cannot parse JSON into struct or other data types"
	ErrDevCannotMarshalJSON     = "cannot convert struct or other data types to JSON"
	ErrDevCannotParseDate       = "cannot parse the requested date"
	ErrDevURLParamIDValidation  = "missing or malformed url param %s"
	ErrDevServerProcess         = "internal process failed"
	ErrDevServerDeadlineExceeded = "context deadline exceeded while processing request"

	ErrDevAuthTokenMissing          = "authorization token is missing"
	ErrDevAuthTokenInvalid          = "authorization token is invalid"
	ErrDevAuthTokenInvalidOrExpired = "authorization token is invalid or already expired"
	ErrDevAuthGenerateToken         = "failed to generate authorization token"
	ErrDevAuthSigningMethod         = "unexpected JWT signing method"
	ErrDevAuthInvalidSession        = "session not found or already expired"
	ErrDevAuthRoleNotAllowed        = "session role is not allowed to access this resource"
	ErrDevFailedToHashPassword      = "failed to hash password"
	ErrDevInvalidCredentials        = "invalid credentials"
	ErrDevPasswordsDoNotMatch       = "passwords do not match"
	ErrDevEmailAlreadyExists        = "email already exists"
	ErrDevUsernameAlreadyExists     = "username already exists"
	ErrDevUserNotExists             = "user not exists in our system"

	ErrDevDBFailedToFindDocument     = "failed to find document"
	ErrDevDBFailedToInsertDocument   = "failed to insert document"
	ErrDevDBFailedToUpdateDocument   = "failed to update document"
	ErrDevDBFailedToDeleteDocument   = "failed to delete document"
	ErrDevDBFailedToIterateDocuments = "failed to iterate documents"
	ErrDevDBStringNotObjectID        = "given string cannot be converted to mongo ObjectID"

	ErrDevRedisGetData       = "failed to get data from redis"
	ErrDevRedisSetData       = "failed to set data to redis"
	ErrDevRedisDeleteData    = "failed to delete data from redis"
	ErrDevRedisGetNoData     = "no data found in redis for key %s"
	ErrDevRedisIncrementValue = "failed to increment redis value"

	ErrDevMinioFailedToListObjects  = "failed to list objects from bucket %s"
	ErrDevMinioFailedToPresignedURL = "failed to build presigned url for bucket %s"

	ErrDevRabbitMQPublishMessage = "failed to publish message to queue %s"
	ErrDevRabbitMQConsumeQueue   = "failed to consume messages from queue %s"

	ErrDevSurveyNotFound          = "survey not found in catalog"
	ErrDevBookingSlotUnavailable  = "booking slot is closed or already booked"
	ErrDevBookingTimeOutsideHours = "slot time falls outside the configured working day"
	ErrDevTooManyLoginAttempts    = "failed login attempt limit reached for this username"
	ErrDevBookingSlotStillBooked  = "booking slot still holds an active booking"
	ErrDevBookingNotFound         = "booking not found"
	ErrDevBookingNotOwnedBy       = "booking does not belong to the requesting user"
	ErrDevChecklistItemNotFound   = "checklist item not found"
	ErrDevLinkNotFound            = "link not found"
)

var CustomValidationErrorMessages = map[string]string{
	"required": "is required",
	"email":    "must be a valid email address",
	"alphanum": "must contain only letters and numbers",
	"min":      "must be at least %s characters long",
	"max":      "must be at most %s characters long",
	"eqfield":  "must be equal to %s",
	"password": "must be at least 8 characters with one uppercase letter and one special character",
	"url":      "must be a valid url",
}
