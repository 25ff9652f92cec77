package constvars

const (
	MongoCollectionUsers           = "users"
	MongoCollectionBookings        = "bookings"
	MongoCollectionBookingSlots    = "booking_slots"
	MongoCollectionChecklistItems  = "checklist_items"
	MongoCollectionLinks           = "links"
	MongoCollectionSurveyResponses = "survey_responses"
)

const (
	RoleCustomer = "customer"
	RoleAdmin    = "admin"
)

const (
	RegexContainAtLeastOneSpecialChar = `[!@#\$%\^&\*\(\)_\+\-=\[\]\{\};':"\\|,\.<>\/\?]`
	RegexContainAtLeastOneUppercase   = `[A-Z]`
)

const (
	AppPaginationUrlFormat = "%s?page=%d&page_size=%d"
	DateOnlyFormat         = "2006-01-02"
	SlotTimeFormat         = "15:04"
)

const (
	LoginAttemptKeyFormat      = "login_attempts:%s"
	MaxFailedLoginAttempts     = 5
	FailedLoginWindowInMinutes = 15
)
