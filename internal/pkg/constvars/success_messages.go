package constvars

const (
	RegisterSuccessMessage   = "successfully registered"
	LoginSuccessMessage      = "successfully logged in"
	LogoutSuccessMessage     = "successfully logged out"
	GetProfileSuccessMessage = "successfully fetched profile"
	UpdateUserSuccessMessage = "successfully updated profile"

	ListSurveysSuccessMessage          = "successfully fetched surveys"
	GetSurveySuccessMessage            = "successfully fetched survey"
	SubmitSurveyResponseSuccessMessage = "successfully submitted survey response"
	ListSurveyResponsesSuccessMessage  = "successfully fetched survey responses"

	GetBookingWeekSuccessMessage = "successfully fetched booking week"
	ToggleSlotSuccessMessage     = "successfully toggled booking slot"
	CreateBookingSuccessMessage  = "successfully created booking"
	CancelBookingSuccessMessage  = "successfully cancelled booking"

	ListFilesSuccessMessage = "successfully fetched files"

	ListChecklistSuccessMessage   = "successfully fetched checklist"
	CreateChecklistSuccessMessage = "successfully created checklist item"
	ToggleChecklistSuccessMessage = "successfully toggled checklist item"
	DeleteChecklistSuccessMessage = "successfully deleted checklist item"

	ListLinksSuccessMessage  = "successfully fetched links"
	CreateLinkSuccessMessage = "successfully created link"
	UpdateLinkSuccessMessage = "successfully updated link"
	DeleteLinkSuccessMessage = "successfully deleted link"
)
