package quotation

import "permit-quotation-service/internal/pkg/errs"

var (
	ErrFirstNameRequired  = errs.Categorize("first name is required", errs.ErrValidation)
	ErrLastNameRequired   = errs.Categorize("last name is required", errs.ErrValidation)
	ErrInvalidEmail       = errs.Categorize("email is invalid", errs.ErrValidation)
	ErrInvalidPhone       = errs.Categorize("phone number is invalid", errs.ErrValidation)
	ErrFieldTooLong       = errs.Categorize("value is too long", errs.ErrValidation)
	ErrInvalidServiceType = errs.Categorize("service type must be permit_acquisition or monitoring", errs.ErrValidation)
	ErrInvalidStatus      = errs.Categorize("status is invalid", errs.ErrValidation)
	ErrInvalidAction      = errs.Categorize("action must be approve or decline", errs.ErrValidation)
	ErrProjectTypeMissing = errs.Categorize("project type is required", errs.ErrValidation)
	ErrCustomNameRequired = errs.Categorize("custom permit name is required", errs.ErrValidation)
	ErrInvalidSelection   = errs.New("permit request must reference exactly one of permit type or custom name")

	ErrAlreadySent      = errs.Categorize("quotation has already been sent", errs.ErrConflict)
	ErrAlreadyAnswered  = errs.Categorize("quotation has already been answered", errs.ErrConflict)
	ErrNotAwaitingReply = errs.Categorize("quotation has not been sent to the client", errs.ErrConflict)
	ErrEstimateRequired = errs.Categorize("an estimate must exist before sending the quotation", errs.ErrBusinessRule)
)
