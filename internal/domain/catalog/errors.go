package catalog

import "permit-quotation-service/internal/pkg/errs"

var (
	ErrInvalidAgencyName  = errs.Categorize("agency name must be 1-200 characters", errs.ErrValidation)
	ErrInvalidPermitName  = errs.Categorize("permit type name must be 1-200 characters", errs.ErrValidation)
	ErrNegativePrice      = errs.Categorize("permit type price must not be negative", errs.ErrValidation)
	ErrDescriptionTooLong = errs.Categorize("permit type description is too long", errs.ErrValidation)
	ErrAgencyRequired     = errs.Categorize("permit type requires an agency", errs.ErrValidation)
)
