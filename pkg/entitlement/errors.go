package entitlement

import "errors"

var (
	ErrInvalidFeatureKind = errors.New("entitlement: invalid feature kind")
	ErrInvalidTierKind    = errors.New("entitlement: invalid tier kind")
	ErrAccessDenied       = errors.New("entitlement: access denied")

	ErrInvalidPlanConfiguration = errors.New("entitlement: invalid plan configuration")
	ErrFailedToLoadPlans        = errors.New("entitlement: failed to load plans")
)
