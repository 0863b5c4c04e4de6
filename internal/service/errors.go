package service

import "errors"

// Domain outcomes surfaced to the caller. httpserver maps each to its own
// HTTP status; anything else is reported as a generic server failure.
var (
	ErrValidation         = errors.New("validation")          // 400
	ErrNotFound           = errors.New("not found")           // 404
	ErrForbidden          = errors.New("forbidden")           // 403
	ErrInvalidCredentials = errors.New("invalid credentials") // 401
	ErrVendorConflict     = errors.New("vendor conflict")     // 409
	ErrEmptyBasket        = errors.New("empty basket")        // 400
	ErrInvalidStatus      = errors.New("invalid status")      // 400
	ErrInvalidState       = errors.New("invalid state")       // 409
	ErrConflict           = errors.New("conflict")            // 409
)
