package domain

import "errors"

// Sentinel errors shared by services and repositories. Callers match them with errors.Is.
var (
	ErrNotFound             = errors.New("not found")
	ErrOrganizationNotFound = errors.New("organization not found")
	ErrForbidden            = errors.New("forbidden")
	ErrInvalidInput         = errors.New("invalid input")

	// ErrTokenExpired is returned by a TokenVerifier for a well-formed token past its expiry.
	ErrTokenExpired = errors.New("token expired")

	// ErrAlreadySaved is returned when saving an event the user has already saved.
	ErrAlreadySaved = errors.New("event already saved")
	// ErrNotSaved is returned when unsaving an event the user has not saved.
	ErrNotSaved = errors.New("event not saved")

	// ErrTagAttachFailed and ErrOrganizationLinkFailed classify a failed step of an event
	// write after the event row was persisted; the whole write has been rolled back.
	ErrTagAttachFailed        = errors.New("attaching tags failed, event rolled back")
	ErrOrganizationLinkFailed = errors.New("linking organization failed, event rolled back")
)
