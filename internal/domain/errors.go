package domain

import "errors"

// Sentinel errors for the domain layer. These provide consistent, checkable
// errors for common business logic failures.
var (
	ErrNotFound        = errors.New("requested resource not found")
	ErrForbidden       = errors.New("resource belongs to another user")
	ErrUnsupportedType = errors.New("unsupported file type")
	ErrFileTooLarge    = errors.New("file exceeds the configured size limit")
	ErrInvalidUpload   = errors.New("invalid upload")
	ErrFilenameTooLong = errors.New("filename is too long")
)
