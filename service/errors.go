package service

import "errors"

var (
	ErrLawyerNotFound   = errors.New("lawyer not found")
	ErrCaseNotFound     = errors.New("case not found")
	ErrDocumentNotFound = errors.New("document not found")
	ErrUserNotFound     = errors.New("user not found")

	ErrInvalidStatus   = errors.New("invalid payment status")
	ErrInvalidRole     = errors.New("role must be client or lawyer")
	ErrInvalidField    = errors.New("unknown legal field")
	ErrEmptyQuery      = errors.New("query is empty")
	ErrUnsupportedFile = errors.New("unsupported document type")
	ErrInvalidEmail    = errors.New("invalid email address")
	ErrInvalidPhone    = errors.New("invalid phone number")

	ErrOTPNotFound     = errors.New("OTP expired or not found")
	ErrOTPExpired      = errors.New("OTP has expired")
	ErrTooManyAttempts = errors.New("too many failed attempts")
	ErrInvalidOTP      = errors.New("invalid OTP")
	ErrInvalidToken    = errors.New("invalid or expired token")

	ErrAINotConfigured = errors.New("AI assistant is not configured")
	ErrAIUnavailable   = errors.New("AI assistant is unavailable")
)
