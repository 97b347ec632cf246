package handlers

import (
	"context"
	"errors"
	"net/http"

	"lawbandhu-backend/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// respond writes a success envelope
func respond(c *gin.Context, status int, data interface{}) {
	c.JSON(status, gin.H{
		"success": true,
		"data":    data,
	})
}

// respondError writes a failure envelope
func respondError(c *gin.Context, status int, code, message string) {
	c.JSON(status, gin.H{
		"success": false,
		"error": gin.H{
			"code":    code,
			"message": message,
		},
	})
}

// abortError writes a failure envelope and stops the handler chain
func abortError(c *gin.Context, status int, code, message string) {
	respondError(c, status, code, message)
	c.Abort()
}

type serviceError struct {
	status int
	code   string
}

var serviceErrors = map[error]serviceError{
	service.ErrLawyerNotFound:   {http.StatusNotFound, "LAWYER_NOT_FOUND"},
	service.ErrCaseNotFound:     {http.StatusNotFound, "CASE_NOT_FOUND"},
	service.ErrDocumentNotFound: {http.StatusNotFound, "DOCUMENT_NOT_FOUND"},
	service.ErrUserNotFound:     {http.StatusNotFound, "USER_NOT_FOUND"},
	service.ErrInvalidStatus:    {http.StatusBadRequest, "INVALID_STATUS"},
	service.ErrInvalidRole:      {http.StatusBadRequest, "INVALID_ROLE"},
	service.ErrInvalidField:     {http.StatusBadRequest, "INVALID_FIELD"},
	service.ErrEmptyQuery:       {http.StatusBadRequest, "EMPTY_QUERY"},
	service.ErrUnsupportedFile:  {http.StatusBadRequest, "INVALID_FILE_TYPE"},
	service.ErrInvalidEmail:     {http.StatusBadRequest, "INVALID_EMAIL"},
	service.ErrInvalidPhone:     {http.StatusBadRequest, "INVALID_PHONE"},
	service.ErrOTPNotFound:      {http.StatusBadRequest, "OTP_NOT_FOUND"},
	service.ErrOTPExpired:       {http.StatusBadRequest, "OTP_EXPIRED"},
	service.ErrTooManyAttempts:  {http.StatusTooManyRequests, "TOO_MANY_ATTEMPTS"},
	service.ErrInvalidOTP:       {http.StatusUnauthorized, "INVALID_OTP"},
	service.ErrInvalidToken:     {http.StatusUnauthorized, "UNAUTHORIZED"},
	service.ErrAINotConfigured:  {http.StatusServiceUnavailable, "AI_NOT_CONFIGURED"},
}

// respondServiceError maps a service error onto the envelope. Unknown errors
// are logged and reported as 500 without leaking their text.
func respondServiceError(c *gin.Context, err error) {
	if errors.Is(err, service.ErrAIUnavailable) {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"success": false,
			"error": gin.H{
				"code":      "AI_UNAVAILABLE",
				"message":   service.AIErrorMessage(),
				"retryable": true,
			},
		})
		return
	}

	for target, se := range serviceErrors {
		if errors.Is(err, target) {
			respondError(c, se.status, se.code, target.Error())
			return
		}
	}

	if errors.Is(err, context.Canceled) {
		// client went away; nothing useful to write
		c.Status(499)
		return
	}

	log.Error().Err(err).
		Str("path", c.FullPath()).
		Str("request_id", requestID(c)).
		Msg("Request failed")
	respondError(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Something went wrong")
}
