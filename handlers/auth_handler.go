package handlers

import (
	"net/http"

	"lawbandhu-backend/models"
	"lawbandhu-backend/service"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles HTTP requests for sign-in and profile
type AuthHandler struct {
	auth *service.AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(auth *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// SendEmailOTPRequest represents the request body for POST /api/auth/send-email-otp
type SendEmailOTPRequest struct {
	Email string `json:"email" binding:"required"`
}

// VerifyEmailOTPRequest represents the request body for POST /api/auth/verify-email-otp
type VerifyEmailOTPRequest struct {
	Email string `json:"email" binding:"required"`
	OTP   string `json:"otp"   binding:"required,len=6,numeric"`
}

// SendPhoneOTPRequest represents the request body for POST /api/auth/send-otp
type SendPhoneOTPRequest struct {
	Phone string `json:"phone" binding:"required"`
}

// VerifyPhoneOTPRequest represents the request body for POST /api/auth/verify-otp
type VerifyPhoneOTPRequest struct {
	Phone string `json:"phone" binding:"required"`
	OTP   string `json:"otp"   binding:"required,len=6,numeric"`
}

// SetRoleRequest represents the request body for PUT /api/auth/role
type SetRoleRequest struct {
	Role string `json:"role" binding:"required"`
}

// SendEmailOTP handles POST /api/auth/send-email-otp
func (h *AuthHandler) SendEmailOTP(c *gin.Context) {
	var req SendEmailOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}
	h.sendOTP(c, service.ChannelEmail, req.Email, "OTP sent to your email")
}

// VerifyEmailOTP handles POST /api/auth/verify-email-otp
func (h *AuthHandler) VerifyEmailOTP(c *gin.Context) {
	var req VerifyEmailOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}
	h.verifyOTP(c, service.ChannelEmail, req.Email, req.OTP)
}

// SendPhoneOTP handles POST /api/auth/send-otp
func (h *AuthHandler) SendPhoneOTP(c *gin.Context) {
	var req SendPhoneOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}
	h.sendOTP(c, service.ChannelPhone, req.Phone, "OTP sent to your phone")
}

// VerifyPhoneOTP handles POST /api/auth/verify-otp
func (h *AuthHandler) VerifyPhoneOTP(c *gin.Context) {
	var req VerifyPhoneOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}
	h.verifyOTP(c, service.ChannelPhone, req.Phone, req.OTP)
}

func (h *AuthHandler) sendOTP(c *gin.Context, channel service.Channel, identifier, message string) {
	if err := h.auth.SendOTP(c.Request.Context(), channel, identifier); err != nil {
		respondServiceError(c, err)
		return
	}
	respond(c, http.StatusOK, gin.H{"message": message})
}

func (h *AuthHandler) verifyOTP(c *gin.Context, channel service.Channel, identifier, code string) {
	result, err := h.auth.VerifyOTP(c.Request.Context(), channel, identifier, code)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respond(c, http.StatusOK, result)
}

// Me handles GET /api/auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	user, err := h.auth.Me(c.Request.Context(), currentUser(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respond(c, http.StatusOK, user)
}

// SetRole handles PUT /api/auth/role
func (h *AuthHandler) SetRole(c *gin.Context) {
	var req SetRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	user, err := h.auth.SetRole(c.Request.Context(), currentUser(c), models.UserRole(req.Role))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	// the role is baked into the token, so hand out a fresh one
	token, expiresAt, err := h.auth.IssueToken(user)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	respond(c, http.StatusOK, service.AuthResult{Token: token, ExpiresAt: expiresAt, User: user})
}
