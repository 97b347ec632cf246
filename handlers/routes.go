package handlers

import (
	"github.com/gin-gonic/gin"
)

// Routes bundles everything the API router needs
type Routes struct {
	Health    *HealthHandler
	Auth      *AuthHandler
	Assistant *AssistantHandler
	Lawyers   *LawyerHandler
	Cases     *CaseHandler
	Payments  *PaymentHandler

	Tokens        TokenParser
	OTPLimiter    *RateLimiter
	AllowedOrigin string
}

// NewRouter builds the gin engine with middleware and every API route
func NewRouter(rt Routes) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), RequestLogger(), CORS(rt.AllowedOrigin))

	r.GET("/health", rt.Health.Health)

	api := r.Group("/api")

	auth := api.Group("/auth")
	{
		auth.POST("/send-email-otp", limited(rt.OTPLimiter, rt.Auth.SendEmailOTP)...)
		auth.POST("/verify-email-otp", rt.Auth.VerifyEmailOTP)
		auth.POST("/send-otp", limited(rt.OTPLimiter, rt.Auth.SendPhoneOTP)...)
		auth.POST("/verify-otp", rt.Auth.VerifyPhoneOTP)
	}

	protected := api.Group("", RequireAuth(rt.Tokens))
	{
		protected.GET("/auth/me", rt.Auth.Me)
		protected.PUT("/auth/role", rt.Auth.SetRole)

		protected.POST("/assistant/classify", rt.Assistant.Classify)
		protected.POST("/assistant/ask", rt.Assistant.Ask)

		protected.GET("/lawyers", rt.Lawyers.ListLawyers)
		protected.GET("/lawyers/options", rt.Lawyers.GetOptions)
		protected.GET("/lawyers/recommended", rt.Lawyers.Recommended)
		protected.GET("/lawyers/:id", rt.Lawyers.GetLawyer)
		protected.POST("/lawyers/:id/star", rt.Lawyers.ToggleStar)

		protected.GET("/cases", rt.Cases.ListCases)
		protected.GET("/cases/:id", rt.Cases.GetCase)
		protected.POST("/cases/:id/documents", rt.Cases.UploadDocument)
		protected.GET("/documents/:id", rt.Cases.GetDocument)

		protected.GET("/payments", rt.Payments.ListPayments)
	}

	return r
}

func limited(rl *RateLimiter, h gin.HandlerFunc) []gin.HandlerFunc {
	if rl == nil {
		return []gin.HandlerFunc{h}
	}
	return []gin.HandlerFunc{rl.Middleware(), h}
}
