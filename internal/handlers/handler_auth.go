package handlers

import (
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	"github.com/petcarehq/petcare-backend/internal/core/services"
	"github.com/petcarehq/petcare-backend/internal/dto"
	"github.com/petcarehq/petcare-backend/internal/middleware"
	"github.com/petcarehq/petcare-backend/internal/platform/config"
)

const oauthStateCookie = "oauth_state"

type authHandler struct {
	userService   *services.UserService
	googleService *services.GoogleOAuthService
	frontendBase  string
}

func newAuthHandler(userService *services.UserService, googleService *services.GoogleOAuthService, cfg *config.Config) *authHandler {
	return &authHandler{
		userService:   userService,
		googleService: googleService,
		frontendBase:  cfg.FrontendBaseURL,
	}
}

// Register creates a new staff user account.
// @Summary Register a new user
// @Description Creates a staff user with an email and password
// @Tags auth
// @Accept json
// @Produce json
// @Param user body dto.CreateUserRequest true "User details"
// @Success 201 {object} dto.UserResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /auth/register [post]
func (h *authHandler) Register(c *gin.Context) {
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	user, err := h.userService.CreateUser(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToUserResponse(user))
}

// Login authenticates a user and returns a JWT.
// @Summary Log in
// @Description Authenticates with email and password, returns a bearer token
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body dto.LoginRequest true "Login credentials"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /auth/login [post]
func (h *authHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	token, _, err := h.userService.Login(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.LoginResponse{Token: token})
}

// RequestPasswordReset starts the password reset flow for an email.
// @Summary Request a password reset
// @Description Issues a short-lived reset token for the given email
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.PasswordResetRequest true "Account email"
// @Success 202 {object} map[string]string
// @Failure 400 {object} ErrorResponse
// @Router /auth/password-reset [post]
func (h *authHandler) RequestPasswordReset(c *gin.Context) {
	var req dto.PasswordResetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	token, err := h.userService.RequestPasswordReset(c.Request.Context(), req.Email)
	if err != nil {
		respondError(c, err)
		return
	}

	// Same response whether or not the email exists. The token only travels
	// back in the body until an email sender is wired up.
	resp := gin.H{"message": "if the account exists, a reset token has been issued"}
	if token != "" {
		resp["reset_token"] = token
	}
	c.JSON(http.StatusAccepted, resp)
}

// ConfirmPasswordReset redeems a reset token and sets a new password.
// @Summary Confirm a password reset
// @Description Redeems a reset token and stores the new password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.PasswordResetConfirmRequest true "Token and new password"
// @Success 200 {object} map[string]string
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /auth/password-reset/confirm [post]
func (h *authHandler) ConfirmPasswordReset(c *gin.Context) {
	var req dto.PasswordResetConfirmRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.userService.ConfirmPasswordReset(c.Request.Context(), req.Token, req.NewPassword); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "password updated"})
}

// GoogleLogin redirects the browser to Google's consent screen.
// @Summary Start Google sign-in
// @Description Redirects to Google's OAuth consent screen
// @Tags auth
// @Success 307
// @Failure 503 {object} ErrorResponse
// @Router /auth/google/login [get]
func (h *authHandler) GoogleLogin(c *gin.Context) {
	if !h.googleService.Enabled() {
		c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: "google sign-in is not configured"})
		return
	}

	state, err := h.googleService.GenerateStateString()
	if err != nil {
		respondError(c, err)
		return
	}

	c.SetCookie(oauthStateCookie, state, 600, "/", "", false, true)
	c.Redirect(http.StatusTemporaryRedirect, h.googleService.LoginURL(state))
}

// GoogleCallback completes the Google sign-in and issues a JWT.
// @Summary Google sign-in callback
// @Description Exchanges the authorization code, validates the identity and issues a bearer token
// @Tags auth
// @Produce json
// @Param code query string true "Authorization code"
// @Param state query string true "Opaque state value"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /auth/google/callback [get]
func (h *authHandler) GoogleCallback(c *gin.Context) {
	ctx := c.Request.Context()
	logger := middleware.GetLoggerFromCtx(ctx)

	if !h.googleService.Enabled() {
		c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: "google sign-in is not configured"})
		return
	}

	expectedState, err := c.Cookie(oauthStateCookie)
	if err != nil || expectedState == "" || c.Query("state") != expectedState {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid oauth state"})
		return
	}
	c.SetCookie(oauthStateCookie, "", -1, "/", "", false, true)

	code := c.Query("code")
	if code == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "authorization code is required"})
		return
	}

	oauthToken, err := h.googleService.ExchangeCode(ctx, code)
	if err != nil {
		logger.Error("failed to exchange google authorization code", "error", err)
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid or expired authorization code"})
		return
	}

	if idToken, ok := oauthToken.Extra("id_token").(string); ok && idToken != "" {
		if _, err := h.googleService.ValidateIDToken(ctx, idToken); err != nil {
			logger.Error("google id token validation failed", "error", err)
			c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "invalid google identity token"})
			return
		}
	}

	info, err := h.googleService.UserInfo(ctx, oauthToken)
	if err != nil {
		logger.Error("failed to fetch google user info", "error", err)
		respondError(c, err)
		return
	}

	user, err := h.userService.FindOrCreateGoogleUser(ctx, info)
	if err != nil {
		respondError(c, err)
		return
	}

	token, err := h.userService.IssueToken(user)
	if err != nil {
		respondError(c, err)
		return
	}

	if h.frontendBase != "" {
		redirect := h.frontendBase + "/auth/callback?token=" + url.QueryEscape(token)
		c.Redirect(http.StatusTemporaryRedirect, redirect)
		return
	}
	c.JSON(http.StatusOK, dto.LoginResponse{Token: token})
}

// registerAuthRoutes mounts the auth endpoints. Login is rate limited per IP.
func registerAuthRoutes(rg *gin.RouterGroup, userService *services.UserService, googleService *services.GoogleOAuthService, cfg *config.Config) {
	h := newAuthHandler(userService, googleService, cfg)

	rate, _ := limiter.NewRateFromFormatted("5-M")
	loginLimiter := limiter.New(memory.NewStore(), rate)

	authRoutes := rg.Group("/auth")
	{
		authRoutes.POST("/register", h.Register)
		authRoutes.POST("/login", middleware.RateLimit(loginLimiter), h.Login)
		authRoutes.POST("/password-reset", h.RequestPasswordReset)
		authRoutes.POST("/password-reset/confirm", h.ConfirmPasswordReset)
		authRoutes.GET("/google/login", h.GoogleLogin)
		authRoutes.GET("/google/callback", h.GoogleCallback)
	}
}
