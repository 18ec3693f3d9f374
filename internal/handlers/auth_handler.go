package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"expensetracker/internal/dashboard"
	apperrors "expensetracker/internal/errors"
	"expensetracker/internal/middleware"
	"expensetracker/internal/services"
)

// AuthHandler handles authentication-related requests
type AuthHandler struct {
	userService  services.UserServicer
	auditService services.AuditServicer
	issuer       *middleware.TokenIssuer
	sessions     *dashboard.Registry
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(userService services.UserServicer, auditService services.AuditServicer, issuer *middleware.TokenIssuer, sessions *dashboard.Registry) *AuthHandler {
	return &AuthHandler{
		userService:  userService,
		auditService: auditService,
		issuer:       issuer,
		sessions:     sessions,
	}
}

// RegisterRequest represents the registration request payload
type RegisterRequest struct {
	Username   string `json:"username" binding:"required,max=255"`
	Password   string `json:"password" binding:"required,max=128"`
	RememberMe bool   `json:"remember_me"`
}

// LoginRequest represents the login request payload
type LoginRequest struct {
	Username   string `json:"username" binding:"required"`
	Password   string `json:"password" binding:"required"`
	RememberMe bool   `json:"remember_me"`
}

// UserResponse represents the user data in the response
type UserResponse struct {
	Username      string          `json:"username"`
	MonthlyBudget decimal.Decimal `json:"monthly_budget"`
}

// AuthResponse represents the authentication response with token
type AuthResponse struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expires_at"`
	User      UserResponse `json:"user"`
}

// Register handles user registration
// @Summary     Register a new user
// @Description Register a new user and start a session
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       request body RegisterRequest true "User registration data"
// @Success     201 {object} AuthResponse "User registered and token generated"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     409 {object} ErrorResponse "Username already exists"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	user, err := h.userService.RegisterUser(req.Username, req.Password)
	if err != nil {
		respondWithError(c, err)
		return
	}

	resp, err := h.startSession(user.Username, user.MonthlyBudget, req.RememberMe)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(user.Username, services.ActionRegister, "user", "", c.ClientIP(), nil)
	c.JSON(http.StatusCreated, resp)
}

// Login handles user login
// @Summary     Login user
// @Description Authenticate a user and get a token. remember_me issues a long-lived token.
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       request body LoginRequest true "User login credentials"
// @Success     200 {object} AuthResponse "User authenticated and token generated"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Invalid credentials"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	if !h.userService.Authenticate(req.Username, req.Password) {
		respondWithError(c, apperrors.ErrInvalidCredentials)
		return
	}

	user, err := h.userService.GetUser(req.Username)
	if err != nil {
		respondWithError(c, err)
		return
	}

	resp, err := h.startSession(user.Username, user.MonthlyBudget, req.RememberMe)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Logout ends the current session
// @Summary     Logout
// @Description End the current session; its token is rejected afterwards
// @Tags        auth
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} MessageResponse
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	if _, err := getUsername(c); err != nil {
		respondWithError(c, err)
		return
	}

	sessionID, expiresAt := getSession(c)
	h.sessions.End(sessionID, expiresAt)
	c.JSON(http.StatusOK, MessageResponse{Message: "Logged out"})
}

// GetProfile returns the user's profile
// @Summary     Get user profile
// @Description Get the authenticated user's username and monthly budget
// @Tags        users
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} UserResponse
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "User not found"
// @Router      /profile [get]
func (h *AuthHandler) GetProfile(c *gin.Context) {
	username, err := getUsername(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	user, err := h.userService.GetUser(username)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, UserResponse{Username: user.Username, MonthlyBudget: user.MonthlyBudget})
}

func (h *AuthHandler) startSession(username string, budget decimal.Decimal, remember bool) (*AuthResponse, error) {
	token, claims, err := h.issuer.Issue(username, remember)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	h.sessions.Start(claims.SessionID, username)

	return &AuthResponse{
		Token:     token,
		ExpiresAt: claims.ExpiresAt.Time,
		User:      UserResponse{Username: username, MonthlyBudget: budget},
	}, nil
}
