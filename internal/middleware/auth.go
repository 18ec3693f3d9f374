package middleware

import (
	"fmt"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"expensetracker/internal/config"
	apperrors "expensetracker/internal/errors"
	"expensetracker/internal/ids"
)

// Context keys set by AuthMiddleware.
const (
	ContextUsername      = "username"
	ContextSessionID     = "sessionID"
	ContextSessionExpiry = "sessionExpiry"
)

const tokenIssuer = "expensetracker-api"

// Claims represents the claims in a session token.
type Claims struct {
	Username  string `json:"username"`
	SessionID string `json:"sid"`
	Remember  bool   `json:"remember,omitempty"`
	jwt.RegisteredClaims
}

// TokenIssuer signs and verifies HS256 session tokens.
type TokenIssuer struct {
	secret      []byte
	ttl         time.Duration
	rememberTTL time.Duration
	now         func() time.Time
}

// NewTokenIssuer creates a TokenIssuer from the application config.
func NewTokenIssuer(cfg *config.Config) *TokenIssuer {
	return &TokenIssuer{
		secret:      []byte(cfg.JWTSecret),
		ttl:         cfg.JWTExpirationDur,
		rememberTTL: cfg.RememberMeDuration,
		now:         time.Now,
	}
}

// Issue starts a new session for username. A remembered session uses the
// longer remember-me lifetime.
func (i *TokenIssuer) Issue(username string, remember bool) (string, *Claims, error) {
	ttl := i.ttl
	if remember {
		ttl = i.rememberTTL
	}
	now := i.now()
	sessionID := ids.New()

	claims := &Claims{
		Username:  username,
		SessionID: sessionID,
		Remember:  remember,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        sessionID,
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    tokenIssuer,
			Subject:   username,
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
	if err != nil {
		return "", nil, err
	}
	return token, claims, nil
}

// Parse verifies the signature and expiry of tokenString.
func (i *TokenIssuer) Parse(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return i.secret, nil
	}, jwt.WithIssuer(tokenIssuer), jwt.WithTimeFunc(i.now))
	if err != nil || !token.Valid {
		return nil, fmt.Errorf("invalid session token: %w", err)
	}
	if claims.Username == "" || claims.SessionID == "" || claims.ExpiresAt == nil {
		return nil, fmt.Errorf("session token is missing claims")
	}
	return claims, nil
}

// SessionChecker reports sessions ended before their token expired.
type SessionChecker interface {
	Ended(sessionID string) bool
}

// AuthMiddleware verifies the bearer token and sets the username and session
// id in the context. sessions may be nil.
func AuthMiddleware(issuer *TokenIssuer, sessions SessionChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abortWithError(c, apperrors.WithMessage(apperrors.ErrUnauthorized, "Authorization header is required"))
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			abortWithError(c, apperrors.WithMessage(apperrors.ErrUnauthorized, "Invalid authorization header format"))
			return
		}

		claims, err := issuer.Parse(parts[1])
		if err != nil {
			abortWithError(c, apperrors.WithMessage(apperrors.ErrUnauthorized, "Invalid or expired token"))
			return
		}
		if sessions != nil && sessions.Ended(claims.SessionID) {
			abortWithError(c, apperrors.WithMessage(apperrors.ErrUnauthorized, "Session has ended"))
			return
		}

		c.Set(ContextUsername, claims.Username)
		c.Set(ContextSessionID, claims.SessionID)
		c.Set(ContextSessionExpiry, claims.ExpiresAt.Time)
		c.Next()
	}
}

func abortWithError(c *gin.Context, err error) {
	RespondError(c, err)
	c.Abort()
}
