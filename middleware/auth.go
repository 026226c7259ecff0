package middleware

import (
	"context"
	"crypto-cart/models"
	"crypto-cart/utils"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	UserIDKey    = "user_id"
	UserEmailKey = "user_email"
)

// SessionChecker reports whether userID is still signed in on sessionID.
// A token outlives a logout, so its claims alone do not authenticate.
type SessionChecker interface {
	IsSignedIn(ctx context.Context, sessionID, userID string) (bool, error)
}

func bearerToken(c *gin.Context) (string, bool) {
	authHeader := c.GetHeader("Authorization")
	tokenParts := strings.Split(authHeader, " ")
	if len(tokenParts) != 2 || tokenParts[0] != "Bearer" {
		return "", false
	}
	return tokenParts[1], true
}

// applyClaims binds the request to the token's identity. The session
// carried by the token wins over the X-Session-ID header.
func applyClaims(c *gin.Context, claims *utils.Claims) {
	c.Set(UserIDKey, claims.UserID)
	c.Set(UserEmailKey, claims.Email)
	if claims.SessionID != "" {
		c.Set(SessionKey, claims.SessionID)
		c.Header(SessionHeader, claims.SessionID)
	}
}

func claimsSession(c *gin.Context, claims *utils.Claims) string {
	if claims.SessionID != "" {
		return claims.SessionID
	}
	return SessionID(c)
}

func AuthMiddleware(tokens *utils.TokenIssuer, sessions SessionChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse{
				Success: false,
				Message: "Authorization header required",
			})
			c.Abort()
			return
		}

		token, ok := bearerToken(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse{
				Success: false,
				Message: "Invalid authorization header format",
			})
			c.Abort()
			return
		}

		claims, err := tokens.ValidateToken(token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse{
				Success: false,
				Message: "Invalid or expired token",
				Error:   err.Error(),
			})
			c.Abort()
			return
		}

		signedIn, err := sessions.IsSignedIn(c.Request.Context(), claimsSession(c, claims), claims.UserID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse{
				Success: false,
				Message: "Failed to verify session",
				Error:   err.Error(),
			})
			c.Abort()
			return
		}
		if !signedIn {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse{
				Success: false,
				Message: "Session is signed out",
			})
			c.Abort()
			return
		}

		applyClaims(c, claims)
		c.Next()
	}
}

// OptionalAuthMiddleware applies a bearer token whose user is still signed
// in and otherwise lets the request through anonymously.
func OptionalAuthMiddleware(tokens *utils.TokenIssuer, sessions SessionChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c)
		if !ok {
			c.Next()
			return
		}
		claims, err := tokens.ValidateToken(token)
		if err != nil {
			c.Next()
			return
		}

		signedIn, err := sessions.IsSignedIn(c.Request.Context(), claimsSession(c, claims), claims.UserID)
		if err != nil {
			log.Printf("Failed to verify session for user %s: %v", claims.UserID, err)
		}
		if signedIn {
			applyClaims(c, claims)
		}
		c.Next()
	}
}
