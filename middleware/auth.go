package middleware

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/iamnokia/AdminHC-sub000/config"
	"github.com/iamnokia/AdminHC-sub000/models"
)

const sessionContextKey = "session"

// MintSessionToken issues the HS256 bearer token the dashboard client holds.
// The token carries only the session id; everything else lives in the
// session row.
func MintSessionToken(sessionID string, cfg *config.Config) (string, error) {
	claims := jwt.MapClaims{
		"sid": sessionID,
		"exp": time.Now().Add(time.Duration(cfg.SessionTTLHours) * time.Hour).Unix(),
		"iat": time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(cfg.JWTSecret))
	if err != nil {
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}
	return signed, nil
}

// parseSessionID validates a bearer token and extracts the session id
func parseSessionID(tokenString string, cfg *config.Config) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(cfg.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return "", &AuthError{Code: "INVALID_TOKEN", Message: "Invalid or expired token"}
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", &AuthError{Code: "INVALID_CLAIMS", Message: "Token claims are not in the expected format"}
	}
	sid, ok := claims["sid"].(string)
	if !ok || sid == "" {
		return "", &AuthError{Code: "MISSING_SESSION", Message: "Token has no session id"}
	}
	return sid, nil
}

// RequireSession is the route guard: requests without a valid logged-in
// session are turned away with the localized login prompt.
func RequireSession(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		var tokenString string
		authHeader := c.GetHeader("Authorization")
		if strings.HasPrefix(authHeader, "Bearer ") {
			tokenString = strings.TrimPrefix(authHeader, "Bearer ")
		}

		if tokenString == "" {
			abortUnauthorized(c, "MISSING_TOKEN")
			return
		}

		sessionID, err := parseSessionID(tokenString, cfg)
		if err != nil {
			abortUnauthorized(c, "INVALID_TOKEN")
			return
		}

		var session models.Session
		if err := config.GetDB().First(&session, "id = ?", sessionID).Error; err != nil {
			abortUnauthorized(c, "SESSION_NOT_FOUND")
			return
		}
		if session.Expired() {
			config.GetDB().Delete(&session)
			abortUnauthorized(c, "SESSION_EXPIRED")
			return
		}

		c.Set(sessionContextKey, &session)
		c.Next()
	}
}

func abortUnauthorized(c *gin.Context, code string) {
	c.JSON(http.StatusUnauthorized, gin.H{
		"success": false,
		"error": gin.H{
			"code":    code,
			"message": "ກະລຸນາເຂົ້າສູ່ລະບົບໃໝ່",
		},
	})
	c.Abort()
}

// GetSession extracts the logged-in session from the Gin context
func GetSession(c *gin.Context) (*models.Session, error) {
	value, exists := c.Get(sessionContextKey)
	if !exists {
		return nil, &AuthError{Code: "MISSING_SESSION", Message: "Session not found in context"}
	}

	session, ok := value.(*models.Session)
	if !ok {
		return nil, &AuthError{Code: "INVALID_SESSION", Message: "Session is not in the expected format"}
	}
	return session, nil
}

// AuthError represents an authentication error
type AuthError struct {
	Code    string
	Message string
}

func (e *AuthError) Error() string {
	return e.Message
}
