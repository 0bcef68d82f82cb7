package middleware

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"cinebook/internal/shared/config"
	"cinebook/internal/shared/utils/response"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

// SessionHeader carries the storefront session ID across requests.
// The booking pipeline keeps all cross-page state server-side under this ID.
const SessionHeader = "X-Session-ID"

// SessionID resolves the storefront session for every request. A missing or
// malformed header gets a fresh UUID, echoed back so the client can stick to it.
func SessionID() gin.HandlerFunc {
	return func(c *gin.Context) {
		sid := strings.TrimSpace(c.GetHeader(SessionHeader))
		if _, err := uuid.Parse(sid); err != nil {
			sid = uuid.NewString()
		}

		c.Set("session_id", sid)
		c.Header(SessionHeader, sid)
		c.Next()
	}
}

// GetSessionID returns the session ID resolved by SessionID middleware
func GetSessionID(c *gin.Context) string {
	if sid, exists := c.Get("session_id"); exists {
		if s, ok := sid.(string); ok {
			return s
		}
	}
	return ""
}

// JWTAuth creates a JWT authentication middleware
func JWTAuth() gin.HandlerFunc {
	return JWTAuthWithConfig(config.Load())
}

// JWTAuthWithConfig creates a JWT authentication middleware with config.
// The token issuer is an external collaborator; we only verify and unpack.
func JWTAuthWithConfig(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Error(c, http.StatusUnauthorized, "Please log in to continue", nil)
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Error(c, http.StatusUnauthorized, "authorization header format must be Bearer {token}", nil)
			c.Abort()
			return
		}

		tokenString := parts[1]

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(cfg.JWT.Secret), nil
		})

		if err != nil || !token.Valid {
			response.Error(c, http.StatusUnauthorized, "invalid or expired token", nil)
			c.Abort()
			return
		}

		if claims, ok := token.Claims.(jwt.MapClaims); ok {
			c.Set("user_id", claims["user_id"])
			c.Set("user_email", claims["email"])
			c.Set("user_role", claims["role"])
		}

		c.Next()
	}
}

// GetUserID returns the authenticated user ID set by JWTAuth, if any.
// The issuer encodes it as either a string or a JSON number claim.
func GetUserID(c *gin.Context) (string, bool) {
	userIDInterface, exists := c.Get("user_id")
	if !exists {
		return "", false
	}

	switch v := userIDInterface.(type) {
	case string:
		if v != "" {
			return v, true
		}
	case float64:
		return strconv.FormatInt(int64(v), 10), true
	case json.Number:
		return v.String(), true
	}
	return "", false
}

// GetUserEmail returns the authenticated user's email claim, if any
func GetUserEmail(c *gin.Context) string {
	if email, exists := c.Get("user_email"); exists {
		if s, ok := email.(string); ok {
			return s
		}
	}
	return ""
}
