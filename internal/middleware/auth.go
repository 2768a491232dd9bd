package middleware

import (
	"bytes"
	"crypto/subtle"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"waten-backend/internal/models"
	"waten-backend/internal/store"
)

// AdminHeader carries the admin password on requests that cannot put it
// in the body.
const AdminHeader = "X-Admin-Password"

// maxPasswordBodyBytes bounds how much of a request body the gate will
// read while looking for a password field.
const maxPasswordBodyBytes = 1 << 20

// PasswordFromRequest extracts the candidate admin password. Precedence:
// JSON body "password" field, then the X-Admin-Password header, then the
// "password" query parameter. First non-empty value wins.
func PasswordFromRequest(c *gin.Context) string {
	if pwd := passwordFromBody(c); pwd != "" {
		return pwd
	}
	if pwd := c.GetHeader(AdminHeader); pwd != "" {
		return pwd
	}
	return c.Query("password")
}

// passwordFromBody peeks at a JSON body for a password field and puts
// the body back so the handler can still bind it.
func passwordFromBody(c *gin.Context) string {
	if c.Request.Body == nil || !strings.HasPrefix(c.ContentType(), "application/json") {
		return ""
	}
	raw, err := io.ReadAll(io.LimitReader(c.Request.Body, maxPasswordBodyBytes))
	c.Request.Body = io.NopCloser(bytes.NewReader(raw))
	if err != nil {
		return ""
	}
	var body struct {
		Password string `json:"password"`
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		return ""
	}
	return body.Password
}

// PasswordsMatch compares in constant time.
func PasswordsMatch(candidate, stored string) bool {
	return subtle.ConstantTimeCompare([]byte(candidate), []byte(stored)) == 1
}

// AdminRequired gates a route on the shared admin password. The stored
// password is loaded fresh from config.json on every request; if the
// config is unreadable the request fails rather than silently
// authenticating. A session token from /api/login is accepted as a
// fallback when no password was supplied at all.
func AdminRequired(cfgStore *store.ConfigStore, sessionSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		stored, err := cfgStore.Password()
		if err != nil {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "config unavailable"})
			c.Abort()
			return
		}

		if candidate := PasswordFromRequest(c); candidate != "" {
			if PasswordsMatch(candidate, stored) {
				c.Next()
				return
			}
			c.JSON(http.StatusUnauthorized, models.ErrorResponse{Error: "unauthorized"})
			c.Abort()
			return
		}

		if validSessionToken(c, sessionSecret) {
			c.Next()
			return
		}

		c.JSON(http.StatusUnauthorized, models.ErrorResponse{Error: "unauthorized"})
		c.Abort()
	}
}

// AdminHeaderRequired is the stricter gate for uploads: the password is
// accepted from the header only, and the request is rejected before any
// of the body is read.
func AdminHeaderRequired(cfgStore *store.ConfigStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		stored, err := cfgStore.Password()
		if err != nil {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "config unavailable"})
			c.Abort()
			return
		}
		if !PasswordsMatch(c.GetHeader(AdminHeader), stored) {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse{Error: "unauthorized"})
			c.Abort()
			return
		}
		c.Next()
	}
}

// IssueSessionToken mints the short-lived admin token returned by a
// successful login.
func IssueSessionToken(secret string, ttl time.Duration) (string, time.Time, error) {
	expiresAt := time.Now().Add(ttl)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "admin",
		"iat": time.Now().Unix(),
		"exp": expiresAt.Unix(),
	})
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

func validSessionToken(c *gin.Context, secret string) bool {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return false
	}
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return false
	}
	tokenString := strings.TrimSpace(parts[1])
	if tokenString == "" {
		return false
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil {
		return false
	}
	return token.Valid
}
