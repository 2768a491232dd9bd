package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"waten-backend/internal/middleware"
	"waten-backend/internal/models"
	"waten-backend/internal/store"
)

type AuthHandler struct {
	config        *store.ConfigStore
	sessionSecret string
	sessionTTL    time.Duration
	logger        *zap.SugaredLogger
}

func NewAuthHandler(config *store.ConfigStore, sessionSecret string, sessionTTL time.Duration, logger *zap.SugaredLogger) *AuthHandler {
	return &AuthHandler{
		config:        config,
		sessionSecret: sessionSecret,
		sessionTTL:    sessionTTL,
		logger:        logger,
	}
}

// Login godoc
// @Summary     Check the admin password
// @Description Returns ok:false for a wrong password. A correct password also
// @Description yields a short-lived session token usable as a Bearer credential.
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       request body models.LoginRequest true "Password"
// @Success     200 {object} models.LoginResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	stored, err := h.config.Password()
	if err != nil {
		h.logger.Errorw("config unavailable during login", "error", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "config unavailable"})
		return
	}

	candidate := middleware.PasswordFromRequest(c)
	if candidate == "" || !middleware.PasswordsMatch(candidate, stored) {
		c.JSON(http.StatusOK, models.LoginResponse{OK: false})
		return
	}

	token, expiresAt, err := middleware.IssueSessionToken(h.sessionSecret, h.sessionTTL)
	if err != nil {
		// The password check already passed; a token failure should not
		// block the login result.
		h.logger.Errorw("failed to issue session token", "error", err)
		c.JSON(http.StatusOK, models.LoginResponse{OK: true})
		return
	}

	c.JSON(http.StatusOK, models.LoginResponse{
		OK:        true,
		Token:     token,
		ExpiresAt: expiresAt.UTC().Format(time.RFC3339),
	})
}
