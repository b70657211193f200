package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/obradorhq/obrador/pkg/clients/identity"
)

// AuthHandler exchanges credentials for a session handle via the external
// identity provider.
type AuthHandler struct {
	identity identity.Client
	logger   *zap.Logger
}

// NewAuthHandler constructs the auth handler.
func NewAuthHandler(client identity.Client, logger *zap.Logger) *AuthHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AuthHandler{identity: client, logger: logger}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login signs the user in against the identity provider. Failures collapse
// into exactly two messages: bad credentials or an unexpected error.
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	session, err := h.identity.SignIn(c.Request.Context(), req.Username, req.Password)
	if errors.Is(err, identity.ErrInvalidCredentials) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid username or password"})
		return
	}
	if err != nil {
		h.logger.Error("sign-in failed", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "unexpected authentication error"})
		return
	}

	c.JSON(http.StatusOK, session)
}
