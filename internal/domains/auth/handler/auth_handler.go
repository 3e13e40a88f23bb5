package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"portfolio-backend/internal/domains/auth"
	"portfolio-backend/internal/shared/response"
	"portfolio-backend/pkg/logger"
)

type AuthHandler struct {
	service auth.Service
}

func NewAuthHandler(svc auth.Service) *AuthHandler {
	return &AuthHandler{service: svc}
}

// ════════════════════════════════════════════════════════════════
// LOGIN: POST /auth/login
// ════════════════════════════════════════════════════════════════

func (h *AuthHandler) Login(c *gin.Context) {
	var req auth.LoginRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	token, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "Invalid credentials",
			})
			return
		}
		logger.Error("Login failed", err)
		response.InternalServerError(c, "Login failed")
		return
	}

	c.JSON(http.StatusOK, auth.LoginResponse{
		Success: true,
		Token:   token,
	})
}
