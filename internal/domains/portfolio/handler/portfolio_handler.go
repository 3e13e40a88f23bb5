package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"portfolio-backend/internal/domains/portfolio"
	"portfolio-backend/internal/shared/response"
	"portfolio-backend/pkg/logger"
)

type PortfolioHandler struct {
	service portfolio.Service
}

func NewPortfolioHandler(svc portfolio.Service) *PortfolioHandler {
	return &PortfolioHandler{service: svc}
}

// ════════════════════════════════════════════════════════════════
// READ: GET /api/portfolio (public)
// ════════════════════════════════════════════════════════════════

func (h *PortfolioHandler) Get(c *gin.Context) {
	doc, err := h.service.Get(c.Request.Context())
	if err != nil {
		logger.Error("Error fetching portfolio data", err)
		response.InternalServerError(c, "Error reading data")
		return
	}

	c.JSON(http.StatusOK, doc)
}

// ════════════════════════════════════════════════════════════════
// UPDATE: POST /api/portfolio (auth required)
// ════════════════════════════════════════════════════════════════

func (h *PortfolioHandler) Update(c *gin.Context) {
	var doc portfolio.Document

	if err := c.ShouldBindJSON(&doc); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	stored, err := h.service.Replace(c.Request.Context(), &doc)
	if err != nil {
		status := portfolio.ToHTTPStatus(err)
		if status >= 500 {
			logger.Error("Error updating portfolio data", err)
			response.InternalServerError(c, "Error updating data")
			return
		}
		response.Message(c, status, err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Data updated successfully",
		"data":    stored,
	})
}

// ════════════════════════════════════════════════════════════════
// READ: GET /api/portfolio/fields (public)
// Enumerated personal-info field metadata for the admin editor.
// ════════════════════════════════════════════════════════════════

func (h *PortfolioHandler) Fields(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"fields": portfolio.PersonalInfoFields})
}
