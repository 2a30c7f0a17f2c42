package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/granaflow/granaflow/internal/apperrors"
	portssvc "github.com/granaflow/granaflow/internal/core/ports/services"
	"github.com/granaflow/granaflow/internal/dto"
	"github.com/granaflow/granaflow/internal/middleware"

	"github.com/gin-gonic/gin"
)

// investmentHandler handles HTTP requests related to investments.
type investmentHandler struct {
	investmentService portssvc.InvestmentSvcFacade
}

// newInvestmentHandler creates a new investmentHandler.
func newInvestmentHandler(is portssvc.InvestmentSvcFacade) *investmentHandler {
	return &investmentHandler{
		investmentService: is,
	}
}

// registerInvestmentRoutes registers all investment-related routes.
func registerInvestmentRoutes(rg *gin.RouterGroup, investmentService portssvc.InvestmentSvcFacade) {
	h := newInvestmentHandler(investmentService)

	investments := rg.Group("/investments")
	{
		investments.POST("", h.createInvestment)
		investments.GET("", h.listInvestments)
		investments.GET("/:id", h.getInvestment)
		investments.PUT("/:id", h.updateInvestment)
		investments.DELETE("/:id", h.deleteInvestment)
	}

	types := rg.Group("/investment-types")
	{
		types.GET("", h.listInvestmentTypes)
		types.POST("", h.createInvestmentType)
	}
}

// createInvestment godoc
// @Summary Create a new investment
// @Description Records a holding. The invested total is derived from quantity and average price.
// @Tags investments
// @Accept  json
// @Produce  json
// @Param   investment body dto.CreateInvestmentRequest true "Investment details"
// @Success 201 {object} dto.InvestmentResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to create investment"
// @Security BearerAuth
// @Router /investments [post]
func (h *investmentHandler) createInvestment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateInvestmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for create investment request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	investment, err := h.investmentService.CreateInvestment(c.Request.Context(), userID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		} else if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown investment type"})
			return
		}
		logger.Error("Failed to create investment in service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create investment"})
		return
	}

	c.JSON(http.StatusCreated, dto.ToInvestmentResponse(investment))
}

// listInvestments godoc
// @Summary List investments
// @Description Retrieves all investment holdings belonging to the authenticated user
// @Tags investments
// @Produce  json
// @Success 200 {object} dto.ListInvestmentsResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list investments"
// @Security BearerAuth
// @Router /investments [get]
func (h *investmentHandler) listInvestments(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	investments, err := h.investmentService.ListInvestments(c.Request.Context(), userID)
	if err != nil {
		logger.Error("Failed to list investments", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list investments"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListInvestmentsResponse(investments))
}

// getInvestment godoc
// @Summary Get an investment by ID
// @Description Retrieves a specific investment belonging to the authenticated user
// @Tags investments
// @Produce  json
// @Param   id path string true "Investment ID"
// @Success 200 {object} dto.InvestmentResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Investment not found"
// @Failure 500 {object} map[string]string "Failed to retrieve investment"
// @Security BearerAuth
// @Router /investments/{id} [get]
func (h *investmentHandler) getInvestment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	investmentID := c.Param("id")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	investment, err := h.investmentService.GetInvestmentByID(c.Request.Context(), userID, investmentID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Investment not found"})
			return
		}
		logger.Error("Failed to get investment", slog.String("investment_id", investmentID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve investment"})
		return
	}

	c.JSON(http.StatusOK, dto.ToInvestmentResponse(investment))
}

// updateInvestment godoc
// @Summary Update an investment
// @Description Updates a holding, recomputing the invested total when quantity or price change
// @Tags investments
// @Accept  json
// @Produce  json
// @Param   id path string true "Investment ID"
// @Param   investment body dto.UpdateInvestmentRequest true "Fields to update"
// @Success 200 {object} dto.InvestmentResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Investment not found"
// @Failure 500 {object} map[string]string "Failed to update investment"
// @Security BearerAuth
// @Router /investments/{id} [put]
func (h *investmentHandler) updateInvestment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	investmentID := c.Param("id")

	var req dto.UpdateInvestmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for update investment request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	investment, err := h.investmentService.UpdateInvestment(c.Request.Context(), userID, investmentID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Investment not found"})
			return
		} else if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to update investment", slog.String("investment_id", investmentID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update investment"})
		return
	}

	c.JSON(http.StatusOK, dto.ToInvestmentResponse(investment))
}

// deleteInvestment godoc
// @Summary Delete an investment
// @Description Removes an investment holding
// @Tags investments
// @Param   id path string true "Investment ID"
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Investment not found"
// @Failure 500 {object} map[string]string "Failed to delete investment"
// @Security BearerAuth
// @Router /investments/{id} [delete]
func (h *investmentHandler) deleteInvestment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	investmentID := c.Param("id")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	err := h.investmentService.DeleteInvestment(c.Request.Context(), userID, investmentID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Investment not found"})
			return
		}
		logger.Error("Failed to delete investment", slog.String("investment_id", investmentID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete investment"})
		return
	}

	c.Status(http.StatusNoContent)
}

// listInvestmentTypes godoc
// @Summary List investment types
// @Description Retrieves the available investment types
// @Tags investments
// @Produce  json
// @Success 200 {object} dto.ListInvestmentTypesResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list investment types"
// @Security BearerAuth
// @Router /investment-types [get]
func (h *investmentHandler) listInvestmentTypes(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	types, err := h.investmentService.ListInvestmentTypes(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list investment types", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list investment types"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListInvestmentTypesResponse(types))
}

// createInvestmentType godoc
// @Summary Create an investment type
// @Description Adds a new investment type to the shared reference set
// @Tags investments
// @Accept  json
// @Produce  json
// @Param   type body dto.CreateInvestmentTypeRequest true "Type details"
// @Success 201 {object} dto.InvestmentTypeResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 409 {object} map[string]string "Type already exists"
// @Failure 500 {object} map[string]string "Failed to create investment type"
// @Security BearerAuth
// @Router /investment-types [post]
func (h *investmentHandler) createInvestmentType(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateInvestmentTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for create investment type request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	newType, err := h.investmentService.CreateInvestmentType(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			c.JSON(http.StatusConflict, gin.H{"error": "Investment type already exists"})
			return
		} else if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to create investment type", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create investment type"})
		return
	}

	c.JSON(http.StatusCreated, dto.ToInvestmentTypeResponse(newType))
}
