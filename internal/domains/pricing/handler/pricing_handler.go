package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"aurexis-backend/internal/domains/pricing/model"
	"aurexis-backend/internal/domains/pricing/service"
	"aurexis-backend/internal/shared/response"
)

type PricingHandler struct {
	service service.ServiceInterface
}

func NewPricingHandler(svc service.ServiceInterface) *PricingHandler {
	return &PricingHandler{service: svc}
}

func (h *PricingHandler) handleError(c *gin.Context, err error) {
	status, message, code, details := model.GetErrorResponse(err)
	if status >= http.StatusInternalServerError {
		log.Error().Err(err).Str("path", c.Request.URL.Path).Msg("[PRICING] request failed")
	}
	if details != nil {
		response.ErrorWithDetails(c, status, code, message, details)
		return
	}
	response.ErrorResponse(c, status, code, message)
}

// ========== GET /pricing ==========
func (h *PricingHandler) ListTiers(c *gin.Context) {
	tiers, err := h.service.ListTiers(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.SuccessWithMeta(c, http.StatusOK, tiers, &response.Meta{Total: len(tiers)})
}

// ========== GET /admin/pricing/:id ==========
func (h *PricingHandler) GetTier(c *gin.Context) {
	tier, err := h.service.GetTier(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, tier)
}

// ========== POST /admin/pricing ==========
func (h *PricingHandler) CreateTier(c *gin.Context) {
	var req model.TierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload: "+err.Error())
		return
	}

	tier, err := h.service.CreateTier(c.Request.Context(), &req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, tier)
}

// ========== PUT /admin/pricing/:id ==========
func (h *PricingHandler) UpdateTier(c *gin.Context) {
	var req model.TierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload: "+err.Error())
		return
	}

	tier, err := h.service.UpdateTier(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, tier)
}

// ========== DELETE /admin/pricing/:id ==========
func (h *PricingHandler) DeleteTier(c *gin.Context) {
	if err := h.service.DeleteTier(c.Request.Context(), c.Param("id")); err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"id": c.Param("id")})
}
