package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"aurexis-backend/internal/domains/servicecontent/model"
	"aurexis-backend/internal/domains/servicecontent/service"
	"aurexis-backend/internal/shared/response"
)

type ServiceContentHandler struct {
	service service.ServiceInterface
}

func NewServiceContentHandler(svc service.ServiceInterface) *ServiceContentHandler {
	return &ServiceContentHandler{service: svc}
}

func (h *ServiceContentHandler) handleError(c *gin.Context, err error) {
	status, message, code, details := model.GetErrorResponse(err)
	if status >= http.StatusInternalServerError {
		log.Error().Err(err).Str("path", c.Request.URL.Path).Msg("[SERVICECONTENT] request failed")
	}
	if details != nil {
		response.ErrorWithDetails(c, status, code, message, details)
		return
	}
	response.ErrorResponse(c, status, code, message)
}

func serviceID(c *gin.Context) string {
	return strings.ToLower(strings.TrimSpace(c.Param("id")))
}

// ========== GET /services ==========
func (h *ServiceContentHandler) ListServices(c *gin.Context) {
	items, err := h.service.ListServices(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.SuccessWithMeta(c, http.StatusOK, items, &response.Meta{Total: len(items)})
}

// ========== GET /public/services/:id ==========
// Unknown ids answer 404 "Service Not Found" with a back link to /services.
func (h *ServiceContentHandler) GetPublicService(c *gin.Context) {
	content, err := h.service.GetPublicService(c.Request.Context(), serviceID(c))
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, content)
}

// ========== GET /admin/services/:id ==========
func (h *ServiceContentHandler) GetServiceContent(c *gin.Context) {
	content, err := h.service.GetServiceContent(c.Request.Context(), serviceID(c))
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, content)
}

// ========== PUT /admin/services/:id ==========
func (h *ServiceContentHandler) UpdateServiceContent(c *gin.Context) {
	// Step 1: Parse body. List fields accept arrays or newline separated text.
	var req model.ServiceDetailContent
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload: "+err.Error())
		return
	}

	// Step 2: Save whole record
	content, err := h.service.UpdateServiceContent(c.Request.Context(), serviceID(c), &req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, content)
}

// ========== DELETE /admin/services/:id ==========
func (h *ServiceContentHandler) ResetServiceContent(c *gin.Context) {
	content, err := h.service.ResetServiceContent(c.Request.Context(), serviceID(c))
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, content)
}
