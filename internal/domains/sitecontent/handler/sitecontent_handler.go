package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"aurexis-backend/internal/domains/sitecontent/model"
	"aurexis-backend/internal/domains/sitecontent/service"
	"aurexis-backend/internal/shared/response"
)

type SiteContentHandler struct {
	service service.ServiceInterface
}

func NewSiteContentHandler(svc service.ServiceInterface) *SiteContentHandler {
	return &SiteContentHandler{service: svc}
}

func (h *SiteContentHandler) handleError(c *gin.Context, err error) {
	status, message, code := model.GetErrorResponse(err)
	if status >= http.StatusInternalServerError {
		log.Error().Err(err).Str("path", c.Request.URL.Path).Msg("[SITECONTENT] request failed")
	}
	response.ErrorResponse(c, status, code, message)
}

// ========== GET /settings ==========
func (h *SiteContentHandler) GetSettings(c *gin.Context) {
	settings, err := h.service.GetSettings(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, settings)
}

// ========== PUT /admin/settings ==========
func (h *SiteContentHandler) UpdateSettings(c *gin.Context) {
	var req model.HomepageSettings
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload: "+err.Error())
		return
	}

	settings, err := h.service.UpdateSettings(c.Request.Context(), &req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, settings)
}

// ========== GET /social-links ==========
func (h *SiteContentHandler) GetSocialLinks(c *gin.Context) {
	links, err := h.service.GetSocialLinks(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, links)
}

// ========== PUT /admin/social-links ==========
func (h *SiteContentHandler) UpdateSocialLinks(c *gin.Context) {
	var req model.SocialLinks
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload: "+err.Error())
		return
	}

	links, err := h.service.UpdateSocialLinks(c.Request.Context(), &req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, links)
}

// ========== GET /homepage ==========
func (h *SiteContentHandler) GetHomepageContent(c *gin.Context) {
	content, err := h.service.GetHomepageContent(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, content)
}

// ========== PUT /admin/homepage ==========
func (h *SiteContentHandler) UpdateHomepageContent(c *gin.Context) {
	var req model.HomepageContent
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload: "+err.Error())
		return
	}

	content, err := h.service.UpdateHomepageContent(c.Request.Context(), &req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, content)
}

// ========== POST /admin/homepage/problems ==========
func (h *SiteContentHandler) AddProblem(c *gin.Context) {
	content, err := h.service.AddProblem(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, content)
}

// ========== PUT /admin/homepage/problems/:index ==========
func (h *SiteContentHandler) UpdateProblem(c *gin.Context) {
	// Step 1: index
	index, ok := h.parseIndex(c)
	if !ok {
		return
	}

	// Step 2: body
	var req model.HomepageProblem
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload: "+err.Error())
		return
	}

	// Step 3: save
	content, err := h.service.UpdateProblem(c.Request.Context(), index, &req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, content)
}

// ========== DELETE /admin/homepage/problems/:index ==========
func (h *SiteContentHandler) RemoveProblem(c *gin.Context) {
	index, ok := h.parseIndex(c)
	if !ok {
		return
	}

	content, err := h.service.RemoveProblem(c.Request.Context(), index)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, content)
}

func (h *SiteContentHandler) parseIndex(c *gin.Context) (int, bool) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		response.ErrorResponse(c, http.StatusBadRequest, model.CodeInvalidProblemIndex, "Problem index must be an integer")
		return 0, false
	}
	return index, true
}
