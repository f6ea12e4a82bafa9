package handler

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"aurexis-backend/internal/domains/portfolio/model"
	"aurexis-backend/internal/domains/portfolio/service"
	"aurexis-backend/internal/shared/response"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type PortfolioHandler struct {
	service service.ServiceInterface
}

func NewPortfolioHandler(svc service.ServiceInterface) *PortfolioHandler {
	return &PortfolioHandler{service: svc}
}

func (h *PortfolioHandler) handleError(c *gin.Context, err error) {
	status, message, code, details := model.GetErrorResponse(err)
	if status >= http.StatusInternalServerError {
		log.Error().Err(err).Str("path", c.Request.URL.Path).Msg("[PORTFOLIO] request failed")
	}
	if details != nil {
		response.ErrorWithDetails(c, status, code, message, details)
		return
	}
	response.ErrorResponse(c, status, code, message)
}

func (h *PortfolioHandler) parseID(c *gin.Context) (uuid.UUID, bool) {
	raw := c.Param("id")
	id, err := uuid.Parse(raw)
	if err != nil {
		h.handleError(c, model.NewInvalidProjectID(raw))
		return uuid.Nil, false
	}
	return id, true
}

// ========== GET /portfolio?category=&featured=true ==========
func (h *PortfolioHandler) ListProjects(c *gin.Context) {
	filter := model.ListFilter{
		Category:     model.Category(strings.TrimSpace(c.Query("category"))),
		FeaturedOnly: c.Query("featured") == "true",
	}

	projects, err := h.service.ListProjects(c.Request.Context(), filter)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.SuccessWithMeta(c, http.StatusOK, projects, &response.Meta{Total: len(projects)})
}

// ========== GET /admin/portfolio/:id ==========
func (h *PortfolioHandler) GetProject(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	project, err := h.service.GetProject(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, project)
}

// ========== POST /admin/portfolio ==========
func (h *PortfolioHandler) AddProject(c *gin.Context) {
	var req model.ProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload: "+err.Error())
		return
	}

	project, err := h.service.AddProject(c.Request.Context(), &req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, project)
}

// ========== PUT /admin/portfolio/:id ==========
func (h *PortfolioHandler) UpdateProject(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	var req model.ProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload: "+err.Error())
		return
	}

	project, err := h.service.UpdateProject(c.Request.Context(), id, &req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, project)
}

// ========== DELETE /admin/portfolio/:id ==========
func (h *PortfolioHandler) DeleteProject(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	if err := h.service.DeleteProject(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"id": id})
}

// ========== GET /admin/portfolio/export ==========
func (h *PortfolioHandler) ExportProjects(c *gin.Context) {
	f, count, err := h.service.ExportProjects(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	defer f.Close()

	filename := fmt.Sprintf("portfolio-%s.xlsx", time.Now().Format("20060102-150405"))
	c.Header("Content-Type", xlsxContentType)
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Header("X-Total-Count", fmt.Sprint(count))
	c.Status(http.StatusOK)

	if err := f.Write(c.Writer); err != nil {
		log.Error().Err(err).Msg("[PORTFOLIO] export write failed")
	}
}
