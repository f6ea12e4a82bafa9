package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"aurexis-backend/internal/domains/admin/model"
	"aurexis-backend/internal/domains/admin/service"
	"aurexis-backend/internal/shared/middleware"
	"aurexis-backend/internal/shared/response"
)

type AuthHandler struct {
	service service.AuthService
}

func NewAuthHandler(svc service.AuthService) *AuthHandler {
	return &AuthHandler{service: svc}
}

// ========== POST /admin/login ==========
func (h *AuthHandler) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload: "+err.Error())
		return
	}

	result, err := h.service.Login(c.Request.Context(), &req)
	if err != nil {
		status, message, code := model.GetErrorResponse(err)
		log.Warn().
			Str("code", code).
			Str("ip", c.GetString(middleware.ContextKeyClientIP)).
			Msg("[ADMIN] login rejected")
		response.ErrorResponse(c, status, code, message)
		return
	}

	response.Success(c, http.StatusOK, result)
}

// ========== GET /admin/me ==========
func (h *AuthHandler) Me(c *gin.Context) {
	response.Success(c, http.StatusOK, model.Profile{
		Email: c.GetString(middleware.ContextKeyAdminEmail),
		Role:  c.GetString(middleware.ContextKeyRole),
	})
}
