package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"aurexis-backend/internal/domains/media/model"
	"aurexis-backend/internal/domains/media/service"
	"aurexis-backend/internal/shared/response"
)

type MediaHandler struct {
	service service.ServiceInterface
}

func NewMediaHandler(svc service.ServiceInterface) *MediaHandler {
	return &MediaHandler{service: svc}
}

func (h *MediaHandler) handleError(c *gin.Context, err error) {
	status, message, code := model.GetErrorResponse(err)
	if status >= http.StatusInternalServerError {
		log.Error().Err(err).Msg("[MEDIA] upload request failed")
	}
	response.ErrorResponse(c, status, code, message)
}

// ========== POST /admin/uploads (multipart: file, folder) ==========
func (h *MediaHandler) Upload(c *gin.Context) {
	limit := h.service.MaxUploadBytes()

	// Step 1: cap the body; one extra MB covers multipart framing
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, limit+1<<20)

	// Step 2: file part
	fileHeader, err := c.FormFile("file")
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			h.handleError(c, model.NewFileTooLarge(maxErr.Limit, limit))
			return
		}
		h.handleError(c, model.ErrMissingFile)
		return
	}
	if fileHeader.Size > limit {
		h.handleError(c, model.NewFileTooLarge(fileHeader.Size, limit))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.handleError(c, model.NewUploadFailed(err))
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		h.handleError(c, model.NewUploadFailed(err))
		return
	}

	// Step 3: upload
	result, err := h.service.Upload(c.Request.Context(), &model.UploadInput{
		Filename:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Data:        data,
		Folder:      c.PostForm("folder"),
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, result)
}
