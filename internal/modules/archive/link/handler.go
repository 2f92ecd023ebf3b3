package link

import (
	"errors"
	"io"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/linkmoa/core/internal/modules/processing/extract"
	"github.com/linkmoa/core/internal/pkg/pagination"
	"github.com/linkmoa/core/internal/pkg/response"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	msgUnsupportedFormat = "지원하지 않는 파일 형식입니다."
	msgFileReadFailed    = "파일 읽기 실패: "
)

type Handler struct {
	svc    *Service
	logger *zap.Logger
}

func NewHandler(svc *Service, logger *zap.Logger) *Handler {
	return &Handler{svc: svc, logger: logger}
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.POST("/links", h.create)
	r.POST("/upload", h.upload)
	r.GET("/links", h.list)
	r.GET("/explore", h.explore)
	r.PUT("/links/:id", h.update)
	r.DELETE("/links/:id", h.remove)
}

func (h *Handler) create(c *gin.Context) {
	var dto CreateLinkDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	item, err := h.svc.CreateFromURL(c.Request.Context(), &dto)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, item)
}

func (h *Handler) upload(c *gin.Context) {
	userID := c.PostForm("user_id")
	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		response.Error(c, msgFileReadFailed+err.Error())
		return
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		response.Error(c, msgFileReadFailed+err.Error())
		return
	}

	item, err := h.svc.CreateFromFile(c.Request.Context(), userID, fileHeader.Filename, data)
	if err != nil {
		var decodeErr *extract.DecodeError
		switch {
		case errors.Is(err, extract.ErrUnsupportedFormat):
			response.Error(c, msgUnsupportedFormat)
		case errors.As(err, &decodeErr):
			response.Error(c, msgFileReadFailed+decodeErr.Err.Error())
		default:
			response.InternalError(c, err)
		}
		return
	}
	response.OK(c, item)
}

func (h *Handler) list(c *gin.Context) {
	userID := c.Query("user_id")
	if userID == "" {
		response.BadRequest(c, "user_id is required")
		return
	}

	q := pagination.FromContext(c, pagination.DefaultLimit)
	items, total, err := h.svc.List(q, userID, c.Query("search"))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, listResponse{Total: total, Links: items})
}

func (h *Handler) explore(c *gin.Context) {
	q := pagination.FromContext(c, 20)
	items, err := h.svc.Explore(q)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, items)
}

func (h *Handler) update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var dto UpdateLinkDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	item, err := h.svc.Update(id, &dto)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c)
			return
		}
		response.InternalError(c, err)
		return
	}
	response.OK(c, item)
}

func (h *Handler) remove(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.svc.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c)
			return
		}
		response.InternalError(c, err)
		return
	}
	response.OK(c, gin.H{"message": "Deleted"})
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid id")
		return 0, false
	}
	return uint(id), true
}
