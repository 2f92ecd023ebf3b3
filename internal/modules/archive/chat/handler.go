package chat

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/linkmoa/core/internal/pkg/response"
	"go.uber.org/zap"
)

type Handler struct {
	svc    *Service
	logger *zap.Logger
}

func NewHandler(svc *Service, logger *zap.Logger) *Handler {
	return &Handler{svc: svc, logger: logger}
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.GET("/links/:id/chat", h.history)
	r.POST("/links/:id/chat", h.ask)
}

func (h *Handler) history(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	messages, err := h.svc.History(id)
	if err != nil {
		response.InternalError(c, err)
		return
	}

	out := make([]messageResponse, 0, len(messages))
	for _, m := range messages {
		out = append(out, messageResponse{Sender: m.Sender, Message: m.Message})
	}
	response.OK(c, out)
}

func (h *Handler) ask(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var dto AskDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	answer, err := h.svc.Ask(c.Request.Context(), id, dto.Question)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, answerResponse{Answer: answer})
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid id")
		return 0, false
	}
	return uint(id), true
}
