package chat

import "github.com/linkmoa/core/internal/models"

// AskDTO is the body of POST /links/:id/chat.
type AskDTO struct {
	Question string `json:"question" binding:"required"`
}

type messageResponse struct {
	Sender  models.ChatSender `json:"sender"`
	Message string            `json:"message"`
}

type answerResponse struct {
	Answer string `json:"answer"`
}
