package models

// ChatSender identifies who produced a chat message.
type ChatSender string

const (
	SenderUser ChatSender = "user"
	SenderAI   ChatSender = "ai"
)

// ChatMessageModel is one message in an item's chat-over-document history.
// Messages are written in user+ai pairs per turn, never updated, and removed
// only when the parent link is deleted.
type ChatMessageModel struct {
	Base
	LinkID  uint       `json:"link_id" gorm:"index;not null"`
	Sender  ChatSender `json:"sender"  gorm:"not null"`
	Message string     `json:"message" gorm:"type:text;not null"`
}

func (ChatMessageModel) TableName() string { return "chat_messages" }
