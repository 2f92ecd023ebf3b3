package chat

import (
	"context"
	"errors"

	"github.com/linkmoa/core/internal/models"
	"github.com/linkmoa/core/internal/modules/processing/ai"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// NoContentAnswer is returned when the item has no stored text to answer
// from, or does not exist at all. No conversation turn is recorded.
const NoContentAnswer = "본문 내용이 없습니다."

type Service struct {
	db     *gorm.DB
	ai     *ai.Service
	logger *zap.Logger
}

func NewService(db *gorm.DB, aiSvc *ai.Service, logger *zap.Logger) *Service {
	return &Service{db: db, ai: aiSvc, logger: logger}
}

// History returns the item's conversation in chronological order. An unknown
// item yields an empty history, not an error.
func (s *Service) History(linkID uint) ([]models.ChatMessageModel, error) {
	var messages []models.ChatMessageModel
	err := s.db.Where("link_id = ?", linkID).
		Order("created_at ASC").Order("id ASC").
		Find(&messages).Error
	return messages, err
}

// Ask answers a question against the item's stored text and records the
// question/answer pair as one transaction. AI failures are surfaced inside
// the answer text and still recorded; only storage failures return an error.
func (s *Service) Ask(ctx context.Context, linkID uint, question string) (string, error) {
	var item models.LinkModel
	if err := s.db.First(&item, linkID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return NoContentAnswer, nil
		}
		return "", err
	}
	if item.Content == "" {
		return NoContentAnswer, nil
	}

	answer := s.ai.Respond(ctx, item.Content, question)

	err := s.db.Transaction(func(tx *gorm.DB) error {
		userMsg := models.ChatMessageModel{
			LinkID:  item.ID,
			Sender:  models.SenderUser,
			Message: question,
		}
		if err := tx.Create(&userMsg).Error; err != nil {
			return err
		}
		aiMsg := models.ChatMessageModel{
			LinkID:  item.ID,
			Sender:  models.SenderAI,
			Message: answer,
		}
		return tx.Create(&aiMsg).Error
	})
	if err != nil {
		return "", err
	}
	return answer, nil
}
