package link

import (
	"context"
	"strings"

	"github.com/linkmoa/core/internal/models"
	"github.com/linkmoa/core/internal/modules/processing/ai"
	"github.com/linkmoa/core/internal/modules/processing/extract"
	"github.com/linkmoa/core/internal/pkg/pagination"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Service struct {
	db      *gorm.DB
	extract *extract.Service
	ai      *ai.Service
	logger  *zap.Logger
}

func NewService(db *gorm.DB, extractSvc *extract.Service, aiSvc *ai.Service, logger *zap.Logger) *Service {
	return &Service{db: db, extract: extractSvc, ai: aiSvc, logger: logger}
}

// CreateFromURL runs the URL ingestion pipeline: scrape, analyze, persist.
// Extraction is best-effort; a failed scrape still creates the item with an
// empty body and the fallback enrichment.
func (s *Service) CreateFromURL(ctx context.Context, dto *CreateLinkDTO) (*models.LinkModel, error) {
	result := s.extract.FromURL(ctx, dto.URL)
	return s.createItem(ctx, dto.UserID, dto.URL, result)
}

// CreateFromFile runs the upload pipeline. Unlike URL mode, extraction
// failures abort the create: the typed extract error is returned and no row
// is written.
func (s *Service) CreateFromFile(ctx context.Context, userID, filename string, data []byte) (*models.LinkModel, error) {
	result, err := s.extract.FromFile(filename, data)
	if err != nil {
		return nil, err
	}
	return s.createItem(ctx, userID, models.FileURLPrefix+filename, result)
}

func (s *Service) createItem(ctx context.Context, userID, url string, result extract.Result) (*models.LinkModel, error) {
	analysis := s.ai.Analyze(ctx, result.Text)

	item := &models.LinkModel{
		UserID:   userID,
		URL:      url,
		Title:    result.Title,
		Summary:  analysis.Summary,
		Content:  result.Text,
		Memo:     "",
		Category: analysis.Category,
		Tags:     strings.Join(analysis.Tags, ", "),
	}
	if err := s.db.Create(item).Error; err != nil {
		return nil, err
	}
	return item, nil
}

// List returns the owner's items, newest first, optionally filtered by a
// substring match over title or tags, plus the pre-pagination total.
func (s *Service) List(q pagination.Query, userID, search string) ([]models.LinkModel, int64, error) {
	query := s.db.Model(&models.LinkModel{}).Where("user_id = ?", userID)
	if search != "" {
		pattern := "%" + search + "%"
		query = query.Where("title LIKE ? OR tags LIKE ?", pattern, pattern)
	}
	query = query.Order("id DESC")

	items := []models.LinkModel{}
	total, err := pagination.Paginate(query, q, &items)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

// Explore returns items across all owners, newest first.
func (s *Service) Explore(q pagination.Query) ([]models.LinkModel, error) {
	items := []models.LinkModel{}
	err := s.db.Order("id DESC").Offset(q.Skip).Limit(q.Limit).Find(&items).Error
	return items, err
}

func (s *Service) GetByID(id uint) (*models.LinkModel, error) {
	var item models.LinkModel
	if err := s.db.First(&item, id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// Update applies the supplied fields independently. Returns
// gorm.ErrRecordNotFound when the item does not exist.
func (s *Service) Update(id uint, dto *UpdateLinkDTO) (*models.LinkModel, error) {
	item, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if dto.Title != "" {
		updates["title"] = dto.Title
	}
	if dto.Memo != nil {
		updates["memo"] = *dto.Memo
	}
	if dto.Category != "" {
		updates["category"] = dto.Category
	}
	if len(updates) > 0 {
		if err := s.db.Model(item).Updates(updates).Error; err != nil {
			return nil, err
		}
	}

	return s.GetByID(id)
}

// Delete removes the item and all of its chat messages in one transaction.
// Returns gorm.ErrRecordNotFound when the item does not exist.
func (s *Service) Delete(id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var item models.LinkModel
		if err := tx.First(&item, id).Error; err != nil {
			return err
		}
		if err := tx.Where("link_id = ?", id).Delete(&models.ChatMessageModel{}).Error; err != nil {
			return err
		}
		return tx.Delete(&item).Error
	})
}
