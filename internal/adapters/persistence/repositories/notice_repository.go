package repositories

import (
	"context"
	"strings"
	"time"

	"careerhub/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

type noticeRepository struct {
	db *gorm.DB
}

// NewNoticeRepository creates a new notice repository
func NewNoticeRepository(db *gorm.DB) NoticeRepository {
	return &noticeRepository{db: db}
}

func (r *noticeRepository) Create(ctx context.Context, notice *models.Notice) error {
	return r.db.WithContext(ctx).Create(notice).Error
}

// GetPublishedByID hides drafts and notices scheduled after now
func (r *noticeRepository) GetPublishedByID(ctx context.Context, id string, now time.Time) (*models.Notice, error) {
	var notice models.Notice
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		Where("published_at IS NOT NULL AND published_at <= ?", now).
		First(&notice).Error
	if err != nil {
		return nil, err
	}
	return &notice, nil
}

// ListPublished lists published notices, important ones first
func (r *noticeRepository) ListPublished(ctx context.Context, filter NoticeFilter, now time.Time) ([]*models.Notice, int64, error) {
	var notices []*models.Notice
	var total int64

	query := r.db.WithContext(ctx).
		Model(&models.Notice{}).
		Where("published_at IS NOT NULL AND published_at <= ?", now)

	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if search := strings.TrimSpace(filter.Search); search != "" {
		pattern := "%" + strings.ToLower(search) + "%"
		query = query.Where("LOWER(title) LIKE ? OR LOWER(content) LIKE ?", pattern, pattern)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.
		Order("is_important DESC").
		Order("published_at DESC").
		Offset(filter.Offset).
		Limit(filter.Limit).
		Find(&notices).Error
	if err != nil {
		return nil, 0, err
	}

	return notices, total, nil
}

func (r *noticeRepository) IncrementViewCount(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Model(&models.Notice{}).
		Where("id = ?", id).
		UpdateColumn("view_count", gorm.Expr("view_count + ?", 1)).Error
}
