package services

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"careerhub/internal/adapters/persistence/models"
	"careerhub/internal/adapters/persistence/repositories"
	"careerhub/internal/core/domain"
	"careerhub/internal/pkg/pagination"
	"careerhub/internal/pkg/validate"

	"gorm.io/gorm"
)

// NoticeService handles public announcements
type NoticeService struct {
	noticeRepo repositories.NoticeRepository
	now        func() time.Time
}

// NewNoticeService creates a new notice service
func NewNoticeService(noticeRepo repositories.NoticeRepository) *NoticeService {
	return &NoticeService{
		noticeRepo: noticeRepo,
		now:        time.Now,
	}
}

// CreateNoticeInput represents create notice input
type CreateNoticeInput struct {
	Category    string `json:"category" validate:"required,oneof=system policy feature fee maintenance"`
	Title       string `json:"title" validate:"required,max=200"`
	Content     string `json:"content" validate:"required"`
	IsImportant bool   `json:"is_important"`
	// PublishAt schedules the notice; empty publishes immediately.
	PublishAt string `json:"publish_at" validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
	// Draft keeps the notice unpublished.
	Draft bool `json:"draft"`
}

// ListNoticesInput represents list notices input
type ListNoticesInput struct {
	Category string
	Search   string
	Params   *pagination.Params
}

// Create stores a notice written by author
func (s *NoticeService) Create(ctx context.Context, author string, input *CreateNoticeInput) (*models.Notice, error) {
	input.Category = strings.TrimSpace(input.Category)
	input.Title = strings.TrimSpace(input.Title)
	input.Content = strings.TrimSpace(input.Content)
	input.PublishAt = strings.TrimSpace(input.PublishAt)

	verr := domain.NewValidationError()
	validate.Struct(verr, input)
	if err := verr.Err(); err != nil {
		return nil, err
	}

	now := s.now()
	notice := &models.Notice{
		Category:    input.Category,
		Title:       input.Title,
		Content:     input.Content,
		IsImportant: input.IsImportant,
		Author:      author,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	switch {
	case input.Draft:
	case input.PublishAt != "":
		at, _ := time.Parse(time.RFC3339, input.PublishAt)
		at = at.UTC()
		notice.PublishedAt = &at
	default:
		notice.PublishedAt = &now
	}

	if err := s.noticeRepo.Create(ctx, notice); err != nil {
		return nil, err
	}

	log.Printf("📢 Notice created: %s (%s)", notice.ID, notice.Title)
	return notice, nil
}

// List returns published notices, important ones first
func (s *NoticeService) List(ctx context.Context, input *ListNoticesInput) ([]*models.Notice, int64, error) {
	if input.Category != "" && !containsWord(domain.NoticeCategories, input.Category) {
		return nil, 0, domain.Invalid("category", "must be one of: "+strings.ReplaceAll(domain.NoticeCategories, " ", ", "))
	}
	if input.Params == nil {
		input.Params = pagination.New(1, pagination.DefaultLimit)
	}

	return s.noticeRepo.ListPublished(ctx, repositories.NoticeFilter{
		Category: input.Category,
		Search:   input.Search,
		Offset:   input.Params.Offset,
		Limit:    input.Params.Limit,
	}, s.now())
}

// Get returns a published notice and counts the view
func (s *NoticeService) Get(ctx context.Context, id string) (*models.Notice, error) {
	notice, err := s.noticeRepo.GetPublishedByID(ctx, id, s.now())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNoticeNotFound
		}
		return nil, err
	}

	if err := s.noticeRepo.IncrementViewCount(ctx, notice.ID); err != nil {
		log.Printf("⚠️ Failed to count notice view %s: %v", notice.ID, err)
	} else {
		notice.ViewCount++
	}

	return notice, nil
}
