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

// ReviewService is the reviewer side of the career lifecycle
type ReviewService struct {
	careerRepo repositories.CareerRepository
	activity   *ActivityService
	now        func() time.Time
}

// NewReviewService creates a new review service
func NewReviewService(careerRepo repositories.CareerRepository, activity *ActivityService) *ReviewService {
	return &ReviewService{
		careerRepo: careerRepo,
		activity:   activity,
		now:        time.Now,
	}
}

// ReviewInput represents a reviewer decision
type ReviewInput struct {
	Status  string `json:"status" validate:"required,oneof=submitted under_review approved rejected"`
	Comment string `json:"comment" validate:"max=2000"`
}

// Review moves a career along the status machine on behalf of a reviewer.
// Approval and rejection record the reviewer, time and comment.
func (s *ReviewService) Review(ctx context.Context, reviewerID, careerID string, input *ReviewInput) (*models.Career, error) {
	input.Status = strings.TrimSpace(input.Status)
	input.Comment = strings.TrimSpace(input.Comment)

	verr := domain.NewValidationError()
	validate.Struct(verr, input)
	if err := verr.Err(); err != nil {
		return nil, err
	}

	career, err := s.careerRepo.GetByID(ctx, careerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCareerNotFound
		}
		return nil, err
	}

	from := domain.CareerStatus(career.Status)
	to := domain.CareerStatus(input.Status)
	if !from.CanTransitionTo(to) {
		return nil, domain.ErrInvalidStatusTransition
	}

	now := s.now()
	career.Status = string(to)
	career.UpdatedAt = now
	if to == domain.CareerSubmitted && career.SubmittedAt == nil {
		career.SubmittedAt = &now
	}
	if input.Comment != "" {
		career.ReviewComment = input.Comment
	}
	if to.IsTerminal() {
		career.ReviewedAt = &now
		career.ReviewerID = &reviewerID
	}

	if err := s.careerRepo.Update(ctx, career); err != nil {
		return nil, err
	}

	s.activity.Record(ctx, ActivityEntry{
		UserID:     career.UserID,
		Action:     domain.ActionCareerReviewed,
		TargetType: "career",
		TargetID:   career.ID,
		Details: map[string]interface{}{
			"from":        string(from),
			"to":          string(to),
			"reviewer_id": reviewerID,
		},
	})

	log.Printf("🔎 Career %s reviewed: %s -> %s (reviewer=%s)", career.ID, from, to, reviewerID)
	return career, nil
}

// ListQueue lists careers awaiting review, oldest submission first. An empty
// status covers both submitted and under_review.
func (s *ReviewService) ListQueue(ctx context.Context, status string, params *pagination.Params) ([]*models.Career, int64, error) {
	statuses := []string{string(domain.CareerSubmitted), string(domain.CareerUnderReview)}
	if status != "" {
		if !domain.CareerStatus(status).Valid() {
			return nil, 0, domain.Invalid("status", "unknown career status")
		}
		statuses = []string{status}
	}
	return s.careerRepo.ListByStatus(ctx, statuses, params.Offset, params.Limit)
}
