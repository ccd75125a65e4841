package repositories

import (
	"context"
	"errors"
	"time"

	"careerhub/internal/adapters/persistence/models"
	"careerhub/internal/core/domain"

	"gorm.io/gorm"
)

// certificateRepository implements CertificateRepository interface
type certificateRepository struct {
	db *gorm.DB
}

// NewCertificateRepository creates a new certificate repository
func NewCertificateRepository(db *gorm.DB) CertificateRepository {
	return &certificateRepository{db: db}
}

// CreateBatch inserts every request or none of them
func (r *certificateRepository) CreateBatch(ctx context.Context, requests []*models.CertificateRequest) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, req := range requests {
			if err := tx.Omit("Career").Create(req).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// GetByID gets a request with its career
func (r *certificateRepository) GetByID(ctx context.Context, id string) (*models.CertificateRequest, error) {
	var req models.CertificateRequest
	err := r.db.WithContext(ctx).
		Preload("Career").
		Where("id = ?", id).
		First(&req).Error
	if err != nil {
		return nil, err
	}
	return &req, nil
}

// GetByIDForUser gets a request only if userID owns it
func (r *certificateRepository) GetByIDForUser(ctx context.Context, id, userID string) (*models.CertificateRequest, error) {
	var req models.CertificateRequest
	err := r.db.WithContext(ctx).
		Preload("Career").
		Where("id = ? AND user_id = ?", id, userID).
		First(&req).Error
	if err != nil {
		return nil, err
	}
	return &req, nil
}

// ListByUser lists an owner's requests, newest first, joined with their careers
func (r *certificateRepository) ListByUser(ctx context.Context, userID string) ([]*models.CertificateRequest, error) {
	var reqs []*models.CertificateRequest
	err := r.db.WithContext(ctx).
		Preload("Career").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&reqs).Error
	if err != nil {
		return nil, err
	}
	return reqs, nil
}

// ListByStatus lists requests of any owner, oldest first
func (r *certificateRepository) ListByStatus(ctx context.Context, status string, offset, limit int) ([]*models.CertificateRequest, int64, error) {
	var reqs []*models.CertificateRequest
	var total int64

	query := r.db.WithContext(ctx).Model(&models.CertificateRequest{}).Where("status = ?", status)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.
		Preload("Career").
		Order("created_at ASC").
		Offset(offset).
		Limit(limit).
		Find(&reqs).Error
	if err != nil {
		return nil, 0, err
	}
	return reqs, total, nil
}

// MarkIssued moves a pending request to issued. It reports false when the
// request was not pending at write time and returns
// domain.ErrDuplicateCertificateNumber when the number is taken.
func (r *certificateRepository) MarkIssued(ctx context.Context, id, number, pdfPath string, issueDate time.Time) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&models.CertificateRequest{}).
		Where("id = ? AND status = ?", id, string(domain.CertificatePending)).
		Updates(map[string]interface{}{
			"status":             string(domain.CertificateIssued),
			"certificate_number": number,
			"pdf_path":           pdfPath,
			"issue_date":         issueDate,
		})
	if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
		return false, domain.ErrDuplicateCertificateNumber
	}
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected == 1, nil
}

// ExistsByNumber checks if a certificate number was already issued
func (r *certificateRepository) ExistsByNumber(ctx context.Context, number string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.CertificateRequest{}).
		Where("certificate_number = ?", number).
		Count(&count).Error
	return count > 0, err
}

// CountByCareer counts requests referencing a career
func (r *certificateRepository) CountByCareer(ctx context.Context, careerID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.CertificateRequest{}).
		Where("career_id = ?", careerID).
		Count(&count).Error
	return count, err
}

// CountByStatus counts requests in a status
func (r *certificateRepository) CountByStatus(ctx context.Context, status string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.CertificateRequest{}).
		Where("status = ?", status).
		Count(&count).Error
	return count, err
}
