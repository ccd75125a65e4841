package repositories

import (
	"context"

	"careerhub/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// careerRepository implements CareerRepository interface
type careerRepository struct {
	db *gorm.DB
}

// NewCareerRepository creates a new career repository
func NewCareerRepository(db *gorm.DB) CareerRepository {
	return &careerRepository{db: db}
}

// Create creates a new career
func (r *careerRepository) Create(ctx context.Context, career *models.Career) error {
	return r.db.WithContext(ctx).Create(career).Error
}

// Update saves every column of the career
func (r *careerRepository) Update(ctx context.Context, career *models.Career) error {
	return r.db.WithContext(ctx).Save(career).Error
}

// Delete removes a career
func (r *careerRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Career{}).Error
}

// GetByID gets a career regardless of owner (reviewer access)
func (r *careerRepository) GetByID(ctx context.Context, id string) (*models.Career, error) {
	var career models.Career
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&career).Error
	if err != nil {
		return nil, err
	}
	return &career, nil
}

// GetByIDForUser gets a career only if userID owns it
func (r *careerRepository) GetByIDForUser(ctx context.Context, id, userID string) (*models.Career, error) {
	var career models.Career
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&career).Error
	if err != nil {
		return nil, err
	}
	return &career, nil
}

// ListByUser lists an owner's careers, newest first
func (r *careerRepository) ListByUser(ctx context.Context, userID string, filter CareerFilter) ([]*models.Career, error) {
	var careers []*models.Career

	query := r.db.WithContext(ctx).Where("user_id = ?", userID)
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.JobCategory != "" {
		query = query.Where("job_category = ?", filter.JobCategory)
	}

	switch filter.OrderBy {
	case "start_date":
		query = query.Order("start_date DESC").Order("created_at DESC")
	default:
		query = query.Order("created_at DESC")
	}

	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	if err := query.Find(&careers).Error; err != nil {
		return nil, err
	}
	return careers, nil
}

// ListByIDsForUser returns the subset of ids owned by userID
func (r *careerRepository) ListByIDsForUser(ctx context.Context, userID string, ids []string) ([]*models.Career, error) {
	var careers []*models.Career
	if len(ids) == 0 {
		return careers, nil
	}
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND id IN ?", userID, ids).
		Find(&careers).Error
	if err != nil {
		return nil, err
	}
	return careers, nil
}

// ListByStatus lists careers of any owner in the given states, oldest submission first
func (r *careerRepository) ListByStatus(ctx context.Context, statuses []string, offset, limit int) ([]*models.Career, int64, error) {
	var careers []*models.Career
	var total int64

	query := r.db.WithContext(ctx).Model(&models.Career{}).Where("status IN ?", statuses)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.
		Order("submitted_at ASC").
		Order("created_at ASC").
		Offset(offset).
		Limit(limit).
		Find(&careers).Error
	if err != nil {
		return nil, 0, err
	}

	return careers, total, nil
}

// CountByStatus counts all careers grouped by status
func (r *careerRepository) CountByStatus(ctx context.Context) (map[string]int64, error) {
	var rows []struct {
		Status string
		Count  int64
	}
	err := r.db.WithContext(ctx).
		Model(&models.Career{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Count
	}
	return counts, nil
}
