package repositories

import (
	"context"
	"time"

	"careerhub/internal/adapters/persistence/models"
)

// UserRepository defines user repository interface
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	Update(ctx context.Context, user *models.User) error
	List(ctx context.Context, search string, offset, limit int) ([]*models.User, int64, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	CountByRole(ctx context.Context, role string) (int64, error)
}

// RefreshTokenRepository defines refresh token repository interface
type RefreshTokenRepository interface {
	Create(ctx context.Context, token *models.RefreshToken) error
	GetByTokenHash(ctx context.Context, tokenHash string) (*models.RefreshToken, error)
	Revoke(ctx context.Context, id string) error
	RevokeByTokenHash(ctx context.Context, tokenHash string) error
	RevokeAllByUserID(ctx context.Context, userID string) error
	DeleteExpired(ctx context.Context) (int64, error)
	CountActiveByUserID(ctx context.Context, userID string) (int64, error)
}

// CareerFilter narrows an owner's career list
type CareerFilter struct {
	Status      string
	JobCategory string
	// OrderBy is "created_at" (default) or "start_date", always descending.
	OrderBy string
	Limit   int
}

// CareerRepository defines career repository interface.
// Owner-scoped lookups return gorm.ErrRecordNotFound for rows of other users.
type CareerRepository interface {
	Create(ctx context.Context, career *models.Career) error
	Update(ctx context.Context, career *models.Career) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*models.Career, error)
	GetByIDForUser(ctx context.Context, id, userID string) (*models.Career, error)
	ListByUser(ctx context.Context, userID string, filter CareerFilter) ([]*models.Career, error)
	ListByIDsForUser(ctx context.Context, userID string, ids []string) ([]*models.Career, error)
	ListByStatus(ctx context.Context, statuses []string, offset, limit int) ([]*models.Career, int64, error)
	CountByStatus(ctx context.Context) (map[string]int64, error)
}

// CertificateRepository defines certificate request repository interface
type CertificateRepository interface {
	CreateBatch(ctx context.Context, requests []*models.CertificateRequest) error
	GetByID(ctx context.Context, id string) (*models.CertificateRequest, error)
	GetByIDForUser(ctx context.Context, id, userID string) (*models.CertificateRequest, error)
	ListByUser(ctx context.Context, userID string) ([]*models.CertificateRequest, error)
	ListByStatus(ctx context.Context, status string, offset, limit int) ([]*models.CertificateRequest, int64, error)
	MarkIssued(ctx context.Context, id, number, pdfPath string, issueDate time.Time) (bool, error)
	ExistsByNumber(ctx context.Context, number string) (bool, error)
	CountByCareer(ctx context.Context, careerID string) (int64, error)
	CountByStatus(ctx context.Context, status string) (int64, error)
}

// DocumentFilter narrows an owner's document list
type DocumentFilter struct {
	CareerID string
	Category string
}

// DocumentRepository defines uploaded file repository interface
type DocumentRepository interface {
	Create(ctx context.Context, doc *models.Document) error
	GetByIDForUser(ctx context.Context, id, userID string) (*models.Document, error)
	ListByUser(ctx context.Context, userID string, filter DocumentFilter) ([]*models.Document, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}

// NoticeFilter narrows the published notice list
type NoticeFilter struct {
	Category string
	Search   string
	Offset   int
	Limit    int
}

// NoticeRepository defines notice repository interface
type NoticeRepository interface {
	Create(ctx context.Context, notice *models.Notice) error
	GetPublishedByID(ctx context.Context, id string, now time.Time) (*models.Notice, error)
	ListPublished(ctx context.Context, filter NoticeFilter, now time.Time) ([]*models.Notice, int64, error)
	IncrementViewCount(ctx context.Context, id string) error
}

// ActivityRepository defines activity log repository interface
type ActivityRepository interface {
	Create(ctx context.Context, entry *models.ActivityLog) error
	ListRecentByUser(ctx context.Context, userID string, limit int) ([]*models.ActivityLog, error)
}
