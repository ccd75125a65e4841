package services

import (
	"context"
	"time"

	"careerhub/internal/adapters/persistence/models"
	"careerhub/internal/adapters/persistence/repositories"
	"careerhub/internal/core/domain"

	"gorm.io/gorm"
)

// recentCareersLimit is how many careers the user dashboard lists
const recentCareersLimit = 5

// DashboardService assembles dashboard views
type DashboardService struct {
	db       *gorm.DB
	careers  *CareerService
	activity *ActivityService
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(db *gorm.DB, careers *CareerService, activity *ActivityService) *DashboardService {
	return &DashboardService{
		db:       db,
		careers:  careers,
		activity: activity,
	}
}

// ============================================================
// User Dashboard
// ============================================================

// UserDashboardData represents user dashboard data
type UserDashboardData struct {
	Statistics          *domain.CareerStatistics `json:"statistics"`
	PendingCertificates int64                    `json:"pending_certificates"`
	IssuedCertificates  int64                    `json:"issued_certificates"`
	Documents           int64                    `json:"documents"`
	RecentCareers       []*models.CareerResponse `json:"recent_careers"`
	RecentActivity      []*models.ActivityLog    `json:"recent_activity"`
}

// GetUserDashboard returns the owner's statistics, recent careers and activity
func (s *DashboardService) GetUserDashboard(ctx context.Context, userID string) (*UserDashboardData, error) {
	stats, err := s.careers.Statistics(ctx, userID)
	if err != nil {
		return nil, err
	}

	data := &UserDashboardData{Statistics: stats}

	s.db.WithContext(ctx).Table("certificates").
		Where("user_id = ? AND status = ?", userID, string(domain.CertificatePending)).
		Count(&data.PendingCertificates)

	s.db.WithContext(ctx).Table("certificates").
		Where("user_id = ? AND status = ?", userID, string(domain.CertificateIssued)).
		Count(&data.IssuedCertificates)

	s.db.WithContext(ctx).Table("uploaded_files").
		Where("user_id = ?", userID).
		Count(&data.Documents)

	recent, err := s.careers.careerRepo.ListByUser(ctx, userID, repositories.CareerFilter{
		Limit: recentCareersLimit,
	})
	if err != nil {
		return nil, err
	}
	data.RecentCareers = models.CareersToResponse(recent)

	activity, err := s.activity.Recent(ctx, userID, RecentActivityLimit)
	if err != nil {
		return nil, err
	}
	data.RecentActivity = activity

	return data, nil
}

// ============================================================
// Admin Dashboard
// ============================================================

// AdminDashboardData represents admin dashboard data
type AdminDashboardData struct {
	TotalUsers     int64 `json:"total_users"`
	TotalReviewers int64 `json:"total_reviewers"`
	TotalAdmins    int64 `json:"total_admins"`

	CareersByStatus map[string]int64 `json:"careers_by_status"`
	AwaitingReview  int64            `json:"awaiting_review"`

	PendingCertificates int64 `json:"pending_certificates"`
	IssuedCertificates  int64 `json:"issued_certificates"`
	IssuedThisMonth     int64 `json:"issued_this_month"`

	TotalDocuments int64 `json:"total_documents"`
}

// GetAdminDashboard returns global counts for reviewers and admins
func (s *DashboardService) GetAdminDashboard(ctx context.Context) (*AdminDashboardData, error) {
	data := &AdminDashboardData{}

	s.db.WithContext(ctx).Table("users").Where("deleted_at IS NULL").Count(&data.TotalUsers)
	s.db.WithContext(ctx).Table("users").Where("role = ? AND deleted_at IS NULL", string(domain.RoleReviewer)).Count(&data.TotalReviewers)
	s.db.WithContext(ctx).Table("users").Where("role = ? AND deleted_at IS NULL", string(domain.RoleAdmin)).Count(&data.TotalAdmins)

	counts, err := s.careers.careerRepo.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}
	data.CareersByStatus = counts
	data.AwaitingReview = counts[string(domain.CareerSubmitted)] + counts[string(domain.CareerUnderReview)]

	s.db.WithContext(ctx).Table("certificates").
		Where("status = ?", string(domain.CertificatePending)).
		Count(&data.PendingCertificates)

	s.db.WithContext(ctx).Table("certificates").
		Where("status = ?", string(domain.CertificateIssued)).
		Count(&data.IssuedCertificates)

	now := s.careers.now().UTC()
	startOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	s.db.WithContext(ctx).Table("certificates").
		Where("status = ? AND issue_date >= ?", string(domain.CertificateIssued), startOfMonth).
		Count(&data.IssuedThisMonth)

	s.db.WithContext(ctx).Table("uploaded_files").Count(&data.TotalDocuments)

	return data, nil
}
