package services

import (
	"context"
	"log"
	"time"

	"careerhub/internal/adapters/persistence/models"
	"careerhub/internal/adapters/persistence/repositories"
)

// RecentActivityLimit is how many entries the dashboard shows
const RecentActivityLimit = 10

// ActivityEntry describes one user action to record
type ActivityEntry struct {
	UserID     string
	Action     string
	TargetType string
	TargetID   string
	Details    map[string]interface{}
	IPAddress  string
	UserAgent  string
}

type requestMetaKey struct{}

// RequestMeta is the client information attached to logged actions
type RequestMeta struct {
	IPAddress string
	UserAgent string
}

// WithRequestMeta attaches client information to ctx for the activity log
func WithRequestMeta(ctx context.Context, ip, userAgent string) context.Context {
	return context.WithValue(ctx, requestMetaKey{}, RequestMeta{IPAddress: ip, UserAgent: userAgent})
}

func requestMetaFrom(ctx context.Context) RequestMeta {
	meta, _ := ctx.Value(requestMetaKey{}).(RequestMeta)
	return meta
}

// ActivityService writes the append-only activity log
type ActivityService struct {
	activityRepo repositories.ActivityRepository
	now          func() time.Time
}

// NewActivityService creates a new activity service
func NewActivityService(activityRepo repositories.ActivityRepository) *ActivityService {
	return &ActivityService{
		activityRepo: activityRepo,
		now:          time.Now,
	}
}

// Record stores an entry. Failures are logged and never returned, so
// logging can not fail the operation being logged.
func (s *ActivityService) Record(ctx context.Context, entry ActivityEntry) {
	if s == nil {
		return
	}

	meta := requestMetaFrom(ctx)
	if entry.IPAddress == "" {
		entry.IPAddress = meta.IPAddress
	}
	if entry.UserAgent == "" {
		entry.UserAgent = meta.UserAgent
	}

	row := &models.ActivityLog{
		UserID:     entry.UserID,
		Action:     entry.Action,
		TargetType: entry.TargetType,
		TargetID:   entry.TargetID,
		Details:    entry.Details,
		IPAddress:  entry.IPAddress,
		UserAgent:  entry.UserAgent,
		CreatedAt:  s.now(),
	}

	if err := s.activityRepo.Create(ctx, row); err != nil {
		log.Printf("⚠️ Failed to record activity %s for user %s: %v", entry.Action, entry.UserID, err)
	}
}

// Recent returns the latest entries of a user
func (s *ActivityService) Recent(ctx context.Context, userID string, limit int) ([]*models.ActivityLog, error) {
	if limit <= 0 {
		limit = RecentActivityLimit
	}
	return s.activityRepo.ListRecentByUser(ctx, userID, limit)
}
