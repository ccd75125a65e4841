package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"careerhub/internal/adapters/persistence/repositories"

	"github.com/robfig/cron/v3"
)

// DefaultTokenCleanupSpec runs the token purge every night at 03:00
const DefaultTokenCleanupSpec = "0 3 * * *"

// cronJobTimeout bounds one scheduled run
const cronJobTimeout = 2 * time.Minute

// CronService runs scheduled maintenance jobs
type CronService struct {
	cron             *cron.Cron
	refreshTokenRepo repositories.RefreshTokenRepository
	tokenCleanupSpec string
}

// NewCronService creates a new cron service
func NewCronService(refreshTokenRepo repositories.RefreshTokenRepository, tokenCleanupSpec string) *CronService {
	if tokenCleanupSpec == "" {
		tokenCleanupSpec = DefaultTokenCleanupSpec
	}
	return &CronService{
		cron:             cron.New(cron.WithLocation(time.UTC)),
		refreshTokenRepo: refreshTokenRepo,
		tokenCleanupSpec: tokenCleanupSpec,
	}
}

// Start registers the jobs and starts the scheduler
func (s *CronService) Start() error {
	if _, err := s.cron.AddFunc(s.tokenCleanupSpec, s.runTokenCleanup); err != nil {
		return fmt.Errorf("schedule token cleanup %q: %w", s.tokenCleanupSpec, err)
	}

	s.cron.Start()
	log.Printf("🚀 CronService started (token cleanup: %s)", s.tokenCleanupSpec)
	return nil
}

// Stop stops the scheduler and waits for running jobs
func (s *CronService) Stop() {
	<-s.cron.Stop().Done()
	log.Println("🛑 CronService stopped")
}

// PurgeExpiredTokens deletes expired and revoked refresh tokens
func (s *CronService) PurgeExpiredTokens(ctx context.Context) (int64, error) {
	return s.refreshTokenRepo.DeleteExpired(ctx)
}

func (s *CronService) runTokenCleanup() {
	ctx, cancel := context.WithTimeout(context.Background(), cronJobTimeout)
	defer cancel()

	n, err := s.PurgeExpiredTokens(ctx)
	if err != nil {
		log.Printf("❌ Token cleanup failed: %v", err)
		return
	}
	log.Printf("🧹 Token cleanup removed %d refresh token(s)", n)
}
