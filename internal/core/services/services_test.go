package services

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"careerhub/internal/adapters/persistence/models"
	"careerhub/internal/adapters/persistence/repositories"
	"careerhub/internal/adapters/storage"
	"careerhub/internal/core/domain"
	"careerhub/internal/pkg/password"
	"careerhub/internal/testutil"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func TestMain(m *testing.M) {
	password.Cost = bcrypt.MinCost
	os.Exit(m.Run())
}

type testEnv struct {
	ctx   context.Context
	db    *gorm.DB
	clock *testutil.Clock

	careerRepo repositories.CareerRepository
	certRepo   repositories.CertificateRepository
	docStore   *storage.MemoryStore
	certStore  *storage.MemoryStore

	activity *ActivityService
	careers  *CareerService
	reviews  *ReviewService
	certs    *CertificateService
	docs     *DocumentService
	notices  *NoticeService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db := testutil.NewDB(t)
	clock := testutil.NewClock(time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC))

	env := &testEnv{
		ctx:        context.Background(),
		db:         db,
		clock:      clock,
		careerRepo: repositories.NewCareerRepository(db),
		certRepo:   repositories.NewCertificateRepository(db),
		docStore:   storage.NewMemoryStore(),
		certStore:  storage.NewMemoryStore(),
	}

	env.activity = NewActivityService(repositories.NewActivityRepository(db))
	env.careers = NewCareerService(env.careerRepo, env.certRepo, env.activity)
	env.reviews = NewReviewService(env.careerRepo, env.activity)
	env.certs = NewCertificateService(env.certRepo, env.careerRepo, env.certStore, env.activity)
	env.docs = NewDocumentService(repositories.NewDocumentRepository(db), env.careerRepo, env.docStore, env.activity, 1<<20)
	env.notices = NewNoticeService(repositories.NewNoticeRepository(db))

	env.activity.now = clock.Now
	env.careers.now = clock.Now
	env.reviews.now = clock.Now
	env.certs.now = clock.Now
	env.docs.now = clock.Now
	env.notices.now = clock.Now

	return env
}

func strPtr(s string) *string { return &s }

func boolPtr(b bool) *bool { return &b }

func validCareer() *CreateCareerInput {
	return &CreateCareerInput{
		CompanyName:    "Acme",
		Position:       "Engineer",
		StartDate:      "2020-01-01",
		EndDate:        strPtr("2022-01-01"),
		JobCategory:    "development",
		JobDescription: "Built stuff",
	}
}

func (e *testEnv) createCareer(t *testing.T, ownerID string, input *CreateCareerInput) *models.Career {
	t.Helper()
	career, err := e.careers.Create(e.ctx, ownerID, input)
	require.NoError(t, err)
	return career
}

// approvedCareer walks a new career through submit and reviewer approval
func (e *testEnv) approvedCareer(t *testing.T, ownerID string) *models.Career {
	t.Helper()
	career := e.createCareer(t, ownerID, validCareer())

	_, err := e.careers.Submit(e.ctx, ownerID, career.ID)
	require.NoError(t, err)

	approved, err := e.reviews.Review(e.ctx, "reviewer-1", career.ID, &ReviewInput{Status: string(domain.CareerApproved)})
	require.NoError(t, err)
	return approved
}

func (e *testEnv) countCertificates(t *testing.T) int64 {
	t.Helper()
	var n int64
	require.NoError(t, e.db.Model(&models.CertificateRequest{}).Count(&n).Error)
	return n
}

func fieldNames(err error) []string {
	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		return nil
	}
	names := make([]string, 0, len(verr.Fields))
	for _, f := range verr.Fields {
		names = append(names, f.Field)
	}
	return names
}
