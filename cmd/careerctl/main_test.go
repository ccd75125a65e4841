package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"careerhub/internal/adapters/persistence/models"
	"careerhub/internal/adapters/storage"
	"careerhub/internal/config"
	"careerhub/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func run(t *testing.T, e *env, args ...string) (string, error) {
	t.Helper()
	open := func(context.Context) (*env, error) { return e, nil }

	var out bytes.Buffer
	cmd := newRootCommand(open)
	cmd.SetArgs(args)
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func newEnv(t *testing.T) (*env, *storage.MemoryStore) {
	store := storage.NewMemoryStore()
	return &env{
		cfg:          &config.Config{AppMode: "dev"},
		db:           testutil.NewDB(t),
		certificates: store,
	}, store
}

func submittedCareer(t *testing.T, db *gorm.DB) *models.Career {
	career := &models.Career{
		UserID:         "u1",
		CompanyName:    "Acme",
		Position:       "Engineer",
		StartDate:      time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC),
		JobCategory:    "development",
		JobDescription: "Built things",
		Status:         "submitted",
	}
	require.NoError(t, db.Create(career).Error)
	return career
}

func TestReviewAndIssueCommands(t *testing.T) {
	e, store := newEnv(t)
	career := submittedCareer(t, e.db)

	out, err := run(t, e, "review", career.ID, "--reviewer", "r1", "--comment", "verified")
	require.NoError(t, err)
	assert.Contains(t, out, "is now approved")

	req := &models.CertificateRequest{UserID: "u1", CareerID: career.ID, Purpose: "visa", Status: "pending"}
	require.NoError(t, e.db.Create(req).Error)

	pdfFile := filepath.Join(t.TempDir(), "cert.pdf")
	require.NoError(t, os.WriteFile(pdfFile, testutil.MinimalPDF(1), 0o600))

	out, err = run(t, e, "issue", req.ID, "--number", "CERT-2024-001", "--date", "2024-03-01", "--file", pdfFile)
	require.NoError(t, err)
	assert.Contains(t, out, "certs/u1/"+req.ID+"-CERT-2024-001.pdf")
	assert.Equal(t, 1, store.Len())

	var stored models.CertificateRequest
	require.NoError(t, e.db.First(&stored, "id = ?", req.ID).Error)
	assert.Equal(t, "issued", stored.Status)
	require.NotNil(t, stored.IssueDate)
	assert.Equal(t, "2024-03-01", stored.IssueDate.Format(models.DateLayout))

	_, err = run(t, e, "issue", req.ID, "--number", "CERT-2024-002", "--pdf-path", "certs/other.pdf")
	assert.Error(t, err)
}

func TestIssueCommand_FlagErrors(t *testing.T) {
	e, _ := newEnv(t)

	_, err := run(t, e, "issue", "r1", "--number", "N1")
	assert.ErrorContains(t, err, "exactly one of --file or --pdf-path")

	_, err = run(t, e, "issue", "r1", "--number", "N1", "--pdf-path", "x.pdf", "--date", "01/02/2024")
	assert.ErrorContains(t, err, "YYYY-MM-DD")
}

func TestPurgeTokensCommand(t *testing.T) {
	e, _ := newEnv(t)
	require.NoError(t, e.db.Create(&models.RefreshToken{UserID: "u1", TokenHash: "old", ExpiresAt: time.Now().Add(-time.Hour)}).Error)

	out, err := run(t, e, "purge-tokens")
	require.NoError(t, err)
	assert.Contains(t, out, "1 refresh tokens removed")
}

func TestSeedCommand(t *testing.T) {
	t.Setenv("SEED_ADMIN_PASSWORD", "")
	t.Setenv("SEED_REVIEWER_PASSWORD", "")
	e, _ := newEnv(t)
	e.cfg.AppMode = "prod"

	_, err := run(t, e, "seed")
	require.NoError(t, err)

	var notices int64
	require.NoError(t, e.db.Model(&models.Notice{}).Count(&notices).Error)
	assert.EqualValues(t, 1, notices)
}
