package services

import (
	"strings"
	"testing"
	"time"

	"careerhub/internal/adapters/persistence/models"
	"careerhub/internal/core/domain"
	"careerhub/internal/pkg/pagination"
	"careerhub/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCertificateFlow_EndToEnd(t *testing.T) {
	env := newTestEnv(t)

	career := env.createCareer(t, "u1", &CreateCareerInput{
		CompanyName:    "Acme",
		Position:       "Engineer",
		StartDate:      "2020-01-01",
		EndDate:        strPtr("2022-01-01"),
		IsCurrent:      false,
		JobCategory:    "development",
		JobDescription: "Built stuff",
	})
	assert.Equal(t, string(domain.CareerDraft), career.Status)

	eligible, err := env.certs.ListEligibleCareers(env.ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, eligible)

	_, err = env.careers.Submit(env.ctx, "u1", career.ID)
	require.NoError(t, err)
	_, err = env.reviews.Review(env.ctx, "reviewer-1", career.ID, &ReviewInput{Status: "approved"})
	require.NoError(t, err)

	eligible, err = env.certs.ListEligibleCareers(env.ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, []string{career.ID}, careerIDs(eligible))

	requests, err := env.certs.Request(env.ctx, "u1", &RequestCertificateInput{
		CareerIDs: []string{career.ID},
		Purpose:   "job change",
	})
	require.NoError(t, err)
	require.Len(t, requests, 1)
	assert.Equal(t, string(domain.CertificatePending), requests[0].Status)
	assert.Equal(t, career.ID, requests[0].CareerID)
	assert.Equal(t, "job change", requests[0].Purpose)

	issueDate := time.Date(2022, 2, 1, 0, 0, 0, 0, time.UTC)
	issued, err := env.certs.Issue(env.ctx, requests[0].ID, "CERT-0001", "certs/u1/0001.pdf", issueDate)
	require.NoError(t, err)
	assert.Equal(t, string(domain.CertificateIssued), issued.Status)
	require.NotNil(t, issued.CertificateNumber)
	assert.Equal(t, "CERT-0001", *issued.CertificateNumber)
	require.NotNil(t, issued.PdfPath)
	assert.Equal(t, "certs/u1/0001.pdf", *issued.PdfPath)
	require.NotNil(t, issued.IssueDate)
	assert.Equal(t, "2022-02-01", issued.IssueDate.Format(models.DateLayout))

	list, err := env.certs.List(env.ctx, "u1")
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.NotNil(t, list[0].Career)
	assert.Equal(t, "Acme", list[0].Career.CompanyName)
}

func TestCertificateRequest_OneRowPerCareer(t *testing.T) {
	env := newTestEnv(t)
	a := env.approvedCareer(t, "u1")
	b := env.approvedCareer(t, "u1")

	requests, err := env.certs.Request(env.ctx, "u1", &RequestCertificateInput{
		CareerIDs: []string{a.ID, b.ID, a.ID},
		Purpose:   "  visa application  ",
	})
	require.NoError(t, err)
	require.Len(t, requests, 2)
	assert.Equal(t, a.ID, requests[0].CareerID)
	assert.Equal(t, b.ID, requests[1].CareerID)
	for _, r := range requests {
		assert.Equal(t, "visa application", r.Purpose)
		assert.Equal(t, "u1", r.UserID)
	}
	assert.EqualValues(t, 2, env.countCertificates(t))
}

func TestCertificateRequest_PreconditionOrder(t *testing.T) {
	env := newTestEnv(t)
	approved := env.approvedCareer(t, "u1")

	_, err := env.certs.Request(env.ctx, "u1", &RequestCertificateInput{Purpose: ""})
	require.ErrorIs(t, err, domain.ErrInvalidInput)
	assertValidationMessage(t, err, "career_ids", "no careers selected")

	_, err = env.certs.Request(env.ctx, "u1", &RequestCertificateInput{CareerIDs: []string{approved.ID}, Purpose: "   "})
	require.ErrorIs(t, err, domain.ErrInvalidInput)
	assertValidationMessage(t, err, "purpose", "purpose required")

	assert.Zero(t, env.countCertificates(t))
}

func TestCertificateRequest_ForeignCareerRejectsWholeBatch(t *testing.T) {
	env := newTestEnv(t)
	mine := env.approvedCareer(t, "u1")
	theirs := env.approvedCareer(t, "u2")

	_, err := env.certs.Request(env.ctx, "u1", &RequestCertificateInput{
		CareerIDs: []string{mine.ID, theirs.ID},
		Purpose:   "job change",
	})
	require.ErrorIs(t, err, domain.ErrNotFound)
	assert.NotErrorIs(t, err, domain.ErrForbidden)
	assert.Zero(t, env.countCertificates(t))
}

func TestCertificateRequest_DraftCareerIsDistinguishable(t *testing.T) {
	env := newTestEnv(t)
	approved := env.approvedCareer(t, "u1")
	draft := env.createCareer(t, "u1", validCareer())

	_, err := env.certs.Request(env.ctx, "u1", &RequestCertificateInput{
		CareerIDs: []string{approved.ID, draft.ID},
		Purpose:   "job change",
	})
	require.ErrorIs(t, err, domain.ErrCareerNotApproved)
	assert.ErrorIs(t, err, domain.ErrForbidden)
	assert.NotErrorIs(t, err, domain.ErrNotFound)
	assert.Zero(t, env.countCertificates(t))
}

func TestCertificateIssue_AlreadyIssued(t *testing.T) {
	env := newTestEnv(t)
	career := env.approvedCareer(t, "u1")

	requests, err := env.certs.Request(env.ctx, "u1", &RequestCertificateInput{CareerIDs: []string{career.ID}, Purpose: "visa"})
	require.NoError(t, err)
	id := requests[0].ID

	first := time.Date(2022, 2, 1, 0, 0, 0, 0, time.UTC)
	_, err = env.certs.Issue(env.ctx, id, "CERT-0001", "certs/u1/0001.pdf", first)
	require.NoError(t, err)

	_, err = env.certs.Issue(env.ctx, id, "CERT-0002", "certs/u1/0002.pdf", first.AddDate(0, 1, 0))
	require.ErrorIs(t, err, domain.ErrCertificateNotPending)
	assert.ErrorIs(t, err, domain.ErrInvalidState)

	stored, err := env.certRepo.GetByID(env.ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "CERT-0001", *stored.CertificateNumber)
	assert.Equal(t, "certs/u1/0001.pdf", *stored.PdfPath)
	assert.Equal(t, "2022-02-01", stored.IssueDate.Format(models.DateLayout))
}

func TestCertificateIssue_Validation(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.certs.Issue(env.ctx, "any", " ", "", time.Time{})
	require.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.ElementsMatch(t, []string{"certificate_number", "pdf_path", "issue_date"}, fieldNames(err))

	_, err = env.certs.Issue(env.ctx, "missing", "CERT-1", "certs/x.pdf", time.Now())
	assert.ErrorIs(t, err, domain.ErrCertificateNotFound)

	_, err = env.certs.IssueInput(env.ctx, "missing", &IssueCertificateInput{
		CertificateNumber: "CERT-1",
		PdfPath:           "certs/x.pdf",
		IssueDate:         "01/02/2022",
	})
	assert.Equal(t, []string{"issue_date"}, fieldNames(err))
}

func TestCertificateIssue_DuplicateNumber(t *testing.T) {
	env := newTestEnv(t)
	a := env.approvedCareer(t, "u1")
	b := env.approvedCareer(t, "u1")

	requests, err := env.certs.Request(env.ctx, "u1", &RequestCertificateInput{CareerIDs: []string{a.ID, b.ID}, Purpose: "visa"})
	require.NoError(t, err)

	day := time.Date(2022, 2, 1, 0, 0, 0, 0, time.UTC)
	_, err = env.certs.Issue(env.ctx, requests[0].ID, "CERT-0001", "certs/u1/a.pdf", day)
	require.NoError(t, err)

	_, err = env.certs.Issue(env.ctx, requests[1].ID, "CERT-0001", "certs/u1/b.pdf", day)
	require.ErrorIs(t, err, domain.ErrDuplicateCertificateNumber)

	stored, err := env.certRepo.GetByID(env.ctx, requests[1].ID)
	require.NoError(t, err)
	assert.Equal(t, string(domain.CertificatePending), stored.Status)
}

func TestCertificateIssueWithPDF_AndDownload(t *testing.T) {
	env := newTestEnv(t)
	career := env.approvedCareer(t, "u1")

	requests, err := env.certs.Request(env.ctx, "u1", &RequestCertificateInput{CareerIDs: []string{career.ID}, Purpose: "visa"})
	require.NoError(t, err)
	id := requests[0].ID

	_, err = env.certs.Download(env.ctx, "u1", id)
	require.ErrorIs(t, err, domain.ErrCertificateNotIssued)

	_, err = env.certs.IssueWithPDF(env.ctx, id, "CERT-9", time.Now(), []byte("not a pdf"))
	require.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Zero(t, env.certStore.Len())

	pdf := testutil.MinimalPDF(1)
	issued, err := env.certs.IssueWithPDF(env.ctx, id, "CERT/9", time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), pdf)
	require.NoError(t, err)
	assert.Equal(t, "certs/u1/"+id+"-CERT_9.pdf", *issued.PdfPath)

	obj, err := env.certs.Download(env.ctx, "u1", id)
	require.NoError(t, err)
	assert.Equal(t, pdf, obj.Data)

	_, err = env.certs.Download(env.ctx, "u2", id)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCertificateIssueWithPDF_RemovesFileOnFailure(t *testing.T) {
	env := newTestEnv(t)
	a := env.approvedCareer(t, "u1")
	b := env.approvedCareer(t, "u1")

	requests, err := env.certs.Request(env.ctx, "u1", &RequestCertificateInput{CareerIDs: []string{a.ID, b.ID}, Purpose: "visa"})
	require.NoError(t, err)

	day := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	_, err = env.certs.Issue(env.ctx, requests[0].ID, "CERT-1", "certs/u1/elsewhere.pdf", day)
	require.NoError(t, err)

	_, err = env.certs.IssueWithPDF(env.ctx, requests[1].ID, "CERT-1", day, testutil.MinimalPDF(1))
	require.ErrorIs(t, err, domain.ErrDuplicateEntry)
	assert.Zero(t, env.certStore.Len())
}

func TestCertificateIssueWithPDF_DuplicateNumberKeepsIssuedFile(t *testing.T) {
	env := newTestEnv(t)
	a := env.approvedCareer(t, "u1")
	b := env.approvedCareer(t, "u1")

	requests, err := env.certs.Request(env.ctx, "u1", &RequestCertificateInput{CareerIDs: []string{a.ID, b.ID}, Purpose: "visa"})
	require.NoError(t, err)

	day := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	first := testutil.MinimalPDF(1)
	_, err = env.certs.IssueWithPDF(env.ctx, requests[0].ID, "CERT-1", day, first)
	require.NoError(t, err)

	_, err = env.certs.IssueWithPDF(env.ctx, requests[1].ID, "CERT-1", day, testutil.MinimalPDF(2))
	require.ErrorIs(t, err, domain.ErrDuplicateCertificateNumber)
	assert.Equal(t, 1, env.certStore.Len())

	obj, err := env.certs.Download(env.ctx, "u1", requests[0].ID)
	require.NoError(t, err)
	assert.Equal(t, first, obj.Data)
}

func TestCertificateIssueWithPDF_SimilarNumbersGetOwnFiles(t *testing.T) {
	env := newTestEnv(t)
	a := env.approvedCareer(t, "u1")
	b := env.approvedCareer(t, "u1")

	requests, err := env.certs.Request(env.ctx, "u1", &RequestCertificateInput{CareerIDs: []string{a.ID, b.ID}, Purpose: "visa"})
	require.NoError(t, err)

	day := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	slash, underscore := testutil.MinimalPDF(1), testutil.MinimalPDF(2)

	issuedA, err := env.certs.IssueWithPDF(env.ctx, requests[0].ID, "CERT/9", day, slash)
	require.NoError(t, err)
	issuedB, err := env.certs.IssueWithPDF(env.ctx, requests[1].ID, "CERT_9", day, underscore)
	require.NoError(t, err)
	assert.NotEqual(t, *issuedA.PdfPath, *issuedB.PdfPath)

	objA, err := env.certs.Download(env.ctx, "u1", requests[0].ID)
	require.NoError(t, err)
	assert.Equal(t, slash, objA.Data)

	objB, err := env.certs.Download(env.ctx, "u1", requests[1].ID)
	require.NoError(t, err)
	assert.Equal(t, underscore, objB.Data)
}

func TestCertificateIssue_NumberTooLong(t *testing.T) {
	env := newTestEnv(t)
	career := env.approvedCareer(t, "u1")

	requests, err := env.certs.Request(env.ctx, "u1", &RequestCertificateInput{CareerIDs: []string{career.ID}, Purpose: "visa"})
	require.NoError(t, err)
	id := requests[0].ID

	long := strings.Repeat("9", MaxCertificateNumberLen+1)
	day := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	_, err = env.certs.Issue(env.ctx, id, long, "certs/u1/long.pdf", day)
	require.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Equal(t, []string{"certificate_number"}, fieldNames(err))

	_, err = env.certs.IssueWithPDF(env.ctx, id, long, day, testutil.MinimalPDF(1))
	require.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Zero(t, env.certStore.Len())

	_, err = env.certs.Issue(env.ctx, id, long[:MaxCertificateNumberLen], "certs/u1/max.pdf", day)
	assert.NoError(t, err)
}

func TestCertificateMarkIssued_NumberTakenConcurrently(t *testing.T) {
	env := newTestEnv(t)
	a := env.approvedCareer(t, "u1")
	b := env.approvedCareer(t, "u1")

	requests, err := env.certs.Request(env.ctx, "u1", &RequestCertificateInput{CareerIDs: []string{a.ID, b.ID}, Purpose: "visa"})
	require.NoError(t, err)

	day := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	_, err = env.certs.Issue(env.ctx, requests[0].ID, "CERT-7", "certs/u1/a.pdf", day)
	require.NoError(t, err)

	// a second issuer that already passed the number check
	ok, err := env.certRepo.MarkIssued(env.ctx, requests[1].ID, "CERT-7", "certs/u1/b.pdf", day)
	require.ErrorIs(t, err, domain.ErrDuplicateCertificateNumber)
	assert.False(t, ok)

	stored, err := env.certRepo.GetByID(env.ctx, requests[1].ID)
	require.NoError(t, err)
	assert.Equal(t, string(domain.CertificatePending), stored.Status)
}

func TestCertificateList_NewestFirstAndOwnerScoped(t *testing.T) {
	env := newTestEnv(t)
	a := env.approvedCareer(t, "u1")
	b := env.approvedCareer(t, "u1")
	other := env.approvedCareer(t, "u2")

	first, err := env.certs.Request(env.ctx, "u1", &RequestCertificateInput{CareerIDs: []string{a.ID}, Purpose: "visa"})
	require.NoError(t, err)
	second, err := env.certs.Request(env.ctx, "u1", &RequestCertificateInput{CareerIDs: []string{b.ID}, Purpose: "loan"})
	require.NoError(t, err)
	_, err = env.certs.Request(env.ctx, "u2", &RequestCertificateInput{CareerIDs: []string{other.ID}, Purpose: "visa"})
	require.NoError(t, err)

	list, err := env.certs.List(env.ctx, "u1")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, second[0].ID, list[0].ID)
	assert.Equal(t, first[0].ID, list[1].ID)

	pending, total, err := env.certs.ListPending(env.ctx, pagination.New(1, 2))
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)
	assert.Len(t, pending, 2)
}

func assertValidationMessage(t *testing.T, err error, field, message string) {
	t.Helper()
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	require.Len(t, verr.Fields, 1)
	assert.Equal(t, field, verr.Fields[0].Field)
	assert.Equal(t, message, verr.Fields[0].Message)
}
