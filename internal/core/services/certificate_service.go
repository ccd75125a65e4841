package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"
	"unicode/utf8"

	"careerhub/internal/adapters/persistence/models"
	"careerhub/internal/adapters/persistence/repositories"
	"careerhub/internal/adapters/storage"
	"careerhub/internal/core/domain"
	"careerhub/internal/pkg/pagination"
	"careerhub/internal/pkg/pdfcheck"

	"gorm.io/gorm"
)

// MaxCertificateNumberLen matches the certificate_number column size
const MaxCertificateNumberLen = 50

// CertificateService gates certificate requests to approved careers and
// manages the pending -> issued lifecycle
type CertificateService struct {
	certRepo   repositories.CertificateRepository
	careerRepo repositories.CareerRepository
	store      storage.ObjectStore
	activity   *ActivityService
	now        func() time.Time
}

// NewCertificateService creates a new certificate service
func NewCertificateService(
	certRepo repositories.CertificateRepository,
	careerRepo repositories.CareerRepository,
	store storage.ObjectStore,
	activity *ActivityService,
) *CertificateService {
	return &CertificateService{
		certRepo:   certRepo,
		careerRepo: careerRepo,
		store:      store,
		activity:   activity,
		now:        time.Now,
	}
}

// RequestCertificateInput represents a certificate request for one or more careers
type RequestCertificateInput struct {
	CareerIDs []string `json:"career_ids"`
	Purpose   string   `json:"purpose"`
}

// IssueCertificateInput represents the back-office issuance of a request
type IssueCertificateInput struct {
	CertificateNumber string `json:"certificate_number"`
	PdfPath           string `json:"pdf_path"`
	IssueDate         string `json:"issue_date"`
}

// ListEligibleCareers returns the owner's approved careers
func (s *CertificateService) ListEligibleCareers(ctx context.Context, ownerID string) ([]*models.Career, error) {
	return s.careerRepo.ListByUser(ctx, ownerID, repositories.CareerFilter{
		Status:  string(domain.CareerApproved),
		OrderBy: "start_date",
	})
}

// Request creates one pending request per selected career. Every career is
// checked before any row is written.
func (s *CertificateService) Request(ctx context.Context, ownerID string, input *RequestCertificateInput) ([]*models.CertificateRequest, error) {
	ids := uniqueIDs(input.CareerIDs)
	if len(ids) == 0 {
		return nil, domain.Invalid("career_ids", "no careers selected")
	}

	purpose := strings.TrimSpace(input.Purpose)
	if purpose == "" {
		return nil, domain.Invalid("purpose", "purpose required")
	}

	careers, err := s.careerRepo.ListByIDsForUser(ctx, ownerID, ids)
	if err != nil {
		return nil, err
	}

	byID := make(map[string]*models.Career, len(careers))
	for _, c := range careers {
		byID[c.ID] = c
	}

	// ownership first so a foreign id is never reported as "not approved"
	for _, id := range ids {
		if _, ok := byID[id]; !ok {
			return nil, domain.ErrCareerNotFound
		}
	}
	for _, id := range ids {
		if domain.CareerStatus(byID[id].Status) != domain.CareerApproved {
			return nil, domain.ErrCareerNotApproved
		}
	}

	now := s.now()
	requests := make([]*models.CertificateRequest, len(ids))
	for i, id := range ids {
		requests[i] = &models.CertificateRequest{
			UserID:    ownerID,
			CareerID:  id,
			Purpose:   purpose,
			Status:    string(domain.CertificatePending),
			CreatedAt: now,
			UpdatedAt: now,
		}
	}

	if err := s.certRepo.CreateBatch(ctx, requests); err != nil {
		return nil, err
	}

	for _, req := range requests {
		req.Career = byID[req.CareerID]
		s.activity.Record(ctx, ActivityEntry{
			UserID:     ownerID,
			Action:     domain.ActionCertificateRequested,
			TargetType: "certificate",
			TargetID:   req.ID,
			Details:    map[string]interface{}{"career_id": req.CareerID, "purpose": purpose},
		})
	}

	log.Printf("📄 %d certificate request(s) created for user %s", len(requests), ownerID)
	return requests, nil
}

// Issue moves a pending request to issued with the supplied number, file path
// and date. Any other state fails without touching the request.
func (s *CertificateService) Issue(ctx context.Context, requestID, number, pdfPath string, issueDate time.Time) (*models.CertificateRequest, error) {
	number = strings.TrimSpace(number)
	pdfPath = strings.TrimSpace(pdfPath)

	verr := domain.NewValidationError()
	checkCertificateNumber(verr, number)
	if pdfPath == "" {
		verr.Add("pdf_path", "is required")
	}
	if issueDate.IsZero() {
		verr.Add("issue_date", "is required")
	}
	if err := verr.Err(); err != nil {
		return nil, err
	}

	req, err := s.getRequest(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if domain.CertificateStatus(req.Status) != domain.CertificatePending {
		return nil, domain.ErrCertificateNotPending
	}

	if err := s.ensureNumberFree(ctx, number); err != nil {
		return nil, err
	}

	day := time.Date(issueDate.Year(), issueDate.Month(), issueDate.Day(), 0, 0, 0, 0, time.UTC)
	ok, err := s.certRepo.MarkIssued(ctx, req.ID, number, pdfPath, day)
	if err != nil {
		return nil, err
	}
	if !ok {
		// issued concurrently between the read and the write
		return nil, domain.ErrCertificateNotPending
	}

	issued, err := s.getRequest(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	s.activity.Record(ctx, ActivityEntry{
		UserID:     issued.UserID,
		Action:     domain.ActionCertificateIssued,
		TargetType: "certificate",
		TargetID:   issued.ID,
		Details:    map[string]interface{}{"certificate_number": number},
	})

	log.Printf("✅ Certificate issued: %s (request=%s)", number, issued.ID)
	return issued, nil
}

// IssueInput parses the wire form of an issuance and calls Issue
func (s *CertificateService) IssueInput(ctx context.Context, requestID string, input *IssueCertificateInput) (*models.CertificateRequest, error) {
	var issueDate time.Time
	if strings.TrimSpace(input.IssueDate) != "" {
		d, err := time.Parse(models.DateLayout, strings.TrimSpace(input.IssueDate))
		if err != nil {
			return nil, domain.Invalid("issue_date", "must be a date in YYYY-MM-DD format")
		}
		issueDate = d
	}
	return s.Issue(ctx, requestID, input.CertificateNumber, input.PdfPath, issueDate)
}

// IssueWithPDF stores a certificate PDF and issues the request pointing at it.
// The stored file is removed again when issuance fails.
func (s *CertificateService) IssueWithPDF(ctx context.Context, requestID, number string, issueDate time.Time, data []byte) (*models.CertificateRequest, error) {
	if _, err := pdfcheck.PageCount(data); err != nil {
		return nil, domain.Invalid("file", "must be a readable PDF document")
	}

	number = strings.TrimSpace(number)
	verr := domain.NewValidationError()
	checkCertificateNumber(verr, number)
	if err := verr.Err(); err != nil {
		return nil, err
	}

	req, err := s.getRequest(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if domain.CertificateStatus(req.Status) != domain.CertificatePending {
		return nil, domain.ErrCertificateNotPending
	}
	if err := s.ensureNumberFree(ctx, number); err != nil {
		return nil, err
	}

	key := CertificateObjectKey(req.UserID, req.ID, number)
	if err := s.store.Put(ctx, key, bytes.NewReader(data), int64(len(data)), "application/pdf"); err != nil {
		return nil, fmt.Errorf("store certificate pdf: %w", err)
	}

	issued, err := s.Issue(ctx, requestID, number, key, issueDate)
	if err != nil {
		if delErr := s.store.Delete(ctx, key); delErr != nil {
			log.Printf("⚠️ Failed to remove orphaned certificate %s: %v", key, delErr)
		}
		return nil, err
	}
	return issued, nil
}

// List returns the owner's requests, newest first, each with its career
func (s *CertificateService) List(ctx context.Context, ownerID string) ([]*models.CertificateRequest, error) {
	return s.certRepo.ListByUser(ctx, ownerID)
}

// ListPending returns requests awaiting issuance across all users
func (s *CertificateService) ListPending(ctx context.Context, params *pagination.Params) ([]*models.CertificateRequest, int64, error) {
	return s.certRepo.ListByStatus(ctx, string(domain.CertificatePending), params.Offset, params.Limit)
}

// Download fetches the issued certificate file of an owned request
func (s *CertificateService) Download(ctx context.Context, ownerID, id string) (*storage.Object, error) {
	req, err := s.certRepo.GetByIDForUser(ctx, id, ownerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCertificateNotFound
		}
		return nil, err
	}

	if domain.CertificateStatus(req.Status) != domain.CertificateIssued || req.PdfPath == nil {
		return nil, domain.ErrCertificateNotIssued
	}

	return s.store.Get(ctx, *req.PdfPath)
}

func (s *CertificateService) getRequest(ctx context.Context, id string) (*models.CertificateRequest, error) {
	req, err := s.certRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCertificateNotFound
		}
		return nil, err
	}
	return req, nil
}

func (s *CertificateService) ensureNumberFree(ctx context.Context, number string) error {
	exists, err := s.certRepo.ExistsByNumber(ctx, number)
	if err != nil {
		return err
	}
	if exists {
		return domain.ErrDuplicateCertificateNumber
	}
	return nil
}

func checkCertificateNumber(verr *domain.ValidationError, number string) {
	switch {
	case number == "":
		verr.Add("certificate_number", "is required")
	case utf8.RuneCountInString(number) > MaxCertificateNumberLen:
		verr.Add("certificate_number", fmt.Sprintf("must be at most %d characters", MaxCertificateNumberLen))
	}
}

// CertificateObjectKey is the object store key of an issued certificate.
// The request id keeps keys distinct even when two numbers sanitize alike.
func CertificateObjectKey(ownerID, requestID, number string) string {
	safe := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		}
		return '_'
	}, strings.TrimSpace(number))
	return fmt.Sprintf("certs/%s/%s-%s.pdf", ownerID, requestID, safe)
}
