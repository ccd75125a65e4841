package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log"
	"mime"
	"path/filepath"
	"strings"
	"time"

	"careerhub/internal/adapters/persistence/models"
	"careerhub/internal/adapters/persistence/repositories"
	"careerhub/internal/adapters/storage"
	"careerhub/internal/core/domain"
	"careerhub/internal/pkg/pdfcheck"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DefaultMaxUploadBytes caps a single document upload
const DefaultMaxUploadBytes int64 = 10 << 20

// allowedDocumentTypes maps accepted content types to stored file extensions
var allowedDocumentTypes = map[string]string{
	"application/pdf":    "pdf",
	"image/jpeg":         "jpg",
	"image/png":          "png",
	"application/msword": "doc",
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": "docx",
}

// DocumentService handles supporting document uploads
type DocumentService struct {
	docRepo    repositories.DocumentRepository
	careerRepo repositories.CareerRepository
	store      storage.ObjectStore
	activity   *ActivityService
	maxBytes   int64
	now        func() time.Time
}

// NewDocumentService creates a new document service
func NewDocumentService(
	docRepo repositories.DocumentRepository,
	careerRepo repositories.CareerRepository,
	store storage.ObjectStore,
	activity *ActivityService,
	maxBytes int64,
) *DocumentService {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxUploadBytes
	}
	return &DocumentService{
		docRepo:    docRepo,
		careerRepo: careerRepo,
		store:      store,
		activity:   activity,
		maxBytes:   maxBytes,
		now:        time.Now,
	}
}

// UploadDocumentInput represents one uploaded file
type UploadDocumentInput struct {
	Category    string
	CareerID    string
	FileName    string
	ContentType string
	Data        []byte
}

// MaxBytes returns the upload size limit
func (s *DocumentService) MaxBytes() int64 {
	return s.maxBytes
}

// Upload validates and stores a document, optionally linked to an owned career
func (s *DocumentService) Upload(ctx context.Context, ownerID string, input *UploadDocumentInput) (*models.Document, error) {
	category := strings.TrimSpace(input.Category)
	fileName := filepath.Base(strings.TrimSpace(input.FileName))
	contentType := documentContentType(input.ContentType, fileName)
	ext, allowed := allowedDocumentTypes[contentType]

	verr := domain.NewValidationError()
	if category == "" {
		verr.Add("category", "is required")
	} else if !containsWord(domain.DocumentCategories, category) {
		verr.Add("category", "must be one of: "+strings.ReplaceAll(domain.DocumentCategories, " ", ", "))
	}
	if fileName == "" || fileName == "." {
		verr.Add("file", "is required")
	} else if len(input.Data) == 0 {
		verr.Add("file", "is empty")
	} else if int64(len(input.Data)) > s.maxBytes {
		verr.Add("file", fmt.Sprintf("must be at most %d MB", s.maxBytes>>20))
	} else if !allowed {
		verr.Add("file", "must be a PDF, JPEG, PNG or Word document")
	}

	var pageCount *int
	if allowed && ext == "pdf" && !verr.Has("file") {
		pages, err := pdfcheck.PageCount(input.Data)
		if err != nil {
			verr.Add("file", "must be a readable PDF document")
		} else {
			pageCount = &pages
		}
	}
	if err := verr.Err(); err != nil {
		return nil, err
	}

	var careerID *string
	if id := strings.TrimSpace(input.CareerID); id != "" {
		if _, err := s.careerRepo.GetByIDForUser(ctx, id, ownerID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, domain.ErrCareerNotFound
			}
			return nil, err
		}
		careerID = &id
	}

	key := fmt.Sprintf("documents/%s/%s.%s", ownerID, uuid.NewString(), ext)
	if err := s.store.Put(ctx, key, bytes.NewReader(input.Data), int64(len(input.Data)), contentType); err != nil {
		return nil, fmt.Errorf("store document: %w", err)
	}

	doc := &models.Document{
		UserID:      ownerID,
		CareerID:    careerID,
		Category:    category,
		FileName:    fileName,
		ObjectKey:   key,
		ContentType: contentType,
		Size:        int64(len(input.Data)),
		PageCount:   pageCount,
		CreatedAt:   s.now(),
	}
	if err := s.docRepo.Create(ctx, doc); err != nil {
		if delErr := s.store.Delete(ctx, key); delErr != nil {
			log.Printf("⚠️ Failed to remove orphaned upload %s: %v", key, delErr)
		}
		return nil, err
	}

	s.activity.Record(ctx, ActivityEntry{
		UserID:     ownerID,
		Action:     domain.ActionDocumentUploaded,
		TargetType: "document",
		TargetID:   doc.ID,
		Details:    map[string]interface{}{"file_name": fileName, "category": category},
	})

	log.Printf("📎 Document uploaded: %s (%d bytes, user=%s)", doc.ID, doc.Size, ownerID)
	return doc, nil
}

// List returns the owner's documents, newest first
func (s *DocumentService) List(ctx context.Context, ownerID string, filter repositories.DocumentFilter) ([]*models.Document, error) {
	if filter.Category != "" && !containsWord(domain.DocumentCategories, filter.Category) {
		return nil, domain.Invalid("category", "must be one of: "+strings.ReplaceAll(domain.DocumentCategories, " ", ", "))
	}
	return s.docRepo.ListByUser(ctx, ownerID, filter)
}

// Download returns an owned document and its file
func (s *DocumentService) Download(ctx context.Context, ownerID, id string) (*models.Document, *storage.Object, error) {
	doc, err := s.getOwned(ctx, ownerID, id)
	if err != nil {
		return nil, nil, err
	}

	obj, err := s.store.Get(ctx, doc.ObjectKey)
	if err != nil {
		return nil, nil, err
	}
	return doc, obj, nil
}

// Delete removes an owned document and its file
func (s *DocumentService) Delete(ctx context.Context, ownerID, id string) error {
	doc, err := s.getOwned(ctx, ownerID, id)
	if err != nil {
		return err
	}

	if err := s.docRepo.Delete(ctx, doc.ID); err != nil {
		return err
	}
	if err := s.store.Delete(ctx, doc.ObjectKey); err != nil {
		log.Printf("⚠️ Failed to remove stored file %s: %v", doc.ObjectKey, err)
	}

	s.activity.Record(ctx, ActivityEntry{
		UserID:     ownerID,
		Action:     domain.ActionDocumentDeleted,
		TargetType: "document",
		TargetID:   doc.ID,
		Details:    map[string]interface{}{"file_name": doc.FileName},
	})
	return nil
}

func (s *DocumentService) getOwned(ctx context.Context, ownerID, id string) (*models.Document, error) {
	doc, err := s.docRepo.GetByIDForUser(ctx, id, ownerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrDocumentNotFound
		}
		return nil, err
	}
	return doc, nil
}

// documentContentType prefers the declared type and falls back to the file extension
func documentContentType(declared, fileName string) string {
	ct := declared
	if ct == "" || ct == "application/octet-stream" {
		ct = mime.TypeByExtension(strings.ToLower(filepath.Ext(fileName)))
	}
	if mediaType, _, err := mime.ParseMediaType(ct); err == nil {
		ct = mediaType
	}
	return strings.ToLower(ct)
}
