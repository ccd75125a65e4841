package services

import (
	"context"
	"errors"
	"log"
	"strconv"
	"strings"
	"time"

	"careerhub/internal/adapters/persistence/models"
	"careerhub/internal/adapters/persistence/repositories"
	"careerhub/internal/core/domain"
	"careerhub/internal/pkg/validate"

	"gorm.io/gorm"
)

// CareerService handles the career record store
type CareerService struct {
	careerRepo repositories.CareerRepository
	certRepo   repositories.CertificateRepository
	activity   *ActivityService
	now        func() time.Time
}

// NewCareerService creates a new career service
func NewCareerService(
	careerRepo repositories.CareerRepository,
	certRepo repositories.CertificateRepository,
	activity *ActivityService,
) *CareerService {
	return &CareerService{
		careerRepo: careerRepo,
		certRepo:   certRepo,
		activity:   activity,
		now:        time.Now,
	}
}

// ProjectInput represents one project of a career
type ProjectInput struct {
	Name        string  `json:"name" validate:"required,max=200"`
	Description string  `json:"description"`
	StartDate   string  `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate     *string `json:"end_date" validate:"omitempty,datetime=2006-01-02"`
}

// CreateCareerInput represents create career input
type CreateCareerInput struct {
	CompanyName    string         `json:"company_name" validate:"required,max=200"`
	BusinessNumber string         `json:"business_number" validate:"max=30"`
	Position       string         `json:"position" validate:"required,max=100"`
	Department     string         `json:"department" validate:"max=100"`
	StartDate      string         `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate        *string        `json:"end_date" validate:"omitempty,datetime=2006-01-02"`
	IsCurrent      bool           `json:"is_current"`
	JobCategory    string         `json:"job_category" validate:"required,oneof=development analysis design test maintenance consulting management"`
	JobDescription string         `json:"job_description" validate:"required"`
	Technologies   []string       `json:"technologies" validate:"max=50,dive,max=50"`
	Projects       []ProjectInput `json:"projects" validate:"max=50,dive"`
	// Submit creates the record directly as submitted instead of draft.
	Submit bool `json:"submit"`
}

// UpdateCareerInput represents a partial career update. Nil fields keep
// their stored value.
type UpdateCareerInput struct {
	CompanyName    *string         `json:"company_name"`
	BusinessNumber *string         `json:"business_number"`
	Position       *string         `json:"position"`
	Department     *string         `json:"department"`
	StartDate      *string         `json:"start_date"`
	EndDate        *string         `json:"end_date"`
	IsCurrent      *bool           `json:"is_current"`
	JobCategory    *string         `json:"job_category"`
	JobDescription *string         `json:"job_description"`
	Technologies   *[]string       `json:"technologies"`
	Projects       *[]ProjectInput `json:"projects"`
}

// careerFields is a validated career input with parsed dates
type careerFields struct {
	input     CreateCareerInput
	startDate time.Time
	endDate   *time.Time
	projects  []models.Project
}

// Create registers a new career for the owner
func (s *CareerService) Create(ctx context.Context, ownerID string, input *CreateCareerInput) (*models.Career, error) {
	fields, err := parseCareerInput(input)
	if err != nil {
		return nil, err
	}

	now := s.now()
	career := &models.Career{
		UserID:    ownerID,
		Status:    string(domain.CareerDraft),
		CreatedAt: now,
		UpdatedAt: now,
	}
	fields.apply(career)

	if input.Submit {
		career.Status = string(domain.CareerSubmitted)
		career.SubmittedAt = &now
	}

	if err := s.careerRepo.Create(ctx, career); err != nil {
		return nil, err
	}

	s.activity.Record(ctx, ActivityEntry{
		UserID:     ownerID,
		Action:     domain.ActionCareerCreated,
		TargetType: "career",
		TargetID:   career.ID,
		Details:    map[string]interface{}{"company_name": career.CompanyName, "status": career.Status},
	})

	log.Printf("✅ Career created: %s (user=%s, status=%s)", career.ID, ownerID, career.Status)
	return career, nil
}

// Update merges input into an owned career and re-validates the result
func (s *CareerService) Update(ctx context.Context, ownerID, id string, input *UpdateCareerInput) (*models.Career, error) {
	career, err := s.getOwned(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}

	if domain.CareerStatus(career.Status) == domain.CareerApproved {
		return nil, domain.ErrCareerLocked
	}

	merged := mergeCareerInput(career, input)
	fields, err := parseCareerInput(&merged)
	if err != nil {
		return nil, err
	}

	fields.apply(career)
	career.UpdatedAt = s.now()

	if err := s.careerRepo.Update(ctx, career); err != nil {
		return nil, err
	}

	s.activity.Record(ctx, ActivityEntry{
		UserID:     ownerID,
		Action:     domain.ActionCareerUpdated,
		TargetType: "career",
		TargetID:   career.ID,
	})

	return career, nil
}

// Delete removes an owned career that no certificate request references
func (s *CareerService) Delete(ctx context.Context, ownerID, id string) error {
	career, err := s.getOwned(ctx, ownerID, id)
	if err != nil {
		return err
	}

	refs, err := s.certRepo.CountByCareer(ctx, career.ID)
	if err != nil {
		return err
	}
	if refs > 0 {
		return domain.ErrCareerReferenced
	}

	if err := s.careerRepo.Delete(ctx, career.ID); err != nil {
		return err
	}

	s.activity.Record(ctx, ActivityEntry{
		UserID:     ownerID,
		Action:     domain.ActionCareerDeleted,
		TargetType: "career",
		TargetID:   career.ID,
		Details:    map[string]interface{}{"company_name": career.CompanyName},
	})

	log.Printf("🗑️ Career deleted: %s (user=%s)", career.ID, ownerID)
	return nil
}

// Get returns an owned career
func (s *CareerService) Get(ctx context.Context, ownerID, id string) (*models.Career, error) {
	return s.getOwned(ctx, ownerID, id)
}

// List returns the owner's careers, newest first unless the filter orders by start date
func (s *CareerService) List(ctx context.Context, ownerID string, filter *repositories.CareerFilter) ([]*models.Career, error) {
	if filter == nil {
		filter = &repositories.CareerFilter{}
	}

	verr := domain.NewValidationError()
	if filter.Status != "" && !domain.CareerStatus(filter.Status).Valid() {
		verr.Add("status", "unknown career status")
	}
	if filter.JobCategory != "" && !containsWord(domain.JobCategories, filter.JobCategory) {
		verr.Add("job_category", "must be one of: "+strings.ReplaceAll(domain.JobCategories, " ", ", "))
	}
	switch filter.OrderBy {
	case "", "created_at", "start_date":
	default:
		verr.Add("order_by", "must be one of: created_at, start_date")
	}
	if err := verr.Err(); err != nil {
		return nil, err
	}

	return s.careerRepo.ListByUser(ctx, ownerID, *filter)
}

// Submit moves an owned draft to submitted for review
func (s *CareerService) Submit(ctx context.Context, ownerID, id string) (*models.Career, error) {
	career, err := s.getOwned(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}

	if domain.CareerStatus(career.Status) != domain.CareerDraft {
		return nil, domain.ErrInvalidStatusTransition
	}

	now := s.now()
	career.Status = string(domain.CareerSubmitted)
	career.SubmittedAt = &now
	career.UpdatedAt = now

	if err := s.careerRepo.Update(ctx, career); err != nil {
		return nil, err
	}

	s.activity.Record(ctx, ActivityEntry{
		UserID:     ownerID,
		Action:     domain.ActionCareerSubmitted,
		TargetType: "career",
		TargetID:   career.ID,
	})

	log.Printf("📨 Career submitted for review: %s (user=%s)", career.ID, ownerID)
	return career, nil
}

// Statistics computes the owner's career counts and total experience
func (s *CareerService) Statistics(ctx context.Context, ownerID string) (*domain.CareerStatistics, error) {
	careers, err := s.careerRepo.ListByUser(ctx, ownerID, repositories.CareerFilter{})
	if err != nil {
		return nil, err
	}

	snapshots := models.Snapshots(careers)
	stats := domain.ComputeStatistics(snapshots)
	stats.TotalExperience = domain.ComputeTotalExperience(snapshots, s.now())
	return &stats, nil
}

// Experience computes the total experience of a subset of owned careers.
// An empty id list covers every career of the owner.
func (s *CareerService) Experience(ctx context.Context, ownerID string, ids []string) (*domain.Experience, error) {
	var careers []*models.Career
	var err error

	ids = uniqueIDs(ids)
	if len(ids) == 0 {
		careers, err = s.careerRepo.ListByUser(ctx, ownerID, repositories.CareerFilter{})
	} else {
		careers, err = s.careerRepo.ListByIDsForUser(ctx, ownerID, ids)
		if err == nil && len(careers) != len(ids) {
			return nil, domain.ErrCareerNotFound
		}
	}
	if err != nil {
		return nil, err
	}

	exp := domain.ComputeTotalExperience(models.Snapshots(careers), s.now())
	return &exp, nil
}

func (s *CareerService) getOwned(ctx context.Context, ownerID, id string) (*models.Career, error) {
	career, err := s.careerRepo.GetByIDForUser(ctx, id, ownerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCareerNotFound
		}
		return nil, err
	}
	return career, nil
}

// parseCareerInput normalizes input in place and checks every field invariant,
// collecting all failures.
func parseCareerInput(input *CreateCareerInput) (*careerFields, error) {
	normalizeCareerInput(input)

	verr := domain.NewValidationError()
	validate.Struct(verr, input)

	fields := &careerFields{input: *input}

	if !verr.Has("start_date") {
		fields.startDate, _ = time.Parse(models.DateLayout, input.StartDate)
	}

	if input.IsCurrent {
		// a current career has no end date, whatever was sent
		fields.input.EndDate = nil
	} else if input.EndDate == nil {
		verr.Add("end_date", "is required unless the career is current")
	} else if !verr.Has("end_date") {
		end, _ := time.Parse(models.DateLayout, *input.EndDate)
		if !verr.Has("start_date") && end.Before(fields.startDate) {
			verr.Add("end_date", "must not be before start_date")
		}
		fields.endDate = &end
	}

	for i, p := range input.Projects {
		if p.EndDate != nil && p.StartDate != "" && *p.EndDate < p.StartDate {
			verr.Add(projectField(i, "end_date"), "must not be before start_date")
		}
		fields.projects = append(fields.projects, models.Project{
			Name:        p.Name,
			Description: p.Description,
			StartDate:   p.StartDate,
			EndDate:     p.EndDate,
		})
	}

	if err := verr.Err(); err != nil {
		return nil, err
	}
	return fields, nil
}

func (f *careerFields) apply(c *models.Career) {
	c.CompanyName = f.input.CompanyName
	c.BusinessNumber = f.input.BusinessNumber
	c.Position = f.input.Position
	c.Department = f.input.Department
	c.StartDate = f.startDate
	c.EndDate = f.endDate
	c.IsCurrent = f.input.IsCurrent
	c.JobCategory = f.input.JobCategory
	c.JobDescription = f.input.JobDescription
	c.Technologies = f.input.Technologies
	c.Projects = f.projects
}

func normalizeCareerInput(in *CreateCareerInput) {
	in.CompanyName = strings.TrimSpace(in.CompanyName)
	in.BusinessNumber = strings.TrimSpace(in.BusinessNumber)
	in.Position = strings.TrimSpace(in.Position)
	in.Department = strings.TrimSpace(in.Department)
	in.StartDate = strings.TrimSpace(in.StartDate)
	in.EndDate = trimOptional(in.EndDate)
	in.JobCategory = strings.TrimSpace(in.JobCategory)
	in.JobDescription = strings.TrimSpace(in.JobDescription)

	techs := make([]string, 0, len(in.Technologies))
	seen := make(map[string]bool, len(in.Technologies))
	for _, t := range in.Technologies {
		t = strings.TrimSpace(t)
		if t == "" || seen[t] {
			continue
		}
		seen[t] = true
		techs = append(techs, t)
	}
	in.Technologies = techs

	for i := range in.Projects {
		p := &in.Projects[i]
		p.Name = strings.TrimSpace(p.Name)
		p.Description = strings.TrimSpace(p.Description)
		p.StartDate = strings.TrimSpace(p.StartDate)
		p.EndDate = trimOptional(p.EndDate)
	}
}

// mergeCareerInput overlays a partial update on the stored record
func mergeCareerInput(c *models.Career, in *UpdateCareerInput) CreateCareerInput {
	merged := CreateCareerInput{
		CompanyName:    c.CompanyName,
		BusinessNumber: c.BusinessNumber,
		Position:       c.Position,
		Department:     c.Department,
		StartDate:      c.StartDate.Format(models.DateLayout),
		IsCurrent:      c.IsCurrent,
		JobCategory:    c.JobCategory,
		JobDescription: c.JobDescription,
		Technologies:   append([]string(nil), c.Technologies...),
	}
	if c.EndDate != nil {
		end := c.EndDate.Format(models.DateLayout)
		merged.EndDate = &end
	}
	for _, p := range c.Projects {
		merged.Projects = append(merged.Projects, ProjectInput{
			Name:        p.Name,
			Description: p.Description,
			StartDate:   p.StartDate,
			EndDate:     p.EndDate,
		})
	}

	if in == nil {
		return merged
	}
	if in.CompanyName != nil {
		merged.CompanyName = *in.CompanyName
	}
	if in.BusinessNumber != nil {
		merged.BusinessNumber = *in.BusinessNumber
	}
	if in.Position != nil {
		merged.Position = *in.Position
	}
	if in.Department != nil {
		merged.Department = *in.Department
	}
	if in.StartDate != nil {
		merged.StartDate = *in.StartDate
	}
	if in.EndDate != nil {
		merged.EndDate = in.EndDate
	}
	if in.IsCurrent != nil {
		merged.IsCurrent = *in.IsCurrent
	}
	if in.JobCategory != nil {
		merged.JobCategory = *in.JobCategory
	}
	if in.JobDescription != nil {
		merged.JobDescription = *in.JobDescription
	}
	if in.Technologies != nil {
		merged.Technologies = *in.Technologies
	}
	if in.Projects != nil {
		merged.Projects = *in.Projects
	}
	return merged
}

func trimOptional(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}

func projectField(i int, name string) string {
	return "projects[" + strconv.Itoa(i) + "]." + name
}

func containsWord(list, word string) bool {
	for _, w := range strings.Fields(list) {
		if w == word {
			return true
		}
	}
	return false
}

// uniqueIDs trims ids and drops blanks and repeats, keeping first-seen order
func uniqueIDs(ids []string) []string {
	out := make([]string, 0, len(ids))
	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}
