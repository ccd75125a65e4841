package models

import (
	"time"

	"careerhub/internal/core/domain"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// DateLayout is the wire format of calendar dates
const DateLayout = "2006-01-02"

// ============================================================
// Auth & User Tables
// ============================================================

// User represents users table
type User struct {
	ID             string         `gorm:"primaryKey;size:36" json:"id"`
	Email          string         `gorm:"uniqueIndex;size:100;not null" json:"email"`
	Password       string         `gorm:"size:255;not null" json:"-"`
	Name           string         `gorm:"size:100;not null" json:"name"`
	Phone          string         `gorm:"size:30" json:"phone"`
	UserType       string         `gorm:"size:20;default:'individual'" json:"user_type"`
	CompanyName    string         `gorm:"size:200" json:"company_name"`
	BusinessNumber string         `gorm:"size:30" json:"business_number"`
	Role           string         `gorm:"size:20;default:'USER'" json:"role"`
	IsActive       bool           `gorm:"default:true" json:"is_active"`
	CreatedAt      time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`
}

func (User) TableName() string {
	return "users"
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}

// UserResponse DTO
type UserResponse struct {
	ID             string    `json:"id"`
	Email          string    `json:"email"`
	Name           string    `json:"name"`
	Phone          string    `json:"phone,omitempty"`
	UserType       string    `json:"user_type"`
	CompanyName    string    `json:"company_name,omitempty"`
	BusinessNumber string    `json:"business_number,omitempty"`
	Role           string    `json:"role"`
	IsActive       bool      `json:"is_active"`
	CreatedAt      time.Time `json:"created_at"`
}

func (u *User) ToResponse() *UserResponse {
	return &UserResponse{
		ID:             u.ID,
		Email:          u.Email,
		Name:           u.Name,
		Phone:          u.Phone,
		UserType:       u.UserType,
		CompanyName:    u.CompanyName,
		BusinessNumber: u.BusinessNumber,
		Role:           u.Role,
		IsActive:       u.IsActive,
		CreatedAt:      u.CreatedAt,
	}
}

// RefreshToken represents refresh_tokens table
type RefreshToken struct {
	ID        string     `gorm:"primaryKey;size:36" json:"id"`
	UserID    string     `gorm:"size:36;index;not null" json:"user_id"`
	TokenHash string     `gorm:"size:255;not null;index" json:"-"`
	ExpiresAt time.Time  `gorm:"not null" json:"expires_at"`
	CreatedAt time.Time  `gorm:"autoCreateTime" json:"created_at"`
	RevokedAt *time.Time `gorm:"index" json:"revoked_at"`
}

func (RefreshToken) TableName() string {
	return "refresh_tokens"
}

func (rt *RefreshToken) BeforeCreate(tx *gorm.DB) error {
	if rt.ID == "" {
		rt.ID = uuid.NewString()
	}
	return nil
}

func (rt *RefreshToken) IsRevoked() bool {
	return rt.RevokedAt != nil
}

func (rt *RefreshToken) IsExpired() bool {
	return time.Now().After(rt.ExpiresAt)
}

// ============================================================
// Career Tables
// ============================================================

// Project is one entry of a career's project history
type Project struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	StartDate   string  `json:"start_date"`
	EndDate     *string `json:"end_date,omitempty"`
}

// Career represents careers table
type Career struct {
	ID             string                       `gorm:"primaryKey;size:36" json:"id"`
	UserID         string                       `gorm:"size:36;index;not null" json:"user_id"`
	CompanyName    string                       `gorm:"size:200;not null" json:"company_name"`
	BusinessNumber string                       `gorm:"size:30" json:"business_number"`
	Position       string                       `gorm:"size:100;not null" json:"position"`
	Department     string                       `gorm:"size:100" json:"department"`
	StartDate      time.Time                    `gorm:"type:date;not null" json:"start_date"`
	EndDate        *time.Time                   `gorm:"type:date" json:"end_date"`
	IsCurrent      bool                         `gorm:"default:false" json:"is_current"`
	JobCategory    string                       `gorm:"size:20;not null;index" json:"job_category"`
	JobDescription string                       `gorm:"type:text;not null" json:"job_description"`
	Technologies   datatypes.JSONSlice[string]  `json:"technologies"`
	Projects       datatypes.JSONSlice[Project] `json:"projects"`
	Status         string                       `gorm:"size:20;not null;default:'draft';index" json:"status"`
	SubmittedAt    *time.Time                   `json:"submitted_at"`
	ReviewedAt     *time.Time                   `json:"reviewed_at"`
	ReviewerID     *string                      `gorm:"size:36" json:"reviewer_id"`
	ReviewComment  string                       `gorm:"type:text" json:"review_comment"`
	CreatedAt      time.Time                    `gorm:"index" json:"created_at"`
	UpdatedAt      time.Time                    `json:"updated_at"`
}

func (Career) TableName() string {
	return "careers"
}

func (c *Career) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}

// Snapshot returns the fields statistics are computed from
func (c *Career) Snapshot() domain.CareerSnapshot {
	return domain.CareerSnapshot{
		Status:    domain.CareerStatus(c.Status),
		StartDate: c.StartDate,
		EndDate:   c.EndDate,
		IsCurrent: c.IsCurrent,
	}
}

// Snapshots converts a career list for the aggregator
func Snapshots(careers []*Career) []domain.CareerSnapshot {
	out := make([]domain.CareerSnapshot, len(careers))
	for i, c := range careers {
		out[i] = c.Snapshot()
	}
	return out
}

// CareerResponse DTO
type CareerResponse struct {
	ID             string     `json:"id"`
	CompanyName    string     `json:"company_name"`
	BusinessNumber string     `json:"business_number,omitempty"`
	Position       string     `json:"position"`
	Department     string     `json:"department,omitempty"`
	StartDate      string     `json:"start_date"`
	EndDate        *string    `json:"end_date"`
	IsCurrent      bool       `json:"is_current"`
	JobCategory    string     `json:"job_category"`
	JobDescription string     `json:"job_description"`
	Technologies   []string   `json:"technologies"`
	Projects       []Project  `json:"projects"`
	Status         string     `json:"status"`
	SubmittedAt    *time.Time `json:"submitted_at,omitempty"`
	ReviewedAt     *time.Time `json:"reviewed_at,omitempty"`
	ReviewComment  string     `json:"review_comment,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

func (c *Career) ToResponse() *CareerResponse {
	resp := &CareerResponse{
		ID:             c.ID,
		CompanyName:    c.CompanyName,
		BusinessNumber: c.BusinessNumber,
		Position:       c.Position,
		Department:     c.Department,
		StartDate:      c.StartDate.Format(DateLayout),
		IsCurrent:      c.IsCurrent,
		JobCategory:    c.JobCategory,
		JobDescription: c.JobDescription,
		Technologies:   []string(c.Technologies),
		Projects:       []Project(c.Projects),
		Status:         c.Status,
		SubmittedAt:    c.SubmittedAt,
		ReviewedAt:     c.ReviewedAt,
		ReviewComment:  c.ReviewComment,
		CreatedAt:      c.CreatedAt,
		UpdatedAt:      c.UpdatedAt,
	}
	if c.EndDate != nil {
		end := c.EndDate.Format(DateLayout)
		resp.EndDate = &end
	}
	if resp.Technologies == nil {
		resp.Technologies = []string{}
	}
	if resp.Projects == nil {
		resp.Projects = []Project{}
	}
	return resp
}

// CareersToResponse converts a career list
func CareersToResponse(careers []*Career) []*CareerResponse {
	out := make([]*CareerResponse, len(careers))
	for i, c := range careers {
		out[i] = c.ToResponse()
	}
	return out
}

// ============================================================
// Certificate Tables
// ============================================================

// CertificateRequest represents certificates table, one row per career
type CertificateRequest struct {
	ID                string     `gorm:"primaryKey;size:36" json:"id"`
	UserID            string     `gorm:"size:36;index;not null" json:"user_id"`
	CareerID          string     `gorm:"size:36;index;not null" json:"career_id"`
	Purpose           string     `gorm:"type:text;not null" json:"purpose"`
	Status            string     `gorm:"size:20;not null;default:'pending';index" json:"status"`
	CertificateNumber *string    `gorm:"size:50;uniqueIndex" json:"certificate_number"`
	IssueDate         *time.Time `gorm:"type:date" json:"issue_date"`
	PdfPath           *string    `gorm:"size:500" json:"pdf_path"`
	CreatedAt         time.Time  `gorm:"index" json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`

	Career *Career `gorm:"foreignKey:CareerID;constraint:OnDelete:RESTRICT" json:"career,omitempty"`
}

func (CertificateRequest) TableName() string {
	return "certificates"
}

func (cr *CertificateRequest) BeforeCreate(tx *gorm.DB) error {
	if cr.ID == "" {
		cr.ID = uuid.NewString()
	}
	return nil
}

// CertificateResponse DTO
type CertificateResponse struct {
	ID                string          `json:"id"`
	CareerID          string          `json:"career_id"`
	Purpose           string          `json:"purpose"`
	Status            string          `json:"status"`
	CertificateNumber *string         `json:"certificate_number"`
	IssueDate         *string         `json:"issue_date"`
	PdfPath           *string         `json:"pdf_path"`
	CreatedAt         time.Time       `json:"created_at"`
	Career            *CareerResponse `json:"career,omitempty"`
}

func (cr *CertificateRequest) ToResponse() *CertificateResponse {
	resp := &CertificateResponse{
		ID:                cr.ID,
		CareerID:          cr.CareerID,
		Purpose:           cr.Purpose,
		Status:            cr.Status,
		CertificateNumber: cr.CertificateNumber,
		PdfPath:           cr.PdfPath,
		CreatedAt:         cr.CreatedAt,
	}
	if cr.IssueDate != nil {
		d := cr.IssueDate.Format(DateLayout)
		resp.IssueDate = &d
	}
	if cr.Career != nil {
		resp.Career = cr.Career.ToResponse()
	}
	return resp
}

// CertificatesToResponse converts a certificate list
func CertificatesToResponse(certs []*CertificateRequest) []*CertificateResponse {
	out := make([]*CertificateResponse, len(certs))
	for i, c := range certs {
		out[i] = c.ToResponse()
	}
	return out
}

// ============================================================
// Documents, Notices, Activity
// ============================================================

// Document represents uploaded_files table
type Document struct {
	ID          string    `gorm:"primaryKey;size:36" json:"id"`
	UserID      string    `gorm:"size:36;index;not null" json:"user_id"`
	CareerID    *string   `gorm:"size:36;index" json:"career_id"`
	Category    string    `gorm:"size:20;not null" json:"category"`
	FileName    string    `gorm:"size:255;not null" json:"file_name"`
	ObjectKey   string    `gorm:"size:500;not null" json:"-"`
	ContentType string    `gorm:"size:100;not null" json:"content_type"`
	Size        int64     `gorm:"not null" json:"size"`
	PageCount   *int      `json:"page_count,omitempty"`
	CreatedAt   time.Time `gorm:"index" json:"created_at"`
}

func (Document) TableName() string {
	return "uploaded_files"
}

func (d *Document) BeforeCreate(tx *gorm.DB) error {
	if d.ID == "" {
		d.ID = uuid.NewString()
	}
	return nil
}

// Notice represents notices table
type Notice struct {
	ID          string     `gorm:"primaryKey;size:36" json:"id"`
	Category    string     `gorm:"size:20;not null;index" json:"category"`
	Title       string     `gorm:"size:200;not null" json:"title"`
	Content     string     `gorm:"type:text;not null" json:"content"`
	IsImportant bool       `gorm:"default:false" json:"is_important"`
	ViewCount   int64      `gorm:"default:0" json:"view_count"`
	Author      string     `gorm:"size:100" json:"author"`
	PublishedAt *time.Time `gorm:"index" json:"published_at"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func (Notice) TableName() string {
	return "notices"
}

func (n *Notice) BeforeCreate(tx *gorm.DB) error {
	if n.ID == "" {
		n.ID = uuid.NewString()
	}
	return nil
}

// ActivityLog represents activity_logs table
type ActivityLog struct {
	ID         string            `gorm:"primaryKey;size:36" json:"id"`
	UserID     string            `gorm:"size:36;index;not null" json:"user_id"`
	Action     string            `gorm:"size:50;not null" json:"action"`
	TargetType string            `gorm:"size:30" json:"target_type"`
	TargetID   string            `gorm:"size:36" json:"target_id"`
	Details    datatypes.JSONMap `json:"details"`
	IPAddress  string            `gorm:"size:45" json:"ip_address,omitempty"`
	UserAgent  string            `gorm:"size:255" json:"user_agent,omitempty"`
	CreatedAt  time.Time         `gorm:"index" json:"created_at"`
}

func (ActivityLog) TableName() string {
	return "activity_logs"
}

func (a *ActivityLog) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}

// AutoMigrate runs auto migration for all tables
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&User{},
		&RefreshToken{},
		&Career{},
		&CertificateRequest{},
		&Document{},
		&Notice{},
		&ActivityLog{},
	)
}
