package config

import (
	"errors"
	"log"
	"time"

	"careerhub/internal/adapters/persistence/models"
	"careerhub/internal/core/domain"
	"careerhub/internal/pkg/password"

	"gorm.io/gorm"
)

// SeedAccount is a back-office account created on first start
type SeedAccount struct {
	Email    string
	Password string
	Name     string
	Role     domain.Role
}

// Seeder handles database seeding
type Seeder struct {
	db       *gorm.DB
	accounts []SeedAccount
}

// NewSeeder creates a seeder for the configured accounts. Dev mode falls
// back to well-known credentials; prod seeds only what the environment sets.
func NewSeeder(db *gorm.DB, cfg *Config) *Seeder {
	var accounts []SeedAccount

	adminPassword := getEnv("SEED_ADMIN_PASSWORD", "")
	reviewerPassword := getEnv("SEED_REVIEWER_PASSWORD", "")
	if cfg != nil && cfg.IsDev() {
		if adminPassword == "" {
			adminPassword = "admin123456"
		}
		if reviewerPassword == "" {
			reviewerPassword = "reviewer123456"
		}
	}

	if adminPassword != "" {
		accounts = append(accounts, SeedAccount{
			Email:    getEnv("SEED_ADMIN_EMAIL", "admin@careerhub.local"),
			Password: adminPassword,
			Name:     "Administrator",
			Role:     domain.RoleAdmin,
		})
	}
	if reviewerPassword != "" {
		accounts = append(accounts, SeedAccount{
			Email:    getEnv("SEED_REVIEWER_EMAIL", "reviewer@careerhub.local"),
			Password: reviewerPassword,
			Name:     "Reviewer",
			Role:     domain.RoleReviewer,
		})
	}

	return &Seeder{db: db, accounts: accounts}
}

// WithAccounts replaces the accounts to seed
func (s *Seeder) WithAccounts(accounts ...SeedAccount) *Seeder {
	s.accounts = accounts
	return s
}

// Run executes all seeders. Existing rows are left untouched.
func (s *Seeder) Run() error {
	log.Println("🌱 Running database seeders...")

	for _, account := range s.accounts {
		if err := s.seedAccount(account); err != nil {
			return err
		}
	}

	if err := s.seedWelcomeNotice(); err != nil {
		return err
	}

	log.Println("✅ Database seeding completed")
	return nil
}

func (s *Seeder) seedAccount(account SeedAccount) error {
	var existing models.User
	err := s.db.Where("email = ?", account.Email).First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hashed, err := password.Hash(account.Password)
	if err != nil {
		return err
	}

	user := &models.User{
		Email:    account.Email,
		Password: hashed,
		Name:     account.Name,
		UserType: string(domain.UserTypeIndividual),
		Role:     string(account.Role),
		IsActive: true,
	}
	if err := s.db.Create(user).Error; err != nil {
		return err
	}

	log.Printf("✅ %s account created: %s", account.Role, account.Email)
	return nil
}

func (s *Seeder) seedWelcomeNotice() error {
	var count int64
	if err := s.db.Model(&models.Notice{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	now := time.Now()
	notice := &models.Notice{
		Category:    string(domain.NoticeSystem),
		Title:       "Welcome to CareerHub",
		Content:     "Register your career history, submit it for review and request certificates for approved careers.",
		IsImportant: true,
		Author:      "system",
		PublishedAt: &now,
	}
	return s.db.Create(notice).Error
}
