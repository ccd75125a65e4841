// Command careerctl runs back-office tasks against the CareerHub database:
// migrations, seeding, reviews, certificate issuance and token cleanup.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"careerhub/internal/adapters/persistence/models"
	"careerhub/internal/adapters/persistence/repositories"
	"careerhub/internal/adapters/storage"
	"careerhub/internal/config"
	"careerhub/internal/core/services"

	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

// env is what every subcommand works against
type env struct {
	cfg          *config.Config
	db           *gorm.DB
	certificates storage.ObjectStore
}

type openFunc func(ctx context.Context) (*env, error)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	rootCmd := newRootCommand(openEnv)
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "careerctl: %v\n", err)
		os.Exit(1)
	}
}

// openEnv connects to the configured database and object store
func openEnv(ctx context.Context) (*env, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	db, err := config.ConnectDatabase(cfg)
	if err != nil {
		return nil, err
	}

	_, certificates, err := storage.Open(ctx, cfg.Storage)
	if err != nil {
		return nil, err
	}

	return &env{cfg: cfg, db: db, certificates: certificates}, nil
}

func newRootCommand(open openFunc) *cobra.Command {
	cmd := &cobra.Command{
		Use:          "careerctl",
		Short:        "CareerHub back-office CLI",
		SilenceUsage: true,
	}
	cmd.AddCommand(
		newMigrateCmd(open),
		newSeedCmd(open),
		newReviewCmd(open),
		newIssueCmd(open),
		newPurgeTokensCmd(open),
	)
	return cmd
}

func newMigrateCmd(open openFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update database tables",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := open(cmd.Context())
			if err != nil {
				return err
			}
			if err := models.AutoMigrate(e.db); err != nil {
				return fmt.Errorf("migrate: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "migration completed")
			return nil
		},
	}
}

func newSeedCmd(open openFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Create the back-office accounts and welcome notice",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := open(cmd.Context())
			if err != nil {
				return err
			}
			return config.NewSeeder(e.db, e.cfg).Run()
		},
	}
}

func newReviewCmd(open openFunc) *cobra.Command {
	var status, comment, reviewer string
	cmd := &cobra.Command{
		Use:   "review <career-id>",
		Short: "Record a review decision on a career",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := open(cmd.Context())
			if err != nil {
				return err
			}

			reviews := services.NewReviewService(
				repositories.NewCareerRepository(e.db),
				services.NewActivityService(repositories.NewActivityRepository(e.db)),
			)
			career, err := reviews.Review(cmd.Context(), reviewer, args[0], &services.ReviewInput{
				Status:  status,
				Comment: comment,
			})
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "career %s is now %s\n", career.ID, career.Status)
			return nil
		},
	}
	cmd.Flags().StringVar(&status, "status", "approved", "submitted, under_review, approved or rejected")
	cmd.Flags().StringVar(&comment, "comment", "", "Review comment shown to the owner")
	cmd.Flags().StringVar(&reviewer, "reviewer", "", "Reviewer user ID")
	_ = cmd.MarkFlagRequired("reviewer")
	return cmd
}

func newIssueCmd(open openFunc) *cobra.Command {
	var number, date, file, pdfPath string
	cmd := &cobra.Command{
		Use:   "issue <request-id>",
		Short: "Issue a pending certificate request",
		Long: `Issue a pending certificate request. With --file the PDF is uploaded to the
certificate store; with --pdf-path an already stored file is referenced.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if (file == "") == (pdfPath == "") {
				return fmt.Errorf("exactly one of --file or --pdf-path is required")
			}

			issueDate := time.Now()
			if date != "" {
				d, err := time.Parse(models.DateLayout, date)
				if err != nil {
					return fmt.Errorf("--date must be YYYY-MM-DD: %w", err)
				}
				issueDate = d
			}

			e, err := open(cmd.Context())
			if err != nil {
				return err
			}

			certs := services.NewCertificateService(
				repositories.NewCertificateRepository(e.db),
				repositories.NewCareerRepository(e.db),
				e.certificates,
				services.NewActivityService(repositories.NewActivityRepository(e.db)),
			)

			var issued *models.CertificateRequest
			if file != "" {
				data, readErr := os.ReadFile(file)
				if readErr != nil {
					return readErr
				}
				issued, err = certs.IssueWithPDF(cmd.Context(), args[0], number, issueDate, data)
			} else {
				issued, err = certs.Issue(cmd.Context(), args[0], number, pdfPath, issueDate)
			}
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "certificate %s issued for request %s (%s)\n",
				*issued.CertificateNumber, issued.ID, *issued.PdfPath)
			return nil
		},
	}
	cmd.Flags().StringVar(&number, "number", "", "Certificate number")
	cmd.Flags().StringVar(&date, "date", "", "Issue date YYYY-MM-DD (default today)")
	cmd.Flags().StringVar(&file, "file", "", "Certificate PDF to upload")
	cmd.Flags().StringVar(&pdfPath, "pdf-path", "", "Path of an already stored certificate")
	_ = cmd.MarkFlagRequired("number")
	return cmd
}

func newPurgeTokensCmd(open openFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "purge-tokens",
		Short: "Delete expired and revoked refresh tokens",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := open(cmd.Context())
			if err != nil {
				return err
			}

			cron := services.NewCronService(repositories.NewRefreshTokenRepository(e.db), "")
			n, err := cron.PurgeExpiredTokens(cmd.Context())
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%d refresh tokens removed\n", n)
			return nil
		},
	}
}
