package domain

// Role represents user role in the system
type Role string

const (
	RoleUser     Role = "USER"
	RoleReviewer Role = "REVIEWER"
	RoleAdmin    Role = "ADMIN"
)

// UserType distinguishes personal accounts from company accounts
type UserType string

const (
	UserTypeIndividual UserType = "individual"
	UserTypeCorporate  UserType = "corporate"
)

// CareerStatus is the review lifecycle of a career record
type CareerStatus string

const (
	CareerDraft       CareerStatus = "draft"
	CareerSubmitted   CareerStatus = "submitted"
	CareerUnderReview CareerStatus = "under_review"
	CareerApproved    CareerStatus = "approved"
	CareerRejected    CareerStatus = "rejected"
)

var careerTransitions = map[CareerStatus][]CareerStatus{
	CareerDraft:       {CareerSubmitted, CareerUnderReview},
	CareerSubmitted:   {CareerUnderReview, CareerApproved, CareerRejected},
	CareerUnderReview: {CareerSubmitted, CareerApproved, CareerRejected},
}

// CanTransitionTo reports whether the status machine allows s -> next.
// Approved and rejected are terminal.
func (s CareerStatus) CanTransitionTo(next CareerStatus) bool {
	for _, allowed := range careerTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// IsPending collapses submitted and under_review for reporting.
func (s CareerStatus) IsPending() bool {
	return s == CareerSubmitted || s == CareerUnderReview
}

// IsTerminal reports a final review decision.
func (s CareerStatus) IsTerminal() bool {
	return s == CareerApproved || s == CareerRejected
}

// Valid reports whether s is a known status.
func (s CareerStatus) Valid() bool {
	switch s {
	case CareerDraft, CareerSubmitted, CareerUnderReview, CareerApproved, CareerRejected:
		return true
	}
	return false
}

// JobCategory classifies the work done in a career
type JobCategory string

const (
	JobDevelopment JobCategory = "development"
	JobAnalysis    JobCategory = "analysis"
	JobDesign      JobCategory = "design"
	JobTest        JobCategory = "test"
	JobMaintenance JobCategory = "maintenance"
	JobConsulting  JobCategory = "consulting"
	JobManagement  JobCategory = "management"
)

// JobCategories lists every accepted job category, used by validation tags.
const JobCategories = "development analysis design test maintenance consulting management"

// CertificateStatus is the lifecycle of a certificate request
type CertificateStatus string

const (
	CertificatePending CertificateStatus = "pending"
	CertificateIssued  CertificateStatus = "issued"
)

// DocumentCategory classifies uploaded supporting documents
type DocumentCategory string

const (
	DocumentIdentity    DocumentCategory = "identity"
	DocumentEducation   DocumentCategory = "education"
	DocumentCareerCert  DocumentCategory = "career_cert"
	DocumentWorkConfirm DocumentCategory = "work_confirm"
	DocumentPortfolio   DocumentCategory = "portfolio"
	DocumentOther       DocumentCategory = "other"
)

// DocumentCategories lists every accepted document category.
const DocumentCategories = "identity education career_cert work_confirm portfolio other"

// NoticeCategory groups announcements
type NoticeCategory string

const (
	NoticeSystem      NoticeCategory = "system"
	NoticePolicy      NoticeCategory = "policy"
	NoticeFeature     NoticeCategory = "feature"
	NoticeFee         NoticeCategory = "fee"
	NoticeMaintenance NoticeCategory = "maintenance"
)

// NoticeCategories lists every accepted notice category.
const NoticeCategories = "system policy feature fee maintenance"

// Activity actions recorded in the activity log
const (
	ActionCareerCreated        = "career_created"
	ActionCareerUpdated        = "career_updated"
	ActionCareerDeleted        = "career_deleted"
	ActionCareerSubmitted      = "career_submitted"
	ActionCareerReviewed       = "career_reviewed"
	ActionCertificateRequested = "certificate_requested"
	ActionCertificateIssued    = "certificate_issued"
	ActionDocumentUploaded     = "document_uploaded"
	ActionDocumentDeleted      = "document_deleted"
)
