package handlers

import (
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"careerhub/internal/adapters/persistence/models"
	"careerhub/internal/core/domain"
	"careerhub/internal/core/services"
	"careerhub/internal/pkg/pagination"
	"careerhub/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// CertificateHandler handles certificate requests and issuance
type CertificateHandler struct {
	certService *services.CertificateService
	maxBytes    int64
}

// NewCertificateHandler creates a new certificate handler.
// maxBytes bounds uploaded certificate PDFs.
func NewCertificateHandler(certService *services.CertificateService, maxBytes int64) *CertificateHandler {
	if maxBytes <= 0 {
		maxBytes = services.DefaultMaxUploadBytes
	}
	return &CertificateHandler{
		certService: certService,
		maxBytes:    maxBytes,
	}
}

// ListEligible returns the caller's careers that can be certified
// @Summary List certifiable careers
// @Description Approved careers ordered by start date
// @Tags Certificates
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /certificates/eligible [get]
func (h *CertificateHandler) ListEligible(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	careers, err := h.certService.ListEligibleCareers(requestContext(c), userID)
	if err != nil {
		return handleError(c, err, "Failed to list eligible careers")
	}

	return response.Success(c, "Eligible careers retrieved successfully", fiber.Map{
		"careers": models.CareersToResponse(careers),
	})
}

// Request creates one certificate request per selected career
// @Summary Request certificates
// @Description All careers must be owned and approved or nothing is created
// @Tags Certificates
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body services.RequestCertificateInput true "Careers and purpose"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /certificates [post]
func (h *CertificateHandler) Request(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	var req services.RequestCertificateInput
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	requests, err := h.certService.Request(requestContext(c), userID, &req)
	if err != nil {
		return handleError(c, err, "Failed to request certificates")
	}

	return response.Created(c, "Certificate requested successfully", fiber.Map{
		"certificates": models.CertificatesToResponse(requests),
	})
}

// List returns the caller's certificate requests with their careers
// @Summary List certificate requests
// @Tags Certificates
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /certificates [get]
func (h *CertificateHandler) List(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	requests, err := h.certService.List(requestContext(c), userID)
	if err != nil {
		return handleError(c, err, "Failed to list certificates")
	}

	return response.Success(c, "Certificates retrieved successfully", fiber.Map{
		"certificates": models.CertificatesToResponse(requests),
	})
}

// Download streams an issued certificate PDF
// @Summary Download certificate
// @Tags Certificates
// @Produce application/pdf
// @Security BearerAuth
// @Param id path string true "Certificate request ID"
// @Success 200 {file} file
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /certificates/{id}/download [get]
func (h *CertificateHandler) Download(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	obj, err := h.certService.Download(requestContext(c), userID, c.Params("id"))
	if err != nil {
		return handleError(c, err, "Failed to download certificate")
	}

	c.Attachment(path.Base(obj.Key))
	c.Set(fiber.HeaderContentType, "application/pdf")
	return c.Send(obj.Data)
}

// ListPending returns requests waiting for issuance (Admin only)
// @Summary Pending certificate requests
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(20)
// @Success 200 {object} response.Response
// @Router /admin/certificates [get]
func (h *CertificateHandler) ListPending(c *fiber.Ctx) error {
	params := pagination.GetParams(c)

	requests, total, err := h.certService.ListPending(requestContext(c), params)
	if err != nil {
		return handleError(c, err, "Failed to list pending certificates")
	}

	return response.Success(c, "Pending certificates retrieved successfully", pagination.Response{
		Data: models.CertificatesToResponse(requests),
		Meta: pagination.GetMeta(params, total),
	})
}

// Issue marks a pending request issued with an existing PDF path (Admin only)
// @Summary Issue certificate
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Certificate request ID"
// @Param body body services.IssueCertificateInput true "Number, PDF path and issue date"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /admin/certificates/{id}/issue [post]
func (h *CertificateHandler) Issue(c *fiber.Ctx) error {
	var req services.IssueCertificateInput
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	issued, err := h.certService.IssueInput(requestContext(c), c.Params("id"), &req)
	if err != nil {
		return handleError(c, err, "Failed to issue certificate")
	}

	return response.Success(c, "Certificate issued successfully", fiber.Map{
		"certificate": issued.ToResponse(),
	})
}

// IssueUpload stores an uploaded PDF and issues the request with it (Admin only)
// @Summary Issue certificate with PDF upload
// @Tags Admin
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param id path string true "Certificate request ID"
// @Param certificate_number formData string true "Certificate number"
// @Param issue_date formData string false "YYYY-MM-DD, defaults to today"
// @Param file formData file true "Certificate PDF"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /admin/certificates/{id}/upload [post]
func (h *CertificateHandler) IssueUpload(c *fiber.Ctx) error {
	issueDate := time.Now()
	if raw := strings.TrimSpace(c.FormValue("issue_date")); raw != "" {
		d, err := time.Parse(models.DateLayout, raw)
		if err != nil {
			return handleError(c, domain.Invalid("issue_date", "must be a date in YYYY-MM-DD format"), "")
		}
		issueDate = d
	}

	file, err := readFormFile(c, "file", h.maxBytes)
	if err != nil {
		return handleError(c, err, "Failed to read upload")
	}

	issued, err := h.certService.IssueWithPDF(requestContext(c), c.Params("id"), c.FormValue("certificate_number"), issueDate, file.data)
	if err != nil {
		return handleError(c, err, "Failed to issue certificate")
	}

	return response.Success(c, "Certificate issued successfully", fiber.Map{
		"certificate": issued.ToResponse(),
	})
}

// formFile is a multipart upload read into memory
type formFile struct {
	name        string
	contentType string
	data        []byte
}

// readFormFile reads a multipart file field, rejecting files over maxBytes
func readFormFile(c *fiber.Ctx, field string, maxBytes int64) (*formFile, error) {
	fh, err := c.FormFile(field)
	if err != nil {
		return nil, domain.Invalid(field, "is required")
	}
	if fh.Size > maxBytes {
		return nil, domain.Invalid(field, fmt.Sprintf("must be at most %d MB", maxBytes>>20))
	}

	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, maxBytes+1))
	if err != nil {
		return nil, err
	}

	return &formFile{
		name:        fh.Filename,
		contentType: fh.Header.Get(fiber.HeaderContentType),
		data:        data,
	}, nil
}
