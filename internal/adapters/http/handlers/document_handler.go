package handlers

import (
	"careerhub/internal/adapters/persistence/repositories"
	"careerhub/internal/core/services"
	"careerhub/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// DocumentHandler handles supporting document uploads
type DocumentHandler struct {
	docService *services.DocumentService
}

// NewDocumentHandler creates a new document handler
func NewDocumentHandler(docService *services.DocumentService) *DocumentHandler {
	return &DocumentHandler{
		docService: docService,
	}
}

// Upload stores a supporting document
// @Summary Upload document
// @Description PDF, JPEG, PNG or Word file, optionally linked to an owned career
// @Tags Documents
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param category formData string true "identity, education, career_cert, work_confirm, portfolio or other"
// @Param career_id formData string false "Career ID"
// @Param file formData file true "Document"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /documents [post]
func (h *DocumentHandler) Upload(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	file, err := readFormFile(c, "file", h.docService.MaxBytes())
	if err != nil {
		return handleError(c, err, "Failed to read upload")
	}

	doc, err := h.docService.Upload(requestContext(c), userID, &services.UploadDocumentInput{
		Category:    c.FormValue("category"),
		CareerID:    c.FormValue("career_id"),
		FileName:    file.name,
		ContentType: file.contentType,
		Data:        file.data,
	})
	if err != nil {
		return handleError(c, err, "Failed to upload document")
	}

	return response.Created(c, "Document uploaded successfully", fiber.Map{
		"document": doc,
	})
}

// List returns the caller's documents
// @Summary List documents
// @Tags Documents
// @Produce json
// @Security BearerAuth
// @Param category query string false "Document category"
// @Param career_id query string false "Career ID"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /documents [get]
func (h *DocumentHandler) List(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	docs, err := h.docService.List(requestContext(c), userID, repositories.DocumentFilter{
		Category: c.Query("category"),
		CareerID: c.Query("career_id"),
	})
	if err != nil {
		return handleError(c, err, "Failed to list documents")
	}

	return response.Success(c, "Documents retrieved successfully", fiber.Map{
		"documents": docs,
	})
}

// Download streams an owned document
// @Summary Download document
// @Tags Documents
// @Produce octet-stream
// @Security BearerAuth
// @Param id path string true "Document ID"
// @Success 200 {file} file
// @Failure 404 {object} response.Response
// @Router /documents/{id}/download [get]
func (h *DocumentHandler) Download(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	doc, obj, err := h.docService.Download(requestContext(c), userID, c.Params("id"))
	if err != nil {
		return handleError(c, err, "Failed to download document")
	}

	c.Attachment(doc.FileName)
	c.Set(fiber.HeaderContentType, doc.ContentType)
	return c.Send(obj.Data)
}

// Delete removes an owned document and its file
// @Summary Delete document
// @Tags Documents
// @Produce json
// @Security BearerAuth
// @Param id path string true "Document ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /documents/{id} [delete]
func (h *DocumentHandler) Delete(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	if err := h.docService.Delete(requestContext(c), userID, c.Params("id")); err != nil {
		return handleError(c, err, "Failed to delete document")
	}

	return response.Success(c, "Document deleted successfully", nil)
}
