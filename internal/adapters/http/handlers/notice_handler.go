package handlers

import (
	"careerhub/internal/core/services"
	"careerhub/internal/pkg/pagination"
	"careerhub/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// NoticeHandler handles announcements
type NoticeHandler struct {
	noticeService *services.NoticeService
}

// NewNoticeHandler creates a new notice handler
func NewNoticeHandler(noticeService *services.NoticeService) *NoticeHandler {
	return &NoticeHandler{
		noticeService: noticeService,
	}
}

// List returns published notices, important ones first
// @Summary List notices
// @Tags Notices
// @Produce json
// @Param category query string false "system, policy, feature, fee or maintenance"
// @Param search query string false "Title or content contains"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(20)
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /notices [get]
func (h *NoticeHandler) List(c *fiber.Ctx) error {
	params := pagination.GetParams(c)

	notices, total, err := h.noticeService.List(requestContext(c), &services.ListNoticesInput{
		Category: c.Query("category"),
		Search:   c.Query("search"),
		Params:   params,
	})
	if err != nil {
		return handleError(c, err, "Failed to list notices")
	}

	return response.Success(c, "Notices retrieved successfully", pagination.Response{
		Data: notices,
		Meta: pagination.GetMeta(params, total),
	})
}

// Get returns one published notice and counts the view
// @Summary Get notice
// @Tags Notices
// @Produce json
// @Param id path string true "Notice ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /notices/{id} [get]
func (h *NoticeHandler) Get(c *fiber.Ctx) error {
	notice, err := h.noticeService.Get(requestContext(c), c.Params("id"))
	if err != nil {
		return handleError(c, err, "Failed to get notice")
	}

	return response.Success(c, "Notice retrieved successfully", fiber.Map{
		"notice": notice,
	})
}

// Create publishes a notice (Admin only)
// @Summary Create notice
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body services.CreateNoticeInput true "Notice"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /admin/notices [post]
func (h *NoticeHandler) Create(c *fiber.Ctx) error {
	var req services.CreateNoticeInput
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	author, _ := c.Locals("email").(string)

	notice, err := h.noticeService.Create(requestContext(c), author, &req)
	if err != nil {
		return handleError(c, err, "Failed to create notice")
	}

	return response.Created(c, "Notice created successfully", fiber.Map{
		"notice": notice,
	})
}
