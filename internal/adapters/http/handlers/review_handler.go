package handlers

import (
	"careerhub/internal/core/services"
	"careerhub/internal/pkg/pagination"
	"careerhub/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// ReviewHandler handles the career review queue (Reviewer/Admin)
type ReviewHandler struct {
	reviewService *services.ReviewService
}

// NewReviewHandler creates a new review handler
func NewReviewHandler(reviewService *services.ReviewService) *ReviewHandler {
	return &ReviewHandler{
		reviewService: reviewService,
	}
}

// Queue lists careers awaiting review, oldest submission first
// @Summary Review queue
// @Tags Review
// @Produce json
// @Security BearerAuth
// @Param status query string false "Restrict to one status; default submitted and under_review"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(20)
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 403 {object} response.Response
// @Router /admin/reviews [get]
func (h *ReviewHandler) Queue(c *fiber.Ctx) error {
	params := pagination.GetParams(c)

	careers, total, err := h.reviewService.ListQueue(requestContext(c), c.Query("status"), params)
	if err != nil {
		return handleError(c, err, "Failed to list review queue")
	}

	return response.Success(c, "Review queue retrieved successfully", pagination.Response{
		Data: careers,
		Meta: pagination.GetMeta(params, total),
	})
}

// Review records a status decision on a career
// @Summary Review career
// @Description Moves the career along the status machine; approved and rejected are final
// @Tags Review
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Career ID"
// @Param body body services.ReviewInput true "Decision"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /admin/reviews/{id} [put]
func (h *ReviewHandler) Review(c *fiber.Ctx) error {
	reviewerID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	var req services.ReviewInput
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	career, err := h.reviewService.Review(requestContext(c), reviewerID, c.Params("id"), &req)
	if err != nil {
		return handleError(c, err, "Failed to review career")
	}

	return response.Success(c, "Career reviewed successfully", fiber.Map{
		"career": career,
	})
}
