package handlers

import (
	"strings"

	"careerhub/internal/adapters/persistence/models"
	"careerhub/internal/adapters/persistence/repositories"
	"careerhub/internal/core/services"
	"careerhub/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// CareerHandler handles the caller's career records
type CareerHandler struct {
	careerService *services.CareerService
}

// NewCareerHandler creates a new career handler
func NewCareerHandler(careerService *services.CareerService) *CareerHandler {
	return &CareerHandler{
		careerService: careerService,
	}
}

// List returns the caller's careers
// @Summary List careers
// @Description Newest first by default; order_by=start_date sorts by period start
// @Tags Careers
// @Produce json
// @Security BearerAuth
// @Param status query string false "draft, submitted, under_review, approved or rejected"
// @Param job_category query string false "Job category"
// @Param order_by query string false "created_at or start_date"
// @Param limit query int false "Maximum rows"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /careers [get]
func (h *CareerHandler) List(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	filter := &repositories.CareerFilter{
		Status:      c.Query("status"),
		JobCategory: c.Query("job_category"),
		OrderBy:     c.Query("order_by"),
		Limit:       c.QueryInt("limit", 0),
	}

	careers, err := h.careerService.List(requestContext(c), userID, filter)
	if err != nil {
		return handleError(c, err, "Failed to list careers")
	}

	return response.Success(c, "Careers retrieved successfully", fiber.Map{
		"careers": models.CareersToResponse(careers),
		"total":   len(careers),
	})
}

// Create stores a new career record
// @Summary Create career
// @Description Stored as draft unless submit is true
// @Tags Careers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body services.CreateCareerInput true "Career data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /careers [post]
func (h *CareerHandler) Create(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	var req services.CreateCareerInput
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	career, err := h.careerService.Create(requestContext(c), userID, &req)
	if err != nil {
		return handleError(c, err, "Failed to create career")
	}

	return response.Created(c, "Career created successfully", fiber.Map{
		"career": career.ToResponse(),
	})
}

// Get returns one owned career
// @Summary Get career
// @Tags Careers
// @Produce json
// @Security BearerAuth
// @Param id path string true "Career ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /careers/{id} [get]
func (h *CareerHandler) Get(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	career, err := h.careerService.Get(requestContext(c), userID, c.Params("id"))
	if err != nil {
		return handleError(c, err, "Failed to get career")
	}

	return response.Success(c, "Career retrieved successfully", fiber.Map{
		"career": career.ToResponse(),
	})
}

// Update changes an owned career that has not been approved
// @Summary Update career
// @Description Partial update; omitted fields keep their value
// @Tags Careers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Career ID"
// @Param body body services.UpdateCareerInput true "Changed fields"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /careers/{id} [put]
func (h *CareerHandler) Update(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	var req services.UpdateCareerInput
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	career, err := h.careerService.Update(requestContext(c), userID, c.Params("id"), &req)
	if err != nil {
		return handleError(c, err, "Failed to update career")
	}

	return response.Success(c, "Career updated successfully", fiber.Map{
		"career": career.ToResponse(),
	})
}

// Delete removes an owned career
// @Summary Delete career
// @Tags Careers
// @Produce json
// @Security BearerAuth
// @Param id path string true "Career ID"
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /careers/{id} [delete]
func (h *CareerHandler) Delete(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	if err := h.careerService.Delete(requestContext(c), userID, c.Params("id")); err != nil {
		return handleError(c, err, "Failed to delete career")
	}

	return response.Success(c, "Career deleted successfully", nil)
}

// Submit sends a draft career for review
// @Summary Submit career
// @Tags Careers
// @Produce json
// @Security BearerAuth
// @Param id path string true "Career ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /careers/{id}/submit [post]
func (h *CareerHandler) Submit(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	career, err := h.careerService.Submit(requestContext(c), userID, c.Params("id"))
	if err != nil {
		return handleError(c, err, "Failed to submit career")
	}

	return response.Success(c, "Career submitted successfully", fiber.Map{
		"career": career.ToResponse(),
	})
}

// Statistics returns the caller's career counts and total experience
// @Summary Career statistics
// @Tags Careers
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /careers/statistics [get]
func (h *CareerHandler) Statistics(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	stats, err := h.careerService.Statistics(requestContext(c), userID)
	if err != nil {
		return handleError(c, err, "Failed to compute statistics")
	}

	return response.Success(c, "Statistics retrieved successfully", stats)
}

// Experience sums the experience of selected careers
// @Summary Experience of selected careers
// @Tags Careers
// @Produce json
// @Security BearerAuth
// @Param ids query string false "Comma separated career IDs; empty selects all"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /careers/experience [get]
func (h *CareerHandler) Experience(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	var ids []string
	for _, id := range strings.Split(c.Query("ids"), ",") {
		if id = strings.TrimSpace(id); id != "" {
			ids = append(ids, id)
		}
	}

	exp, err := h.careerService.Experience(requestContext(c), userID, ids)
	if err != nil {
		return handleError(c, err, "Failed to compute experience")
	}

	return response.Success(c, "Experience computed successfully", exp)
}
