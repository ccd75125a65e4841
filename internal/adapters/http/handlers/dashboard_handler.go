package handlers

import (
	"careerhub/internal/core/domain"
	"careerhub/internal/core/services"
	"careerhub/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// DashboardHandler handles dashboard endpoints
type DashboardHandler struct {
	dashboardService *services.DashboardService
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboardService *services.DashboardService) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
	}
}

// GetAdminDashboard returns admin dashboard data
// @Summary Admin Dashboard
// @Description User, review and certificate totals (Admin only)
// @Tags Dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Failure 403 {object} response.Response
// @Router /dashboard/admin [get]
func (h *DashboardHandler) GetAdminDashboard(c *fiber.Ctx) error {
	data, err := h.dashboardService.GetAdminDashboard(requestContext(c))
	if err != nil {
		return handleError(c, err, "Failed to get admin dashboard")
	}

	return response.Success(c, "Admin dashboard retrieved successfully", data)
}

// GetUserDashboard returns user dashboard data
// @Summary User Dashboard
// @Description Career statistics, certificate counts and recent activity
// @Tags Dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /dashboard/user [get]
func (h *DashboardHandler) GetUserDashboard(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	data, err := h.dashboardService.GetUserDashboard(requestContext(c), userID)
	if err != nil {
		return handleError(c, err, "Failed to get user dashboard")
	}

	return response.Success(c, "User dashboard retrieved successfully", data)
}

// GetMyDashboard picks the dashboard for the caller's role
// @Summary My Dashboard
// @Tags Dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /dashboard [get]
func (h *DashboardHandler) GetMyDashboard(c *fiber.Ctx) error {
	role, _ := c.Locals("role").(string)
	if domain.Role(role) == domain.RoleAdmin {
		return h.GetAdminDashboard(c)
	}
	return h.GetUserDashboard(c)
}
