package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"docuflota/internal/repository"
)

// DashboardStats serves GET /dashboard/stats.
func DashboardStats(repo repository.DashboardRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		stats, err := repo.Stats(c.UserContext())
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(stats)
	}
}

// DashboardActivity serves GET /dashboard/activity with an optional limit.
func DashboardActivity(repo repository.DashboardRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		limit, err := strconv.Atoi(c.Query("limit", "10"))
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_LIMIT", "invalid limit")
		}
		entries, err := repo.RecentActivity(c.UserContext(), limit)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(fiber.Map{"data": entries, "total": len(entries)})
	}
}
