package handler

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"docuflota/internal/scheduler"
	"docuflota/internal/service"
)

// GenerateReport serves GET /reports/generate: the three-bucket report as
// of today, without sending anything.
func GenerateReport(svc service.ReportService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		report, err := svc.Generate(c.UserContext(), time.Now())
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(report)
	}
}

// ReportStatistics serves GET /reports/statistics.
func ReportStatistics(svc service.ReportService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		stats, err := svc.Statistics(c.UserContext(), time.Now())
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(stats)
	}
}

// SendReport serves POST /reports/send: run the daily job immediately and
// return the report that was mailed.
func SendReport(sched *scheduler.Scheduler) fiber.Handler {
	return func(c *fiber.Ctx) error {
		report, err := sched.RunNow(c.UserContext())
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(report)
	}
}

// StartSchedule serves POST /reports/schedule/start.
func StartSchedule(sched *scheduler.Scheduler) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := sched.Start(); err != nil {
			return writeError(c, fiber.StatusConflict, "ALREADY_RUNNING", "scheduler already running")
		}
		return c.JSON(sched.Status())
	}
}

// StopSchedule serves POST /reports/schedule/stop.
func StopSchedule(sched *scheduler.Scheduler) fiber.Handler {
	return func(c *fiber.Ctx) error {
		<-sched.Stop().Done()
		return c.JSON(sched.Status())
	}
}

// ScheduleStatus serves GET /reports/schedule/status.
func ScheduleStatus(sched *scheduler.Scheduler) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(sched.Status())
	}
}

// SyncStatuses serves POST /documents/sync: run the reconciliation passes on
// demand and report how many rows moved.
func SyncStatuses(syncer service.Synchronizer) fiber.Handler {
	return func(c *fiber.Ctx) error {
		res, err := syncer.Run(c.UserContext(), time.Now())
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(res)
	}
}
