package handler

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"docuflota/internal/repository"
	"docuflota/internal/scheduler"
	"docuflota/internal/service"
)

// RouteDeps bundles everything the HTTP layer needs. Handlers stay thin and
// delegate to the services.
type RouteDeps struct {
	DB        *sql.DB
	Documents service.DocumentService
	Clients   service.ClientService
	Vehicles  service.VehicleService
	Personnel service.PersonnelService
	Reports   service.ReportService
	Sync      service.Synchronizer
	Dashboard repository.DashboardRepository
	Scheduler *scheduler.Scheduler
}

// RegisterRoutes attaches all HTTP routes to the provided Fiber app.
func RegisterRoutes(app *fiber.App, deps RouteDeps) {
	app.Get("/health", HealthCheck(deps.DB))
	app.Get("/healthz", LivenessProbe())

	// Documents. The static /documents/sync route is registered before the
	// :id routes so it is never captured as an ID.
	app.Post("/documents/sync", SyncStatuses(deps.Sync))
	app.Get("/documents", ListDocuments(deps.Documents))
	app.Post("/documents", UploadDocument(deps.Documents))
	app.Get("/documents/:id", GetDocument(deps.Documents))
	app.Put("/documents/:id", UpdateDocument(deps.Documents))
	app.Delete("/documents/:id", DeleteDocument(deps.Documents))
	app.Post("/documents/:id/replace", ReplaceDocument(deps.Documents))
	app.Get("/documents/:id/history", DocumentHistory(deps.Documents))
	app.Get("/documents/:id/download", DownloadDocument(deps.Documents))

	app.Get("/document-types", ListDocumentTypes(deps.Documents))

	// Fleet entities
	app.Post("/clients", CreateClient(deps.Clients))
	app.Get("/clients", ListClients(deps.Clients))
	app.Get("/clients/:id", GetClient(deps.Clients))
	app.Put("/clients/:id", UpdateClient(deps.Clients))
	app.Delete("/clients/:id", DeleteClient(deps.Clients))

	app.Post("/vehicles", CreateVehicle(deps.Vehicles))
	app.Get("/vehicles", ListVehicles(deps.Vehicles))
	app.Get("/vehicles/:id", GetVehicle(deps.Vehicles))
	app.Put("/vehicles/:id", UpdateVehicle(deps.Vehicles))
	app.Delete("/vehicles/:id", DeleteVehicle(deps.Vehicles))

	app.Post("/personnel", CreatePersonnel(deps.Personnel))
	app.Get("/personnel", ListPersonnel(deps.Personnel))
	app.Get("/personnel/:id", GetPersonnel(deps.Personnel))
	app.Put("/personnel/:id", UpdatePersonnel(deps.Personnel))
	app.Delete("/personnel/:id", DeletePersonnel(deps.Personnel))

	// Dashboard
	app.Get("/dashboard/stats", DashboardStats(deps.Dashboard))
	app.Get("/dashboard/activity", DashboardActivity(deps.Dashboard))

	// Reports and scheduling
	app.Get("/reports/generate", GenerateReport(deps.Reports))
	app.Get("/reports/statistics", ReportStatistics(deps.Reports))
	app.Post("/reports/send", SendReport(deps.Scheduler))
	app.Post("/reports/schedule/start", StartSchedule(deps.Scheduler))
	app.Post("/reports/schedule/stop", StopSchedule(deps.Scheduler))
	app.Get("/reports/schedule/status", ScheduleStatus(deps.Scheduler))
}
