package model

import "time"

// DashboardStats is the aggregate snapshot rendered on the dashboard.
type DashboardStats struct {
	TotalClients    int `json:"total_clients"`
	TotalVehicles   int `json:"total_vehicles"`
	TotalPersonnel  int `json:"total_personnel"`
	TotalDocuments  int `json:"total_documents"`
	ValidDocuments  int `json:"valid_documents"`
	WarningCount    int `json:"warning_count"`
	ExpiredCount    int `json:"expired_count"`
}

// ActivityEntry is one line of the recent-activity feed: a document upload or
// a file replacement, newest first.
type ActivityEntry struct {
	DocumentID   string    `json:"document_id"`
	DocumentName string    `json:"document_name"`
	Action       string    `json:"action"`
	OccurredAt   time.Time `json:"occurred_at"`
}

const (
	ActivityUploaded = "uploaded"
	ActivityReplaced = "replaced"
)
