package model

import "time"

// ReportRow is a denormalized report entry carrying enough context to render
// one line of the expiration report without further lookups.
type ReportRow struct {
	DocumentID     string    `json:"document_id"`
	DocumentName   string    `json:"document_name"`
	TypeName       string    `json:"type_name"`
	Category       Category  `json:"category"`
	VehicleName    string    `json:"vehicle_name,omitempty"`
	PersonnelName  string    `json:"personnel_name,omitempty"`
	ClientName     string    `json:"client_name"`
	ExpirationDate time.Time `json:"expiration_date"`
}

// OwnerName returns the owning vehicle or person name for display.
func (r ReportRow) OwnerName() string {
	if r.Category == CategoryVehicle {
		return r.VehicleName
	}
	return r.PersonnelName
}

// Report partitions all documents with an expiration date into three disjoint
// buckets as of ReportDate. The bucket taxonomy is intentionally different
// from the stored Status taxonomy: the report's expired bucket is strictly
// before today, the 7-day bucket is [today, today+7], and the 30-day bucket
// starts at day 8 so the two windows never overlap.
type Report struct {
	ReportDate time.Time     `json:"report_date"`
	Expired    []ReportRow   `json:"expired"`
	Expiring7  []ReportRow   `json:"expiring_7_days"`
	Expiring30 []ReportRow   `json:"expiring_30_days"`
	Summary    ReportSummary `json:"summary"`
}

// ReportSummary carries the aggregate counts for a Report.
type ReportSummary struct {
	TotalExpired    int `json:"total_expired"`
	TotalExpiring7  int `json:"total_expiring_7_days"`
	TotalExpiring30 int `json:"total_expiring_30_days"`
	TotalTracked    int `json:"total_tracked"`
}

// Statistics is the one-row aggregate used by the reports statistics endpoint.
type Statistics struct {
	ExpiredCount   int `json:"expired_count"`
	Expiring7Days  int `json:"expiring_7_days"`
	Expiring30Days int `json:"expiring_30_days"`
	TotalDocuments int `json:"total_documents"`
}
