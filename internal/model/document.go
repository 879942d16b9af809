package model

import "time"

// Category distinguishes documents owned by a vehicle from documents owned by
// a person.
type Category string

const (
	CategoryVehicle   Category = "vehicle"
	CategoryPersonnel Category = "personnel"
)

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	return c == CategoryVehicle || c == CategoryPersonnel
}

// Document represents one piece of compliance paperwork tied to exactly one
// vehicle or one person. This is a pure domain model with no database-specific
// tags; it is shared across the HTTP, service, and repository layers.
//
// Exactly one of VehicleID/PersonnelID is set, consistent with Category.
// Status is derived from ExpirationDate by Classify and reconciled by the
// status synchronizer; a nil ExpirationDate means the document never expires.
type Document struct {
	ID             string     `json:"id"`
	Name           string     `json:"name"`
	TypeID         string     `json:"type_id"`
	Category       Category   `json:"category"`
	FileURL        string     `json:"file_url"`
	FileName       string     `json:"file_name"`
	FileSize       int64      `json:"file_size"`
	ExpirationDate *time.Time `json:"expiration_date"`
	Status         Status     `json:"status"`
	VehicleID      *string    `json:"vehicle_id,omitempty"`
	PersonnelID    *string    `json:"personnel_id,omitempty"`
	ClientID       string     `json:"client_id"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`

	// Denormalized read-side context filled by list queries.
	TypeName      string `json:"type_name,omitempty"`
	VehiclePlate  string `json:"vehicle_plate,omitempty"`
	VehicleName   string `json:"vehicle_name,omitempty"`
	PersonnelName string `json:"personnel_name,omitempty"`
	ClientName    string `json:"client_name,omitempty"`
}

// Owner returns the owning entity reference for the document's category.
func (d *Document) Owner() *string {
	if d.Category == CategoryVehicle {
		return d.VehicleID
	}
	return d.PersonnelID
}

// DocumentType is a catalog entry describing a required document kind
// (e.g. "Insurance"). Read-mostly reference data; never mutated by the
// lifecycle engine. A nil ValidityDays marks a non-expiring kind.
type DocumentType struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Category     Category  `json:"category"`
	Required     bool      `json:"required"`
	ValidityDays *int      `json:"validity_days"`
	CreatedAt    time.Time `json:"created_at"`
}

// ReplacementRecord is an immutable snapshot of a document's prior file and
// expiration, taken at the moment it was replaced. Append-only; listed newest
// first.
type ReplacementRecord struct {
	ID                     string     `json:"id"`
	DocumentID             string     `json:"document_id"`
	PreviousFileURL        string     `json:"previous_file_url"`
	PreviousFileName       string     `json:"previous_file_name"`
	PreviousExpirationDate *time.Time `json:"previous_expiration_date"`
	ReplacedBy             string     `json:"replaced_by"`
	ReplacedAt             time.Time  `json:"replaced_at"`
}
