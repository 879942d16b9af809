package repository

// Package repository contains data access abstractions for the fleet document
// registry. Implementations live in subpackages (e.g. postgres) and contain
// SQL only, no business logic.

import "docuflota/internal/model"

// DocumentFilter narrows document listings. Zero-value fields are ignored.
type DocumentFilter struct {
	Category    model.Category
	Status      model.Status
	VehicleID   string
	PersonnelID string
}
