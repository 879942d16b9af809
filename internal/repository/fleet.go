package repository

import (
	"context"

	"docuflota/internal/model"
)

// ClientRepository defines persistence for client records. Create and Update
// surface model.ConflictError on a duplicate CUIT.
type ClientRepository interface {
	Create(ctx context.Context, c *model.Client) (*model.Client, error)
	FindByID(ctx context.Context, id string) (*model.Client, error)
	List(ctx context.Context) ([]model.Client, error)
	Update(ctx context.Context, c *model.Client) (*model.Client, error)
	Delete(ctx context.Context, id string) error
}

// VehicleRepository defines persistence for vehicles. Create and Update
// surface model.ConflictError on a duplicate plate.
type VehicleRepository interface {
	Create(ctx context.Context, v *model.Vehicle) (*model.Vehicle, error)
	FindByID(ctx context.Context, id string) (*model.Vehicle, error)
	List(ctx context.Context) ([]model.Vehicle, error)
	Update(ctx context.Context, v *model.Vehicle) (*model.Vehicle, error)
	Delete(ctx context.Context, id string) error
}

// PersonnelRepository defines persistence for personnel. Create and Update
// surface model.ConflictError on a duplicate DNI.
type PersonnelRepository interface {
	Create(ctx context.Context, p *model.Personnel) (*model.Personnel, error)
	FindByID(ctx context.Context, id string) (*model.Personnel, error)
	List(ctx context.Context) ([]model.Personnel, error)
	Update(ctx context.Context, p *model.Personnel) (*model.Personnel, error)
	Delete(ctx context.Context, id string) error
}

// DocumentTypeRepository serves the read-mostly document type catalog.
type DocumentTypeRepository interface {
	FindByID(ctx context.Context, id string) (*model.DocumentType, error)
	List(ctx context.Context, category model.Category) ([]model.DocumentType, error)
}
