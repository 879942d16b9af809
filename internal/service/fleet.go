package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"docuflota/internal/model"
	"docuflota/internal/repository"
)

// ClientService manages the client roster.
type ClientService interface {
	Create(ctx context.Context, c *model.Client) (*model.Client, error)
	Get(ctx context.Context, id string) (*model.Client, error)
	List(ctx context.Context) ([]model.Client, error)
	Update(ctx context.Context, c *model.Client) (*model.Client, error)
	Delete(ctx context.Context, id string) error
}

// VehicleService manages vehicles. Reads derive each vehicle's global status
// as the worst of its documents' statuses; the value is never stored.
type VehicleService interface {
	Create(ctx context.Context, v *model.Vehicle) (*model.Vehicle, error)
	// Get returns the vehicle with its documents and derived global status.
	Get(ctx context.Context, id string) (*model.Vehicle, error)
	// List returns all vehicles with derived global statuses.
	List(ctx context.Context) ([]model.Vehicle, error)
	Update(ctx context.Context, v *model.Vehicle) (*model.Vehicle, error)
	Delete(ctx context.Context, id string) error
}

// PersonnelService manages personnel, mirroring VehicleService.
type PersonnelService interface {
	Create(ctx context.Context, p *model.Personnel) (*model.Personnel, error)
	Get(ctx context.Context, id string) (*model.Personnel, error)
	List(ctx context.Context) ([]model.Personnel, error)
	Update(ctx context.Context, p *model.Personnel) (*model.Personnel, error)
	Delete(ctx context.Context, id string) error
}

type clientService struct {
	repo repository.ClientRepository
	now  func() time.Time
}

// NewClientService constructs a ClientService.
func NewClientService(repo repository.ClientRepository) ClientService {
	return &clientService{
		repo: repo,
		now:  func() time.Time { return time.Now().UTC() },
	}
}

func (s *clientService) Create(ctx context.Context, c *model.Client) (*model.Client, error) {
	if c.Name == "" {
		return nil, model.NewValidationError("name", "name is required")
	}
	if c.CUIT == "" {
		return nil, model.NewValidationError("cuit", "cuit is required")
	}
	now := s.now()
	c.ID = uuid.New().String()
	if c.Status == "" {
		c.Status = "active"
	}
	c.CreatedAt = now
	c.UpdatedAt = now
	return s.repo.Create(ctx, c)
}

func (s *clientService) Get(ctx context.Context, id string) (*model.Client, error) {
	if id == "" {
		return nil, model.NewValidationError("id", "id is required")
	}
	return s.repo.FindByID(ctx, id)
}

func (s *clientService) List(ctx context.Context) ([]model.Client, error) {
	return s.repo.List(ctx)
}

func (s *clientService) Update(ctx context.Context, c *model.Client) (*model.Client, error) {
	if c.ID == "" {
		return nil, model.NewValidationError("id", "id is required")
	}
	c.UpdatedAt = s.now()
	return s.repo.Update(ctx, c)
}

func (s *clientService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return model.NewValidationError("id", "id is required")
	}
	return s.repo.Delete(ctx, id)
}

type vehicleService struct {
	repo repository.VehicleRepository
	docs repository.DocumentRepository
	now  func() time.Time
}

// NewVehicleService constructs a VehicleService.
func NewVehicleService(repo repository.VehicleRepository, docs repository.DocumentRepository) VehicleService {
	return &vehicleService{
		repo: repo,
		docs: docs,
		now:  func() time.Time { return time.Now().UTC() },
	}
}

func (s *vehicleService) Create(ctx context.Context, v *model.Vehicle) (*model.Vehicle, error) {
	if v.Plate == "" {
		return nil, model.NewValidationError("plate", "plate is required")
	}
	if v.ClientID == "" {
		return nil, model.NewValidationError("client_id", "client_id is required")
	}
	now := s.now()
	v.ID = uuid.New().String()
	if v.Status == "" {
		v.Status = "active"
	}
	v.CreatedAt = now
	v.UpdatedAt = now
	return s.repo.Create(ctx, v)
}

func (s *vehicleService) Get(ctx context.Context, id string) (*model.Vehicle, error) {
	if id == "" {
		return nil, model.NewValidationError("id", "id is required")
	}
	v, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	docs, err := s.docs.List(ctx, repository.DocumentFilter{VehicleID: id})
	if err != nil {
		return nil, err
	}
	v.Documents = docs
	v.GlobalStatus = model.GlobalStatusOf(docs)
	return v, nil
}

func (s *vehicleService) List(ctx context.Context) ([]model.Vehicle, error) {
	vehicles, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	// One documents query for the whole set, grouped in memory.
	docs, err := s.docs.List(ctx, repository.DocumentFilter{Category: model.CategoryVehicle})
	if err != nil {
		return nil, err
	}
	byOwner := make(map[string][]model.Document, len(vehicles))
	for _, d := range docs {
		if d.VehicleID != nil {
			byOwner[*d.VehicleID] = append(byOwner[*d.VehicleID], d)
		}
	}
	for i := range vehicles {
		owned := byOwner[vehicles[i].ID]
		vehicles[i].Documents = owned
		vehicles[i].GlobalStatus = model.GlobalStatusOf(owned)
	}
	return vehicles, nil
}

func (s *vehicleService) Update(ctx context.Context, v *model.Vehicle) (*model.Vehicle, error) {
	if v.ID == "" {
		return nil, model.NewValidationError("id", "id is required")
	}
	v.UpdatedAt = s.now()
	return s.repo.Update(ctx, v)
}

func (s *vehicleService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return model.NewValidationError("id", "id is required")
	}
	return s.repo.Delete(ctx, id)
}

type personnelService struct {
	repo repository.PersonnelRepository
	docs repository.DocumentRepository
	now  func() time.Time
}

// NewPersonnelService constructs a PersonnelService.
func NewPersonnelService(repo repository.PersonnelRepository, docs repository.DocumentRepository) PersonnelService {
	return &personnelService{
		repo: repo,
		docs: docs,
		now:  func() time.Time { return time.Now().UTC() },
	}
}

func (s *personnelService) Create(ctx context.Context, p *model.Personnel) (*model.Personnel, error) {
	if p.Name == "" {
		return nil, model.NewValidationError("name", "name is required")
	}
	if p.DNI == "" {
		return nil, model.NewValidationError("dni", "dni is required")
	}
	if p.ClientID == "" {
		return nil, model.NewValidationError("client_id", "client_id is required")
	}
	now := s.now()
	p.ID = uuid.New().String()
	if p.Status == "" {
		p.Status = "active"
	}
	p.CreatedAt = now
	p.UpdatedAt = now
	return s.repo.Create(ctx, p)
}

func (s *personnelService) Get(ctx context.Context, id string) (*model.Personnel, error) {
	if id == "" {
		return nil, model.NewValidationError("id", "id is required")
	}
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	docs, err := s.docs.List(ctx, repository.DocumentFilter{PersonnelID: id})
	if err != nil {
		return nil, err
	}
	p.Documents = docs
	p.GlobalStatus = model.GlobalStatusOf(docs)
	return p, nil
}

func (s *personnelService) List(ctx context.Context) ([]model.Personnel, error) {
	people, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	docs, err := s.docs.List(ctx, repository.DocumentFilter{Category: model.CategoryPersonnel})
	if err != nil {
		return nil, err
	}
	byOwner := make(map[string][]model.Document, len(people))
	for _, d := range docs {
		if d.PersonnelID != nil {
			byOwner[*d.PersonnelID] = append(byOwner[*d.PersonnelID], d)
		}
	}
	for i := range people {
		owned := byOwner[people[i].ID]
		people[i].Documents = owned
		people[i].GlobalStatus = model.GlobalStatusOf(owned)
	}
	return people, nil
}

func (s *personnelService) Update(ctx context.Context, p *model.Personnel) (*model.Personnel, error) {
	if p.ID == "" {
		return nil, model.NewValidationError("id", "id is required")
	}
	p.UpdatedAt = s.now()
	return s.repo.Update(ctx, p)
}

func (s *personnelService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return model.NewValidationError("id", "id is required")
	}
	return s.repo.Delete(ctx, id)
}
