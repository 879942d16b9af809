package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"docuflota/internal/model"
	"docuflota/internal/repository"
	"docuflota/internal/service"
)

type MockDocumentService struct {
	mock.Mock
}

func (m *MockDocumentService) Upload(ctx context.Context, in service.UploadDocumentInput) (*model.Document, error) {
	args := m.Called(ctx, in)
	if d, ok := args.Get(0).(*model.Document); ok {
		return d, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockDocumentService) Get(ctx context.Context, id string) (*model.Document, error) {
	args := m.Called(ctx, id)
	if d, ok := args.Get(0).(*model.Document); ok {
		return d, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockDocumentService) List(ctx context.Context, f repository.DocumentFilter) ([]model.Document, error) {
	args := m.Called(ctx, f)
	if docs, ok := args.Get(0).([]model.Document); ok {
		return docs, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockDocumentService) Update(ctx context.Context, id string, in service.UpdateDocumentInput) (*model.Document, error) {
	args := m.Called(ctx, id, in)
	if d, ok := args.Get(0).(*model.Document); ok {
		return d, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockDocumentService) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockDocumentService) Replace(ctx context.Context, id string, in service.ReplaceDocumentInput) (*model.Document, error) {
	args := m.Called(ctx, id, in)
	if d, ok := args.Get(0).(*model.Document); ok {
		return d, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockDocumentService) History(ctx context.Context, id string) ([]model.ReplacementRecord, error) {
	args := m.Called(ctx, id)
	if recs, ok := args.Get(0).([]model.ReplacementRecord); ok {
		return recs, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockDocumentService) DownloadURL(ctx context.Context, id string) (string, error) {
	args := m.Called(ctx, id)
	return args.String(0), args.Error(1)
}

func (m *MockDocumentService) ListTypes(ctx context.Context, category model.Category) ([]model.DocumentType, error) {
	args := m.Called(ctx, category)
	if types, ok := args.Get(0).([]model.DocumentType); ok {
		return types, args.Error(1)
	}
	return nil, args.Error(1)
}

type MockReportService struct {
	mock.Mock
}

func (m *MockReportService) Generate(ctx context.Context, now time.Time) (*model.Report, error) {
	args := m.Called(ctx, now)
	if r, ok := args.Get(0).(*model.Report); ok {
		return r, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockReportService) Statistics(ctx context.Context, now time.Time) (*model.Statistics, error) {
	args := m.Called(ctx, now)
	if st, ok := args.Get(0).(*model.Statistics); ok {
		return st, args.Error(1)
	}
	return nil, args.Error(1)
}

type MockSynchronizer struct {
	mock.Mock
}

func (m *MockSynchronizer) Run(ctx context.Context, now time.Time) (service.SyncResult, error) {
	args := m.Called(ctx, now)
	return args.Get(0).(service.SyncResult), args.Error(1)
}

type MockClientService struct {
	mock.Mock
}

func (m *MockClientService) Create(ctx context.Context, c *model.Client) (*model.Client, error) {
	args := m.Called(ctx, c)
	if out, ok := args.Get(0).(*model.Client); ok {
		return out, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockClientService) Get(ctx context.Context, id string) (*model.Client, error) {
	args := m.Called(ctx, id)
	if out, ok := args.Get(0).(*model.Client); ok {
		return out, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockClientService) List(ctx context.Context) ([]model.Client, error) {
	args := m.Called(ctx)
	if out, ok := args.Get(0).([]model.Client); ok {
		return out, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockClientService) Update(ctx context.Context, c *model.Client) (*model.Client, error) {
	args := m.Called(ctx, c)
	if out, ok := args.Get(0).(*model.Client); ok {
		return out, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockClientService) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockVehicleService struct {
	mock.Mock
}

func (m *MockVehicleService) Create(ctx context.Context, v *model.Vehicle) (*model.Vehicle, error) {
	args := m.Called(ctx, v)
	if out, ok := args.Get(0).(*model.Vehicle); ok {
		return out, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockVehicleService) Get(ctx context.Context, id string) (*model.Vehicle, error) {
	args := m.Called(ctx, id)
	if out, ok := args.Get(0).(*model.Vehicle); ok {
		return out, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockVehicleService) List(ctx context.Context) ([]model.Vehicle, error) {
	args := m.Called(ctx)
	if out, ok := args.Get(0).([]model.Vehicle); ok {
		return out, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockVehicleService) Update(ctx context.Context, v *model.Vehicle) (*model.Vehicle, error) {
	args := m.Called(ctx, v)
	if out, ok := args.Get(0).(*model.Vehicle); ok {
		return out, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockVehicleService) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockPersonnelService struct {
	mock.Mock
}

func (m *MockPersonnelService) Create(ctx context.Context, p *model.Personnel) (*model.Personnel, error) {
	args := m.Called(ctx, p)
	if out, ok := args.Get(0).(*model.Personnel); ok {
		return out, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockPersonnelService) Get(ctx context.Context, id string) (*model.Personnel, error) {
	args := m.Called(ctx, id)
	if out, ok := args.Get(0).(*model.Personnel); ok {
		return out, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockPersonnelService) List(ctx context.Context) ([]model.Personnel, error) {
	args := m.Called(ctx)
	if out, ok := args.Get(0).([]model.Personnel); ok {
		return out, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockPersonnelService) Update(ctx context.Context, p *model.Personnel) (*model.Personnel, error) {
	args := m.Called(ctx, p)
	if out, ok := args.Get(0).(*model.Personnel); ok {
		return out, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockPersonnelService) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
