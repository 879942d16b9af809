package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"docuflota/internal/model"
	"docuflota/internal/repository"
)

type MockDocumentRepository struct {
	mock.Mock
}

func (m *MockDocumentRepository) Create(ctx context.Context, doc *model.Document) (*model.Document, error) {
	args := m.Called(ctx, doc)
	if d, ok := args.Get(0).(*model.Document); ok {
		return d, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockDocumentRepository) FindByID(ctx context.Context, id string) (*model.Document, error) {
	args := m.Called(ctx, id)
	if d, ok := args.Get(0).(*model.Document); ok {
		return d, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockDocumentRepository) List(ctx context.Context, f repository.DocumentFilter) ([]model.Document, error) {
	args := m.Called(ctx, f)
	if docs, ok := args.Get(0).([]model.Document); ok {
		return docs, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockDocumentRepository) Update(ctx context.Context, doc *model.Document) (*model.Document, error) {
	args := m.Called(ctx, doc)
	if d, ok := args.Get(0).(*model.Document); ok {
		return d, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockDocumentRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockDocumentRepository) Replace(ctx context.Context, rec *model.ReplacementRecord, doc *model.Document) (*model.Document, error) {
	args := m.Called(ctx, rec, doc)
	if d, ok := args.Get(0).(*model.Document); ok {
		return d, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockDocumentRepository) History(ctx context.Context, documentID string) ([]model.ReplacementRecord, error) {
	args := m.Called(ctx, documentID)
	if recs, ok := args.Get(0).([]model.ReplacementRecord); ok {
		return recs, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockDocumentRepository) MarkExpired(ctx context.Context, now time.Time) (int64, error) {
	args := m.Called(ctx, now)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockDocumentRepository) MarkWarning(ctx context.Context, now time.Time) (int64, error) {
	args := m.Called(ctx, now)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockDocumentRepository) MarkValid(ctx context.Context, now time.Time) (int64, error) {
	args := m.Called(ctx, now)
	return args.Get(0).(int64), args.Error(1)
}

type MockReportRepository struct {
	mock.Mock
}

func (m *MockReportRepository) ExpiredRows(ctx context.Context, today time.Time) ([]model.ReportRow, error) {
	args := m.Called(ctx, today)
	if rows, ok := args.Get(0).([]model.ReportRow); ok {
		return rows, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockReportRepository) ExpiringRows(ctx context.Context, from, to time.Time) ([]model.ReportRow, error) {
	args := m.Called(ctx, from, to)
	if rows, ok := args.Get(0).([]model.ReportRow); ok {
		return rows, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockReportRepository) Statistics(ctx context.Context, today time.Time) (*model.Statistics, error) {
	args := m.Called(ctx, today)
	if st, ok := args.Get(0).(*model.Statistics); ok {
		return st, args.Error(1)
	}
	return nil, args.Error(1)
}

type MockClientRepository struct {
	mock.Mock
}

func (m *MockClientRepository) Create(ctx context.Context, c *model.Client) (*model.Client, error) {
	args := m.Called(ctx, c)
	if out, ok := args.Get(0).(*model.Client); ok {
		return out, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockClientRepository) FindByID(ctx context.Context, id string) (*model.Client, error) {
	args := m.Called(ctx, id)
	if out, ok := args.Get(0).(*model.Client); ok {
		return out, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockClientRepository) List(ctx context.Context) ([]model.Client, error) {
	args := m.Called(ctx)
	if out, ok := args.Get(0).([]model.Client); ok {
		return out, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockClientRepository) Update(ctx context.Context, c *model.Client) (*model.Client, error) {
	args := m.Called(ctx, c)
	if out, ok := args.Get(0).(*model.Client); ok {
		return out, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockClientRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockVehicleRepository struct {
	mock.Mock
}

func (m *MockVehicleRepository) Create(ctx context.Context, v *model.Vehicle) (*model.Vehicle, error) {
	args := m.Called(ctx, v)
	if out, ok := args.Get(0).(*model.Vehicle); ok {
		return out, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockVehicleRepository) FindByID(ctx context.Context, id string) (*model.Vehicle, error) {
	args := m.Called(ctx, id)
	if out, ok := args.Get(0).(*model.Vehicle); ok {
		return out, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockVehicleRepository) List(ctx context.Context) ([]model.Vehicle, error) {
	args := m.Called(ctx)
	if out, ok := args.Get(0).([]model.Vehicle); ok {
		return out, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockVehicleRepository) Update(ctx context.Context, v *model.Vehicle) (*model.Vehicle, error) {
	args := m.Called(ctx, v)
	if out, ok := args.Get(0).(*model.Vehicle); ok {
		return out, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockVehicleRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockPersonnelRepository struct {
	mock.Mock
}

func (m *MockPersonnelRepository) Create(ctx context.Context, p *model.Personnel) (*model.Personnel, error) {
	args := m.Called(ctx, p)
	if out, ok := args.Get(0).(*model.Personnel); ok {
		return out, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockPersonnelRepository) FindByID(ctx context.Context, id string) (*model.Personnel, error) {
	args := m.Called(ctx, id)
	if out, ok := args.Get(0).(*model.Personnel); ok {
		return out, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockPersonnelRepository) List(ctx context.Context) ([]model.Personnel, error) {
	args := m.Called(ctx)
	if out, ok := args.Get(0).([]model.Personnel); ok {
		return out, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockPersonnelRepository) Update(ctx context.Context, p *model.Personnel) (*model.Personnel, error) {
	args := m.Called(ctx, p)
	if out, ok := args.Get(0).(*model.Personnel); ok {
		return out, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockPersonnelRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockDashboardRepository struct {
	mock.Mock
}

func (m *MockDashboardRepository) Stats(ctx context.Context) (*model.DashboardStats, error) {
	args := m.Called(ctx)
	if st, ok := args.Get(0).(*model.DashboardStats); ok {
		return st, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockDashboardRepository) RecentActivity(ctx context.Context, limit int) ([]model.ActivityEntry, error) {
	args := m.Called(ctx, limit)
	if out, ok := args.Get(0).([]model.ActivityEntry); ok {
		return out, args.Error(1)
	}
	return nil, args.Error(1)
}

type MockDocumentTypeRepository struct {
	mock.Mock
}

func (m *MockDocumentTypeRepository) FindByID(ctx context.Context, id string) (*model.DocumentType, error) {
	args := m.Called(ctx, id)
	if out, ok := args.Get(0).(*model.DocumentType); ok {
		return out, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockDocumentTypeRepository) List(ctx context.Context, category model.Category) ([]model.DocumentType, error) {
	args := m.Called(ctx, category)
	if out, ok := args.Get(0).([]model.DocumentType); ok {
		return out, args.Error(1)
	}
	return nil, args.Error(1)
}
