package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"docuflota/internal/model"
	"docuflota/internal/repository"
	repoMocks "docuflota/internal/repository/mocks"
	"docuflota/internal/storage"
	storeMocks "docuflota/internal/storage/mocks"
)

var testNow = time.Date(2026, time.March, 15, 12, 0, 0, 0, time.UTC)

// mockSyncRunner stands in for the Synchronizer; the generated mock package
// cannot be imported here without a cycle.
type mockSyncRunner struct {
	mock.Mock
}

func (m *mockSyncRunner) Run(ctx context.Context, now time.Time) (SyncResult, error) {
	args := m.Called(ctx, now)
	return args.Get(0).(SyncResult), args.Error(1)
}

func newTestDocumentService(store storage.Storage, repo repository.DocumentRepository, types repository.DocumentTypeRepository, syncer Synchronizer) *documentService {
	return &documentService{
		store:  store,
		repo:   repo,
		types:  types,
		syncer: syncer,
		now:    func() time.Time { return testNow },
		logger: zerolog.Nop(),
	}
}

func strptr(s string) *string { return &s }

func dayptr(t time.Time) *time.Time {
	d := model.DateOf(t)
	return &d
}

func TestDocumentService_Upload(t *testing.T) {
	ctx := context.Background()
	vehicleType := &model.DocumentType{ID: "type-1", Name: "Insurance", Category: model.CategoryVehicle}

	baseInput := func() UploadDocumentInput {
		return UploadDocumentInput{
			Name:             "Insurance policy",
			TypeID:           "type-1",
			Category:         model.CategoryVehicle,
			VehicleID:        strptr("veh-1"),
			ClientID:         "client-1",
			ExpirationDate:   dayptr(testNow.AddDate(0, 6, 0)),
			Reader:           strings.NewReader("pdf bytes"),
			OriginalFilename: "policy.pdf",
			ContentType:      "application/pdf",
			Size:             9,
		}
	}

	tests := []struct {
		name       string
		mutate     func(in *UploadDocumentInput)
		setupMocks func(mStore *storeMocks.MockStorage, mRepo *repoMocks.MockDocumentRepository, mTypes *repoMocks.MockDocumentTypeRepository, mSync *mockSyncRunner)
		wantStatus model.Status
		wantErr    func(t *testing.T, err error)
	}{
		{
			name: "happy path classifies valid",
			setupMocks: func(mStore *storeMocks.MockStorage, mRepo *repoMocks.MockDocumentRepository, mTypes *repoMocks.MockDocumentTypeRepository, mSync *mockSyncRunner) {
				mTypes.On("FindByID", ctx, "type-1").Return(vehicleType, nil)
				mStore.On("Put", ctx, mock.MatchedBy(func(key string) bool {
					return strings.HasPrefix(key, "documents/") && strings.HasSuffix(key, ".pdf")
				}), mock.Anything, mock.Anything).Return(storage.ObjectInfo{Key: "documents/uuid.pdf", Size: 9}, nil)
				mRepo.On("Create", ctx, mock.MatchedBy(func(doc *model.Document) bool {
					return doc.Status == model.StatusValid && doc.FileURL == "documents/uuid.pdf"
				})).Return(&model.Document{ID: "gen-id", Status: model.StatusValid}, nil)
				mSync.On("Run", ctx, testNow).Return(SyncResult{}, nil)
			},
			wantStatus: model.StatusValid,
		},
		{
			name: "expiration inside the window classifies warning",
			mutate: func(in *UploadDocumentInput) {
				in.ExpirationDate = dayptr(testNow.AddDate(0, 0, 10))
			},
			setupMocks: func(mStore *storeMocks.MockStorage, mRepo *repoMocks.MockDocumentRepository, mTypes *repoMocks.MockDocumentTypeRepository, mSync *mockSyncRunner) {
				mTypes.On("FindByID", ctx, "type-1").Return(vehicleType, nil)
				mStore.On("Put", ctx, mock.Anything, mock.Anything, mock.Anything).
					Return(storage.ObjectInfo{Key: "documents/uuid.pdf", Size: 9}, nil)
				mRepo.On("Create", ctx, mock.MatchedBy(func(doc *model.Document) bool {
					return doc.Status == model.StatusWarning
				})).Return(&model.Document{ID: "gen-id", Status: model.StatusWarning}, nil)
				mSync.On("Run", ctx, testNow).Return(SyncResult{}, nil)
			},
			wantStatus: model.StatusWarning,
		},
		{
			name: "nil reader",
			mutate: func(in *UploadDocumentInput) {
				in.Reader = nil
			},
			setupMocks: func(mStore *storeMocks.MockStorage, mRepo *repoMocks.MockDocumentRepository, mTypes *repoMocks.MockDocumentTypeRepository, mSync *mockSyncRunner) {
			},
			wantErr: func(t *testing.T, err error) {
				assert.True(t, model.IsValidation(err))
			},
		},
		{
			name: "vehicle document without vehicle_id",
			mutate: func(in *UploadDocumentInput) {
				in.VehicleID = nil
			},
			setupMocks: func(mStore *storeMocks.MockStorage, mRepo *repoMocks.MockDocumentRepository, mTypes *repoMocks.MockDocumentTypeRepository, mSync *mockSyncRunner) {
			},
			wantErr: func(t *testing.T, err error) {
				assert.True(t, model.IsValidation(err))
			},
		},
		{
			name: "vehicle document naming personnel",
			mutate: func(in *UploadDocumentInput) {
				in.PersonnelID = strptr("per-1")
			},
			setupMocks: func(mStore *storeMocks.MockStorage, mRepo *repoMocks.MockDocumentRepository, mTypes *repoMocks.MockDocumentTypeRepository, mSync *mockSyncRunner) {
			},
			wantErr: func(t *testing.T, err error) {
				assert.True(t, model.IsValidation(err))
			},
		},
		{
			name: "rejected content type",
			mutate: func(in *UploadDocumentInput) {
				in.ContentType = "application/zip"
			},
			setupMocks: func(mStore *storeMocks.MockStorage, mRepo *repoMocks.MockDocumentRepository, mTypes *repoMocks.MockDocumentTypeRepository, mSync *mockSyncRunner) {
			},
			wantErr: func(t *testing.T, err error) {
				assert.True(t, model.IsValidation(err))
			},
		},
		{
			name: "oversize file",
			mutate: func(in *UploadDocumentInput) {
				in.Size = defaultMaxUploadBytes + 1
			},
			setupMocks: func(mStore *storeMocks.MockStorage, mRepo *repoMocks.MockDocumentRepository, mTypes *repoMocks.MockDocumentTypeRepository, mSync *mockSyncRunner) {
			},
			wantErr: func(t *testing.T, err error) {
				assert.True(t, model.IsValidation(err))
			},
		},
		{
			name: "expiring type without an expiration date",
			mutate: func(in *UploadDocumentInput) {
				in.ExpirationDate = nil
			},
			setupMocks: func(mStore *storeMocks.MockStorage, mRepo *repoMocks.MockDocumentRepository, mTypes *repoMocks.MockDocumentTypeRepository, mSync *mockSyncRunner) {
				days := 365
				mTypes.On("FindByID", ctx, "type-1").
					Return(&model.DocumentType{ID: "type-1", Name: "Insurance", Category: model.CategoryVehicle, ValidityDays: &days}, nil)
			},
			wantErr: func(t *testing.T, err error) {
				assert.True(t, model.IsValidation(err))
			},
		},
		{
			name: "non-expiring type accepts a nil expiration date",
			mutate: func(in *UploadDocumentInput) {
				in.ExpirationDate = nil
			},
			setupMocks: func(mStore *storeMocks.MockStorage, mRepo *repoMocks.MockDocumentRepository, mTypes *repoMocks.MockDocumentTypeRepository, mSync *mockSyncRunner) {
				mTypes.On("FindByID", ctx, "type-1").Return(vehicleType, nil)
				mStore.On("Put", ctx, mock.Anything, mock.Anything, mock.Anything).
					Return(storage.ObjectInfo{Key: "documents/uuid.pdf", Size: 9}, nil)
				mRepo.On("Create", ctx, mock.MatchedBy(func(doc *model.Document) bool {
					return doc.ExpirationDate == nil && doc.Status == model.StatusValid
				})).Return(&model.Document{ID: "gen-id", Status: model.StatusValid}, nil)
				mSync.On("Run", ctx, testNow).Return(SyncResult{}, nil)
			},
			wantStatus: model.StatusValid,
		},
		{
			name: "sync failure after a saved row does not fail the upload",
			setupMocks: func(mStore *storeMocks.MockStorage, mRepo *repoMocks.MockDocumentRepository, mTypes *repoMocks.MockDocumentTypeRepository, mSync *mockSyncRunner) {
				mTypes.On("FindByID", ctx, "type-1").Return(vehicleType, nil)
				mStore.On("Put", ctx, mock.Anything, mock.Anything, mock.Anything).
					Return(storage.ObjectInfo{Key: "documents/uuid.pdf", Size: 9}, nil)
				mRepo.On("Create", ctx, mock.Anything).
					Return(&model.Document{ID: "gen-id", Status: model.StatusValid}, nil)
				mSync.On("Run", ctx, testNow).Return(SyncResult{}, errors.New("deadlock"))
			},
			wantStatus: model.StatusValid,
		},
		{
			name: "type category mismatch",
			setupMocks: func(mStore *storeMocks.MockStorage, mRepo *repoMocks.MockDocumentRepository, mTypes *repoMocks.MockDocumentTypeRepository, mSync *mockSyncRunner) {
				mTypes.On("FindByID", ctx, "type-1").
					Return(&model.DocumentType{ID: "type-1", Name: "License", Category: model.CategoryPersonnel}, nil)
			},
			wantErr: func(t *testing.T, err error) {
				assert.True(t, model.IsValidation(err))
			},
		},
		{
			name: "storage error",
			setupMocks: func(mStore *storeMocks.MockStorage, mRepo *repoMocks.MockDocumentRepository, mTypes *repoMocks.MockDocumentTypeRepository, mSync *mockSyncRunner) {
				mTypes.On("FindByID", ctx, "type-1").Return(vehicleType, nil)
				mStore.On("Put", ctx, mock.Anything, mock.Anything, mock.Anything).
					Return(storage.ObjectInfo{}, errors.New("storage fail"))
			},
			wantErr: func(t *testing.T, err error) {
				assert.True(t, model.IsStorage(err))
			},
		},
		{
			name: "repository error with successful rollback",
			setupMocks: func(mStore *storeMocks.MockStorage, mRepo *repoMocks.MockDocumentRepository, mTypes *repoMocks.MockDocumentTypeRepository, mSync *mockSyncRunner) {
				mTypes.On("FindByID", ctx, "type-1").Return(vehicleType, nil)
				mStore.On("Put", ctx, mock.Anything, mock.Anything, mock.Anything).
					Return(storage.ObjectInfo{Key: "documents/uuid.pdf", Size: 9}, nil)
				mRepo.On("Create", ctx, mock.Anything).Return(nil, errors.New("db fail"))
				mStore.On("Delete", ctx, mock.Anything).Return(nil)
			},
			wantErr: func(t *testing.T, err error) {
				assert.Contains(t, err.Error(), "db fail")
			},
		},
		{
			name: "repository error with failed rollback",
			setupMocks: func(mStore *storeMocks.MockStorage, mRepo *repoMocks.MockDocumentRepository, mTypes *repoMocks.MockDocumentTypeRepository, mSync *mockSyncRunner) {
				mTypes.On("FindByID", ctx, "type-1").Return(vehicleType, nil)
				mStore.On("Put", ctx, mock.Anything, mock.Anything, mock.Anything).
					Return(storage.ObjectInfo{Key: "documents/uuid.pdf", Size: 9}, nil)
				mRepo.On("Create", ctx, mock.Anything).Return(nil, errors.New("db fail"))
				mStore.On("Delete", ctx, mock.Anything).Return(errors.New("delete fail"))
			},
			wantErr: func(t *testing.T, err error) {
				assert.Contains(t, err.Error(), "rollback delete failed")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mStore := new(storeMocks.MockStorage)
			mRepo := new(repoMocks.MockDocumentRepository)
			mTypes := new(repoMocks.MockDocumentTypeRepository)
			mSync := new(mockSyncRunner)
			svc := newTestDocumentService(mStore, mRepo, mTypes, mSync)

			in := baseInput()
			if tt.mutate != nil {
				tt.mutate(&in)
			}
			tt.setupMocks(mStore, mRepo, mTypes, mSync)

			doc, err := svc.Upload(ctx, in)

			if tt.wantErr != nil {
				tt.wantErr(t, err)
				assert.Nil(t, doc)
			} else {
				assert.NoError(t, err)
				require.NotNil(t, doc)
				assert.Equal(t, tt.wantStatus, doc.Status)
			}
			mStore.AssertExpectations(t)
			mRepo.AssertExpectations(t)
			mTypes.AssertExpectations(t)
			mSync.AssertExpectations(t)
		})
	}
}

func TestDocumentService_Update(t *testing.T) {
	ctx := context.Background()

	current := func() *model.Document {
		return &model.Document{
			ID:             "doc-1",
			Name:           "Insurance policy",
			ExpirationDate: dayptr(testNow.AddDate(0, 6, 0)),
			Status:         model.StatusValid,
		}
	}

	tests := []struct {
		name       string
		in         UpdateDocumentInput
		setupMocks func(mRepo *repoMocks.MockDocumentRepository)
		wantErr    func(t *testing.T, err error)
	}{
		{
			name: "moving expiration into the window reclassifies to warning",
			in:   UpdateDocumentInput{ExpirationDate: dayptr(testNow.AddDate(0, 0, 5))},
			setupMocks: func(mRepo *repoMocks.MockDocumentRepository) {
				mRepo.On("FindByID", ctx, "doc-1").Return(current(), nil)
				mRepo.On("Update", ctx, mock.MatchedBy(func(doc *model.Document) bool {
					return doc.Status == model.StatusWarning
				})).Return(&model.Document{ID: "doc-1", Status: model.StatusWarning}, nil)
			},
		},
		{
			name: "moving expiration into the past reclassifies to expired",
			in:   UpdateDocumentInput{ExpirationDate: dayptr(testNow.AddDate(0, 0, -1))},
			setupMocks: func(mRepo *repoMocks.MockDocumentRepository) {
				mRepo.On("FindByID", ctx, "doc-1").Return(current(), nil)
				mRepo.On("Update", ctx, mock.MatchedBy(func(doc *model.Document) bool {
					return doc.Status == model.StatusExpired
				})).Return(&model.Document{ID: "doc-1", Status: model.StatusExpired}, nil)
			},
		},
		{
			name: "clearing expiration reclassifies to valid",
			in:   UpdateDocumentInput{ClearExpiration: true},
			setupMocks: func(mRepo *repoMocks.MockDocumentRepository) {
				doc := current()
				doc.Status = model.StatusWarning
				mRepo.On("FindByID", ctx, "doc-1").Return(doc, nil)
				mRepo.On("Update", ctx, mock.MatchedBy(func(doc *model.Document) bool {
					return doc.ExpirationDate == nil && doc.Status == model.StatusValid
				})).Return(&model.Document{ID: "doc-1", Status: model.StatusValid}, nil)
			},
		},
		{
			name: "rename keeps expiration and status",
			in:   UpdateDocumentInput{Name: "Renewed policy"},
			setupMocks: func(mRepo *repoMocks.MockDocumentRepository) {
				mRepo.On("FindByID", ctx, "doc-1").Return(current(), nil)
				mRepo.On("Update", ctx, mock.MatchedBy(func(doc *model.Document) bool {
					return doc.Name == "Renewed policy" && doc.Status == model.StatusValid
				})).Return(&model.Document{ID: "doc-1", Name: "Renewed policy"}, nil)
			},
		},
		{
			name: "not found",
			in:   UpdateDocumentInput{Name: "x"},
			setupMocks: func(mRepo *repoMocks.MockDocumentRepository) {
				mRepo.On("FindByID", ctx, "doc-1").Return(nil, model.ErrNotFound)
			},
			wantErr: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, model.ErrNotFound)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mRepo := new(repoMocks.MockDocumentRepository)
			svc := newTestDocumentService(nil, mRepo, nil, nil)

			tt.setupMocks(mRepo)

			doc, err := svc.Update(ctx, "doc-1", tt.in)

			if tt.wantErr != nil {
				tt.wantErr(t, err)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, doc)
			}
			mRepo.AssertExpectations(t)
		})
	}
}

func TestDocumentService_Delete(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name       string
		id         string
		setupMocks func(mStore *storeMocks.MockStorage, mRepo *repoMocks.MockDocumentRepository)
		wantErr    func(t *testing.T, err error)
	}{
		{
			name: "happy path removes object then row",
			id:   "doc-1",
			setupMocks: func(mStore *storeMocks.MockStorage, mRepo *repoMocks.MockDocumentRepository) {
				mRepo.On("FindByID", ctx, "doc-1").
					Return(&model.Document{ID: "doc-1", FileURL: "documents/a.pdf"}, nil)
				mStore.On("Delete", ctx, "documents/a.pdf").Return(nil)
				mRepo.On("Delete", ctx, "doc-1").Return(nil)
			},
		},
		{
			name:       "empty id",
			id:         "",
			setupMocks: func(mStore *storeMocks.MockStorage, mRepo *repoMocks.MockDocumentRepository) {},
			wantErr: func(t *testing.T, err error) {
				assert.True(t, model.IsValidation(err))
			},
		},
		{
			name: "not found",
			id:   "missing",
			setupMocks: func(mStore *storeMocks.MockStorage, mRepo *repoMocks.MockDocumentRepository) {
				mRepo.On("FindByID", ctx, "missing").Return(nil, model.ErrNotFound)
			},
			wantErr: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, model.ErrNotFound)
			},
		},
		{
			name: "storage failure keeps the row",
			id:   "doc-1",
			setupMocks: func(mStore *storeMocks.MockStorage, mRepo *repoMocks.MockDocumentRepository) {
				mRepo.On("FindByID", ctx, "doc-1").
					Return(&model.Document{ID: "doc-1", FileURL: "documents/a.pdf"}, nil)
				mStore.On("Delete", ctx, "documents/a.pdf").Return(errors.New("storage fail"))
			},
			wantErr: func(t *testing.T, err error) {
				assert.True(t, model.IsStorage(err))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mStore := new(storeMocks.MockStorage)
			mRepo := new(repoMocks.MockDocumentRepository)
			svc := newTestDocumentService(mStore, mRepo, nil, nil)

			tt.setupMocks(mStore, mRepo)

			err := svc.Delete(ctx, tt.id)

			if tt.wantErr != nil {
				tt.wantErr(t, err)
			} else {
				assert.NoError(t, err)
			}
			mStore.AssertExpectations(t)
			mRepo.AssertExpectations(t)
		})
	}
}

func TestDocumentService_Replace(t *testing.T) {
	ctx := context.Background()

	current := func() *model.Document {
		return &model.Document{
			ID:             "doc-1",
			Name:           "Insurance policy",
			FileURL:        "documents/old.pdf",
			FileName:       "old.pdf",
			FileSize:       100,
			ExpirationDate: dayptr(testNow.AddDate(0, 0, -10)),
			Status:         model.StatusExpired,
		}
	}

	in := func() ReplaceDocumentInput {
		return ReplaceDocumentInput{
			Reader:           strings.NewReader("renewed"),
			OriginalFilename: "renewed.pdf",
			ContentType:      "application/pdf",
			Size:             7,
			ExpirationDate:   dayptr(testNow.AddDate(1, 0, 0)),
			ReplacedBy:       "admin",
		}
	}

	t.Run("snapshots the old file and swaps in the new one", func(t *testing.T) {
		mStore := new(storeMocks.MockStorage)
		mRepo := new(repoMocks.MockDocumentRepository)
		mSync := new(mockSyncRunner)
		svc := newTestDocumentService(mStore, mRepo, nil, mSync)

		mSync.On("Run", ctx, testNow).Return(SyncResult{}, nil)
		mRepo.On("FindByID", ctx, "doc-1").Return(current(), nil)
		mStore.On("Put", ctx, mock.MatchedBy(func(key string) bool {
			return strings.HasPrefix(key, "documents/") && key != "documents/old.pdf"
		}), mock.Anything, mock.Anything).Return(storage.ObjectInfo{Key: "documents/new.pdf", Size: 7}, nil)
		mRepo.On("Replace", ctx, mock.MatchedBy(func(rec *model.ReplacementRecord) bool {
			return rec.DocumentID == "doc-1" &&
				rec.PreviousFileURL == "documents/old.pdf" &&
				rec.PreviousFileName == "old.pdf" &&
				rec.ReplacedBy == "admin"
		}), mock.MatchedBy(func(doc *model.Document) bool {
			return doc.FileURL == "documents/new.pdf" && doc.Status == model.StatusValid
		})).Return(&model.Document{ID: "doc-1", FileURL: "documents/new.pdf", Status: model.StatusValid}, nil)

		doc, err := svc.Replace(ctx, "doc-1", in())

		assert.NoError(t, err)
		require.NotNil(t, doc)
		assert.Equal(t, model.StatusValid, doc.Status)
		// The old object is never deleted; history still points at it.
		mStore.AssertNotCalled(t, "Delete", ctx, "documents/old.pdf")
		mStore.AssertExpectations(t)
		mRepo.AssertExpectations(t)
		mSync.AssertExpectations(t)
	})

	t.Run("failed swap deletes the freshly uploaded object", func(t *testing.T) {
		mStore := new(storeMocks.MockStorage)
		mRepo := new(repoMocks.MockDocumentRepository)
		mSync := new(mockSyncRunner)
		svc := newTestDocumentService(mStore, mRepo, nil, mSync)

		mRepo.On("FindByID", ctx, "doc-1").Return(current(), nil)
		mStore.On("Put", ctx, mock.Anything, mock.Anything, mock.Anything).
			Return(storage.ObjectInfo{Key: "documents/new.pdf", Size: 7}, nil)
		mRepo.On("Replace", ctx, mock.Anything, mock.Anything).
			Return(nil, errors.New("tx fail"))
		mStore.On("Delete", ctx, mock.Anything).Return(nil)

		_, err := svc.Replace(ctx, "doc-1", in())

		assert.Error(t, err)
		mStore.AssertCalled(t, "Delete", ctx, mock.Anything)
		// No status sync on a failed swap.
		mSync.AssertNotCalled(t, "Run", mock.Anything, mock.Anything)
		mStore.AssertExpectations(t)
		mRepo.AssertExpectations(t)
	})

	t.Run("missing document uploads nothing", func(t *testing.T) {
		mStore := new(storeMocks.MockStorage)
		mRepo := new(repoMocks.MockDocumentRepository)
		svc := newTestDocumentService(mStore, mRepo, nil, nil)

		mRepo.On("FindByID", ctx, "missing").Return(nil, model.ErrNotFound)

		_, err := svc.Replace(ctx, "missing", in())

		assert.ErrorIs(t, err, model.ErrNotFound)
		mStore.AssertNotCalled(t, "Put", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		mRepo.AssertExpectations(t)
	})
}

func TestDocumentService_History(t *testing.T) {
	ctx := context.Background()

	t.Run("returns records newest first", func(t *testing.T) {
		mRepo := new(repoMocks.MockDocumentRepository)
		svc := newTestDocumentService(nil, mRepo, nil, nil)

		recs := []model.ReplacementRecord{
			{ID: "rep-2", ReplacedAt: testNow},
			{ID: "rep-1", ReplacedAt: testNow.Add(-time.Hour)},
		}
		mRepo.On("FindByID", ctx, "doc-1").Return(&model.Document{ID: "doc-1"}, nil)
		mRepo.On("History", ctx, "doc-1").Return(recs, nil)

		got, err := svc.History(ctx, "doc-1")

		assert.NoError(t, err)
		assert.Equal(t, recs, got)
	})

	t.Run("unknown document", func(t *testing.T) {
		mRepo := new(repoMocks.MockDocumentRepository)
		svc := newTestDocumentService(nil, mRepo, nil, nil)

		mRepo.On("FindByID", ctx, "missing").Return(nil, model.ErrNotFound)

		_, err := svc.History(ctx, "missing")

		assert.ErrorIs(t, err, model.ErrNotFound)
	})
}

func TestDocumentService_DownloadURL(t *testing.T) {
	ctx := context.Background()

	mStore := new(storeMocks.MockStorage)
	mRepo := new(repoMocks.MockDocumentRepository)
	svc := newTestDocumentService(mStore, mRepo, nil, nil)

	mRepo.On("FindByID", ctx, "doc-1").
		Return(&model.Document{ID: "doc-1", FileURL: "documents/a.pdf"}, nil)
	mStore.On("PresignGet", ctx, "documents/a.pdf", downloadExpiry).
		Return("https://minio.local/documents/a.pdf?sig=abc", nil)

	u, err := svc.DownloadURL(ctx, "doc-1")

	assert.NoError(t, err)
	assert.Contains(t, u, "documents/a.pdf")
	mStore.AssertExpectations(t)
	mRepo.AssertExpectations(t)
}
