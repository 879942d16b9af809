package service

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"docuflota/internal/model"
	"docuflota/internal/repository"
	"docuflota/internal/storage"
)

// UploadDocumentInput carries everything needed to register a new document:
// the metadata and the file content stream. OriginalFilename is used only to
// extract the extension; the stored object key is UUID + extension.
type UploadDocumentInput struct {
	Name           string
	TypeID         string
	Category       model.Category
	VehicleID      *string
	PersonnelID    *string
	ClientID       string
	ExpirationDate *time.Time

	Reader           io.Reader
	OriginalFilename string
	ContentType      string
	Size             int64
}

// UpdateDocumentInput mutates a document's metadata. A zero Name keeps the
// current one. ClearExpiration removes the expiration date; otherwise a nil
// ExpirationDate keeps the current date.
type UpdateDocumentInput struct {
	Name            string
	ExpirationDate  *time.Time
	ClearExpiration bool
}

// ReplaceDocumentInput swaps a document's file for a renewed one.
type ReplaceDocumentInput struct {
	Reader           io.Reader
	OriginalFilename string
	ContentType      string
	Size             int64
	ExpirationDate   *time.Time
	ReplacedBy       string
}

// DocumentService defines the document lifecycle use cases.
type DocumentService interface {
	// Upload stores the file in object storage, saves the metadata row with a
	// freshly classified status, and rolls the object back if the row save
	// fails. A successful save triggers a full status reconciliation.
	Upload(ctx context.Context, in UploadDocumentInput) (*model.Document, error)

	// Get returns a single document by ID.
	Get(ctx context.Context, id string) (*model.Document, error)

	// List returns documents matching the filter, most urgent expiration
	// first.
	List(ctx context.Context, f repository.DocumentFilter) ([]model.Document, error)

	// Update changes a document's name or expiration date, re-classifying the
	// status whenever the expiration changes.
	Update(ctx context.Context, id string, in UpdateDocumentInput) (*model.Document, error)

	// Delete removes the stored object and the metadata row.
	Delete(ctx context.Context, id string) error

	// Replace uploads the renewed file, snapshots the current file into the
	// replacement history, and swaps the active fields atomically. The
	// superseded object is retained so history stays downloadable.
	Replace(ctx context.Context, id string, in ReplaceDocumentInput) (*model.Document, error)

	// History lists a document's replacement records, newest first.
	History(ctx context.Context, id string) ([]model.ReplacementRecord, error)

	// DownloadURL returns a time-limited URL for the document's current file.
	DownloadURL(ctx context.Context, id string) (string, error)

	// ListTypes returns the document type catalog, optionally filtered by
	// category.
	ListTypes(ctx context.Context, category model.Category) ([]model.DocumentType, error)
}

// downloadExpiry bounds how long a presigned document URL stays usable.
const downloadExpiry = 15 * time.Minute

// defaultMaxUploadBytes caps upload size when no limit is configured.
const defaultMaxUploadBytes = 10 << 20

// allowedContentTypes lists the file formats accepted for document uploads.
var allowedContentTypes = map[string]bool{
	"image/jpeg":      true,
	"image/png":       true,
	"application/pdf": true,
}

type documentService struct {
	store    storage.Storage
	repo     repository.DocumentRepository
	types    repository.DocumentTypeRepository
	syncer   Synchronizer
	maxBytes int64
	now      func() time.Time
	logger   zerolog.Logger
}

// NewDocumentService constructs a DocumentService. The synchronizer is run
// after every create and replace so all stored statuses stay reconciled.
// maxUploadBytes caps the accepted file size; zero applies the default.
func NewDocumentService(store storage.Storage, repo repository.DocumentRepository, types repository.DocumentTypeRepository, syncer Synchronizer, maxUploadBytes int64, logger zerolog.Logger) DocumentService {
	return &documentService{
		store:    store,
		repo:     repo,
		types:    types,
		syncer:   syncer,
		maxBytes: maxUploadBytes,
		now:      func() time.Time { return time.Now().UTC() },
		logger:   logger.With().Str("component", "documents").Logger(),
	}
}

// validateFile enforces the accepted formats and the configured size cap.
func (s *documentService) validateFile(contentType string, size int64) error {
	if !allowedContentTypes[contentType] {
		return model.NewValidationError("file", "content type must be JPEG, PNG, or PDF")
	}
	limit := s.maxBytes
	if limit <= 0 {
		limit = defaultMaxUploadBytes
	}
	if size > limit {
		return model.NewValidationError("file", fmt.Sprintf("file exceeds the %d byte limit", limit))
	}
	return nil
}

func (s *documentService) Upload(ctx context.Context, in UploadDocumentInput) (*model.Document, error) {
	if in.Reader == nil {
		return nil, model.NewValidationError("file", "file content is required")
	}
	if in.Name == "" {
		return nil, model.NewValidationError("name", "name is required")
	}
	if in.ClientID == "" {
		return nil, model.NewValidationError("client_id", "client_id is required")
	}
	if !in.Category.Valid() {
		return nil, model.NewValidationError("category", "must be vehicle or personnel")
	}
	if err := validateOwner(in.Category, in.VehicleID, in.PersonnelID); err != nil {
		return nil, err
	}
	if err := s.validateFile(in.ContentType, in.Size); err != nil {
		return nil, err
	}

	docType, err := s.types.FindByID(ctx, in.TypeID)
	if err != nil {
		return nil, model.NewValidationError("type_id", "unknown document type")
	}
	if docType.Category != in.Category {
		return nil, model.NewValidationError("type_id",
			fmt.Sprintf("type %q belongs to the %s category", docType.Name, docType.Category))
	}
	if docType.ValidityDays != nil && in.ExpirationDate == nil {
		return nil, model.NewValidationError("expiration_date",
			fmt.Sprintf("type %q expires and requires an expiration date", docType.Name))
	}

	key := storage.DocumentKey(uuid.New().String(), in.OriginalFilename)
	objInfo, err := s.store.Put(ctx, key, in.Reader, storage.PutObjectOptions{
		Size:        in.Size,
		ContentType: in.ContentType,
		Metadata: map[string]string{
			"original-filename": in.OriginalFilename,
		},
	})
	if err != nil {
		return nil, &model.StorageError{Op: "documents.upload", Err: err}
	}

	now := s.now()
	doc := &model.Document{
		ID:             uuid.New().String(),
		Name:           in.Name,
		TypeID:         in.TypeID,
		Category:       in.Category,
		FileURL:        objInfo.Key,
		FileName:       filepath.Base(in.OriginalFilename),
		FileSize:       objInfo.Size,
		ExpirationDate: in.ExpirationDate,
		Status:         model.Classify(in.ExpirationDate, now),
		VehicleID:      in.VehicleID,
		PersonnelID:    in.PersonnelID,
		ClientID:       in.ClientID,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	stored, err := s.repo.Create(ctx, doc)
	if err != nil {
		// Rollback: delete the object from storage
		if delErr := s.store.Delete(ctx, key); delErr != nil {
			return nil, fmt.Errorf("db save failed: %v; rollback delete failed: %v", err, delErr)
		}
		return nil, err
	}
	s.syncStatuses(ctx, now, "upload")
	return stored, nil
}

// syncStatuses runs the full reconciliation after a mutation so rows that
// drifted since the last daily run catch up too. The mutation has already
// committed, so a failed sync is logged rather than surfaced.
func (s *documentService) syncStatuses(ctx context.Context, now time.Time, op string) {
	if _, err := s.syncer.Run(ctx, now); err != nil {
		s.logger.Warn().Err(err).Str("after", op).Msg("status sync failed")
	}
}

func (s *documentService) Get(ctx context.Context, id string) (*model.Document, error) {
	if id == "" {
		return nil, model.NewValidationError("id", "id is required")
	}
	return s.repo.FindByID(ctx, id)
}

func (s *documentService) List(ctx context.Context, f repository.DocumentFilter) ([]model.Document, error) {
	if f.Category != "" && !f.Category.Valid() {
		return nil, model.NewValidationError("category", "must be vehicle or personnel")
	}
	if f.Status != "" && !f.Status.Valid() {
		return nil, model.NewValidationError("status", "must be valid, warning, or expired")
	}
	return s.repo.List(ctx, f)
}

func (s *documentService) Update(ctx context.Context, id string, in UpdateDocumentInput) (*model.Document, error) {
	if id == "" {
		return nil, model.NewValidationError("id", "id is required")
	}
	doc, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Name != "" {
		doc.Name = in.Name
	}
	if in.ClearExpiration {
		doc.ExpirationDate = nil
	} else if in.ExpirationDate != nil {
		doc.ExpirationDate = in.ExpirationDate
	}

	now := s.now()
	doc.Status = model.Classify(doc.ExpirationDate, now)
	doc.UpdatedAt = now
	return s.repo.Update(ctx, doc)
}

func (s *documentService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return model.NewValidationError("id", "id is required")
	}
	doc, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	// Delete from storage first; if that fails the row keeps pointing at a
	// live object instead of the other way around.
	if err := s.store.Delete(ctx, doc.FileURL); err != nil {
		return &model.StorageError{Op: "documents.delete", Err: err}
	}
	return s.repo.Delete(ctx, id)
}

func (s *documentService) Replace(ctx context.Context, id string, in ReplaceDocumentInput) (*model.Document, error) {
	if id == "" {
		return nil, model.NewValidationError("id", "id is required")
	}
	if in.Reader == nil {
		return nil, model.NewValidationError("file", "file content is required")
	}
	if err := s.validateFile(in.ContentType, in.Size); err != nil {
		return nil, err
	}

	doc, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	key := storage.DocumentKey(uuid.New().String(), in.OriginalFilename)
	objInfo, err := s.store.Put(ctx, key, in.Reader, storage.PutObjectOptions{
		Size:        in.Size,
		ContentType: in.ContentType,
		Metadata: map[string]string{
			"original-filename": in.OriginalFilename,
		},
	})
	if err != nil {
		return nil, &model.StorageError{Op: "documents.replace", Err: err}
	}

	now := s.now()
	rec := &model.ReplacementRecord{
		ID:                     uuid.New().String(),
		DocumentID:             doc.ID,
		PreviousFileURL:        doc.FileURL,
		PreviousFileName:       doc.FileName,
		PreviousExpirationDate: doc.ExpirationDate,
		ReplacedBy:             in.ReplacedBy,
		ReplacedAt:             now,
	}

	doc.FileURL = objInfo.Key
	doc.FileName = filepath.Base(in.OriginalFilename)
	doc.FileSize = objInfo.Size
	doc.ExpirationDate = in.ExpirationDate
	doc.Status = model.Classify(in.ExpirationDate, now)
	doc.UpdatedAt = now

	stored, err := s.repo.Replace(ctx, rec, doc)
	if err != nil {
		// Compensate: the new object must not outlive a failed swap.
		if delErr := s.store.Delete(ctx, key); delErr != nil {
			return nil, fmt.Errorf("replace failed: %v; rollback delete failed: %v", err, delErr)
		}
		return nil, err
	}
	// The previous object is intentionally kept so history downloads work.
	s.syncStatuses(ctx, now, "replace")
	return stored, nil
}

func (s *documentService) History(ctx context.Context, id string) ([]model.ReplacementRecord, error) {
	if id == "" {
		return nil, model.NewValidationError("id", "id is required")
	}
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return nil, err
	}
	return s.repo.History(ctx, id)
}

func (s *documentService) DownloadURL(ctx context.Context, id string) (string, error) {
	if id == "" {
		return "", model.NewValidationError("id", "id is required")
	}
	doc, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return "", err
	}
	u, err := s.store.PresignGet(ctx, doc.FileURL, downloadExpiry)
	if err != nil {
		return "", &model.StorageError{Op: "documents.download", Err: err}
	}
	return u, nil
}

func (s *documentService) ListTypes(ctx context.Context, category model.Category) ([]model.DocumentType, error) {
	if category != "" && !category.Valid() {
		return nil, model.NewValidationError("category", "must be vehicle or personnel")
	}
	return s.types.List(ctx, category)
}

// validateOwner enforces the exactly-one-owner rule: a vehicle document names
// a vehicle and no person, a personnel document the reverse.
func validateOwner(category model.Category, vehicleID, personnelID *string) error {
	switch category {
	case model.CategoryVehicle:
		if vehicleID == nil || *vehicleID == "" {
			return model.NewValidationError("vehicle_id", "vehicle documents require vehicle_id")
		}
		if personnelID != nil {
			return model.NewValidationError("personnel_id", "vehicle documents cannot name personnel")
		}
	case model.CategoryPersonnel:
		if personnelID == nil || *personnelID == "" {
			return model.NewValidationError("personnel_id", "personnel documents require personnel_id")
		}
		if vehicleID != nil {
			return model.NewValidationError("vehicle_id", "personnel documents cannot name a vehicle")
		}
	}
	return nil
}
