package handler

import (
	"mime/multipart"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"docuflota/internal/model"
	"docuflota/internal/repository"
	"docuflota/internal/service"
)

const dateLayout = "2006-01-02"

// parseDateField parses an optional YYYY-MM-DD form value.
func parseDateField(v string) (*time.Time, error) {
	if v == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, v)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func optionalID(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}

func openUpload(c *fiber.Ctx) (*multipart.FileHeader, multipart.File, string, error) {
	fh, err := c.FormFile("file")
	if err != nil {
		return nil, nil, "", err
	}
	f, err := fh.Open()
	if err != nil {
		return nil, nil, "", err
	}
	ct := fh.Header.Get("Content-Type")
	if ct == "" {
		ct = "application/octet-stream"
	}
	return fh, f, ct, nil
}

// ListDocuments serves GET /documents with category, status, vehicle_id, and
// personnel_id filters.
func ListDocuments(svc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		filter := repository.DocumentFilter{
			Category:    model.Category(c.Query("category")),
			Status:      model.Status(c.Query("status")),
			VehicleID:   c.Query("vehicle_id"),
			PersonnelID: c.Query("personnel_id"),
		}
		docs, err := svc.List(c.UserContext(), filter)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(fiber.Map{"data": docs, "total": len(docs)})
	}
}

// UploadDocument serves POST /documents (multipart/form-data, field "file"
// plus the metadata fields).
func UploadDocument(svc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		fh, f, ct, err := openUpload(c)
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_REQUIRED", "file is required")
		}
		defer f.Close()

		exp, err := parseDateField(c.FormValue("expiration_date"))
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_DATE", "expiration_date must be YYYY-MM-DD")
		}

		doc, err := svc.Upload(c.UserContext(), service.UploadDocumentInput{
			Name:             c.FormValue("name"),
			TypeID:           c.FormValue("type_id"),
			Category:         model.Category(c.FormValue("category")),
			VehicleID:        optionalID(c.FormValue("vehicle_id")),
			PersonnelID:      optionalID(c.FormValue("personnel_id")),
			ClientID:         c.FormValue("client_id"),
			ExpirationDate:   exp,
			Reader:           f,
			OriginalFilename: fh.Filename,
			ContentType:      ct,
			Size:             fh.Size,
		})
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(doc)
	}
}

// GetDocument serves GET /documents/:id.
func GetDocument(svc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if _, err := uuid.Parse(id); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		doc, err := svc.Get(c.UserContext(), id)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(doc)
	}
}

type updateDocumentRequest struct {
	Name            string  `json:"name"`
	ExpirationDate  *string `json:"expiration_date"`
	ClearExpiration bool    `json:"clear_expiration"`
}

// UpdateDocument serves PUT /documents/:id.
func UpdateDocument(svc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if _, err := uuid.Parse(id); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}

		var req updateDocumentRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "malformed request body")
		}

		in := service.UpdateDocumentInput{
			Name:            req.Name,
			ClearExpiration: req.ClearExpiration,
		}
		if req.ExpirationDate != nil {
			exp, err := parseDateField(*req.ExpirationDate)
			if err != nil {
				return writeError(c, fiber.StatusBadRequest, "INVALID_DATE", "expiration_date must be YYYY-MM-DD")
			}
			in.ExpirationDate = exp
		}

		doc, err := svc.Update(c.UserContext(), id, in)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(doc)
	}
}

// DeleteDocument serves DELETE /documents/:id.
func DeleteDocument(svc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if _, err := uuid.Parse(id); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		if err := svc.Delete(c.UserContext(), id); err != nil {
			return writeServiceError(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

// ReplaceDocument serves POST /documents/:id/replace (multipart). The current
// file is snapshotted into the history and the renewed one takes its place.
func ReplaceDocument(svc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if _, err := uuid.Parse(id); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}

		fh, f, ct, err := openUpload(c)
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_REQUIRED", "file is required")
		}
		defer f.Close()

		exp, err := parseDateField(c.FormValue("expiration_date"))
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_DATE", "expiration_date must be YYYY-MM-DD")
		}

		doc, err := svc.Replace(c.UserContext(), id, service.ReplaceDocumentInput{
			Reader:           f,
			OriginalFilename: fh.Filename,
			ContentType:      ct,
			Size:             fh.Size,
			ExpirationDate:   exp,
			ReplacedBy:       c.FormValue("replaced_by"),
		})
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(doc)
	}
}

// DocumentHistory serves GET /documents/:id/history, newest first.
func DocumentHistory(svc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if _, err := uuid.Parse(id); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		recs, err := svc.History(c.UserContext(), id)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(fiber.Map{"data": recs, "total": len(recs)})
	}
}

// DownloadDocument serves GET /documents/:id/download, redirecting to a
// time-limited object URL.
func DownloadDocument(svc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if _, err := uuid.Parse(id); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		u, err := svc.DownloadURL(c.UserContext(), id)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.Redirect(u, fiber.StatusFound)
	}
}

// ListDocumentTypes serves GET /document-types with an optional category
// filter.
func ListDocumentTypes(svc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		types, err := svc.ListTypes(c.UserContext(), model.Category(c.Query("category")))
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(fiber.Map{"data": types, "total": len(types)})
	}
}
