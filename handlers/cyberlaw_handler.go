package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/Vigneshwaren333/LexComply/database"
	"github.com/Vigneshwaren333/LexComply/models"
	"github.com/Vigneshwaren333/LexComply/storage"
)

type CyberlawHandler struct {
	db    *database.Database
	store *storage.Store
}

func NewCyberlawHandler(db *database.Database, store *storage.Store) *CyberlawHandler {
	return &CyberlawHandler{db: db, store: store}
}

type cyberlawPayload struct {
	FullName        string
	Email           string
	Phone           string
	ApplicationType string
	Subject         string
	Description     string
}

func readCyberlawPayload(c echo.Context) *cyberlawPayload {
	trim := func(k string) string { return strings.TrimSpace(c.FormValue(k)) }
	return &cyberlawPayload{
		FullName:        trim("fullName"),
		Email:           strings.ToLower(trim("email")),
		Phone:           trim("phone"),
		ApplicationType: trim("applicationType"),
		Subject:         trim("subject"),
		Description:     trim("description"),
	}
}

func validateCyberlaw(p *cyberlawPayload) string {
	if p.FullName == "" || p.Email == "" || p.Phone == "" ||
		p.ApplicationType == "" || p.Subject == "" || p.Description == "" {
		return "All required fields must be filled"
	}
	if !reEmail.MatchString(p.Email) {
		return "Invalid email format"
	}
	if !rePhone.MatchString(p.Phone) {
		return "Invalid phone number format"
	}
	return ""
}

// POST /api/cyberlaw/submit  (multipart, optional documents[])
func (h *CyberlawHandler) Submit(c echo.Context) error {
	p := readCyberlawPayload(c)
	if msg := validateCyberlaw(p); msg != "" {
		return c.JSON(http.StatusBadRequest, map[string]any{"success": false, "message": msg})
	}

	form, err := c.MultipartForm()
	if err != nil && !errors.Is(err, http.ErrNotMultipart) {
		return c.JSON(http.StatusBadRequest, map[string]any{"success": false, "message": "Invalid multipart form"})
	}

	paths, err := h.store.SaveAll(form, "documents")
	if err != nil {
		var ue *storage.UploadError
		if errors.As(err, &ue) {
			return c.JSON(http.StatusBadRequest, map[string]any{"success": false, "message": ue.Message})
		}
		slog.Error("failed to stage cyberlaw documents", "error", err)
		return c.JSON(http.StatusInternalServerError, map[string]any{"success": false, "message": "Failed to submit application"})
	}

	rec := models.CyberlawApplication{
		FullName:        p.FullName,
		Email:           p.Email,
		Phone:           p.Phone,
		ApplicationType: p.ApplicationType,
		Subject:         p.Subject,
		Description:     p.Description,
		DocumentPaths:   joinPaths(paths),
		Status:          models.StatusPending,
	}
	err = insertWithFreshID(h.db.DB, "CL", func(id string) { rec.ApplicationID = id }, &rec)
	if err != nil {
		slog.Error("failed to insert cyberlaw application", "error", err)
		h.store.Remove(paths)
		return c.JSON(http.StatusInternalServerError, map[string]any{"success": false, "message": "Failed to submit application"})
	}

	return c.JSON(http.StatusOK, map[string]any{
		"success":       true,
		"applicationId": rec.ApplicationID,
		"message":       "Application submitted successfully",
	})
}
