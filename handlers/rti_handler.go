package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/Vigneshwaren333/LexComply/database"
	"github.com/Vigneshwaren333/LexComply/models"
	"github.com/Vigneshwaren333/LexComply/storage"
)

type RTIHandler struct {
	db    *database.Database
	store *storage.Store
}

func NewRTIHandler(db *database.Database, store *storage.Store) *RTIHandler {
	return &RTIHandler{db: db, store: store}
}

type rtiPayload struct {
	FullName            string
	Email               string
	Phone               string
	IDProofType         string
	PublicAuthority     string
	SubjectMatter       string
	InformationRequired string
	TimePeriodStart     string // optional
	TimePeriodEnd       string
}

func readRTIPayload(c echo.Context) *rtiPayload {
	trim := func(k string) string { return strings.TrimSpace(c.FormValue(k)) }
	return &rtiPayload{
		FullName:            trim("fullName"),
		Email:               strings.ToLower(trim("email")),
		Phone:               trim("phone"),
		IDProofType:         trim("idProofType"),
		PublicAuthority:     trim("publicAuthority"),
		SubjectMatter:       trim("subjectMatter"),
		InformationRequired: trim("informationRequired"),
		TimePeriodStart:     trim("timePeriodStart"),
		TimePeriodEnd:       trim("timePeriodEnd"),
	}
}

// validateRTI returns the first failed rule, or "" when the payload is
// acceptable. It must not touch disk or database.
func validateRTI(p *rtiPayload) string {
	if p.FullName == "" || p.Email == "" || p.Phone == "" || p.IDProofType == "" ||
		p.PublicAuthority == "" || p.SubjectMatter == "" || p.InformationRequired == "" {
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

// POST /api/rti/submit  (multipart, optional documents[])
func (h *RTIHandler) Submit(c echo.Context) error {
	p := readRTIPayload(c)
	if msg := validateRTI(p); msg != "" {
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
		slog.Error("failed to stage RTI documents", "error", err)
		return c.JSON(http.StatusInternalServerError, map[string]any{"success": false, "error": "Failed to submit application"})
	}

	rec := models.RTIApplication{
		FullName:            p.FullName,
		Email:               p.Email,
		Phone:               p.Phone,
		IDProofType:         p.IDProofType,
		PublicAuthority:     p.PublicAuthority,
		SubjectMatter:       p.SubjectMatter,
		InformationRequired: p.InformationRequired,
		TimePeriodStart:     p.TimePeriodStart,
		TimePeriodEnd:       p.TimePeriodEnd,
		DocumentPaths:       joinPaths(paths),
		Status:              models.StatusPending,
	}
	err = insertWithFreshID(h.db.DB, "RTI", func(id string) { rec.ApplicationID = id }, &rec)
	if err != nil {
		slog.Error("failed to insert RTI application", "error", err)
		h.store.Remove(paths)
		return c.JSON(http.StatusInternalServerError, map[string]any{"success": false, "error": "Failed to submit application"})
	}

	return c.JSON(http.StatusOK, map[string]any{
		"success":       true,
		"applicationId": rec.ApplicationID,
		"message":       "RTI application submitted successfully",
	})
}

// GET /api/rti/status/:applicationId
func (h *RTIHandler) Status(c echo.Context) error {
	appID := strings.TrimSpace(c.Param("applicationId"))

	var rec models.RTIApplication
	if err := h.db.Where("application_id = ?", appID).First(&rec).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(http.StatusNotFound, map[string]any{"success": false, "message": "Application not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]any{"success": false, "message": "Failed to fetch application status"})
	}

	return c.JSON(http.StatusOK, map[string]any{"success": true, "application": rec})
}

// GET /api/rti/applications/:email  (bearer token, own email only)
func (h *RTIHandler) ListByEmail(c echo.Context) error {
	email := strings.ToLower(strings.TrimSpace(c.Param("email")))

	tokenEmail, _ := c.Get("email").(string)
	if tokenEmail == "" || !strings.EqualFold(tokenEmail, email) {
		return c.JSON(http.StatusForbidden, map[string]any{"success": false, "message": "Forbidden"})
	}

	var rows []models.RTIApplication
	if err := h.db.Where("email = ?", email).Order("created_at DESC").Find(&rows).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"success": false, "message": "Failed to fetch applications"})
	}

	return c.JSON(http.StatusOK, map[string]any{"success": true, "applications": rows})
}
