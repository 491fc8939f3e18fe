package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/Vigneshwaren333/LexComply/database"
	"github.com/Vigneshwaren333/LexComply/models"
)

type ConsultationHandler struct {
	db *database.Database
}

func NewConsultationHandler(db *database.Database) *ConsultationHandler {
	return &ConsultationHandler{db: db}
}

type consultationPayload struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	CaseType string `json:"caseType"`
	Urgency  string `json:"urgency"`
	Message  string `json:"message"`
}

func (p *consultationPayload) normalize() {
	p.Name = strings.TrimSpace(p.Name)
	p.Email = strings.ToLower(strings.TrimSpace(p.Email))
	p.Phone = strings.TrimSpace(p.Phone)
	p.CaseType = strings.TrimSpace(p.CaseType)
	p.Urgency = strings.TrimSpace(p.Urgency)
	p.Message = strings.TrimSpace(p.Message)
}

func validateConsultation(p *consultationPayload) string {
	if p.Name == "" || p.Email == "" || p.Phone == "" ||
		p.CaseType == "" || p.Urgency == "" || p.Message == "" {
		return "All fields are required"
	}
	if !reEmail.MatchString(p.Email) {
		return "Invalid email format"
	}
	if !rePhone.MatchString(p.Phone) {
		return "Invalid phone number format"
	}
	return ""
}

// POST /api/consultation/submit
func (h *ConsultationHandler) Submit(c echo.Context) error {
	var p consultationPayload
	if err := c.Bind(&p); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"success": false, "error": "Invalid request body"})
	}
	p.normalize()

	if msg := validateConsultation(&p); msg != "" {
		return c.JSON(http.StatusBadRequest, map[string]any{"success": false, "error": msg})
	}

	rec := models.Consultation{
		Name:     p.Name,
		Email:    p.Email,
		Phone:    p.Phone,
		CaseType: p.CaseType,
		Urgency:  p.Urgency,
		Message:  p.Message,
		Status:   models.StatusPending,
	}
	err := insertWithFreshID(h.db.DB, "CONS", func(id string) { rec.ConsultationID = id }, &rec)
	if err != nil {
		slog.Error("failed to insert consultation request", "error", err)
		return c.JSON(http.StatusInternalServerError, map[string]any{"success": false, "error": "Failed to submit consultation request"})
	}

	return c.JSON(http.StatusOK, map[string]any{
		"success":        true,
		"consultationId": rec.ConsultationID,
		"message":        "Consultation request submitted successfully",
	})
}
