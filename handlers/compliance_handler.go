package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/labstack/echo/v4"

	"github.com/Vigneshwaren333/LexComply/database"
	"github.com/Vigneshwaren333/LexComply/models"
)

type ComplianceHandler struct {
	db *database.Database
}

func NewComplianceHandler(db *database.Database) *ComplianceHandler {
	return &ComplianceHandler{db: db}
}

type compliancePayload struct {
	OrganizationName string          `json:"organizationName"`
	IndustryType     string          `json:"industryType"`
	ComplianceAreas  map[string]bool `json:"complianceAreas"`
	Challenges       string          `json:"challenges"`
}

func (p *compliancePayload) normalize() {
	p.OrganizationName = strings.TrimSpace(p.OrganizationName)
	p.IndustryType = strings.TrimSpace(p.IndustryType)
	p.Challenges = strings.TrimSpace(p.Challenges)
}

// validateCompliance checks one rule at a time so each failure keeps its
// own message; the length boundaries are inclusive (2 and 20 pass) and
// count characters, not bytes, so non-ASCII input measures the same as
// it does in the browser.
func validateCompliance(p *compliancePayload) string {
	if p.OrganizationName == "" {
		return "Organization name is required"
	}
	if utf8.RuneCountInString(p.OrganizationName) < 2 {
		return "Organization name must be at least 2 characters"
	}
	if p.IndustryType == "" {
		return "Industry type is required"
	}
	anySelected := false
	for _, v := range p.ComplianceAreas {
		if v {
			anySelected = true
			break
		}
	}
	if !anySelected {
		return "At least one compliance area must be selected"
	}
	if utf8.RuneCountInString(p.Challenges) < 20 {
		return "Please provide more detailed challenges (minimum 20 characters)"
	}
	return ""
}

// POST /api/compliance-assessment
func (h *ComplianceHandler) Submit(c echo.Context) error {
	var p compliancePayload
	if err := c.Bind(&p); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"success": false, "error": "Invalid request body"})
	}
	p.normalize()

	if msg := validateCompliance(&p); msg != "" {
		return c.JSON(http.StatusBadRequest, map[string]any{"success": false, "error": msg})
	}

	areas, err := json.Marshal(p.ComplianceAreas)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"success": false, "error": "Invalid compliance areas"})
	}

	rec := models.ComplianceAssessment{
		OrganizationName: p.OrganizationName,
		IndustryType:     p.IndustryType,
		ComplianceAreas:  string(areas),
		Challenges:       p.Challenges,
		Status:           models.StatusPending,
	}
	err = insertWithFreshID(h.db.DB, "COMP", func(id string) { rec.ApplicationID = id }, &rec)
	if err != nil {
		slog.Error("failed to insert compliance assessment", "error", err)
		return c.JSON(http.StatusInternalServerError, map[string]any{"success": false, "error": "Failed to submit compliance assessment. Please try again later."})
	}

	return c.JSON(http.StatusOK, map[string]any{
		"success":       true,
		"applicationId": rec.ApplicationID,
		"message":       "Compliance assessment submitted successfully",
	})
}
