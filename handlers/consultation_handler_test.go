package handlers

import (
	"net/http"
	"regexp"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Vigneshwaren333/LexComply/models"
)

var consIDPattern = regexp.MustCompile(`^CONS-\d{4}-\d{4}$`)

func validConsultation() map[string]string {
	return map[string]string{
		"name":     "Arjun Menon",
		"email":    "arjun@example.com",
		"phone":    "9012345678",
		"caseType": "property-dispute",
		"urgency":  "high",
		"message":  "Need advice on an ancestral property partition dispute.",
	}
}

func newConsultationAPI(t *testing.T) (*echo.Echo, *ConsultationHandler) {
	db := openTestDB(t)
	h := NewConsultationHandler(db)
	e := echo.New()
	e.POST("/api/consultation/submit", h.Submit)
	return e, h
}

func TestConsultationSubmit(t *testing.T) {
	e, h := newConsultationAPI(t)

	rec := doJSON(e, http.MethodPost, "/api/consultation/submit", validConsultation())
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	resp := decode(t, rec)
	assert.Equal(t, true, resp["success"])
	consID, _ := resp["consultationId"].(string)
	assert.Regexp(t, consIDPattern, consID)

	var row models.Consultation
	require.NoError(t, h.db.Where("consultation_id = ?", consID).First(&row).Error)
	assert.Equal(t, models.StatusPending, row.Status)
	assert.Equal(t, "high", row.Urgency)
}

func TestConsultationSubmitValidation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(map[string]string)
		wantMsg string
	}{
		{
			name:    "missing message",
			mutate:  func(f map[string]string) { delete(f, "message") },
			wantMsg: "All fields are required",
		},
		{
			name:    "missing urgency",
			mutate:  func(f map[string]string) { f["urgency"] = " " },
			wantMsg: "All fields are required",
		},
		{
			name:    "invalid email",
			mutate:  func(f map[string]string) { f["email"] = "arjun at example.com" },
			wantMsg: "Invalid email format",
		},
		{
			name:    "invalid phone",
			mutate:  func(f map[string]string) { f["phone"] = "90123" },
			wantMsg: "Invalid phone number format",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, h := newConsultationAPI(t)
			body := validConsultation()
			tt.mutate(body)

			rec := doJSON(e, http.MethodPost, "/api/consultation/submit", body)
			require.Equal(t, http.StatusBadRequest, rec.Code)
			resp := decode(t, rec)
			assert.Equal(t, false, resp["success"])
			assert.Equal(t, tt.wantMsg, resp["error"])

			var n int64
			require.NoError(t, h.db.Model(&models.Consultation{}).Count(&n).Error)
			assert.Zero(t, n)
		})
	}
}
