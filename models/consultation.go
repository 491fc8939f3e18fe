package models

import "time"

type Consultation struct {
	ID             uint      `json:"id" gorm:"primaryKey"`
	ConsultationID string    `json:"consultation_id" gorm:"uniqueIndex;size:20;not null"` // CONS-YYYY-NNNN
	Name           string    `json:"name" gorm:"size:120;not null"`
	Email          string    `json:"email" gorm:"index;size:160;not null"`
	Phone          string    `json:"phone" gorm:"size:10;not null"`
	CaseType       string    `json:"case_type" gorm:"size:60;not null"`
	Urgency        string    `json:"urgency" gorm:"size:20;not null"` // low/medium/high
	Message        string    `json:"message" gorm:"type:text;not null"`
	Status         string    `json:"status" gorm:"size:20;not null"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
