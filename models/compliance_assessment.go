package models

import "time"

type ComplianceAssessment struct {
	ID               uint      `json:"id" gorm:"primaryKey"`
	ApplicationID    string    `json:"application_id" gorm:"uniqueIndex;size:20;not null"` // COMP-YYYY-NNNN
	OrganizationName string    `json:"organization_name" gorm:"size:200;not null"`
	IndustryType     string    `json:"industry_type" gorm:"size:60;not null"`
	ComplianceAreas  string    `json:"compliance_areas" gorm:"type:text;not null"` // JSON map of area -> selected
	Challenges       string    `json:"challenges" gorm:"type:text;not null"`
	Status           string    `json:"status" gorm:"size:20;not null"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}
