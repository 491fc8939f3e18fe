package models

import "time"

type CyberlawApplication struct {
	ID              uint      `json:"id" gorm:"primaryKey"`
	ApplicationID   string    `json:"application_id" gorm:"uniqueIndex;size:20;not null"` // CL-YYYY-NNNN
	FullName        string    `json:"full_name" gorm:"size:120;not null"`
	Email           string    `json:"email" gorm:"index;size:160;not null"`
	Phone           string    `json:"phone" gorm:"size:10;not null"`
	ApplicationType string    `json:"application_type" gorm:"size:60;not null"` // cybercrime complaint / data breach / ...
	Subject         string    `json:"subject" gorm:"size:200;not null"`
	Description     string    `json:"description" gorm:"type:text"`
	DocumentPaths   *string   `json:"document_paths" gorm:"type:text"`
	Status          string    `json:"status" gorm:"size:20;not null"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
