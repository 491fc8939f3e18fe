package models

import "time"

// StatusPending is the only lifecycle status this service ever writes;
// later transitions happen administratively, outside the portal.
const StatusPending = "Pending"

type RTIApplication struct {
	ID                  uint      `json:"id" gorm:"primaryKey"`
	ApplicationID       string    `json:"application_id" gorm:"uniqueIndex;size:20;not null"` // RTI-YYYY-NNNN
	FullName            string    `json:"full_name" gorm:"size:120;not null"`
	Email               string    `json:"email" gorm:"index;size:160;not null"`
	Phone               string    `json:"phone" gorm:"size:10;not null"`
	IDProofType         string    `json:"id_proof_type" gorm:"size:40;not null"`
	PublicAuthority     string    `json:"public_authority" gorm:"size:200;not null"`
	SubjectMatter       string    `json:"subject_matter" gorm:"size:200;not null"`
	InformationRequired string    `json:"information_required" gorm:"type:text;not null"`
	TimePeriodStart     string    `json:"time_period_start" gorm:"size:10"` // YYYY-MM-DD, optional
	TimePeriodEnd       string    `json:"time_period_end" gorm:"size:10"`
	DocumentPaths       *string   `json:"document_paths" gorm:"type:text"` // comma-joined staging paths
	Status              string    `json:"status" gorm:"size:20;not null"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}
