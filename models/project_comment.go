package models

import (
	"time"

	"github.com/google/uuid"
)

// ProjectComment is visitor feedback on a public project. Comments are
// created unapproved and only appear on the public endpoint once an admin
// approves them.
type ProjectComment struct {
	ID        uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	ProjectID uuid.UUID `json:"projectId" db:"project_id" gorm:"type:uuid;not null;index"`
	Name      string    `json:"name" db:"name" gorm:"type:text;not null"`
	Email     *string   `json:"email,omitempty" db:"email" gorm:"type:text"`
	Message   string    `json:"message" db:"message" gorm:"type:text;not null"`
	Approved  bool      `json:"approved" db:"approved" gorm:"not null;default:false"`
	CreatedAt time.Time `json:"createdAt" db:"created_at" gorm:"type:timestamp;not null;autoCreateTime"`
}
