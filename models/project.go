package models

import "github.com/google/uuid"

// Project categories offered by the admin form.
const (
	CategoryAcademic = "Academic Project"
	CategoryPersonal = "Personal Project"
	CategoryClient   = "Client Project"
)

// Project represents a portfolio project with display metadata
type Project struct {
	ID          uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	Title       string    `json:"title" db:"title" gorm:"type:text;not null"`
	Description string    `json:"description" db:"description" gorm:"type:text;not null;default:''"`
	DisplayDate string    `json:"displayDate" db:"display_date" gorm:"type:text;not null;default:''"`
	IsPublic    bool      `json:"isPublic" db:"is_public" gorm:"not null;default:false"`
	ImageURL    string    `json:"imageUrl" db:"image_url" gorm:"type:text;not null;default:''"`
	GithubURL   string    `json:"githubUrl" db:"github_url" gorm:"type:text;not null;default:''"`
	LiveURL     string    `json:"liveUrl" db:"live_url" gorm:"type:text;not null;default:''"`
	TechStack   string    `json:"techStack" db:"tech_stack" gorm:"type:text;not null;default:''"`
	Category    string    `json:"category" db:"category" gorm:"type:text;not null;default:''"`
	Country     string    `json:"country" db:"country" gorm:"type:text;not null;default:''"`
	Pinned      bool      `json:"pinned" db:"pinned" gorm:"not null;default:false"`
}
