package database

import (
	"errors"

	"github.com/awantha2003/portfolio-backend/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProjectRepo struct {
	db *gorm.DB
}

func NewProjectRepo(db *gorm.DB) *ProjectRepo {
	return &ProjectRepo{db}
}

// FindAll returns all projects from the database
func (r *ProjectRepo) FindAll() ([]models.Project, error) {
	var projects []models.Project
	err := r.db.Find(&projects).Error
	return projects, err
}

// FindPublic returns public projects with pinned ones first.
func (r *ProjectRepo) FindPublic() ([]models.Project, error) {
	var projects []models.Project
	err := r.db.
		Where("is_public = ?", true).
		Order("pinned DESC, id DESC").
		Find(&projects).Error
	return projects, err
}

// FindByID returns a project by its ID, or nil when no row matches.
func (r *ProjectRepo) FindByID(id uuid.UUID) (*models.Project, error) {
	var project models.Project
	err := r.db.First(&project, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// Add inserts a new project into the database
func (r *ProjectRepo) Add(project *models.Project) error {
	return r.db.Create(project).Error
}

// Update updates an existing project in the database
func (r *ProjectRepo) Update(project *models.Project) error {
	return r.db.Save(project).Error
}

// Delete removes a project from the database by id
func (r *ProjectRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Project{}, "id = ?", id).Error
}
