package database

import (
	"errors"

	"github.com/awantha2003/portfolio-backend/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProjectCommentRepo struct {
	db *gorm.DB
}

func NewProjectCommentRepo(db *gorm.DB) *ProjectCommentRepo {
	return &ProjectCommentRepo{db}
}

// FindApprovedByProject returns a project's approved comments, newest first.
func (r *ProjectCommentRepo) FindApprovedByProject(projectID uuid.UUID) ([]models.ProjectComment, error) {
	var comments []models.ProjectComment
	err := r.db.
		Where("project_id = ? AND approved = ?", projectID, true).
		Order("created_at DESC").
		Find(&comments).Error
	return comments, err
}

// FindPending returns all unapproved comments, newest first.
func (r *ProjectCommentRepo) FindPending() ([]models.ProjectComment, error) {
	var comments []models.ProjectComment
	err := r.db.
		Where("approved = ?", false).
		Order("created_at DESC").
		Find(&comments).Error
	return comments, err
}

// FindByID returns a comment by its ID, or nil when no row matches.
func (r *ProjectCommentRepo) FindByID(id uuid.UUID) (*models.ProjectComment, error) {
	var comment models.ProjectComment
	err := r.db.First(&comment, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

// Add inserts a new comment into the database
func (r *ProjectCommentRepo) Add(comment *models.ProjectComment) error {
	return r.db.Create(comment).Error
}

// Update updates an existing comment in the database
func (r *ProjectCommentRepo) Update(comment *models.ProjectComment) error {
	return r.db.Save(comment).Error
}

// Delete removes a comment from the database by id
func (r *ProjectCommentRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.ProjectComment{}, "id = ?", id).Error
}
