package database

import (
	"errors"

	"github.com/awantha2003/portfolio-backend/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TaskRepo struct {
	db *gorm.DB
}

func NewTaskRepo(db *gorm.DB) *TaskRepo {
	return &TaskRepo{db}
}

// FindAll returns every task, newest first.
func (r *TaskRepo) FindAll() ([]models.Task, error) {
	var tasks []models.Task
	err := r.db.Order("created_at DESC").Find(&tasks).Error
	return tasks, err
}

// FindByID returns a task by its ID, or nil when no row matches.
func (r *TaskRepo) FindByID(id uuid.UUID) (*models.Task, error) {
	var task models.Task
	err := r.db.First(&task, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &task, nil
}

// Add inserts a new task into the database
func (r *TaskRepo) Add(task *models.Task) error {
	return r.db.Create(task).Error
}

// Update updates an existing task in the database
func (r *TaskRepo) Update(task *models.Task) error {
	return r.db.Save(task).Error
}

// UpdateAll saves a batch of modified tasks, used by the carry-forward pass.
func (r *TaskRepo) UpdateAll(tasks []models.Task) error {
	if len(tasks) == 0 {
		return nil
	}
	return r.db.Save(&tasks).Error
}

// Delete removes a task from the database by id
func (r *TaskRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Task{}, "id = ?", id).Error
}
