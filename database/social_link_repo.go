package database

import (
	"errors"

	"github.com/awantha2003/portfolio-backend/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SocialLinkRepo struct {
	db *gorm.DB
}

func NewSocialLinkRepo(db *gorm.DB) *SocialLinkRepo {
	return &SocialLinkRepo{db}
}

// FindActive returns active links in display order. The server owns the
// ordering; clients render the list as returned.
func (r *SocialLinkRepo) FindActive() ([]models.SocialLink, error) {
	var links []models.SocialLink
	err := r.db.
		Where("active = ?", true).
		Order("sort_order ASC, id ASC").
		Find(&links).Error
	return links, err
}

// FindAll returns every link, active or not, in display order.
func (r *SocialLinkRepo) FindAll() ([]models.SocialLink, error) {
	var links []models.SocialLink
	err := r.db.Order("sort_order ASC, id ASC").Find(&links).Error
	return links, err
}

// FindByID returns a link by its ID, or nil when no row matches.
func (r *SocialLinkRepo) FindByID(id uuid.UUID) (*models.SocialLink, error) {
	var link models.SocialLink
	err := r.db.First(&link, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &link, nil
}

// Add inserts a new social link into the database
func (r *SocialLinkRepo) Add(link *models.SocialLink) error {
	return r.db.Create(link).Error
}

// Update updates an existing social link in the database
func (r *SocialLinkRepo) Update(link *models.SocialLink) error {
	return r.db.Save(link).Error
}

// Delete removes a social link from the database by id
func (r *SocialLinkRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.SocialLink{}, "id = ?", id).Error
}
