package repositories

import "storefront/internal/models"

// BlogRepository defines the interface for blog post data access.
type BlogRepository interface {
	GetPublished() ([]models.BlogPost, error)
	GetAll() ([]models.BlogPost, error)
	GetBySlug(slug string) (*models.BlogPost, error)
	Create(post *models.BlogPost) error
	Update(post *models.BlogPost) error
	Delete(id string) error
}
