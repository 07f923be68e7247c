package repositories

import (
	"errors"
	"fmt"

	"storefront/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMBlogRepository is a GORM implementation of BlogRepository.
type GORMBlogRepository struct {
	db *gorm.DB
}

// NewGORMBlogRepository creates a new instance of GORMBlogRepository.
func NewGORMBlogRepository(db *gorm.DB) *GORMBlogRepository {
	return &GORMBlogRepository{
		db: db,
	}
}

// GetPublished retrieves all published posts, newest first.
func (r *GORMBlogRepository) GetPublished() ([]models.BlogPost, error) {
	var posts []models.BlogPost
	if err := r.db.Where("published = ?", true).Order("published_at DESC").Find(&posts).Error; err != nil {
		return nil, fmt.Errorf("failed to get published posts: %w", err)
	}
	return posts, nil
}

// GetAll retrieves all posts, drafts included.
func (r *GORMBlogRepository) GetAll() ([]models.BlogPost, error) {
	var posts []models.BlogPost
	if err := r.db.Order("created_at DESC").Find(&posts).Error; err != nil {
		return nil, fmt.Errorf("failed to get all posts: %w", err)
	}
	return posts, nil
}

// GetBySlug retrieves a post by its slug.
func (r *GORMBlogRepository) GetBySlug(slug string) (*models.BlogPost, error) {
	var post models.BlogPost
	if err := r.db.First(&post, "slug = ?", slug).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("blog post with slug %s not found", slug)
		}
		return nil, fmt.Errorf("failed to get blog post by slug %s: %w", slug, err)
	}
	return &post, nil
}

// Create creates a new blog post.
func (r *GORMBlogRepository) Create(post *models.BlogPost) error {
	if post.ID == "" {
		post.ID = uuid.New().String()
	}
	if err := r.db.Create(post).Error; err != nil {
		return fmt.Errorf("failed to create blog post: %w", err)
	}
	return nil
}

// Update updates an existing blog post.
func (r *GORMBlogRepository) Update(post *models.BlogPost) error {
	res := r.db.Save(post)
	if res.Error != nil {
		return fmt.Errorf("failed to update blog post: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("blog post with ID %s not found for update", post.ID)
	}
	return nil
}

// Delete removes a blog post by its ID.
func (r *GORMBlogRepository) Delete(id string) error {
	res := r.db.Delete(&models.BlogPost{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete blog post: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("blog post with ID %s not found for deletion", id)
	}
	return nil
}
