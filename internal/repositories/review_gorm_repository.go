package repositories

import (
	"errors"
	"fmt"

	"storefront/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMReviewRepository is a GORM implementation of ReviewRepository.
type GORMReviewRepository struct {
	db *gorm.DB
}

// NewGORMReviewRepository creates a new instance of GORMReviewRepository.
func NewGORMReviewRepository(db *gorm.DB) *GORMReviewRepository {
	return &GORMReviewRepository{
		db: db,
	}
}

// GetByProduct retrieves all reviews for a product, newest first.
func (r *GORMReviewRepository) GetByProduct(productID string) ([]models.Review, error) {
	var reviews []models.Review
	if err := r.db.Where("product_id = ?", productID).Order("created_at DESC").Find(&reviews).Error; err != nil {
		return nil, fmt.Errorf("failed to get reviews for product %s: %w", productID, err)
	}
	return reviews, nil
}

// GetByUserAndProduct retrieves a user's review of a product, if any.
func (r *GORMReviewRepository) GetByUserAndProduct(userID, productID string) (*models.Review, error) {
	var review models.Review
	err := r.db.First(&review, "user_id = ? AND product_id = ?", userID, productID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get review: %w", err)
	}
	return &review, nil
}

// Create creates a new review.
func (r *GORMReviewRepository) Create(review *models.Review) error {
	if review.ID == "" {
		review.ID = uuid.New().String()
	}
	if err := r.db.Create(review).Error; err != nil {
		return fmt.Errorf("failed to create review: %w", err)
	}
	return nil
}

// Delete removes a review by its ID.
func (r *GORMReviewRepository) Delete(id string) error {
	res := r.db.Delete(&models.Review{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete review: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("review with ID %s not found for deletion", id)
	}
	return nil
}
