package services

import (
	"storefront/internal/apperrors"
	"storefront/internal/models"
	"storefront/internal/repositories"
)

// ReviewService handles business logic related to product reviews.
type ReviewService struct {
	reviewRepo  repositories.ReviewRepository
	productRepo repositories.ProductRepository
}

// NewReviewService creates a new ReviewService.
func NewReviewService(reviewRepo repositories.ReviewRepository, productRepo repositories.ProductRepository) *ReviewService {
	return &ReviewService{
		reviewRepo:  reviewRepo,
		productRepo: productRepo,
	}
}

// GetReviewsByProduct retrieves all reviews for a product.
func (s *ReviewService) GetReviewsByProduct(productID string) ([]models.Review, error) {
	if _, err := s.productRepo.GetByID(productID); err != nil {
		return nil, apperrors.Wrap(apperrors.KindNotFound, err, "product not found")
	}
	return s.reviewRepo.GetByProduct(productID)
}

// CreateReview creates a review. A user may review a product only once.
func (s *ReviewService) CreateReview(userID string, review *models.Review) error {
	if review.Rating < 1 || review.Rating > 5 {
		return apperrors.New(apperrors.KindValidation, "rating must be between 1 and 5")
	}
	if _, err := s.productRepo.GetByID(review.ProductID); err != nil {
		return apperrors.Wrap(apperrors.KindNotFound, err, "product not found")
	}

	existing, err := s.reviewRepo.GetByUserAndProduct(userID, review.ProductID)
	if err != nil {
		return apperrors.Wrap(apperrors.KindInternal, err, "could not check existing review")
	}
	if existing != nil {
		return apperrors.New(apperrors.KindConflict, "you have already reviewed this product")
	}

	review.UserID = userID
	if err := s.reviewRepo.Create(review); err != nil {
		return apperrors.Wrap(apperrors.KindInternal, err, "could not create review")
	}
	return nil
}
