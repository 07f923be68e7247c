package services

import (
	"storefront/internal/apperrors"
	"storefront/internal/models"
	"storefront/internal/repositories"
)

// WishlistService handles business logic related to wishlists.
type WishlistService struct {
	wishlistRepo repositories.WishlistRepository
	productRepo  repositories.ProductRepository
}

// NewWishlistService creates a new WishlistService.
func NewWishlistService(wishlistRepo repositories.WishlistRepository, productRepo repositories.ProductRepository) *WishlistService {
	return &WishlistService{
		wishlistRepo: wishlistRepo,
		productRepo:  productRepo,
	}
}

// GetWishlist retrieves the user's wishlist.
func (s *WishlistService) GetWishlist(userID string) ([]models.WishlistItem, error) {
	return s.wishlistRepo.GetByUser(userID)
}

// AddToWishlist adds a product to the user's wishlist. Adding a product that
// is already wishlisted succeeds without creating a duplicate.
func (s *WishlistService) AddToWishlist(userID, productID string) (*models.WishlistItem, error) {
	if _, err := s.productRepo.GetByID(productID); err != nil {
		return nil, apperrors.Wrap(apperrors.KindNotFound, err, "product not found")
	}
	item := &models.WishlistItem{
		UserID:    userID,
		ProductID: productID,
	}
	if err := s.wishlistRepo.Add(item); err != nil {
		return nil, apperrors.Wrap(apperrors.KindInternal, err, "could not add to wishlist")
	}
	return item, nil
}

// RemoveFromWishlist removes a product from the user's wishlist.
func (s *WishlistService) RemoveFromWishlist(userID, productID string) error {
	if err := s.wishlistRepo.Remove(userID, productID); err != nil {
		return apperrors.Wrap(apperrors.KindNotFound, err, "wishlist item not found")
	}
	return nil
}
