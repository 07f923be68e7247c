package services

import (
	"storefront/internal/apperrors"
	"storefront/internal/models"
	"storefront/internal/repositories"
)

// CartService handles business logic related to carts.
type CartService struct {
	cartRepo    repositories.CartRepository
	productRepo repositories.ProductRepository
}

// NewCartService creates a new CartService.
func NewCartService(cartRepo repositories.CartRepository, productRepo repositories.ProductRepository) *CartService {
	return &CartService{
		cartRepo:    cartRepo,
		productRepo: productRepo,
	}
}

// GetCart returns the user's cart, creating an empty one on first access.
func (s *CartService) GetCart(userID string) (*models.Cart, error) {
	cart, err := s.cartRepo.GetByUserID(userID)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.KindInternal, err, "could not load cart")
	}
	return cart, nil
}

// AddItem adds a product (optionally a specific variant) to the user's cart.
func (s *CartService) AddItem(userID, productID, variantID string, quantity int) (*models.Cart, error) {
	if quantity <= 0 {
		return nil, apperrors.New(apperrors.KindValidation, "quantity must be positive")
	}

	product, err := s.productRepo.GetByID(productID)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.KindNotFound, err, "product not found")
	}
	if variantID != "" {
		found := false
		for _, v := range product.Variants {
			if v.ID == variantID {
				found = true
				break
			}
		}
		if !found {
			return nil, apperrors.New(apperrors.KindNotFound, "variant %s not found for product %s", variantID, productID)
		}
	}

	cart, err := s.cartRepo.GetByUserID(userID)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.KindInternal, err, "could not load cart")
	}
	item := &models.CartItem{
		ProductID: productID,
		VariantID: variantID,
		Quantity:  quantity,
	}
	if err := s.cartRepo.AddItem(cart.ID, item); err != nil {
		return nil, apperrors.Wrap(apperrors.KindInternal, err, "could not add item to cart")
	}
	return s.GetCart(userID)
}

// UpdateItemQuantity changes a cart line's quantity; zero removes the line.
func (s *CartService) UpdateItemQuantity(userID, itemID string, quantity int) (*models.Cart, error) {
	if quantity < 0 {
		return nil, apperrors.New(apperrors.KindValidation, "quantity cannot be negative")
	}
	cart, err := s.cartRepo.GetByUserID(userID)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.KindInternal, err, "could not load cart")
	}
	if quantity == 0 {
		if err := s.cartRepo.RemoveItem(cart.ID, itemID); err != nil {
			return nil, apperrors.Wrap(apperrors.KindNotFound, err, "cart item not found")
		}
	} else {
		if err := s.cartRepo.UpdateItemQuantity(cart.ID, itemID, quantity); err != nil {
			return nil, apperrors.Wrap(apperrors.KindNotFound, err, "cart item not found")
		}
	}
	return s.GetCart(userID)
}

// RemoveItem deletes a cart line.
func (s *CartService) RemoveItem(userID, itemID string) (*models.Cart, error) {
	cart, err := s.cartRepo.GetByUserID(userID)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.KindInternal, err, "could not load cart")
	}
	if err := s.cartRepo.RemoveItem(cart.ID, itemID); err != nil {
		return nil, apperrors.Wrap(apperrors.KindNotFound, err, "cart item not found")
	}
	return s.GetCart(userID)
}
