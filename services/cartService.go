package services

import (
	"errors"

	"github.com/shreeambika/easyshop-api/models"
	"github.com/shreeambika/easyshop-api/repository"
)

type CartService struct {
	carts    repository.CartRepository
	products repository.ProductRepository
}

func NewCartService(carts repository.CartRepository, products repository.ProductRepository) *CartService {
	return &CartService{carts: carts, products: products}
}

func (s *CartService) GetCart(userID int) (*models.Cart, error) {
	return s.carts.GetOrCreate(userID)
}

// AddToCart inserts the product with quantity 1, or increments an existing
// entry by 1.
func (s *CartService) AddToCart(userID int, productID string) (*models.CartItem, error) {
	product, err := s.products.FindByID(productID)
	if err != nil {
		return nil, err
	}

	cart, err := s.carts.GetOrCreate(userID)
	if err != nil {
		return nil, err
	}

	item, err := s.carts.FindItem(cart.ID, productID)
	if err == nil {
		item.Quantity++
		if err := s.carts.SaveItem(item); err != nil {
			return nil, err
		}
		return item, nil
	}
	if !errors.Is(err, repository.ErrCartItemNotFound) {
		return nil, err
	}

	item = &models.CartItem{
		CartID:    cart.ID,
		ProductID: product.ID,
		Name:      product.Name,
		Price:     product.Price,
		Quantity:  1,
	}
	if err := s.carts.SaveItem(item); err != nil {
		return nil, err
	}
	return item, nil
}

// UpdateQuantity sets the quantity for an entry, removing it when the new
// quantity drops to zero or below.
func (s *CartService) UpdateQuantity(userID int, productID string, quantity int) error {
	cart, err := s.carts.GetOrCreate(userID)
	if err != nil {
		return err
	}

	if quantity <= 0 {
		return s.carts.DeleteItem(cart.ID, productID)
	}

	item, err := s.carts.FindItem(cart.ID, productID)
	if err != nil {
		return err
	}
	item.Quantity = quantity
	return s.carts.SaveItem(item)
}

func (s *CartService) RemoveFromCart(userID int, productID string) error {
	cart, err := s.carts.GetOrCreate(userID)
	if err != nil {
		return err
	}
	return s.carts.DeleteItem(cart.ID, productID)
}

func (s *CartService) ClearCart(userID int) error {
	cart, err := s.carts.GetOrCreate(userID)
	if err != nil {
		return err
	}
	return s.carts.ClearItems(cart.ID)
}
