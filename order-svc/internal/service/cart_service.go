package service

import (
	"context"
	"fmt"

	"tableside/order-svc/internal/domain"
)

// CartService applies cart operations for one session and persists the cart
// through the injected store after every mutation.
type CartService struct {
	store CartStore
}

func NewCartService(store CartStore) *CartService {
	return &CartService{store: store}
}

func (s *CartService) Get(ctx context.Context, sessionID string) (*domain.Cart, error) {
	cart, err := s.store.Load(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}
	if cart == nil {
		cart = domain.NewCart()
	}
	return cart, nil
}

func (s *CartService) AddItem(ctx context.Context, sessionID string, item domain.CartItem) (*domain.Cart, error) {
	return s.mutate(ctx, sessionID, func(cart *domain.Cart) {
		cart.AddItem(item)
	})
}

func (s *CartService) UpdateQuantity(ctx context.Context, sessionID string, dishID, quantity int) (*domain.Cart, error) {
	return s.mutate(ctx, sessionID, func(cart *domain.Cart) {
		cart.UpdateQuantity(dishID, quantity)
	})
}

func (s *CartService) UpdateNotes(ctx context.Context, sessionID string, dishID int, notes string) (*domain.Cart, error) {
	return s.mutate(ctx, sessionID, func(cart *domain.Cart) {
		cart.UpdateNotes(dishID, notes)
	})
}

func (s *CartService) RemoveItem(ctx context.Context, sessionID string, dishID int) (*domain.Cart, error) {
	return s.mutate(ctx, sessionID, func(cart *domain.Cart) {
		cart.RemoveItem(dishID)
	})
}

func (s *CartService) SetMetadata(ctx context.Context, sessionID string, meta domain.CartMetadata) (*domain.Cart, error) {
	return s.mutate(ctx, sessionID, func(cart *domain.Cart) {
		cart.SetMetadata(meta)
	})
}

func (s *CartService) Clear(ctx context.Context, sessionID string) error {
	if err := s.store.Delete(ctx, sessionID); err != nil {
		return fmt.Errorf("failed to clear cart: %w", err)
	}
	return nil
}

func (s *CartService) mutate(ctx context.Context, sessionID string, apply func(*domain.Cart)) (*domain.Cart, error) {
	cart, err := s.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	apply(cart)
	if err := s.store.Save(ctx, sessionID, cart); err != nil {
		return nil, fmt.Errorf("failed to save cart: %w", err)
	}
	return cart, nil
}
