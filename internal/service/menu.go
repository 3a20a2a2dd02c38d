package service

import (
	"context"
	"fmt"

	"pos-backend/internal/common/logger"
	"pos-backend/internal/domain"
	"pos-backend/internal/repository"
)

type MenuServiceInterface interface {
	ListMenu(ctx context.Context) ([]domain.MenuItem, error)
	ListCategories(ctx context.Context) ([]domain.Category, error)
	Create(ctx context.Context, req domain.MenuItemRequest) (domain.MenuItem, error)
	Update(ctx context.Context, id int64, req domain.MenuItemRequest) error
	Delete(ctx context.Context, id int64) error
}

type MenuService struct {
	menu repository.MenuRepositoryInterface
	bc   Broadcaster
	mc   *menuCache
	lg   *logger.Logger
}

func NewMenuService(menu repository.MenuRepositoryInterface, bc Broadcaster, mc *menuCache, lg *logger.Logger) MenuServiceInterface {
	return &MenuService{menu: menu, bc: bc, mc: mc, lg: lg}
}

func (s *MenuService) ListMenu(ctx context.Context) ([]domain.MenuItem, error) {
	if items, ok := s.mc.get(ctx); ok {
		return items, nil
	}
	items, err := s.menu.ListMenu(ctx)
	if err != nil {
		return nil, err
	}
	s.mc.store(ctx, items)
	return items, nil
}

func (s *MenuService) ListCategories(ctx context.Context) ([]domain.Category, error) {
	return s.menu.ListCategories(ctx)
}

func validateMenuItem(req domain.MenuItemRequest) error {
	if req.Name == "" {
		return &domain.ValidationError{Field: "name", Reason: "must not be empty"}
	}
	if req.Price < 0 {
		return &domain.ValidationError{Field: "price", Reason: "must not be negative"}
	}
	if req.Available < 0 {
		return &domain.ValidationError{Field: "available", Reason: "must not be negative"}
	}
	return nil
}

func (s *MenuService) Create(ctx context.Context, req domain.MenuItemRequest) (domain.MenuItem, error) {
	if err := validateMenuItem(req); err != nil {
		return domain.MenuItem{}, err
	}
	item := domain.MenuItem{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Image:       req.Image,
		Available:   req.Available,
		CategoryID:  req.CategoryID,
	}
	if err := s.menu.CreateMenuItem(ctx, &item); err != nil {
		return domain.MenuItem{}, err
	}
	s.bc.Broadcast(domain.UpdateAll(fmt.Sprintf("New item '%s' was added.", item.Name)))
	s.mc.invalidate(ctx)
	s.lg.Info("menu_item_created", map[string]any{"id": item.ID, "name": item.Name})
	return item, nil
}

func (s *MenuService) Update(ctx context.Context, id int64, req domain.MenuItemRequest) error {
	if err := validateMenuItem(req); err != nil {
		return err
	}
	item := domain.MenuItem{
		ID:          id,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Image:       req.Image,
		Available:   req.Available,
		CategoryID:  req.CategoryID,
	}
	if err := s.menu.UpdateMenuItem(ctx, item); err != nil {
		return err
	}
	s.bc.Broadcast(domain.UpdateAll(fmt.Sprintf("Item '%s' was updated.", item.Name)))
	s.mc.invalidate(ctx)
	s.lg.Info("menu_item_updated", map[string]any{"id": id, "name": item.Name})
	return nil
}

func (s *MenuService) Delete(ctx context.Context, id int64) error {
	if err := s.menu.DeleteMenuItem(ctx, id); err != nil {
		return err
	}
	s.bc.Broadcast(domain.UpdateAll("An item was deleted."))
	s.mc.invalidate(ctx)
	s.lg.Info("menu_item_deleted", map[string]any{"id": id})
	return nil
}
