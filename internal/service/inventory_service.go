package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	apperrors "pantry/internal/errors"
	"pantry/internal/model"
	"pantry/internal/repository"
)

// expirationDateLayout is the only accepted date format.
const expirationDateLayout = "2006-01-02"

// InventoryService exposes the per-user item operations. Every call is scoped
// by the authenticated user id; cross-user access surfaces as ErrItemNotFound.
type InventoryService interface {
	ListItems(ctx context.Context, userID uint) ([]model.Item, error)
	AddItem(ctx context.Context, userID uint, name, expirationDate, notes string) (*model.Item, error)
	EditItem(ctx context.Context, userID, itemID uint, name, expirationDate, notes string) error
	DeleteItem(ctx context.Context, userID, itemID uint) error
}

type inventoryService struct {
	repo repository.ItemRepository
	now  func() time.Time
}

// NewInventoryService builds an InventoryService over the item repository.
func NewInventoryService(repo repository.ItemRepository) InventoryService {
	return &inventoryService{repo: repo, now: time.Now}
}

// ListItems returns the caller's items ordered by expiration date ascending,
// each annotated with days remaining.
func (s *inventoryService) ListItems(ctx context.Context, userID uint) ([]model.Item, error) {
	items, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	now := s.now()
	for i := range items {
		items[i].AnnotateDaysLeft(now)
	}
	return items, nil
}

// AddItem validates and inserts one item for the caller.
func (s *inventoryService) AddItem(ctx context.Context, userID uint, name, expirationDate, notes string) (*model.Item, error) {
	expiresAt, err := s.validateItemInput(name, expirationDate)
	if err != nil {
		return nil, err
	}

	item := &model.Item{
		UserID:         userID,
		Name:           name,
		ExpirationDate: expiresAt,
		Notes:          notes,
	}
	if err := s.repo.Create(ctx, item); err != nil {
		return nil, fmt.Errorf("create item: %w", err)
	}
	item.AnnotateDaysLeft(s.now())
	return item, nil
}

// EditItem applies the same validation as AddItem, then runs the ownership
// two-step: verify an (item_id, user_id) row exists, then update through the
// same scoped predicate. Editing an item to its current values is a valid
// no-op, not a not-found.
func (s *inventoryService) EditItem(ctx context.Context, userID, itemID uint, name, expirationDate, notes string) error {
	expiresAt, err := s.validateItemInput(name, expirationDate)
	if err != nil {
		return err
	}

	if err := s.verifyOwned(ctx, userID, itemID); err != nil {
		return err
	}

	if err := s.repo.Update(ctx, userID, itemID, &model.Item{
		Name:           name,
		ExpirationDate: expiresAt,
		Notes:          notes,
	}); err != nil {
		return fmt.Errorf("update item: %w", err)
	}
	return nil
}

// DeleteItem removes the caller's item, using the same verify-then-mutate
// contract as EditItem.
func (s *inventoryService) DeleteItem(ctx context.Context, userID, itemID uint) error {
	if err := s.verifyOwned(ctx, userID, itemID); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, userID, itemID); err != nil {
		return fmt.Errorf("delete item: %w", err)
	}
	return nil
}

// verifyOwned resolves the (item_id, user_id) pair. A missing row and a
// foreign row both come back as ErrItemNotFound.
func (s *inventoryService) verifyOwned(ctx context.Context, userID, itemID uint) error {
	if _, err := s.repo.FindByID(ctx, userID, itemID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrItemNotFound
		}
		return fmt.Errorf("find item: %w", err)
	}
	return nil
}

// validateItemInput enforces the one validation policy shared by add and
// edit: name and date required, date in strict YYYY-MM-DD form and not in
// the past.
func (s *inventoryService) validateItemInput(name, expirationDate string) (time.Time, error) {
	if name == "" {
		return time.Time{}, apperrors.NewValidationError("missing item name")
	}
	if expirationDate == "" {
		return time.Time{}, apperrors.NewValidationError("missing expiration date")
	}

	expiresAt, err := time.Parse(expirationDateLayout, expirationDate)
	if err != nil {
		return time.Time{}, apperrors.NewValidationError("expiration date must be YYYY-MM-DD")
	}

	now := s.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if expiresAt.Before(today) {
		return time.Time{}, apperrors.NewValidationError("expiration date is in the past")
	}
	return expiresAt, nil
}
