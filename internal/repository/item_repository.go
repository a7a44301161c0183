package repository

import (
	"context"

	"gorm.io/gorm"

	"pantry/internal/model"
)

// ItemRepository defines persistence operations for pantry items. Every
// statement carries the ownership predicate (id AND user_id). Update and
// Delete do not report whether a row matched: callers verify ownership with
// FindByID first. MySQL's affected-rows count means rows changed, not rows
// matched, so it cannot distinguish a no-op update from a foreign item.
type ItemRepository interface {
	Create(ctx context.Context, item *model.Item) error
	ListByUser(ctx context.Context, userID uint) ([]model.Item, error)
	FindByID(ctx context.Context, userID, itemID uint) (*model.Item, error)
	Update(ctx context.Context, userID, itemID uint, item *model.Item) error
	Delete(ctx context.Context, userID, itemID uint) error
}

type itemRepository struct {
	db *gorm.DB
}

// NewItemRepository builds a GORM-backed repository.
func NewItemRepository(db *gorm.DB) ItemRepository {
	return &itemRepository{db: db}
}

func (r *itemRepository) Create(ctx context.Context, item *model.Item) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *itemRepository) ListByUser(ctx context.Context, userID uint) ([]model.Item, error) {
	var items []model.Item
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("expiration_date ASC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *itemRepository) FindByID(ctx context.Context, userID, itemID uint) (*model.Item, error) {
	var item model.Item
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", itemID, userID).
		First(&item).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// Update rewrites name, expiration date and notes of the caller's item. The
// statement is still scoped by owner so it can never touch a foreign row.
func (r *itemRepository) Update(ctx context.Context, userID, itemID uint, item *model.Item) error {
	return r.db.WithContext(ctx).
		Model(&model.Item{}).
		Where("id = ? AND user_id = ?", itemID, userID).
		Updates(map[string]interface{}{
			"name":            item.Name,
			"expiration_date": item.ExpirationDate,
			"notes":           item.Notes,
		}).Error
}

func (r *itemRepository) Delete(ctx context.Context, userID, itemID uint) error {
	return r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", itemID, userID).
		Delete(&model.Item{}).Error
}
