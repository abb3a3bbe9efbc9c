package repository

import (
	"context"

	"backend/internal/model"

	"gorm.io/gorm"
)

// RequestRepository defines data access for purchase requests and their items.
type RequestRepository interface {
	Create(ctx context.Context, req *model.PurchaseRequest) error
	AddItem(ctx context.Context, item *model.Item) error
	List(ctx context.Context) ([]model.PurchaseRequest, error)
	SetApproved(ctx context.Context, id uint, approved bool) error
}

type requestRepository struct {
	db *gorm.DB
}

func NewRequestRepository(db *gorm.DB) RequestRepository {
	return &requestRepository{db: db}
}

// Create inserts the request row only; items are inserted one by one through
// AddItem so the whole group shares the caller's transaction.
func (r *requestRepository) Create(ctx context.Context, req *model.PurchaseRequest) error {
	return GetDB(ctx, r.db).Omit("Items").Create(req).Error
}

func (r *requestRepository) AddItem(ctx context.Context, item *model.Item) error {
	return GetDB(ctx, r.db).Create(item).Error
}

// List fetches every request with its owner and items, newest id first.
func (r *requestRepository) List(ctx context.Context) ([]model.PurchaseRequest, error) {
	var requests []model.PurchaseRequest
	err := GetDB(ctx, r.db).
		Preload("User").
		Preload("Items").
		Order("id DESC").
		Find(&requests).Error
	if err != nil {
		return nil, err
	}
	return requests, nil
}

// SetApproved unconditionally updates the approved flag. An id that matches
// no row is a silent no-op; callers get nil either way.
func (r *requestRepository) SetApproved(ctx context.Context, id uint, approved bool) error {
	return GetDB(ctx, r.db).
		Model(&model.PurchaseRequest{}).
		Where("id = ?", id).
		Update("approved", approved).Error
}
