package service

import (
	"context"
	"fmt"

	"backend/internal/model"
	"backend/internal/repository"
	ws "backend/internal/websocket"

	"github.com/shopspring/decimal"
)

// DTOs
type ItemInput struct {
	ItemNo      string `json:"item_no"`
	LegalEntity string `json:"legal_entity"`
}

type CreateRequestInput struct {
	Name      string          `json:"name"`
	Purchase  string          `json:"purchase"`
	Vendor    string          `json:"vendor"`
	TaxAmount decimal.Decimal `json:"tax_amount"`
	Approved  bool            `json:"approved"`
	Items     []ItemInput     `json:"items"`
	UserID    uint            `json:"user_id"`
}

type ItemResponse struct {
	ItemNo      string `json:"item_no"`
	LegalEntity string `json:"legal_entity"`
}

// RequestResponse is one row of the listing: all request fields plus the
// owner's name and the request's items.
type RequestResponse struct {
	ID        uint            `json:"id"`
	Name      string          `json:"name"`
	Purchase  string          `json:"purchase"`
	Vendor    string          `json:"vendor"`
	TaxAmount decimal.Decimal `json:"tax_amount"`
	Approved  bool            `json:"approved"`
	UserID    uint            `json:"user_id"`
	UserName  string          `json:"user_name"`
	Items     []ItemResponse  `json:"items"`
}

// RequestService defines the business logic for purchase requests
type RequestService interface {
	CreateRequest(ctx context.Context, input CreateRequestInput) (uint, error)
	ListRequests(ctx context.Context) ([]RequestResponse, error)
	SetApproved(ctx context.Context, id uint, approved bool) error
}

type requestService struct {
	repo      repository.RequestRepository
	txManager repository.TransactionManager
	hub       *ws.Hub
}

// NewRequestService returns a new instance of RequestService. hub may be nil
// when no event feed is wanted (e.g. in tests).
func NewRequestService(repo repository.RequestRepository, txManager repository.TransactionManager, hub *ws.Hub) RequestService {
	return &requestService{repo: repo, txManager: txManager, hub: hub}
}

// CreateRequest inserts the request and all of its items in one transaction.
// Any insert failure rolls the whole group back; no partial state survives.
func (s *requestService) CreateRequest(ctx context.Context, input CreateRequestInput) (uint, error) {
	req := model.PurchaseRequest{
		Name:      input.Name,
		Purchase:  input.Purchase,
		Vendor:    input.Vendor,
		TaxAmount: input.TaxAmount,
		Approved:  input.Approved,
		UserID:    input.UserID,
	}

	err := s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.repo.Create(txCtx, &req); err != nil {
			return fmt.Errorf("failed to create request: %w", err)
		}

		for _, itemInput := range input.Items {
			item := &model.Item{
				RequestID:   req.ID,
				ItemNo:      itemInput.ItemNo,
				LegalEntity: itemInput.LegalEntity,
			}
			if err := s.repo.AddItem(txCtx, item); err != nil {
				return fmt.Errorf("failed to create item: %w", err)
			}
		}

		return nil
	})
	if err != nil {
		return 0, err
	}

	s.hub.Publish(ws.Event{
		Type:      "request.created",
		RequestID: req.ID,
		Data: map[string]any{
			"name":   req.Name,
			"vendor": req.Vendor,
			"items":  len(input.Items),
		},
	})

	return req.ID, nil
}

// ListRequests returns every request, newest first, with the owner's name and
// its items. A request without items gets an empty array, not null.
func (s *requestService) ListRequests(ctx context.Context) ([]RequestResponse, error) {
	requests, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]RequestResponse, 0, len(requests))
	for _, r := range requests {
		items := make([]ItemResponse, 0, len(r.Items))
		for _, item := range r.Items {
			items = append(items, ItemResponse{ItemNo: item.ItemNo, LegalEntity: item.LegalEntity})
		}

		responses = append(responses, RequestResponse{
			ID:        r.ID,
			Name:      r.Name,
			Purchase:  r.Purchase,
			Vendor:    r.Vendor,
			TaxAmount: r.TaxAmount,
			Approved:  r.Approved,
			UserID:    r.UserID,
			UserName:  r.User.Name,
			Items:     items,
		})
	}

	return responses, nil
}

// SetApproved flips the approval flag. An unknown id is a silent no-op, the
// same as the underlying UPDATE matching zero rows.
func (s *requestService) SetApproved(ctx context.Context, id uint, approved bool) error {
	if err := s.repo.SetApproved(ctx, id, approved); err != nil {
		return err
	}

	eventType := "request.rejected"
	if approved {
		eventType = "request.approved"
	}
	s.hub.Publish(ws.Event{Type: eventType, RequestID: id})

	return nil
}
