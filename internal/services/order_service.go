package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"nut-orders-backend/internal/models"
)

type OrderRecords interface {
	ListOrders(ctx context.Context, filter models.OrderFilter) ([]models.Order, error)
	GetOrder(ctx context.Context, orderID uuid.UUID) (*models.Order, error)
	UpdateOrder(ctx context.Context, orderID uuid.UUID, update models.OrderUpdate) error
	ListRegions(ctx context.Context) ([]models.Region, error)
}

type OrderService struct {
	records OrderRecords
	log     *zap.Logger
}

func NewOrderService(records OrderRecords, log *zap.Logger) *OrderService {
	return &OrderService{records: records, log: log}
}

type ListParams struct {
	Filter models.OrderFilter
	Query  string
	Sort   *SortConfig
}

// ListOrders fetches every open order matching the filter, then applies
// search and sort in memory.
func (s *OrderService) ListOrders(ctx context.Context, params ListParams) ([]models.Order, error) {
	orders, err := s.records.ListOrders(ctx, params.Filter)
	if err != nil {
		s.log.Error("list orders failed", zap.Error(err))
		return nil, err
	}

	orders = Search(orders, params.Query)
	if params.Sort != nil {
		orders = Sort(orders, *params.Sort)
	}
	return orders, nil
}

func (s *OrderService) GetOrder(ctx context.Context, orderID uuid.UUID) (*models.Order, error) {
	return s.records.GetOrder(ctx, orderID)
}

func (s *OrderService) ListRegions(ctx context.Context) ([]models.Region, error) {
	return s.records.ListRegions(ctx)
}

// UpdateStatus sets the order status and returns the re-fetched order.
func (s *OrderService) UpdateStatus(ctx context.Context, orderID uuid.UUID, status models.OrderStatus) (*models.Order, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("%w: %q", models.ErrInvalidStatus, status)
	}
	if err := s.records.UpdateOrder(ctx, orderID, models.OrderUpdate{Status: &status}); err != nil {
		s.log.Error("order status update failed",
			zap.String("order_id", orderID.String()),
			zap.String("status", string(status)),
			zap.Error(err))
		return nil, err
	}
	return s.records.GetOrder(ctx, orderID)
}

// EditDailyLoading applies edit to the order's current sequence, writes the
// whole array back and returns the re-fetched order.
func (s *OrderService) EditDailyLoading(ctx context.Context, orderID uuid.UUID, edit LoadingEdit) (*models.Order, error) {
	if err := edit.validate(); err != nil {
		return nil, err
	}

	order, err := s.records.GetOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	next, err := ApplyDailyLoadingEdit(order.DailyLoading, edit)
	if err != nil {
		return nil, err
	}

	if err := s.records.UpdateOrder(ctx, orderID, models.OrderUpdate{DailyLoading: &next}); err != nil {
		s.log.Error("daily loading update failed",
			zap.String("order_id", orderID.String()),
			zap.Error(err))
		return nil, err
	}
	return s.records.GetOrder(ctx, orderID)
}
