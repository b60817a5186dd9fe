package services

import (
	"context"
	"io"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"nut-orders-backend/internal/models"
)

type mockStore struct {
	mock.Mock
}

func (m *mockStore) Upload(path string, data io.Reader, contentType string) (*models.StorageObject, error) {
	args := m.Called(path, data, contentType)
	obj, _ := args.Get(0).(*models.StorageObject)
	return obj, args.Error(1)
}

func (m *mockStore) PublicURL(path string) string {
	return m.Called(path).String(0)
}

func (m *mockStore) PathFromURL(publicURL string) (string, bool) {
	args := m.Called(publicURL)
	return args.String(0), args.Bool(1)
}

func (m *mockStore) Remove(path string) error {
	return m.Called(path).Error(0)
}

func (m *mockStore) List(prefix string) ([]string, error) {
	args := m.Called(prefix)
	paths, _ := args.Get(0).([]string)
	return paths, args.Error(1)
}

type mockMediaRecords struct {
	mock.Mock
}

func (m *mockMediaRecords) GetOrderPlacement(ctx context.Context, orderID uuid.UUID) (*models.OrderPlacement, error) {
	args := m.Called(ctx, orderID)
	p, _ := args.Get(0).(*models.OrderPlacement)
	return p, args.Error(1)
}

func (m *mockMediaRecords) InsertOrderMedia(ctx context.Context, media *models.OrderMedia) (*models.OrderMedia, error) {
	args := m.Called(ctx, media)
	created, _ := args.Get(0).(*models.OrderMedia)
	return created, args.Error(1)
}

func (m *mockMediaRecords) InsertRegionMedia(ctx context.Context, media *models.RegionMedia) (*models.RegionMedia, error) {
	args := m.Called(ctx, media)
	created, _ := args.Get(0).(*models.RegionMedia)
	return created, args.Error(1)
}

func (m *mockMediaRecords) ListOrderMedia(ctx context.Context, orderID uuid.UUID) ([]models.OrderMedia, error) {
	args := m.Called(ctx, orderID)
	media, _ := args.Get(0).([]models.OrderMedia)
	return media, args.Error(1)
}

func (m *mockMediaRecords) GetOrderMedia(ctx context.Context, mediaID uuid.UUID) (*models.OrderMedia, error) {
	args := m.Called(ctx, mediaID)
	media, _ := args.Get(0).(*models.OrderMedia)
	return media, args.Error(1)
}

func (m *mockMediaRecords) DeleteOrderMedia(ctx context.Context, mediaID uuid.UUID) error {
	return m.Called(ctx, mediaID).Error(0)
}

type mockOrderRecords struct {
	mock.Mock
}

func (m *mockOrderRecords) ListOrders(ctx context.Context, filter models.OrderFilter) ([]models.Order, error) {
	args := m.Called(ctx, filter)
	orders, _ := args.Get(0).([]models.Order)
	return orders, args.Error(1)
}

func (m *mockOrderRecords) GetOrder(ctx context.Context, orderID uuid.UUID) (*models.Order, error) {
	args := m.Called(ctx, orderID)
	order, _ := args.Get(0).(*models.Order)
	return order, args.Error(1)
}

func (m *mockOrderRecords) UpdateOrder(ctx context.Context, orderID uuid.UUID, update models.OrderUpdate) error {
	return m.Called(ctx, orderID, update).Error(0)
}

func (m *mockOrderRecords) ListRegions(ctx context.Context) ([]models.Region, error) {
	args := m.Called(ctx)
	regions, _ := args.Get(0).([]models.Region)
	return regions, args.Error(1)
}
