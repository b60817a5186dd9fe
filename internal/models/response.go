package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
}

type OrderResponse struct {
	ID              string          `json:"id"`
	BuyerID         string          `json:"buyer_id"`
	SellerID        string          `json:"seller_id"`
	RegionID        *string         `json:"region_id"`
	Quantity        int64           `json:"quantity"`
	PricePerUnit    decimal.Decimal `json:"price_per_unit"`
	OrderValue      decimal.Decimal `json:"order_value"`
	NutQuality      NutQuality      `json:"nut_quality"`
	NutQualityLabel string          `json:"nut_quality_label"`
	Status          OrderStatus     `json:"status"`
	StatusLabel     string          `json:"status_label"`
	PaymentStatus   string          `json:"payment_status"`
	DailyLoading    []int64         `json:"daily_loading"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
	Buyer           *Profile        `json:"buyer"`
	Seller          *Profile        `json:"seller"`
	Region          *Region         `json:"region"`
	TruckDetails    []TruckDetail   `json:"truck_details,omitempty"`
}

// NewOrderResponse flattens an order for the API. Missing joins stay null.
func NewOrderResponse(o *Order) OrderResponse {
	resp := OrderResponse{
		ID:              o.ID.String(),
		BuyerID:         o.BuyerID.String(),
		SellerID:        o.SellerID.String(),
		Quantity:        o.Quantity,
		PricePerUnit:    o.PricePerUnit,
		OrderValue:      o.PricePerUnit.Mul(decimal.NewFromInt(o.Quantity)),
		NutQuality:      o.NutQuality,
		NutQualityLabel: o.NutQuality.Label(),
		Status:          o.Status,
		StatusLabel:     o.Status.Label(),
		PaymentStatus:   o.PaymentStatus,
		DailyLoading:    o.DailyLoading,
		CreatedAt:       o.CreatedAt,
		UpdatedAt:       o.UpdatedAt,
		Buyer:           o.Buyer,
		Seller:          o.Seller,
		Region:          o.Region,
		TruckDetails:    o.TruckDetails,
	}
	if o.RegionID != nil {
		id := o.RegionID.String()
		resp.RegionID = &id
	}
	if resp.DailyLoading == nil {
		resp.DailyLoading = []int64{}
	}
	return resp
}

type OrderListResponse struct {
	Orders []OrderResponse `json:"orders"`
	Total  int             `json:"total"`
}

type RegionsResponse struct {
	Regions []Region `json:"regions"`
}

type MediaResponse struct {
	ID          string    `json:"id"`
	OrderID     string    `json:"order_id"`
	MediaURL    *string   `json:"media_url"`
	MediaType   MediaType `json:"media_type"`
	Description *string   `json:"description"`
	UploadedAt  time.Time `json:"uploaded_at"`
	UploadedBy  string    `json:"uploaded_by"`
}

func NewMediaResponse(m *OrderMedia) MediaResponse {
	return MediaResponse{
		ID:          m.ID.String(),
		OrderID:     m.OrderID.String(),
		MediaURL:    m.MediaURL,
		MediaType:   m.MediaType,
		Description: m.Description,
		UploadedAt:  m.UploadedAt,
		UploadedBy:  m.UploadedBy.String(),
	}
}

type MediaListResponse struct {
	Media []MediaResponse `json:"media"`
}

type UploadErrorInfo struct {
	Filename string `json:"filename"`
	Error    string `json:"error"`
}

type UploadResponse struct {
	OrderID string            `json:"order_id"`
	Media   []MediaResponse   `json:"media"`
	Message string            `json:"message"`
	Errors  []UploadErrorInfo `json:"errors,omitempty"`
}

type StoredObjectsResponse struct {
	OrderID string   `json:"order_id"`
	Paths   []string `json:"paths"`
}

type LoadingPoint struct {
	Day      string `json:"day"`
	Quantity int64  `json:"quantity"`
}

type LoadingSummaryResponse struct {
	OrderID       string         `json:"order_id"`
	OrderQuantity int64          `json:"order_quantity"`
	TotalLoaded   int64          `json:"total_loaded"`
	Remaining     int64          `json:"remaining"`
	Days          []LoadingPoint `json:"days"`
}
