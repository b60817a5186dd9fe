package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type NutQuality string

const (
	NutQualitySingleFilter NutQuality = "single_filter"
	NutQualityDoubleFilter NutQuality = "double_filter"
	NutQualityMixedFilter  NutQuality = "mixed_filter"
)

// Label returns the display name used by the order table badges.
func (q NutQuality) Label() string {
	switch q {
	case NutQualitySingleFilter:
		return "Single Filter"
	case NutQualityDoubleFilter:
		return "Double Filter"
	case NutQualityMixedFilter:
		return "Mixed Filter"
	}
	return string(q)
}

// RegionMediaType maps the nut quality onto the region media category.
// Unknown qualities fall back to RegionMediaSingle.
func (q NutQuality) RegionMediaType() RegionMediaType {
	switch q {
	case NutQualityDoubleFilter:
		return RegionMediaDouble
	case NutQualityMixedFilter:
		return RegionMediaMixed
	}
	return RegionMediaSingle
}

type OrderStatus string

const (
	OrderStatusPending          OrderStatus = "pending"
	OrderStatusApproved         OrderStatus = "approved"
	OrderStatusRejected         OrderStatus = "rejected"
	OrderStatusCompleted        OrderStatus = "completed"
	OrderStatusLoadingInitiated OrderStatus = "loading_initiated"
	OrderStatusLoadingStarted   OrderStatus = "loading_started"
	OrderStatusLoadingStopped   OrderStatus = "loading_stopped"
	OrderStatusLoadingCompleted OrderStatus = "loading_completed"
)

var orderStatusLabels = map[OrderStatus]string{
	OrderStatusPending:          "Pending",
	OrderStatusApproved:         "Approved",
	OrderStatusRejected:         "Rejected",
	OrderStatusCompleted:        "Completed",
	OrderStatusLoadingInitiated: "Loading Initiated",
	OrderStatusLoadingStarted:   "Loading Started",
	OrderStatusLoadingStopped:   "Loading Stopped",
	OrderStatusLoadingCompleted: "Loading Completed",
}

func (s OrderStatus) Valid() bool {
	_, ok := orderStatusLabels[s]
	return ok
}

func (s OrderStatus) Label() string {
	if label, ok := orderStatusLabels[s]; ok {
		return label
	}
	return string(s)
}

type UserType string

const (
	UserTypeBuyer  UserType = "buyer"
	UserTypeSeller UserType = "seller"
)

type Profile struct {
	ID            uuid.UUID `json:"id"`
	FullName      *string   `json:"full_name"`
	PhoneNumber   string    `json:"phone_number"`
	Email         *string   `json:"email"`
	ProfileAvatar *string   `json:"profile_avatar"`
	UserType      UserType  `json:"user_type"`
}

// Name returns the full name or "" when the profile has none.
func (p *Profile) Name() string {
	if p == nil || p.FullName == nil {
		return ""
	}
	return *p.FullName
}

type Region struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type TruckDetail struct {
	ID           uuid.UUID `json:"id"`
	OrderID      uuid.UUID `json:"order_id"`
	TruckNumber  string    `json:"truck_number"`
	DriverName   string    `json:"driver_name"`
	DriverNumber string    `json:"driver_number"`
}

// Order is a purchase order with its optional joined records. Buyer, Seller
// and Region are nil when the related row is missing. TruckDetails is nil
// when the query did not load trucks.
type Order struct {
	ID            uuid.UUID
	BuyerID       uuid.UUID
	SellerID      uuid.UUID
	RegionID      *uuid.UUID
	Quantity      int64
	PricePerUnit  decimal.Decimal
	NutQuality    NutQuality
	Status        OrderStatus
	PaymentStatus string
	DailyLoading  []int64
	CreatedAt     time.Time
	UpdatedAt     time.Time

	Buyer        *Profile
	Seller       *Profile
	Region       *Region
	TruckDetails []TruckDetail
}

// OrderPlacement is the slice of an order needed to file region media.
type OrderPlacement struct {
	RegionID   *uuid.UUID
	NutQuality NutQuality
}

// OrderUpdate carries the fields to overwrite. Nil fields are left alone;
// DailyLoading replaces the whole array when set.
type OrderUpdate struct {
	Status        *OrderStatus
	PaymentStatus *string
	DailyLoading  *[]int64
}

func (u OrderUpdate) Empty() bool {
	return u.Status == nil && u.PaymentStatus == nil && u.DailyLoading == nil
}

// OrderFilter narrows ListOrders. Completed orders are always excluded.
type OrderFilter struct {
	Status   OrderStatus
	RegionID *uuid.UUID
}
