package services

import (
	"sort"
	"strconv"
	"strings"

	"nut-orders-backend/internal/models"
)

// Search keeps the orders whose buyer name, seller name, region name, nut
// quality, quantity or first truck contains query, ignoring case. A blank
// query returns orders unchanged.
func Search(orders []models.Order, query string) []models.Order {
	needle := strings.ToLower(strings.TrimSpace(query))
	if needle == "" {
		return orders
	}

	matched := make([]models.Order, 0, len(orders))
	for _, order := range orders {
		if orderMatches(&order, needle) {
			matched = append(matched, order)
		}
	}
	return matched
}

func orderMatches(order *models.Order, needle string) bool {
	fields := []string{
		order.Buyer.Name(),
		order.Seller.Name(),
		string(order.NutQuality),
		strconv.FormatInt(order.Quantity, 10),
	}
	if order.Region != nil {
		fields = append(fields, order.Region.Name)
	}
	if len(order.TruckDetails) > 0 {
		truck := order.TruckDetails[0]
		fields = append(fields, truck.TruckNumber, truck.DriverName, truck.DriverNumber)
	}

	for _, field := range fields {
		if strings.Contains(strings.ToLower(field), needle) {
			return true
		}
	}
	return false
}

type SortField string

const (
	SortByCreatedAt     SortField = "created_at"
	SortByUpdatedAt     SortField = "updated_at"
	SortByQuantity      SortField = "quantity"
	SortByPricePerUnit  SortField = "price_per_unit"
	SortByNutQuality    SortField = "nut_quality"
	SortByStatus        SortField = "status"
	SortByPaymentStatus SortField = "payment_status"
	SortByBuyer         SortField = "buyer"
	SortBySeller        SortField = "seller"
	SortByRegion        SortField = "region"
)

var sortFields = map[SortField]bool{
	SortByCreatedAt:     true,
	SortByUpdatedAt:     true,
	SortByQuantity:      true,
	SortByPricePerUnit:  true,
	SortByNutQuality:    true,
	SortByStatus:        true,
	SortByPaymentStatus: true,
	SortByBuyer:         true,
	SortBySeller:        true,
	SortByRegion:        true,
}

func (f SortField) Valid() bool {
	return sortFields[f]
}

type SortDirection string

const (
	SortAscending  SortDirection = "asc"
	SortDescending SortDirection = "desc"
)

// ParseSortDirection treats anything but "desc" as ascending.
func ParseSortDirection(s string) SortDirection {
	if strings.EqualFold(strings.TrimSpace(s), string(SortDescending)) {
		return SortDescending
	}
	return SortAscending
}

type SortConfig struct {
	Field     SortField
	Direction SortDirection
}

// Toggle returns the config after a click on field: the same field flips
// direction, a new field starts ascending.
func (c *SortConfig) Toggle(field SortField) SortConfig {
	if c != nil && c.Field == field {
		if c.Direction == SortAscending {
			return SortConfig{Field: field, Direction: SortDescending}
		}
		return SortConfig{Field: field, Direction: SortAscending}
	}
	return SortConfig{Field: field, Direction: SortAscending}
}

// Sort returns a stably sorted copy of orders. A missing value on either
// side compares equal, so orders without the field keep their relative
// position.
func Sort(orders []models.Order, config SortConfig) []models.Order {
	sorted := make([]models.Order, len(orders))
	copy(sorted, orders)
	if !config.Field.Valid() {
		return sorted
	}

	sort.SliceStable(sorted, func(i, j int) bool {
		c, ok := compareOrders(&sorted[i], &sorted[j], config.Field)
		if !ok {
			return false
		}
		if config.Direction == SortDescending {
			return c > 0
		}
		return c < 0
	})
	return sorted
}

// compareOrders reports ok=false when either side lacks the field.
func compareOrders(a, b *models.Order, field SortField) (int, bool) {
	switch field {
	case SortByCreatedAt:
		return a.CreatedAt.Compare(b.CreatedAt), true
	case SortByUpdatedAt:
		return a.UpdatedAt.Compare(b.UpdatedAt), true
	case SortByQuantity:
		return compareInt(a.Quantity, b.Quantity), true
	case SortByPricePerUnit:
		return a.PricePerUnit.Cmp(b.PricePerUnit), true
	case SortByNutQuality:
		return strings.Compare(string(a.NutQuality), string(b.NutQuality)), true
	case SortByStatus:
		return strings.Compare(string(a.Status), string(b.Status)), true
	case SortByPaymentStatus:
		return strings.Compare(a.PaymentStatus, b.PaymentStatus), true
	case SortByBuyer:
		return compareNames(a.Buyer, b.Buyer)
	case SortBySeller:
		return compareNames(a.Seller, b.Seller)
	case SortByRegion:
		if a.Region == nil || b.Region == nil {
			return 0, false
		}
		return strings.Compare(a.Region.Name, b.Region.Name), true
	}
	return 0, false
}

func compareNames(a, b *models.Profile) (int, bool) {
	if a == nil || b == nil || a.FullName == nil || b.FullName == nil {
		return 0, false
	}
	return strings.Compare(*a.FullName, *b.FullName), true
}

func compareInt(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
