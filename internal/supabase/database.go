package supabase

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"nut-orders-backend/internal/models"
)

type DatabaseClient struct {
	db *sql.DB
}

func NewDatabaseClient(ctx context.Context, connectionString string) (*DatabaseClient, error) {
	db, err := sql.Open("postgres", connectionString)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DatabaseClient{db: db}, nil
}

// NewDatabaseClientFromDB wraps an already opened handle.
func NewDatabaseClientFromDB(db *sql.DB) *DatabaseClient {
	return &DatabaseClient{db: db}
}

func (d *DatabaseClient) DB() *sql.DB {
	return d.db
}

func (d *DatabaseClient) Close() error {
	return d.db.Close()
}

// Buyer, seller and region are left joins so a dangling reference yields a
// nil sub-record instead of dropping the order.
const orderSelect = `
	SELECT o.id, o.buyer_id, o.seller_id, o.region_id, o.quantity, o.price_per_unit,
		o.nut_quality, o.status, o.payment_status, o.daily_loading, o.created_at, o.updated_at,
		b.id, b.full_name, b.phone_number, b.email, b.profile_avatar, b.user_type,
		s.id, s.full_name, s.phone_number, s.email, s.profile_avatar, s.user_type,
		r.id, r.name`

const orderJoins = `
	FROM orders o
	LEFT JOIN profiles b ON b.id = o.buyer_id
	LEFT JOIN profiles s ON s.id = o.seller_id
	LEFT JOIN regions r ON r.id = o.region_id`

const truckDetailsColumn = `,
		COALESCE((
			SELECT json_agg(json_build_object(
				'id', t.id, 'order_id', t.order_id, 'truck_number', t.truck_number,
				'driver_name', t.driver_name, 'driver_number', t.driver_number
			) ORDER BY t.created_at)
			FROM truck_details t
			WHERE t.order_id = o.id
		), '[]'::json)`

// ListOrders returns orders newest first with buyer, seller, region and
// truck details joined. Completed orders are never returned.
func (d *DatabaseClient) ListOrders(ctx context.Context, filter models.OrderFilter) ([]models.Order, error) {
	conditions := []string{"o.status <> 'completed'"}
	args := []interface{}{}
	if filter.Status != "" {
		args = append(args, string(filter.Status))
		conditions = append(conditions, fmt.Sprintf("o.status = $%d", len(args)))
	}
	if filter.RegionID != nil {
		args = append(args, *filter.RegionID)
		conditions = append(conditions, fmt.Sprintf("o.region_id = $%d", len(args)))
	}

	query := orderSelect + truckDetailsColumn + orderJoins +
		"\n\tWHERE " + strings.Join(conditions, " AND ") +
		"\n\tORDER BY o.created_at DESC"

	rows, err := d.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	defer rows.Close()

	orders := make([]models.Order, 0)
	for rows.Next() {
		order, err := scanOrder(rows, true)
		if err != nil {
			return nil, fmt.Errorf("failed to scan order: %w", err)
		}
		orders = append(orders, *order)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}

	return orders, nil
}

// GetOrder loads one order with buyer, seller and region. Truck details are
// not loaded.
func (d *DatabaseClient) GetOrder(ctx context.Context, orderID uuid.UUID) (*models.Order, error) {
	row := d.db.QueryRowContext(ctx, orderSelect+orderJoins+"\n\tWHERE o.id = $1", orderID)
	order, err := scanOrder(row, false)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: order %s", models.ErrNotFound, orderID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get order: %w", err)
	}
	return order, nil
}

func (d *DatabaseClient) GetOrderPlacement(ctx context.Context, orderID uuid.UUID) (*models.OrderPlacement, error) {
	var (
		regionID   uuid.NullUUID
		nutQuality sql.NullString
	)
	err := d.db.QueryRowContext(ctx, `
		SELECT region_id, nut_quality
		FROM orders
		WHERE id = $1
	`, orderID).Scan(&regionID, &nutQuality)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: order %s", models.ErrNotFound, orderID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get order placement: %w", err)
	}

	placement := &models.OrderPlacement{NutQuality: models.NutQuality(nutQuality.String)}
	if regionID.Valid {
		id := regionID.UUID
		placement.RegionID = &id
	}
	return placement, nil
}

func (d *DatabaseClient) UpdateOrder(ctx context.Context, orderID uuid.UUID, update models.OrderUpdate) error {
	if update.Empty() {
		return nil
	}

	sets := []string{}
	args := []interface{}{}
	if update.Status != nil {
		args = append(args, string(*update.Status))
		sets = append(sets, fmt.Sprintf("status = $%d", len(args)))
	}
	if update.PaymentStatus != nil {
		args = append(args, *update.PaymentStatus)
		sets = append(sets, fmt.Sprintf("payment_status = $%d", len(args)))
	}
	if update.DailyLoading != nil {
		args = append(args, pq.Int64Array(*update.DailyLoading))
		sets = append(sets, fmt.Sprintf("daily_loading = $%d", len(args)))
	}
	sets = append(sets, "updated_at = NOW()")
	args = append(args, orderID)

	query := fmt.Sprintf("UPDATE orders SET %s WHERE id = $%d", strings.Join(sets, ", "), len(args))
	res, err := d.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: update order %s: %v", models.ErrWriteRejected, orderID, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: update order %s: %v", models.ErrWriteRejected, orderID, err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: order %s", models.ErrNotFound, orderID)
	}
	return nil
}

func (d *DatabaseClient) ListRegions(ctx context.Context) ([]models.Region, error) {
	rows, err := d.db.QueryContext(ctx, `
		SELECT id, name
		FROM regions
		ORDER BY name ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list regions: %w", err)
	}
	defer rows.Close()

	regions := make([]models.Region, 0)
	for rows.Next() {
		var region models.Region
		if err := rows.Scan(&region.ID, &region.Name); err != nil {
			return nil, fmt.Errorf("failed to scan region: %w", err)
		}
		regions = append(regions, region)
	}
	return regions, rows.Err()
}

const mediaColumns = `id, order_id, media_url, media_type, description, uploaded_at, uploaded_by`

func (d *DatabaseClient) ListOrderMedia(ctx context.Context, orderID uuid.UUID) ([]models.OrderMedia, error) {
	rows, err := d.db.QueryContext(ctx, `
		SELECT `+mediaColumns+`
		FROM order_media
		WHERE order_id = $1
		ORDER BY uploaded_at DESC
	`, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to list order media: %w", err)
	}
	defer rows.Close()

	media := make([]models.OrderMedia, 0)
	for rows.Next() {
		m, err := scanOrderMedia(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan order media: %w", err)
		}
		media = append(media, *m)
	}
	return media, rows.Err()
}

func (d *DatabaseClient) GetOrderMedia(ctx context.Context, mediaID uuid.UUID) (*models.OrderMedia, error) {
	row := d.db.QueryRowContext(ctx, `
		SELECT `+mediaColumns+`
		FROM order_media
		WHERE id = $1
	`, mediaID)
	m, err := scanOrderMedia(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: media %s", models.ErrNotFound, mediaID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get order media: %w", err)
	}
	return m, nil
}

func (d *DatabaseClient) InsertOrderMedia(ctx context.Context, media *models.OrderMedia) (*models.OrderMedia, error) {
	row := d.db.QueryRowContext(ctx, `
		INSERT INTO order_media (order_id, media_url, media_type, description, uploaded_by)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING `+mediaColumns,
		media.OrderID, media.MediaURL, string(media.MediaType), media.Description, media.UploadedBy)
	created, err := scanOrderMedia(row)
	if err != nil {
		return nil, fmt.Errorf("%w: insert order media: %v", models.ErrWriteRejected, err)
	}
	return created, nil
}

func (d *DatabaseClient) DeleteOrderMedia(ctx context.Context, mediaID uuid.UUID) error {
	res, err := d.db.ExecContext(ctx, `
		DELETE FROM order_media
		WHERE id = $1
	`, mediaID)
	if err != nil {
		return fmt.Errorf("%w: delete media %s: %v", models.ErrWriteRejected, mediaID, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: delete media %s: %v", models.ErrWriteRejected, mediaID, err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: media %s", models.ErrNotFound, mediaID)
	}
	return nil
}

func (d *DatabaseClient) InsertRegionMedia(ctx context.Context, media *models.RegionMedia) (*models.RegionMedia, error) {
	created := *media
	err := d.db.QueryRowContext(ctx, `
		INSERT INTO region_media (region_id, url, type)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`, media.RegionID, media.URL, string(media.Type)).Scan(&created.ID, &created.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: insert region media: %v", models.ErrWriteRejected, err)
	}
	return &created, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

type profileColumns struct {
	id       uuid.NullUUID
	fullName sql.NullString
	phone    sql.NullString
	email    sql.NullString
	avatar   sql.NullString
	userType sql.NullString
}

func (p *profileColumns) targets() []interface{} {
	return []interface{}{&p.id, &p.fullName, &p.phone, &p.email, &p.avatar, &p.userType}
}

func (p *profileColumns) profile() *models.Profile {
	if !p.id.Valid {
		return nil
	}
	return &models.Profile{
		ID:            p.id.UUID,
		FullName:      nullableString(p.fullName),
		PhoneNumber:   p.phone.String,
		Email:         nullableString(p.email),
		ProfileAvatar: nullableString(p.avatar),
		UserType:      models.UserType(p.userType.String),
	}
}

func scanOrder(row rowScanner, withTrucks bool) (*models.Order, error) {
	var (
		order         models.Order
		regionID      uuid.NullUUID
		price         decimal.NullDecimal
		nutQuality    sql.NullString
		status        sql.NullString
		paymentStatus sql.NullString
		dailyLoading  pq.Int64Array
		buyer         profileColumns
		seller        profileColumns
		joinedRegion  uuid.NullUUID
		regionName    sql.NullString
		trucks        []byte
	)

	dest := []interface{}{
		&order.ID, &order.BuyerID, &order.SellerID, &regionID, &order.Quantity, &price,
		&nutQuality, &status, &paymentStatus, &dailyLoading, &order.CreatedAt, &order.UpdatedAt,
	}
	dest = append(dest, buyer.targets()...)
	dest = append(dest, seller.targets()...)
	dest = append(dest, &joinedRegion, &regionName)
	if withTrucks {
		dest = append(dest, &trucks)
	}

	if err := row.Scan(dest...); err != nil {
		return nil, err
	}

	if regionID.Valid {
		id := regionID.UUID
		order.RegionID = &id
	}
	if price.Valid {
		order.PricePerUnit = price.Decimal
	}
	order.NutQuality = models.NutQuality(nutQuality.String)
	order.Status = models.OrderStatus(status.String)
	order.PaymentStatus = paymentStatus.String
	order.DailyLoading = []int64(dailyLoading)
	order.Buyer = buyer.profile()
	order.Seller = seller.profile()
	if joinedRegion.Valid {
		order.Region = &models.Region{ID: joinedRegion.UUID, Name: regionName.String}
	}
	if withTrucks {
		order.TruckDetails = []models.TruckDetail{}
		if len(trucks) > 0 {
			if err := json.Unmarshal(trucks, &order.TruckDetails); err != nil {
				return nil, fmt.Errorf("decode truck details: %w", err)
			}
		}
	}

	return &order, nil
}

func scanOrderMedia(row rowScanner) (*models.OrderMedia, error) {
	var (
		media       models.OrderMedia
		mediaURL    sql.NullString
		mediaType   sql.NullString
		description sql.NullString
		uploadedBy  uuid.NullUUID
	)
	err := row.Scan(&media.ID, &media.OrderID, &mediaURL, &mediaType, &description, &media.UploadedAt, &uploadedBy)
	if err != nil {
		return nil, err
	}
	media.MediaURL = nullableString(mediaURL)
	media.MediaType = models.MediaType(mediaType.String)
	media.Description = nullableString(description)
	if uploadedBy.Valid {
		media.UploadedBy = uploadedBy.UUID
	}
	return &media, nil
}

func nullableString(s sql.NullString) *string {
	if !s.Valid {
		return nil
	}
	v := s.String
	return &v
}
