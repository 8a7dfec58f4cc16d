package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"tableside/order-svc/internal/domain"
)

type PostgresRepository struct {
	DB *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{DB: db}
}

// EnsureSchema patches columns added after the initial deployments. The
// base tables are provisioned by migrations.
func (r *PostgresRepository) EnsureSchema(ctx context.Context) error {
	statements := []string{
		"ALTER TABLE IF EXISTS orders ADD COLUMN IF NOT EXISTS table_id INTEGER",
		"ALTER TABLE IF EXISTS orders ADD COLUMN IF NOT EXISTS completed_at TIMESTAMP",
		"ALTER TABLE IF EXISTS order_items ADD COLUMN IF NOT EXISTS notes TEXT",
	}
	for _, stmt := range statements {
		if _, err := r.DB.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema `%s`: %w", stmt, err)
		}
	}
	return nil
}

// CreateOrder writes the order and its item snapshots in one transaction.
// The active-table lookup shares the transaction, so the table link is read
// from the same snapshot the order is inserted into. The link is best
// effort: an unknown or inactive table does not fail the checkout.
func (r *PostgresRepository) CreateOrder(ctx context.Context, order *domain.Order) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var tableID int
	err = tx.QueryRowContext(ctx, `
		SELECT id FROM restaurant_tables
		WHERE restaurant_id = $1 AND table_number = $2 AND is_active = true
	`, order.RestaurantID, order.TableNumber).Scan(&tableID)
	if err == nil {
		order.TableID = &tableID
	} else if err != sql.ErrNoRows {
		return err
	}

	err = tx.QueryRowContext(ctx, `
		INSERT INTO orders (order_number, restaurant_id, customer_id, table_number, table_id,
			order_type, subtotal, tax_rate, tax_amount, total, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id
	`, order.OrderNumber, order.RestaurantID, order.CustomerID, order.TableNumber, order.TableID,
		order.OrderType, order.Subtotal, order.TaxRate, order.TaxAmount, order.Total,
		order.Status, order.CreatedAt).Scan(&order.ID)
	if err != nil {
		return err
	}

	for i := range order.Items {
		item := &order.Items[i]
		item.OrderID = order.ID
		if err := tx.QueryRowContext(ctx, `
			INSERT INTO order_items (order_id, dish_id, dish_name, dish_image, quantity, price, notes)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			RETURNING id
		`, item.OrderID, item.DishID, item.DishName, item.DishImage, item.Quantity, item.Price, item.Notes).Scan(&item.ID); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (r *PostgresRepository) GetOrder(ctx context.Context, orderID int) (*domain.Order, error) {
	var order domain.Order
	err := r.DB.QueryRowContext(ctx, `
		SELECT id, order_number, restaurant_id, customer_id, table_number, table_id,
			order_type, subtotal, tax_rate, tax_amount, total, status, created_at, completed_at
		FROM orders WHERE id = $1
	`, orderID).Scan(&order.ID, &order.OrderNumber, &order.RestaurantID, &order.CustomerID,
		&order.TableNumber, &order.TableID, &order.OrderType, &order.Subtotal, &order.TaxRate,
		&order.TaxAmount, &order.Total, &order.Status, &order.CreatedAt, &order.CompletedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	items, err := r.listOrderItems(ctx, order.ID)
	if err != nil {
		return nil, err
	}
	order.Items = items

	return &order, nil
}

func (r *PostgresRepository) UpdateOrderStatus(ctx context.Context, orderID int, status domain.OrderStatus, completedAt *time.Time) error {
	result, err := r.DB.ExecContext(ctx, `
		UPDATE orders SET status = $1, completed_at = $2 WHERE id = $3
	`, status, completedAt, orderID)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return fmt.Errorf("order %d not found", orderID)
	}
	return nil
}

func (r *PostgresRepository) ListCustomerOrders(ctx context.Context, restaurantID, customerID int) ([]domain.Order, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, order_number, restaurant_id, customer_id, table_number, table_id,
			order_type, subtotal, tax_rate, tax_amount, total, status, created_at, completed_at
		FROM orders
		WHERE restaurant_id = $1 AND customer_id = $2
		ORDER BY created_at DESC
	`, restaurantID, customerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return r.collectOrders(ctx, rows, false)
}

func (r *PostgresRepository) ListRestaurantOrders(ctx context.Context, restaurantID int) ([]domain.Order, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT o.id, o.order_number, o.restaurant_id, o.customer_id, o.table_number, o.table_id,
			o.order_type, o.subtotal, o.tax_rate, o.tax_amount, o.total, o.status, o.created_at, o.completed_at,
			COALESCE(c.name, ''), COALESCE(c.phone, '')
		FROM orders o
		LEFT JOIN customers c ON o.customer_id = c.id
		WHERE o.restaurant_id = $1
		ORDER BY o.created_at DESC
	`, restaurantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return r.collectOrders(ctx, rows, true)
}

func (r *PostgresRepository) ListAvailableTables(ctx context.Context, restaurantID int) ([]domain.RestaurantTable, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT t.id, t.restaurant_id, t.table_number, t.capacity, t.is_active, t.created_at
		FROM restaurant_tables t
		WHERE t.restaurant_id = $1
		  AND t.is_active = true
		  AND NOT EXISTS (
			SELECT 1 FROM orders o
			WHERE o.table_id = t.id AND o.status IN ('new', 'preparing')
		  )
		ORDER BY t.table_number ASC
	`, restaurantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tables := []domain.RestaurantTable{}
	for rows.Next() {
		var table domain.RestaurantTable
		if err := rows.Scan(&table.ID, &table.RestaurantID, &table.TableNumber, &table.Capacity,
			&table.IsActive, &table.CreatedAt); err != nil {
			continue
		}
		tables = append(tables, table)
	}
	return tables, nil
}

func (r *PostgresRepository) collectOrders(ctx context.Context, rows *sql.Rows, annotated bool) ([]domain.Order, error) {
	orders := []domain.Order{}
	for rows.Next() {
		var order domain.Order
		var err error
		if annotated {
			err = rows.Scan(&order.ID, &order.OrderNumber, &order.RestaurantID, &order.CustomerID,
				&order.TableNumber, &order.TableID, &order.OrderType, &order.Subtotal, &order.TaxRate,
				&order.TaxAmount, &order.Total, &order.Status, &order.CreatedAt, &order.CompletedAt,
				&order.CustomerName, &order.CustomerPhone)
		} else {
			err = rows.Scan(&order.ID, &order.OrderNumber, &order.RestaurantID, &order.CustomerID,
				&order.TableNumber, &order.TableID, &order.OrderType, &order.Subtotal, &order.TaxRate,
				&order.TaxAmount, &order.Total, &order.Status, &order.CreatedAt, &order.CompletedAt)
		}
		if err != nil {
			continue
		}
		orders = append(orders, order)
	}

	for i := range orders {
		items, err := r.listOrderItems(ctx, orders[i].ID)
		if err != nil {
			continue
		}
		orders[i].Items = items
	}

	return orders, nil
}

func (r *PostgresRepository) listOrderItems(ctx context.Context, orderID int) ([]domain.OrderItem, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, order_id, dish_id, dish_name, COALESCE(dish_image, ''), quantity, price, COALESCE(notes, '')
		FROM order_items
		WHERE order_id = $1
		ORDER BY id ASC
	`, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []domain.OrderItem{}
	for rows.Next() {
		var item domain.OrderItem
		if err := rows.Scan(&item.ID, &item.OrderID, &item.DishID, &item.DishName, &item.DishImage,
			&item.Quantity, &item.Price, &item.Notes); err != nil {
			continue
		}
		items = append(items, item)
	}
	return items, nil
}
