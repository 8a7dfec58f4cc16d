package tests

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tableside/order-svc/internal/domain"
	"tableside/order-svc/internal/storage"
)

func newMockRepository(t *testing.T) (*storage.PostgresRepository, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	return storage.NewPostgresRepository(db), mock, func() { db.Close() }
}

func TestPostgresRepository_CreateOrderTransaction(t *testing.T) {
	repository, mock, cleanup := newMockRepository(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT id FROM restaurant_tables").
		WithArgs(10, "1").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(3))
	mock.ExpectQuery("INSERT INTO orders").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))
	mock.ExpectQuery("INSERT INTO order_items").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(101))
	mock.ExpectQuery("INSERT INTO order_items").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(102))
	mock.ExpectCommit()

	order := &domain.Order{
		OrderNumber:  "TBL1-123456",
		RestaurantID: 10,
		CustomerID:   42,
		TableNumber:  "1",
		OrderType:    domain.DineIn,
		Subtotal:     25,
		TaxRate:      domain.TaxRate,
		TaxAmount:    3.75,
		Total:        28.75,
		Status:       domain.StatusNew,
		Items: []domain.OrderItem{
			{DishID: 1, DishName: "Lasagna", Price: 10, Quantity: 2},
			{DishID: 2, DishName: "Tiramisu", Price: 5, Quantity: 1},
		},
	}

	err := repository.CreateOrder(context.Background(), order)

	require.NoError(t, err)
	assert.Equal(t, 7, order.ID)
	require.NotNil(t, order.TableID)
	assert.Equal(t, 3, *order.TableID)
	assert.Equal(t, 7, order.Items[0].OrderID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresRepository_CreateOrderWithoutMatchingTable(t *testing.T) {
	repository, mock, cleanup := newMockRepository(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT id FROM restaurant_tables").
		WithArgs(10, "12").
		WillReturnError(sql.ErrNoRows)
	mock.ExpectQuery("INSERT INTO orders").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(8))
	mock.ExpectQuery("INSERT INTO order_items").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(103))
	mock.ExpectCommit()

	order := &domain.Order{
		RestaurantID: 10,
		TableNumber:  "12",
		Items:        []domain.OrderItem{{DishID: 1, Price: 10, Quantity: 1}},
	}

	err := repository.CreateOrder(context.Background(), order)

	require.NoError(t, err)
	assert.Equal(t, 8, order.ID)
	assert.Nil(t, order.TableID)
}

func TestPostgresRepository_CreateOrderRollsBackOnItemFailure(t *testing.T) {
	repository, mock, cleanup := newMockRepository(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT id FROM restaurant_tables").
		WillReturnError(sql.ErrNoRows)
	mock.ExpectQuery("INSERT INTO orders").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(9))
	mock.ExpectQuery("INSERT INTO order_items").
		WillReturnError(assert.AnError)
	mock.ExpectRollback()

	order := &domain.Order{
		RestaurantID: 10,
		TableNumber:  "2",
		Items:        []domain.OrderItem{{DishID: 1, Price: 10, Quantity: 1}},
	}

	err := repository.CreateOrder(context.Background(), order)

	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresRepository_ListAvailableTables(t *testing.T) {
	repository, mock, cleanup := newMockRepository(t)
	defer cleanup()

	// The query filters out inactive tables and tables with an open order,
	// so the database only hands back table "1" here.
	mock.ExpectQuery("SELECT t.id, t.restaurant_id, t.table_number").
		WithArgs(10).
		WillReturnRows(sqlmock.NewRows([]string{"id", "restaurant_id", "table_number", "capacity", "is_active", "created_at"}).
			AddRow(1, 10, "1", 4, true, time.Now()))

	tables, err := repository.ListAvailableTables(context.Background(), 10)

	require.NoError(t, err)
	require.Len(t, tables, 1)
	assert.Equal(t, "1", tables[0].TableNumber)
	assert.True(t, tables[0].IsActive)
}

func TestPostgresRepository_UpdateOrderStatusMissingOrder(t *testing.T) {
	repository, mock, cleanup := newMockRepository(t)
	defer cleanup()

	mock.ExpectExec("UPDATE orders SET status").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repository.UpdateOrderStatus(context.Background(), 999, domain.StatusPreparing, nil)

	assert.Error(t, err)
}

func newCartStore(t *testing.T) (*storage.RedisCartStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return storage.NewRedisCartStore(client), mr
}

func TestRedisCartStore_RoundTrip(t *testing.T) {
	store, _ := newCartStore(t)
	ctx := context.Background()

	cart := domain.NewCart()
	cart.SetMetadata(domain.CartMetadata{RestaurantID: 10, TableNumber: "3", OrderType: domain.DineIn})
	cart.AddItem(domain.CartItem{DishID: 1, DishName: "Lasagna", Price: 10})

	require.NoError(t, store.Save(ctx, "session-1", cart))

	loaded, err := store.Load(ctx, "session-1")
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, 10, loaded.Metadata.RestaurantID)
	assert.Equal(t, "3", loaded.Metadata.TableNumber)
	require.Len(t, loaded.Items, 1)
	assert.Equal(t, "Lasagna", loaded.Items[0].DishName)
}

func TestRedisCartStore_MissingSessionIsNil(t *testing.T) {
	store, _ := newCartStore(t)

	cart, err := store.Load(context.Background(), "nobody")

	assert.NoError(t, err)
	assert.Nil(t, cart)
}

func TestRedisCartStore_Delete(t *testing.T) {
	store, _ := newCartStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "session-1", domain.NewCart()))
	require.NoError(t, store.Delete(ctx, "session-1"))

	cart, err := store.Load(ctx, "session-1")
	assert.NoError(t, err)
	assert.Nil(t, cart)
}
