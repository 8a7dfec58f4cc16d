package mocks

import (
	"github.com/stretchr/testify/mock"

	"tableside/menu-svc/internal/domain"
)

type RestaurantRepository struct {
	mock.Mock
}

func (m *RestaurantRepository) CreateRestaurant(rest *domain.Restaurant) error {
	return m.Called(rest).Error(0)
}

func (m *RestaurantRepository) ListRestaurants(cuisineID int) ([]domain.Restaurant, error) {
	args := m.Called(cuisineID)
	var restaurants []domain.Restaurant
	if args.Get(0) != nil {
		restaurants = args.Get(0).([]domain.Restaurant)
	}
	return restaurants, args.Error(1)
}

func (m *RestaurantRepository) GetRestaurant(id int) (*domain.Restaurant, error) {
	args := m.Called(id)
	var rest *domain.Restaurant
	if args.Get(0) != nil {
		rest = args.Get(0).(*domain.Restaurant)
	}
	return rest, args.Error(1)
}

func (m *RestaurantRepository) GetRestaurantBySlug(slug string) (*domain.Restaurant, error) {
	args := m.Called(slug)
	var rest *domain.Restaurant
	if args.Get(0) != nil {
		rest = args.Get(0).(*domain.Restaurant)
	}
	return rest, args.Error(1)
}

func (m *RestaurantRepository) UpdateRestaurant(rest *domain.Restaurant) error {
	return m.Called(rest).Error(0)
}

func (m *RestaurantRepository) DeleteRestaurant(id int) (int64, error) {
	args := m.Called(id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *RestaurantRepository) ReplaceFeatures(restaurantID int, features []domain.Feature) error {
	return m.Called(restaurantID, features).Error(0)
}

func (m *RestaurantRepository) ReplaceSocialLinks(restaurantID int, links []domain.SocialLink) error {
	return m.Called(restaurantID, links).Error(0)
}

type CuisineRepository struct {
	mock.Mock
}

func (m *CuisineRepository) CreateCuisine(cuisine *domain.Cuisine) error {
	return m.Called(cuisine).Error(0)
}

func (m *CuisineRepository) ListCuisines() ([]domain.Cuisine, error) {
	args := m.Called()
	var cuisines []domain.Cuisine
	if args.Get(0) != nil {
		cuisines = args.Get(0).([]domain.Cuisine)
	}
	return cuisines, args.Error(1)
}

func (m *CuisineRepository) UpdateCuisine(cuisine *domain.Cuisine) error {
	return m.Called(cuisine).Error(0)
}

func (m *CuisineRepository) DeleteCuisine(id int) (int64, error) {
	args := m.Called(id)
	return args.Get(0).(int64), args.Error(1)
}

type DishRepository struct {
	mock.Mock
}

func (m *DishRepository) CreateCategory(category *domain.DishCategory) error {
	return m.Called(category).Error(0)
}

func (m *DishRepository) ListCategories(restaurantID int) ([]domain.DishCategory, error) {
	args := m.Called(restaurantID)
	var categories []domain.DishCategory
	if args.Get(0) != nil {
		categories = args.Get(0).([]domain.DishCategory)
	}
	return categories, args.Error(1)
}

func (m *DishRepository) UpdateCategory(category *domain.DishCategory) error {
	return m.Called(category).Error(0)
}

func (m *DishRepository) DeleteCategory(restaurantID, categoryID int) (int64, error) {
	args := m.Called(restaurantID, categoryID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *DishRepository) CreateDish(dish *domain.Dish) error {
	return m.Called(dish).Error(0)
}

func (m *DishRepository) ListDishes(restaurantID, categoryID int) ([]domain.Dish, error) {
	args := m.Called(restaurantID, categoryID)
	var dishes []domain.Dish
	if args.Get(0) != nil {
		dishes = args.Get(0).([]domain.Dish)
	}
	return dishes, args.Error(1)
}

func (m *DishRepository) GetDish(restaurantID, dishID int) (*domain.Dish, error) {
	args := m.Called(restaurantID, dishID)
	var dish *domain.Dish
	if args.Get(0) != nil {
		dish = args.Get(0).(*domain.Dish)
	}
	return dish, args.Error(1)
}

func (m *DishRepository) UpdateDish(dish *domain.Dish) error {
	return m.Called(dish).Error(0)
}

func (m *DishRepository) DeleteDish(restaurantID, dishID int) (int64, error) {
	args := m.Called(restaurantID, dishID)
	return args.Get(0).(int64), args.Error(1)
}

type TableRepository struct {
	mock.Mock
}

func (m *TableRepository) CreateTable(table *domain.RestaurantTable) error {
	return m.Called(table).Error(0)
}

func (m *TableRepository) ListTables(restaurantID int) ([]domain.RestaurantTable, error) {
	args := m.Called(restaurantID)
	var tables []domain.RestaurantTable
	if args.Get(0) != nil {
		tables = args.Get(0).([]domain.RestaurantTable)
	}
	return tables, args.Error(1)
}

func (m *TableRepository) GetTable(restaurantID, tableID int) (*domain.RestaurantTable, error) {
	args := m.Called(restaurantID, tableID)
	var table *domain.RestaurantTable
	if args.Get(0) != nil {
		table = args.Get(0).(*domain.RestaurantTable)
	}
	return table, args.Error(1)
}

func (m *TableRepository) SetTableActive(restaurantID, tableID int, active bool) (int64, error) {
	args := m.Called(restaurantID, tableID, active)
	return args.Get(0).(int64), args.Error(1)
}

func (m *TableRepository) GetTableQRCode(restaurantID, tableID int) ([]byte, error) {
	args := m.Called(restaurantID, tableID)
	var qr []byte
	if args.Get(0) != nil {
		qr = args.Get(0).([]byte)
	}
	return qr, args.Error(1)
}

func (m *TableRepository) SaveTableQRCode(restaurantID, tableID int, qr []byte) error {
	return m.Called(restaurantID, tableID, qr).Error(0)
}

type TableQRGenerator struct {
	mock.Mock
}

func (m *TableQRGenerator) Generate(restaurantID int, tableNumber string) ([]byte, error) {
	args := m.Called(restaurantID, tableNumber)
	var qr []byte
	if args.Get(0) != nil {
		qr = args.Get(0).([]byte)
	}
	return qr, args.Error(1)
}
