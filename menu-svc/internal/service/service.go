package service

import (
	"errors"

	"tableside/menu-svc/internal/domain"
)

type RestaurantRepository interface {
	CreateRestaurant(rest *domain.Restaurant) error
	ListRestaurants(cuisineID int) ([]domain.Restaurant, error)
	GetRestaurant(id int) (*domain.Restaurant, error)
	GetRestaurantBySlug(slug string) (*domain.Restaurant, error)
	UpdateRestaurant(rest *domain.Restaurant) error
	DeleteRestaurant(id int) (int64, error)
	ReplaceFeatures(restaurantID int, features []domain.Feature) error
	ReplaceSocialLinks(restaurantID int, links []domain.SocialLink) error
}

type CuisineRepository interface {
	CreateCuisine(cuisine *domain.Cuisine) error
	ListCuisines() ([]domain.Cuisine, error)
	UpdateCuisine(cuisine *domain.Cuisine) error
	DeleteCuisine(id int) (int64, error)
}

type DishRepository interface {
	CreateCategory(category *domain.DishCategory) error
	ListCategories(restaurantID int) ([]domain.DishCategory, error)
	UpdateCategory(category *domain.DishCategory) error
	DeleteCategory(restaurantID, categoryID int) (int64, error)
	CreateDish(dish *domain.Dish) error
	ListDishes(restaurantID, categoryID int) ([]domain.Dish, error)
	GetDish(restaurantID, dishID int) (*domain.Dish, error)
	UpdateDish(dish *domain.Dish) error
	DeleteDish(restaurantID, dishID int) (int64, error)
}

type TableRepository interface {
	CreateTable(table *domain.RestaurantTable) error
	ListTables(restaurantID int) ([]domain.RestaurantTable, error)
	GetTable(restaurantID, tableID int) (*domain.RestaurantTable, error)
	SetTableActive(restaurantID, tableID int, active bool) (int64, error)
	GetTableQRCode(restaurantID, tableID int) ([]byte, error)
	SaveTableQRCode(restaurantID, tableID int, qr []byte) error
}

type RestaurantServiceInterface interface {
	Create(rest *domain.Restaurant) error
	List(cuisineID int) ([]domain.Restaurant, error)
	Get(id int) (*domain.Restaurant, error)
	GetBySlug(slug string) (*domain.Restaurant, error)
	Update(rest *domain.Restaurant) error
	Delete(id int) (int64, error)
	ReplaceFeatures(restaurantID int, features []domain.Feature) error
	ReplaceSocialLinks(restaurantID int, links []domain.SocialLink) error
}

type CuisineServiceInterface interface {
	Create(cuisine *domain.Cuisine) error
	List() ([]domain.Cuisine, error)
	Update(cuisine *domain.Cuisine) error
	Delete(id int) (int64, error)
}

type DishServiceInterface interface {
	CreateCategory(category *domain.DishCategory) error
	ListCategories(restaurantID int) ([]domain.DishCategory, error)
	UpdateCategory(category *domain.DishCategory) error
	DeleteCategory(restaurantID, categoryID int) (int64, error)
	Create(dish *domain.Dish) error
	List(restaurantID, categoryID int) ([]domain.Dish, error)
	Get(restaurantID, dishID int) (*domain.Dish, error)
	Update(dish *domain.Dish) error
	Delete(restaurantID, dishID int) (int64, error)
}

type TableServiceInterface interface {
	Create(table *domain.RestaurantTable) error
	List(restaurantID int) ([]domain.RestaurantTable, error)
	SetActive(restaurantID, tableID int, active bool) (int64, error)
	QRCode(restaurantID, tableID int) ([]byte, error)
}

var ErrInvalidPayload = errors.New("invalid payload")

type RestaurantService struct {
	repo RestaurantRepository
}

func NewRestaurantService(repo RestaurantRepository) *RestaurantService {
	return &RestaurantService{repo: repo}
}

func (s *RestaurantService) Create(rest *domain.Restaurant) error {
	if rest.Name == "" || rest.Slug == "" {
		return ErrInvalidPayload
	}
	return s.repo.CreateRestaurant(rest)
}

func (s *RestaurantService) List(cuisineID int) ([]domain.Restaurant, error) {
	return s.repo.ListRestaurants(cuisineID)
}

func (s *RestaurantService) Get(id int) (*domain.Restaurant, error) {
	return s.repo.GetRestaurant(id)
}

func (s *RestaurantService) GetBySlug(slug string) (*domain.Restaurant, error) {
	return s.repo.GetRestaurantBySlug(slug)
}

func (s *RestaurantService) Update(rest *domain.Restaurant) error {
	return s.repo.UpdateRestaurant(rest)
}

func (s *RestaurantService) Delete(id int) (int64, error) {
	return s.repo.DeleteRestaurant(id)
}

func (s *RestaurantService) ReplaceFeatures(restaurantID int, features []domain.Feature) error {
	return s.repo.ReplaceFeatures(restaurantID, features)
}

func (s *RestaurantService) ReplaceSocialLinks(restaurantID int, links []domain.SocialLink) error {
	return s.repo.ReplaceSocialLinks(restaurantID, links)
}

var _ RestaurantServiceInterface = (*RestaurantService)(nil)

type CuisineService struct {
	repo CuisineRepository
}

func NewCuisineService(repo CuisineRepository) *CuisineService {
	return &CuisineService{repo: repo}
}

func (s *CuisineService) Create(cuisine *domain.Cuisine) error {
	if cuisine.Name == "" {
		return ErrInvalidPayload
	}
	return s.repo.CreateCuisine(cuisine)
}

func (s *CuisineService) List() ([]domain.Cuisine, error) {
	return s.repo.ListCuisines()
}

func (s *CuisineService) Update(cuisine *domain.Cuisine) error {
	return s.repo.UpdateCuisine(cuisine)
}

func (s *CuisineService) Delete(id int) (int64, error) {
	return s.repo.DeleteCuisine(id)
}

var _ CuisineServiceInterface = (*CuisineService)(nil)

type DishService struct {
	repo DishRepository
}

func NewDishService(repo DishRepository) *DishService {
	return &DishService{repo: repo}
}

func (s *DishService) CreateCategory(category *domain.DishCategory) error {
	if category.Name == "" {
		return ErrInvalidPayload
	}
	return s.repo.CreateCategory(category)
}

func (s *DishService) ListCategories(restaurantID int) ([]domain.DishCategory, error) {
	return s.repo.ListCategories(restaurantID)
}

func (s *DishService) UpdateCategory(category *domain.DishCategory) error {
	return s.repo.UpdateCategory(category)
}

func (s *DishService) DeleteCategory(restaurantID, categoryID int) (int64, error) {
	return s.repo.DeleteCategory(restaurantID, categoryID)
}

func (s *DishService) Create(dish *domain.Dish) error {
	if dish.Name == "" || dish.Price < 0 {
		return ErrInvalidPayload
	}
	return s.repo.CreateDish(dish)
}

func (s *DishService) List(restaurantID, categoryID int) ([]domain.Dish, error) {
	return s.repo.ListDishes(restaurantID, categoryID)
}

func (s *DishService) Get(restaurantID, dishID int) (*domain.Dish, error) {
	return s.repo.GetDish(restaurantID, dishID)
}

func (s *DishService) Update(dish *domain.Dish) error {
	return s.repo.UpdateDish(dish)
}

func (s *DishService) Delete(restaurantID, dishID int) (int64, error) {
	return s.repo.DeleteDish(restaurantID, dishID)
}

var _ DishServiceInterface = (*DishService)(nil)

type TableService struct {
	repo      TableRepository
	qrEncoder TableQRGenerator
}

func NewTableService(repo TableRepository, qr TableQRGenerator) *TableService {
	return &TableService{repo: repo, qrEncoder: qr}
}

func (s *TableService) Create(table *domain.RestaurantTable) error {
	if table.TableNumber == "" {
		return ErrInvalidPayload
	}
	if table.Capacity <= 0 {
		table.Capacity = 2
	}
	table.IsActive = true
	return s.repo.CreateTable(table)
}

func (s *TableService) List(restaurantID int) ([]domain.RestaurantTable, error) {
	return s.repo.ListTables(restaurantID)
}

func (s *TableService) SetActive(restaurantID, tableID int, active bool) (int64, error) {
	return s.repo.SetTableActive(restaurantID, tableID, active)
}

// QRCode serves the stored PNG, regenerating and re-caching it when the
// column is still empty.
func (s *TableService) QRCode(restaurantID, tableID int) ([]byte, error) {
	qr, err := s.repo.GetTableQRCode(restaurantID, tableID)
	if err != nil {
		return nil, err
	}
	if len(qr) == 0 && s.qrEncoder != nil {
		table, err := s.repo.GetTable(restaurantID, tableID)
		if err != nil {
			return nil, err
		}
		regenerated, err := s.qrEncoder.Generate(restaurantID, table.TableNumber)
		if err != nil {
			return nil, err
		}
		_ = s.repo.SaveTableQRCode(restaurantID, tableID, regenerated)
		return regenerated, nil
	}
	return qr, nil
}

var _ TableServiceInterface = (*TableService)(nil)
