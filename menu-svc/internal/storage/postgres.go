package storage

import (
	"database/sql"
	"fmt"

	"tableside/menu-svc/internal/domain"
)

type PostgresRepository struct {
	DB *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{DB: db}
}

func (r *PostgresRepository) CreateRestaurant(rest *domain.Restaurant) error {
	return r.DB.QueryRow(`
		INSERT INTO restaurants (name, slug, cuisine_id, address, description, phone, logo_url)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at`,
		rest.Name, rest.Slug, rest.CuisineID, rest.Address, rest.Description, rest.Phone, rest.LogoURL).
		Scan(&rest.ID, &rest.CreatedAt)
}

const restaurantColumns = `id, name, slug, COALESCE(cuisine_id, 0), COALESCE(address, ''),
		COALESCE(description, ''), COALESCE(phone, ''), COALESCE(logo_url, ''), created_at`

func (r *PostgresRepository) ListRestaurants(cuisineID int) ([]domain.Restaurant, error) {
	query := "SELECT " + restaurantColumns + " FROM restaurants"
	args := []interface{}{}
	if cuisineID > 0 {
		query += " WHERE cuisine_id = $1"
		args = append(args, cuisineID)
	}
	query += " ORDER BY created_at DESC"

	rows, err := r.DB.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var restaurants []domain.Restaurant
	for rows.Next() {
		var rest domain.Restaurant
		if err := rows.Scan(&rest.ID, &rest.Name, &rest.Slug, &rest.CuisineID, &rest.Address,
			&rest.Description, &rest.Phone, &rest.LogoURL, &rest.CreatedAt); err != nil {
			continue
		}
		restaurants = append(restaurants, rest)
	}
	return restaurants, nil
}

func (r *PostgresRepository) GetRestaurant(id int) (*domain.Restaurant, error) {
	var rest domain.Restaurant
	err := r.DB.QueryRow("SELECT "+restaurantColumns+" FROM restaurants WHERE id = $1", id).
		Scan(&rest.ID, &rest.Name, &rest.Slug, &rest.CuisineID, &rest.Address,
			&rest.Description, &rest.Phone, &rest.LogoURL, &rest.CreatedAt)
	if err != nil {
		return nil, err
	}

	rest.Features, _ = r.listFeatures(rest.ID)
	rest.SocialLinks, _ = r.listSocialLinks(rest.ID)
	return &rest, nil
}

func (r *PostgresRepository) GetRestaurantBySlug(slug string) (*domain.Restaurant, error) {
	var rest domain.Restaurant
	err := r.DB.QueryRow("SELECT "+restaurantColumns+" FROM restaurants WHERE slug = $1", slug).
		Scan(&rest.ID, &rest.Name, &rest.Slug, &rest.CuisineID, &rest.Address,
			&rest.Description, &rest.Phone, &rest.LogoURL, &rest.CreatedAt)
	if err != nil {
		return nil, err
	}

	rest.Features, _ = r.listFeatures(rest.ID)
	rest.SocialLinks, _ = r.listSocialLinks(rest.ID)
	return &rest, nil
}

func (r *PostgresRepository) UpdateRestaurant(rest *domain.Restaurant) error {
	return r.DB.QueryRow(`
		UPDATE restaurants
		SET name=$1, slug=$2, cuisine_id=$3, address=$4, description=$5, phone=$6, logo_url=$7
		WHERE id=$8
		RETURNING `+restaurantColumns,
		rest.Name, rest.Slug, rest.CuisineID, rest.Address, rest.Description,
		rest.Phone, rest.LogoURL, rest.ID).
		Scan(&rest.ID, &rest.Name, &rest.Slug, &rest.CuisineID, &rest.Address,
			&rest.Description, &rest.Phone, &rest.LogoURL, &rest.CreatedAt)
}

func (r *PostgresRepository) DeleteRestaurant(id int) (int64, error) {
	result, err := r.DB.Exec("DELETE FROM restaurants WHERE id=$1", id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func (r *PostgresRepository) listFeatures(restaurantID int) ([]domain.Feature, error) {
	rows, err := r.DB.Query(`
		SELECT id, restaurant_id, name, enabled
		FROM restaurant_features
		WHERE restaurant_id = $1
		ORDER BY id`, restaurantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var features []domain.Feature
	for rows.Next() {
		var f domain.Feature
		if err := rows.Scan(&f.ID, &f.RestaurantID, &f.Name, &f.Enabled); err != nil {
			continue
		}
		features = append(features, f)
	}
	return features, nil
}

func (r *PostgresRepository) listSocialLinks(restaurantID int) ([]domain.SocialLink, error) {
	rows, err := r.DB.Query(`
		SELECT id, restaurant_id, platform, url
		FROM restaurant_social_links
		WHERE restaurant_id = $1
		ORDER BY id`, restaurantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var links []domain.SocialLink
	for rows.Next() {
		var l domain.SocialLink
		if err := rows.Scan(&l.ID, &l.RestaurantID, &l.Platform, &l.URL); err != nil {
			continue
		}
		links = append(links, l)
	}
	return links, nil
}

// ReplaceFeatures swaps the full set of toggles in one transaction so a
// partial write never leaves a mixed state behind.
func (r *PostgresRepository) ReplaceFeatures(restaurantID int, features []domain.Feature) error {
	tx, err := r.DB.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM restaurant_features WHERE restaurant_id=$1", restaurantID); err != nil {
		return err
	}
	for _, f := range features {
		if _, err := tx.Exec(`
			INSERT INTO restaurant_features (restaurant_id, name, enabled)
			VALUES ($1, $2, $3)`, restaurantID, f.Name, f.Enabled); err != nil {
			return err
		}
	}
	return tx.Commit()
}

func (r *PostgresRepository) ReplaceSocialLinks(restaurantID int, links []domain.SocialLink) error {
	tx, err := r.DB.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM restaurant_social_links WHERE restaurant_id=$1", restaurantID); err != nil {
		return err
	}
	for _, l := range links {
		if _, err := tx.Exec(`
			INSERT INTO restaurant_social_links (restaurant_id, platform, url)
			VALUES ($1, $2, $3)`, restaurantID, l.Platform, l.URL); err != nil {
			return err
		}
	}
	return tx.Commit()
}

func (r *PostgresRepository) CreateCuisine(cuisine *domain.Cuisine) error {
	return r.DB.QueryRow(
		"INSERT INTO cuisines (name, slug) VALUES ($1, $2) RETURNING id",
		cuisine.Name, cuisine.Slug).Scan(&cuisine.ID)
}

func (r *PostgresRepository) ListCuisines() ([]domain.Cuisine, error) {
	rows, err := r.DB.Query("SELECT id, name, COALESCE(slug, '') FROM cuisines ORDER BY name")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cuisines []domain.Cuisine
	for rows.Next() {
		var c domain.Cuisine
		if err := rows.Scan(&c.ID, &c.Name, &c.Slug); err != nil {
			continue
		}
		cuisines = append(cuisines, c)
	}
	return cuisines, nil
}

func (r *PostgresRepository) UpdateCuisine(cuisine *domain.Cuisine) error {
	return r.DB.QueryRow(
		"UPDATE cuisines SET name=$1, slug=$2 WHERE id=$3 RETURNING id, name, COALESCE(slug, '')",
		cuisine.Name, cuisine.Slug, cuisine.ID).
		Scan(&cuisine.ID, &cuisine.Name, &cuisine.Slug)
}

func (r *PostgresRepository) DeleteCuisine(id int) (int64, error) {
	result, err := r.DB.Exec("DELETE FROM cuisines WHERE id=$1", id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func (r *PostgresRepository) CreateCategory(category *domain.DishCategory) error {
	return r.DB.QueryRow(`
		INSERT INTO dish_categories (restaurant_id, name, sort_order)
		VALUES ($1, $2, $3) RETURNING id`,
		category.RestaurantID, category.Name, category.SortOrder).Scan(&category.ID)
}

func (r *PostgresRepository) ListCategories(restaurantID int) ([]domain.DishCategory, error) {
	rows, err := r.DB.Query(`
		SELECT id, restaurant_id, name, sort_order
		FROM dish_categories
		WHERE restaurant_id = $1
		ORDER BY sort_order, id`, restaurantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []domain.DishCategory
	for rows.Next() {
		var c domain.DishCategory
		if err := rows.Scan(&c.ID, &c.RestaurantID, &c.Name, &c.SortOrder); err != nil {
			continue
		}
		categories = append(categories, c)
	}
	return categories, nil
}

func (r *PostgresRepository) UpdateCategory(category *domain.DishCategory) error {
	_, err := r.DB.Exec(`
		UPDATE dish_categories
		SET name=$1, sort_order=$2
		WHERE id=$3 AND restaurant_id=$4`,
		category.Name, category.SortOrder, category.ID, category.RestaurantID)
	return err
}

func (r *PostgresRepository) DeleteCategory(restaurantID, categoryID int) (int64, error) {
	result, err := r.DB.Exec("DELETE FROM dish_categories WHERE id=$1 AND restaurant_id=$2",
		categoryID, restaurantID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func (r *PostgresRepository) CreateDish(dish *domain.Dish) error {
	return r.DB.QueryRow(`
		INSERT INTO dishes (restaurant_id, category_id, name, description, price, image_url)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at`,
		dish.RestaurantID, dish.CategoryID, dish.Name, dish.Description, dish.Price, dish.ImageURL).
		Scan(&dish.ID, &dish.CreatedAt)
}

func (r *PostgresRepository) ListDishes(restaurantID, categoryID int) ([]domain.Dish, error) {
	query := `
		SELECT id, restaurant_id, COALESCE(category_id, 0), name, COALESCE(description, ''),
			price, COALESCE(image_url, ''), created_at
		FROM dishes
		WHERE restaurant_id = $1`
	args := []interface{}{restaurantID}
	if categoryID > 0 {
		query += " AND category_id = $2"
		args = append(args, categoryID)
	}
	query += " ORDER BY created_at DESC"

	rows, err := r.DB.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var dishes []domain.Dish
	for rows.Next() {
		var dish domain.Dish
		if err := rows.Scan(&dish.ID, &dish.RestaurantID, &dish.CategoryID, &dish.Name,
			&dish.Description, &dish.Price, &dish.ImageURL, &dish.CreatedAt); err != nil {
			continue
		}
		dishes = append(dishes, dish)
	}
	return dishes, nil
}

func (r *PostgresRepository) GetDish(restaurantID, dishID int) (*domain.Dish, error) {
	var dish domain.Dish
	err := r.DB.QueryRow(`
		SELECT id, restaurant_id, COALESCE(category_id, 0), name, COALESCE(description, ''),
			price, COALESCE(image_url, ''), created_at
		FROM dishes
		WHERE id = $1 AND restaurant_id = $2`, dishID, restaurantID).
		Scan(&dish.ID, &dish.RestaurantID, &dish.CategoryID, &dish.Name,
			&dish.Description, &dish.Price, &dish.ImageURL, &dish.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &dish, nil
}

func (r *PostgresRepository) UpdateDish(dish *domain.Dish) error {
	_, err := r.DB.Exec(`
		UPDATE dishes
		SET name=$1, description=$2, price=$3, category_id=$4, image_url=$5
		WHERE id=$6 AND restaurant_id=$7`,
		dish.Name, dish.Description, dish.Price, dish.CategoryID, dish.ImageURL,
		dish.ID, dish.RestaurantID)
	return err
}

func (r *PostgresRepository) DeleteDish(restaurantID, dishID int) (int64, error) {
	result, err := r.DB.Exec("DELETE FROM dishes WHERE id=$1 AND restaurant_id=$2", dishID, restaurantID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func (r *PostgresRepository) CreateTable(table *domain.RestaurantTable) error {
	return r.DB.QueryRow(`
		INSERT INTO restaurant_tables (restaurant_id, table_number, capacity, is_active)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at`,
		table.RestaurantID, table.TableNumber, table.Capacity, table.IsActive).
		Scan(&table.ID, &table.CreatedAt)
}

func (r *PostgresRepository) ListTables(restaurantID int) ([]domain.RestaurantTable, error) {
	rows, err := r.DB.Query(`
		SELECT id, restaurant_id, table_number, capacity, is_active, created_at
		FROM restaurant_tables
		WHERE restaurant_id = $1
		ORDER BY table_number`, restaurantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tables []domain.RestaurantTable
	for rows.Next() {
		var table domain.RestaurantTable
		if err := rows.Scan(&table.ID, &table.RestaurantID, &table.TableNumber,
			&table.Capacity, &table.IsActive, &table.CreatedAt); err != nil {
			continue
		}
		tables = append(tables, table)
	}
	return tables, nil
}

func (r *PostgresRepository) GetTable(restaurantID, tableID int) (*domain.RestaurantTable, error) {
	var table domain.RestaurantTable
	err := r.DB.QueryRow(`
		SELECT id, restaurant_id, table_number, capacity, is_active, created_at
		FROM restaurant_tables
		WHERE id = $1 AND restaurant_id = $2`, tableID, restaurantID).
		Scan(&table.ID, &table.RestaurantID, &table.TableNumber,
			&table.Capacity, &table.IsActive, &table.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &table, nil
}

func (r *PostgresRepository) SetTableActive(restaurantID, tableID int, active bool) (int64, error) {
	result, err := r.DB.Exec(
		"UPDATE restaurant_tables SET is_active=$1 WHERE id=$2 AND restaurant_id=$3",
		active, tableID, restaurantID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func (r *PostgresRepository) GetTableQRCode(restaurantID, tableID int) ([]byte, error) {
	var qr []byte
	if err := r.DB.QueryRow(
		"SELECT qr_code FROM restaurant_tables WHERE id = $1 AND restaurant_id = $2",
		tableID, restaurantID).Scan(&qr); err != nil {
		return nil, err
	}
	return qr, nil
}

func (r *PostgresRepository) SaveTableQRCode(restaurantID, tableID int, qr []byte) error {
	_, err := r.DB.Exec("UPDATE restaurant_tables SET qr_code = $1 WHERE id = $2 AND restaurant_id = $3",
		qr, tableID, restaurantID)
	return err
}

func (r *PostgresRepository) EnsureSchema() error {
	statements := []string{
		"ALTER TABLE IF EXISTS restaurants ADD COLUMN IF NOT EXISTS phone TEXT",
		"ALTER TABLE IF EXISTS restaurants ADD COLUMN IF NOT EXISTS logo_url TEXT",
		"ALTER TABLE IF EXISTS restaurant_tables ADD COLUMN IF NOT EXISTS qr_code BYTEA",
	}
	for _, stmt := range statements {
		if _, err := r.DB.Exec(stmt); err != nil {
			return fmt.Errorf("ensure schema `%s`: %w", stmt, err)
		}
	}
	return nil
}
