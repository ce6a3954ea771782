package repository

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/aircloud/supportbot/internal/domain"
)

// ProductRepository handles product persistence
type ProductRepository struct {
	db *DB
}

// NewProductRepository creates a new product repository
func NewProductRepository(db *DB) *ProductRepository {
	return &ProductRepository{db: db}
}

// Create adds a product to the catalog. All three text fields are required.
func (r *ProductRepository) Create(product *domain.Product) error {
	if strings.TrimSpace(product.Name) == "" ||
		strings.TrimSpace(product.Price) == "" ||
		strings.TrimSpace(product.Description) == "" {
		return fmt.Errorf("%w: name, price and description are required", domain.ErrValidation)
	}

	if product.ID == "" {
		product.ID = uuid.New().String()
	}
	product.InStock = true

	_, err := r.db.Exec(`
		INSERT INTO products (id, name, price, description, in_stock, created_at)
		VALUES (?, ?, ?, ?, 1, ?)
	`, product.ID, product.Name, product.Price, product.Description, time.Now())

	return err
}

// List retrieves all products in insertion order.
func (r *ProductRepository) List() ([]*domain.Product, error) {
	rows, err := r.db.Query(`
		SELECT id, name, price, description, in_stock
		FROM products ORDER BY created_at ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	// Never nil for a healthy read: the pipeline uses a nil slice to mean
	// the catalog could not be read at all.
	products := []*domain.Product{}
	for rows.Next() {
		product := &domain.Product{}
		var inStock int

		if err := rows.Scan(&product.ID, &product.Name, &product.Price,
			&product.Description, &inStock); err != nil {
			return nil, err
		}

		product.InStock = inStock != 0
		products = append(products, product)
	}

	return products, rows.Err()
}
