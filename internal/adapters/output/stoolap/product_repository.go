package stoolap

import (
	"database/sql"
	"errors"
	"fmt"
	"sync/atomic"

	"jewelshop/internal/domain"
	"jewelshop/internal/ports/output"

	"github.com/sirupsen/logrus"
)

// Compile-time check to ensure ProductRepository implements the output port
var _ output.ProductRepository = (*ProductRepository)(nil)

// ProductRepository struct - Secondary/Driven adapter for the embedded store.
// Ids are assigned from an in-process counter seeded from MAX(id); the
// database is owned exclusively by this single process.
type ProductRepository struct {
	db     *sql.DB
	nextID atomic.Int64
}

// NewProductRepository func - Creates the repository, migrating the schema and
// seeding the catalog when the table is empty. A failure here is fatal at
// startup.
func NewProductRepository(db *sql.DB) *ProductRepository {
	repo := &ProductRepository{db: db}
	if err := repo.migrate(); err != nil {
		panic(err)
	}
	if err := repo.seed(); err != nil {
		panic(err)
	}
	return repo
}

func (r *ProductRepository) migrate() error {
	_, err := r.db.Exec(`CREATE TABLE IF NOT EXISTS products (
		id INTEGER PRIMARY KEY,
		name TEXT NOT NULL,
		price FLOAT NOT NULL,
		image TEXT NOT NULL,
		weight FLOAT NOT NULL
	)`)
	if err != nil {
		return fmt.Errorf("failed to migrate products table: %w", err)
	}

	var maxID sql.NullInt64
	if err := r.db.QueryRow(`SELECT MAX(id) FROM products`).Scan(&maxID); err != nil {
		return fmt.Errorf("failed to read id counter: %w", err)
	}
	if maxID.Valid {
		r.nextID.Store(maxID.Int64)
	}
	return nil
}

// seed inserts the initial catalog exactly once: a non-empty table is left
// untouched, so re-running startup inserts nothing more.
func (r *ProductRepository) seed() error {
	var count int
	if err := r.db.QueryRow(`SELECT COUNT(*) FROM products`).Scan(&count); err != nil {
		return fmt.Errorf("failed to count products: %w", err)
	}
	if count > 0 {
		logrus.Info("Products table already contains data")
		return nil
	}

	for _, p := range domain.SeedProducts() {
		if _, err := r.Insert(p); err != nil {
			return fmt.Errorf("failed to seed product %q: %w", p.Name, err)
		}
		logrus.Infof("Inserted %s into products table", p.Name)
	}
	return nil
}

// Insert func - Persists a new product and returns it with its assigned id
func (r *ProductRepository) Insert(product domain.Product) (*domain.Product, error) {
	product.ID = r.nextID.Add(1)
	_, err := r.db.Exec(
		`INSERT INTO products (id, name, price, image, weight) VALUES (?, ?, ?, ?, ?)`,
		product.ID, product.Name, product.Price, product.Image, product.Weight,
	)
	if err != nil {
		logrus.Errorln(err)
		return nil, fmt.Errorf("failed to insert product: %w", err)
	}
	return &product, nil
}

// ListAll func - Returns every product in the catalog
func (r *ProductRepository) ListAll() ([]domain.Product, error) {
	rows, err := r.db.Query(`SELECT id, name, price, image, weight FROM products ORDER BY id ASC`)
	if err != nil {
		logrus.Errorln(err)
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	defer rows.Close()

	products := []domain.Product{}
	for rows.Next() {
		var p domain.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Price, &p.Image, &p.Weight); err != nil {
			logrus.Errorln(err)
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		logrus.Errorln(err)
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return products, nil
}

// FindByName func - Returns the oldest product with the exact name
func (r *ProductRepository) FindByName(name string) (*domain.Product, error) {
	var p domain.Product
	err := r.db.QueryRow(
		`SELECT id, name, price, image, weight FROM products WHERE name = ? ORDER BY id ASC LIMIT 1`,
		name,
	).Scan(&p.ID, &p.Name, &p.Price, &p.Image, &p.Weight)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrProductNotFound
	}
	if err != nil {
		logrus.Errorln(err)
		return nil, fmt.Errorf("failed to find product: %w", err)
	}
	return &p, nil
}

// DeleteByName func - Removes the oldest product with the exact name and
// returns the removed row. Duplicate names lose only their oldest row.
func (r *ProductRepository) DeleteByName(name string) (*domain.Product, error) {
	product, err := r.FindByName(name)
	if err != nil {
		return nil, err
	}
	if _, err := r.db.Exec(`DELETE FROM products WHERE id = ?`, product.ID); err != nil {
		logrus.Errorln(err)
		return nil, fmt.Errorf("failed to delete product: %w", err)
	}
	return product, nil
}
