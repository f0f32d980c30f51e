package postgres

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/neuroplan/rewards-engine/internal/domain"
)

// ProductRepository реализует domain.ProductRepository
type ProductRepository struct {
	db DBTX
}

// NewProductRepository создает новый ProductRepository
func NewProductRepository(db DBTX) *ProductRepository {
	return &ProductRepository{db: db}
}

const productColumns = `id, sku, slug, name, description, category, price_in_cents, points_price,
	points_only, stock, low_stock_threshold, is_active, is_featured, created_at, updated_at`

func scanProduct(row pgx.Row) (*domain.Product, error) {
	p := &domain.Product{}
	err := row.Scan(
		&p.ID, &p.SKU, &p.Slug, &p.Name, &p.Description, &p.Category, &p.PriceInCents, &p.PointsPrice,
		&p.PointsOnly, &p.Stock, &p.LowStockThreshold, &p.IsActive, &p.IsFeatured, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return p, nil
}

// CreateProduct создает новый товар
func (r *ProductRepository) CreateProduct(ctx context.Context, p *domain.Product) (*domain.Product, error) {
	err := r.db.QueryRow(ctx,
		`INSERT INTO store_products (sku, slug, name, description, category, price_in_cents, points_price,
			points_only, stock, low_stock_threshold, is_active, is_featured)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		 RETURNING id, created_at, updated_at`,
		p.SKU, p.Slug, p.Name, p.Description, p.Category, p.PriceInCents, p.PointsPrice,
		p.PointsOnly, p.Stock, p.LowStockThreshold, p.IsActive, p.IsFeatured,
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to create product %q: %w", p.Name, err)
	}
	return p, nil
}

// UpdateProduct выполняет частичное обновление товара
func (r *ProductRepository) UpdateProduct(ctx context.Context, id int64, upd domain.ProductUpdate) (*domain.Product, error) {
	set := []string{"updated_at = now()"}
	args := []any{id}

	add := func(col string, val any) {
		args = append(args, val)
		set = append(set, col+" = $"+strconv.Itoa(len(args)))
	}

	if upd.Name != nil {
		add("name", *upd.Name)
		add("slug", Slugify(*upd.Name))
	}
	if upd.Description != nil {
		add("description", *upd.Description)
	}
	if upd.Category != nil {
		add("category", *upd.Category)
	}
	if upd.PriceInCents != nil {
		add("price_in_cents", *upd.PriceInCents)
	}
	if upd.PointsPrice != nil {
		add("points_price", *upd.PointsPrice)
	}
	if upd.PointsOnly != nil {
		add("points_only", *upd.PointsOnly)
	}
	if upd.Stock != nil {
		add("stock", *upd.Stock)
	}
	if upd.LowStockThreshold != nil {
		add("low_stock_threshold", *upd.LowStockThreshold)
	}
	if upd.IsActive != nil {
		add("is_active", *upd.IsActive)
	}
	if upd.IsFeatured != nil {
		add("is_featured", *upd.IsFeatured)
	}

	product, err := scanProduct(r.db.QueryRow(ctx,
		`UPDATE store_products SET `+strings.Join(set, ", ")+` WHERE id = $1 RETURNING `+productColumns,
		args...,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrProductNotFound
		}
		return nil, fmt.Errorf("repository: failed to update product %d: %w", id, err)
	}
	return product, nil
}

// DeactivateProduct — мягкое удаление товара
func (r *ProductRepository) DeactivateProduct(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE store_products SET is_active = FALSE, updated_at = now() WHERE id = $1`,
		id,
	)
	if err != nil {
		return fmt.Errorf("repository: failed to deactivate product %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrProductNotFound
	}
	return nil
}

// GetProduct получает товар по идентификатору
func (r *ProductRepository) GetProduct(ctx context.Context, id int64) (*domain.Product, error) {
	product, err := scanProduct(r.db.QueryRow(ctx,
		`SELECT `+productColumns+` FROM store_products WHERE id = $1`, id,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrProductNotFound
		}
		return nil, fmt.Errorf("repository: failed to get product %d: %w", id, err)
	}
	return product, nil
}

// ListProducts получает товары по фильтру
func (r *ProductRepository) ListProducts(ctx context.Context, filter domain.ProductFilter) ([]*domain.Product, error) {
	where := []string{"TRUE"}
	args := []any{}

	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		n := strconv.Itoa(len(args))
		where = append(where, "(name ILIKE $"+n+" OR description ILIKE $"+n+")")
	}
	if filter.Category != nil {
		args = append(args, *filter.Category)
		where = append(where, "category = $"+strconv.Itoa(len(args)))
	}
	if filter.Active != nil {
		args = append(args, *filter.Active)
		where = append(where, "is_active = $"+strconv.Itoa(len(args)))
	}

	rows, err := r.db.Query(ctx,
		`SELECT `+productColumns+` FROM store_products WHERE `+strings.Join(where, " AND ")+
			` ORDER BY created_at DESC`,
		args...,
	)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to list products: %w", err)
	}
	defer rows.Close()

	var products []*domain.Product
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("repository: failed to scan product: %w", err)
		}
		products = append(products, product)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating products: %w", err)
	}

	return products, nil
}

// Slugify строит url-слаг из названия товара
func Slugify(name string) string {
	var b strings.Builder
	prevDash := true
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)
			prevDash = false
		default:
			if !prevDash {
				b.WriteByte('-')
				prevDash = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
