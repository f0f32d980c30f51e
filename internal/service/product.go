package service

import (
	"context"
	"fmt"

	"github.com/neuroplan/rewards-engine/internal/domain"
	"github.com/neuroplan/rewards-engine/internal/repository/postgres"
	"github.com/neuroplan/rewards-engine/internal/utils/codes"
)

// ProductService предоставляет админ-операции с товарами магазина
type ProductService struct {
	productRepo domain.ProductRepository
}

// NewProductService создает новый ProductService
func NewProductService(productRepo domain.ProductRepository) *ProductService {
	return &ProductService{productRepo: productRepo}
}

// CreateProduct создает товар, генерируя SKU и слаг
func (s *ProductService) CreateProduct(ctx context.Context, p *domain.Product) (*domain.Product, error) {
	if p.Name == "" {
		return nil, fmt.Errorf("product service: %w: name is required", domain.ErrInvalidInput)
	}
	if p.PriceInCents < 0 {
		return nil, fmt.Errorf("product service: %w: negative price", domain.ErrInvalidInput)
	}

	p.SKU = codes.SKU()
	p.Slug = postgres.Slugify(p.Name)

	created, err := s.productRepo.CreateProduct(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("product service: failed to create product: %w", err)
	}
	return created, nil
}

// UpdateProduct выполняет частичное обновление товара
func (s *ProductService) UpdateProduct(ctx context.Context, id int64, upd domain.ProductUpdate) (*domain.Product, error) {
	updated, err := s.productRepo.UpdateProduct(ctx, id, upd)
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// DeleteProduct — мягкое удаление: товар деактивируется, история
// заказов остается
func (s *ProductService) DeleteProduct(ctx context.Context, id int64) error {
	return s.productRepo.DeactivateProduct(ctx, id)
}

// ListProducts получает товары по фильтру
func (s *ProductService) ListProducts(ctx context.Context, filter domain.ProductFilter) ([]*domain.Product, error) {
	products, err := s.productRepo.ListProducts(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("product service: failed to list products: %w", err)
	}
	return products, nil
}
