package queries

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var (
	ErrCategoryNotFound = errors.New("category not found")
	ErrProductNotFound  = errors.New("product not found")
	ErrSaleNotFound     = errors.New("sale not found")
)

type InventoryReadStore interface {
	ListCategories(ctx context.Context) ([]*CategoryView, error)
	// ListProducts filters by category when non-nil; lowStockOnly keeps
	// products at or below their reorder level.
	ListProducts(ctx context.Context, categoryID *uuid.UUID, lowStockOnly bool) ([]*ProductView, error)
	FindProductByID(ctx context.Context, id uuid.UUID) (*ProductView, error)
	ListRestocks(ctx context.Context, productID *uuid.UUID) ([]*RestockView, error)
	ListSales(ctx context.Context) ([]*SaleView, error)
	FindSaleByID(ctx context.Context, id uuid.UUID) (*SaleView, error)
}

type InventoryQueries interface {
	Categories(ctx context.Context) ([]*CategoryView, error)
	Products(ctx context.Context, categoryID *uuid.UUID, lowStockOnly bool) ([]*ProductView, error)
	ProductByID(ctx context.Context, id uuid.UUID) (*ProductView, error)
	Restocks(ctx context.Context, productID *uuid.UUID) ([]*RestockView, error)
	Sales(ctx context.Context) ([]*SaleView, error)
	SaleByID(ctx context.Context, id uuid.UUID) (*SaleView, error)
}

type inventoryQueriesImpl struct {
	store InventoryReadStore
}

func NewInventoryQueries(store InventoryReadStore) InventoryQueries {
	return &inventoryQueriesImpl{store: store}
}

func (q *inventoryQueriesImpl) Categories(ctx context.Context) ([]*CategoryView, error) {
	return q.store.ListCategories(ctx)
}

func (q *inventoryQueriesImpl) Products(ctx context.Context, categoryID *uuid.UUID, lowStockOnly bool) ([]*ProductView, error) {
	return q.store.ListProducts(ctx, categoryID, lowStockOnly)
}

func (q *inventoryQueriesImpl) ProductByID(ctx context.Context, id uuid.UUID) (*ProductView, error) {
	return q.store.FindProductByID(ctx, id)
}

func (q *inventoryQueriesImpl) Restocks(ctx context.Context, productID *uuid.UUID) ([]*RestockView, error) {
	return q.store.ListRestocks(ctx, productID)
}

func (q *inventoryQueriesImpl) Sales(ctx context.Context) ([]*SaleView, error) {
	return q.store.ListSales(ctx)
}

func (q *inventoryQueriesImpl) SaleByID(ctx context.Context, id uuid.UUID) (*SaleView, error) {
	return q.store.FindSaleByID(ctx, id)
}
