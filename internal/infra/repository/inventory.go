package repository

import (
	"context"

	"samhotel-api/internal/domain/inventory"
	"samhotel-api/internal/infra"
	"samhotel-api/internal/infra/db"
	"samhotel-api/internal/pkg/pgconv"
	"samhotel-api/internal/usecase/shared"

	"github.com/google/uuid"
)

type InventoryRepository struct {
	db db.DBTX
}

func NewInventoryRepository(dbtx db.DBTX) shared.InventoryRepository {
	return &InventoryRepository{db: dbtx}
}

func (r *InventoryRepository) CreateCategory(ctx context.Context, c *inventory.Category) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO categories (id, name, description) VALUES ($1, $2, $3)`,
		pgconv.UUIDToPgtype(c.ID()), c.Name(), c.Description(),
	)
	return infra.WrapRepoErr(err)
}

func (r *InventoryRepository) UpdateCategory(ctx context.Context, c *inventory.Category) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE categories SET name = $2, description = $3 WHERE id = $1`,
		pgconv.UUIDToPgtype(c.ID()), c.Name(), c.Description(),
	)
	if err != nil {
		return infra.WrapRepoErr(err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(errNoRowsAffected, infra.NotFoundError)
	}
	return nil
}

func (r *InventoryRepository) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM categories WHERE id = $1`, pgconv.UUIDToPgtype(id))
	if err != nil {
		return infra.WrapRepoErr(err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(errNoRowsAffected, infra.NotFoundError)
	}
	return nil
}

func (r *InventoryRepository) CreateProduct(ctx context.Context, p *inventory.Product) error {
	const query = `
		INSERT INTO products (
			id, category_id, name, sku, description,
			cost_cents, selling_cents, stock_quantity, reorder_level, is_active
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err := r.db.Exec(ctx, query,
		pgconv.UUIDToPgtype(p.ID()),
		pgconv.UUIDPtrToPgtype(p.CategoryID()),
		p.Name(),
		p.SKU(),
		p.Description(),
		p.CostPrice().Cents(),
		p.SellingPrice().Cents(),
		p.StockQuantity(),
		p.ReorderLevel(),
		p.IsActive(),
	)
	return infra.WrapRepoErr(err)
}

// UpdateProduct leaves stock_quantity alone; stock only moves through
// restocks and sales.
func (r *InventoryRepository) UpdateProduct(ctx context.Context, p *inventory.Product) error {
	const query = `
		UPDATE products SET
			category_id = $2,
			name = $3,
			description = $4,
			cost_cents = $5,
			selling_cents = $6,
			reorder_level = $7,
			is_active = $8
		WHERE id = $1`

	tag, err := r.db.Exec(ctx, query,
		pgconv.UUIDToPgtype(p.ID()),
		pgconv.UUIDPtrToPgtype(p.CategoryID()),
		p.Name(),
		p.Description(),
		p.CostPrice().Cents(),
		p.SellingPrice().Cents(),
		p.ReorderLevel(),
		p.IsActive(),
	)
	if err != nil {
		return infra.WrapRepoErr(err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(errNoRowsAffected, infra.NotFoundError)
	}
	return nil
}

func (r *InventoryRepository) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM products WHERE id = $1`, pgconv.UUIDToPgtype(id))
	if err != nil {
		return infra.WrapRepoErr(err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(errNoRowsAffected, infra.NotFoundError)
	}
	return nil
}

func (r *InventoryRepository) CreateRestock(ctx context.Context, rs *inventory.Restock) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO restocks (id, product_id, quantity, note) VALUES ($1, $2, $3, $4)`,
		pgconv.UUIDToPgtype(rs.ID()), pgconv.UUIDToPgtype(rs.ProductID()), rs.Quantity(), rs.Note(),
	)
	if err != nil {
		return infra.WrapRepoErr(err)
	}

	_, err = r.db.Exec(ctx,
		`UPDATE products SET stock_quantity = stock_quantity + $2 WHERE id = $1`,
		pgconv.UUIDToPgtype(rs.ProductID()), rs.Quantity(),
	)
	return infra.WrapRepoErr(err)
}

func (r *InventoryRepository) CreateSale(ctx context.Context, s *inventory.Sale) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO sales (id, customer_name, cashier_id, payment_method, total_cents)
		 VALUES ($1, $2, $3, $4, $5)`,
		pgconv.UUIDToPgtype(s.ID()),
		s.CustomerName(),
		pgconv.UUIDPtrToPgtype(s.CashierID()),
		s.PaymentMethod(),
		s.Total().Cents(),
	)
	if err != nil {
		return infra.WrapRepoErr(err)
	}

	for _, item := range s.Items() {
		_, err = r.db.Exec(ctx,
			`INSERT INTO sale_items (sale_id, product_id, quantity, price_cents, subtotal_cents)
			 VALUES ($1, $2, $3, $4, $5)`,
			pgconv.UUIDToPgtype(s.ID()),
			pgconv.UUIDToPgtype(item.ProductID()),
			item.Quantity(),
			item.Price().Cents(),
			item.Subtotal().Cents(),
		)
		if err != nil {
			return infra.WrapRepoErr(err)
		}

		// The guard clause makes oversell fail here instead of tripping the
		// CHECK constraint with a less specific error.
		tag, err := r.db.Exec(ctx,
			`UPDATE products SET stock_quantity = stock_quantity - $2
			 WHERE id = $1 AND stock_quantity >= $2`,
			pgconv.UUIDToPgtype(item.ProductID()), item.Quantity(),
		)
		if err != nil {
			return infra.WrapRepoErr(err)
		}
		if tag.RowsAffected() == 0 {
			return infra.WrapRepoErr(errNoRowsAffected, infra.ConflictError)
		}
	}
	return nil
}
