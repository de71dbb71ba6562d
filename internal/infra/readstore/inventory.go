package readstore

import (
	"context"

	"samhotel-api/internal/domain/booking"
	"samhotel-api/internal/infra"
	"samhotel-api/internal/infra/db"
	"samhotel-api/internal/pkg/pgconv"
	"samhotel-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

type InventoryReadStore struct {
	db db.DBTX
}

func NewInventoryReadStore(dbtx db.DBTX) queries.InventoryReadStore {
	return &InventoryReadStore{db: dbtx}
}

func (s *InventoryReadStore) ListCategories(ctx context.Context) ([]*queries.CategoryView, error) {
	const query = `
		SELECT c.id, c.name, c.description, count(p.id)
		FROM categories c
		LEFT JOIN products p ON p.category_id = c.id
		GROUP BY c.id, c.name, c.description
		ORDER BY c.name ASC`

	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return nil, infra.WrapRepoErr(err)
	}
	defer rows.Close()

	views := make([]*queries.CategoryView, 0)
	for rows.Next() {
		var (
			pgID pgtype.UUID
			view queries.CategoryView
		)
		if err := rows.Scan(&pgID, &view.Name, &view.Description, &view.Products); err != nil {
			return nil, infra.WrapRepoErr(err)
		}
		view.ID = uuid.UUID(pgID.Bytes)
		views = append(views, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(err)
	}
	return views, nil
}

const productViewColumns = `
	p.id, p.category_id, c.name AS category_name,
	p.name, p.sku, p.description,
	p.cost_cents, p.selling_cents, p.stock_quantity, p.reorder_level, p.is_active`

func (s *InventoryReadStore) ListProducts(ctx context.Context, categoryID *uuid.UUID, lowStockOnly bool) ([]*queries.ProductView, error) {
	query := `
		SELECT ` + productViewColumns + `
		FROM products p
		LEFT JOIN categories c ON c.id = p.category_id
		WHERE ($1::uuid IS NULL OR p.category_id = $1)
		  AND ($2::boolean IS FALSE OR p.stock_quantity <= p.reorder_level)
		ORDER BY p.name ASC`

	rows, err := s.db.Query(ctx, query, pgconv.UUIDPtrToPgtype(categoryID), lowStockOnly)
	if err != nil {
		return nil, infra.WrapRepoErr(err)
	}
	defer rows.Close()

	views := make([]*queries.ProductView, 0)
	for rows.Next() {
		view, err := scanProductView(rows)
		if err != nil {
			return nil, err
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(err)
	}
	return views, nil
}

func (s *InventoryReadStore) FindProductByID(ctx context.Context, id uuid.UUID) (*queries.ProductView, error) {
	query := `
		SELECT ` + productViewColumns + `
		FROM products p
		LEFT JOIN categories c ON c.id = p.category_id
		WHERE p.id = $1`

	rows, err := s.db.Query(ctx, query, pgconv.UUIDToPgtype(id))
	if err != nil {
		return nil, infra.WrapRepoErr(err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, infra.WrapRepoErr(err)
		}
		return nil, infra.WrapRepoErr(pgx.ErrNoRows)
	}
	return scanProductView(rows)
}

func scanProductView(rows pgx.Rows) (*queries.ProductView, error) {
	var (
		pgID         pgtype.UUID
		pgCategoryID pgtype.UUID
		categoryName pgtype.Text
		costCents    int64
		sellingCents int64
		view         queries.ProductView
	)
	err := rows.Scan(&pgID, &pgCategoryID, &categoryName,
		&view.Name, &view.SKU, &view.Description,
		&costCents, &sellingCents, &view.StockQuantity, &view.ReorderLevel, &view.IsActive)
	if err != nil {
		return nil, infra.WrapRepoErr(err)
	}

	view.ID = uuid.UUID(pgID.Bytes)
	view.CategoryID = pgconv.UUIDPtrFromPgtype(pgCategoryID)
	view.CategoryName = pgconv.StringPtrFromPgtype(categoryName)
	view.CostPrice = booking.NewMoney(costCents).String()
	view.SellingPrice = booking.NewMoney(sellingCents).String()
	view.NeedsReorder = view.StockQuantity <= view.ReorderLevel
	return &view, nil
}

func (s *InventoryReadStore) ListRestocks(ctx context.Context, productID *uuid.UUID) ([]*queries.RestockView, error) {
	const query = `
		SELECT r.id, r.product_id, p.name, r.quantity, r.note, r.date
		FROM restocks r
		JOIN products p ON p.id = r.product_id
		WHERE ($1::uuid IS NULL OR r.product_id = $1)
		ORDER BY r.date DESC`

	rows, err := s.db.Query(ctx, query, pgconv.UUIDPtrToPgtype(productID))
	if err != nil {
		return nil, infra.WrapRepoErr(err)
	}
	defer rows.Close()

	views := make([]*queries.RestockView, 0)
	for rows.Next() {
		var (
			pgID, pgProductID pgtype.UUID
			date              pgtype.Timestamptz
			view              queries.RestockView
		)
		if err := rows.Scan(&pgID, &pgProductID, &view.ProductName, &view.Quantity, &view.Note, &date); err != nil {
			return nil, infra.WrapRepoErr(err)
		}
		view.ID = uuid.UUID(pgID.Bytes)
		view.ProductID = uuid.UUID(pgProductID.Bytes)
		view.Date = date.Time
		views = append(views, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(err)
	}
	return views, nil
}

func (s *InventoryReadStore) ListSales(ctx context.Context) ([]*queries.SaleView, error) {
	const query = `
		SELECT id, customer_name, cashier_id, payment_method, total_cents, date
		FROM sales
		ORDER BY date DESC`

	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return nil, infra.WrapRepoErr(err)
	}

	views := make([]*queries.SaleView, 0)
	for rows.Next() {
		view, err := scanSaleHeader(rows)
		if err != nil {
			rows.Close()
			return nil, err
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, infra.WrapRepoErr(err)
	}
	rows.Close()

	for _, view := range views {
		items, err := s.saleItems(ctx, view.ID)
		if err != nil {
			return nil, err
		}
		view.Items = items
	}
	return views, nil
}

func (s *InventoryReadStore) FindSaleByID(ctx context.Context, id uuid.UUID) (*queries.SaleView, error) {
	const query = `
		SELECT id, customer_name, cashier_id, payment_method, total_cents, date
		FROM sales WHERE id = $1`

	rows, err := s.db.Query(ctx, query, pgconv.UUIDToPgtype(id))
	if err != nil {
		return nil, infra.WrapRepoErr(err)
	}

	if !rows.Next() {
		defer rows.Close()
		if err := rows.Err(); err != nil {
			return nil, infra.WrapRepoErr(err)
		}
		return nil, infra.WrapRepoErr(pgx.ErrNoRows)
	}
	view, err := scanSaleHeader(rows)
	rows.Close()
	if err != nil {
		return nil, err
	}

	items, err := s.saleItems(ctx, view.ID)
	if err != nil {
		return nil, err
	}
	view.Items = items
	return view, nil
}

func scanSaleHeader(rows pgx.Rows) (*queries.SaleView, error) {
	var (
		pgID       pgtype.UUID
		cashierID  pgtype.UUID
		totalCents int64
		date       pgtype.Timestamptz
		view       queries.SaleView
	)
	err := rows.Scan(&pgID, &view.CustomerName, &cashierID, &view.PaymentMethod, &totalCents, &date)
	if err != nil {
		return nil, infra.WrapRepoErr(err)
	}

	view.ID = uuid.UUID(pgID.Bytes)
	view.CashierID = pgconv.UUIDPtrFromPgtype(cashierID)
	view.Total = booking.NewMoney(totalCents).String()
	view.Date = date.Time
	return &view, nil
}

func (s *InventoryReadStore) saleItems(ctx context.Context, saleID uuid.UUID) ([]queries.SaleItemView, error) {
	const query = `
		SELECT i.product_id, p.name, i.quantity, i.price_cents, i.subtotal_cents
		FROM sale_items i
		JOIN products p ON p.id = i.product_id
		WHERE i.sale_id = $1`

	rows, err := s.db.Query(ctx, query, pgconv.UUIDToPgtype(saleID))
	if err != nil {
		return nil, infra.WrapRepoErr(err)
	}
	defer rows.Close()

	items := make([]queries.SaleItemView, 0)
	for rows.Next() {
		var (
			pgProductID   pgtype.UUID
			priceCents    int64
			subtotalCents int64
			item          queries.SaleItemView
		)
		if err := rows.Scan(&pgProductID, &item.ProductName, &item.Quantity, &priceCents, &subtotalCents); err != nil {
			return nil, infra.WrapRepoErr(err)
		}
		item.ProductID = uuid.UUID(pgProductID.Bytes)
		item.Price = booking.NewMoney(priceCents).String()
		item.Subtotal = booking.NewMoney(subtotalCents).String()
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(err)
	}
	return items, nil
}
