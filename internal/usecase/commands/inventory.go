package commands

import (
	"context"
	"errors"

	"samhotel-api/internal/domain/booking"
	"samhotel-api/internal/domain/inventory"
	"samhotel-api/internal/infra"
	"samhotel-api/internal/pkg/errs"
	"samhotel-api/internal/usecase/queries"
	"samhotel-api/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrCategoryNotFound  = errors.New("category not found")
	ErrProductNotFound   = errors.New("product not found")
	ErrSKUTaken          = errors.New("product SKU already in use")
	ErrInsufficientStock = errors.New("not enough stock for sale")
)

type CreateCategoryInput struct {
	Name        string
	Description string
}

type UpdateCategoryInput struct {
	Name        string
	Description string
}

type CreateProductInput struct {
	CategoryID   *uuid.UUID
	Name         string
	SKU          string
	Description  string
	CostPrice    string
	SellingPrice string
	ReorderLevel int
}

type UpdateProductInput struct {
	CategoryID   *uuid.UUID
	Name         *string
	Description  *string
	CostPrice    *string
	SellingPrice *string
	ReorderLevel *int
	IsActive     *bool
}

type RestockInput struct {
	ProductID uuid.UUID
	Quantity  int
	Note      string
}

type SaleItemInput struct {
	ProductID uuid.UUID
	Quantity  int
}

type CreateSaleInput struct {
	CustomerName  string
	CashierID     *uuid.UUID
	PaymentMethod string
	Items         []SaleItemInput
}

type InventoryCommands interface {
	CreateCategory(ctx context.Context, in CreateCategoryInput) (*queries.CategoryView, error)
	UpdateCategory(ctx context.Context, id uuid.UUID, in UpdateCategoryInput) (*queries.CategoryView, error)
	DeleteCategory(ctx context.Context, id uuid.UUID) error
	CreateProduct(ctx context.Context, in CreateProductInput) (*queries.ProductView, error)
	UpdateProduct(ctx context.Context, id uuid.UUID, in UpdateProductInput) (*queries.ProductView, error)
	DeleteProduct(ctx context.Context, id uuid.UUID) error
	Restock(ctx context.Context, in RestockInput) error
	// RecordSale commits the receipt and all stock deductions atomically;
	// any oversold line rejects the whole sale.
	RecordSale(ctx context.Context, in CreateSaleInput) (*queries.SaleView, error)
}

type inventoryCommandsImpl struct {
	uow   shared.UnitOfWork
	store queries.InventoryReadStore
}

func NewInventoryCommands(uow shared.UnitOfWork, store queries.InventoryReadStore) InventoryCommands {
	return &inventoryCommandsImpl{uow: uow, store: store}
}

func (c *inventoryCommandsImpl) CreateCategory(ctx context.Context, in CreateCategoryInput) (*queries.CategoryView, error) {
	cat, err := inventory.NewCategory(in.Name, in.Description)
	if err != nil {
		return nil, errs.Mark(err, ErrValidation)
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Inventory().CreateCategory(ctx, cat)
	})
	if err != nil {
		return nil, err
	}

	return &queries.CategoryView{ID: cat.ID(), Name: cat.Name(), Description: cat.Description()}, nil
}

func (c *inventoryCommandsImpl) UpdateCategory(ctx context.Context, id uuid.UUID, in UpdateCategoryInput) (*queries.CategoryView, error) {
	cat := inventory.ReconstructCategory(id, "", "")
	if err := cat.Rename(in.Name); err != nil {
		return nil, errs.Mark(err, ErrValidation)
	}
	cat.SetDescription(in.Description)

	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := tx.Reads().CategoryByID(ctx, id); err != nil {
			if infra.IsKind(err, infra.NotFoundError) {
				return ErrCategoryNotFound
			}
			return err
		}
		return tx.Inventory().UpdateCategory(ctx, cat)
	})
	if err != nil {
		return nil, err
	}

	return &queries.CategoryView{ID: cat.ID(), Name: cat.Name(), Description: cat.Description()}, nil
}

func (c *inventoryCommandsImpl) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := tx.Reads().CategoryByID(ctx, id); err != nil {
			if infra.IsKind(err, infra.NotFoundError) {
				return ErrCategoryNotFound
			}
			return err
		}
		return tx.Inventory().DeleteCategory(ctx, id)
	})
}

func (c *inventoryCommandsImpl) CreateProduct(ctx context.Context, in CreateProductInput) (*queries.ProductView, error) {
	cost, err := booking.ParseAmount(in.CostPrice)
	if err != nil {
		return nil, errs.Mark(err, ErrValidation)
	}
	selling, err := booking.ParseAmount(in.SellingPrice)
	if err != nil {
		return nil, errs.Mark(err, ErrValidation)
	}

	p, err := inventory.NewProduct(in.CategoryID, in.Name, in.SKU, in.Description, cost, selling, in.ReorderLevel)
	if err != nil {
		return nil, errs.Mark(err, ErrValidation)
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if in.CategoryID != nil {
			if _, err := tx.Reads().CategoryByID(ctx, *in.CategoryID); err != nil {
				if infra.IsKind(err, infra.NotFoundError) {
					return ErrCategoryNotFound
				}
				return err
			}
		}
		if err := tx.Inventory().CreateProduct(ctx, p); err != nil {
			if infra.IsKind(err, infra.DuplicateKeyError) {
				return ErrSKUTaken
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return c.store.FindProductByID(ctx, p.ID())
}

func (c *inventoryCommandsImpl) UpdateProduct(ctx context.Context, id uuid.UUID, in UpdateProductInput) (*queries.ProductView, error) {
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		view, err := c.store.FindProductByID(ctx, id)
		if err != nil {
			if infra.IsKind(err, infra.NotFoundError) {
				return ErrProductNotFound
			}
			return err
		}

		cost, err := booking.ParseAmount(view.CostPrice)
		if err != nil {
			return errs.Wrap(err, "stored cost price is invalid")
		}
		selling, err := booking.ParseAmount(view.SellingPrice)
		if err != nil {
			return errs.Wrap(err, "stored selling price is invalid")
		}

		name := view.Name
		if in.Name != nil {
			name = *in.Name
		}
		description := view.Description
		if in.Description != nil {
			description = *in.Description
		}
		if in.CostPrice != nil {
			cost, err = booking.ParseAmount(*in.CostPrice)
			if err != nil {
				return errs.Mark(err, ErrValidation)
			}
		}
		if in.SellingPrice != nil {
			selling, err = booking.ParseAmount(*in.SellingPrice)
			if err != nil {
				return errs.Mark(err, ErrValidation)
			}
		}
		reorderLevel := view.ReorderLevel
		if in.ReorderLevel != nil {
			reorderLevel = *in.ReorderLevel
		}
		isActive := view.IsActive
		if in.IsActive != nil {
			isActive = *in.IsActive
		}
		categoryID := view.CategoryID
		if in.CategoryID != nil {
			categoryID = in.CategoryID
			if _, err := tx.Reads().CategoryByID(ctx, *in.CategoryID); err != nil {
				if infra.IsKind(err, infra.NotFoundError) {
					return ErrCategoryNotFound
				}
				return err
			}
		}

		p := inventory.ReconstructProduct(view.ID, categoryID, name, view.SKU, description, cost, selling, view.StockQuantity, reorderLevel, isActive)
		if p.Name() == "" {
			return errs.Mark(inventory.ErrNameRequired, ErrValidation)
		}

		return tx.Inventory().UpdateProduct(ctx, p)
	})
	if err != nil {
		return nil, err
	}

	return c.store.FindProductByID(ctx, id)
}

func (c *inventoryCommandsImpl) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := tx.Reads().ProductByID(ctx, id); err != nil {
			if infra.IsKind(err, infra.NotFoundError) {
				return ErrProductNotFound
			}
			return err
		}
		return tx.Inventory().DeleteProduct(ctx, id)
	})
}

func (c *inventoryCommandsImpl) Restock(ctx context.Context, in RestockInput) error {
	r, err := inventory.NewRestock(in.ProductID, in.Quantity, in.Note)
	if err != nil {
		return errs.Mark(err, ErrValidation)
	}

	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := tx.Reads().ProductByID(ctx, in.ProductID); err != nil {
			if infra.IsKind(err, infra.NotFoundError) {
				return ErrProductNotFound
			}
			return err
		}
		return tx.Inventory().CreateRestock(ctx, r)
	})
}

func (c *inventoryCommandsImpl) RecordSale(ctx context.Context, in CreateSaleInput) (*queries.SaleView, error) {
	if len(in.Items) == 0 {
		return nil, errs.Mark(inventory.ErrEmptySale, ErrValidation)
	}

	var saleID uuid.UUID
	err := c.uow.WithinSerializable(ctx, func(ctx context.Context, tx shared.Tx) error {
		items := make([]inventory.SaleItem, 0, len(in.Items))
		for _, line := range in.Items {
			snap, err := tx.Reads().ProductByID(ctx, line.ProductID)
			if err != nil {
				if infra.IsKind(err, infra.NotFoundError) {
					return ErrProductNotFound
				}
				return err
			}
			if snap.StockQuantity < line.Quantity {
				return ErrInsufficientStock
			}

			item, err := inventory.NewSaleItem(line.ProductID, line.Quantity, booking.NewMoney(snap.SellingCents))
			if err != nil {
				return errs.Mark(err, ErrValidation)
			}
			items = append(items, item)
		}

		sale, err := inventory.NewSale(in.CustomerName, in.CashierID, in.PaymentMethod, items)
		if err != nil {
			return errs.Mark(err, ErrValidation)
		}

		if err := tx.Inventory().CreateSale(ctx, sale); err != nil {
			// Stock deductions carry a CHECK constraint; a concurrent sale
			// draining the shelf surfaces here.
			if infra.IsKind(err, infra.ConflictError) {
				return ErrInsufficientStock
			}
			return err
		}
		saleID = sale.ID()
		return nil
	})
	if err != nil {
		return nil, err
	}

	return c.store.FindSaleByID(ctx, saleID)
}
