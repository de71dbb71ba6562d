package inventory

import (
	"errors"
	"strings"
	"time"

	"samhotel-api/internal/domain/booking"

	"github.com/google/uuid"
)

var (
	ErrNameRequired      = errors.New("name is required")
	ErrSKURequired       = errors.New("product SKU is required")
	ErrNegativePrice     = errors.New("price cannot be negative")
	ErrInvalidQuantity   = errors.New("quantity must be positive")
	ErrInsufficientStock = errors.New("not enough stock")
	ErrEmptySale         = errors.New("a sale needs at least one item")
)

type Category struct {
	id          uuid.UUID
	name        string
	description string
}

func NewCategory(name, description string) (*Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrNameRequired
	}
	return &Category{id: uuid.New(), name: name, description: description}, nil
}

func ReconstructCategory(id uuid.UUID, name, description string) *Category {
	return &Category{id: id, name: name, description: description}
}

func (c *Category) ID() uuid.UUID       { return c.id }
func (c *Category) Name() string        { return c.name }
func (c *Category) Description() string { return c.description }

func (c *Category) Rename(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrNameRequired
	}
	c.name = name
	return nil
}

func (c *Category) SetDescription(description string) { c.description = description }

type Product struct {
	id            uuid.UUID
	categoryID    *uuid.UUID
	name          string
	sku           string
	description   string
	costPrice     booking.Money
	sellingPrice  booking.Money
	stockQuantity int
	reorderLevel  int
	isActive      bool
}

func NewProduct(
	categoryID *uuid.UUID,
	name, sku, description string,
	costPrice, sellingPrice booking.Money,
	reorderLevel int,
) (*Product, error) {
	name = strings.TrimSpace(name)
	sku = strings.TrimSpace(sku)
	if name == "" {
		return nil, ErrNameRequired
	}
	if sku == "" {
		return nil, ErrSKURequired
	}
	if costPrice.Cents() < 0 || sellingPrice.Cents() < 0 {
		return nil, ErrNegativePrice
	}

	return &Product{
		id:           uuid.New(),
		categoryID:   categoryID,
		name:         name,
		sku:          sku,
		description:  description,
		costPrice:    costPrice,
		sellingPrice: sellingPrice,
		reorderLevel: reorderLevel,
		isActive:     true,
	}, nil
}

func ReconstructProduct(
	id uuid.UUID,
	categoryID *uuid.UUID,
	name, sku, description string,
	costPrice, sellingPrice booking.Money,
	stockQuantity, reorderLevel int,
	isActive bool,
) *Product {
	return &Product{
		id:            id,
		categoryID:    categoryID,
		name:          name,
		sku:           sku,
		description:   description,
		costPrice:     costPrice,
		sellingPrice:  sellingPrice,
		stockQuantity: stockQuantity,
		reorderLevel:  reorderLevel,
		isActive:      isActive,
	}
}

func (p *Product) ID() uuid.UUID               { return p.id }
func (p *Product) CategoryID() *uuid.UUID      { return p.categoryID }
func (p *Product) Name() string                { return p.name }
func (p *Product) SKU() string                 { return p.sku }
func (p *Product) Description() string         { return p.description }
func (p *Product) CostPrice() booking.Money    { return p.costPrice }
func (p *Product) SellingPrice() booking.Money { return p.sellingPrice }
func (p *Product) StockQuantity() int          { return p.stockQuantity }
func (p *Product) ReorderLevel() int           { return p.reorderLevel }
func (p *Product) IsActive() bool              { return p.isActive }

func (p *Product) NeedsReorder() bool {
	return p.stockQuantity <= p.reorderLevel
}

// ApplyRestock increments stock; the quantity must be positive.
func (p *Product) ApplyRestock(qty int) error {
	if qty <= 0 {
		return ErrInvalidQuantity
	}
	p.stockQuantity += qty
	return nil
}

// DeductStock rejects oversell before mutating.
func (p *Product) DeductStock(qty int) error {
	if qty <= 0 {
		return ErrInvalidQuantity
	}
	if p.stockQuantity < qty {
		return ErrInsufficientStock
	}
	p.stockQuantity -= qty
	return nil
}

type Restock struct {
	id        uuid.UUID
	productID uuid.UUID
	quantity  int
	note      string
	date      time.Time
}

func NewRestock(productID uuid.UUID, quantity int, note string) (*Restock, error) {
	if quantity <= 0 {
		return nil, ErrInvalidQuantity
	}
	return &Restock{id: uuid.New(), productID: productID, quantity: quantity, note: note}, nil
}

func (r *Restock) ID() uuid.UUID        { return r.id }
func (r *Restock) ProductID() uuid.UUID { return r.productID }
func (r *Restock) Quantity() int        { return r.quantity }
func (r *Restock) Note() string         { return r.note }
func (r *Restock) Date() time.Time      { return r.date }

type SaleItem struct {
	productID uuid.UUID
	quantity  int
	price     booking.Money
	subtotal  booking.Money
}

func NewSaleItem(productID uuid.UUID, quantity int, price booking.Money) (SaleItem, error) {
	if quantity <= 0 {
		return SaleItem{}, ErrInvalidQuantity
	}
	if price.Cents() < 0 {
		return SaleItem{}, ErrNegativePrice
	}
	return SaleItem{
		productID: productID,
		quantity:  quantity,
		price:     price,
		subtotal:  price.MulQty(int64(quantity)),
	}, nil
}

func (i SaleItem) ProductID() uuid.UUID    { return i.productID }
func (i SaleItem) Quantity() int           { return i.quantity }
func (i SaleItem) Price() booking.Money    { return i.price }
func (i SaleItem) Subtotal() booking.Money { return i.subtotal }

// Sale is a POS receipt: header plus lines, total derived as the sum of line
// subtotals.
type Sale struct {
	id            uuid.UUID
	customerName  string
	cashierID     *uuid.UUID
	paymentMethod string
	items         []SaleItem
	total         booking.Money
	date          time.Time
}

func NewSale(customerName string, cashierID *uuid.UUID, paymentMethod string, items []SaleItem) (*Sale, error) {
	if len(items) == 0 {
		return nil, ErrEmptySale
	}
	if paymentMethod == "" {
		paymentMethod = "cash"
	}

	total := booking.NewMoney(0)
	for _, item := range items {
		total = total.Add(item.Subtotal())
	}

	return &Sale{
		id:            uuid.New(),
		customerName:  customerName,
		cashierID:     cashierID,
		paymentMethod: paymentMethod,
		items:         items,
		total:         total,
	}, nil
}

func (s *Sale) ID() uuid.UUID         { return s.id }
func (s *Sale) CustomerName() string  { return s.customerName }
func (s *Sale) CashierID() *uuid.UUID { return s.cashierID }
func (s *Sale) PaymentMethod() string { return s.paymentMethod }
func (s *Sale) Items() []SaleItem     { return s.items }
func (s *Sale) Total() booking.Money  { return s.total }
func (s *Sale) Date() time.Time       { return s.date }
