package response

import (
	"time"

	"samhotel-api/internal/usecase/queries"
)

type Category struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Products    int    `json:"products"`
}

func FromCategoryView(v *queries.CategoryView) Category {
	return Category{ID: v.ID.String(), Name: v.Name, Description: v.Description, Products: v.Products}
}

func FromCategoryViews(views []*queries.CategoryView) []Category {
	out := make([]Category, 0, len(views))
	for _, v := range views {
		out = append(out, FromCategoryView(v))
	}
	return out
}

type Product struct {
	ID            string  `json:"id"`
	CategoryID    *string `json:"category_id,omitempty"`
	CategoryName  *string `json:"category_name,omitempty"`
	Name          string  `json:"name"`
	SKU           string  `json:"sku"`
	Description   string  `json:"description"`
	CostPrice     string  `json:"cost_price"`
	SellingPrice  string  `json:"selling_price"`
	StockQuantity int     `json:"stock_quantity"`
	ReorderLevel  int     `json:"reorder_level"`
	NeedsReorder  bool    `json:"needs_reorder"`
	IsActive      bool    `json:"is_active"`
}

func FromProductView(v *queries.ProductView) Product {
	p := Product{
		ID:            v.ID.String(),
		CategoryName:  v.CategoryName,
		Name:          v.Name,
		SKU:           v.SKU,
		Description:   v.Description,
		CostPrice:     v.CostPrice,
		SellingPrice:  v.SellingPrice,
		StockQuantity: v.StockQuantity,
		ReorderLevel:  v.ReorderLevel,
		NeedsReorder:  v.NeedsReorder,
		IsActive:      v.IsActive,
	}
	if v.CategoryID != nil {
		s := v.CategoryID.String()
		p.CategoryID = &s
	}
	return p
}

func FromProductViews(views []*queries.ProductView) []Product {
	out := make([]Product, 0, len(views))
	for _, v := range views {
		out = append(out, FromProductView(v))
	}
	return out
}

type Restock struct {
	ID          string    `json:"id"`
	ProductID   string    `json:"product_id"`
	ProductName string    `json:"product_name"`
	Quantity    int       `json:"quantity"`
	Note        string    `json:"note"`
	Date        time.Time `json:"date"`
}

func FromRestockViews(views []*queries.RestockView) []Restock {
	out := make([]Restock, 0, len(views))
	for _, v := range views {
		out = append(out, Restock{
			ID:          v.ID.String(),
			ProductID:   v.ProductID.String(),
			ProductName: v.ProductName,
			Quantity:    v.Quantity,
			Note:        v.Note,
			Date:        v.Date,
		})
	}
	return out
}

type SaleItem struct {
	ProductID   string `json:"product_id"`
	ProductName string `json:"product_name"`
	Quantity    int    `json:"quantity"`
	Price       string `json:"price"`
	Subtotal    string `json:"subtotal"`
}

type Sale struct {
	ID            string     `json:"id"`
	CustomerName  string     `json:"customer_name"`
	CashierID     *string    `json:"cashier_id,omitempty"`
	PaymentMethod string     `json:"payment_method"`
	Total         string     `json:"total"`
	Date          time.Time  `json:"date"`
	Items         []SaleItem `json:"items"`
}

func FromSaleView(v *queries.SaleView) Sale {
	items := make([]SaleItem, 0, len(v.Items))
	for _, i := range v.Items {
		items = append(items, SaleItem{
			ProductID:   i.ProductID.String(),
			ProductName: i.ProductName,
			Quantity:    i.Quantity,
			Price:       i.Price,
			Subtotal:    i.Subtotal,
		})
	}

	s := Sale{
		ID:            v.ID.String(),
		CustomerName:  v.CustomerName,
		PaymentMethod: v.PaymentMethod,
		Total:         v.Total,
		Date:          v.Date,
		Items:         items,
	}
	if v.CashierID != nil {
		id := v.CashierID.String()
		s.CashierID = &id
	}
	return s
}

func FromSaleViews(views []*queries.SaleView) []Sale {
	out := make([]Sale, 0, len(views))
	for _, v := range views {
		out = append(out, FromSaleView(v))
	}
	return out
}
