package request

type CreateCategory struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

type UpdateCategory struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

type CreateProduct struct {
	CategoryID   *string `json:"category_id" binding:"omitempty,uuid"`
	Name         string  `json:"name" binding:"required"`
	SKU          string  `json:"sku" binding:"required"`
	Description  string  `json:"description"`
	CostPrice    string  `json:"cost_price" binding:"required"`
	SellingPrice string  `json:"selling_price" binding:"required"`
	ReorderLevel int     `json:"reorder_level" binding:"min=0"`
}

type UpdateProduct struct {
	CategoryID   *string `json:"category_id" binding:"omitempty,uuid"`
	Name         *string `json:"name"`
	Description  *string `json:"description"`
	CostPrice    *string `json:"cost_price"`
	SellingPrice *string `json:"selling_price"`
	ReorderLevel *int    `json:"reorder_level"`
	IsActive     *bool   `json:"is_active"`
}

type CreateRestock struct {
	ProductID string `json:"product_id" binding:"required,uuid"`
	Quantity  int    `json:"quantity" binding:"required,min=1"`
	Note      string `json:"note"`
}

type SaleItem struct {
	ProductID string `json:"product_id" binding:"required,uuid"`
	Quantity  int    `json:"quantity" binding:"required,min=1"`
}

type CreateSale struct {
	CustomerName  string     `json:"customer_name"`
	PaymentMethod string     `json:"payment_method"`
	Items         []SaleItem `json:"items" binding:"required,min=1,dive"`
}
