package api

import (
	"errors"
	"net/http"

	"samhotel-api/internal/handler/dto/request"
	"samhotel-api/internal/handler/dto/response"
	"samhotel-api/internal/handler/httperr"
	"samhotel-api/internal/handler/middleware"
	"samhotel-api/internal/usecase/commands"
	"samhotel-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type InventoryHandler struct {
	commands commands.InventoryCommands
	queries  queries.InventoryQueries
}

func NewInventoryHandler(cmds commands.InventoryCommands, qs queries.InventoryQueries) *InventoryHandler {
	return &InventoryHandler{commands: cmds, queries: qs}
}

// ListCategories godoc
// @Summary      List product categories
// @Tags         inventory
// @Produce      json
// @Success      200 {array} response.Category
// @Security     BearerAuth
// @Router       /api/inventory/categories [get]
func (h *InventoryHandler) ListCategories(c *gin.Context) {
	views, err := h.queries.Categories(c.Request.Context())
	if err != nil {
		httperr.Internal(c)
		return
	}
	c.JSON(http.StatusOK, response.FromCategoryViews(views))
}

// CreateCategory godoc
// @Summary      Create a category (admin only)
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        request body request.CreateCategory true "Category details"
// @Success      201 {object} response.Category
// @Failure      400 {object} map[string]string
// @Security     BearerAuth
// @Router       /api/inventory/categories [post]
func (h *InventoryHandler) CreateCategory(c *gin.Context) {
	var req request.CreateCategory
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid request body")
		return
	}

	view, err := h.commands.CreateCategory(c.Request.Context(), commands.CreateCategoryInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		if errors.Is(err, commands.ErrValidation) {
			httperr.BadRequest(c, err.Error())
			return
		}
		httperr.Internal(c)
		return
	}
	c.JSON(http.StatusCreated, response.FromCategoryView(view))
}

// UpdateCategory godoc
// @Summary      Replace a category's name and description (admin only)
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        id path string true "Category ID"
// @Param        request body request.UpdateCategory true "Category details"
// @Success      200 {object} response.Category
// @Failure      400 {object} map[string]string
// @Failure      404 {object} map[string]string
// @Security     BearerAuth
// @Router       /api/inventory/categories/{id} [put]
func (h *InventoryHandler) UpdateCategory(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "id must be a valid UUID")
		return
	}

	var req request.UpdateCategory
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid request body")
		return
	}

	view, err := h.commands.UpdateCategory(c.Request.Context(), id, commands.UpdateCategoryInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrCategoryNotFound):
			httperr.NotFound(c, "category not found")
		case errors.Is(err, commands.ErrValidation):
			httperr.BadRequest(c, err.Error())
		default:
			httperr.Internal(c)
		}
		return
	}
	c.JSON(http.StatusOK, response.FromCategoryView(view))
}

// DeleteCategory godoc
// @Summary      Delete a category (admin only)
// @Tags         inventory
// @Param        id path string true "Category ID"
// @Success      204
// @Failure      404 {object} map[string]string
// @Security     BearerAuth
// @Router       /api/inventory/categories/{id} [delete]
func (h *InventoryHandler) DeleteCategory(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "id must be a valid UUID")
		return
	}

	if err := h.commands.DeleteCategory(c.Request.Context(), id); err != nil {
		if errors.Is(err, commands.ErrCategoryNotFound) {
			httperr.NotFound(c, "category not found")
			return
		}
		httperr.Internal(c)
		return
	}
	c.Status(http.StatusNoContent)
}

// ListProducts godoc
// @Summary      List products
// @Tags         inventory
// @Produce      json
// @Param        category_id query string false "Filter by category"
// @Param        low_stock query bool false "Only products at or below their reorder level"
// @Success      200 {array} response.Product
// @Security     BearerAuth
// @Router       /api/inventory/products [get]
func (h *InventoryHandler) ListProducts(c *gin.Context) {
	var categoryID *uuid.UUID
	if raw := c.Query("category_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			httperr.BadRequest(c, "category_id must be a valid UUID")
			return
		}
		categoryID = &id
	}
	lowStockOnly := c.Query("low_stock") == "true"

	views, err := h.queries.Products(c.Request.Context(), categoryID, lowStockOnly)
	if err != nil {
		httperr.Internal(c)
		return
	}
	c.JSON(http.StatusOK, response.FromProductViews(views))
}

// GetProduct godoc
// @Summary      Get a product
// @Tags         inventory
// @Produce      json
// @Param        id path string true "Product ID"
// @Success      200 {object} response.Product
// @Failure      404 {object} map[string]string
// @Security     BearerAuth
// @Router       /api/inventory/products/{id} [get]
func (h *InventoryHandler) GetProduct(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "id must be a valid UUID")
		return
	}

	view, err := h.queries.ProductByID(c.Request.Context(), id)
	if err != nil {
		if isNotFound(err) {
			httperr.NotFound(c, "product not found")
			return
		}
		httperr.Internal(c)
		return
	}
	c.JSON(http.StatusOK, response.FromProductView(view))
}

// CreateProduct godoc
// @Summary      Create a product (admin only)
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        request body request.CreateProduct true "Product details"
// @Success      201 {object} response.Product
// @Failure      400 {object} map[string]string
// @Security     BearerAuth
// @Router       /api/inventory/products [post]
func (h *InventoryHandler) CreateProduct(c *gin.Context) {
	var req request.CreateProduct
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid request body")
		return
	}

	categoryID, err := parseOptionalUUID(req.CategoryID)
	if err != nil {
		httperr.BadRequest(c, "category_id must be a valid UUID")
		return
	}

	view, err := h.commands.CreateProduct(c.Request.Context(), commands.CreateProductInput{
		CategoryID:   categoryID,
		Name:         req.Name,
		SKU:          req.SKU,
		Description:  req.Description,
		CostPrice:    req.CostPrice,
		SellingPrice: req.SellingPrice,
		ReorderLevel: req.ReorderLevel,
	})
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrCategoryNotFound):
			httperr.NotFound(c, "category not found")
		case errors.Is(err, commands.ErrSKUTaken):
			httperr.BadRequest(c, "a product with that SKU already exists")
		case errors.Is(err, commands.ErrValidation):
			httperr.BadRequest(c, err.Error())
		default:
			httperr.Internal(c)
		}
		return
	}
	c.JSON(http.StatusCreated, response.FromProductView(view))
}

// UpdateProduct godoc
// @Summary      Update a product (admin only)
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        id path string true "Product ID"
// @Param        request body request.UpdateProduct true "Fields to change"
// @Success      200 {object} response.Product
// @Failure      400 {object} map[string]string
// @Failure      404 {object} map[string]string
// @Security     BearerAuth
// @Router       /api/inventory/products/{id} [patch]
func (h *InventoryHandler) UpdateProduct(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "id must be a valid UUID")
		return
	}

	var req request.UpdateProduct
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid request body")
		return
	}

	categoryID, err := parseOptionalUUID(req.CategoryID)
	if err != nil {
		httperr.BadRequest(c, "category_id must be a valid UUID")
		return
	}

	view, err := h.commands.UpdateProduct(c.Request.Context(), id, commands.UpdateProductInput{
		CategoryID:   categoryID,
		Name:         req.Name,
		Description:  req.Description,
		CostPrice:    req.CostPrice,
		SellingPrice: req.SellingPrice,
		ReorderLevel: req.ReorderLevel,
		IsActive:     req.IsActive,
	})
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrProductNotFound):
			httperr.NotFound(c, "product not found")
		case errors.Is(err, commands.ErrCategoryNotFound):
			httperr.NotFound(c, "category not found")
		case errors.Is(err, commands.ErrValidation):
			httperr.BadRequest(c, err.Error())
		default:
			httperr.Internal(c)
		}
		return
	}
	c.JSON(http.StatusOK, response.FromProductView(view))
}

// DeleteProduct godoc
// @Summary      Delete a product (admin only)
// @Tags         inventory
// @Param        id path string true "Product ID"
// @Success      204
// @Failure      404 {object} map[string]string
// @Security     BearerAuth
// @Router       /api/inventory/products/{id} [delete]
func (h *InventoryHandler) DeleteProduct(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "id must be a valid UUID")
		return
	}

	if err := h.commands.DeleteProduct(c.Request.Context(), id); err != nil {
		if errors.Is(err, commands.ErrProductNotFound) {
			httperr.NotFound(c, "product not found")
			return
		}
		httperr.Internal(c)
		return
	}
	c.Status(http.StatusNoContent)
}

// ListRestocks godoc
// @Summary      Restock history
// @Tags         inventory
// @Produce      json
// @Param        product_id query string false "Filter by product"
// @Success      200 {array} response.Restock
// @Security     BearerAuth
// @Router       /api/inventory/restocks [get]
func (h *InventoryHandler) ListRestocks(c *gin.Context) {
	var productID *uuid.UUID
	if raw := c.Query("product_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			httperr.BadRequest(c, "product_id must be a valid UUID")
			return
		}
		productID = &id
	}

	views, err := h.queries.Restocks(c.Request.Context(), productID)
	if err != nil {
		httperr.Internal(c)
		return
	}
	c.JSON(http.StatusOK, response.FromRestockViews(views))
}

// CreateRestock godoc
// @Summary      Record a restock (admin only)
// @Tags         inventory
// @Accept       json
// @Param        request body request.CreateRestock true "Restock details"
// @Success      204
// @Failure      400 {object} map[string]string
// @Failure      404 {object} map[string]string
// @Security     BearerAuth
// @Router       /api/inventory/restocks [post]
func (h *InventoryHandler) CreateRestock(c *gin.Context) {
	var req request.CreateRestock
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid request body")
		return
	}

	productID, err := uuid.Parse(req.ProductID)
	if err != nil {
		httperr.BadRequest(c, "product_id must be a valid UUID")
		return
	}

	err = h.commands.Restock(c.Request.Context(), commands.RestockInput{
		ProductID: productID,
		Quantity:  req.Quantity,
		Note:      req.Note,
	})
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrProductNotFound):
			httperr.NotFound(c, "product not found")
		case errors.Is(err, commands.ErrValidation):
			httperr.BadRequest(c, err.Error())
		default:
			httperr.Internal(c)
		}
		return
	}
	c.Status(http.StatusNoContent)
}

// ListSales godoc
// @Summary      List sales
// @Tags         inventory
// @Produce      json
// @Success      200 {array} response.Sale
// @Security     BearerAuth
// @Router       /api/inventory/sales [get]
func (h *InventoryHandler) ListSales(c *gin.Context) {
	views, err := h.queries.Sales(c.Request.Context())
	if err != nil {
		httperr.Internal(c)
		return
	}
	c.JSON(http.StatusOK, response.FromSaleViews(views))
}

// GetSale godoc
// @Summary      Get a sale
// @Tags         inventory
// @Produce      json
// @Param        id path string true "Sale ID"
// @Success      200 {object} response.Sale
// @Failure      404 {object} map[string]string
// @Security     BearerAuth
// @Router       /api/inventory/sales/{id} [get]
func (h *InventoryHandler) GetSale(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "id must be a valid UUID")
		return
	}

	view, err := h.queries.SaleByID(c.Request.Context(), id)
	if err != nil {
		if isNotFound(err) {
			httperr.NotFound(c, "sale not found")
			return
		}
		httperr.Internal(c)
		return
	}
	c.JSON(http.StatusOK, response.FromSaleView(view))
}

// CreateSale godoc
// @Summary      Record a sale
// @Description  Prices come from the product records; stock is deducted atomically with the receipt.
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        request body request.CreateSale true "Sale lines"
// @Success      201 {object} response.Sale
// @Failure      400 {object} map[string]string
// @Failure      404 {object} map[string]string
// @Security     BearerAuth
// @Router       /api/inventory/sales [post]
func (h *InventoryHandler) CreateSale(c *gin.Context) {
	var req request.CreateSale
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid request body")
		return
	}

	items := make([]commands.SaleItemInput, 0, len(req.Items))
	for _, line := range req.Items {
		productID, err := uuid.Parse(line.ProductID)
		if err != nil {
			httperr.BadRequest(c, "product_id must be a valid UUID")
			return
		}
		items = append(items, commands.SaleItemInput{ProductID: productID, Quantity: line.Quantity})
	}

	var cashierID *uuid.UUID
	if id, ok := middleware.GetUserID(c); ok {
		cashierID = &id
	}

	view, err := h.commands.RecordSale(c.Request.Context(), commands.CreateSaleInput{
		CustomerName:  req.CustomerName,
		CashierID:     cashierID,
		PaymentMethod: req.PaymentMethod,
		Items:         items,
	})
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrProductNotFound):
			httperr.NotFound(c, "product not found")
		case errors.Is(err, commands.ErrInsufficientStock):
			httperr.BadRequest(c, "not enough stock for one of the sale items")
		case errors.Is(err, commands.ErrValidation):
			httperr.BadRequest(c, err.Error())
		default:
			httperr.Internal(c)
		}
		return
	}
	c.JSON(http.StatusCreated, response.FromSaleView(view))
}

func parseOptionalUUID(raw *string) (*uuid.UUID, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}
	id, err := uuid.Parse(*raw)
	if err != nil {
		return nil, err
	}
	return &id, nil
}
