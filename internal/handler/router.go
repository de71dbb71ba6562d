package handler

import (
	"net/http"

	"samhotel-api/internal/domain/user"
	"samhotel-api/internal/handler/api"
	"samhotel-api/internal/handler/middleware"
	"samhotel-api/internal/pkg/config"
	"samhotel-api/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type Handlers struct {
	Auth      *api.AuthHandler
	Booking   *api.BookingHandler
	Room      *api.RoomHandler
	Inventory *api.InventoryHandler
}

func NewRouter(cfg config.Config, h Handlers, validator commands.TokenValidator) *gin.Engine {
	r := gin.New()
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestLogging())
	r.Use(middleware.CORS(cfg.CORS))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	if gin.Mode() != gin.ReleaseMode {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := r.Group("/api")

	// Public: browsing rooms and placing bookings need no account.
	auth := apiGroup.Group("/auth")
	{
		auth.POST("/register", h.Auth.Register)
		auth.POST("/login", h.Auth.Login)
		auth.POST("/refresh", h.Auth.Refresh)
	}

	rooms := apiGroup.Group("/rooms")
	{
		rooms.GET("", h.Room.List)
		rooms.GET("/:id", h.Room.Get)
		rooms.GET("/:id/calendar", h.Room.Calendar)
	}

	bookings := apiGroup.Group("/bookings")
	{
		bookings.POST("", h.Booking.Create)
		bookings.GET("", h.Booking.List)
		bookings.GET("/search_by_email", h.Booking.SearchByEmail)
		bookings.GET("/:id", h.Booking.Get)
	}

	authed := apiGroup.Group("")
	authed.Use(middleware.RequireAuth(validator))
	{
		authed.GET("/me", h.Auth.Me)

		inv := authed.Group("/inventory")
		{
			inv.GET("/categories", h.Inventory.ListCategories)
			inv.GET("/products", h.Inventory.ListProducts)
			inv.GET("/products/:id", h.Inventory.GetProduct)
			inv.GET("/restocks", h.Inventory.ListRestocks)
			inv.GET("/sales", h.Inventory.ListSales)
			inv.GET("/sales/:id", h.Inventory.GetSale)
			inv.POST("/sales", h.Inventory.CreateSale)
		}
	}

	admin := apiGroup.Group("")
	admin.Use(middleware.RequireAuth(validator), middleware.RequireRole(user.RoleAdmin))
	{
		admin.POST("/rooms", h.Room.Create)
		admin.PATCH("/rooms/:id", h.Room.Update)
		admin.DELETE("/rooms/:id", h.Room.Delete)

		admin.DELETE("/bookings/:id", h.Booking.Delete)

		admin.POST("/inventory/categories", h.Inventory.CreateCategory)
		admin.PUT("/inventory/categories/:id", h.Inventory.UpdateCategory)
		admin.DELETE("/inventory/categories/:id", h.Inventory.DeleteCategory)
		admin.POST("/inventory/products", h.Inventory.CreateProduct)
		admin.PATCH("/inventory/products/:id", h.Inventory.UpdateProduct)
		admin.DELETE("/inventory/products/:id", h.Inventory.DeleteProduct)
		admin.POST("/inventory/restocks", h.Inventory.CreateRestock)
	}

	return r
}
