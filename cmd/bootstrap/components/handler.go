package components

import (
	"samhotel-api/internal/handler"
	"samhotel-api/internal/handler/api"
	"samhotel-api/internal/pkg/config"
	"samhotel-api/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
)

var HandlerModule = fx.Options(
	fx.Provide(
		api.NewAuthHandler,
		api.NewBookingHandler,
		api.NewRoomHandler,
		api.NewInventoryHandler,

		func(a *api.AuthHandler, b *api.BookingHandler, r *api.RoomHandler, i *api.InventoryHandler) handler.Handlers {
			return handler.Handlers{Auth: a, Booking: b, Room: r, Inventory: i}
		},
		func(cfg config.Config, h handler.Handlers, validator commands.TokenValidator) *gin.Engine {
			return handler.NewRouter(cfg, h, validator)
		},
	),
)
