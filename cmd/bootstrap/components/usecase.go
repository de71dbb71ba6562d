package components

import (
	"samhotel-api/internal/pkg/clock"
	"samhotel-api/internal/usecase/commands"
	"samhotel-api/internal/usecase/queries"

	"go.uber.org/fx"
)

var UsecaseModule = fx.Options(
	fx.Provide(
		clock.NewRealClock,

		commands.NewBookingCommands,
		commands.NewRoomCommands,
		commands.NewAuthCommands,
		commands.NewInventoryCommands,
		commands.NewTokenValidator,

		queries.NewBookingQueries,
		queries.NewRoomQueries,
		queries.NewUserQueries,
		queries.NewInventoryQueries,
	),
)
