package components

import (
	"samhotel-api/internal/infra/readstore"
	"samhotel-api/internal/infra/uow"

	"go.uber.org/fx"
)

var PersistenceModule = fx.Options(
	fx.Provide(
		uow.NewPostgresUoW,
		readstore.NewBookingReadStore,
		readstore.NewRoomReadStore,
		readstore.NewUserReadStore,
		readstore.NewInventoryReadStore,
	),
)
