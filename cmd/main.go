package main

import (
	"samhotel-api/cmd/bootstrap"

	"go.uber.org/fx"
)

// @title           Hotel Booking & Inventory API
// @version         1.0
// @description     Room booking with conflict detection and exact pricing, plus small-retail inventory and POS endpoints.
// @BasePath        /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	fx.New(bootstrap.Module()).Run()
}
