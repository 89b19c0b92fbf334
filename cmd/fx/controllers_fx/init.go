package controllers_fx

import (
	"go.uber.org/fx"

	"shopkeeper/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewShopController),
	fx.Provide(controllers.NewSubscriptionController),
	fx.Provide(controllers.NewPlanController),
	fx.Provide(controllers.NewProfileController))
