package controllers_fx

import (
	"go.uber.org/fx"

	"placemark/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewAccountController),
	fx.Provide(controllers.NewPOIController),
	fx.Provide(controllers.NewCategoryController),
	fx.Provide(controllers.NewImageController))
