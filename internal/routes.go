package internal

import (
	"net/http"
	"ymc/internal/controllers"
	"ymc/internal/providers"
)

func InitRoutes(apiController *controllers.ApiController) providers.RouterProviderInterface {
	routers := providers.NewRouterProvider()

	routers.Post("/api/check-monetization", http.HandlerFunc(apiController.CheckMonetization))
	return routers
}
