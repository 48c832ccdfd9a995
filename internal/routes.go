package internal

import (
	"net/http"

	"github.com/DamienOReilly/reddit-stats/internal/controllers"
	"github.com/DamienOReilly/reddit-stats/internal/providers"
)

func InitRoutes(apiController *controllers.ApiController) providers.RouterProviderInterface {
	routers := providers.NewRouterProvider()

	routers.Get("/stats", http.HandlerFunc(apiController.GetUserStats))
	routers.Get("/snapshot", http.HandlerFunc(apiController.GetSnapshot))
	return routers
}
