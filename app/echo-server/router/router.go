package router

import (
	"scentify/internal/rest"

	"github.com/labstack/echo/v4"
)

func SetupUserRoutes(api *echo.Group, handler *rest.UserHandler, authRequired echo.MiddlewareFunc, adminOnly echo.MiddlewareFunc) {
	users := api.Group("/users")

	users.GET("/email-verification/:code", handler.VerifyEmail)
	users.POST("/register", handler.Register)
	users.POST("/login", handler.Login)

	users.POST("/logout", handler.Logout, authRequired)
	users.PUT("/:id", handler.UpdateUser, authRequired)
	users.GET("/:id", handler.GetUserByID, authRequired, adminOnly)
	users.DELETE("/:id", handler.DeleteUser, authRequired, adminOnly)
}

func SetupPerfumeRoutes(api *echo.Group, handler *rest.PerfumeHandler, authRequired echo.MiddlewareFunc, adminOnly echo.MiddlewareFunc) {
	perfumes := api.Group("/perfumes")

	perfumes.GET("", handler.GetAllPerfumes)
	perfumes.GET("/search", handler.Search)
	perfumes.GET("/:id", handler.GetPerfumeByID)
	perfumes.POST("", handler.CreatePerfume, authRequired, adminOnly)
}

func SetupInventoryRoutes(api *echo.Group, handler *rest.InventoryHandler, authRequired echo.MiddlewareFunc) {
	inv := api.Group("/inventory", authRequired)

	inv.GET("", handler.ListPerfumes)
	inv.POST("", handler.AddPerfume)
	inv.DELETE("/:id", handler.RemovePerfume)
}

func SetupInteractionRoutes(api *echo.Group, handler *rest.InteractionHandler, authRequired echo.MiddlewareFunc) {
	interactions := api.Group("/interactions", authRequired)

	interactions.POST("", handler.Record)
	interactions.GET("", handler.History)
}

func SetupRecommendationRoutes(api *echo.Group, handler *rest.RecommendationHandler, authRequired echo.MiddlewareFunc) {
	reco := api.Group("/recommendations", authRequired)

	reco.GET("", handler.Recommend)
	reco.GET("/insights", handler.Insights)
}
