package routes

import (
	"github.com/gin-gonic/gin"

	cartControllers "github.com/Oleksandr-DUIKT/coffee-bot-telebot-pd-41/controllers/cart"
	catalogController "github.com/Oleksandr-DUIKT/coffee-bot-telebot-pd-41/controllers/catalog"
	"github.com/Oleksandr-DUIKT/coffee-bot-telebot-pd-41/middleware"
	"github.com/Oleksandr-DUIKT/coffee-bot-telebot-pd-41/store"
)

// SetupAdminRoutes registers all "/admin/*" endpoints. Requires API-Key middleware.
func SetupAdminRoutes(r *gin.Engine, s *store.Store) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.ValidateAPIKey)
	{
		// ─────────── Catalog Management ───────────
		coffeeAdmin := adminGroup.Group("/coffees")
		{
			coffeeAdmin.POST("", catalogController.CreateCoffee(s))
			coffeeAdmin.GET("", catalogController.GetCoffees(s))
			coffeeAdmin.GET("/export-excel", catalogController.ExportCoffeesToExcel(s))
			coffeeAdmin.GET("/:id", catalogController.GetCoffeeByID(s))
			coffeeAdmin.PUT("/:id", catalogController.UpdateCoffee(s))
			coffeeAdmin.DELETE("/:id", catalogController.DeleteCoffee(s))
		}

		// ─────────── Cart Management ───────────
		cartAdmin := adminGroup.Group("/carts")
		{
			cartAdmin.GET("", cartControllers.GetAllCarts(s))
			cartAdmin.DELETE("", cartControllers.ClearAllCarts(s))
			cartAdmin.GET("/:user_id", cartControllers.GetUserCart(s))
			cartAdmin.DELETE("/:user_id", cartControllers.ClearUserCart(s))
		}
	}
}
