package routes

import (
	"github.com/Virus3D/invent/controllers"
	"github.com/Virus3D/invent/middlewares"

	"github.com/gin-gonic/gin"
)

// SetupRoutes wires the full HTTP surface. Reads are open; everything that
// writes goes through the auth middleware so audit rows carry a real user.
func SetupRoutes(r *gin.Engine) {
	api := r.Group("/api")

	api.POST("/auth/login", controllers.Login)

	api.GET("/dashboard", controllers.Dashboard)
	api.GET("/dashboard/categories", controllers.CategoryStatistics)

	api.GET("/categories", controllers.ListCategories)
	api.GET("/categories/:category/specs", controllers.GetCategorySpecs)

	api.GET("/inventory", controllers.ListInventory)
	api.GET("/inventory/:id", controllers.GetInventoryItem)
	api.GET("/inventory/:id/movements", controllers.ListItemMovements)
	api.GET("/inventory/:id/balance-history", controllers.ListItemBalanceHistory)
	api.GET("/movements/recent", controllers.RecentMovements)

	api.GET("/locations", controllers.ListLocations)
	api.GET("/locations/check", controllers.CheckLocation)
	api.GET("/locations/:id", controllers.GetLocation)
	api.GET("/locations/:id/objects", controllers.GetLocationObjects)

	api.GET("/materials", controllers.ListMaterials)
	api.GET("/materials/:id", controllers.GetMaterial)

	api.GET("/licenses", controllers.ListSoftwareLicenses)
	api.GET("/licenses/:id", controllers.GetSoftwareLicense)

	protected := api.Group("")
	protected.Use(middlewares.AuthMiddleware())
	{
		protected.POST("/inventory", controllers.CreateInventoryItem)
		protected.PUT("/inventory/:id", controllers.UpdateInventoryItem)
		protected.DELETE("/inventory/:id", controllers.DeleteInventoryItem)
		protected.POST("/inventory/:id/move", controllers.MoveInventoryItem)
		protected.POST("/inventory/:id/balance", controllers.MoveItemToBalance)
		protected.POST("/inventory/:id/check", controllers.ToggleItemCheck)
		protected.POST("/inventory/check/reset", controllers.ResetItemChecks)

		protected.POST("/locations", controllers.CreateLocation)
		protected.PUT("/locations/:id", controllers.UpdateLocation)
		protected.DELETE("/locations/:id", controllers.DeleteLocation)
		protected.POST("/locations/mass-delete", controllers.MassDeleteLocations)
		protected.POST("/locations/mass-move", controllers.MassMoveObjects)

		protected.POST("/materials", controllers.CreateMaterial)
		protected.PUT("/materials/:id", controllers.UpdateMaterial)
		protected.DELETE("/materials/:id", controllers.DeleteMaterial)
		protected.POST("/materials/:id/check", controllers.ToggleMaterialCheck)
		protected.POST("/materials/check/reset", controllers.ResetMaterialChecks)

		protected.POST("/licenses", controllers.CreateSoftwareLicense)
		protected.PUT("/licenses/:id", controllers.UpdateSoftwareLicense)
		protected.DELETE("/licenses/:id", controllers.DeleteSoftwareLicense)
	}
}
