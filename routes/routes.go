package routes

import (
	"food-store/config"
	"food-store/controllers"
	"food-store/libs"
	"food-store/middleware"
	"food-store/repositories"
	"food-store/services"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func SetupRoutes(router *gin.Engine, store repositories.SlotStore) {
	api := libs.NewAPIClient(config.AppConfig.APIBaseURL)

	catalog := services.NewCatalogService(api)
	carts := services.NewCartManager(store)
	checkout := services.NewCheckoutService(api)

	authCtrl := &controllers.AuthController{API: api}
	productCtrl := &controllers.ProductController{API: api, Catalog: catalog}
	categoryCtrl := &controllers.CategoryController{API: api, Catalog: catalog}
	cartCtrl := &controllers.CartController{Carts: carts, Catalog: catalog}
	orderCtrl := &controllers.OrderController{API: api, Carts: carts, Checkout: checkout}

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"status": "ok"}) })

	router.POST("/auth/register", authCtrl.Register)
	router.POST("/auth/login", authCtrl.Login)
	router.GET("/categories", categoryCtrl.GetAllCategories)
	router.GET("/products", productCtrl.GetAllProducts)
	router.GET("/products/:id", productCtrl.GetProductByID)

	auth := router.Group("/")
	auth.Use(middleware.AuthMiddleware())
	{
		auth.GET("/cart", cartCtrl.GetCart)
		auth.DELETE("/cart", cartCtrl.ClearCart)
		auth.GET("/cart/summary", cartCtrl.GetSummary)
		auth.POST("/cart/items", cartCtrl.AddItem)
		auth.PATCH("/cart/items/:productId", cartCtrl.UpdateItem)
		auth.DELETE("/cart/items/:productId", cartCtrl.RemoveItem)

		auth.POST("/checkout", orderCtrl.PlaceOrder)
		auth.GET("/orders", orderCtrl.GetMyOrders)
		auth.GET("/orders/:id", orderCtrl.GetOrderByID)
	}

	admin := router.Group("/admin")
	admin.Use(middleware.AuthMiddleware(), middleware.AdminMiddleware())
	{
		admin.POST("/categories", categoryCtrl.CreateCategory)
		admin.PATCH("/categories/:id", categoryCtrl.UpdateCategory)
		admin.DELETE("/categories/:id", categoryCtrl.DeleteCategory)

		admin.POST("/products", productCtrl.CreateProduct)
		admin.PATCH("/products/:id", productCtrl.UpdateProduct)
		admin.DELETE("/products/:id", productCtrl.DeleteProduct)

		admin.GET("/orders", orderCtrl.GetAllOrders)
		admin.PATCH("/orders/:id/status", orderCtrl.UpdateOrderStatus)
	}
}
