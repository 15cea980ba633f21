package routes

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"shoe-store/config"
	"shoe-store/controllers"
	"shoe-store/middleware"
	"shoe-store/repositories"
	"shoe-store/services"
	"shoe-store/store"
)

// AdminRole is the exact role string required for the admin subtree.
const AdminRole = "Administrador"

func SetupRoutes(router *gin.Engine, sessions *store.Sessions, logger *zap.Logger) {
	client := repositories.NewClient(config.AppConfig.APIURL, logger)

	catalogRepo := repositories.NewCatalogRepository(client)
	orderRepo := repositories.NewOrderRepository(client)
	userRepo := repositories.NewUserRepository(client)
	dashboardRepo := repositories.NewDashboardRepository(client)
	reportRepo := repositories.NewReportRepository(client)

	checkoutSvc := services.NewCheckoutService(orderRepo, logger)
	authSvc := services.NewAuthService(userRepo, logger)

	authCtrl := &controllers.AuthController{Auth: authSvc, Logger: logger}
	productCtrl := &controllers.ProductController{Catalog: catalogRepo, Logger: logger}
	cartCtrl := &controllers.CartController{Sessions: sessions, Checkout: checkoutSvc, Logger: logger}
	inventoryCtrl := &controllers.InventoryController{Catalog: catalogRepo, Logger: logger}
	orderCtrl := &controllers.OrderController{Orders: orderRepo, Logger: logger}
	customerCtrl := &controllers.CustomerController{Users: userRepo, Reports: reportRepo, Logger: logger}
	dashboardCtrl := &controllers.DashboardController{Dashboard: dashboardRepo, Logger: logger}
	reportCtrl := &controllers.ReportController{Reports: reportRepo, Logger: logger}

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"status": "ok"}) })

	router.POST("/auth/register", authCtrl.Register)
	router.GET("/auth/check", authCtrl.Check)
	router.POST("/auth/logout", authCtrl.Logout)

	router.GET("/productos", productCtrl.GetAllProducts)
	router.GET("/productos/:id", productCtrl.GetProductByID)
	router.GET("/ecommerce/productos/populares", productCtrl.GetPopularProducts)
	router.GET("/ecommerce/productos/audience/:segment", productCtrl.GetAudienceProducts)

	cart := router.Group("/cart")
	{
		cart.GET("", cartCtrl.GetCart)
		cart.POST("/items", cartCtrl.AddItem)
		cart.PATCH("/items/:id", cartCtrl.UpdateQuantity)
		cart.DELETE("/items/:id", cartCtrl.RemoveItem)
		cart.POST("/toggle", cartCtrl.Toggle)
		cart.POST("/checkout", cartCtrl.CheckoutCart)
	}

	admin := router.Group("/admin")
	admin.Use(middleware.RequireRole(AdminRole))
	{
		admin.GET("/products", inventoryCtrl.GetInventory)
		admin.POST("/products", inventoryCtrl.CreateProduct)

		admin.GET("/orders", orderCtrl.GetAllOrders)

		admin.GET("/customers", customerCtrl.GetAllCustomers)
		admin.DELETE("/customers/:id", customerCtrl.DeleteCustomer)
		admin.POST("/customers/export", customerCtrl.ExportCustomers)

		admin.GET("/dashboard/stats", dashboardCtrl.GetStats)
		admin.GET("/dashboard/sales-summary", dashboardCtrl.GetSalesSummary)
		admin.GET("/dashboard/recent-orders", dashboardCtrl.GetRecentOrders)
		admin.GET("/dashboard/low-stock", dashboardCtrl.GetLowStockAlerts)

		admin.POST("/reports/:type", reportCtrl.Export)
	}
}
