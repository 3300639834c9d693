package routes

import (
	"backend/configs"
	"backend/controllers"
	"backend/entity"
	"backend/middlewares"
	"backend/repository"
	"backend/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config, log *zap.Logger) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	userRepo := repository.NewUserRepository(db)
	restRepo := repository.NewRestaurantRepository(db)
	foodRepo := repository.NewFoodRepository(db)
	cartRepo := repository.NewCartRepository(db)
	orderRepo := repository.NewOrderRepository(db)

	// Services; cart and checkout share one per-user lock set.
	locks := services.NewUserLocks()
	authSvc := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTTTL)
	restSvc := services.NewRestaurantService(restRepo, foodRepo)
	catalogSvc := services.NewCatalogService(db, foodRepo, restRepo, log)
	cartSvc := services.NewCartService(db, cartRepo, foodRepo, locks, log)
	orderSvc := services.NewOrderService(db, orderRepo, cartRepo, restRepo, locks, log)

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	restCtrl := controllers.NewRestaurantController(restSvc)
	foodCtrl := controllers.NewFoodController(catalogSvc)
	cartCtrl := controllers.NewCartController(cartSvc)
	orderCtrl := controllers.NewOrderController(orderSvc)

	auth := func(roles ...string) gin.HandlerFunc {
		return middlewares.AuthMiddleware(cfg.JWTSecret, roles...)
	}

	// Auth
	a := r.Group("/auth")
	{
		a.POST("/register", authCtrl.Register)
		a.POST("/login", authCtrl.Login)
		a.GET("/me", auth(), authCtrl.Me)
	}

	// Public catalog
	r.GET("/restaurants", restCtrl.List)
	r.GET("/restaurants/:id", restCtrl.Detail)
	r.GET("/foods", foodCtrl.List)
	r.GET("/foods/:id", foodCtrl.Detail)

	// Catalog management (restaurant owner or admin)
	manage := r.Group("/foods", auth(entity.RoleOwner, entity.RoleAdmin))
	{
		manage.POST("", foodCtrl.Create)
		manage.PATCH("/:id", foodCtrl.Update)
		manage.DELETE("/:id", foodCtrl.Delete)
	}
	r.POST("/restaurants", auth(entity.RoleAdmin), restCtrl.Create)

	// Cart
	cart := r.Group("/cart", auth())
	{
		cart.GET("", cartCtrl.Get)
		cart.POST("/items", cartCtrl.AddItem)
		cart.DELETE("/items/:foodItemId", cartCtrl.RemoveItem)
		cart.DELETE("", cartCtrl.Clear)
	}

	// Orders
	orders := r.Group("/orders", auth())
	{
		orders.POST("", orderCtrl.Place)
		orders.GET("/history", orderCtrl.History)
		orders.GET("/:id/status", orderCtrl.Status)
		orders.PATCH("/:id/status", orderCtrl.UpdateStatus)
	}

	// Partner (restaurant owner)
	partner := r.Group("/partner", auth(entity.RoleOwner, entity.RoleAdmin))
	{
		partner.GET("/orders", orderCtrl.ListForRestaurant)
	}

	// Admin
	admin := r.Group("/admin", auth(entity.RoleAdmin))
	{
		admin.GET("/orders", orderCtrl.ListAll)
		admin.GET("/users", authCtrl.ListUsers)
	}
}
