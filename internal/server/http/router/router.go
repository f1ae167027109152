package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/dmarkhas/gameshop/internal/server/http/handlers"
	"github.com/dmarkhas/gameshop/internal/server/http/middleware"
)

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.ShopFacade, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))
	engine.Use(middleware.CartSession())

	authHandler := handlers.NewAuthHandler(facade, facade)
	productHandler := handlers.NewProductHandler(facade)
	cartHandler := handlers.NewCartHandler(facade)
	checkoutHandler := handlers.NewCheckoutHandler(facade)
	orderHandler := handlers.NewOrderHandler(facade, facade)
	addressHandler := handlers.NewAddressHandler(facade)
	reportHandler := handlers.NewReportHandler(facade)

	api := engine.Group("/api")

	user := api.Group("/user")
	user.POST("/register", authHandler.Register)
	user.POST("/login", authHandler.Login)
	user.GET("/is-staff", middleware.AuthRequired(facade), authHandler.IsStaff)

	products := api.Group("/products")
	products.GET("", productHandler.List)
	products.GET("/:slug", productHandler.Get)
	products.GET("/:slug/suggestions", productHandler.Suggestions)

	// Cart endpoints serve visitors and logged-in users alike.
	cart := api.Group("/cart")
	cart.Use(middleware.OptionalAuth(facade))
	cart.GET("", cartHandler.Get)
	cart.POST("/add/:slug", cartHandler.Add)
	cart.POST("/remove-one/:slug", cartHandler.RemoveOne)
	cart.DELETE("/remove/:slug", cartHandler.Remove)
	cart.POST("/coupon", cartHandler.ApplyCoupon)

	authed := api.Group("")
	authed.Use(middleware.AuthRequired(facade))
	authed.POST("/checkout/order", checkoutHandler.CreateOrder)
	authed.POST("/checkout/pay", checkoutHandler.Pay)
	authed.GET("/orders", orderHandler.List)
	authed.GET("/addresses", addressHandler.List)
	authed.POST("/addresses", addressHandler.Create)
	authed.DELETE("/addresses/:id", addressHandler.Delete)

	staff := api.Group("")
	staff.Use(middleware.AuthRequired(facade), middleware.StaffRequired(facade))
	staff.POST("/products", productHandler.Create)
	staff.PATCH("/order-lines/:id", orderHandler.UpdateLineStatus)
	staff.GET("/reports/orders-per-day/:period", reportHandler.OrdersPerDay)
	staff.GET("/reports/most-bought/:period", reportHandler.MostBought)

	return engine
}
