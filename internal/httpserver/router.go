package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	authmw "github.com/avoronin/metiz-market/internal/middleware/auth"
)

type Deps struct {
	AuthHandler    *AuthHTTP
	MetizHandler   *MetizHTTP
	ProductHandler *ProductHTTP
	BasketHandler  *BasketHTTP
	OrderHandler   *OrderHTTP
	ReviewHandler  *ReviewHTTP
	JWTSecret      []byte
}

func Register(e *echo.Echo, d *Deps) {
	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/health/ready", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	auth := authmw.New(d.JWTSecret)

	v1 := e.Group("/api/v1")

	v1.POST("/auth/user/register", d.AuthHandler.RegisterUser)
	v1.POST("/auth/user/login", d.AuthHandler.LoginUser)
	v1.POST("/auth/metiz/register", d.AuthHandler.RegisterMetiz)
	v1.POST("/auth/metiz/login", d.AuthHandler.LoginMetiz)

	products := v1.Group("/products")
	products.GET("", d.ProductHandler.GetProducts)
	products.GET("/:id", d.ProductHandler.GetProduct)
	v1.GET("/metiz", d.MetizHandler.ListMetiz)
	v1.GET("/metiz/:metizId", d.MetizHandler.GetMetiz)
	v1.GET("/metiz/:metizId/products", d.ProductHandler.GetMetizProducts)
	v1.GET("/metiz/:metizId/reviews", d.ReviewHandler.ListMetizReviews)

	metiz := v1.Group("/metiz", auth.RequireMetiz)
	metiz.PATCH("/profile", d.MetizHandler.PatchProfile)
	metiz.POST("/products", d.ProductHandler.CreateProduct)
	metiz.PATCH("/products/:id", d.ProductHandler.PatchProduct)
	metiz.DELETE("/products/:id", d.ProductHandler.DeleteProduct)
	metiz.GET("/orders", d.OrderHandler.ListMetizOrders)
	metiz.PATCH("/orders/:id/status", d.OrderHandler.UpdateStatus)
	metiz.PATCH("/orders/:id/completion-time", d.OrderHandler.UpdateCompletionTime)

	basket := v1.Group("/basket", auth.RequireUser)
	basket.GET("", d.BasketHandler.GetBasket)
	basket.POST("/items", d.BasketHandler.AddItem)
	basket.PATCH("/items/:productId", d.BasketHandler.UpdateItemQuantity)
	basket.DELETE("/items/:productId", d.BasketHandler.RemoveItem)
	basket.DELETE("", d.BasketHandler.Clear)

	orders := v1.Group("/orders", auth.RequireUser)
	orders.POST("", d.OrderHandler.CreateOrder)
	orders.GET("", d.OrderHandler.ListUserOrders)
	orders.GET("/:id", d.OrderHandler.GetOrder)
	orders.POST("/:id/cancel", d.OrderHandler.CancelOrder)
	orders.DELETE("/:id", d.OrderHandler.DeleteOrder)

	reviews := v1.Group("/reviews")
	reviews.GET("", d.ReviewHandler.ListReviews)
	reviews.GET("/:id", d.ReviewHandler.GetReview)

	userReviews := v1.Group("/reviews", auth.RequireUser)
	userReviews.POST("", d.ReviewHandler.CreateReview)
	userReviews.PATCH("/:id", d.ReviewHandler.UpdateReview)
	userReviews.DELETE("/:id", d.ReviewHandler.DeleteReview)
}
