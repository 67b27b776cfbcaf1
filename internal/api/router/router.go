package router

import (
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/RoyceAzure/lab/storefront/internal/api/handler"
	m "github.com/RoyceAzure/lab/storefront/internal/api/middleware"
	"github.com/RoyceAzure/lab/storefront/internal/infra/auth"
)

// Server 聚合所有 handler 供路由掛載
type Server struct {
	AuthHandler     *handler.AuthHandler
	UserHandler     *handler.UserHandler
	CatalogHandler  *handler.CatalogHandler
	CartHandler     *handler.CartHandler
	WishlistHandler *handler.WishlistHandler
	OrderHandler    *handler.OrderHandler
}

func NewServer(
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
	catalogHandler *handler.CatalogHandler,
	cartHandler *handler.CartHandler,
	wishlistHandler *handler.WishlistHandler,
	orderHandler *handler.OrderHandler,
) *Server {
	return &Server{
		AuthHandler:     authHandler,
		UserHandler:     userHandler,
		CatalogHandler:  catalogHandler,
		CartHandler:     cartHandler,
		WishlistHandler: wishlistHandler,
		OrderHandler:    orderHandler,
	}
}

func SetupRouter(server *Server, tokenMaker auth.Maker, logger *zerolog.Logger) *chi.Mux {
	r := chi.NewRouter()

	// 全局中間件
	r.Use(m.RequestIdMiddleware)
	r.Use(m.AuthPayloadMiddleware(tokenMaker))
	r.Use(chimiddleware.RealIP)
	r.Use(m.LoggerMiddleware(logger))

	r.Route("/api", func(r chi.Router) {
		// Auth相關路由
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", server.AuthHandler.Register)
			r.Post("/login", server.AuthHandler.Login)
		})

		// 公開的商品目錄
		r.Get("/categories", server.CatalogHandler.ListCategories)
		r.Get("/categories/{id}", server.CatalogHandler.GetCategory)
		r.Get("/categories/{id}/products", server.CatalogHandler.ListProductsByCategory)
		r.Get("/products", server.CatalogHandler.ListProducts)
		r.Get("/products/{id}", server.CatalogHandler.GetProduct)

		// 需要登入的路由
		r.Group(func(r chi.Router) {
			r.Use(m.AuthMiddleware)

			r.Route("/cart", func(r chi.Router) {
				r.Get("/", server.CartHandler.GetCart)
				r.Post("/add", server.CartHandler.AddToCart)
				r.Put("/item/{itemId}", server.CartHandler.UpdateItemQuantity)
				r.Delete("/item/{itemId}", server.CartHandler.RemoveItem)
			})

			r.Route("/wishlist", func(r chi.Router) {
				r.Get("/", server.WishlistHandler.GetWishlist)
				r.Post("/add", server.WishlistHandler.AddToWishlist)
				r.Delete("/item/{itemId}", server.WishlistHandler.RemoveItem)
			})

			r.Route("/orders", func(r chi.Router) {
				r.Post("/", server.OrderHandler.PlaceOrder)
				r.Get("/", server.OrderHandler.ListOrders)
				r.Get("/{id}", server.OrderHandler.GetOrder)
				r.Put("/{id}/cancel", server.OrderHandler.CancelOrder)

				// 管理端
				r.Group(func(r chi.Router) {
					r.Use(m.AdminMiddleware)
					r.Get("/all", server.OrderHandler.ListAllOrders)
					r.Put("/{id}/status", server.OrderHandler.UpdateOrderStatus)
					r.Put("/{id}/cancel-admin", server.OrderHandler.CancelOrderAdmin)
				})
			})

			r.Route("/users", func(r chi.Router) {
				r.Get("/profile", server.UserHandler.GetProfile)
				r.Get("/addresses", server.UserHandler.GetAddresses)
				r.Post("/addresses", server.UserHandler.AddAddress)
			})

			// 管理端商品目錄維護
			r.Route("/admin", func(r chi.Router) {
				r.Use(m.AdminMiddleware)
				r.Post("/categories", server.CatalogHandler.CreateCategory)
				r.Post("/products", server.CatalogHandler.CreateProduct)
				r.Put("/products/{id}", server.CatalogHandler.UpdateProduct)
			})
		})
	})

	return r
}
