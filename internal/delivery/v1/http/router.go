package http

import (
	_ "github.com/DRSN-tech/storefront/docs" // Импорт сгенерированных файлов
	"github.com/DRSN-tech/storefront/internal/usecase"
	"github.com/DRSN-tech/storefront/pkg/logger"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

type Router struct {
	router *chi.Mux
	logger logger.Logger
}

func NewRouter(router *chi.Mux, logger logger.Logger) *Router {
	return &Router{router: router, logger: logger}
}

func (r *Router) Init(storefrontUC usecase.StorefrontUC) {
	r.router.Use(middleware.RequestID)
	r.router.Use(middleware.Recoverer)
	r.router.Use(requestLogger(r.logger))

	r.router.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	r.router.Route("/api/v1", func(v1 chi.Router) {
		registerCatalogRoutes(v1, NewCatalogHandler(storefrontUC, r.logger))
		registerCartRoutes(v1, NewCartHandler(storefrontUC, r.logger))
		registerChatRoutes(v1, NewChatHandler(storefrontUC, r.logger))
		registerStateRoutes(v1, NewStateHandler(storefrontUC, r.logger))
	})
}

func registerCatalogRoutes(router chi.Router, h *CatalogHandler) {
	router.Route("/products", func(pr chi.Router) {
		pr.Get("/", h.listProducts)
		pr.Get("/{id}", h.getProduct)
	})
	router.Get("/categories", h.listCategories)
	router.Put("/filters", h.setFilters)
	router.Delete("/filters", h.resetFilters)
}

func registerCartRoutes(router chi.Router, h *CartHandler) {
	router.Route("/cart", func(cr chi.Router) {
		cr.Get("/", h.getCart)
		cr.Post("/items", h.addItem)
		cr.Patch("/items/{id}", h.updateQuantity)
		cr.Delete("/items/{id}", h.removeItem)
		cr.Post("/checkout", h.checkout)
	})
}

func registerChatRoutes(router chi.Router, h *ChatHandler) {
	router.Route("/chat", func(ch chi.Router) {
		ch.Get("/messages", h.listMessages)
		ch.Post("/messages", h.sendMessage)
	})
}

func registerStateRoutes(router chi.Router, h *StateHandler) {
	router.Get("/state", h.getState)
	router.Put("/ui/{panel}", h.setPanel)
	router.Get("/events", h.streamEvents)
}
