// Package router maps REST paths onto handlers.
package router

import (
	"salesboard/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	ClientHandler    *handler.ClientHandler
	ProductHandler   *handler.ProductHandler
	SaleHandler      *handler.SaleHandler
	DashboardHandler *handler.DashboardHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	clientHandler    *handler.ClientHandler
	productHandler   *handler.ProductHandler
	saleHandler      *handler.SaleHandler
	dashboardHandler *handler.DashboardHandler
}

// NewRouter is the constructor for the Router.
func NewRouter(params RouterParams) *router {
	return &router{
		clientHandler:    params.ClientHandler,
		productHandler:   params.ProductHandler,
		saleHandler:      params.SaleHandler,
		dashboardHandler: params.DashboardHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/", handler.Index)
	e.GET("/health", handler.HealthCheck)

	clients := e.Group("/clientes")
	{
		clients.GET("", r.clientHandler.ListClients)
		clients.POST("", r.clientHandler.CreateClient)
		clients.GET("/:id", r.clientHandler.GetClient)
		clients.PUT("/:id", r.clientHandler.UpdateClient)
		clients.DELETE("/:id", r.clientHandler.DeleteClient)
	}

	products := e.Group("/produtos")
	{
		products.GET("", r.productHandler.ListProducts)
		products.POST("", r.productHandler.CreateProduct)
		products.GET("/:id", r.productHandler.GetProduct)
		products.PUT("/:id", r.productHandler.UpdateProduct)
		products.DELETE("/:id", r.productHandler.DeleteProduct)
	}

	sales := e.Group("/vendas")
	{
		sales.GET("", r.saleHandler.ListSales)
		sales.POST("", r.saleHandler.CreateSale)
		sales.GET("/:id", r.saleHandler.GetSale)
		sales.DELETE("/:id", r.saleHandler.DeleteSale)
	}

	dashboard := e.Group("/dashboard")
	{
		dashboard.GET("", r.dashboardHandler.GetDashboard)
		dashboard.GET("/relatorio-pdf", r.dashboardHandler.DownloadPDF)
		dashboard.GET("/relatorio-xlsx", r.dashboardHandler.DownloadXLSX)
		dashboard.GET("/total_clientes", r.dashboardHandler.TotalClients)
	}
}
