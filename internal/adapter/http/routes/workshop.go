package routes

import (
	"os_pro/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathCustomers = "/customers"
	PathItems     = "/items"
	PathOrders    = "/os"
	PathAdvisory  = "/advisory"
)

func addWorkshopRoutes(rg *gin.RouterGroup, customerHandler *handlers.CustomerHandler, catalogHandler *handlers.CatalogHandler, orderHandler *handlers.OrderHandler, advisoryHandler *handlers.AdvisoryHandler) {
	customers := rg.Group(PathCustomers)
	{
		customers.GET("", customerHandler.ListCustomers)
		customers.POST("", customerHandler.CreateCustomer)
		customers.GET("/:id", customerHandler.GetCustomer)
		customers.PUT("/:id", customerHandler.UpdateCustomer)
		customers.DELETE("/:id", customerHandler.DeleteCustomer)
	}

	items := rg.Group(PathItems)
	{
		items.GET("", catalogHandler.ListItems)
		items.POST("", catalogHandler.CreateItem)
		items.GET("/:id", catalogHandler.GetItem)
		items.PUT("/:id", catalogHandler.UpdateItem)
		items.DELETE("/:id", catalogHandler.DeleteItem)
	}

	orders := rg.Group(PathOrders)
	{
		orders.GET("", orderHandler.ListOrders)
		orders.POST("", orderHandler.SaveOrder)
		orders.GET("/:id", orderHandler.GetOrder)
		orders.PUT("/:id", orderHandler.SaveOrder)
		orders.GET("/:id/share", orderHandler.ShareOrder)
		orders.GET("/:id/pdf", orderHandler.DownloadOrderPDF)
		orders.POST("/:id/summary", advisoryHandler.SummarizeOrder)
	}

	advisory := rg.Group(PathAdvisory)
	{
		advisory.POST("/suggest", advisoryHandler.SuggestFix)
	}
}
