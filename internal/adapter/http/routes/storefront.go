package routes

import (
	"github.com/jean-devbr/Atendimento-lanche/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathMenu   = "/menu"
	PathCart   = "/cart"
	PathOrders = "/orders"
	PathFooter = "/footer"
	PathAuth   = "/auth"
)

func addStorefrontRoutes(
	rg *gin.RouterGroup,
	menuHandler *handlers.MenuHandler,
	cartHandler *handlers.CartHandler,
	orderHandler *handlers.OrderHandler,
	footerHandler *handlers.FooterHandler,
	authHandler *handlers.AuthHandler,
) {
	menu := rg.Group(PathMenu)
	{
		menu.GET("", menuHandler.ListMenu)
		menu.POST("", menuHandler.CreateMenuItem)
		menu.PUT("/:id", menuHandler.UpdateMenuItem)
		menu.DELETE("/:id", menuHandler.DeleteMenuItem)
	}

	cart := rg.Group(PathCart)
	{
		cart.GET("", cartHandler.GetCart)
		cart.DELETE("", cartHandler.ClearCart)
		cart.POST("/items", cartHandler.AddItem)
		cart.PATCH("/items/:id", cartHandler.UpdateQuantity)
		cart.DELETE("/items/:id", cartHandler.RemoveItem)
	}

	orders := rg.Group(PathOrders)
	{
		orders.POST("", orderHandler.Checkout)
		orders.GET("", orderHandler.ListOrders)
		orders.GET("/:id", orderHandler.GetOrder)
		orders.PATCH("/:id/status", orderHandler.UpdateStatus)
	}

	footer := rg.Group(PathFooter)
	{
		footer.GET("", footerHandler.GetFooter)
		footer.PUT("", footerHandler.UpdateFooter)
	}

	auth := rg.Group(PathAuth)
	{
		auth.POST("/login", authHandler.Login)
	}
}
