package routes

import (
	"servicedesk/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathMemos          = "/memos"
	PathPurchaseOrders = "/purchase-orders"
)

func addProcurementRoutes(rg *gin.RouterGroup, handler *handlers.ProcurementHandler) {
	memos := rg.Group(PathMemos)
	{
		memos.POST("", handler.CreateMemo)
		memos.GET("", handler.ListMemos)
		memos.GET("/:key", handler.GetMemo)
		memos.PATCH("/:key", handler.UpdateMemo)
		memos.DELETE("/:key", handler.DeleteMemo)
	}

	orders := rg.Group(PathPurchaseOrders)
	{
		orders.POST("", handler.CreatePurchaseOrder)
		orders.GET("", handler.ListPurchaseOrders)
		orders.GET("/:key", handler.GetPurchaseOrder)
		orders.PATCH("/:key", handler.UpdatePurchaseOrder)
		orders.DELETE("/:key", handler.DeletePurchaseOrder)

		orders.POST("/:key/payments", handler.PayPurchaseOrder)
		orders.GET("/:key/payments", handler.ListPayments)
		orders.GET("/:key/payments/latest", handler.GetLatestPayment)
	}
}
