package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/crm-backend/internal/data/repos"
	"github.com/yungbote/crm-backend/internal/http/response"
	"github.com/yungbote/crm-backend/internal/platform/apierr"
	"github.com/yungbote/crm-backend/internal/services"
)

type OrderHandler struct {
	orderService services.OrderService
}

func NewOrderHandler(orderService services.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

// POST /api/orders
// body: { "customer_id": "...", "product_ids": ["...", "..."] }
func (oh *OrderHandler) Create(c *gin.Context) {
	var req services.CreateOrderInput
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, apierr.InvalidInput("Invalid request body."))
		return
	}

	order, err := oh.orderService.Create(c.Request.Context(), req)
	if err != nil {
		response.RespondError(c, err)
		return
	}
	response.RespondCreated(c, gin.H{"order": order})
}

// GET /api/orders
// query: total_min, total_max, date_from, date_to, product_id,
// product_name_contains, customer_name_contains
func (oh *OrderHandler) List(c *gin.Context) {
	totalMin, err := decimalParam(c, "total_min")
	if err != nil {
		response.RespondError(c, err)
		return
	}
	totalMax, err := decimalParam(c, "total_max")
	if err != nil {
		response.RespondError(c, err)
		return
	}
	dateFrom, err := timeParam(c, "date_from")
	if err != nil {
		response.RespondError(c, err)
		return
	}
	dateTo, err := timeParam(c, "date_to")
	if err != nil {
		response.RespondError(c, err)
		return
	}
	productID, err := uuidParam(c, "product_id")
	if err != nil {
		response.RespondError(c, err)
		return
	}

	filter := repos.OrderFilter{
		TotalMin:             totalMin,
		TotalMax:             totalMax,
		DateFrom:             dateFrom,
		DateTo:               dateTo,
		ProductID:            productID,
		ProductNameContains:  strings.TrimSpace(c.Query("product_name_contains")),
		CustomerNameContains: strings.TrimSpace(c.Query("customer_name_contains")),
	}

	orders, err := oh.orderService.List(c.Request.Context(), filter)
	if err != nil {
		response.RespondError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"orders": orders})
}
