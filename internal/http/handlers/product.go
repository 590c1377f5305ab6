package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/crm-backend/internal/data/repos"
	"github.com/yungbote/crm-backend/internal/http/response"
	"github.com/yungbote/crm-backend/internal/platform/apierr"
	"github.com/yungbote/crm-backend/internal/services"
)

type ProductHandler struct {
	productService services.ProductService
}

func NewProductHandler(productService services.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

// POST /api/products
// body: { "name": "...", "price": "19.99", "stock": 5 }
func (ph *ProductHandler) Create(c *gin.Context) {
	var req services.CreateProductInput
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, apierr.InvalidInput("Invalid request body."))
		return
	}

	product, err := ph.productService.Create(c.Request.Context(), req)
	if err != nil {
		response.RespondError(c, err)
		return
	}
	response.RespondCreated(c, gin.H{"product": product})
}

// GET /api/products
// query: name_contains, price_min, price_max, stock_min, stock_max, stock_below
func (ph *ProductHandler) List(c *gin.Context) {
	priceMin, err := decimalParam(c, "price_min")
	if err != nil {
		response.RespondError(c, err)
		return
	}
	priceMax, err := decimalParam(c, "price_max")
	if err != nil {
		response.RespondError(c, err)
		return
	}
	stockMin, err := intParam(c, "stock_min")
	if err != nil {
		response.RespondError(c, err)
		return
	}
	stockMax, err := intParam(c, "stock_max")
	if err != nil {
		response.RespondError(c, err)
		return
	}
	stockBelow, err := intParam(c, "stock_below")
	if err != nil {
		response.RespondError(c, err)
		return
	}

	filter := repos.ProductFilter{
		NameContains: strings.TrimSpace(c.Query("name_contains")),
		PriceMin:     priceMin,
		PriceMax:     priceMax,
		StockMin:     stockMin,
		StockMax:     stockMax,
		StockBelow:   stockBelow,
	}

	products, err := ph.productService.List(c.Request.Context(), filter)
	if err != nil {
		response.RespondError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"products": products})
}
