package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/crm-backend/internal/data/repos"
	"github.com/yungbote/crm-backend/internal/http/response"
	"github.com/yungbote/crm-backend/internal/platform/apierr"
	"github.com/yungbote/crm-backend/internal/services"
)

type CustomerHandler struct {
	customerService services.CustomerService
}

func NewCustomerHandler(customerService services.CustomerService) *CustomerHandler {
	return &CustomerHandler{customerService: customerService}
}

// POST /api/customers
// body: { "name": "...", "email": "...", "phone": "..." }
func (ch *CustomerHandler) Create(c *gin.Context) {
	var req services.CreateCustomerInput
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, apierr.InvalidInput("Invalid request body."))
		return
	}

	customer, err := ch.customerService.Create(c.Request.Context(), req)
	if err != nil {
		response.RespondError(c, err)
		return
	}
	response.RespondCreated(c, gin.H{"customer": customer})
}

// POST /api/customers/bulk
// body: { "customers": [ { "name": "...", "email": "...", "phone": "..." }, ... ] }
//
// Always answers 200 when the batch itself was processed; per-candidate
// rejections come back in the "errors" array alongside the created rows.
func (ch *CustomerHandler) BulkCreate(c *gin.Context) {
	var req struct {
		Customers []services.CreateCustomerInput `json:"customers"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, apierr.InvalidInput("Invalid request body."))
		return
	}

	result, err := ch.customerService.BulkCreate(c.Request.Context(), req.Customers)
	if err != nil {
		response.RespondError(c, err)
		return
	}
	response.RespondOK(c, result)
}

// GET /api/customers
// query: name_contains, phone_prefix, created_from, created_to
func (ch *CustomerHandler) List(c *gin.Context) {
	createdFrom, err := timeParam(c, "created_from")
	if err != nil {
		response.RespondError(c, err)
		return
	}
	createdTo, err := timeParam(c, "created_to")
	if err != nil {
		response.RespondError(c, err)
		return
	}

	filter := repos.CustomerFilter{
		NameContains: strings.TrimSpace(c.Query("name_contains")),
		PhonePrefix:  strings.TrimSpace(c.Query("phone_prefix")),
		CreatedFrom:  createdFrom,
		CreatedTo:    createdTo,
	}

	customers, err := ch.customerService.List(c.Request.Context(), filter)
	if err != nil {
		response.RespondError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"customers": customers})
}
