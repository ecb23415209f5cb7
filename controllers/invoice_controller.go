package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"simple-ecommerce/models"
	"simple-ecommerce/services"
)

type InvoiceController struct {
	invoices *services.InvoiceService
}

func NewInvoiceController(invoices *services.InvoiceService) *InvoiceController {
	return &InvoiceController{invoices: invoices}
}

// Checkout godoc
// @Summary Checkout
// @Description Convert the logged-in user's cart into an invoice
// @Tags Invoices
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.CheckoutRequest true "Buyer contact"
// @Success 201 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /invoices/checkout [post]
func (ctrl *InvoiceController) Checkout(c *gin.Context) {
	userID := c.GetInt("user_id")

	var req models.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Invalid request",
			Error:   err.Error(),
		})
		return
	}

	invoice, err := ctrl.invoices.Checkout(c.Request.Context(), userID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusCreated, "Invoice created successfully", invoice)
}

// GetAll godoc
// @Summary List the logged-in user's invoices
// @Tags Invoices
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Router /invoices [get]
func (ctrl *InvoiceController) GetAll(c *gin.Context) {
	userID := c.GetInt("user_id")

	invoices, err := ctrl.invoices.ListByUser(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, "Get invoices successful", invoices)
}

// GetByID godoc
// @Summary Get invoice by ID
// @Tags Invoices
// @Security BearerAuth
// @Produce json
// @Param id path int true "Invoice ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /invoices/{id} [get]
func (ctrl *InvoiceController) GetByID(c *gin.Context) {
	userID := c.GetInt("user_id")
	id, _ := strconv.Atoi(c.Param("id"))

	invoice, err := ctrl.invoices.GetByID(c.Request.Context(), id, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, "Get invoice successful", invoice)
}

// GetByEmail godoc
// @Summary List invoices by buyer email
// @Tags Invoices
// @Security BearerAuth
// @Produce json
// @Param email path string true "Buyer email"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /invoices/email/{email} [get]
func (ctrl *InvoiceController) GetByEmail(c *gin.Context) {
	email := c.Param("email")

	invoices, err := ctrl.invoices.ListByEmail(c.Request.Context(), email)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, "Get invoices by email successful", invoices)
}
