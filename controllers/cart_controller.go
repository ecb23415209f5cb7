package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"simple-ecommerce/models"
	"simple-ecommerce/services"
)

type CartController struct {
	carts *services.CartService
}

func NewCartController(carts *services.CartService) *CartController {
	return &CartController{carts: carts}
}

// Add godoc
// @Summary Add product to cart
// @Description Upsert a cart row for the logged-in user
// @Tags Cart
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.AddCartRequest true "Cart item"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /carts [post]
func (ctrl *CartController) Add(c *gin.Context) {
	userID := c.GetInt("user_id")

	var req models.AddCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Invalid request",
			Error:   err.Error(),
		})
		return
	}

	item, err := ctrl.carts.AddItem(c.Request.Context(), userID, req.ProductID, req.Quantity)
	if err != nil {
		respondError(c, err)
		return
	}

	withImageURL(c, item.Product)
	respondOK(c, http.StatusOK, "Product added to cart successfully", item)
}

// GetAll godoc
// @Summary Get cart
// @Description List the logged-in user's cart rows and grand total
// @Tags Cart
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Router /carts [get]
func (ctrl *CartController) GetAll(c *gin.Context) {
	userID := c.GetInt("user_id")

	list, err := ctrl.carts.List(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	for i := range list.Items {
		withImageURL(c, list.Items[i].Product)
	}
	respondOK(c, http.StatusOK, "Get cart successful", list)
}

// Update godoc
// @Summary Update cart item quantity
// @Tags Cart
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Cart item ID"
// @Param request body models.UpdateCartRequest true "New quantity"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /carts/{id} [put]
func (ctrl *CartController) Update(c *gin.Context) {
	userID := c.GetInt("user_id")
	id, _ := strconv.Atoi(c.Param("id"))

	var req models.UpdateCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Invalid request",
			Error:   err.Error(),
		})
		return
	}

	item, err := ctrl.carts.UpdateItem(c.Request.Context(), userID, id, req.Quantity)
	if err != nil {
		respondError(c, err)
		return
	}

	withImageURL(c, item.Product)
	respondOK(c, http.StatusOK, "Cart updated successfully", item)
}

// Remove godoc
// @Summary Remove cart item
// @Tags Cart
// @Security BearerAuth
// @Produce json
// @Param id path int true "Cart item ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /carts/{id} [delete]
func (ctrl *CartController) Remove(c *gin.Context) {
	userID := c.GetInt("user_id")
	id, _ := strconv.Atoi(c.Param("id"))

	if err := ctrl.carts.RemoveItem(c.Request.Context(), userID, id); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, "Item removed from cart successfully", nil)
}

// Clear godoc
// @Summary Clear cart
// @Tags Cart
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Router /carts [delete]
func (ctrl *CartController) Clear(c *gin.Context) {
	userID := c.GetInt("user_id")

	if err := ctrl.carts.Clear(c.Request.Context(), userID); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, "Cart cleared successfully", nil)
}
